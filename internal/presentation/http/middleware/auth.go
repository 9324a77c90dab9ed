package middleware

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/dromero-dev/comanda-api/internal/presentation/http/dto/response"
	"github.com/dromero-dev/comanda-api/pkg/session"
	"github.com/dromero-dev/comanda-api/pkg/utils"
)

// AuthMiddleware creates a JWT authentication middleware. When a token turns
// out to be expired, the event is published on the session notifier so
// interested consumers can observe forced logouts.
func AuthMiddleware(jwtManager *utils.JWTManager, notifier *session.Notifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, "Authorization header is required")
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			response.Unauthorized(c, "Invalid authorization header format")
			c.Abort()
			return
		}

		claims, err := jwtManager.ValidateAccessToken(parts[1])
		if err != nil {
			if errors.Is(err, utils.ErrExpiredToken) {
				if notifier != nil {
					event := session.ExpiryEvent{
						RemoteAddr: c.ClientIP(),
						Path:       c.Request.URL.Path,
					}
					if expired, cErr := jwtManager.ExtractClaims(parts[1]); cErr == nil {
						event.Email = expired.Email
					}
					notifier.Notify(event)
				}
				response.Unauthorized(c, "Session has expired, please sign in again")
			} else {
				response.Unauthorized(c, "Invalid token")
			}
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("user_email", claims.Email)
		c.Set("user_role", claims.Role)

		c.Next()
	}
}

// RequireRole creates a middleware that requires one of the given roles
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userRole := c.GetString("user_role")
		for _, role := range roles {
			if userRole == role {
				c.Next()
				return
			}
		}

		response.Forbidden(c, "You do not have permission to perform this action")
		c.Abort()
	}
}
