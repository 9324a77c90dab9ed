package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/dromero-dev/comanda-api/internal/application/service"
	"github.com/dromero-dev/comanda-api/internal/config"
	"github.com/dromero-dev/comanda-api/internal/infrastructure/database"
	"github.com/dromero-dev/comanda-api/internal/infrastructure/repository"
	"github.com/dromero-dev/comanda-api/internal/jobs"
	"github.com/dromero-dev/comanda-api/internal/presentation/http/handler"
	"github.com/dromero-dev/comanda-api/internal/presentation/http/routes"
	"github.com/dromero-dev/comanda-api/pkg/oauth"
	"github.com/dromero-dev/comanda-api/pkg/session"
	"github.com/dromero-dev/comanda-api/pkg/utils"
)

func main() {
	cfg := config.Load()

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	if err := database.SeedDefaultData(db); err != nil {
		log.Printf("Warning: Failed to seed default data: %v", err)
	}

	jwtManager := utils.NewJWTManager(
		cfg.JWT.Secret,
		cfg.JWT.ExpiryHours,
		cfg.JWT.RefreshExpiryHours,
	)

	// Repositories
	userRepo := repository.NewUserRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	saleRepo := repository.NewSaleRepository(db)
	clientRepo := repository.NewClientRepository(db)
	productRepo := repository.NewProductRepository(db)
	expenseRepo := repository.NewExpenseRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)
	idempotencyRepo := repository.NewIdempotencyRepository(db)
	reportRepo := repository.NewReportRepository(db)

	googleService := oauth.NewGoogleService(oauth.Config{
		ClientID:     cfg.OAuth.GoogleClientID,
		ClientSecret: cfg.OAuth.GoogleClientSecret,
		RedirectURL:  cfg.OAuth.GoogleRedirectURL,
	})

	// Session expiry notifier with a logging consumer
	notifier := session.NewNotifier()
	events, cancel := notifier.Subscribe()
	defer cancel()
	go func() {
		for ev := range events {
			log.Printf("Session expired: %s %s at %s", ev.RemoteAddr, ev.Path, ev.OccurredAt.Format("15:04:05"))
		}
	}()

	// Services
	authService := service.NewAuthService(userRepo, jwtManager, googleService)
	orderService := service.NewOrderService(orderRepo, productRepo, clientRepo, cfg.Business.Name)
	saleService := service.NewSaleService(saleRepo)
	clientService := service.NewClientService(clientRepo)
	inventoryService := service.NewInventoryService(productRepo)
	expenseService := service.NewExpenseService(expenseRepo)
	reportService := service.NewReportService(reportRepo, saleRepo, expenseRepo, orderRepo, productRepo)
	userService := service.NewUserService(userRepo)
	settingsService := service.NewSettingsService(settingsRepo)

	// Background jobs
	scheduler := jobs.NewScheduler(saleService, idempotencyRepo)
	scheduler.Start()
	defer scheduler.Stop()

	handlers := &routes.Handlers{
		Auth:      handler.NewAuthHandler(authService),
		Order:     handler.NewOrderHandler(orderService),
		Client:    handler.NewClientHandler(clientService),
		Inventory: handler.NewInventoryHandler(inventoryService),
		Expense:   handler.NewExpenseHandler(expenseService),
		Sale:      handler.NewSaleHandler(saleService),
		Report:    handler.NewReportHandler(reportService),
		User:      handler.NewUserHandler(userService),
		Settings:  handler.NewSettingsHandler(settingsService),
	}

	router := routes.Setup(handlers, &routes.Deps{
		JWTManager:      jwtManager,
		Cfg:             cfg,
		IdempotencyRepo: idempotencyRepo,
		SessionNotifier: notifier,
	})

	log.Printf("Starting %s on port %s", cfg.App.Name, cfg.App.Port)
	if err := router.Run(":" + cfg.App.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
