package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/dromero-dev/comanda-api/internal/application/query"
	"github.com/dromero-dev/comanda-api/internal/application/service"
	"github.com/dromero-dev/comanda-api/internal/domain/enum"
	"github.com/dromero-dev/comanda-api/internal/presentation/http/dto/response"
)

// OrderHandler handles order-related HTTP requests
type OrderHandler struct {
	orderService *service.OrderService
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orderService *service.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// List handles listing orders with search, filters, sorting and pagination
func (h *OrderHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	search := c.Query("search")

	filters := query.Filters{
		OrderType: query.TypeFilter(c.Query("order_type")),
		Sort:      query.SortDirection(c.Query("sort")),
	}

	// The status filter accepts both the numeric code and the display label.
	if statusStr := c.Query("status"); statusStr != "" {
		if code, err := strconv.Atoi(statusStr); err == nil {
			status := enum.OrderStatus(code)
			if status.IsValid() {
				filters.Status = &status
			}
		} else if status, ok := enum.ParseOrderStatus(statusStr); ok {
			filters.Status = &status
		}
	}

	// A positive limit returns the first matching orders without paging.
	if limit, _ := strconv.Atoi(c.Query("limit")); limit > 0 {
		orders, err := h.orderService.RecentOrders(c.Request.Context(), search, filters, limit)
		if err != nil {
			response.Error(c, err)
			return
		}
		response.OK(c, "Orders retrieved successfully", orders)
		return
	}

	result, err := h.orderService.ListOrders(c.Request.Context(), search, filters, page)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Orders retrieved successfully", result)
}

// Create handles creating an order
func (h *OrderHandler) Create(c *gin.Context) {
	var req struct {
		ClientName  string  `json:"client_name"`
		TableName   string  `json:"table_name"`
		OrderType   string  `json:"order_type"`
		Observation string  `json:"observation"`
		DeliveryFee float64 `json:"delivery_fee"`
		Discount    float64 `json:"discount"`
		Items       []struct {
			ProductID *uuid.UUID `json:"product_id"`
			Name      string     `json:"name"`
			Price     float64    `json:"price"`
			Quantity  int        `json:"quantity"`
			Note      string     `json:"note"`
			Additions []struct {
				Name     string  `json:"name"`
				Price    float64 `json:"price"`
				Quantity int     `json:"quantity"`
			} `json:"additions"`
		} `json:"items" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	items := make([]service.OrderItemInput, len(req.Items))
	for i, item := range req.Items {
		additions := make([]service.AdditionInput, len(item.Additions))
		for j, add := range item.Additions {
			additions[j] = service.AdditionInput{
				Name:      add.Name,
				UnitPrice: add.Price,
				Quantity:  add.Quantity,
			}
		}
		items[i] = service.OrderItemInput{
			ProductID: item.ProductID,
			Name:      item.Name,
			UnitPrice: item.Price,
			Quantity:  item.Quantity,
			Note:      item.Note,
			Additions: additions,
		}
	}

	order, err := h.orderService.CreateOrder(c.Request.Context(), &service.CreateOrderInput{
		ClientName:  req.ClientName,
		TableName:   req.TableName,
		OrderType:   enum.OrderType(req.OrderType),
		Observation: req.Observation,
		DeliveryFee: req.DeliveryFee,
		Discount:    req.Discount,
		Items:       items,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Order created successfully", order)
}

// Get handles getting a single order
func (h *OrderHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid order ID")
		return
	}

	order, err := h.orderService.GetOrder(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Order retrieved successfully", order)
}

// Update handles editing an order's details
func (h *OrderHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid order ID")
		return
	}

	var req struct {
		ClientName  *string  `json:"client_name"`
		TableName   *string  `json:"table_name"`
		Observation *string  `json:"observation"`
		DeliveryFee *float64 `json:"delivery_fee"`
		Discount    *float64 `json:"discount"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	order, err := h.orderService.UpdateOrder(c.Request.Context(), id, &service.UpdateOrderInput{
		ClientName:  req.ClientName,
		TableName:   req.TableName,
		Observation: req.Observation,
		DeliveryFee: req.DeliveryFee,
		Discount:    req.Discount,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Order updated successfully", order)
}

// Advance handles moving an order to its next status
func (h *OrderHandler) Advance(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid order ID")
		return
	}

	order, err := h.orderService.Advance(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Order status updated successfully", order)
}

// Cancel handles cancelling an order
func (h *OrderHandler) Cancel(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid order ID")
		return
	}

	order, err := h.orderService.Cancel(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Order cancelled successfully", order)
}

// Finalize handles settling a delivered order with a payment
func (h *OrderHandler) Finalize(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid order ID")
		return
	}

	var req struct {
		PaymentMethod string  `json:"payment_method" binding:"required"`
		PaidAmount    float64 `json:"paid_amount"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	order, err := h.orderService.FinalizeWithPayment(c.Request.Context(), id, &service.FinalizeInput{
		PaymentMethod: req.PaymentMethod,
		PaidAmount:    req.PaidAmount,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Order finalized successfully", order)
}

// Invoice handles downloading the invoice of a finalized order. By default
// the PDF is returned base64-encoded in the JSON envelope; format=pdf streams
// the raw file.
func (h *OrderHandler) Invoice(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid order ID")
		return
	}

	inv, err := h.orderService.Invoice(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	if c.Query("format") == "pdf" {
		c.Header("Content-Disposition", `attachment; filename="`+inv.Filename()+`"`)
		c.Data(200, "application/pdf", inv.Render())
		return
	}

	response.OK(c, "Invoice generated successfully", gin.H{
		"filename": inv.Filename(),
		"content":  inv.RenderBase64(),
	})
}
