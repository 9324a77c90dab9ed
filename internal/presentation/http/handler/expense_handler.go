package handler

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/dromero-dev/comanda-api/internal/application/service"
	"github.com/dromero-dev/comanda-api/internal/presentation/http/dto/response"
)

// ExpenseHandler handles expense-related HTTP requests
type ExpenseHandler struct {
	expenseService *service.ExpenseService
}

// NewExpenseHandler creates a new expense handler
func NewExpenseHandler(expenseService *service.ExpenseService) *ExpenseHandler {
	return &ExpenseHandler{expenseService: expenseService}
}

type expenseRequest struct {
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Amount      float64 `json:"amount"`
	ExpenseDate string  `json:"expense_date"`
	Notes       string  `json:"notes"`
}

func (r *expenseRequest) toInput() *service.ExpenseInput {
	input := &service.ExpenseInput{
		Description: r.Description,
		Category:    r.Category,
		Amount:      r.Amount,
		Notes:       r.Notes,
	}
	if r.ExpenseDate != "" {
		if date, err := time.Parse("2006-01-02", r.ExpenseDate); err == nil {
			input.ExpenseDate = &date
		}
	}
	return input
}

func parseDateRange(c *gin.Context) (from, to *time.Time) {
	if fromStr := c.Query("from"); fromStr != "" {
		if date, err := time.Parse("2006-01-02", fromStr); err == nil {
			from = &date
		}
	}
	if toStr := c.Query("to"); toStr != "" {
		if date, err := time.Parse("2006-01-02", toStr); err == nil {
			end := date.Add(24*time.Hour - time.Nanosecond)
			to = &end
		}
	}
	return from, to
}

// List handles listing expenses. A positive limit returns only the most
// recent entries.
func (h *ExpenseHandler) List(c *gin.Context) {
	from, to := parseDateRange(c)
	limit, _ := strconv.Atoi(c.Query("limit"))
	expenses, err := h.expenseService.ListExpenses(c.Request.Context(), c.Query("category"), from, to, limit)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Expenses retrieved successfully", expenses)
}

// Get handles getting a single expense
func (h *ExpenseHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid expense ID")
		return
	}

	expense, err := h.expenseService.GetExpense(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Expense retrieved successfully", expense)
}

// Create handles recording an expense
func (h *ExpenseHandler) Create(c *gin.Context) {
	var req expenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	expense, err := h.expenseService.CreateExpense(c.Request.Context(), req.toInput())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Expense recorded successfully", expense)
}

// Update handles updating an expense
func (h *ExpenseHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid expense ID")
		return
	}

	var req expenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	expense, err := h.expenseService.UpdateExpense(c.Request.Context(), id, req.toInput())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Expense updated successfully", expense)
}

// Delete handles deleting an expense
func (h *ExpenseHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid expense ID")
		return
	}

	if err := h.expenseService.DeleteExpense(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Expense deleted successfully", nil)
}
