package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/dromero-dev/comanda-api/internal/application/query"
	"github.com/dromero-dev/comanda-api/internal/domain/entity"
	"github.com/dromero-dev/comanda-api/internal/domain/enum"
	"github.com/dromero-dev/comanda-api/internal/domain/repository"
	"github.com/dromero-dev/comanda-api/pkg/apperror"
	"github.com/dromero-dev/comanda-api/pkg/invoice"
	"github.com/dromero-dev/comanda-api/pkg/pagination"
	"github.com/dromero-dev/comanda-api/pkg/utils"
)

// OrderService handles order-related operations
type OrderService struct {
	orderRepo    repository.OrderRepository
	productRepo  repository.ProductRepository
	clientRepo   repository.ClientRepository
	businessName string
}

// NewOrderService creates a new order service
func NewOrderService(orderRepo repository.OrderRepository, productRepo repository.ProductRepository, clientRepo repository.ClientRepository, businessName string) *OrderService {
	return &OrderService{
		orderRepo:    orderRepo,
		productRepo:  productRepo,
		clientRepo:   clientRepo,
		businessName: businessName,
	}
}

// AdditionInput represents an extra on an order item
type AdditionInput struct {
	Name      string
	UnitPrice float64
	Quantity  int
}

// OrderItemInput represents an item in an order. When ProductID is set the
// name and price are snapshotted from inventory and stock is decremented;
// otherwise the free-form name and price are used as given.
type OrderItemInput struct {
	ProductID *uuid.UUID
	Name      string
	UnitPrice float64
	Quantity  int
	Note      string
	Additions []AdditionInput
}

// CreateOrderInput represents the create order input
type CreateOrderInput struct {
	ClientName  string
	TableName   string
	OrderType   enum.OrderType
	Observation string
	DeliveryFee float64
	Discount    float64
	Items       []OrderItemInput
}

// UpdateOrderInput carries the fields that may change after creation
type UpdateOrderInput struct {
	ClientName  *string
	TableName   *string
	Observation *string
	DeliveryFee *float64
	Discount    *float64
}

// ListOrders loads all orders and applies search, filters and pagination
func (s *OrderService) ListOrders(ctx context.Context, search string, filters query.Filters, page int) (*pagination.Result[entity.Order], error) {
	orders, err := s.orderRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return query.Page(orders, search, filters, page), nil
}

// RecentOrders runs the same search, filters and ordering but keeps only the
// first limit orders, bypassing pagination entirely.
func (s *OrderService) RecentOrders(ctx context.Context, search string, filters query.Filters, limit int) ([]entity.Order, error) {
	orders, err := s.orderRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return pagination.Head(query.Run(orders, search, filters), limit), nil
}

// GetOrder retrieves an order with its items and sale
func (s *OrderService) GetOrder(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	order, err := s.orderRepo.GetWithItems(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Order")
	}
	return order, nil
}

// CreateOrder creates a new order with its items and additions
func (s *OrderService) CreateOrder(ctx context.Context, input *CreateOrderInput) (*entity.Order, error) {
	if len(input.Items) == 0 {
		return nil, apperror.NewBadRequestError("An order needs at least one item")
	}
	if input.OrderType != "" && !input.OrderType.IsValid() {
		return nil, apperror.NewBadRequestError("Unknown order type")
	}

	// Items are validated and products resolved before anything is written.
	// The stock decrements are applied together with the order create in one
	// transaction, so a failure further down leaves stock untouched.
	items := make([]entity.OrderItem, 0, len(input.Items))
	decrements := make([]repository.StockDecrement, 0, len(input.Items))
	for _, in := range input.Items {
		if in.Quantity < 1 {
			return nil, apperror.NewBadRequestError("Item quantity must be at least 1")
		}

		name := in.Name
		unitPrice := int64(in.UnitPrice * 100)
		if in.ProductID != nil {
			product, err := s.productRepo.GetByID(ctx, *in.ProductID)
			if err != nil {
				return nil, err
			}
			if product == nil {
				return nil, apperror.NewNotFoundError(fmt.Sprintf("Product %s", in.ProductID))
			}
			if product.StockQuantity < in.Quantity {
				return nil, apperror.NewBadRequestError(fmt.Sprintf("Insufficient stock for %s", product.Name))
			}
			name = product.Name
			unitPrice = product.Price
			decrements = append(decrements, repository.StockDecrement{
				ProductID: product.ID,
				Quantity:  in.Quantity,
			})
		}
		if name == "" {
			return nil, apperror.NewBadRequestError("Item name is required")
		}

		additions := make([]entity.Addition, 0, len(in.Additions))
		for _, add := range in.Additions {
			qty := add.Quantity
			if qty < 1 {
				qty = 1
			}
			additions = append(additions, entity.Addition{
				Name:      add.Name,
				UnitPrice: int64(add.UnitPrice * 100),
				Quantity:  qty,
			})
		}

		items = append(items, entity.OrderItem{
			ProductName: name,
			UnitPrice:   unitPrice,
			Quantity:    in.Quantity,
			Total:       unitPrice * int64(in.Quantity),
			Note:        in.Note,
			Additions:   additions,
		})
	}

	order := &entity.Order{
		ClientName:  input.ClientName,
		TableName:   input.TableName,
		OrderType:   input.OrderType,
		Status:      enum.OrderStatusPending,
		DeliveryFee: int64(input.DeliveryFee * 100),
		Discount:    int64(input.Discount * 100),
		Observation: input.Observation,
		Items:       items,
	}
	if order.OrderType == enum.OrderTypeTakeout && order.TableName == "" {
		order.TableName = entity.TakeoutTableName
	}

	if err := s.orderRepo.Create(ctx, order, decrements); err != nil {
		if errors.Is(err, repository.ErrInsufficientStock) {
			return nil, apperror.NewBadRequestError("Insufficient stock")
		}
		return nil, err
	}
	return order, nil
}

// UpdateOrder changes the editable fields of an order that has not reached a
// terminal state
func (s *OrderService) UpdateOrder(ctx context.Context, id uuid.UUID, input *UpdateOrderInput) (*entity.Order, error) {
	order, err := s.GetOrder(ctx, id)
	if err != nil {
		return nil, err
	}
	if order.Status.IsTerminal() {
		return nil, apperror.ErrTerminalState
	}

	if input.ClientName != nil {
		order.ClientName = *input.ClientName
	}
	if input.TableName != nil {
		order.TableName = *input.TableName
	}
	if input.Observation != nil {
		order.Observation = *input.Observation
	}
	if input.DeliveryFee != nil {
		order.DeliveryFee = int64(*input.DeliveryFee * 100)
	}
	if input.Discount != nil {
		order.Discount = int64(*input.Discount * 100)
	}

	if err := s.orderRepo.Update(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

// Advance moves the order one step along the preparation chain. Entering the
// finalized state requires a payment method; when the order already carries
// one, the sale is settled for the exact total.
func (s *OrderService) Advance(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	order, err := s.GetOrder(ctx, id)
	if err != nil {
		return nil, err
	}

	next, ok := order.Status.Next()
	if !ok {
		return nil, apperror.ErrTerminalState
	}

	if next == enum.OrderStatusFinalized {
		if order.PaymentMethod == "" {
			return nil, apperror.ErrPaymentRequired
		}
		return s.finalize(ctx, order, order.PaymentMethod, order.TotalCents())
	}

	if err := s.orderRepo.UpdateStatus(ctx, order.ID, next); err != nil {
		return nil, err
	}
	order.Status = next
	return order, nil
}

// Cancel moves the order to the cancelled state. Cancelling an already
// cancelled order succeeds without touching it; a finalized order cannot be
// cancelled.
func (s *OrderService) Cancel(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	order, err := s.GetOrder(ctx, id)
	if err != nil {
		return nil, err
	}

	switch order.Status {
	case enum.OrderStatusCancelled:
		return order, nil
	case enum.OrderStatusFinalized:
		return nil, apperror.ErrTerminalState
	}

	if err := s.orderRepo.UpdateStatus(ctx, order.ID, enum.OrderStatusCancelled); err != nil {
		return nil, err
	}
	order.Status = enum.OrderStatusCancelled
	return order, nil
}

// FinalizeInput represents the finalize-with-payment input
type FinalizeInput struct {
	PaymentMethod string
	PaidAmount    float64
}

// FinalizeWithPayment settles a delivered order: it records the payment,
// creates the sale and moves the order to the finalized state in one
// transaction. Change is owed only when the customer paid more than the total.
func (s *OrderService) FinalizeWithPayment(ctx context.Context, id uuid.UUID, input *FinalizeInput) (*entity.Order, error) {
	if input.PaymentMethod == "" {
		return nil, apperror.ErrPaymentRequired
	}

	order, err := s.GetOrder(ctx, id)
	if err != nil {
		return nil, err
	}
	if order.Status.IsTerminal() {
		return nil, apperror.ErrTerminalState
	}
	if order.Status != enum.OrderStatusDelivered {
		return nil, apperror.NewConflictError("Only delivered orders can be finalized")
	}

	total := order.TotalCents()
	paid := int64(input.PaidAmount * 100)
	if paid == 0 {
		paid = total
	}
	if paid < total {
		return nil, apperror.NewBadRequestError("Paid amount is less than the order total")
	}

	return s.finalize(ctx, order, input.PaymentMethod, paid)
}

func (s *OrderService) finalize(ctx context.Context, order *entity.Order, method string, paid int64) (*entity.Order, error) {
	total := order.TotalCents()
	var change int64
	if paid > total {
		change = paid - total
	}

	sale := &entity.Sale{
		SaleNo:        utils.GenerateSaleNo(),
		OrderID:       order.ID,
		PaymentMethod: method,
		Total:         total,
		Paid:          paid,
		Change:        change,
		SaleDate:      time.Now(),
	}

	if err := s.orderRepo.Finalize(ctx, order, sale); err != nil {
		return nil, err
	}
	order.PaymentMethod = method
	order.Status = enum.OrderStatusFinalized
	order.SaleID = &sale.ID
	order.Sale = sale

	s.attributeBilling(ctx, order.ClientName, sale.Total)

	return order, nil
}

// attributeBilling adds the sale total to the named client's accumulated
// amount. The sale is already settled at this point, so a failed attribution
// only skips the counter and is logged instead of failing the request.
func (s *OrderService) attributeBilling(ctx context.Context, clientName string, total int64) {
	if clientName == "" {
		return
	}
	client, err := s.clientRepo.GetByName(ctx, clientName)
	if err == nil && client != nil {
		err = s.clientRepo.AddToBilled(ctx, client.ID, total)
	}
	if err != nil {
		log.Printf("Billing attribution for %q failed: %v", clientName, err)
	}
}

// Invoice builds the printable invoice for a finalized order
func (s *OrderService) Invoice(ctx context.Context, id uuid.UUID) (*invoice.Invoice, error) {
	order, err := s.GetOrder(ctx, id)
	if err != nil {
		return nil, err
	}
	if order.Status != enum.OrderStatusFinalized || order.Sale == nil {
		return nil, apperror.NewConflictError("Invoices exist only for finalized orders")
	}

	lines := make([]invoice.Line, 0, len(order.Items))
	for i := range order.Items {
		item := &order.Items[i]
		lines = append(lines, invoice.Line{
			Name:      item.ProductName,
			Quantity:  item.Quantity,
			UnitPrice: float64(item.UnitPrice) / 100,
			Total:     float64(item.EffectiveTotalCents()) / 100,
		})
		for j := range item.Additions {
			add := &item.Additions[j]
			lines = append(lines, invoice.Line{
				Name:      "+ " + add.Name,
				Quantity:  add.Quantity,
				UnitPrice: float64(add.UnitPrice) / 100,
			})
		}
	}

	return &invoice.Invoice{
		BusinessName:  s.businessName,
		SaleNo:        order.Sale.SaleNo,
		OrderNo:       order.OrderNo(),
		Date:          order.Sale.SaleDate.Format("2006-01-02"),
		ClientName:    order.ClientName,
		TableName:     order.TableName,
		PaymentMethod: order.Sale.PaymentMethod,
		Lines:         lines,
		DeliveryFee:   float64(order.DeliveryFee) / 100,
		Discount:      float64(order.Discount) / 100,
		Total:         float64(order.Sale.Total) / 100,
		Paid:          float64(order.Sale.Paid) / 100,
		Change:        float64(order.Sale.Change) / 100,
	}, nil
}
