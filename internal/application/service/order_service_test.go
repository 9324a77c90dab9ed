package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dromero-dev/comanda-api/internal/application/query"
	"github.com/dromero-dev/comanda-api/internal/domain/entity"
	"github.com/dromero-dev/comanda-api/internal/domain/enum"
	"github.com/dromero-dev/comanda-api/internal/domain/repository"
	"github.com/dromero-dev/comanda-api/pkg/apperror"
)

type fakeOrderRepo struct {
	orders        map[uuid.UUID]*entity.Order
	sales         map[uuid.UUID]*entity.Sale
	products      *fakeProductRepo
	statusUpdates int
	createErr     error
	finalizeErr   error
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{
		orders: make(map[uuid.UUID]*entity.Order),
		sales:  make(map[uuid.UUID]*entity.Sale),
	}
}

func (f *fakeOrderRepo) Create(_ context.Context, order *entity.Order, decrements []repository.StockDecrement) error {
	if f.createErr != nil {
		return f.createErr
	}
	for _, d := range decrements {
		if f.products.products[d.ProductID].StockQuantity < d.Quantity {
			return repository.ErrInsufficientStock
		}
	}
	for _, d := range decrements {
		f.products.products[d.ProductID].StockQuantity -= d.Quantity
	}
	if order.ID == uuid.Nil {
		order.ID = uuid.New()
	}
	order.Number = int64(len(f.orders) + 1)
	f.orders[order.ID] = order
	return nil
}

func (f *fakeOrderRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Order, error) {
	return f.orders[id], nil
}

func (f *fakeOrderRepo) GetWithItems(_ context.Context, id uuid.UUID) (*entity.Order, error) {
	return f.orders[id], nil
}

func (f *fakeOrderRepo) Update(_ context.Context, order *entity.Order) error {
	f.orders[order.ID] = order
	return nil
}

func (f *fakeOrderRepo) ListAll(_ context.Context) ([]entity.Order, error) {
	out := make([]entity.Order, 0, len(f.orders))
	for _, o := range f.orders {
		out = append(out, *o)
	}
	return out, nil
}

func (f *fakeOrderRepo) UpdateStatus(_ context.Context, id uuid.UUID, status enum.OrderStatus) error {
	f.statusUpdates++
	f.orders[id].Status = status
	return nil
}

func (f *fakeOrderRepo) Finalize(_ context.Context, order *entity.Order, sale *entity.Sale) error {
	if f.finalizeErr != nil {
		return f.finalizeErr
	}
	if sale.ID == uuid.Nil {
		sale.ID = uuid.New()
	}
	f.sales[sale.ID] = sale
	order.SaleID = &sale.ID
	f.orders[order.ID] = order
	return nil
}

func (f *fakeOrderRepo) CountByStatus(_ context.Context, status enum.OrderStatus) (int64, error) {
	var n int64
	for _, o := range f.orders {
		if o.Status == status {
			n++
		}
	}
	return n, nil
}

type fakeProductRepo struct {
	products map[uuid.UUID]*entity.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: make(map[uuid.UUID]*entity.Product)}
}

func (f *fakeProductRepo) Create(_ context.Context, p *entity.Product) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	f.products[p.ID] = p
	return nil
}

func (f *fakeProductRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Product, error) {
	return f.products[id], nil
}

func (f *fakeProductRepo) GetBySKU(_ context.Context, sku string) (*entity.Product, error) {
	for _, p := range f.products {
		if p.SKU == sku {
			return p, nil
		}
	}
	return nil, nil
}

func (f *fakeProductRepo) Update(_ context.Context, p *entity.Product) error {
	f.products[p.ID] = p
	return nil
}

func (f *fakeProductRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.products, id)
	return nil
}

func (f *fakeProductRepo) List(_ context.Context, _, _ string) ([]entity.Product, error) {
	out := make([]entity.Product, 0, len(f.products))
	for _, p := range f.products {
		out = append(out, *p)
	}
	return out, nil
}

func (f *fakeProductRepo) ListLowStock(_ context.Context) ([]entity.Product, error) {
	var out []entity.Product
	for _, p := range f.products {
		if p.IsLowStock() {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f *fakeProductRepo) AdjustStock(_ context.Context, id uuid.UUID, delta int) error {
	f.products[id].StockQuantity += delta
	return nil
}

type fakeClientRepo struct {
	clients map[uuid.UUID]*entity.Client
}

func newFakeClientRepo() *fakeClientRepo {
	return &fakeClientRepo{clients: make(map[uuid.UUID]*entity.Client)}
}

func (f *fakeClientRepo) Create(_ context.Context, c *entity.Client) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	f.clients[c.ID] = c
	return nil
}

func (f *fakeClientRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Client, error) {
	return f.clients[id], nil
}

func (f *fakeClientRepo) GetByName(_ context.Context, name string) (*entity.Client, error) {
	for _, c := range f.clients {
		if c.Name == name {
			return c, nil
		}
	}
	return nil, nil
}

func (f *fakeClientRepo) Update(_ context.Context, c *entity.Client) error {
	f.clients[c.ID] = c
	return nil
}

func (f *fakeClientRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.clients, id)
	return nil
}

func (f *fakeClientRepo) List(_ context.Context, _ string) ([]entity.Client, error) {
	out := make([]entity.Client, 0, len(f.clients))
	for _, c := range f.clients {
		out = append(out, *c)
	}
	return out, nil
}

func (f *fakeClientRepo) AddToBilled(_ context.Context, id uuid.UUID, amount int64) error {
	f.clients[id].TotalBilled += amount
	return nil
}

func seedOrder(repo *fakeOrderRepo, status enum.OrderStatus, paymentMethod string) *entity.Order {
	order := &entity.Order{
		ClientName:    "Laura",
		TableName:     "Mesa 3",
		Status:        status,
		PaymentMethod: paymentMethod,
		Items: []entity.OrderItem{
			{ProductName: "Bandeja paisa", UnitPrice: 32000, Quantity: 1, Total: 32000},
			{ProductName: "Limonada", UnitPrice: 5000, Quantity: 2, Total: 10000},
		},
	}
	_ = repo.Create(context.Background(), order, nil)
	return order
}

func newOrderService(repo *fakeOrderRepo) *OrderService {
	products := newFakeProductRepo()
	repo.products = products
	return NewOrderService(repo, products, newFakeClientRepo(), "La Esquina")
}

func TestAdvanceWalksTheChain(t *testing.T) {
	repo := newFakeOrderRepo()
	svc := newOrderService(repo)
	order := seedOrder(repo, enum.OrderStatusPending, "")

	for _, want := range []enum.OrderStatus{
		enum.OrderStatusPreparing,
		enum.OrderStatusDelivered,
	} {
		got, err := svc.Advance(context.Background(), order.ID)
		require.NoError(t, err)
		assert.Equal(t, want, got.Status)
	}
}

func TestAdvanceIntoFinalizedRequiresPayment(t *testing.T) {
	repo := newFakeOrderRepo()
	svc := newOrderService(repo)
	order := seedOrder(repo, enum.OrderStatusDelivered, "")

	_, err := svc.Advance(context.Background(), order.ID)

	assert.ErrorIs(t, err, apperror.ErrPaymentRequired)
	assert.Equal(t, enum.OrderStatusDelivered, repo.orders[order.ID].Status)
	assert.Zero(t, repo.statusUpdates)
	assert.Empty(t, repo.sales)
}

func TestAdvanceWithPaymentMethodSettlesExactTotal(t *testing.T) {
	repo := newFakeOrderRepo()
	svc := newOrderService(repo)
	order := seedOrder(repo, enum.OrderStatusDelivered, "tarjeta")

	got, err := svc.Advance(context.Background(), order.ID)

	require.NoError(t, err)
	assert.Equal(t, enum.OrderStatusFinalized, got.Status)
	require.NotNil(t, got.Sale)
	assert.Equal(t, int64(42000), got.Sale.Total)
	assert.Equal(t, int64(42000), got.Sale.Paid)
	assert.Zero(t, got.Sale.Change)
}

func TestAdvanceTerminalStates(t *testing.T) {
	for _, status := range []enum.OrderStatus{enum.OrderStatusFinalized, enum.OrderStatusCancelled} {
		t.Run(status.String(), func(t *testing.T) {
			repo := newFakeOrderRepo()
			svc := newOrderService(repo)
			order := seedOrder(repo, status, "")

			_, err := svc.Advance(context.Background(), order.ID)

			assert.ErrorIs(t, err, apperror.ErrTerminalState)
			assert.Equal(t, status, repo.orders[order.ID].Status)
		})
	}
}

func TestCancelSemantics(t *testing.T) {
	t.Run("active order cancels", func(t *testing.T) {
		repo := newFakeOrderRepo()
		svc := newOrderService(repo)
		order := seedOrder(repo, enum.OrderStatusPreparing, "")

		got, err := svc.Cancel(context.Background(), order.ID)

		require.NoError(t, err)
		assert.Equal(t, enum.OrderStatusCancelled, got.Status)
	})

	t.Run("cancelled order is a no-op", func(t *testing.T) {
		repo := newFakeOrderRepo()
		svc := newOrderService(repo)
		order := seedOrder(repo, enum.OrderStatusCancelled, "")

		got, err := svc.Cancel(context.Background(), order.ID)

		require.NoError(t, err)
		assert.Equal(t, enum.OrderStatusCancelled, got.Status)
		assert.Zero(t, repo.statusUpdates)
	})

	t.Run("finalized order cannot be cancelled", func(t *testing.T) {
		repo := newFakeOrderRepo()
		svc := newOrderService(repo)
		order := seedOrder(repo, enum.OrderStatusFinalized, "efectivo")

		_, err := svc.Cancel(context.Background(), order.ID)

		assert.ErrorIs(t, err, apperror.ErrTerminalState)
		assert.Equal(t, enum.OrderStatusFinalized, repo.orders[order.ID].Status)
	})
}

func TestFinalizeWithPaymentComputesChange(t *testing.T) {
	repo := newFakeOrderRepo()
	svc := newOrderService(repo)
	order := seedOrder(repo, enum.OrderStatusDelivered, "")

	got, err := svc.FinalizeWithPayment(context.Background(), order.ID, &FinalizeInput{
		PaymentMethod: "efectivo",
		PaidAmount:    500,
	})

	require.NoError(t, err)
	assert.Equal(t, enum.OrderStatusFinalized, got.Status)
	assert.Equal(t, "efectivo", got.PaymentMethod)
	require.NotNil(t, got.Sale)
	assert.Equal(t, int64(42000), got.Sale.Total)
	assert.Equal(t, int64(50000), got.Sale.Paid)
	assert.Equal(t, int64(8000), got.Sale.Change)
	assert.Contains(t, got.Sale.SaleNo, "VTA-")
}

func TestFinalizeWithPaymentValidation(t *testing.T) {
	tests := []struct {
		name    string
		status  enum.OrderStatus
		input   FinalizeInput
		wantErr error
	}{
		{
			name:    "missing payment method",
			status:  enum.OrderStatusDelivered,
			input:   FinalizeInput{PaidAmount: 500},
			wantErr: apperror.ErrPaymentRequired,
		},
		{
			name:    "not yet delivered",
			status:  enum.OrderStatusPreparing,
			input:   FinalizeInput{PaymentMethod: "efectivo"},
			wantErr: nil, // conflict, checked by code below
		},
		{
			name:    "already finalized",
			status:  enum.OrderStatusFinalized,
			input:   FinalizeInput{PaymentMethod: "efectivo"},
			wantErr: apperror.ErrTerminalState,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeOrderRepo()
			svc := newOrderService(repo)
			order := seedOrder(repo, tt.status, "")

			_, err := svc.FinalizeWithPayment(context.Background(), order.ID, &tt.input)

			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
			assert.Equal(t, tt.status, repo.orders[order.ID].Status)
			assert.Empty(t, repo.sales)
		})
	}
}

func TestFinalizeWithPaymentRejectsUnderpayment(t *testing.T) {
	repo := newFakeOrderRepo()
	svc := newOrderService(repo)
	order := seedOrder(repo, enum.OrderStatusDelivered, "")

	_, err := svc.FinalizeWithPayment(context.Background(), order.ID, &FinalizeInput{
		PaymentMethod: "efectivo",
		PaidAmount:    100,
	})

	require.Error(t, err)
	assert.Equal(t, enum.OrderStatusDelivered, repo.orders[order.ID].Status)
	assert.Empty(t, repo.sales)
}

func TestFinalizeFailureLeavesOrderUntouched(t *testing.T) {
	repo := newFakeOrderRepo()
	repo.finalizeErr = assert.AnError
	svc := newOrderService(repo)
	order := seedOrder(repo, enum.OrderStatusDelivered, "")

	_, err := svc.FinalizeWithPayment(context.Background(), order.ID, &FinalizeInput{
		PaymentMethod: "efectivo",
	})

	require.Error(t, err)
	stored := repo.orders[order.ID]
	assert.Equal(t, enum.OrderStatusDelivered, stored.Status)
	assert.Empty(t, stored.PaymentMethod)
	assert.Nil(t, stored.SaleID)
	assert.Empty(t, repo.sales)
}

func TestCreateOrderSnapshotsProductAndAdjustsStock(t *testing.T) {
	repo := newFakeOrderRepo()
	products := newFakeProductRepo()
	repo.products = products
	svc := NewOrderService(repo, products, newFakeClientRepo(), "La Esquina")

	product := &entity.Product{Name: "Arepa rellena", SKU: "AR-01", Price: 12000, StockQuantity: 10}
	require.NoError(t, products.Create(context.Background(), product))

	got, err := svc.CreateOrder(context.Background(), &CreateOrderInput{
		ClientName: "Pedro",
		OrderType:  enum.OrderTypeTakeout,
		Items: []OrderItemInput{
			{ProductID: &product.ID, Quantity: 2, Additions: []AdditionInput{{Name: "Queso extra", UnitPrice: 20, Quantity: 1}}},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, enum.OrderStatusPending, got.Status)
	assert.Equal(t, entity.TakeoutTableName, got.TableName)
	require.Len(t, got.Items, 1)
	assert.Equal(t, "Arepa rellena", got.Items[0].ProductName)
	assert.Equal(t, int64(24000), got.Items[0].Total)
	assert.Equal(t, int64(26000), got.Items[0].EffectiveTotalCents())
	assert.Equal(t, 8, products.products[product.ID].StockQuantity)
}

func TestCreateOrderFailureLeavesStockUnchanged(t *testing.T) {
	repo := newFakeOrderRepo()
	products := newFakeProductRepo()
	repo.products = products
	svc := NewOrderService(repo, products, newFakeClientRepo(), "La Esquina")

	product := &entity.Product{Name: "Arepa rellena", SKU: "AR-01", Price: 12000, StockQuantity: 10}
	require.NoError(t, products.Create(context.Background(), product))

	_, err := svc.CreateOrder(context.Background(), &CreateOrderInput{
		ClientName: "Pedro",
		Items: []OrderItemInput{
			{ProductID: &product.ID, Quantity: 2},
			{Name: "", UnitPrice: 5000, Quantity: 1},
		},
	})

	require.Error(t, err)
	assert.Equal(t, 10, products.products[product.ID].StockQuantity)
	assert.Empty(t, repo.orders)
}

func TestCreateOrderRejectsInsufficientStock(t *testing.T) {
	repo := newFakeOrderRepo()
	products := newFakeProductRepo()
	repo.products = products
	svc := NewOrderService(repo, products, newFakeClientRepo(), "La Esquina")

	product := &entity.Product{Name: "Limonada", SKU: "LI-01", Price: 5000, StockQuantity: 1}
	require.NoError(t, products.Create(context.Background(), product))

	_, err := svc.CreateOrder(context.Background(), &CreateOrderInput{
		ClientName: "Pedro",
		Items:      []OrderItemInput{{ProductID: &product.ID, Quantity: 2}},
	})

	require.Error(t, err)
	require.True(t, apperror.IsAppError(err))
	assert.Equal(t, 400, apperror.GetAppError(err).Code)
	assert.Equal(t, 1, products.products[product.ID].StockQuantity)
	assert.Empty(t, repo.orders)
}

func TestCreateOrderRepoFailureLeavesStockUnchanged(t *testing.T) {
	repo := newFakeOrderRepo()
	repo.createErr = assert.AnError
	products := newFakeProductRepo()
	repo.products = products
	svc := NewOrderService(repo, products, newFakeClientRepo(), "La Esquina")

	product := &entity.Product{Name: "Arepa rellena", SKU: "AR-01", Price: 12000, StockQuantity: 10}
	require.NoError(t, products.Create(context.Background(), product))

	_, err := svc.CreateOrder(context.Background(), &CreateOrderInput{
		ClientName: "Pedro",
		Items:      []OrderItemInput{{ProductID: &product.ID, Quantity: 2}},
	})

	require.Error(t, err)
	assert.Equal(t, 10, products.products[product.ID].StockQuantity)
	assert.Empty(t, repo.orders)
}

func TestFinalizeAttributesBillingToClient(t *testing.T) {
	repo := newFakeOrderRepo()
	repo.products = newFakeProductRepo()
	clients := newFakeClientRepo()
	svc := NewOrderService(repo, repo.products, clients, "La Esquina")

	client := &entity.Client{Name: "Laura"}
	require.NoError(t, clients.Create(context.Background(), client))
	order := seedOrder(repo, enum.OrderStatusDelivered, "")

	_, err := svc.FinalizeWithPayment(context.Background(), order.ID, &FinalizeInput{PaymentMethod: "efectivo"})

	require.NoError(t, err)
	assert.Equal(t, int64(42000), clients.clients[client.ID].TotalBilled)
}

func TestRecentOrdersBypassesPaging(t *testing.T) {
	repo := newFakeOrderRepo()
	svc := newOrderService(repo)
	seedOrder(repo, enum.OrderStatusCancelled, "")
	seedOrder(repo, enum.OrderStatusPending, "")
	seedOrder(repo, enum.OrderStatusDelivered, "")

	got, err := svc.RecentOrders(context.Background(), "", query.Filters{}, 2)

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, enum.OrderStatusPending, got[0].Status)
	assert.Equal(t, enum.OrderStatusDelivered, got[1].Status)
}

func TestCreateOrderRejectsEmptyItems(t *testing.T) {
	svc := newOrderService(newFakeOrderRepo())

	_, err := svc.CreateOrder(context.Background(), &CreateOrderInput{ClientName: "Ana"})

	require.Error(t, err)
	require.True(t, apperror.IsAppError(err))
	assert.Equal(t, 400, apperror.GetAppError(err).Code)
}

func TestInvoiceOnlyForFinalizedOrders(t *testing.T) {
	repo := newFakeOrderRepo()
	svc := newOrderService(repo)
	order := seedOrder(repo, enum.OrderStatusDelivered, "")

	_, err := svc.Invoice(context.Background(), order.ID)
	require.Error(t, err)

	_, err = svc.FinalizeWithPayment(context.Background(), order.ID, &FinalizeInput{PaymentMethod: "nequi"})
	require.NoError(t, err)

	inv, err := svc.Invoice(context.Background(), order.ID)
	require.NoError(t, err)
	assert.Equal(t, "factura-"+order.OrderNo()+".pdf", inv.Filename())
	assert.Equal(t, "nequi", inv.PaymentMethod)
	assert.Equal(t, float64(420), inv.Total)
	require.Len(t, inv.Lines, 2)
}
