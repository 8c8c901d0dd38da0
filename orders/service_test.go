package orders

import (
	"context"
	"errors"
	"testing"

	"kirana/models"
)

// Mock stock adjuster backed by a plain map.
type mockStock struct {
	levels map[string]int
	calls  int
	failOn string
}

func newMockStock(levels map[string]int) *mockStock {
	return &mockStock{levels: levels}
}

func (m *mockStock) AdjustStock(ctx context.Context, productID string, delta int) (models.Product, error) {
	m.calls++
	if productID == m.failOn {
		return models.Product{}, errors.New("db down")
	}
	level, ok := m.levels[productID]
	if !ok {
		return models.Product{}, ErrProductNotFound
	}
	m.levels[productID] = level + delta
	return models.Product{ProductID: productID, Stock: level + delta}, nil
}

// Mock order store.
type mockStore struct {
	inserted  []models.Order
	orders    map[string]models.Order
	insertErr error
}

func newMockStore() *mockStore {
	return &mockStore{orders: make(map[string]models.Order)}
}

func (m *mockStore) Insert(ctx context.Context, order models.Order) error {
	if m.insertErr != nil {
		return m.insertErr
	}
	m.inserted = append(m.inserted, order)
	m.orders[order.OrderID] = order
	return nil
}

func (m *mockStore) FindByUser(ctx context.Context, userID string) ([]models.Order, error) {
	var out []models.Order
	for _, o := range m.orders {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (m *mockStore) FindByID(ctx context.Context, orderID string) (models.Order, error) {
	o, ok := m.orders[orderID]
	if !ok {
		return models.Order{}, ErrOrderNotFound
	}
	return o, nil
}

func (m *mockStore) FindAll(ctx context.Context) ([]models.Order, error) {
	var out []models.Order
	for _, o := range m.orders {
		out = append(out, o)
	}
	return out, nil
}

func (m *mockStore) SetStatus(ctx context.Context, orderID, status string) (models.Order, error) {
	o, ok := m.orders[orderID]
	if !ok {
		return models.Order{}, ErrOrderNotFound
	}
	o.Status = status
	m.orders[orderID] = o
	return o, nil
}

type mockNotifier struct {
	events []string
}

func (m *mockNotifier) Publish(eventType string, order models.Order) {
	m.events = append(m.events, eventType)
}

func twoLineRequest() models.OrderRequest {
	return models.OrderRequest{
		Items: []models.OrderItem{
			{ProductID: "productA", Name: "Tomatoes", Price: 35, Quantity: 2},
			{ProductID: "productB", Name: "Rice", Price: 100, Quantity: 1},
		},
		Total:         220,
		Address:       models.ShippingAddress{FullName: "Demo", Email: "d@g.com", Phone: "9876543210", Address: "12 Rd", City: "Pune", Pincode: "411001"},
		PaymentMethod: models.PaymentCOD,
	}
}

func TestPlaceDecrementsStockAndInsertsOnce(t *testing.T) {
	stock := newMockStock(map[string]int{"productA": 10, "productB": 5})
	store := newMockStore()
	notify := &mockNotifier{}
	svc := NewService(stock, store, notify)

	order, err := svc.Place(context.Background(), "u1", twoLineRequest())
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}

	if stock.levels["productA"] != 8 {
		t.Errorf("expected productA stock 8, got %d", stock.levels["productA"])
	}
	if stock.levels["productB"] != 4 {
		t.Errorf("expected productB stock 4, got %d", stock.levels["productB"])
	}
	if len(store.inserted) != 1 {
		t.Fatalf("expected exactly one order insert, got %d", len(store.inserted))
	}
	if len(order.Items) != 2 {
		t.Fatalf("expected 2 denormalized items, got %d", len(order.Items))
	}
	if order.Status != models.OrderPending {
		t.Errorf("expected status pending, got %q", order.Status)
	}
	if order.UserID != "u1" || order.OrderID == "" {
		t.Errorf("bad identity fields: %+v", order)
	}
	if len(notify.events) != 1 || notify.events[0] != "order_created" {
		t.Errorf("expected one order_created event, got %v", notify.events)
	}
}

func TestPlaceEmptyOrderRejected(t *testing.T) {
	svc := NewService(newMockStock(nil), newMockStore(), nil)

	_, err := svc.Place(context.Background(), "u1", models.OrderRequest{})
	if !errors.Is(err, ErrEmptyOrder) {
		t.Fatalf("expected ErrEmptyOrder, got %v", err)
	}
}

func TestPlaceDecrementIsUnconditional(t *testing.T) {
	// stale basket: only 1 in stock, order asks for 2
	stock := newMockStock(map[string]int{"productA": 1})
	store := newMockStore()
	svc := NewService(stock, store, nil)

	req := models.OrderRequest{
		Items: []models.OrderItem{{ProductID: "productA", Name: "Tomatoes", Price: 35, Quantity: 2}},
		Total: 120,
	}
	if _, err := svc.Place(context.Background(), "u1", req); err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if stock.levels["productA"] != -1 {
		t.Fatalf("expected stock driven to -1, got %d", stock.levels["productA"])
	}
}

func TestPlaceSkipsVanishedProducts(t *testing.T) {
	stock := newMockStock(map[string]int{"productB": 5})
	store := newMockStore()
	svc := NewService(stock, store, nil)

	if _, err := svc.Place(context.Background(), "u1", twoLineRequest()); err != nil {
		t.Fatalf("expected success despite vanished productA, got %v", err)
	}
	if stock.levels["productB"] != 4 {
		t.Errorf("expected productB stock 4, got %d", stock.levels["productB"])
	}
	if len(store.inserted) != 1 {
		t.Errorf("expected one insert, got %d", len(store.inserted))
	}
}

func TestPlaceInsertFailureLeavesDecrementsApplied(t *testing.T) {
	stock := newMockStock(map[string]int{"productA": 10, "productB": 5})
	store := newMockStore()
	store.insertErr = errors.New("write failed")
	svc := NewService(stock, store, nil)

	_, err := svc.Place(context.Background(), "u1", twoLineRequest())
	if err == nil {
		t.Fatal("expected insert failure to surface")
	}
	// no compensation: decrements stay applied
	if stock.levels["productA"] != 8 || stock.levels["productB"] != 4 {
		t.Fatalf("expected decrements to remain (8, 4), got (%d, %d)",
			stock.levels["productA"], stock.levels["productB"])
	}
	if len(store.inserted) != 0 {
		t.Fatal("no order should have been stored")
	}
}

func TestPlaceStockErrorAbortsWithoutRollback(t *testing.T) {
	stock := newMockStock(map[string]int{"productA": 10, "productB": 5})
	stock.failOn = "productB"
	store := newMockStore()
	svc := NewService(stock, store, nil)

	_, err := svc.Place(context.Background(), "u1", twoLineRequest())
	if err == nil {
		t.Fatal("expected stock failure to surface")
	}
	// productA was already decremented and stays that way
	if stock.levels["productA"] != 8 {
		t.Fatalf("expected productA stock 8, got %d", stock.levels["productA"])
	}
	if len(store.inserted) != 0 {
		t.Fatal("no order should have been stored")
	}
}

func TestCancelDoesNotRestoreStock(t *testing.T) {
	stock := newMockStock(map[string]int{"productA": 10, "productB": 5})
	store := newMockStore()
	notify := &mockNotifier{}
	svc := NewService(stock, store, notify)

	order, err := svc.Place(context.Background(), "u1", twoLineRequest())
	if err != nil {
		t.Fatal(err)
	}
	callsAfterPlace := stock.calls

	cancelled, err := svc.Cancel(context.Background(), order.OrderID)
	if err != nil {
		t.Fatalf("cancel failed: %v", err)
	}
	if cancelled.Status != models.OrderCancelled {
		t.Fatalf("expected status cancelled, got %q", cancelled.Status)
	}
	// stock untouched by cancellation
	if stock.calls != callsAfterPlace {
		t.Fatal("cancel must not touch stock")
	}
	if stock.levels["productA"] != 8 || stock.levels["productB"] != 4 {
		t.Fatalf("stock changed on cancel: (%d, %d)",
			stock.levels["productA"], stock.levels["productB"])
	}
	if len(notify.events) != 2 || notify.events[1] != "order_cancelled" {
		t.Errorf("expected order_cancelled event, got %v", notify.events)
	}
}

func TestCancelMissingOrder(t *testing.T) {
	svc := NewService(newMockStock(nil), newMockStore(), nil)

	_, err := svc.Cancel(context.Background(), "missing")
	if !errors.Is(err, ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound, got %v", err)
	}
}

func TestPlaceDefaultsPaymentMethod(t *testing.T) {
	stock := newMockStock(map[string]int{"productA": 10, "productB": 5})
	svc := NewService(stock, newMockStore(), nil)

	req := twoLineRequest()
	req.PaymentMethod = ""
	order, err := svc.Place(context.Background(), "u1", req)
	if err != nil {
		t.Fatal(err)
	}
	if order.PaymentMethod != models.PaymentCOD {
		t.Fatalf("expected default cod, got %q", order.PaymentMethod)
	}
}
