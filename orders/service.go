package orders

import (
	"context"
	"errors"
	"fmt"
	"time"

	"kirana/models"
	"kirana/utils"
)

var (
	ErrEmptyOrder      = errors.New("order has no items")
	ErrProductNotFound = errors.New("product not found")
	ErrOrderNotFound   = errors.New("order not found")
)

// StockAdjuster applies a signed delta to a product's stock count.
type StockAdjuster interface {
	AdjustStock(ctx context.Context, productID string, delta int) (models.Product, error)
}

// Store persists and reads back orders.
type Store interface {
	Insert(ctx context.Context, order models.Order) error
	FindByUser(ctx context.Context, userID string) ([]models.Order, error)
	FindByID(ctx context.Context, orderID string) (models.Order, error)
	FindAll(ctx context.Context) ([]models.Order, error)
	SetStatus(ctx context.Context, orderID, status string) (models.Order, error)
}

// Notifier receives order lifecycle events (the admin live feed).
type Notifier interface {
	Publish(eventType string, order models.Order)
}

type Service struct {
	stock  StockAdjuster
	store  Store
	notify Notifier
}

func NewService(stock StockAdjuster, store Store, notify Notifier) *Service {
	return &Service{stock: stock, store: store, notify: notify}
}

// Place converts a submitted cart snapshot into a persisted order.
//
// Stock is decremented per item as a sequence of independent single-
// document updates: decrements are unconditional (stock may go negative
// on stale baskets or racing checkouts) and are not rolled back if the
// order insert later fails. A vanished product is skipped rather than
// failing the whole order. The submitted total is stored as-is.
func (s *Service) Place(ctx context.Context, userID string, req models.OrderRequest) (models.Order, error) {
	if len(req.Items) == 0 {
		return models.Order{}, ErrEmptyOrder
	}

	for _, item := range req.Items {
		if _, err := s.stock.AdjustStock(ctx, item.ProductID, -item.Quantity); err != nil {
			if errors.Is(err, ErrProductNotFound) {
				continue
			}
			return models.Order{}, fmt.Errorf("stock update failed: %w", err)
		}
	}

	paymentMethod := req.PaymentMethod
	if paymentMethod == "" {
		paymentMethod = models.PaymentCOD
	}

	order := models.Order{
		OrderID:       "o" + utils.GetUUID(),
		UserID:        userID,
		Items:         req.Items,
		Total:         req.Total,
		Address:       req.Address,
		PaymentMethod: paymentMethod,
		Status:        models.OrderPending,
		CreatedAt:     time.Now(),
	}
	if err := s.store.Insert(ctx, order); err != nil {
		return models.Order{}, fmt.Errorf("order insert failed: %w", err)
	}

	if s.notify != nil {
		s.notify.Publish("order_created", order)
	}
	return order, nil
}

// Cancel flips an order to cancelled. The update is unconditional: no
// ownership check beyond route-level auth, and stock is not restored.
func (s *Service) Cancel(ctx context.Context, orderID string) (models.Order, error) {
	order, err := s.store.SetStatus(ctx, orderID, models.OrderCancelled)
	if err != nil {
		return models.Order{}, err
	}
	if s.notify != nil {
		s.notify.Publish("order_cancelled", order)
	}
	return order, nil
}
