// Package order hides inventory, payment, shipping and notification
// subsystems behind a single Facade.
package order

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/ajitpratap0/patternkit/internal/metrics"
)

var (
	// ErrOutOfStock is returned when the product cannot be reserved.
	ErrOutOfStock = errors.New("product out of stock")

	// ErrInvalidOrder is returned for orders missing a product, amount or address.
	ErrInvalidOrder = errors.New("invalid order")
)

// Order is a request to buy one product.
type Order struct {
	ProductID string  `json:"product_id"`
	Amount    float64 `json:"amount"`
	Address   string  `json:"address"`
}

// Receipt describes a processed order.
type Receipt struct {
	OrderID     string    `json:"order_id"`
	ProductID   string    `json:"product_id"`
	Amount      float64   `json:"amount"`
	Address     string    `json:"address"`
	ProcessedAt time.Time `json:"processed_at"`
}

// Inventory reserves stock.
type Inventory interface {
	Check(ctx context.Context, productID string) error
}

// Payments charges the customer.
type Payments interface {
	Charge(ctx context.Context, orderID string, amount float64) error
}

// Shipping dispatches the goods.
type Shipping interface {
	Ship(ctx context.Context, orderID, address string) error
}

// Notifier tells the customer what happened.
type Notifier interface {
	Notify(ctx context.Context, orderID, message string) error
}

// Facade runs the full order workflow in a fixed sequence.
type Facade struct {
	inventory Inventory
	payments  Payments
	shipping  Shipping
	notifier  Notifier
	logger    *slog.Logger
	now       func() time.Time
}

// NewFacade creates a facade over the given subsystems.
func NewFacade(inv Inventory, pay Payments, ship Shipping, notify Notifier, logger *slog.Logger) *Facade {
	return &Facade{
		inventory: inv,
		payments:  pay,
		shipping:  ship,
		notifier:  notify,
		logger:    logger,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// Process checks inventory, charges, ships and notifies, stopping at the first failure.
func (f *Facade) Process(ctx context.Context, o Order) (*Receipt, error) {
	if o.ProductID == "" || o.Address == "" || o.Amount <= 0 {
		metrics.Inc(metrics.OrdersFailed)
		return nil, fmt.Errorf("%w: product, positive amount and address are required", ErrInvalidOrder)
	}
	id := uuid.NewString()
	log := f.logger.With("order_id", id, "product_id", o.ProductID)

	if err := f.inventory.Check(ctx, o.ProductID); err != nil {
		return nil, f.fail(log, "inventory", err)
	}
	if err := f.payments.Charge(ctx, id, o.Amount); err != nil {
		return nil, f.fail(log, "payment", err)
	}
	if err := f.shipping.Ship(ctx, id, o.Address); err != nil {
		return nil, f.fail(log, "shipping", err)
	}
	if err := f.notifier.Notify(ctx, id, "Your order has been processed successfully"); err != nil {
		return nil, f.fail(log, "notification", err)
	}

	metrics.Inc(metrics.OrdersProcessed)
	log.Info("order processed", "amount", o.Amount)
	return &Receipt{
		OrderID:     id,
		ProductID:   o.ProductID,
		Amount:      o.Amount,
		Address:     o.Address,
		ProcessedAt: f.now(),
	}, nil
}

func (f *Facade) fail(log *slog.Logger, step string, err error) error {
	metrics.Inc(metrics.OrdersFailed)
	log.Error("order failed", "step", step, "error", err)
	return fmt.Errorf("order: %s: %w", step, err)
}

// ProcessBatch processes orders concurrently, at most limit at a time.
// Receipts are returned in input order. The first failure cancels the rest.
func (f *Facade) ProcessBatch(ctx context.Context, orders []Order, limit int) ([]*Receipt, error) {
	receipts := make([]*Receipt, len(orders))
	g, gctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}
	for i := range orders {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			r, err := f.Process(gctx, orders[i])
			if err != nil {
				return fmt.Errorf("orders[%d]: %w", i, err)
			}
			receipts[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return receipts, nil
}
