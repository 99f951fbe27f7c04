package order

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
)

// StockInventory tracks available units per product in memory.
type StockInventory struct {
	mu     sync.Mutex
	stock  map[string]int
	logger *slog.Logger
}

// NewStockInventory creates an inventory with the given starting stock.
func NewStockInventory(stock map[string]int, logger *slog.Logger) *StockInventory {
	s := make(map[string]int, len(stock))
	for k, v := range stock {
		s[k] = v
	}
	return &StockInventory{stock: s, logger: logger}
}

// Check reserves one unit of productID.
func (s *StockInventory) Check(_ context.Context, productID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.logger.Debug("checking inventory", "product_id", productID)
	if s.stock[productID] <= 0 {
		return fmt.Errorf("%w: %s", ErrOutOfStock, productID)
	}
	s.stock[productID]--
	return nil
}

// Remaining returns the units left for productID.
func (s *StockInventory) Remaining(productID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stock[productID]
}

// LoggingPayments records charges and always succeeds.
type LoggingPayments struct{ Logger *slog.Logger }

func (p LoggingPayments) Charge(_ context.Context, orderID string, amount float64) error {
	p.Logger.Info("processing payment", "order_id", orderID, "amount", amount)
	return nil
}

// LoggingShipping records shipments and always succeeds.
type LoggingShipping struct{ Logger *slog.Logger }

func (s LoggingShipping) Ship(_ context.Context, orderID, address string) error {
	s.Logger.Info("shipping order", "order_id", orderID, "address", address)
	return nil
}

// LoggingNotifier records notifications and always succeeds.
type LoggingNotifier struct{ Logger *slog.Logger }

func (n LoggingNotifier) Notify(_ context.Context, orderID, message string) error {
	n.Logger.Info("sending notification", "order_id", orderID, "message", message)
	return nil
}
