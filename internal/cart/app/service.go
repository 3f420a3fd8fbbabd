package app

import (
	"context"
	"errors"
	"sync"

	"github.com/dwikikusuma/pharmacy-pos/internal/cart/domain"
	"github.com/shopspring/decimal"
)

var (
	ErrNotFound          = errors.New("not found")
	ErrInsufficientStock = errors.New("insufficient stock")
)

// Service is the cart for the sale in progress. One terminal owns one cart;
// the mutex serializes operator actions against it. The catalog is read live
// on every mutation so a line can never exceed current stock.
type Service struct {
	catalog CatalogReader

	mu    sync.Mutex
	lines []domain.Line
}

func NewService(catalog CatalogReader) *Service {
	return &Service{catalog: catalog}
}

// AddItem puts one unit of the item in the cart, or bumps an existing line
// by one. Adding past available stock is refused.
func (s *Service) AddItem(ctx context.Context, itemID string) error {
	item, err := s.catalog.Item(ctx, itemID)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lines {
		if s.lines[i].ItemID == itemID {
			if s.lines[i].Quantity+1 > item.Stock {
				return ErrInsufficientStock
			}
			s.lines[i].Quantity++
			return nil
		}
	}

	if item.Stock == 0 {
		return ErrInsufficientStock
	}

	s.lines = append(s.lines, domain.Line{ItemID: itemID, Quantity: 1})
	return nil
}

// UpdateQuantity adjusts a line by delta. A result that would drop to zero
// or exceed current stock leaves the line exactly as it was; dropping a line
// is only done through RemoveItem.
func (s *Service) UpdateQuantity(ctx context.Context, itemID string, delta int) error {
	item, err := s.catalog.Item(ctx, itemID)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lines {
		if s.lines[i].ItemID == itemID {
			newQty := s.lines[i].Quantity + delta
			if newQty <= 0 || newQty > item.Stock {
				return nil
			}
			s.lines[i].Quantity = newQty
			return nil
		}
	}

	return ErrNotFound
}

func (s *Service) RemoveItem(ctx context.Context, itemID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lines {
		if s.lines[i].ItemID == itemID {
			s.lines = append(s.lines[:i], s.lines[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// Subtotal sums quantity times the catalog's current unit price over all
// lines.
func (s *Service) Subtotal(ctx context.Context) (decimal.Decimal, error) {
	s.mu.Lock()
	lines := make([]domain.Line, len(s.lines))
	copy(lines, s.lines)
	s.mu.Unlock()

	total := decimal.Zero
	for _, line := range lines {
		price, err := s.unitPrice(ctx, line.ItemID)
		if err != nil {
			return decimal.Zero, err
		}
		total = total.Add(price.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}
	return total, nil
}

func (s *Service) Lines() []domain.Line {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Line, len(s.lines))
	copy(out, s.lines)
	return out
}

func (s *Service) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lines = nil
}

// unitPrice is the single price-resolution point: totals always reflect the
// catalog's current price, never a price captured at add time.
func (s *Service) unitPrice(ctx context.Context, itemID string) (decimal.Decimal, error) {
	item, err := s.catalog.Item(ctx, itemID)
	if err != nil {
		return decimal.Zero, err
	}
	return item.Price, nil
}
