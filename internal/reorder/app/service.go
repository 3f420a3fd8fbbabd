package app

import (
	"context"

	"github.com/dwikikusuma/pharmacy-pos/internal/catalog/domain"
)

// Catalog is the slice of the catalog service the advisor needs. The catalog
// app service satisfies it directly.
type Catalog interface {
	ListItems(ctx context.Context) ([]domain.Item, error)
	GetItem(ctx context.Context, id string) (domain.Item, error)
	AddStock(ctx context.Context, id string, qty int) (domain.Item, error)
}

type Service struct {
	catalog Catalog
}

func NewService(catalog Catalog) *Service {
	return &Service{catalog: catalog}
}

// LowStockItems returns every item at or below its reorder level, in catalog
// order.
func (s *Service) LowStockItems(ctx context.Context) ([]domain.Item, error) {
	items, err := s.catalog.ListItems(ctx)
	if err != nil {
		return nil, err
	}

	low := make([]domain.Item, 0)
	for _, item := range items {
		if item.LowStock() {
			low = append(low, item)
		}
	}
	return low, nil
}

// SuggestedOrderQuantity brings stock up to at least twice the reorder level,
// but never suggests less than the reorder level itself.
func SuggestedOrderQuantity(item domain.Item) int {
	qty := item.ReorderLevel*2 - item.Stock
	if qty < item.ReorderLevel {
		return item.ReorderLevel
	}
	return qty
}

// PlaceOrder applies the suggested restock to the item. It is not
// idempotent: each call adds another order's worth of stock.
func (s *Service) PlaceOrder(ctx context.Context, itemID string) (domain.Item, error) {
	item, err := s.catalog.GetItem(ctx, itemID)
	if err != nil {
		return domain.Item{}, err
	}
	return s.catalog.AddStock(ctx, itemID, SuggestedOrderQuantity(item))
}
