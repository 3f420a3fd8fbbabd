package app

import (
	"context"

	"github.com/dwikikusuma/pharmacy-pos/internal/catalog/domain"
)

// StockDecrement is one line of an atomic sale commit.
type StockDecrement struct {
	ItemID   string
	Quantity int
}

type ItemRepo interface {
	List(ctx context.Context) ([]domain.Item, error)
	Get(ctx context.Context, id string) (domain.Item, error)
	Create(ctx context.Context, item domain.Item) (domain.Item, error)
	Update(ctx context.Context, item domain.Item) (domain.Item, error)
	Delete(ctx context.Context, id string) error

	// AdjustStock applies a single stock delta as one critical section.
	AdjustStock(ctx context.Context, id string, delta int) (domain.Item, error)

	// DecrementBatch applies every decrement or none: if any line would take
	// stock below zero the whole batch is rejected.
	DecrementBatch(ctx context.Context, decs []StockDecrement) error
}
