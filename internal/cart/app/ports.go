package app

import (
	"context"

	"github.com/shopspring/decimal"
)

type CatalogReader interface {
	Item(ctx context.Context, itemID string) (Item, error)
}

type Item struct {
	ID    string
	Name  string
	Price decimal.Decimal
	Stock int
}
