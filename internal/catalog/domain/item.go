package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Item is a sellable catalog entry. Stock and ReorderLevel are whole units;
// Price is the unit price in the store currency.
type Item struct {
	ID           string
	Name         string
	Price        decimal.Decimal
	Stock        int
	ReorderLevel int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// LowStock reports whether the item is at or below its reorder threshold.
func (i Item) LowStock() bool {
	return i.Stock <= i.ReorderLevel
}
