package main

import (
	"context"

	catalogapp "github.com/dwikikusuma/pharmacy-pos/internal/catalog/app"
	"github.com/shopspring/decimal"
)

// seedCatalog loads the starter shelf. State is process-scoped; the catalog
// starts from this set on every boot.
func seedCatalog(ctx context.Context, svc *catalogapp.Service) error {
	starters := []catalogapp.CreateItemParams{
		{Name: "Paracetamol 500mg", Price: decimal.RequireFromString("5.99"), Stock: 150, ReorderLevel: 50},
		{Name: "Ibuprofen 200mg", Price: decimal.RequireFromString("7.49"), Stock: 30, ReorderLevel: 40},
		{Name: "Vitamin C 1000mg", Price: decimal.RequireFromString("12.99"), Stock: 80, ReorderLevel: 30},
		{Name: "Cough Syrup", Price: decimal.RequireFromString("8.99"), Stock: 25, ReorderLevel: 35},
		{Name: "Hand Sanitizer 500ml", Price: decimal.RequireFromString("4.99"), Stock: 200, ReorderLevel: 60},
	}

	for _, p := range starters {
		if _, err := svc.CreateItem(ctx, p); err != nil {
			return err
		}
	}
	return nil
}
