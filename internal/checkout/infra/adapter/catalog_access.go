package adapter

import (
	"context"

	catalogapp "github.com/dwikikusuma/pharmacy-pos/internal/catalog/app"
	checkoutapp "github.com/dwikikusuma/pharmacy-pos/internal/checkout/app"
)

type CatalogServiceAccess struct {
	svc *catalogapp.Service
}

func NewCatalogServiceAccess(svc *catalogapp.Service) *CatalogServiceAccess {
	return &CatalogServiceAccess{svc: svc}
}

func (a *CatalogServiceAccess) Item(ctx context.Context, itemID string) (checkoutapp.Item, error) {
	item, err := a.svc.GetItem(ctx, itemID)
	if err != nil {
		return checkoutapp.Item{}, err
	}

	return checkoutapp.Item{
		ID:    item.ID,
		Name:  item.Name,
		Price: item.Price,
		Stock: item.Stock,
	}, nil
}

func (a *CatalogServiceAccess) CommitStock(ctx context.Context, decs []checkoutapp.StockDecrement) error {
	out := make([]catalogapp.StockDecrement, 0, len(decs))
	for _, d := range decs {
		out = append(out, catalogapp.StockDecrement{
			ItemID:   d.ItemID,
			Quantity: d.Quantity,
		})
	}
	return a.svc.CommitStockBatch(ctx, out)
}
