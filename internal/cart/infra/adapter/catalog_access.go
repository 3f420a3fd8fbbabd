package adapter

import (
	"context"
	"errors"

	cartapp "github.com/dwikikusuma/pharmacy-pos/internal/cart/app"
	catalogapp "github.com/dwikikusuma/pharmacy-pos/internal/catalog/app"
)

type CatalogServiceReader struct {
	svc *catalogapp.Service
}

func NewCatalogServiceReader(svc *catalogapp.Service) *CatalogServiceReader {
	return &CatalogServiceReader{svc: svc}
}

func (r *CatalogServiceReader) Item(ctx context.Context, itemID string) (cartapp.Item, error) {
	item, err := r.svc.GetItem(ctx, itemID)
	if err != nil {
		if errors.Is(err, catalogapp.ErrNotFound) || errors.Is(err, catalogapp.ErrInvalidInput) {
			return cartapp.Item{}, cartapp.ErrNotFound
		}
		return cartapp.Item{}, err
	}

	return cartapp.Item{
		ID:    item.ID,
		Name:  item.Name,
		Price: item.Price,
		Stock: item.Stock,
	}, nil
}
