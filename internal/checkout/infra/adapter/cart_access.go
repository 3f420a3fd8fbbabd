package adapter

import (
	"context"

	cartapp "github.com/dwikikusuma/pharmacy-pos/internal/cart/app"
	checkoutapp "github.com/dwikikusuma/pharmacy-pos/internal/checkout/app"
)

type CartServiceAccess struct {
	svc *cartapp.Service
}

func NewCartServiceAccess(svc *cartapp.Service) *CartServiceAccess {
	return &CartServiceAccess{svc: svc}
}

func (a *CartServiceAccess) Lines(ctx context.Context) ([]checkoutapp.CartLine, error) {
	lines := a.svc.Lines()

	out := make([]checkoutapp.CartLine, 0, len(lines))
	for _, line := range lines {
		out = append(out, checkoutapp.CartLine{
			ItemID:   line.ItemID,
			Quantity: line.Quantity,
		})
	}
	return out, nil
}

func (a *CartServiceAccess) Clear(ctx context.Context) error {
	a.svc.Clear()
	return nil
}
