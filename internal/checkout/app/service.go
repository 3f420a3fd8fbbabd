package app

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/dwikikusuma/pharmacy-pos/internal/checkout/domain"
	"github.com/dwikikusuma/pharmacy-pos/internal/payment"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

type CartAccess interface {
	Lines(ctx context.Context) ([]CartLine, error)
	Clear(ctx context.Context) error
}

type CartLine struct {
	ItemID   string
	Quantity int
}

type CatalogAccess interface {
	Item(ctx context.Context, itemID string) (Item, error)
	CommitStock(ctx context.Context, decs []StockDecrement) error
}

type Item struct {
	ID    string
	Name  string
	Price decimal.Decimal
	Stock int
}

type StockDecrement struct {
	ItemID   string
	Quantity int
}

var (
	ErrEmptyCart = errors.New("cart is empty")
	ErrNoReceipt = errors.New("no receipt yet")
)

// Service commits a sale: validate tender, decrement stock as one atomic
// batch, snapshot the receipt, clear the cart. Only the most recent receipt
// is retained.
type Service struct {
	cart    CartAccess
	catalog CatalogAccess

	maxConcurrent int

	mu   sync.Mutex
	last *domain.Receipt
}

func NewService(cart CartAccess, catalog CatalogAccess, maxConcurrent int) *Service {
	if maxConcurrent <= 0 {
		maxConcurrent = 10
	}

	return &Service{
		cart:          cart,
		catalog:       catalog,
		maxConcurrent: maxConcurrent,
	}
}

// Quote prices the cart against the live catalog. Prices are resolved at
// call time, so a catalog edit between add and checkout changes the total.
func (s *Service) Quote(ctx context.Context) (domain.Quote, error) {
	items, err := s.cart.Lines(ctx)
	if err != nil {
		return domain.Quote{}, err
	}

	if len(items) == 0 {
		return domain.Quote{}, ErrEmptyCart
	}

	lines := make([]domain.QuoteLine, len(items))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.maxConcurrent)

	for idx := range items {
		idx := idx
		g.Go(func() error {
			it := items[idx]
			if it.Quantity <= 0 {
				return fmt.Errorf("quantity must be greater than zero: %d", it.Quantity)
			}

			item, err := s.catalog.Item(ctx, it.ItemID)
			if err != nil {
				return fmt.Errorf("failed to get item %s: %w", it.ItemID, err)
			}

			qty := decimal.NewFromInt(int64(it.Quantity))
			lines[idx] = domain.QuoteLine{
				ItemID:    item.ID,
				Name:      item.Name,
				Quantity:  it.Quantity,
				UnitPrice: item.Price,
				LineTotal: item.Price.Mul(qty),
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return domain.Quote{}, err
	}

	subtotal := decimal.Zero
	for _, line := range lines {
		subtotal = subtotal.Add(line.LineTotal)
	}

	return domain.Quote{Lines: lines, Subtotal: subtotal}, nil
}

// CanComplete reports whether Complete would settle with the given tender.
func (s *Service) CanComplete(ctx context.Context, method payment.Method, tendered string) bool {
	quote, err := s.Quote(ctx)
	if err != nil {
		return false
	}
	return payment.CanComplete(len(quote.Lines), method, tendered, quote.Subtotal)
}

// Complete runs the sale. Any failure leaves cart and catalog untouched:
// tender is validated first, and the stock decrement is one all-or-nothing
// batch that re-checks every line at commit time.
func (s *Service) Complete(ctx context.Context, method payment.Method, tendered string) (domain.Receipt, error) {
	quote, err := s.Quote(ctx)
	if err != nil {
		return domain.Receipt{}, err
	}

	settlement, err := payment.Settle(method, tendered, quote.Subtotal)
	if err != nil {
		return domain.Receipt{}, err
	}

	decs := make([]StockDecrement, 0, len(quote.Lines))
	for _, line := range quote.Lines {
		decs = append(decs, StockDecrement{ItemID: line.ItemID, Quantity: line.Quantity})
	}
	if err := s.catalog.CommitStock(ctx, decs); err != nil {
		return domain.Receipt{}, err
	}

	receipt := domain.Receipt{
		Date:          time.Now(),
		Lines:         make([]domain.ReceiptLine, 0, len(quote.Lines)),
		Subtotal:      quote.Subtotal,
		PaymentMethod: settlement.Method,
	}
	for _, line := range quote.Lines {
		receipt.Lines = append(receipt.Lines, domain.ReceiptLine{
			Name:      line.Name,
			Quantity:  line.Quantity,
			UnitPrice: line.UnitPrice,
			LineTotal: line.LineTotal,
		})
	}
	if settlement.Method == payment.Cash {
		received := settlement.Received
		change := settlement.Change
		receipt.AmountReceived = &received
		receipt.Change = &change
	}

	if err := s.cart.Clear(ctx); err != nil {
		return domain.Receipt{}, err
	}

	s.mu.Lock()
	s.last = &receipt
	s.mu.Unlock()

	return receipt, nil
}

// LastReceipt returns the most recent committed sale.
func (s *Service) LastReceipt() (domain.Receipt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.last == nil {
		return domain.Receipt{}, ErrNoReceipt
	}
	return *s.last, nil
}
