package app

import (
	"context"
	"errors"
	"strings"

	"github.com/dwikikusuma/pharmacy-pos/internal/catalog/domain"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrNotFound          = errors.New("not found")
	ErrInsufficientStock = errors.New("insufficient stock")
)

type Service struct {
	repo ItemRepo
}

func NewService(repo ItemRepo) *Service {
	return &Service{
		repo: repo,
	}
}

type CreateItemParams struct {
	Name         string
	Price        decimal.Decimal
	Stock        int
	ReorderLevel int
}

// UpdateItemParams carries a partial edit; nil fields are left untouched.
type UpdateItemParams struct {
	Name         *string
	Price        *decimal.Decimal
	Stock        *int
	ReorderLevel *int
}

func (s *Service) ListItems(ctx context.Context) ([]domain.Item, error) {
	return s.repo.List(ctx)
}

func (s *Service) GetItem(ctx context.Context, id string) (domain.Item, error) {
	if strings.TrimSpace(id) == "" {
		return domain.Item{}, ErrInvalidInput
	}
	return s.repo.Get(ctx, id)
}

func (s *Service) CreateItem(ctx context.Context, p CreateItemParams) (domain.Item, error) {
	p.Name = strings.TrimSpace(p.Name)

	if err := validateFields(p.Name, p.Price, p.Stock, p.ReorderLevel); err != nil {
		return domain.Item{}, err
	}

	item := domain.Item{
		Name:         p.Name,
		Price:        p.Price,
		Stock:        p.Stock,
		ReorderLevel: p.ReorderLevel,
	}

	return s.repo.Create(ctx, item)
}

func (s *Service) UpdateItem(ctx context.Context, id string, p UpdateItemParams) (domain.Item, error) {
	item, err := s.GetItem(ctx, id)
	if err != nil {
		return domain.Item{}, err
	}

	if p.Name != nil {
		item.Name = strings.TrimSpace(*p.Name)
	}
	if p.Price != nil {
		item.Price = *p.Price
	}
	if p.Stock != nil {
		item.Stock = *p.Stock
	}
	if p.ReorderLevel != nil {
		item.ReorderLevel = *p.ReorderLevel
	}

	if err := validateFields(item.Name, item.Price, item.Stock, item.ReorderLevel); err != nil {
		return domain.Item{}, err
	}

	return s.repo.Update(ctx, item)
}

func (s *Service) DeleteItem(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return ErrInvalidInput
	}
	return s.repo.Delete(ctx, id)
}

// AddStock is the restock path. The delta is applied inside the repo's
// critical section so a concurrent sale commit cannot interleave with it.
func (s *Service) AddStock(ctx context.Context, id string, qty int) (domain.Item, error) {
	if strings.TrimSpace(id) == "" || qty <= 0 {
		return domain.Item{}, ErrInvalidInput
	}
	return s.repo.AdjustStock(ctx, id, qty)
}

// CommitStockBatch decrements stock for every line of a sale, all or nothing.
func (s *Service) CommitStockBatch(ctx context.Context, decs []StockDecrement) error {
	if len(decs) == 0 {
		return ErrInvalidInput
	}
	for _, d := range decs {
		if strings.TrimSpace(d.ItemID) == "" || d.Quantity <= 0 {
			return ErrInvalidInput
		}
	}
	return s.repo.DecrementBatch(ctx, decs)
}

func validateFields(name string, price decimal.Decimal, stock, reorderLevel int) error {
	if name == "" || price.IsNegative() || stock < 0 || reorderLevel < 0 {
		return ErrInvalidInput
	}
	return nil
}
