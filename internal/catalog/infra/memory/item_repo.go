package memory

import (
	"context"
	"sync"
	"time"

	"github.com/dwikikusuma/pharmacy-pos/internal/catalog/app"
	"github.com/dwikikusuma/pharmacy-pos/internal/catalog/domain"
	"github.com/google/uuid"
)

// ItemRepo keeps the catalog in process memory. The mutex makes every
// read-then-write on stock a single critical section, which is what the
// atomic sale commit relies on.
type ItemRepo struct {
	mu    sync.Mutex
	items map[string]domain.Item
	order []string
}

func NewItemRepo() *ItemRepo {
	return &ItemRepo{
		items: make(map[string]domain.Item),
	}
}

func (r *ItemRepo) List(ctx context.Context) ([]domain.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]domain.Item, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.items[id])
	}
	return out, nil
}

func (r *ItemRepo) Get(ctx context.Context, id string) (domain.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.items[id]
	if !ok {
		return domain.Item{}, app.ErrNotFound
	}
	return item, nil
}

func (r *ItemRepo) Create(ctx context.Context, item domain.Item) (domain.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	item.ID = uuid.NewString()
	item.CreatedAt = now
	item.UpdatedAt = now

	r.items[item.ID] = item
	r.order = append(r.order, item.ID)
	return item, nil
}

func (r *ItemRepo) Update(ctx context.Context, item domain.Item) (domain.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.items[item.ID]
	if !ok {
		return domain.Item{}, app.ErrNotFound
	}

	item.CreatedAt = current.CreatedAt
	item.UpdatedAt = time.Now()
	r.items[item.ID] = item
	return item, nil
}

func (r *ItemRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return app.ErrNotFound
	}
	delete(r.items, id)

	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

func (r *ItemRepo) AdjustStock(ctx context.Context, id string, delta int) (domain.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.items[id]
	if !ok {
		return domain.Item{}, app.ErrNotFound
	}

	next := item.Stock + delta
	if next < 0 {
		return domain.Item{}, app.ErrInsufficientStock
	}

	item.Stock = next
	item.UpdatedAt = time.Now()
	r.items[id] = item
	return item, nil
}

func (r *ItemRepo) DecrementBatch(ctx context.Context, decs []app.StockDecrement) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	// Aggregate first so repeated ids are checked against their combined total.
	need := make(map[string]int, len(decs))
	for _, d := range decs {
		need[d.ItemID] += d.Quantity
	}

	for id, qty := range need {
		item, ok := r.items[id]
		if !ok {
			return app.ErrNotFound
		}
		if item.Stock < qty {
			return app.ErrInsufficientStock
		}
	}

	now := time.Now()
	for id, qty := range need {
		item := r.items[id]
		item.Stock -= qty
		item.UpdatedAt = now
		r.items[id] = item
	}
	return nil
}
