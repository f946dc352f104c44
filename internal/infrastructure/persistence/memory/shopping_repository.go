package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/pantrysage/v2/internal/domain/shopping"
	"github.com/pantrysage/v2/internal/ports/outbound"
)

// ShoppingListRepository implements shopping list persistence in memory.
type ShoppingListRepository struct {
	lists map[uuid.UUID]*shopping.List
	mutex sync.RWMutex
}

// NewShoppingListRepository creates a new in-memory shopping list
// repository.
func NewShoppingListRepository() outbound.ShoppingListRepository {
	return &ShoppingListRepository{
		lists: make(map[uuid.UUID]*shopping.List),
	}
}

// Create stores a new list.
func (r *ShoppingListRepository) Create(ctx context.Context, list *shopping.List) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	r.lists[list.ID()] = list
	return nil
}

// Update replaces a stored list.
func (r *ShoppingListRepository) Update(ctx context.Context, list *shopping.List) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	if _, ok := r.lists[list.ID()]; !ok {
		return shopping.ErrListNotFound
	}
	r.lists[list.ID()] = list
	return nil
}

// Delete removes a list.
func (r *ShoppingListRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	if _, ok := r.lists[id]; !ok {
		return shopping.ErrListNotFound
	}
	delete(r.lists, id)
	return nil
}

// FindByID returns a list by ID.
func (r *ShoppingListRepository) FindByID(ctx context.Context, id uuid.UUID) (*shopping.List, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	list, ok := r.lists[id]
	if !ok {
		return nil, shopping.ErrListNotFound
	}
	return list, nil
}

// FindByOwner lists all of an owner's lists, newest first.
func (r *ShoppingListRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*shopping.List, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	var out []*shopping.List
	for _, list := range r.lists {
		if list.OwnerID() == ownerID {
			out = append(out, list)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt().After(out[j].CreatedAt())
	})
	return out, nil
}
