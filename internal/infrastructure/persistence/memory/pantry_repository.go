package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/pantrysage/v2/internal/domain/pantry"
	"github.com/pantrysage/v2/internal/ports/outbound"
)

// PantryRepository implements inventory persistence in memory.
type PantryRepository struct {
	items map[uuid.UUID]*pantry.Item
	mutex sync.RWMutex
}

// NewPantryRepository creates a new in-memory pantry repository.
func NewPantryRepository() outbound.PantryRepository {
	return &PantryRepository{
		items: make(map[uuid.UUID]*pantry.Item),
	}
}

// Create stores a new item.
func (r *PantryRepository) Create(ctx context.Context, item *pantry.Item) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	r.items[item.ID()] = item
	return nil
}

// CreateBatch stores several items at once.
func (r *PantryRepository) CreateBatch(ctx context.Context, items []*pantry.Item) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	for _, item := range items {
		r.items[item.ID()] = item
	}
	return nil
}

// Update replaces a stored item.
func (r *PantryRepository) Update(ctx context.Context, item *pantry.Item) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	if _, ok := r.items[item.ID()]; !ok {
		return pantry.ErrItemNotFound
	}
	r.items[item.ID()] = item
	return nil
}

// FindByID returns an item by ID.
func (r *PantryRepository) FindByID(ctx context.Context, id uuid.UUID) (*pantry.Item, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	item, ok := r.items[id]
	if !ok {
		return nil, pantry.ErrItemNotFound
	}
	return item, nil
}

// FindActiveByOwner lists an owner's on-hand items, oldest first.
func (r *PantryRepository) FindActiveByOwner(ctx context.Context, ownerID uuid.UUID) ([]*pantry.Item, error) {
	return r.FindByOwnerAndStatus(ctx, ownerID, pantry.StatusActive)
}

// FindByOwnerAndStatus lists an owner's items in one lifecycle state.
func (r *PantryRepository) FindByOwnerAndStatus(ctx context.Context, ownerID uuid.UUID, status pantry.Status) ([]*pantry.Item, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	var out []*pantry.Item
	for _, item := range r.items {
		if item.OwnerID() == ownerID && item.Status() == status {
			out = append(out, item)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt().Before(out[j].CreatedAt())
	})
	return out, nil
}
