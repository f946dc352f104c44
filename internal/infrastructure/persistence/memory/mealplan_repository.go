package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/pantrysage/v2/internal/domain/mealplan"
	"github.com/pantrysage/v2/internal/ports/outbound"
)

// MealPlanRepository implements meal plan persistence in memory.
type MealPlanRepository struct {
	entries map[uuid.UUID]*mealplan.Entry
	mutex   sync.RWMutex
}

// NewMealPlanRepository creates a new in-memory meal plan repository.
func NewMealPlanRepository() outbound.MealPlanRepository {
	return &MealPlanRepository{
		entries: make(map[uuid.UUID]*mealplan.Entry),
	}
}

// Create stores a new entry.
func (r *MealPlanRepository) Create(ctx context.Context, entry *mealplan.Entry) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	r.entries[entry.ID()] = entry
	return nil
}

// Update replaces a stored entry.
func (r *MealPlanRepository) Update(ctx context.Context, entry *mealplan.Entry) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	if _, ok := r.entries[entry.ID()]; !ok {
		return mealplan.ErrEntryNotFound
	}
	r.entries[entry.ID()] = entry
	return nil
}

// Delete removes an entry.
func (r *MealPlanRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	if _, ok := r.entries[id]; !ok {
		return mealplan.ErrEntryNotFound
	}
	delete(r.entries, id)
	return nil
}

// FindByID returns an entry by ID.
func (r *MealPlanRepository) FindByID(ctx context.Context, id uuid.UUID) (*mealplan.Entry, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	entry, ok := r.entries[id]
	if !ok {
		return nil, mealplan.ErrEntryNotFound
	}
	return entry, nil
}

// FindByOwner lists all of an owner's entries, earliest date first.
func (r *MealPlanRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*mealplan.Entry, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	return r.collectLocked(ownerID, nil, nil), nil
}

// FindByOwnerInRange lists an owner's entries with dates in [from, to],
// inclusive on both calendar days.
func (r *MealPlanRepository) FindByOwnerInRange(ctx context.Context, ownerID uuid.UUID, from, to time.Time) ([]*mealplan.Entry, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	return r.collectLocked(ownerID, &from, &to), nil
}

func (r *MealPlanRepository) collectLocked(ownerID uuid.UUID, from, to *time.Time) []*mealplan.Entry {
	var out []*mealplan.Entry
	for _, entry := range r.entries {
		if entry.OwnerID() != ownerID {
			continue
		}
		if from != nil && to != nil && !entry.InRange(*from, *to) {
			continue
		}
		out = append(out, entry)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Date().Before(out[j].Date())
	})
	return out
}
