package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/pantrysage/v2/internal/domain/recipe"
	"github.com/pantrysage/v2/internal/ports/outbound"
)

// RecipeRepository implements recipe persistence in memory.
type RecipeRepository struct {
	recipes map[uuid.UUID]*recipe.Recipe
	mutex   sync.RWMutex
}

// NewRecipeRepository creates a new in-memory recipe repository.
func NewRecipeRepository() outbound.RecipeRepository {
	return &RecipeRepository{
		recipes: make(map[uuid.UUID]*recipe.Recipe),
	}
}

// Create stores a new recipe.
func (r *RecipeRepository) Create(ctx context.Context, rec *recipe.Recipe) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	r.recipes[rec.ID()] = rec
	return nil
}

// Update replaces a stored recipe.
func (r *RecipeRepository) Update(ctx context.Context, rec *recipe.Recipe) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	if _, ok := r.recipes[rec.ID()]; !ok {
		return recipe.ErrNotFound
	}
	r.recipes[rec.ID()] = rec
	return nil
}

// FindByID returns a recipe by ID, deleted or not.
func (r *RecipeRepository) FindByID(ctx context.Context, id uuid.UUID) (*recipe.Recipe, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	rec, ok := r.recipes[id]
	if !ok {
		return nil, recipe.ErrNotFound
	}
	return rec, nil
}

// FindByIDs resolves a batch of IDs; missing IDs are simply absent from
// the result rather than an error.
func (r *RecipeRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*recipe.Recipe, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	out := make(map[uuid.UUID]*recipe.Recipe, len(ids))
	for _, id := range ids {
		if rec, ok := r.recipes[id]; ok {
			out[id] = rec
		}
	}
	return out, nil
}

// FindByOwner lists an owner's non-deleted recipes, newest first. A
// non-positive limit returns everything.
func (r *RecipeRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID, offset, limit int) ([]*recipe.Recipe, int, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	return paginate(r.ownedLocked(ownerID, ""), offset, limit)
}

// SearchByTitle lists recipes whose title contains the query,
// case-insensitively.
func (r *RecipeRepository) SearchByTitle(ctx context.Context, ownerID uuid.UUID, query string, offset, limit int) ([]*recipe.Recipe, int, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	return paginate(r.ownedLocked(ownerID, query), offset, limit)
}

func (r *RecipeRepository) ownedLocked(ownerID uuid.UUID, query string) []*recipe.Recipe {
	query = strings.ToLower(query)
	var out []*recipe.Recipe
	for _, rec := range r.recipes {
		if rec.OwnerID() != ownerID || rec.IsDeleted() {
			continue
		}
		if query != "" && !strings.Contains(strings.ToLower(rec.Title()), query) {
			continue
		}
		out = append(out, rec)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt().After(out[j].CreatedAt())
	})
	return out
}

func paginate(recipes []*recipe.Recipe, offset, limit int) ([]*recipe.Recipe, int, error) {
	total := len(recipes)
	if offset >= total {
		return nil, total, nil
	}
	recipes = recipes[offset:]
	if limit > 0 && limit < len(recipes) {
		recipes = recipes[:limit]
	}
	return recipes, total, nil
}
