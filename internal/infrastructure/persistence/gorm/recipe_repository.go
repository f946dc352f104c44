package gorm

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pantrysage/v2/internal/domain/recipe"
	"github.com/pantrysage/v2/internal/ports/outbound"
	apperrors "github.com/pantrysage/v2/pkg/errors"
)

// RecipeRepository implements the recipe repository using GORM
type RecipeRepository struct {
	db *gorm.DB
}

// NewRecipeRepository creates a new GORM recipe repository
func NewRecipeRepository(db *gorm.DB) outbound.RecipeRepository {
	return &RecipeRepository{db: db}
}

// Create persists a new recipe
func (r *RecipeRepository) Create(ctx context.Context, rec *recipe.Recipe) error {
	model := RecipeToModel(rec)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return apperrors.NewDatabaseError("create recipe", err)
	}
	return nil
}

// Update persists changes to an existing recipe
func (r *RecipeRepository) Update(ctx context.Context, rec *recipe.Recipe) error {
	model := RecipeToModel(rec)
	result := r.db.WithContext(ctx).Model(&RecipeModel{}).
		Where("id = ?", model.ID).
		Select("Version", "Title", "Description", "Ingredients", "Instructions", "Tags",
			"MealType", "Cuisine", "Nutrition", "ImageURL", "SourceURL",
			"PrepTimeMinutes", "CookTimeMinutes", "Servings", "Status", "DeletedAt", "UpdatedAt").
		Updates(model)
	if result.Error != nil {
		return apperrors.NewDatabaseError("update recipe", result.Error)
	}
	if result.RowsAffected == 0 {
		return recipe.ErrNotFound
	}
	return nil
}

// FindByID returns a recipe by ID, including soft-deleted ones.
// Deleted recipes stay resolvable for meal plan history and list provenance.
func (r *RecipeRepository) FindByID(ctx context.Context, id uuid.UUID) (*recipe.Recipe, error) {
	var model RecipeModel
	err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, recipe.ErrNotFound
	}
	if err != nil {
		return nil, apperrors.NewDatabaseError("find recipe", err)
	}
	return ModelToRecipe(&model), nil
}

// FindByIDs returns the recipes that exist for the given IDs, keyed by ID.
// Missing IDs are simply absent from the result.
func (r *RecipeRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*recipe.Recipe, error) {
	result := make(map[uuid.UUID]*recipe.Recipe, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	var models []RecipeModel
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&models).Error; err != nil {
		return nil, apperrors.NewDatabaseError("find recipes by ids", err)
	}
	for i := range models {
		rec := ModelToRecipe(&models[i])
		result[rec.ID()] = rec
	}
	return result, nil
}

// FindByOwner returns the owner's recipes newest first, excluding deleted ones.
// A limit of zero or less returns all rows.
func (r *RecipeRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID, offset, limit int) ([]*recipe.Recipe, int, error) {
	query := r.db.WithContext(ctx).Model(&RecipeModel{}).
		Where("owner_id = ? AND status = ?", ownerID, string(recipe.StatusActive))
	return r.page(query, offset, limit)
}

// SearchByTitle returns the owner's active recipes whose title contains the query.
func (r *RecipeRepository) SearchByTitle(ctx context.Context, ownerID uuid.UUID, query string, offset, limit int) ([]*recipe.Recipe, int, error) {
	q := r.db.WithContext(ctx).Model(&RecipeModel{}).
		Where("owner_id = ? AND status = ?", ownerID, string(recipe.StatusActive)).
		Where("LOWER(title) LIKE LOWER(?)", "%"+query+"%")
	return r.page(q, offset, limit)
}

func (r *RecipeRepository) page(query *gorm.DB, offset, limit int) ([]*recipe.Recipe, int, error) {
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, apperrors.NewDatabaseError("count recipes", err)
	}

	query = query.Order("created_at DESC").Offset(offset)
	if limit > 0 {
		query = query.Limit(limit)
	}

	var models []RecipeModel
	if err := query.Find(&models).Error; err != nil {
		return nil, 0, apperrors.NewDatabaseError("list recipes", err)
	}

	recipes := make([]*recipe.Recipe, 0, len(models))
	for i := range models {
		recipes = append(recipes, ModelToRecipe(&models[i]))
	}
	return recipes, int(total), nil
}
