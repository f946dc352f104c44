package gorm

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pantrysage/v2/internal/domain/mealplan"
	"github.com/pantrysage/v2/internal/ports/outbound"
	apperrors "github.com/pantrysage/v2/pkg/errors"
)

// MealPlanRepository implements the meal plan repository using GORM
type MealPlanRepository struct {
	db *gorm.DB
}

// NewMealPlanRepository creates a new GORM meal plan repository
func NewMealPlanRepository(db *gorm.DB) outbound.MealPlanRepository {
	return &MealPlanRepository{db: db}
}

// Create persists a new meal plan entry
func (r *MealPlanRepository) Create(ctx context.Context, entry *mealplan.Entry) error {
	model := MealPlanEntryToModel(entry)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return apperrors.NewDatabaseError("create meal plan entry", err)
	}
	return nil
}

// Update persists changes to an existing entry
func (r *MealPlanRepository) Update(ctx context.Context, entry *mealplan.Entry) error {
	model := MealPlanEntryToModel(entry)
	result := r.db.WithContext(ctx).Model(&MealPlanEntryModel{}).
		Where("id = ?", model.ID).
		Select("RecipeID", "Date", "MealType", "Servings", "Notes", "UpdatedAt").
		Updates(model)
	if result.Error != nil {
		return apperrors.NewDatabaseError("update meal plan entry", result.Error)
	}
	if result.RowsAffected == 0 {
		return mealplan.ErrEntryNotFound
	}
	return nil
}

// Delete removes an entry
func (r *MealPlanRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&MealPlanEntryModel{}, "id = ?", id)
	if result.Error != nil {
		return apperrors.NewDatabaseError("delete meal plan entry", result.Error)
	}
	if result.RowsAffected == 0 {
		return mealplan.ErrEntryNotFound
	}
	return nil
}

// FindByID returns an entry by ID
func (r *MealPlanRepository) FindByID(ctx context.Context, id uuid.UUID) (*mealplan.Entry, error) {
	var model MealPlanEntryModel
	err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, mealplan.ErrEntryNotFound
	}
	if err != nil {
		return nil, apperrors.NewDatabaseError("find meal plan entry", err)
	}
	return ModelToMealPlanEntry(&model), nil
}

// FindByOwner returns all of the owner's entries ordered by date
func (r *MealPlanRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*mealplan.Entry, error) {
	var models []MealPlanEntryModel
	err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("date ASC").
		Find(&models).Error
	if err != nil {
		return nil, apperrors.NewDatabaseError("list meal plan entries", err)
	}
	return toEntries(models), nil
}

// FindByOwnerInRange returns the owner's entries whose calendar day falls
// inside [from, to], both ends inclusive.
func (r *MealPlanRepository) FindByOwnerInRange(ctx context.Context, ownerID uuid.UUID, from, to time.Time) ([]*mealplan.Entry, error) {
	var models []MealPlanEntryModel
	err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("date ASC").
		Find(&models).Error
	if err != nil {
		return nil, apperrors.NewDatabaseError("list meal plan entries", err)
	}

	// Range filtering goes through the domain entry so calendar-day
	// truncation stays in one place.
	entries := make([]*mealplan.Entry, 0, len(models))
	for i := range models {
		entry := ModelToMealPlanEntry(&models[i])
		if entry.InRange(from, to) {
			entries = append(entries, entry)
		}
	}
	return entries, nil
}

func toEntries(models []MealPlanEntryModel) []*mealplan.Entry {
	entries := make([]*mealplan.Entry, 0, len(models))
	for i := range models {
		entries = append(entries, ModelToMealPlanEntry(&models[i]))
	}
	return entries
}
