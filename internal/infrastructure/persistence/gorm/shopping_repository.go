package gorm

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pantrysage/v2/internal/domain/shopping"
	"github.com/pantrysage/v2/internal/ports/outbound"
	apperrors "github.com/pantrysage/v2/pkg/errors"
)

// ShoppingListRepository implements the shopping list repository using GORM
type ShoppingListRepository struct {
	db *gorm.DB
}

// NewShoppingListRepository creates a new GORM shopping list repository
func NewShoppingListRepository(db *gorm.DB) outbound.ShoppingListRepository {
	return &ShoppingListRepository{db: db}
}

// Create persists a new shopping list
func (r *ShoppingListRepository) Create(ctx context.Context, list *shopping.List) error {
	model := ShoppingListToModel(list)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return apperrors.NewDatabaseError("create shopping list", err)
	}
	return nil
}

// Update persists changes to an existing list. The items column is
// written whole, so callers must serialize read-modify-write cycles.
func (r *ShoppingListRepository) Update(ctx context.Context, list *shopping.List) error {
	model := ShoppingListToModel(list)
	result := r.db.WithContext(ctx).Model(&ShoppingListModel{}).
		Where("id = ?", model.ID).
		Select("Name", "Items", "UpdatedAt").
		Updates(model)
	if result.Error != nil {
		return apperrors.NewDatabaseError("update shopping list", result.Error)
	}
	if result.RowsAffected == 0 {
		return shopping.ErrListNotFound
	}
	return nil
}

// Delete removes a list
func (r *ShoppingListRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&ShoppingListModel{}, "id = ?", id)
	if result.Error != nil {
		return apperrors.NewDatabaseError("delete shopping list", result.Error)
	}
	if result.RowsAffected == 0 {
		return shopping.ErrListNotFound
	}
	return nil
}

// FindByID returns a list by ID
func (r *ShoppingListRepository) FindByID(ctx context.Context, id uuid.UUID) (*shopping.List, error) {
	var model ShoppingListModel
	err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, shopping.ErrListNotFound
	}
	if err != nil {
		return nil, apperrors.NewDatabaseError("find shopping list", err)
	}
	return ModelToShoppingList(&model), nil
}

// FindByOwner returns the owner's lists newest first
func (r *ShoppingListRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*shopping.List, error) {
	var models []ShoppingListModel
	err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&models).Error
	if err != nil {
		return nil, apperrors.NewDatabaseError("list shopping lists", err)
	}

	lists := make([]*shopping.List, 0, len(models))
	for i := range models {
		lists = append(lists, ModelToShoppingList(&models[i]))
	}
	return lists, nil
}
