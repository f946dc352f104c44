package gorm

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pantrysage/v2/internal/domain/pantry"
	"github.com/pantrysage/v2/internal/ports/outbound"
	apperrors "github.com/pantrysage/v2/pkg/errors"
)

// PantryRepository implements the inventory repository using GORM
type PantryRepository struct {
	db *gorm.DB
}

// NewPantryRepository creates a new GORM inventory repository
func NewPantryRepository(db *gorm.DB) outbound.PantryRepository {
	return &PantryRepository{db: db}
}

// Create persists a new inventory item
func (r *PantryRepository) Create(ctx context.Context, item *pantry.Item) error {
	model := PantryItemToModel(item)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return apperrors.NewDatabaseError("create pantry item", err)
	}
	return nil
}

// CreateBatch persists several inventory items in one insert.
// Receipt ingestion adds every parsed line at once.
func (r *PantryRepository) CreateBatch(ctx context.Context, items []*pantry.Item) error {
	if len(items) == 0 {
		return nil
	}
	models := make([]*PantryItemModel, 0, len(items))
	for _, item := range items {
		models = append(models, PantryItemToModel(item))
	}
	if err := r.db.WithContext(ctx).Create(models).Error; err != nil {
		return apperrors.NewDatabaseError("create pantry items", err)
	}
	return nil
}

// Update persists changes to an existing inventory item
func (r *PantryRepository) Update(ctx context.Context, item *pantry.Item) error {
	model := PantryItemToModel(item)
	result := r.db.WithContext(ctx).Model(&PantryItemModel{}).
		Where("id = ?", model.ID).
		Select("Name", "Amount", "Unit", "Category", "UPC", "Price", "ExpiryDate",
			"Source", "Status", "ResolvedAt", "UpdatedAt").
		Updates(model)
	if result.Error != nil {
		return apperrors.NewDatabaseError("update pantry item", result.Error)
	}
	if result.RowsAffected == 0 {
		return pantry.ErrItemNotFound
	}
	return nil
}

// FindByID returns an inventory item by ID
func (r *PantryRepository) FindByID(ctx context.Context, id uuid.UUID) (*pantry.Item, error) {
	var model PantryItemModel
	err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, pantry.ErrItemNotFound
	}
	if err != nil {
		return nil, apperrors.NewDatabaseError("find pantry item", err)
	}
	return ModelToPantryItem(&model), nil
}

// FindActiveByOwner returns the owner's unresolved items oldest first
func (r *PantryRepository) FindActiveByOwner(ctx context.Context, ownerID uuid.UUID) ([]*pantry.Item, error) {
	return r.FindByOwnerAndStatus(ctx, ownerID, pantry.StatusActive)
}

// FindByOwnerAndStatus returns the owner's items in the given status oldest first
func (r *PantryRepository) FindByOwnerAndStatus(ctx context.Context, ownerID uuid.UUID, status pantry.Status) ([]*pantry.Item, error) {
	var models []PantryItemModel
	err := r.db.WithContext(ctx).
		Where("owner_id = ? AND status = ?", ownerID, string(status)).
		Order("created_at ASC").
		Find(&models).Error
	if err != nil {
		return nil, apperrors.NewDatabaseError("list pantry items", err)
	}

	items := make([]*pantry.Item, 0, len(models))
	for i := range models {
		items = append(items, ModelToPantryItem(&models[i]))
	}
	return items, nil
}
