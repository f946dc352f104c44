package inbound

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/pantrysage/v2/internal/domain/pantry"
)

// PantryService defines the use cases for inventory management,
// including reconciliation against recipes.
type PantryService interface {
	AddItem(ctx context.Context, cmd AddInventoryCommand) (*InventoryItemDTO, error)
	IngestReceipt(ctx context.Context, cmd IngestReceiptCommand) (*ReceiptIngestResult, error)
	IngestBarcode(ctx context.Context, cmd IngestBarcodeCommand) (*InventoryItemDTO, error)

	MarkUsed(ctx context.Context, itemID, ownerID uuid.UUID) error
	MarkWasted(ctx context.Context, itemID, ownerID uuid.UUID) error

	ListActive(ctx context.Context, ownerID uuid.UUID) ([]InventoryItemDTO, error)
	ListExpiringSoon(ctx context.Context, ownerID uuid.UUID, withinDays int) ([]InventoryItemDTO, error)
	FindMissingForRecipe(ctx context.Context, recipeID, ownerID uuid.UUID) ([]pantry.MissingItem, error)
}

// AddInventoryCommand adds a single item by hand.
type AddInventoryCommand struct {
	OwnerID    uuid.UUID
	Name       string `validate:"required"`
	Amount     string
	Unit       string
	Category   string
	ExpiryDate *time.Time
}

// IngestReceiptCommand submits a receipt image for OCR extraction.
type IngestReceiptCommand struct {
	OwnerID     uuid.UUID
	Image       []byte `validate:"required"`
	ContentType string
}

// ReceiptIngestResult reports what a receipt scan added.
type ReceiptIngestResult struct {
	Added   []InventoryItemDTO `json:"added"`
	Skipped int                `json:"skipped"`
}

// IngestBarcodeCommand adds an item from a UPC scan.
type IngestBarcodeCommand struct {
	OwnerID uuid.UUID
	UPC     string `validate:"required"`
}

// InventoryItemDTO is the outward representation of a pantry item.
type InventoryItemDTO struct {
	ID         uuid.UUID  `json:"id"`
	Name       string     `json:"name"`
	Amount     string     `json:"amount"`
	Unit       string     `json:"unit"`
	Category   string     `json:"category"`
	UPC        string     `json:"upc,omitempty"`
	Price      string     `json:"price,omitempty"`
	ExpiryDate *time.Time `json:"expiryDate,omitempty"`
	Source     string     `json:"source"`
	Status     string     `json:"status"`
	CreatedAt  time.Time  `json:"createdAt"`
}
