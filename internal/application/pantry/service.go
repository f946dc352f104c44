// Package pantry provides the application layer for inventory
// management: manual adds, receipt and barcode ingestion, consumption
// tracking, and reconciliation against recipes.
package pantry

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/pantrysage/v2/internal/domain/grocery"
	"github.com/pantrysage/v2/internal/domain/pantry"
	"github.com/pantrysage/v2/internal/ports/inbound"
	"github.com/pantrysage/v2/internal/ports/outbound"
	"github.com/pantrysage/v2/pkg/errors"
)

// Service implements the pantry use cases.
type Service struct {
	pantryRepo outbound.PantryRepository
	recipeRepo outbound.RecipeRepository
	ocr        outbound.ReceiptOCRService
	barcodes   outbound.BarcodeLookupService
	classifier grocery.Classifier
	reconciler *pantry.Reconciler
	logger     *zap.Logger
}

// NewService creates a new pantry service. The OCR and barcode
// collaborators may be nil when those features are disabled.
func NewService(
	pantryRepo outbound.PantryRepository,
	recipeRepo outbound.RecipeRepository,
	ocr outbound.ReceiptOCRService,
	barcodes outbound.BarcodeLookupService,
	classifier grocery.Classifier,
	logger *zap.Logger,
) inbound.PantryService {
	if classifier == nil {
		classifier = grocery.NewClassifier(nil, nil)
	}
	return &Service{
		pantryRepo: pantryRepo,
		recipeRepo: recipeRepo,
		ocr:        ocr,
		barcodes:   barcodes,
		classifier: classifier,
		reconciler: pantry.NewReconciler(nil, classifier),
		logger:     logger.Named("pantry-service"),
	}
}

// AddItem adds one inventory item by hand.
func (s *Service) AddItem(ctx context.Context, cmd inbound.AddInventoryCommand) (*inbound.InventoryItemDTO, error) {
	s.logger.Info("Adding inventory item",
		zap.String("owner_id", cmd.OwnerID.String()),
		zap.String("name", cmd.Name),
	)

	category := grocery.Category(cmd.Category)
	if cmd.Category == "" {
		category = s.classifier.Classify(cmd.Name)
	}
	if category == grocery.CategorySkip {
		category = grocery.DefaultCategory
	}

	item, err := pantry.NewItem(cmd.OwnerID, cmd.Name, cmd.Amount, cmd.Unit, category, pantry.SourceManual)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create inventory item")
	}
	if cmd.ExpiryDate != nil {
		item.SetExpiry(cmd.ExpiryDate)
	}

	if err := s.pantryRepo.Create(ctx, item); err != nil {
		return nil, errors.NewDatabaseError("create inventory item", err)
	}

	dto := toDTO(item)
	return &dto, nil
}

// IngestReceipt extracts line items from a receipt image and adds each
// recognizable line to the pantry. Blank lines are counted as skipped
// rather than failing the whole scan.
func (s *Service) IngestReceipt(ctx context.Context, cmd inbound.IngestReceiptCommand) (*inbound.ReceiptIngestResult, error) {
	if s.ocr == nil {
		return nil, errors.NewAppError(errors.CodeServiceUnavailable, "Receipt scanning is not enabled", "")
	}

	lines, err := s.ocr.ExtractItems(ctx, cmd.Image, cmd.ContentType)
	if err != nil {
		return nil, errors.NewExternalServiceError("receipt-ocr", err)
	}

	result := &inbound.ReceiptIngestResult{}
	var batch []*pantry.Item
	for _, line := range lines {
		category := s.classifier.Classify(line.Name)
		if category == grocery.CategorySkip {
			category = grocery.DefaultCategory
		}
		item, err := pantry.NewItem(cmd.OwnerID, line.Name, line.Quantity, line.Unit, category, pantry.SourceReceipt)
		if err != nil {
			result.Skipped++
			continue
		}
		if line.Price != "" {
			item.SetBarcode("", line.Price)
		}
		batch = append(batch, item)
	}

	if len(batch) > 0 {
		if err := s.pantryRepo.CreateBatch(ctx, batch); err != nil {
			return nil, errors.NewDatabaseError("create receipt items", err)
		}
	}
	for _, item := range batch {
		result.Added = append(result.Added, toDTO(item))
	}

	s.logger.Info("Receipt ingested",
		zap.String("owner_id", cmd.OwnerID.String()),
		zap.Int("added", len(result.Added)),
		zap.Int("skipped", result.Skipped),
	)
	return result, nil
}

// IngestBarcode resolves a UPC and adds the product to the pantry.
func (s *Service) IngestBarcode(ctx context.Context, cmd inbound.IngestBarcodeCommand) (*inbound.InventoryItemDTO, error) {
	if s.barcodes == nil {
		return nil, errors.NewAppError(errors.CodeServiceUnavailable, "Barcode lookup is not enabled", "")
	}

	product, err := s.barcodes.Lookup(ctx, cmd.UPC)
	if err != nil {
		return nil, errors.NewExternalServiceError("barcode-lookup", err)
	}

	category := s.classifier.Classify(product.Name)
	if category == grocery.CategorySkip {
		category = grocery.DefaultCategory
	}
	item, err := pantry.NewItem(cmd.OwnerID, product.Name, product.Quantity, product.Unit, category, pantry.SourceBarcode)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create inventory item")
	}
	item.SetBarcode(product.UPC, "")

	if err := s.pantryRepo.Create(ctx, item); err != nil {
		return nil, errors.NewDatabaseError("create inventory item", err)
	}

	dto := toDTO(item)
	return &dto, nil
}

// MarkUsed records an item as consumed.
func (s *Service) MarkUsed(ctx context.Context, itemID, ownerID uuid.UUID) error {
	return s.resolve(ctx, itemID, ownerID, (*pantry.Item).MarkUsed)
}

// MarkWasted records an item as thrown away.
func (s *Service) MarkWasted(ctx context.Context, itemID, ownerID uuid.UUID) error {
	return s.resolve(ctx, itemID, ownerID, (*pantry.Item).MarkWasted)
}

func (s *Service) resolve(ctx context.Context, itemID, ownerID uuid.UUID, mark func(*pantry.Item) error) error {
	item, err := s.pantryRepo.FindByID(ctx, itemID)
	if err != nil {
		return errors.NewInventoryItemNotFoundError(itemID.String()).WithCause(err)
	}
	if item.OwnerID() != ownerID {
		return errors.NewForbiddenError("inventory item belongs to another user")
	}
	if err := mark(item); err != nil {
		return errors.Wrap(err, "failed to update inventory item")
	}
	if err := s.pantryRepo.Update(ctx, item); err != nil {
		return errors.NewDatabaseError("update inventory item", err)
	}
	return nil
}

// ListActive returns the owner's on-hand items.
func (s *Service) ListActive(ctx context.Context, ownerID uuid.UUID) ([]inbound.InventoryItemDTO, error) {
	items, err := s.pantryRepo.FindActiveByOwner(ctx, ownerID)
	if err != nil {
		return nil, errors.NewDatabaseError("list inventory", err)
	}
	return toDTOs(items), nil
}

// ListExpiringSoon returns active items expiring within the window.
func (s *Service) ListExpiringSoon(ctx context.Context, ownerID uuid.UUID, withinDays int) ([]inbound.InventoryItemDTO, error) {
	if withinDays <= 0 {
		withinDays = 3
	}
	items, err := s.pantryRepo.FindActiveByOwner(ctx, ownerID)
	if err != nil {
		return nil, errors.NewDatabaseError("list inventory", err)
	}

	now := time.Now()
	var expiring []*pantry.Item
	for _, item := range items {
		if item.ExpiresWithin(withinDays, now) {
			expiring = append(expiring, item)
		}
	}
	return toDTOs(expiring), nil
}

// FindMissingForRecipe reconciles a recipe against the owner's pantry.
func (s *Service) FindMissingForRecipe(ctx context.Context, recipeID, ownerID uuid.UUID) ([]pantry.MissingItem, error) {
	rec, err := s.recipeRepo.FindByID(ctx, recipeID)
	if err != nil {
		return nil, errors.NewRecipeNotFoundError(recipeID.String()).WithCause(err)
	}

	inventory, err := s.pantryRepo.FindActiveByOwner(ctx, ownerID)
	if err != nil {
		return nil, errors.NewDatabaseError("list inventory", err)
	}

	missing := s.reconciler.FindMissing(rec.Ingredients(), inventory)
	s.logger.Info("Recipe reconciled against pantry",
		zap.String("recipe_id", recipeID.String()),
		zap.Int("missing", len(missing)),
	)
	return missing, nil
}

func toDTO(item *pantry.Item) inbound.InventoryItemDTO {
	return inbound.InventoryItemDTO{
		ID:         item.ID(),
		Name:       item.Name(),
		Amount:     item.Amount(),
		Unit:       item.Unit(),
		Category:   string(item.Category()),
		UPC:        item.UPC(),
		Price:      item.Price(),
		ExpiryDate: item.ExpiryDate(),
		Source:     string(item.Source()),
		Status:     string(item.Status()),
		CreatedAt:  item.CreatedAt(),
	}
}

func toDTOs(items []*pantry.Item) []inbound.InventoryItemDTO {
	dtos := make([]inbound.InventoryItemDTO, 0, len(items))
	for _, item := range items {
		dtos = append(dtos, toDTO(item))
	}
	return dtos
}
