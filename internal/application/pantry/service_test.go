package pantry

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/pantrysage/v2/internal/domain/recipe"
	"github.com/pantrysage/v2/internal/infrastructure/persistence/memory"
	"github.com/pantrysage/v2/internal/ports/inbound"
	"github.com/pantrysage/v2/internal/ports/outbound"
)

type fakeOCR struct {
	lines []outbound.ReceiptLine
	err   error
}

func (f *fakeOCR) ExtractItems(ctx context.Context, image []byte, contentType string) ([]outbound.ReceiptLine, error) {
	return f.lines, f.err
}

type fakeBarcodes struct {
	product *outbound.BarcodeProduct
	err     error
}

func (f *fakeBarcodes) Lookup(ctx context.Context, upc string) (*outbound.BarcodeProduct, error) {
	return f.product, f.err
}

type deps struct {
	svc      inbound.PantryService
	pantry   outbound.PantryRepository
	recipes  outbound.RecipeRepository
	ocr      *fakeOCR
	barcodes *fakeBarcodes
	ownerID  uuid.UUID
}

func setup(t *testing.T) *deps {
	t.Helper()
	d := &deps{
		pantry:   memory.NewPantryRepository(),
		recipes:  memory.NewRecipeRepository(),
		ocr:      &fakeOCR{},
		barcodes: &fakeBarcodes{},
		ownerID:  uuid.New(),
	}
	d.svc = NewService(d.pantry, d.recipes, d.ocr, d.barcodes, nil, zap.NewNop())
	return d
}

func TestAddItemClassifiesWhenCategoryBlank(t *testing.T) {
	d := setup(t)

	dto, err := d.svc.AddItem(context.Background(), inbound.AddInventoryCommand{
		OwnerID: d.ownerID,
		Name:    "cheddar cheese",
	})
	require.NoError(t, err)

	assert.Equal(t, "dairy", dto.Category)
	assert.Equal(t, "1", dto.Amount)
	assert.Equal(t, "item", dto.Unit)
	assert.Equal(t, "manual", dto.Source)
	assert.Equal(t, "active", dto.Status)
}

func TestFindMissingForRecipe(t *testing.T) {
	d := setup(t)
	ctx := context.Background()

	_, err := d.svc.AddItem(ctx, inbound.AddInventoryCommand{OwnerID: d.ownerID, Name: "large eggs"})
	require.NoError(t, err)

	rec, err := recipe.New("Pancakes", "", d.ownerID)
	require.NoError(t, err)
	require.NoError(t, rec.ReplaceIngredients([]recipe.Ingredient{
		{Item: "eggs", Amount: "3"},
		{Item: "buttermilk", Amount: "2", Unit: "cup"},
	}))
	require.NoError(t, d.recipes.Create(ctx, rec))

	missing, err := d.svc.FindMissingForRecipe(ctx, rec.ID(), d.ownerID)
	require.NoError(t, err)

	// "large eggs" covers "eggs"; only buttermilk remains.
	require.Len(t, missing, 1)
	assert.Equal(t, "buttermilk", missing[0].Item)
}

func TestIngestReceipt(t *testing.T) {
	d := setup(t)
	d.ocr.lines = []outbound.ReceiptLine{
		{Name: "whole milk", Quantity: "1", Unit: "gallon", Price: "3.49"},
		{Name: "", Quantity: "2"}, // unreadable row
		{Name: "bananas", Quantity: "6"},
	}

	result, err := d.svc.IngestReceipt(context.Background(), inbound.IngestReceiptCommand{
		OwnerID: d.ownerID,
		Image:   []byte("fake-image"),
	})
	require.NoError(t, err)

	require.Len(t, result.Added, 2)
	assert.Equal(t, 1, result.Skipped)
	assert.Equal(t, "whole milk", result.Added[0].Name)
	assert.Equal(t, "3.49", result.Added[0].Price)
	assert.Equal(t, "receipt", result.Added[0].Source)

	active, err := d.svc.ListActive(context.Background(), d.ownerID)
	require.NoError(t, err)
	assert.Len(t, active, 2)
}

func TestIngestBarcode(t *testing.T) {
	d := setup(t)
	d.barcodes.product = &outbound.BarcodeProduct{
		UPC:      "012345678905",
		Name:     "black beans",
		Quantity: "15",
		Unit:     "oz",
	}

	dto, err := d.svc.IngestBarcode(context.Background(), inbound.IngestBarcodeCommand{
		OwnerID: d.ownerID,
		UPC:     "012345678905",
	})
	require.NoError(t, err)

	assert.Equal(t, "black beans", dto.Name)
	assert.Equal(t, "012345678905", dto.UPC)
	assert.Equal(t, "barcode", dto.Source)
}

func TestMarkUsedAndOwnership(t *testing.T) {
	d := setup(t)
	ctx := context.Background()

	dto, err := d.svc.AddItem(ctx, inbound.AddInventoryCommand{OwnerID: d.ownerID, Name: "spinach"})
	require.NoError(t, err)

	// Another user cannot resolve it.
	require.Error(t, d.svc.MarkUsed(ctx, dto.ID, uuid.New()))

	require.NoError(t, d.svc.MarkUsed(ctx, dto.ID, d.ownerID))

	active, err := d.svc.ListActive(ctx, d.ownerID)
	require.NoError(t, err)
	assert.Empty(t, active)

	// Already resolved items cannot flip state.
	require.Error(t, d.svc.MarkWasted(ctx, dto.ID, d.ownerID))
}

func TestServicesDisabled(t *testing.T) {
	d := setup(t)
	svc := NewService(d.pantry, d.recipes, nil, nil, nil, zap.NewNop())

	_, err := svc.IngestReceipt(context.Background(), inbound.IngestReceiptCommand{OwnerID: d.ownerID, Image: []byte("x")})
	require.Error(t, err)

	_, err = svc.IngestBarcode(context.Background(), inbound.IngestBarcodeCommand{OwnerID: d.ownerID, UPC: "1"})
	require.Error(t, err)
}
