package shopping

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/pantrysage/v2/internal/domain/mealplan"
	"github.com/pantrysage/v2/internal/domain/recipe"
	"github.com/pantrysage/v2/internal/domain/shopping"
	"github.com/pantrysage/v2/internal/infrastructure/persistence/memory"
	"github.com/pantrysage/v2/internal/ports/inbound"
	"github.com/pantrysage/v2/internal/ports/outbound"
)

type fixture struct {
	svc      inbound.ShoppingListService
	lists    outbound.ShoppingListRepository
	plans    outbound.MealPlanRepository
	recipes  outbound.RecipeRepository
	ownerID  uuid.UUID
	from, to time.Time
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	lists := memory.NewShoppingListRepository()
	plans := memory.NewMealPlanRepository()
	recipes := memory.NewRecipeRepository()
	return &fixture{
		svc:     NewService(lists, plans, recipes, nil, zap.NewNop()),
		lists:   lists,
		plans:   plans,
		recipes: recipes,
		ownerID: uuid.New(),
		from:    time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		to:      time.Date(2025, 3, 16, 0, 0, 0, 0, time.UTC),
	}
}

func (f *fixture) addRecipe(t *testing.T, title string, ingredients ...recipe.Ingredient) *recipe.Recipe {
	t.Helper()
	rec, err := recipe.New(title, "", f.ownerID)
	require.NoError(t, err)
	require.NoError(t, rec.ReplaceIngredients(ingredients))
	require.NoError(t, f.recipes.Create(context.Background(), rec))
	return rec
}

func (f *fixture) plan(t *testing.T, recipeID uuid.UUID, on time.Time) {
	t.Helper()
	entry, err := mealplan.NewEntry(f.ownerID, recipeID, on, recipe.MealTypeDinner, 2)
	require.NoError(t, err)
	require.NoError(t, f.plans.Create(context.Background(), entry))
}

func (f *fixture) newList(t *testing.T) *inbound.ShoppingListDTO {
	t.Helper()
	dto, err := f.svc.CreateList(context.Background(), f.ownerID, "Weekly")
	require.NoError(t, err)
	return dto
}

func TestGenerateFromMealPlans(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	stirFry := f.addRecipe(t, "Garlic Stir Fry",
		recipe.Ingredient{Item: "garlic", Amount: "2", Unit: "clove"})
	pasta := f.addRecipe(t, "Garlic Pasta",
		recipe.Ingredient{Item: "garlic", Amount: "3", Unit: "clove"})
	f.plan(t, stirFry.ID(), f.from)
	f.plan(t, pasta.ID(), f.from.AddDate(0, 0, 1))

	list := f.newList(t)

	result, err := f.svc.GenerateFromMealPlans(ctx, inbound.GenerateListCommand{
		ListID: list.ID, OwnerID: f.ownerID, From: f.from, To: f.to,
	})
	require.NoError(t, err)

	assert.Equal(t, shopping.OutcomeAdded, result.Outcome)
	assert.Equal(t, 1, result.AddedCount)
	require.Len(t, result.List.Items, 1)
	assert.Equal(t, "garlic", result.List.Items[0].Item)
	assert.Equal(t, "5", result.List.Items[0].Amount)
	assert.Equal(t, "clove", result.List.Items[0].Unit)
	assert.ElementsMatch(t, []string{"Garlic Stir Fry", "Garlic Pasta"}, result.List.Items[0].FromRecipes)
}

func TestGenerateIsIdempotent(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	rec := f.addRecipe(t, "Chili",
		recipe.Ingredient{Item: "kidney beans", Amount: "2", Unit: "can"})
	f.plan(t, rec.ID(), f.from)
	list := f.newList(t)

	cmd := inbound.GenerateListCommand{ListID: list.ID, OwnerID: f.ownerID, From: f.from, To: f.to}

	first, err := f.svc.GenerateFromMealPlans(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, shopping.OutcomeAdded, first.Outcome)

	second, err := f.svc.GenerateFromMealPlans(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, shopping.OutcomeNoNewItems, second.Outcome)
	assert.Zero(t, second.AddedCount)
	assert.Len(t, second.List.Items, 1)
}

func TestGenerateNoEntriesInRange(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	list := f.newList(t)

	result, err := f.svc.GenerateFromMealPlans(ctx, inbound.GenerateListCommand{
		ListID: list.ID, OwnerID: f.ownerID, From: f.from, To: f.to,
	})
	require.NoError(t, err)

	assert.Equal(t, shopping.OutcomeNoEntries, result.Outcome)
	assert.Zero(t, result.AddedCount)
}

func TestGenerateSkipsDeletedRecipes(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	rec := f.addRecipe(t, "Retired", recipe.Ingredient{Item: "saffron", Amount: "1"})
	f.plan(t, rec.ID(), f.from)
	require.NoError(t, rec.Delete())
	require.NoError(t, f.recipes.Update(ctx, rec))

	list := f.newList(t)
	result, err := f.svc.GenerateFromMealPlans(ctx, inbound.GenerateListCommand{
		ListID: list.ID, OwnerID: f.ownerID, From: f.from, To: f.to,
	})
	require.NoError(t, err)

	// The entry exists but contributes nothing.
	assert.Equal(t, shopping.OutcomeNoNewItems, result.Outcome)
}

func TestListOwnership(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	list := f.newList(t)

	_, err := f.svc.GenerateFromMealPlans(ctx, inbound.GenerateListCommand{
		ListID: list.ID, OwnerID: uuid.New(), From: f.from, To: f.to,
	})
	require.Error(t, err)
}

func TestAddItemAndClearChecked(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	list := f.newList(t)

	dto, err := f.svc.AddItem(ctx, inbound.AddListItemCommand{
		ListID: list.ID, OwnerID: f.ownerID, Item: "whole milk",
	})
	require.NoError(t, err)
	require.Len(t, dto.Items, 1)
	// Blank category falls back to the classifier.
	assert.Equal(t, "dairy", string(dto.Items[0].Category))

	itemID := dto.Items[0].ID
	require.NoError(t, f.svc.SetItemChecked(ctx, list.ID, itemID, f.ownerID, true))

	removed, err := f.svc.ClearChecked(ctx, list.ID, f.ownerID)
	require.NoError(t, err)
	assert.Equal(t, 1, removed)

	got, err := f.svc.GetList(ctx, list.ID)
	require.NoError(t, err)
	assert.Empty(t, got.Items)
}

func TestAddMissingIngredients(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	list := f.newList(t)

	_, err := f.svc.AddItem(ctx, inbound.AddListItemCommand{
		ListID: list.ID, OwnerID: f.ownerID, Item: "large eggs",
	})
	require.NoError(t, err)

	result, err := f.svc.AddMissingIngredients(ctx, inbound.AddMissingCommand{
		ListID:  list.ID,
		OwnerID: f.ownerID,
		Items: []inbound.IngredientInput{
			{Item: "eggs", Amount: "3"},      // covered by "large eggs"
			{Item: "water", Amount: "2"},     // skip-classified
			{Item: "tortillas", Amount: "8"}, // genuinely new
		},
	})
	require.NoError(t, err)

	assert.Equal(t, 1, result.AddedCount)
	require.Len(t, result.List.Items, 2)
	assert.Equal(t, "tortillas", result.List.Items[1].Item)

	// Routed lines are system-produced, only direct entry is manual.
	assert.False(t, result.List.Items[1].ManuallyAdded)
	assert.True(t, result.List.Items[0].ManuallyAdded)
}

func TestConcurrentGeneration(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	rec := f.addRecipe(t, "Soup", recipe.Ingredient{Item: "leeks", Amount: "2"})
	f.plan(t, rec.ID(), f.from)
	list := f.newList(t)

	cmd := inbound.GenerateListCommand{ListID: list.ID, OwnerID: f.ownerID, From: f.from, To: f.to}

	done := make(chan struct{})
	for i := 0; i < 8; i++ {
		go func() {
			defer func() { done <- struct{}{} }()
			_, err := f.svc.GenerateFromMealPlans(ctx, cmd)
			assert.NoError(t, err)
		}()
	}
	for i := 0; i < 8; i++ {
		<-done
	}

	// Per-list serialization means exactly one copy of the line.
	got, err := f.svc.GetList(ctx, list.ID)
	require.NoError(t, err)
	assert.Len(t, got.Items, 1)
}
