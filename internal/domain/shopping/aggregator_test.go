package shopping

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pantrysage/v2/internal/domain/grocery"
	"github.com/pantrysage/v2/internal/domain/mealplan"
	"github.com/pantrysage/v2/internal/domain/recipe"
)

var (
	day     = time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	weekEnd = day.AddDate(0, 0, 6)
)

func buildRecipe(t *testing.T, title string, ingredients ...recipe.Ingredient) *recipe.Recipe {
	t.Helper()
	r, err := recipe.New(title, "", uuid.New())
	require.NoError(t, err)
	require.NoError(t, r.ReplaceIngredients(ingredients))
	return r
}

func planEntry(t *testing.T, recipeID uuid.UUID, on time.Time) *mealplan.Entry {
	t.Helper()
	e, err := mealplan.NewEntry(uuid.New(), recipeID, on, recipe.MealTypeDinner, 2)
	require.NoError(t, err)
	return e
}

func TestBuildSumsSharedIngredients(t *testing.T) {
	agg := NewAggregator(nil, nil)

	stirFry := buildRecipe(t, "Garlic Stir Fry",
		recipe.Ingredient{Item: "garlic", Amount: "2", Unit: "clove"})
	pasta := buildRecipe(t, "Garlic Pasta",
		recipe.Ingredient{Item: "garlic", Amount: "3", Unit: "clove"})

	recipes := map[uuid.UUID]*recipe.Recipe{
		stirFry.ID(): stirFry,
		pasta.ID():   pasta,
	}
	entries := []*mealplan.Entry{
		planEntry(t, stirFry.ID(), day),
		planEntry(t, pasta.ID(), day.AddDate(0, 0, 1)),
	}

	items, outcome := agg.Build(entries, recipes, nil, day, weekEnd)

	assert.Equal(t, OutcomeAdded, outcome)
	require.Len(t, items, 1)
	assert.Equal(t, "garlic", items[0].Item)
	assert.Equal(t, "5", items[0].Amount)
	assert.Equal(t, "clove", items[0].Unit)
	assert.ElementsMatch(t, []string{"Garlic Stir Fry", "Garlic Pasta"}, items[0].FromRecipes)
	assert.False(t, items[0].Checked)
	assert.False(t, items[0].ManuallyAdded)
}

func TestBuildCaseSensitiveKeys(t *testing.T) {
	agg := NewAggregator(nil, nil)

	r := buildRecipe(t, "Salsa",
		recipe.Ingredient{Item: "Tomato", Amount: "2", Unit: "item"},
		recipe.Ingredient{Item: "tomato", Amount: "3", Unit: "item"})
	recipes := map[uuid.UUID]*recipe.Recipe{r.ID(): r}
	entries := []*mealplan.Entry{planEntry(t, r.ID(), day)}

	items, _ := agg.Build(entries, recipes, nil, day, weekEnd)

	// Keys are not normalized: two separate lines.
	require.Len(t, items, 2)
	assert.Equal(t, "Tomato", items[0].Item)
	assert.Equal(t, "2", items[0].Amount)
	assert.Equal(t, "tomato", items[1].Item)
	assert.Equal(t, "3", items[1].Amount)
}

func TestBuildDistinguishesEmptyOutcomes(t *testing.T) {
	agg := NewAggregator(nil, nil)

	r := buildRecipe(t, "Omelette", recipe.Ingredient{Item: "eggs", Amount: "3"})
	recipes := map[uuid.UUID]*recipe.Recipe{r.ID(): r}

	// Entry outside the range: no entries at all.
	outside := []*mealplan.Entry{planEntry(t, r.ID(), day.AddDate(0, 0, 30))}
	items, outcome := agg.Build(outside, recipes, nil, day, weekEnd)
	assert.Empty(t, items)
	assert.Equal(t, OutcomeNoEntries, outcome)

	// Entry in range but the list already covers eggs: nothing new.
	existing := []ListItem{{Item: "large eggs"}}
	inRange := []*mealplan.Entry{planEntry(t, r.ID(), day)}
	items, outcome = agg.Build(inRange, recipes, existing, day, weekEnd)
	assert.Empty(t, items)
	assert.Equal(t, OutcomeNoNewItems, outcome)
}

func TestBuildIdempotent(t *testing.T) {
	agg := NewAggregator(nil, nil)

	r := buildRecipe(t, "Chili",
		recipe.Ingredient{Item: "kidney beans", Amount: "2", Unit: "can"},
		recipe.Ingredient{Item: "ground beef", Amount: "1", Unit: "lb"})
	recipes := map[uuid.UUID]*recipe.Recipe{r.ID(): r}
	entries := []*mealplan.Entry{planEntry(t, r.ID(), day)}

	first, outcome := agg.Build(entries, recipes, nil, day, weekEnd)
	require.Equal(t, OutcomeAdded, outcome)
	require.Len(t, first, 2)

	// Running again against the updated list adds nothing.
	second, outcome := agg.Build(entries, recipes, first, day, weekEnd)
	assert.Empty(t, second)
	assert.Equal(t, OutcomeNoNewItems, outcome)
}

func TestBuildSkipsDeletedRecipes(t *testing.T) {
	agg := NewAggregator(nil, nil)

	gone := buildRecipe(t, "Retired Dish", recipe.Ingredient{Item: "saffron"})
	require.NoError(t, gone.Delete())
	kept := buildRecipe(t, "Soup", recipe.Ingredient{Item: "leeks", Amount: "2"})

	recipes := map[uuid.UUID]*recipe.Recipe{
		gone.ID(): gone,
		kept.ID(): kept,
	}
	entries := []*mealplan.Entry{
		planEntry(t, gone.ID(), day),
		planEntry(t, kept.ID(), day),
		planEntry(t, uuid.New(), day), // dangling reference
	}

	items, outcome := agg.Build(entries, recipes, nil, day, weekEnd)

	assert.Equal(t, OutcomeAdded, outcome)
	require.Len(t, items, 1)
	assert.Equal(t, "leeks", items[0].Item)
}

func TestBuildOmitsSkipClassified(t *testing.T) {
	agg := NewAggregator(nil, nil)

	r := buildRecipe(t, "Rice",
		recipe.Ingredient{Item: "water", Amount: "2", Unit: "cup"},
		recipe.Ingredient{Item: "jasmine rice", Amount: "1", Unit: "cup"})
	recipes := map[uuid.UUID]*recipe.Recipe{r.ID(): r}
	entries := []*mealplan.Entry{planEntry(t, r.ID(), day)}

	items, _ := agg.Build(entries, recipes, nil, day, weekEnd)

	require.Len(t, items, 1)
	assert.Equal(t, "jasmine rice", items[0].Item)
}

func TestBuildBestEffortAmounts(t *testing.T) {
	agg := NewAggregator(nil, nil)

	r := buildRecipe(t, "Dressing",
		recipe.Ingredient{Item: "olive oil", Amount: "1.5", Unit: "tbsp"},
		recipe.Ingredient{Item: "vinegar", Amount: "a splash", Unit: ""})
	recipes := map[uuid.UUID]*recipe.Recipe{r.ID(): r}
	entries := []*mealplan.Entry{planEntry(t, r.ID(), day)}

	items, _ := agg.Build(entries, recipes, nil, day, weekEnd)

	require.Len(t, items, 2)
	assert.Equal(t, "1.5", items[0].Amount)
	// Unparseable amounts count as one, blank units default.
	assert.Equal(t, "1", items[1].Amount)
	assert.Equal(t, "item", items[1].Unit)
}

func TestBuildSkipsBlankIngredientNames(t *testing.T) {
	agg := NewAggregator(nil, nil)

	r, err := recipe.New("Sparse", "", uuid.New())
	require.NoError(t, err)
	// Restore path allows blank lines that validation would reject.
	restored := recipe.Restore(r.ID(), 1, "Sparse", "", uuid.New(),
		[]recipe.Ingredient{{Item: "  "}, {Item: "basil", Amount: "1", Unit: "bunch"}},
		nil, "", "", 0, 0, 1, nil, "", "", "", recipe.StatusActive, time.Now(), time.Now(), nil)

	recipes := map[uuid.UUID]*recipe.Recipe{restored.ID(): restored}
	entries := []*mealplan.Entry{planEntry(t, restored.ID(), day)}

	items, _ := agg.Build(entries, recipes, nil, day, weekEnd)

	require.Len(t, items, 1)
	assert.Equal(t, "basil", items[0].Item)
}

func TestBuildAssignsCategories(t *testing.T) {
	agg := NewAggregator(nil, nil)

	r := buildRecipe(t, "Breakfast",
		recipe.Ingredient{Item: "whole milk", Amount: "1", Unit: "gallon"},
		recipe.Ingredient{Item: "chicken breast", Amount: "2", Unit: "lb"})
	recipes := map[uuid.UUID]*recipe.Recipe{r.ID(): r}
	entries := []*mealplan.Entry{planEntry(t, r.ID(), day)}

	items, _ := agg.Build(entries, recipes, nil, day, weekEnd)

	require.Len(t, items, 2)
	assert.Equal(t, grocery.CategoryDairy, items[0].Category)
	assert.Equal(t, grocery.CategoryPoultry, items[1].Category)
}
