package recipe

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/pantrysage/v2/internal/domain/recipe"
	"github.com/pantrysage/v2/internal/ports/inbound"
	"github.com/pantrysage/v2/internal/ports/outbound"
	"github.com/pantrysage/v2/pkg/errors"
)

type stubScraper struct {
	scraped *outbound.ScrapedRecipe
	err     error
	lastURL string
}

func (s *stubScraper) Scrape(_ context.Context, url string) (*outbound.ScrapedRecipe, error) {
	s.lastURL = url
	return s.scraped, s.err
}

func TestImportFromURLSavesScrapedRecipe(t *testing.T) {
	f := newFixture(t)
	scraper := &stubScraper{scraped: &outbound.ScrapedRecipe{
		Title:       "Shakshuka",
		Description: "Eggs poached in tomato sauce.",
		Ingredients: []recipe.Ingredient{
			{Amount: "4", Item: "eggs"},
			{Amount: "2", Unit: "cups", Item: "crushed tomatoes"},
		},
		Instructions: []string{"Simmer the sauce.", "Crack in the eggs and cover."},
		PrepMinutes:  10,
		CookMinutes:  20,
		Servings:     2,
		Cuisine:      "middle eastern",
		ImageURL:     "https://example.com/shakshuka.jpg",
	}}
	svc := NewService(f.recipes, f.users, scraper, zap.NewNop())

	dto, err := svc.ImportFromURL(context.Background(), inbound.ImportURLCommand{
		OwnerID: f.ownerID,
		URL:     "https://example.com/recipes/shakshuka",
	})
	require.NoError(t, err)

	assert.Equal(t, "https://example.com/recipes/shakshuka", scraper.lastURL)
	assert.Equal(t, "Shakshuka", dto.Title)
	assert.Len(t, dto.Ingredients, 2)
	assert.Len(t, dto.Instructions, 2)
	assert.Equal(t, 10, dto.PrepMinutes)
	assert.Equal(t, 20, dto.CookMinutes)
	assert.Equal(t, "middle eastern", dto.Cuisine)
	assert.Equal(t, "https://example.com/shakshuka.jpg", dto.ImageURL)
	// The page address is recorded so the import can be traced back.
	assert.Equal(t, "https://example.com/recipes/shakshuka", dto.SourceURL)

	saved, err := f.recipes.FindByID(context.Background(), dto.ID)
	require.NoError(t, err)
	assert.Equal(t, "Shakshuka", saved.Title())
}

func TestImportFromURLUntitledPageGetsDefaultTitle(t *testing.T) {
	f := newFixture(t)
	scraper := &stubScraper{scraped: &outbound.ScrapedRecipe{
		Ingredients:  []recipe.Ingredient{{Item: "flour"}},
		Instructions: []string{"Mix everything together."},
	}}
	svc := NewService(f.recipes, f.users, scraper, zap.NewNop())

	dto, err := svc.ImportFromURL(context.Background(), inbound.ImportURLCommand{
		OwnerID: f.ownerID,
		URL:     "https://example.com/untitled",
	})
	require.NoError(t, err)
	assert.Equal(t, "Imported Recipe", dto.Title)
}

func TestImportFromURLDisabled(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.ImportFromURL(context.Background(), inbound.ImportURLCommand{
		OwnerID: f.ownerID,
		URL:     "https://example.com/recipes/anything",
	})
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.CodeServiceUnavailable))
}

func TestImportCSVCreatesRecipes(t *testing.T) {
	f := newFixture(t)

	csv := "title,description,meal_type,prep_minutes,cook_minutes,servings,ingredients,instructions,tags\n" +
		"Pancakes,Fluffy stack,breakfast,10,15,4,\"2 cups flour; 1 egg; milk\",\"Mix the batter. | Fry until golden.\",\"quick, family\"\n" +
		"Minestrone,Vegetable soup,dinner,15,40,6,\"1 can beans; 2 carrots\",\"Chop the vegetables. | Simmer for forty minutes.\",comfort\n"

	result, err := f.svc.ImportCSV(context.Background(), f.ownerID, []byte(csv))
	require.NoError(t, err)
	require.Equal(t, 2, result.Count)

	pancakes := result.Recipes[0]
	assert.Equal(t, "Pancakes", pancakes.Title)
	assert.Equal(t, "breakfast", pancakes.MealType)
	assert.Equal(t, 10, pancakes.PrepMinutes)
	assert.Equal(t, 4, pancakes.Servings)
	require.Len(t, pancakes.Ingredients, 3)
	assert.Equal(t, "2", pancakes.Ingredients[0].Amount)
	assert.Equal(t, "cups", pancakes.Ingredients[0].Unit)
	assert.Equal(t, "flour", pancakes.Ingredients[0].Item)
	assert.Equal(t, "milk", pancakes.Ingredients[2].Item)
	assert.Equal(t, []string{"quick", "family"}, pancakes.Tags)
	assert.Len(t, pancakes.Instructions, 2)
}

func TestImportCSVSkipsMalformedRows(t *testing.T) {
	f := newFixture(t)

	// The middle row has too few columns and is dropped, not fatal.
	csv := "title,ingredients,instructions\n" +
		"Toast,bread,\"Toast the bread.\"\n" +
		"lonely-value\n" +
		"Omelette,\"3 eggs; butter\",\"Whisk. ; Cook gently.\"\n"

	result, err := f.svc.ImportCSV(context.Background(), f.ownerID, []byte(csv))
	require.NoError(t, err)
	assert.Equal(t, 2, result.Count)
	assert.Equal(t, "Toast", result.Recipes[0].Title)
	assert.Equal(t, "Omelette", result.Recipes[1].Title)
	assert.Len(t, result.Recipes[1].Instructions, 2)
}

func TestImportCSVUntitledRowGetsNumberedTitle(t *testing.T) {
	f := newFixture(t)

	csv := "title,ingredients,instructions\n" +
		",rice,\"Boil the rice.\"\n"

	result, err := f.svc.ImportCSV(context.Background(), f.ownerID, []byte(csv))
	require.NoError(t, err)
	require.Equal(t, 1, result.Count)
	assert.Equal(t, "Imported Recipe 1", result.Recipes[0].Title)
}

func TestImportCSVRejectsHeaderWithoutTitle(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.ImportCSV(context.Background(), f.ownerID, []byte("name,stuff\nfoo,bar\n"))
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.CodeValidationFailed))
}

func TestImportCSVRoundTripsExport(t *testing.T) {
	f := newFixture(t)
	f.create(t, "Waffles")

	exported, err := f.svc.ExportCSV(context.Background(), f.ownerID)
	require.NoError(t, err)

	result, err := f.svc.ImportCSV(context.Background(), f.ownerID, exported)
	require.NoError(t, err)
	require.Equal(t, 1, result.Count)

	imported := result.Recipes[0]
	assert.Equal(t, "Waffles", imported.Title)
	require.Len(t, imported.Ingredients, 2)
	assert.Equal(t, "eggs", imported.Ingredients[0].Item)
	assert.Equal(t, "2", imported.Ingredients[0].Amount)
	assert.Len(t, imported.Instructions, 2)
	assert.Equal(t, 4, imported.Servings)
}
