package recipe

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/pantrysage/v2/internal/infrastructure/persistence/memory"
	"github.com/pantrysage/v2/internal/ports/inbound"
	"github.com/pantrysage/v2/internal/ports/outbound"
	"github.com/pantrysage/v2/pkg/errors"
	"github.com/pantrysage/v2/test/testutils"
)

type fixture struct {
	svc     inbound.RecipeService
	recipes outbound.RecipeRepository
	users   outbound.UserRepository
	ownerID uuid.UUID
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	recipes := memory.NewRecipeRepository()
	users := memory.NewUserRepository()

	owner := testutils.NewFactory(7).User()
	require.NoError(t, users.Create(context.Background(), owner))

	return &fixture{
		svc:     NewService(recipes, users, nil, zap.NewNop()),
		recipes: recipes,
		users:   users,
		ownerID: owner.ID(),
	}
}

func (f *fixture) create(t *testing.T, title string) *inbound.RecipeDTO {
	t.Helper()
	dto, err := f.svc.CreateRecipe(context.Background(), inbound.CreateRecipeCommand{
		OwnerID: f.ownerID,
		Title:   title,
		Ingredients: []inbound.IngredientInput{
			{Item: "eggs", Amount: "2"},
			{Item: "flour", Amount: "1", Unit: "cup"},
		},
		Instructions: []string{"Mix.", "Bake."},
		Servings:     4,
	})
	require.NoError(t, err)
	return dto
}

func TestCreateRecipeRequiresKnownOwner(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.CreateRecipe(context.Background(), inbound.CreateRecipeCommand{
		OwnerID: uuid.New(),
		Title:   "Orphan Recipe",
	})
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.CodeNotFound))
}

func TestUpdateRecipePartial(t *testing.T) {
	f := newFixture(t)
	created := f.create(t, "Pancakes")

	newTitle := "Buttermilk Pancakes"
	updated, err := f.svc.UpdateRecipe(context.Background(), inbound.UpdateRecipeCommand{
		RecipeID: created.ID,
		OwnerID:  f.ownerID,
		Title:    &newTitle,
	})
	require.NoError(t, err)

	assert.Equal(t, "Buttermilk Pancakes", updated.Title)
	// Fields not in the command keep their values.
	assert.Len(t, updated.Ingredients, 2)
	assert.Equal(t, 4, updated.Servings)
}

func TestUpdateRecipeRejectsOtherOwners(t *testing.T) {
	f := newFixture(t)
	created := f.create(t, "Pancakes")

	title := "Stolen Pancakes"
	_, err := f.svc.UpdateRecipe(context.Background(), inbound.UpdateRecipeCommand{
		RecipeID: created.ID,
		OwnerID:  uuid.New(),
		Title:    &title,
	})
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.CodeForbidden))
}

func TestDeleteRecipeIsSoft(t *testing.T) {
	f := newFixture(t)
	created := f.create(t, "Pancakes")
	ctx := context.Background()

	require.NoError(t, f.svc.DeleteRecipe(ctx, created.ID, f.ownerID))

	// Deleted recipes stay resolvable by ID for history.
	dto, err := f.svc.GetRecipe(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Pancakes", dto.Title)

	// But list queries exclude them.
	list, err := f.svc.ListRecipes(ctx, f.ownerID, inbound.PaginationParams{Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, 0, list.Total)
}

func TestSearchRecipes(t *testing.T) {
	f := newFixture(t)
	f.create(t, "Garlic Pasta")
	f.create(t, "Pancakes")

	list, err := f.svc.SearchRecipes(context.Background(), f.ownerID, "garlic", inbound.PaginationParams{Limit: 10})
	require.NoError(t, err)
	require.Equal(t, 1, list.Total)
	assert.Equal(t, "Garlic Pasta", list.Recipes[0].Title)
}

func TestExportCSV(t *testing.T) {
	f := newFixture(t)
	f.create(t, "Pancakes")

	data, err := f.svc.ExportCSV(context.Background(), f.ownerID)
	require.NoError(t, err)

	out := string(data)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "title,description,meal_type")
	assert.Contains(t, lines[1], "Pancakes")
	assert.Contains(t, lines[1], "2 eggs; 1 cup flour")
	assert.Contains(t, lines[1], "Mix. | Bake.")
}
