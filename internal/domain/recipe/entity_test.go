package recipe

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRecipe(t *testing.T) {
	ownerID := uuid.New()

	r, err := New("Garlic Pasta", "weeknight standby", ownerID)
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, r.ID())
	assert.Equal(t, "Garlic Pasta", r.Title())
	assert.Equal(t, ownerID, r.OwnerID())
	assert.Equal(t, StatusActive, r.Status())
	assert.False(t, r.IsDeleted())

	events := r.Events()
	require.Len(t, events, 1)
	assert.Equal(t, "recipe.created", events[0].EventName())
	// Events are drained on read.
	assert.Empty(t, r.Events())
}

func TestNewRecipeValidation(t *testing.T) {
	_, err := New("", "desc", uuid.New())
	assert.ErrorIs(t, err, ErrTitleRequired)

	_, err = New("   ", "desc", uuid.New())
	assert.ErrorIs(t, err, ErrTitleRequired)
}

func TestAddIngredientFreeTextAmounts(t *testing.T) {
	r, err := New("Stir Fry", "", uuid.New())
	require.NoError(t, err)

	lines := []Ingredient{
		{Item: "garlic", Amount: "2", Unit: "cloves"},
		{Item: "soy sauce", Amount: "a splash", Unit: ""},
		{Item: "rice", Amount: "1 1/2", Unit: "cups", Notes: "jasmine"},
	}
	for _, ing := range lines {
		require.NoError(t, r.AddIngredient(ing))
	}

	got := r.Ingredients()
	require.Len(t, got, 3)
	// Free text survives untouched.
	assert.Equal(t, "a splash", got[1].Amount)
	assert.Equal(t, "1 1/2", got[2].Amount)

	assert.Equal(t, []string{"garlic", "soy sauce", "rice"}, r.IngredientNames())
}

func TestAddIngredientRequiresItem(t *testing.T) {
	r, err := New("Soup", "", uuid.New())
	require.NoError(t, err)

	err = r.AddIngredient(Ingredient{Item: "  ", Amount: "1"})
	assert.ErrorIs(t, err, ErrIngredientItemRequired)
	assert.Empty(t, r.Ingredients())
}

func TestInstructions(t *testing.T) {
	r, err := New("Toast", "", uuid.New())
	require.NoError(t, err)

	require.NoError(t, r.AddInstruction("slice bread"))
	require.NoError(t, r.AddInstruction("toast until golden"))
	assert.Len(t, r.Instructions(), 2)

	assert.ErrorIs(t, r.AddInstruction(""), ErrEmptyInstruction)

	err = r.ReplaceInstructions([]string{"one", " "})
	assert.ErrorIs(t, err, ErrEmptyInstruction)
	// Failed replace leaves the list untouched.
	assert.Len(t, r.Instructions(), 2)
}

func TestSettersValidate(t *testing.T) {
	r, err := New("Curry", "", uuid.New())
	require.NoError(t, err)

	assert.ErrorIs(t, r.SetServings(0), ErrInvalidServings)
	assert.ErrorIs(t, r.SetTiming(-1, 10), ErrNegativeTiming)
	assert.ErrorIs(t, r.SetMealType("brunch"), ErrInvalidMealType)

	require.NoError(t, r.SetServings(4))
	require.NoError(t, r.SetTiming(15, 30))
	require.NoError(t, r.SetMealType(MealTypeDinner))
	assert.Equal(t, 4, r.Servings())
	assert.Equal(t, 15, r.PrepMinutes())
	assert.Equal(t, MealTypeDinner, r.MealType())
}

func TestSetTagsDropsBlanks(t *testing.T) {
	r, err := New("Salad", "", uuid.New())
	require.NoError(t, err)

	r.SetTags([]string{"quick", "  ", "vegetarian", ""})
	assert.Equal(t, []string{"quick", "vegetarian"}, r.Tags())
}

func TestDelete(t *testing.T) {
	r, err := New("Old Recipe", "", uuid.New())
	require.NoError(t, err)
	r.Events() // drain creation event

	require.NoError(t, r.Delete())
	assert.True(t, r.IsDeleted())
	assert.NotNil(t, r.DeletedAt())

	events := r.Events()
	require.Len(t, events, 1)
	assert.Equal(t, "recipe.deleted", events[0].EventName())

	assert.ErrorIs(t, r.Delete(), ErrAlreadyDeleted)
}

func TestVersionIncrementsOnMutation(t *testing.T) {
	r, err := New("Tacos", "", uuid.New())
	require.NoError(t, err)
	v := r.Version()

	require.NoError(t, r.UpdateTitle("Street Tacos"))
	assert.Equal(t, v+1, r.Version())
}
