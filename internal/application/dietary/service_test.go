package dietary

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/pantrysage/v2/internal/domain/dietary"
	"github.com/pantrysage/v2/internal/domain/recipe"
	"github.com/pantrysage/v2/internal/domain/user"
	"github.com/pantrysage/v2/internal/infrastructure/persistence/memory"
	"github.com/pantrysage/v2/internal/ports/inbound"
	"github.com/pantrysage/v2/internal/ports/outbound"
)

func setup(t *testing.T) (inbound.DietaryService, outbound.UserRepository, outbound.RecipeRepository, *user.User) {
	t.Helper()
	users := memory.NewUserRepository()
	recipes := memory.NewRecipeRepository()
	svc := NewService(users, recipes, nil, zap.NewNop())

	u, err := user.New("ana@example.com", "Ana")
	require.NoError(t, err)
	require.NoError(t, users.Create(context.Background(), u))
	return svc, users, recipes, u
}

func TestCheckRecipeMixedProfile(t *testing.T) {
	svc, _, recipes, u := setup(t)
	ctx := context.Background()

	u.AddAllergy(dietary.AllergenPeanuts)
	u.AddRestriction(dietary.RestrictionVegan)

	rec, err := recipe.New("Peanut Noodles", "", u.ID())
	require.NoError(t, err)
	require.NoError(t, rec.ReplaceIngredients([]recipe.Ingredient{
		{Item: "whole milk", Amount: "1", Unit: "cup"},
		{Item: "peanut butter", Amount: "2", Unit: "tbsp"},
	}))
	require.NoError(t, recipes.Create(ctx, rec))

	result, err := svc.CheckRecipe(ctx, rec.ID(), u.ID())
	require.NoError(t, err)

	var allergen, restriction int
	for _, w := range result.Warnings {
		switch w.Severity {
		case dietary.SeverityAllergen:
			allergen++
			assert.Equal(t, "Peanuts", w.Label)
		case dietary.SeverityRestriction:
			restriction++
			assert.Equal(t, "Vegan", w.Label)
		}
	}
	assert.Equal(t, 1, allergen)
	// Vegan flags both the milk and the butter keyword.
	assert.Equal(t, 2, restriction)
	assert.Contains(t, result.Summary, "ALLERGY WARNING: Contains Peanuts")
}

func TestCheckRecipeUnknownRecipe(t *testing.T) {
	svc, _, _, u := setup(t)

	_, err := svc.CheckRecipe(context.Background(), uuid.New(), u.ID())
	require.Error(t, err)
}

func TestCheckIngredientsNoProfile(t *testing.T) {
	svc, _, _, u := setup(t)

	result, err := svc.CheckIngredients(context.Background(), u.ID(), []string{"shrimp", "flour"})
	require.NoError(t, err)
	assert.Empty(t, result.Warnings)
	assert.Empty(t, result.Summary)
}

func TestUpdatePreferences(t *testing.T) {
	svc, users, _, u := setup(t)
	ctx := context.Background()

	days := 5
	prefs, err := svc.UpdatePreferences(ctx, inbound.UpdatePreferencesCommand{
		UserID:              u.ID(),
		DietaryRestrictions: []string{"Vegan", "Gluten-Free"},
		Allergies:           []string{"Shellfish"},
		DislikedIngredients: []string{"cilantro"},
		ExpiryAlertDays:     &days,
	})
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"Vegan", "Gluten-Free"}, prefs.DietaryRestrictions)
	assert.Equal(t, []string{"Shellfish"}, prefs.Allergies)
	assert.Equal(t, 5, prefs.ExpiryAlertDays)

	// Replacement semantics: a second update drops the old sets.
	prefs, err = svc.UpdatePreferences(ctx, inbound.UpdatePreferencesCommand{
		UserID:              u.ID(),
		DietaryRestrictions: []string{"Keto"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"Keto"}, prefs.DietaryRestrictions)
	assert.Empty(t, prefs.Allergies)

	stored, err := users.FindByID(ctx, u.ID())
	require.NoError(t, err)
	assert.Equal(t, []dietary.Restriction{dietary.RestrictionKeto}, stored.Preferences().DietaryRestrictions)
}

func TestUpdatePreferencesRejectsUnknownLabels(t *testing.T) {
	svc, _, _, u := setup(t)
	ctx := context.Background()

	_, err := svc.UpdatePreferences(ctx, inbound.UpdatePreferencesCommand{
		UserID:              u.ID(),
		DietaryRestrictions: []string{"Carnivore"},
	})
	require.Error(t, err)

	_, err = svc.UpdatePreferences(ctx, inbound.UpdatePreferencesCommand{
		UserID:    u.ID(),
		Allergies: []string{"Gluten"},
	})
	require.Error(t, err)
}
