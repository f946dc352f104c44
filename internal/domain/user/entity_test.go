package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pantrysage/v2/internal/domain/dietary"
)

func TestNewUser(t *testing.T) {
	u, err := New("Ana@Example.com", "Ana")
	require.NoError(t, err)

	assert.Equal(t, "ana@example.com", u.Email())
	assert.True(t, u.IsActive())
	assert.Equal(t, DefaultExpiryAlertDays, u.Preferences().ExpiryAlertDays)

	_, err = New("not-an-email", "Ana")
	assert.ErrorIs(t, err, ErrInvalidEmail)

	_, err = New("a@b.com", "  ")
	assert.ErrorIs(t, err, ErrNameRequired)
}

func TestPreferencesBehaveAsSets(t *testing.T) {
	u, err := New("a@b.com", "Ana")
	require.NoError(t, err)

	u.AddRestriction(dietary.RestrictionVegan)
	u.AddRestriction(dietary.RestrictionVegan)
	u.AddRestriction(dietary.RestrictionGlutenFree)
	assert.Len(t, u.Preferences().DietaryRestrictions, 2)

	u.RemoveRestriction(dietary.RestrictionVegan)
	assert.Equal(t,
		[]dietary.Restriction{dietary.RestrictionGlutenFree},
		u.Preferences().DietaryRestrictions)

	// Removing something absent is a no-op.
	u.RemoveRestriction(dietary.RestrictionKeto)
	assert.Len(t, u.Preferences().DietaryRestrictions, 1)

	u.AddAllergy(dietary.AllergenPeanuts)
	u.AddAllergy(dietary.AllergenPeanuts)
	assert.Len(t, u.Preferences().Allergies, 1)

	u.RemoveAllergy(dietary.AllergenPeanuts)
	assert.Empty(t, u.Preferences().Allergies)
}

func TestDietaryProfile(t *testing.T) {
	u, err := New("a@b.com", "Ana")
	require.NoError(t, err)

	u.AddRestriction(dietary.RestrictionVegan)
	u.AddAllergy(dietary.AllergenPeanuts)

	profile := u.DietaryProfile()
	assert.Equal(t, []dietary.Restriction{dietary.RestrictionVegan}, profile.Restrictions)
	assert.Equal(t, []dietary.Allergen{dietary.AllergenPeanuts}, profile.Allergies)
}

func TestSetDislikedIngredients(t *testing.T) {
	u, err := New("a@b.com", "Ana")
	require.NoError(t, err)

	u.SetDislikedIngredients([]string{"cilantro", "", "  ", "olives"})
	assert.Equal(t, []string{"cilantro", "olives"}, u.Preferences().DislikedIngredients)
}

func TestSetExpiryAlertDays(t *testing.T) {
	u, err := New("a@b.com", "Ana")
	require.NoError(t, err)

	u.SetExpiryAlertDays(7)
	assert.Equal(t, 7, u.Preferences().ExpiryAlertDays)

	u.SetExpiryAlertDays(0)
	assert.Equal(t, DefaultExpiryAlertDays, u.Preferences().ExpiryAlertDays)
}
