package dietary

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckAllergenAlwaysWarns(t *testing.T) {
	checker := NewChecker(nil)

	warnings := checker.Check(
		[]string{"2 tbsp peanut butter"},
		Profile{Allergies: []Allergen{AllergenPeanuts}},
	)

	require.NotEmpty(t, warnings)
	assert.Equal(t, SeverityAllergen, warnings[0].Severity)
	assert.Equal(t, "Peanuts", warnings[0].Label)
	assert.Equal(t, "2 tbsp peanut butter", warnings[0].Ingredient)
	assert.Equal(t, "ALLERGY WARNING: Contains Peanuts", warnings[0].Message)
}

func TestCheckMixedProfile(t *testing.T) {
	checker := NewChecker(nil)

	warnings := checker.Check(
		[]string{"1 cup whole milk", "peanut butter"},
		Profile{
			Allergies:    []Allergen{AllergenPeanuts},
			Restrictions: []Restriction{RestrictionVegan},
		},
	)

	require.Len(t, warnings, 3)

	// Allergen hits come first.
	assert.Equal(t, SeverityAllergen, warnings[0].Severity)
	assert.Equal(t, "peanut butter", warnings[0].Ingredient)

	// Vegan flags both the milk and the butter keyword in peanut butter.
	assert.Equal(t, SeverityRestriction, warnings[1].Severity)
	assert.Equal(t, "1 cup whole milk", warnings[1].Ingredient)
	assert.Equal(t, "Contains ingredients not suitable for Vegan diet", warnings[1].Message)
	assert.Equal(t, SeverityRestriction, warnings[2].Severity)
	assert.Equal(t, "peanut butter", warnings[2].Ingredient)
}

func TestCheckOneWarningPerIngredient(t *testing.T) {
	checker := NewChecker(nil)

	// Two milk-bearing lines, one restriction: two warnings, not one.
	warnings := checker.Check(
		[]string{"whole milk", "evaporated milk"},
		Profile{Restrictions: []Restriction{RestrictionDairyFree}},
	)

	require.Len(t, warnings, 2)
	assert.NotEqual(t, warnings[0].Ingredient, warnings[1].Ingredient)
}

func TestCheckNoConflicts(t *testing.T) {
	checker := NewChecker(nil)

	warnings := checker.Check(
		[]string{"tomatoes", "olive oil", "basil"},
		Profile{
			Allergies:    []Allergen{AllergenShellfish},
			Restrictions: []Restriction{RestrictionVegan, RestrictionGlutenFree},
		},
	)

	assert.Empty(t, warnings)
}

func TestCheckEmptyProfile(t *testing.T) {
	checker := NewChecker(nil)

	warnings := checker.Check([]string{"shrimp", "wheat flour"}, Profile{})
	assert.Empty(t, warnings)
}

func TestCheckSkipsBlankIngredients(t *testing.T) {
	checker := NewChecker(nil)

	warnings := checker.Check(
		[]string{"", "   "},
		Profile{Allergies: []Allergen{AllergenEggs}},
	)
	assert.Empty(t, warnings)
}

func TestCheckRestrictionTables(t *testing.T) {
	checker := NewChecker(nil)

	cases := []struct {
		restriction Restriction
		ingredient  string
	}{
		{RestrictionVegetarian, "ground beef"},
		{RestrictionVegetarian, "chicken thighs"},
		{RestrictionVegan, "cheddar cheese"},
		{RestrictionVegan, "greek yogurt"},
		{RestrictionGlutenFree, "all-purpose flour"},
		{RestrictionGlutenFree, "rye bread"},
		{RestrictionDairyFree, "heavy cream"},
		{RestrictionKeto, "jasmine rice"},
		{RestrictionLowCarb, "russet potato"},
		{RestrictionPaleo, "refined sugar"},
		{RestrictionKosher, "pork loin"},
		{RestrictionHalal, "red wine"},
	}
	for _, tc := range cases {
		t.Run(string(tc.restriction)+"/"+tc.ingredient, func(t *testing.T) {
			warnings := checker.Check(
				[]string{tc.ingredient},
				Profile{Restrictions: []Restriction{tc.restriction}},
			)
			require.NotEmpty(t, warnings)
			assert.Equal(t, SeverityRestriction, warnings[0].Severity)
			assert.Equal(t, string(tc.restriction), warnings[0].Label)
		})
	}
}

func TestCheckAllergenTables(t *testing.T) {
	checker := NewChecker(nil)

	cases := []struct {
		allergen   Allergen
		ingredient string
	}{
		{AllergenNuts, "sliced almonds"},
		{AllergenNuts, "hazelnut spread"},
		{AllergenPeanuts, "roasted peanuts"},
		{AllergenShellfish, "jumbo shrimp"},
		{AllergenFish, "canned tuna"},
		{AllergenEggs, "3 large eggs"},
		{AllergenMilk, "whole milk"},
		{AllergenSoy, "firm tofu"},
		{AllergenWheat, "whole wheat flour"},
		{AllergenSesame, "tahini paste"},
	}
	for _, tc := range cases {
		t.Run(string(tc.allergen)+"/"+tc.ingredient, func(t *testing.T) {
			warnings := checker.Check(
				[]string{tc.ingredient},
				Profile{Allergies: []Allergen{tc.allergen}},
			)
			require.NotEmpty(t, warnings)
			assert.Equal(t, SeverityAllergen, warnings[0].Severity)
		})
	}
}

func TestHasAllergenConflict(t *testing.T) {
	checker := NewChecker(nil)

	profile := Profile{
		Allergies:    []Allergen{AllergenShellfish},
		Restrictions: []Restriction{RestrictionVegan},
	}
	assert.True(t, checker.HasAllergenConflict([]string{"lobster tail"}, profile))
	// Restriction-only conflicts are not allergen conflicts.
	assert.False(t, checker.HasAllergenConflict([]string{"butter"}, profile))
}

func TestSummarizeCollapsesByLabel(t *testing.T) {
	checker := NewChecker(nil)

	warnings := checker.Check(
		[]string{"whole milk", "evaporated milk", "peanut oil"},
		Profile{
			Allergies:    []Allergen{AllergenPeanuts},
			Restrictions: []Restriction{RestrictionDairyFree},
		},
	)
	lines := Summarize(warnings)

	require.Len(t, lines, 2)
	assert.Equal(t, "ALLERGY WARNING: Contains Peanuts", lines[0])
	assert.Equal(t, "Contains ingredients not suitable for Dairy-Free diet", lines[1])
}

func TestRuleBaseVersioned(t *testing.T) {
	checker := NewChecker(nil)
	assert.NotEmpty(t, checker.RulesVersion())
}
