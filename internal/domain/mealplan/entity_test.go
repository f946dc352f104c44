package mealplan

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pantrysage/v2/internal/domain/recipe"
)

func TestNewEntryTruncatesToCalendarDay(t *testing.T) {
	when := time.Date(2025, 3, 14, 18, 45, 3, 0, time.UTC)

	e, err := NewEntry(uuid.New(), uuid.New(), when, recipe.MealTypeDinner, 2)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC), e.Date())
	assert.Equal(t, 2, e.Servings())
}

func TestNewEntryValidation(t *testing.T) {
	_, err := NewEntry(uuid.New(), uuid.Nil, time.Now(), recipe.MealTypeLunch, 1)
	assert.ErrorIs(t, err, ErrRecipeRequired)

	_, err = NewEntry(uuid.New(), uuid.New(), time.Now(), "brunch", 1)
	assert.ErrorIs(t, err, ErrInvalidMealType)

	// Non-positive servings default rather than error.
	e, err := NewEntry(uuid.New(), uuid.New(), time.Now(), recipe.MealTypeBreakfast, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, e.Servings())
}

func TestSetNotesTrims(t *testing.T) {
	e, err := NewEntry(uuid.New(), uuid.New(), time.Now(), recipe.MealTypeDinner, 1)
	require.NoError(t, err)
	assert.Empty(t, e.Notes())

	e.SetNotes("  make extra for lunchboxes ")
	assert.Equal(t, "make extra for lunchboxes", e.Notes())

	e.SetNotes("")
	assert.Empty(t, e.Notes())
}

func TestInRangeInclusiveBothEnds(t *testing.T) {
	day := time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)
	e, err := NewEntry(uuid.New(), uuid.New(), day, recipe.MealTypeDinner, 1)
	require.NoError(t, err)

	// Exactly on the boundaries counts, whatever the time of day.
	from := time.Date(2025, 3, 14, 23, 59, 0, 0, time.UTC)
	to := time.Date(2025, 3, 14, 0, 1, 0, 0, time.UTC)
	assert.True(t, e.InRange(from, to))

	assert.True(t, e.InRange(day.AddDate(0, 0, -3), day))
	assert.True(t, e.InRange(day, day.AddDate(0, 0, 3)))
	assert.False(t, e.InRange(day.AddDate(0, 0, 1), day.AddDate(0, 0, 7)))
	assert.False(t, e.InRange(day.AddDate(0, 0, -7), day.AddDate(0, 0, -1)))
}

func TestReschedule(t *testing.T) {
	e, err := NewEntry(uuid.New(), uuid.New(), time.Now(), recipe.MealTypeLunch, 1)
	require.NoError(t, err)

	target := time.Date(2025, 4, 2, 13, 30, 0, 0, time.UTC)
	e.Reschedule(target)
	assert.Equal(t, time.Date(2025, 4, 2, 0, 0, 0, 0, time.UTC), e.Date())

	require.NoError(t, e.ChangeMealType(recipe.MealTypeSnack))
	assert.Equal(t, recipe.MealTypeSnack, e.MealType())
	assert.ErrorIs(t, e.ChangeMealType("second breakfast"), ErrInvalidMealType)
}
