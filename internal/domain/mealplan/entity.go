// Package mealplan models planned meals on a calendar. Entries bind a
// recipe to a calendar date and meal slot; range queries compare calendar
// dates only, never time of day.
package mealplan

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/pantrysage/v2/internal/domain/recipe"
)

// Entry is one planned meal.
type Entry struct {
	id       uuid.UUID
	ownerID  uuid.UUID
	recipeID uuid.UUID
	date     time.Time
	mealType recipe.MealType
	servings int
	notes    string

	createdAt time.Time
	updatedAt time.Time
}

// NewEntry plans a recipe for a date and meal slot. The date's time of
// day is discarded.
func NewEntry(ownerID, recipeID uuid.UUID, date time.Time, mealType recipe.MealType, servings int) (*Entry, error) {
	if recipeID == uuid.Nil {
		return nil, ErrRecipeRequired
	}
	if !mealType.IsValid() {
		return nil, ErrInvalidMealType
	}
	if servings <= 0 {
		servings = 1
	}

	now := time.Now()
	return &Entry{
		id:        uuid.New(),
		ownerID:   ownerID,
		recipeID:  recipeID,
		date:      truncateToDay(date),
		mealType:  mealType,
		servings:  servings,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// RestoreEntry rebuilds an Entry from persisted state.
func RestoreEntry(id, ownerID, recipeID uuid.UUID, date time.Time, mealType recipe.MealType, servings int, notes string, createdAt, updatedAt time.Time) *Entry {
	return &Entry{
		id:        id,
		ownerID:   ownerID,
		recipeID:  recipeID,
		date:      truncateToDay(date),
		mealType:  mealType,
		servings:  servings,
		notes:     notes,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// ID returns the entry identifier.
func (e *Entry) ID() uuid.UUID { return e.id }

// OwnerID returns the owning user.
func (e *Entry) OwnerID() uuid.UUID { return e.ownerID }

// RecipeID returns the planned recipe.
func (e *Entry) RecipeID() uuid.UUID { return e.recipeID }

// Date returns the planned calendar day (midnight UTC of that day).
func (e *Entry) Date() time.Time { return e.date }

// MealType returns the meal slot.
func (e *Entry) MealType() recipe.MealType { return e.mealType }

// Servings returns the planned serving count.
func (e *Entry) Servings() int { return e.servings }

// Notes returns the free-text note attached to the entry.
func (e *Entry) Notes() string { return e.notes }

// CreatedAt returns when the entry was planned.
func (e *Entry) CreatedAt() time.Time { return e.createdAt }

// UpdatedAt returns when the entry last changed.
func (e *Entry) UpdatedAt() time.Time { return e.updatedAt }

// Reschedule moves the entry to another calendar day.
func (e *Entry) Reschedule(date time.Time) {
	e.date = truncateToDay(date)
	e.updatedAt = time.Now()
}

// ChangeMealType moves the entry to another meal slot.
func (e *Entry) ChangeMealType(mt recipe.MealType) error {
	if !mt.IsValid() {
		return ErrInvalidMealType
	}
	e.mealType = mt
	e.updatedAt = time.Now()
	return nil
}

// SetServings updates the planned serving count.
func (e *Entry) SetServings(servings int) error {
	if servings <= 0 {
		return ErrInvalidServings
	}
	e.servings = servings
	e.updatedAt = time.Now()
	return nil
}

// SetNotes replaces the free-text note.
func (e *Entry) SetNotes(notes string) {
	e.notes = strings.TrimSpace(notes)
	e.updatedAt = time.Now()
}

// InRange reports whether the entry's date falls within [from, to],
// inclusive on both ends, compared as calendar dates.
func (e *Entry) InRange(from, to time.Time) bool {
	day := e.date
	return !day.Before(truncateToDay(from)) && !day.After(truncateToDay(to))
}

func truncateToDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
