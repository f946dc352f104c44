// Package user defines the user account and its dietary preferences.
package user

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/pantrysage/v2/internal/domain/dietary"
)

// User represents an account in the system. Preferences behave as sets:
// adding an existing restriction or allergy is a no-op, and removal of
// an absent one is too.
type User struct {
	id           uuid.UUID
	email        string
	name         string
	isActive     bool
	preferences  Preferences
	createdAt    time.Time
	updatedAt    time.Time
}

// Preferences groups the dietary inputs the safety checker consumes
// plus display settings.
type Preferences struct {
	DietaryRestrictions []dietary.Restriction
	Allergies           []dietary.Allergen
	DislikedIngredients []string
	ExpiryAlertDays     int
}

// Domain errors for user operations.
var (
	ErrInvalidEmail = errors.New("invalid email address")
	ErrNameRequired = errors.New("user name is required")
	ErrNotFound     = errors.New("user not found")
)

// DefaultExpiryAlertDays is how far ahead pantry expiry alerts look when
// the user has not chosen a window.
const DefaultExpiryAlertDays = 3

// New creates an active user account.
func New(email, name string) (*User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if !strings.Contains(email, "@") {
		return nil, ErrInvalidEmail
	}
	if strings.TrimSpace(name) == "" {
		return nil, ErrNameRequired
	}

	now := time.Now()
	return &User{
		id:       uuid.New(),
		email:    email,
		name:     name,
		isActive: true,
		preferences: Preferences{
			ExpiryAlertDays: DefaultExpiryAlertDays,
		},
		createdAt: now,
		updatedAt: now,
	}, nil
}

// Restore rebuilds a User from persisted state.
func Restore(id uuid.UUID, email, name string, isActive bool, prefs Preferences, createdAt, updatedAt time.Time) *User {
	if prefs.ExpiryAlertDays <= 0 {
		prefs.ExpiryAlertDays = DefaultExpiryAlertDays
	}
	return &User{
		id:          id,
		email:       email,
		name:        name,
		isActive:    isActive,
		preferences: prefs,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

// ID returns the user identifier.
func (u *User) ID() uuid.UUID { return u.id }

// Email returns the account email.
func (u *User) Email() string { return u.email }

// Name returns the display name.
func (u *User) Name() string { return u.name }

// IsActive reports whether the account is active.
func (u *User) IsActive() bool { return u.isActive }

// Preferences returns the stored dietary preferences.
func (u *User) Preferences() Preferences { return u.preferences }

// CreatedAt returns when the account was created.
func (u *User) CreatedAt() time.Time { return u.createdAt }

// UpdatedAt returns when the account last changed.
func (u *User) UpdatedAt() time.Time { return u.updatedAt }

// DietaryProfile shapes preferences for the safety checker.
func (u *User) DietaryProfile() dietary.Profile {
	return dietary.Profile{
		Restrictions: u.preferences.DietaryRestrictions,
		Allergies:    u.preferences.Allergies,
	}
}

// AddRestriction records a dietary restriction. Duplicates are ignored.
func (u *User) AddRestriction(r dietary.Restriction) {
	for _, have := range u.preferences.DietaryRestrictions {
		if have == r {
			return
		}
	}
	u.preferences.DietaryRestrictions = append(u.preferences.DietaryRestrictions, r)
	u.touch()
}

// RemoveRestriction drops a dietary restriction if present.
func (u *User) RemoveRestriction(r dietary.Restriction) {
	for idx, have := range u.preferences.DietaryRestrictions {
		if have == r {
			u.preferences.DietaryRestrictions = append(
				u.preferences.DietaryRestrictions[:idx],
				u.preferences.DietaryRestrictions[idx+1:]...)
			u.touch()
			return
		}
	}
}

// AddAllergy records an allergy. Duplicates are ignored.
func (u *User) AddAllergy(a dietary.Allergen) {
	for _, have := range u.preferences.Allergies {
		if have == a {
			return
		}
	}
	u.preferences.Allergies = append(u.preferences.Allergies, a)
	u.touch()
}

// RemoveAllergy drops an allergy if present.
func (u *User) RemoveAllergy(a dietary.Allergen) {
	for idx, have := range u.preferences.Allergies {
		if have == a {
			u.preferences.Allergies = append(
				u.preferences.Allergies[:idx],
				u.preferences.Allergies[idx+1:]...)
			u.touch()
			return
		}
	}
}

// SetDislikedIngredients replaces the disliked-ingredient list, dropping
// blanks.
func (u *User) SetDislikedIngredients(names []string) {
	cleaned := make([]string, 0, len(names))
	for _, n := range names {
		if n = strings.TrimSpace(n); n != "" {
			cleaned = append(cleaned, n)
		}
	}
	u.preferences.DislikedIngredients = cleaned
	u.touch()
}

// SetExpiryAlertDays sets the pantry expiry lookahead window.
func (u *User) SetExpiryAlertDays(days int) {
	if days <= 0 {
		days = DefaultExpiryAlertDays
	}
	u.preferences.ExpiryAlertDays = days
	u.touch()
}

// Deactivate disables the account.
func (u *User) Deactivate() {
	u.isActive = false
	u.touch()
}

func (u *User) touch() {
	u.updatedAt = time.Now()
}
