// Package testutils provides test data factories for consistent test data generation
package testutils

import (
	"fmt"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"

	"github.com/pantrysage/v2/internal/domain/pantry"
	"github.com/pantrysage/v2/internal/domain/recipe"
	"github.com/pantrysage/v2/internal/domain/user"
)

// Factory generates deterministic domain fixtures from a seed.
type Factory struct {
	faker *gofakeit.Faker
}

// NewFactory creates a factory with a seeded faker so test data stays
// reproducible across runs.
func NewFactory(seed int64) *Factory {
	return &Factory{faker: gofakeit.New(seed)}
}

// User creates an active account with a unique email.
func (f *Factory) User() *user.User {
	email := fmt.Sprintf("%s.%d@example.com", f.faker.Username(), f.faker.Number(1000, 9999))
	u, err := user.New(email, f.faker.Name())
	if err != nil {
		panic(fmt.Sprintf("factory user: %v", err))
	}
	return u
}

// Recipe creates a recipe with the given owner and ingredient names.
// Each name becomes one ingredient line with a small random amount.
func (f *Factory) Recipe(ownerID uuid.UUID, title string, ingredientNames ...string) *recipe.Recipe {
	r, err := recipe.New(title, f.faker.Sentence(6), ownerID)
	if err != nil {
		panic(fmt.Sprintf("factory recipe: %v", err))
	}
	for _, name := range ingredientNames {
		ing := recipe.Ingredient{
			Item:   name,
			Amount: fmt.Sprintf("%d", f.faker.Number(1, 4)),
			Unit:   f.faker.RandomString([]string{"cup", "tbsp", "item", "lb"}),
		}
		if err := r.AddIngredient(ing); err != nil {
			panic(fmt.Sprintf("factory ingredient: %v", err))
		}
	}
	if err := r.AddInstruction("Combine everything and cook."); err != nil {
		panic(fmt.Sprintf("factory instruction: %v", err))
	}
	return r
}

// PantryItem creates an active manually added inventory item.
func (f *Factory) PantryItem(ownerID uuid.UUID, name string) *pantry.Item {
	item, err := pantry.NewItem(ownerID, name, "1", "item", "", pantry.SourceManual)
	if err != nil {
		panic(fmt.Sprintf("factory pantry item: %v", err))
	}
	return item
}

// ExpiringItem creates an item that expires within the given days.
func (f *Factory) ExpiringItem(ownerID uuid.UUID, name string, days int) *pantry.Item {
	item := f.PantryItem(ownerID, name)
	expiry := time.Now().UTC().AddDate(0, 0, days)
	item.SetExpiry(&expiry)
	return item
}
