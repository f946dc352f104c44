// Package recipe contains the core domain logic for recipe management.
// This follows Domain-Driven Design principles with rich domain models.
package recipe

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/pantrysage/v2/internal/domain/shared"
)

// Recipe is the aggregate root for a stored recipe.
// Ingredient amounts and units are free text on purpose: recipes arrive
// from manual entry and imports, and "1 1/2" or "a splash" must survive
// round trips unchanged.
type Recipe struct {
	id          uuid.UUID
	version     int64 // optimistic locking
	title       string
	description string
	ownerID     uuid.UUID

	ingredients  []Ingredient
	instructions []string

	mealType    MealType
	cuisine     string
	prepMinutes int
	cookMinutes int
	servings    int
	tags        []string

	nutrition string
	imageURL  string
	sourceURL string

	status    Status
	createdAt time.Time
	updatedAt time.Time
	deletedAt *time.Time

	events []shared.DomainEvent
}

// New creates a Recipe with validation.
func New(title, description string, ownerID uuid.UUID) (*Recipe, error) {
	if err := validateTitle(title); err != nil {
		return nil, err
	}

	now := time.Now()
	r := &Recipe{
		id:          uuid.New(),
		version:     1,
		title:       title,
		description: description,
		ownerID:     ownerID,
		status:      StatusActive,
		createdAt:   now,
		updatedAt:   now,
	}

	r.addEvent(CreatedEvent{
		RecipeID:  r.id,
		OwnerID:   ownerID,
		Title:     title,
		CreatedAt: now,
	})

	return r, nil
}

// Restore rebuilds a Recipe from persisted state without raising events.
func Restore(
	id uuid.UUID,
	version int64,
	title, description string,
	ownerID uuid.UUID,
	ingredients []Ingredient,
	instructions []string,
	mealType MealType,
	cuisine string,
	prepMinutes, cookMinutes, servings int,
	tags []string,
	nutrition, imageURL, sourceURL string,
	status Status,
	createdAt, updatedAt time.Time,
	deletedAt *time.Time,
) *Recipe {
	return &Recipe{
		id:           id,
		version:      version,
		title:        title,
		description:  description,
		ownerID:      ownerID,
		ingredients:  ingredients,
		instructions: instructions,
		mealType:     mealType,
		cuisine:      cuisine,
		prepMinutes:  prepMinutes,
		cookMinutes:  cookMinutes,
		servings:     servings,
		tags:         tags,
		nutrition:    nutrition,
		imageURL:     imageURL,
		sourceURL:    sourceURL,
		status:       status,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
		deletedAt:    deletedAt,
	}
}

// ID returns the recipe's unique identifier.
func (r *Recipe) ID() uuid.UUID {
	return r.id
}

// Version returns the recipe's version.
func (r *Recipe) Version() int64 {
	return r.version
}

// Title returns the recipe's title.
func (r *Recipe) Title() string {
	return r.title
}

// Description returns the recipe's description.
func (r *Recipe) Description() string {
	return r.description
}

// OwnerID returns the recipe's owner.
func (r *Recipe) OwnerID() uuid.UUID {
	return r.ownerID
}

// Ingredients returns the recipe's ingredient lines.
func (r *Recipe) Ingredients() []Ingredient {
	return r.ingredients
}

// IngredientNames returns just the item names, in recipe order.
// Safety checks and pantry matching work on names only.
func (r *Recipe) IngredientNames() []string {
	names := make([]string, 0, len(r.ingredients))
	for _, ing := range r.ingredients {
		names = append(names, ing.Item)
	}
	return names
}

// Instructions returns the recipe's instruction steps.
func (r *Recipe) Instructions() []string {
	return r.instructions
}

// MealType returns the meal slot this recipe targets.
func (r *Recipe) MealType() MealType {
	return r.mealType
}

// Cuisine returns the recipe's cuisine label.
func (r *Recipe) Cuisine() string {
	return r.cuisine
}

// Nutrition returns the free-text nutrition notes.
func (r *Recipe) Nutrition() string {
	return r.nutrition
}

// ImageURL returns the recipe image location, if any.
func (r *Recipe) ImageURL() string {
	return r.imageURL
}

// SourceURL returns where the recipe was imported from, if anywhere.
func (r *Recipe) SourceURL() string {
	return r.sourceURL
}

// PrepMinutes returns the preparation time in minutes.
func (r *Recipe) PrepMinutes() int {
	return r.prepMinutes
}

// CookMinutes returns the cooking time in minutes.
func (r *Recipe) CookMinutes() int {
	return r.cookMinutes
}

// Servings returns the number of servings.
func (r *Recipe) Servings() int {
	return r.servings
}

// Tags returns the recipe's tags.
func (r *Recipe) Tags() []string {
	return r.tags
}

// Status returns the recipe status.
func (r *Recipe) Status() Status {
	return r.status
}

// IsDeleted reports whether the recipe was soft deleted. Deleted recipes
// stay addressable by ID but never contribute to aggregation.
func (r *Recipe) IsDeleted() bool {
	return r.status == StatusDeleted
}

// CreatedAt returns when the recipe was created.
func (r *Recipe) CreatedAt() time.Time {
	return r.createdAt
}

// UpdatedAt returns when the recipe was last updated.
func (r *Recipe) UpdatedAt() time.Time {
	return r.updatedAt
}

// DeletedAt returns when the recipe was deleted.
func (r *Recipe) DeletedAt() *time.Time {
	return r.deletedAt
}

// UpdateTitle updates the recipe title with validation.
func (r *Recipe) UpdateTitle(title string) error {
	if err := validateTitle(title); err != nil {
		return err
	}

	r.title = title
	r.touch()
	return nil
}

// UpdateDescription replaces the recipe description.
func (r *Recipe) UpdateDescription(description string) {
	r.description = description
	r.touch()
}

// SetCuisine replaces the cuisine label. Free text, imports carry
// whatever the source called it.
func (r *Recipe) SetCuisine(cuisine string) {
	r.cuisine = strings.TrimSpace(cuisine)
	r.touch()
}

// SetNutrition replaces the nutrition notes.
func (r *Recipe) SetNutrition(nutrition string) {
	r.nutrition = nutrition
	r.touch()
}

// SetSourceLinks replaces the image and source URLs.
func (r *Recipe) SetSourceLinks(imageURL, sourceURL string) {
	r.imageURL = strings.TrimSpace(imageURL)
	r.sourceURL = strings.TrimSpace(sourceURL)
	r.touch()
}

// SetMealType assigns the recipe to a meal slot.
func (r *Recipe) SetMealType(mt MealType) error {
	if !mt.IsValid() {
		return ErrInvalidMealType
	}
	r.mealType = mt
	r.touch()
	return nil
}

// SetTiming sets prep and cook time in minutes.
func (r *Recipe) SetTiming(prepMinutes, cookMinutes int) error {
	if prepMinutes < 0 || cookMinutes < 0 {
		return ErrNegativeTiming
	}
	r.prepMinutes = prepMinutes
	r.cookMinutes = cookMinutes
	r.touch()
	return nil
}

// SetServings sets the serving count.
func (r *Recipe) SetServings(servings int) error {
	if servings <= 0 {
		return ErrInvalidServings
	}
	r.servings = servings
	r.touch()
	return nil
}

// SetTags replaces the tag list, dropping blanks.
func (r *Recipe) SetTags(tags []string) {
	cleaned := make([]string, 0, len(tags))
	for _, t := range tags {
		if t = strings.TrimSpace(t); t != "" {
			cleaned = append(cleaned, t)
		}
	}
	r.tags = cleaned
	r.touch()
}

// AddIngredient appends an ingredient line.
func (r *Recipe) AddIngredient(ing Ingredient) error {
	if err := ing.Validate(); err != nil {
		return err
	}
	r.ingredients = append(r.ingredients, ing)
	r.touch()
	return nil
}

// ReplaceIngredients swaps the full ingredient list in one edit.
func (r *Recipe) ReplaceIngredients(ingredients []Ingredient) error {
	for _, ing := range ingredients {
		if err := ing.Validate(); err != nil {
			return err
		}
	}
	r.ingredients = ingredients
	r.touch()
	return nil
}

// AddInstruction appends an instruction step.
func (r *Recipe) AddInstruction(step string) error {
	if strings.TrimSpace(step) == "" {
		return ErrEmptyInstruction
	}
	r.instructions = append(r.instructions, step)
	r.touch()
	return nil
}

// ReplaceInstructions swaps the full instruction list.
func (r *Recipe) ReplaceInstructions(steps []string) error {
	for _, s := range steps {
		if strings.TrimSpace(s) == "" {
			return ErrEmptyInstruction
		}
	}
	r.instructions = steps
	r.touch()
	return nil
}

// Delete soft deletes the recipe.
func (r *Recipe) Delete() error {
	if r.status == StatusDeleted {
		return ErrAlreadyDeleted
	}

	now := time.Now()
	r.status = StatusDeleted
	r.deletedAt = &now
	r.updatedAt = now

	r.addEvent(DeletedEvent{
		RecipeID:  r.id,
		DeletedAt: now,
	})

	return nil
}

func (r *Recipe) touch() {
	r.version++
	r.updatedAt = time.Now()
}

// addEvent adds a domain event to be dispatched.
func (r *Recipe) addEvent(event shared.DomainEvent) {
	r.events = append(r.events, event)
}

// Events returns and clears pending domain events.
func (r *Recipe) Events() []shared.DomainEvent {
	events := r.events
	r.events = nil
	return events
}

// validateTitle validates recipe title.
func validateTitle(title string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return ErrTitleRequired
	}
	if len(title) > 200 {
		return ErrTitleTooLong
	}
	return nil
}
