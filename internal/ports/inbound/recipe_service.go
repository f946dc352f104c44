// Package inbound defines the interfaces for inbound ports (primary/driving adapters)
// These are the interfaces that the application exposes to the outside world
package inbound

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/pantrysage/v2/internal/domain/recipe"
)

// RecipeService defines the use cases for recipe management.
type RecipeService interface {
	CreateRecipe(ctx context.Context, cmd CreateRecipeCommand) (*RecipeDTO, error)
	UpdateRecipe(ctx context.Context, cmd UpdateRecipeCommand) (*RecipeDTO, error)
	DeleteRecipe(ctx context.Context, recipeID, ownerID uuid.UUID) error

	GetRecipe(ctx context.Context, recipeID uuid.UUID) (*RecipeDTO, error)
	ListRecipes(ctx context.Context, ownerID uuid.UUID, params PaginationParams) (*RecipeList, error)
	SearchRecipes(ctx context.Context, ownerID uuid.UUID, query string, params PaginationParams) (*RecipeList, error)
	ExportCSV(ctx context.Context, ownerID uuid.UUID) ([]byte, error)
	ImportFromURL(ctx context.Context, cmd ImportURLCommand) (*RecipeDTO, error)
	ImportCSV(ctx context.Context, ownerID uuid.UUID, data []byte) (*ImportResult, error)
}

// ImportURLCommand asks for a recipe to be scraped from a web page.
type ImportURLCommand struct {
	OwnerID uuid.UUID
	URL     string `validate:"required,url"`
}

// ImportResult reports the outcome of a bulk recipe import.
type ImportResult struct {
	Count   int         `json:"count"`
	Recipes []RecipeDTO `json:"recipes"`
}

// CreateRecipeCommand contains data for creating a new recipe.
type CreateRecipeCommand struct {
	OwnerID      uuid.UUID
	Title        string `validate:"required,max=200"`
	Description  string
	Ingredients  []IngredientInput `validate:"dive"`
	Instructions []string
	MealType     string
	Cuisine      string
	Nutrition    string
	ImageURL     string `validate:"omitempty,url"`
	SourceURL    string `validate:"omitempty,url"`
	PrepMinutes  int    `validate:"gte=0"`
	CookMinutes  int    `validate:"gte=0"`
	Servings     int    `validate:"gte=0"`
	Tags         []string
}

// UpdateRecipeCommand contains data for updating a recipe. Nil fields
// are left untouched.
type UpdateRecipeCommand struct {
	RecipeID     uuid.UUID
	OwnerID      uuid.UUID
	Title        *string
	Description  *string
	Ingredients  *[]IngredientInput
	Instructions *[]string
	MealType     *string
	Cuisine      *string
	Nutrition    *string
	ImageURL     *string
	SourceURL    *string
	PrepMinutes  *int
	CookMinutes  *int
	Servings     *int
	Tags         *[]string
}

// IngredientInput is one ingredient line as submitted.
type IngredientInput struct {
	Item   string `json:"item" validate:"required"`
	Amount string `json:"amount"`
	Unit   string `json:"unit"`
	Notes  string `json:"notes"`
}

// RecipeDTO is the outward representation of a recipe.
type RecipeDTO struct {
	ID           uuid.UUID           `json:"id"`
	Title        string              `json:"title"`
	Description  string              `json:"description"`
	OwnerID      uuid.UUID           `json:"ownerId"`
	Ingredients  []recipe.Ingredient `json:"ingredients"`
	Instructions []string            `json:"instructions"`
	MealType     string              `json:"mealType,omitempty"`
	Cuisine      string              `json:"cuisine,omitempty"`
	Nutrition    string              `json:"nutrition,omitempty"`
	ImageURL     string              `json:"imageUrl,omitempty"`
	SourceURL    string              `json:"sourceUrl,omitempty"`
	PrepMinutes  int                 `json:"prepMinutes"`
	CookMinutes  int                 `json:"cookMinutes"`
	Servings     int                 `json:"servings"`
	Tags         []string            `json:"tags,omitempty"`
	CreatedAt    time.Time           `json:"createdAt"`
	UpdatedAt    time.Time           `json:"updatedAt"`
}

// RecipeList is a paginated recipe result.
type RecipeList struct {
	Recipes []RecipeDTO `json:"recipes"`
	Total   int         `json:"total"`
	Offset  int         `json:"offset"`
	Limit   int         `json:"limit"`
}

// PaginationParams bounds list queries.
type PaginationParams struct {
	Offset int `validate:"gte=0"`
	Limit  int `validate:"gte=0,lte=100"`
}

// Normalize applies defaults to pagination parameters.
func (p *PaginationParams) Normalize() {
	if p.Limit <= 0 {
		p.Limit = 20
	}
	if p.Limit > 100 {
		p.Limit = 100
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
}
