// Package outbound defines the interfaces for outbound ports (secondary/driven adapters)
// These are the interfaces that the application uses to interact with external systems
package outbound

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/pantrysage/v2/internal/domain/mealplan"
	"github.com/pantrysage/v2/internal/domain/pantry"
	"github.com/pantrysage/v2/internal/domain/recipe"
	"github.com/pantrysage/v2/internal/domain/shopping"
	"github.com/pantrysage/v2/internal/domain/suggestion"
	"github.com/pantrysage/v2/internal/domain/user"
)

// RecipeRepository defines the interface for recipe persistence.
// FindByID returns soft-deleted recipes too; list queries exclude them.
type RecipeRepository interface {
	Create(ctx context.Context, rec *recipe.Recipe) error
	Update(ctx context.Context, rec *recipe.Recipe) error
	FindByID(ctx context.Context, id uuid.UUID) (*recipe.Recipe, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*recipe.Recipe, error)
	FindByOwner(ctx context.Context, ownerID uuid.UUID, offset, limit int) ([]*recipe.Recipe, int, error)
	SearchByTitle(ctx context.Context, ownerID uuid.UUID, query string, offset, limit int) ([]*recipe.Recipe, int, error)
}

// PantryRepository defines the interface for inventory persistence.
type PantryRepository interface {
	Create(ctx context.Context, item *pantry.Item) error
	CreateBatch(ctx context.Context, items []*pantry.Item) error
	Update(ctx context.Context, item *pantry.Item) error
	FindByID(ctx context.Context, id uuid.UUID) (*pantry.Item, error)
	FindActiveByOwner(ctx context.Context, ownerID uuid.UUID) ([]*pantry.Item, error)
	FindByOwnerAndStatus(ctx context.Context, ownerID uuid.UUID, status pantry.Status) ([]*pantry.Item, error)
}

// MealPlanRepository defines the interface for meal plan persistence.
type MealPlanRepository interface {
	Create(ctx context.Context, entry *mealplan.Entry) error
	Update(ctx context.Context, entry *mealplan.Entry) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*mealplan.Entry, error)
	FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*mealplan.Entry, error)
	FindByOwnerInRange(ctx context.Context, ownerID uuid.UUID, from, to time.Time) ([]*mealplan.Entry, error)
}

// ShoppingListRepository defines the interface for shopping list persistence.
type ShoppingListRepository interface {
	Create(ctx context.Context, list *shopping.List) error
	Update(ctx context.Context, list *shopping.List) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*shopping.List, error)
	FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*shopping.List, error)
}

// UserRepository defines the interface for user persistence.
type UserRepository interface {
	Create(ctx context.Context, u *user.User) error
	Update(ctx context.Context, u *user.User) error
	FindByID(ctx context.Context, id uuid.UUID) (*user.User, error)
	FindByEmail(ctx context.Context, email string) (*user.User, error)
}

// SuggestionLogRepository defines the interface for the generation log.
type SuggestionLogRepository interface {
	Save(ctx context.Context, entry suggestion.LogEntry) error
	FindRecentByOwner(ctx context.Context, ownerID uuid.UUID, limit int) ([]suggestion.LogEntry, error)
}

// CacheRepository defines the interface for caching operations.
type CacheRepository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}

// SuggestionService is the external generation collaborator. It produces
// inventory-scored recipe candidates; ranking them is local work.
type SuggestionService interface {
	GenerateSuggestions(ctx context.Context, req SuggestionRequest) ([]suggestion.Suggestion, error)
}

// SuggestionRequest carries everything the generator needs.
type SuggestionRequest struct {
	InventoryNames      []string
	DietaryRestrictions []string
	Allergies           []string
	DislikedIngredients []string
	MaxSuggestions      int
}

// ReceiptOCRService extracts purchased line items from a receipt image.
type ReceiptOCRService interface {
	ExtractItems(ctx context.Context, image []byte, contentType string) ([]ReceiptLine, error)
}

// ReceiptLine is one parsed receipt row.
type ReceiptLine struct {
	Name     string
	Quantity string
	Unit     string
	Price    string
}

// BarcodeLookupService resolves a UPC to product details.
type BarcodeLookupService interface {
	Lookup(ctx context.Context, upc string) (*BarcodeProduct, error)
}

// BarcodeProduct is the resolved product for a scanned UPC.
type BarcodeProduct struct {
	UPC      string
	Name     string
	Brand    string
	Quantity string
	Unit     string
}

// RecipeScraper fetches a recipe page and extracts structured data
// from it. Implementations prefer schema.org markup and fall back to
// HTML heuristics.
type RecipeScraper interface {
	Scrape(ctx context.Context, url string) (*ScrapedRecipe, error)
}

// ScrapedRecipe is a recipe as extracted from a web page. Fields the
// page did not carry are zero.
type ScrapedRecipe struct {
	Title        string
	Description  string
	Ingredients  []recipe.Ingredient
	Instructions []string
	PrepMinutes  int
	CookMinutes  int
	Servings     int
	Cuisine      string
	Tags         []string
	ImageURL     string
}
