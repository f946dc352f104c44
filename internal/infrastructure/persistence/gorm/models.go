// Package gorm provides GORM-based repository implementations
package gorm

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/pantrysage/v2/internal/domain/recipe"
	"github.com/pantrysage/v2/internal/domain/shopping"
	"github.com/pantrysage/v2/internal/domain/suggestion"
)

// UserModel represents the GORM model for user accounts
type UserModel struct {
	ID       uuid.UUID `gorm:"type:char(36);primaryKey"`
	Email    string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	Name     string    `gorm:"type:varchar(255);not null"`
	IsActive bool      `gorm:"default:true"`

	// Dietary preferences
	DietaryRestrictions StringSlice `gorm:"type:json"`
	Allergies           StringSlice `gorm:"type:json"`
	DislikedIngredients StringSlice `gorm:"type:json"`
	ExpiryAlertDays     int         `gorm:"default:3"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// RecipeModel represents the GORM model for recipes
type RecipeModel struct {
	ID          uuid.UUID `gorm:"type:char(36);primaryKey"`
	Version     int64     `gorm:"default:1"`
	Title       string    `gorm:"type:varchar(255);not null;index"`
	Description string    `gorm:"type:text"`
	OwnerID     uuid.UUID `gorm:"type:char(36);not null;index"`

	Ingredients  IngredientRows `gorm:"type:json"`
	Instructions StringSlice    `gorm:"type:json"`
	Tags         StringSlice    `gorm:"type:json"`

	MealType string `gorm:"type:varchar(20);index"`
	Cuisine  string `gorm:"type:varchar(100)"`

	Nutrition string `gorm:"type:text"`
	ImageURL  string `gorm:"column:image_url;type:varchar(500)"`
	SourceURL string `gorm:"column:source_url;type:varchar(500)"`

	PrepTimeMinutes int `gorm:"column:prep_time_minutes;default:0"`
	CookTimeMinutes int `gorm:"column:cook_time_minutes;default:0"`
	Servings        int `gorm:"default:1"`

	// Soft deletion is a domain concern: deleted recipes stay readable
	// by ID so meal plan history and provenance keep resolving.
	Status    string     `gorm:"type:varchar(20);default:'active';index"`
	DeletedAt *time.Time `gorm:"index"`

	CreatedAt time.Time `gorm:"index"`
	UpdatedAt time.Time
}

// PantryItemModel represents the GORM model for inventory items
type PantryItemModel struct {
	ID      uuid.UUID `gorm:"type:char(36);primaryKey"`
	OwnerID uuid.UUID `gorm:"type:char(36);not null;index"`

	Name     string `gorm:"type:varchar(255);not null"`
	Amount   string `gorm:"type:varchar(50)"`
	Unit     string `gorm:"type:varchar(50)"`
	Category string `gorm:"type:varchar(50);index"`

	UPC        string     `gorm:"type:varchar(50);index"`
	Price      string     `gorm:"type:varchar(20)"`
	ExpiryDate *time.Time `gorm:"index"`

	Source     string     `gorm:"type:varchar(20);default:'manual'"`
	Status     string     `gorm:"type:varchar(20);default:'active';index"`
	ResolvedAt *time.Time

	CreatedAt time.Time `gorm:"index"`
	UpdatedAt time.Time
}

// MealPlanEntryModel represents the GORM model for meal plan entries
type MealPlanEntryModel struct {
	ID       uuid.UUID `gorm:"type:char(36);primaryKey"`
	OwnerID  uuid.UUID `gorm:"type:char(36);not null;index:idx_meal_plan_owner_date"`
	RecipeID uuid.UUID `gorm:"type:char(36);not null;index"`

	// Stored as midnight UTC of the planned calendar day.
	Date     time.Time `gorm:"not null;index:idx_meal_plan_owner_date"`
	MealType string    `gorm:"type:varchar(20)"`
	Servings int       `gorm:"default:1"`
	Notes    string    `gorm:"type:text"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// ShoppingListModel represents the GORM model for shopping lists
type ShoppingListModel struct {
	ID      uuid.UUID `gorm:"type:char(36);primaryKey"`
	OwnerID uuid.UUID `gorm:"type:char(36);not null;index"`
	Name    string    `gorm:"type:varchar(255);not null"`

	Items ListItemRows `gorm:"type:json"`

	CreatedAt time.Time `gorm:"index"`
	UpdatedAt time.Time
}

// StringSlice custom type for handling string array JSON columns
type StringSlice []string

// Scan implements the sql.Scanner interface
func (s *StringSlice) Scan(value interface{}) error {
	if value == nil {
		*s = StringSlice{}
		return nil
	}

	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, s)
	case string:
		return json.Unmarshal([]byte(v), s)
	default:
		return fmt.Errorf("cannot scan %T into StringSlice", value)
	}
}

// Value implements the driver.Valuer interface
func (s StringSlice) Value() (driver.Value, error) {
	if len(s) == 0 {
		return "[]", nil
	}
	return json.Marshal(s)
}

// IngredientRows custom type for the recipe ingredients JSON column
type IngredientRows []recipe.Ingredient

// Scan implements the sql.Scanner interface
func (r *IngredientRows) Scan(value interface{}) error {
	if value == nil {
		*r = IngredientRows{}
		return nil
	}

	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, r)
	case string:
		return json.Unmarshal([]byte(v), r)
	default:
		return fmt.Errorf("cannot scan %T into IngredientRows", value)
	}
}

// Value implements the driver.Valuer interface
func (r IngredientRows) Value() (driver.Value, error) {
	if len(r) == 0 {
		return "[]", nil
	}
	return json.Marshal(r)
}

// ListItemRows custom type for the shopping list items JSON column
type ListItemRows []shopping.ListItem

// Scan implements the sql.Scanner interface
func (r *ListItemRows) Scan(value interface{}) error {
	if value == nil {
		*r = ListItemRows{}
		return nil
	}

	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, r)
	case string:
		return json.Unmarshal([]byte(v), r)
	default:
		return fmt.Errorf("cannot scan %T into ListItemRows", value)
	}
}

// Value implements the driver.Valuer interface
func (r ListItemRows) Value() (driver.Value, error) {
	if len(r) == 0 {
		return "[]", nil
	}
	return json.Marshal(r)
}

// SuggestionRows custom type for the generation log JSON column
type SuggestionRows []suggestion.Suggestion

// Scan implements the sql.Scanner interface
func (r *SuggestionRows) Scan(value interface{}) error {
	if value == nil {
		*r = SuggestionRows{}
		return nil
	}

	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, r)
	case string:
		return json.Unmarshal([]byte(v), r)
	default:
		return fmt.Errorf("cannot scan %T into SuggestionRows", value)
	}
}

// Value implements the driver.Valuer interface
func (r SuggestionRows) Value() (driver.Value, error) {
	if len(r) == 0 {
		return "[]", nil
	}
	return json.Marshal(r)
}

// SuggestionLogModel represents the GORM model for the generation log
type SuggestionLogModel struct {
	ID          uuid.UUID      `gorm:"type:char(36);primaryKey"`
	OwnerID     uuid.UUID      `gorm:"type:char(36);not null;index"`
	Suggestions SuggestionRows `gorm:"type:json"`
	GeneratedAt time.Time      `gorm:"index"`
}

// TableName methods for custom table names
func (UserModel) TableName() string {
	return "users"
}

func (RecipeModel) TableName() string {
	return "recipes"
}

func (PantryItemModel) TableName() string {
	return "pantry_items"
}

func (MealPlanEntryModel) TableName() string {
	return "meal_plan_entries"
}

func (ShoppingListModel) TableName() string {
	return "shopping_lists"
}

func (SuggestionLogModel) TableName() string {
	return "suggestion_log"
}
