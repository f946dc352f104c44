package gorm

import (
	"github.com/pantrysage/v2/internal/domain/dietary"
	"github.com/pantrysage/v2/internal/domain/grocery"
	"github.com/pantrysage/v2/internal/domain/mealplan"
	"github.com/pantrysage/v2/internal/domain/pantry"
	"github.com/pantrysage/v2/internal/domain/recipe"
	"github.com/pantrysage/v2/internal/domain/shopping"
	"github.com/pantrysage/v2/internal/domain/suggestion"
	"github.com/pantrysage/v2/internal/domain/user"
)

// UserToModel converts a domain user to its GORM model
func UserToModel(u *user.User) *UserModel {
	prefs := u.Preferences()
	return &UserModel{
		ID:                  u.ID(),
		Email:               u.Email(),
		Name:                u.Name(),
		IsActive:            u.IsActive(),
		DietaryRestrictions: restrictionsToStrings(prefs.DietaryRestrictions),
		Allergies:           allergensToStrings(prefs.Allergies),
		DislikedIngredients: StringSlice(prefs.DislikedIngredients),
		ExpiryAlertDays:     prefs.ExpiryAlertDays,
		CreatedAt:           u.CreatedAt(),
		UpdatedAt:           u.UpdatedAt(),
	}
}

// ModelToUser converts a GORM model back to a domain user
func ModelToUser(m *UserModel) *user.User {
	prefs := user.Preferences{
		DietaryRestrictions: stringsToRestrictions(m.DietaryRestrictions),
		Allergies:           stringsToAllergens(m.Allergies),
		DislikedIngredients: []string(m.DislikedIngredients),
		ExpiryAlertDays:     m.ExpiryAlertDays,
	}
	return user.Restore(m.ID, m.Email, m.Name, m.IsActive, prefs, m.CreatedAt, m.UpdatedAt)
}

// RecipeToModel converts a domain recipe to its GORM model
func RecipeToModel(r *recipe.Recipe) *RecipeModel {
	return &RecipeModel{
		ID:              r.ID(),
		Version:         r.Version(),
		Title:           r.Title(),
		Description:     r.Description(),
		OwnerID:         r.OwnerID(),
		Ingredients:     IngredientRows(r.Ingredients()),
		Instructions:    StringSlice(r.Instructions()),
		Tags:            StringSlice(r.Tags()),
		MealType:        string(r.MealType()),
		Cuisine:         r.Cuisine(),
		Nutrition:       r.Nutrition(),
		ImageURL:        r.ImageURL(),
		SourceURL:       r.SourceURL(),
		PrepTimeMinutes: r.PrepMinutes(),
		CookTimeMinutes: r.CookMinutes(),
		Servings:        r.Servings(),
		Status:          string(r.Status()),
		DeletedAt:       r.DeletedAt(),
		CreatedAt:       r.CreatedAt(),
		UpdatedAt:       r.UpdatedAt(),
	}
}

// ModelToRecipe converts a GORM model back to a domain recipe
func ModelToRecipe(m *RecipeModel) *recipe.Recipe {
	return recipe.Restore(
		m.ID,
		m.Version,
		m.Title, m.Description,
		m.OwnerID,
		[]recipe.Ingredient(m.Ingredients),
		[]string(m.Instructions),
		recipe.MealType(m.MealType),
		m.Cuisine,
		m.PrepTimeMinutes, m.CookTimeMinutes, m.Servings,
		[]string(m.Tags),
		m.Nutrition, m.ImageURL, m.SourceURL,
		recipe.Status(m.Status),
		m.CreatedAt, m.UpdatedAt,
		m.DeletedAt,
	)
}

// PantryItemToModel converts a domain inventory item to its GORM model
func PantryItemToModel(i *pantry.Item) *PantryItemModel {
	return &PantryItemModel{
		ID:         i.ID(),
		OwnerID:    i.OwnerID(),
		Name:       i.Name(),
		Amount:     i.Amount(),
		Unit:       i.Unit(),
		Category:   string(i.Category()),
		UPC:        i.UPC(),
		Price:      i.Price(),
		ExpiryDate: i.ExpiryDate(),
		Source:     string(i.Source()),
		Status:     string(i.Status()),
		ResolvedAt: i.ResolvedAt(),
		CreatedAt:  i.CreatedAt(),
		UpdatedAt:  i.UpdatedAt(),
	}
}

// ModelToPantryItem converts a GORM model back to a domain inventory item
func ModelToPantryItem(m *PantryItemModel) *pantry.Item {
	return pantry.RestoreItem(
		m.ID, m.OwnerID,
		m.Name, m.Amount, m.Unit,
		grocery.Category(m.Category),
		m.UPC, m.Price,
		m.ExpiryDate,
		pantry.Source(m.Source),
		pantry.Status(m.Status),
		m.ResolvedAt,
		m.CreatedAt, m.UpdatedAt,
	)
}

// MealPlanEntryToModel converts a domain meal plan entry to its GORM model
func MealPlanEntryToModel(e *mealplan.Entry) *MealPlanEntryModel {
	return &MealPlanEntryModel{
		ID:        e.ID(),
		OwnerID:   e.OwnerID(),
		RecipeID:  e.RecipeID(),
		Date:      e.Date(),
		MealType:  string(e.MealType()),
		Servings:  e.Servings(),
		Notes:     e.Notes(),
		CreatedAt: e.CreatedAt(),
		UpdatedAt: e.UpdatedAt(),
	}
}

// ModelToMealPlanEntry converts a GORM model back to a domain meal plan entry
func ModelToMealPlanEntry(m *MealPlanEntryModel) *mealplan.Entry {
	return mealplan.RestoreEntry(
		m.ID, m.OwnerID, m.RecipeID,
		m.Date,
		recipe.MealType(m.MealType),
		m.Servings,
		m.Notes,
		m.CreatedAt, m.UpdatedAt,
	)
}

// ShoppingListToModel converts a domain shopping list to its GORM model
func ShoppingListToModel(l *shopping.List) *ShoppingListModel {
	return &ShoppingListModel{
		ID:        l.ID(),
		OwnerID:   l.OwnerID(),
		Name:      l.Name(),
		Items:     ListItemRows(l.Items()),
		CreatedAt: l.CreatedAt(),
		UpdatedAt: l.UpdatedAt(),
	}
}

// ModelToShoppingList converts a GORM model back to a domain shopping list
func ModelToShoppingList(m *ShoppingListModel) *shopping.List {
	return shopping.RestoreList(m.ID, m.OwnerID, m.Name, []shopping.ListItem(m.Items), m.CreatedAt, m.UpdatedAt)
}

func restrictionsToStrings(in []dietary.Restriction) StringSlice {
	out := make(StringSlice, 0, len(in))
	for _, r := range in {
		out = append(out, string(r))
	}
	return out
}

func stringsToRestrictions(in StringSlice) []dietary.Restriction {
	out := make([]dietary.Restriction, 0, len(in))
	for _, s := range in {
		out = append(out, dietary.Restriction(s))
	}
	return out
}

func allergensToStrings(in []dietary.Allergen) StringSlice {
	out := make(StringSlice, 0, len(in))
	for _, a := range in {
		out = append(out, string(a))
	}
	return out
}

func stringsToAllergens(in StringSlice) []dietary.Allergen {
	out := make([]dietary.Allergen, 0, len(in))
	for _, s := range in {
		out = append(out, dietary.Allergen(s))
	}
	return out
}

// SuggestionLogToModel converts a generation log entry to its GORM model
func SuggestionLogToModel(entry suggestion.LogEntry) *SuggestionLogModel {
	return &SuggestionLogModel{
		ID:          entry.ID,
		OwnerID:     entry.OwnerID,
		Suggestions: SuggestionRows(entry.Suggestions),
		GeneratedAt: entry.GeneratedAt,
	}
}

// ModelToSuggestionLog converts a GORM model back to a log entry
func ModelToSuggestionLog(m *SuggestionLogModel) suggestion.LogEntry {
	return suggestion.LogEntry{
		ID:          m.ID,
		OwnerID:     m.OwnerID,
		Suggestions: []suggestion.Suggestion(m.Suggestions),
		GeneratedAt: m.GeneratedAt,
	}
}
