package inbound

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/pantrysage/v2/internal/domain/grocery"
	"github.com/pantrysage/v2/internal/domain/shopping"
)

// ShoppingListService defines the use cases for shopping lists,
// including generation from planned meals.
type ShoppingListService interface {
	CreateList(ctx context.Context, ownerID uuid.UUID, name string) (*ShoppingListDTO, error)
	DeleteList(ctx context.Context, listID, ownerID uuid.UUID) error
	GetList(ctx context.Context, listID uuid.UUID) (*ShoppingListDTO, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]ShoppingListDTO, error)

	AddItem(ctx context.Context, cmd AddListItemCommand) (*ShoppingListDTO, error)
	SetItemChecked(ctx context.Context, listID, itemID, ownerID uuid.UUID, checked bool) error
	RemoveItem(ctx context.Context, listID, itemID, ownerID uuid.UUID) error
	ClearChecked(ctx context.Context, listID, ownerID uuid.UUID) (int, error)
	RecategorizeItem(ctx context.Context, listID, itemID, ownerID uuid.UUID, category string) error

	// GenerateFromMealPlans aggregates planned meals in the date range
	// into the list. The outcome distinguishes "no plans in range" from
	// "plans found but nothing new to add".
	GenerateFromMealPlans(ctx context.Context, cmd GenerateListCommand) (*GenerateResult, error)

	// AddMissingIngredients routes reconciler or suggestion output onto
	// a list, skipping lines the list already covers.
	AddMissingIngredients(ctx context.Context, cmd AddMissingCommand) (*GenerateResult, error)
}

// AddListItemCommand adds one manual line.
type AddListItemCommand struct {
	ListID   uuid.UUID
	OwnerID  uuid.UUID
	Item     string `validate:"required"`
	Amount   string
	Unit     string
	Category string
}

// GenerateListCommand aggregates meal plans in [From, To] into a list.
type GenerateListCommand struct {
	ListID  uuid.UUID
	OwnerID uuid.UUID
	From    time.Time `validate:"required"`
	To      time.Time `validate:"required"`
}

// AddMissingCommand adds missing-ingredient names to a list.
type AddMissingCommand struct {
	ListID  uuid.UUID
	OwnerID uuid.UUID
	Items   []IngredientInput `validate:"required,dive"`
}

// GenerateResult reports a generation pass.
type GenerateResult struct {
	Outcome    shopping.Outcome `json:"outcome"`
	AddedCount int              `json:"addedCount"`
	List       *ShoppingListDTO `json:"list"`
}

// ShoppingListDTO is the outward representation of a shopping list.
type ShoppingListDTO struct {
	ID        uuid.UUID           `json:"id"`
	OwnerID   uuid.UUID           `json:"ownerId"`
	Name      string              `json:"name"`
	Items     []shopping.ListItem `json:"items"`
	CreatedAt time.Time           `json:"createdAt"`
	UpdatedAt time.Time           `json:"updatedAt"`
}

// CategoryGroup is one store section of a list, for display.
type CategoryGroup struct {
	Category string              `json:"category"`
	Label    string              `json:"label"`
	Items    []shopping.ListItem `json:"items"`
}

// GroupedItems buckets the list's items by store section, sections in
// aisle display order and items in list order within each. Sections with
// no items are omitted. Every stored item carries a valid category, the
// list aggregate coerces or rejects anything else on write.
func (l *ShoppingListDTO) GroupedItems() []CategoryGroup {
	byCategory := make(map[grocery.Category][]shopping.ListItem)
	for _, item := range l.Items {
		byCategory[item.Category] = append(byCategory[item.Category], item)
	}

	groups := make([]CategoryGroup, 0, len(byCategory))
	for _, cat := range grocery.Categories() {
		items, ok := byCategory[cat]
		if !ok {
			continue
		}
		groups = append(groups, CategoryGroup{
			Category: string(cat),
			Label:    cat.DisplayName(),
			Items:    items,
		})
	}
	return groups
}
