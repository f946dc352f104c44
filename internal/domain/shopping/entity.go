// Package shopping models shopping lists and the aggregation engine that
// builds them from planned meals.
package shopping

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/pantrysage/v2/internal/domain/grocery"
	"github.com/pantrysage/v2/internal/domain/shared"
)

// ListItem is one line on a shopping list. Amount and unit stay free
// text, matching recipe ingredients. FromRecipes records which recipes
// contributed the line when it was generated from a meal plan.
type ListItem struct {
	ID            uuid.UUID        `json:"id"`
	Item          string           `json:"item"`
	Amount        string           `json:"amount"`
	Unit          string           `json:"unit"`
	Category      grocery.Category `json:"category"`
	Checked       bool             `json:"checked"`
	ManuallyAdded bool             `json:"manuallyAdded"`
	FromRecipes   []string         `json:"fromRecipes,omitempty"`
	AddedAt       time.Time        `json:"addedAt"`
}

// List is the shopping list aggregate root.
type List struct {
	id      uuid.UUID
	ownerID uuid.UUID
	name    string
	items   []ListItem

	createdAt time.Time
	updatedAt time.Time

	events []shared.DomainEvent
}

// NewList creates an empty shopping list.
func NewList(ownerID uuid.UUID, name string) (*List, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrListNameRequired
	}

	now := time.Now()
	l := &List{
		id:        uuid.New(),
		ownerID:   ownerID,
		name:      name,
		createdAt: now,
		updatedAt: now,
	}

	l.addEvent(ListCreatedEvent{
		ListID:    l.id,
		OwnerID:   ownerID,
		Name:      name,
		CreatedAt: now,
	})

	return l, nil
}

// RestoreList rebuilds a List from persisted state without raising events.
func RestoreList(id, ownerID uuid.UUID, name string, items []ListItem, createdAt, updatedAt time.Time) *List {
	return &List{
		id:        id,
		ownerID:   ownerID,
		name:      name,
		items:     items,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// ID returns the list identifier.
func (l *List) ID() uuid.UUID { return l.id }

// OwnerID returns the owning user.
func (l *List) OwnerID() uuid.UUID { return l.ownerID }

// Name returns the list name.
func (l *List) Name() string { return l.name }

// Items returns the list's lines in insertion order.
func (l *List) Items() []ListItem { return l.items }

// CreatedAt returns when the list was created.
func (l *List) CreatedAt() time.Time { return l.createdAt }

// UpdatedAt returns when the list last changed.
func (l *List) UpdatedAt() time.Time { return l.updatedAt }

// Rename changes the list name.
func (l *List) Rename(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrListNameRequired
	}
	l.name = name
	l.touch()
	return nil
}

// AddManualItem appends a user-entered line with the same defaults as
// generated lines.
func (l *List) AddManualItem(item, amount, unit string, category grocery.Category) (ListItem, error) {
	return l.addLine(item, amount, unit, category, true)
}

// AddRoutedItem appends a system-produced line, routed from the
// reconciler or a chosen suggestion. Same defaults as manual entry, but
// the line keeps manuallyAdded false like aggregation output.
func (l *List) AddRoutedItem(item, amount, unit string, category grocery.Category) (ListItem, error) {
	return l.addLine(item, amount, unit, category, false)
}

func (l *List) addLine(item, amount, unit string, category grocery.Category, manual bool) (ListItem, error) {
	item = strings.TrimSpace(item)
	if item == "" {
		return ListItem{}, ErrItemNameRequired
	}
	if amount == "" {
		amount = "1"
	}
	if unit == "" {
		unit = "item"
	}
	if !category.IsValid() || category == grocery.CategorySkip {
		category = grocery.DefaultCategory
	}

	line := ListItem{
		ID:            uuid.New(),
		Item:          item,
		Amount:        amount,
		Unit:          unit,
		Category:      category,
		ManuallyAdded: manual,
		AddedAt:       time.Now(),
	}
	l.items = append(l.items, line)
	l.touch()
	return line, nil
}

// MergeGenerated appends aggregation output to the list. The engine has
// already deduplicated against existing lines, so this is a plain append.
func (l *List) MergeGenerated(items []ListItem) int {
	if len(items) == 0 {
		return 0
	}
	l.items = append(l.items, items...)
	l.touch()
	l.addEvent(ItemsGeneratedEvent{
		ListID:      l.id,
		OwnerID:     l.ownerID,
		Count:       len(items),
		GeneratedAt: l.updatedAt,
	})
	return len(items)
}

// SetChecked marks a line as picked up or puts it back.
func (l *List) SetChecked(itemID uuid.UUID, checked bool) error {
	for idx := range l.items {
		if l.items[idx].ID == itemID {
			l.items[idx].Checked = checked
			l.touch()
			return nil
		}
	}
	return ErrItemNotFound
}

// RemoveItem deletes a single line.
func (l *List) RemoveItem(itemID uuid.UUID) error {
	for idx := range l.items {
		if l.items[idx].ID == itemID {
			l.items = append(l.items[:idx], l.items[idx+1:]...)
			l.touch()
			return nil
		}
	}
	return ErrItemNotFound
}

// ClearChecked removes every checked line and returns how many went.
func (l *List) ClearChecked() int {
	kept := l.items[:0]
	removed := 0
	for _, it := range l.items {
		if it.Checked {
			removed++
			continue
		}
		kept = append(kept, it)
	}
	l.items = kept
	if removed > 0 {
		l.touch()
	}
	return removed
}

// CheckedItems returns the currently checked lines.
func (l *List) CheckedItems() []ListItem {
	var checked []ListItem
	for _, it := range l.items {
		if it.Checked {
			checked = append(checked, it)
		}
	}
	return checked
}

// RecategorizeItem moves a line to another grocery category.
func (l *List) RecategorizeItem(itemID uuid.UUID, category grocery.Category) error {
	if !category.IsValid() || category == grocery.CategorySkip {
		return ErrInvalidCategory
	}
	for idx := range l.items {
		if l.items[idx].ID == itemID {
			l.items[idx].Category = category
			l.touch()
			return nil
		}
	}
	return ErrItemNotFound
}

func (l *List) touch() {
	l.updatedAt = time.Now()
}

func (l *List) addEvent(event shared.DomainEvent) {
	l.events = append(l.events, event)
}

// Events returns and clears pending domain events.
func (l *List) Events() []shared.DomainEvent {
	events := l.events
	l.events = nil
	return events
}
