// Package pantry models the user's on-hand inventory and reconciles it
// against recipe ingredient lists.
package pantry

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/pantrysage/v2/internal/domain/grocery"
	"github.com/pantrysage/v2/internal/domain/shared"
)

// Source records how an inventory item entered the pantry.
type Source string

const (
	SourceManual  Source = "manual"
	SourceReceipt Source = "receipt"
	SourceBarcode Source = "barcode"
)

// Status is the lifecycle state of an inventory item. Used and wasted
// items stay on record for consumption reporting but no longer count
// as on hand.
type Status string

const (
	StatusActive Status = "active"
	StatusUsed   Status = "used"
	StatusWasted Status = "wasted"
)

// Item is one pantry inventory entry.
type Item struct {
	id       uuid.UUID
	ownerID  uuid.UUID
	name     string
	amount   string
	unit     string
	category grocery.Category

	upc        string
	price      string
	expiryDate *time.Time
	source     Source

	status     Status
	resolvedAt *time.Time
	createdAt  time.Time
	updatedAt  time.Time

	events []shared.DomainEvent
}

// NewItem creates an active pantry item. Name is mandatory; amount and
// unit default the same way reconciliation defaults them so manual adds
// and generated adds look alike.
func NewItem(ownerID uuid.UUID, name, amount, unit string, category grocery.Category, source Source) (*Item, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrItemNameRequired
	}
	if amount == "" {
		amount = "1"
	}
	if unit == "" {
		unit = "item"
	}
	if source == "" {
		source = SourceManual
	}
	if !category.IsValid() {
		category = grocery.DefaultCategory
	}

	now := time.Now()
	it := &Item{
		id:        uuid.New(),
		ownerID:   ownerID,
		name:      name,
		amount:    amount,
		unit:      unit,
		category:  category,
		source:    source,
		status:    StatusActive,
		createdAt: now,
		updatedAt: now,
	}

	it.addEvent(ItemAddedEvent{
		ItemID:  it.id,
		OwnerID: ownerID,
		Name:    name,
		Source:  source,
		AddedAt: now,
	})

	return it, nil
}

// RestoreItem rebuilds an Item from persisted state without raising events.
func RestoreItem(
	id, ownerID uuid.UUID,
	name, amount, unit string,
	category grocery.Category,
	upc, price string,
	expiryDate *time.Time,
	source Source,
	status Status,
	resolvedAt *time.Time,
	createdAt, updatedAt time.Time,
) *Item {
	return &Item{
		id:         id,
		ownerID:    ownerID,
		name:       name,
		amount:     amount,
		unit:       unit,
		category:   category,
		upc:        upc,
		price:      price,
		expiryDate: expiryDate,
		source:     source,
		status:     status,
		resolvedAt: resolvedAt,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

// ID returns the item identifier.
func (i *Item) ID() uuid.UUID { return i.id }

// OwnerID returns the owning user.
func (i *Item) OwnerID() uuid.UUID { return i.ownerID }

// Name returns the item name.
func (i *Item) Name() string { return i.name }

// Amount returns the free-text quantity.
func (i *Item) Amount() string { return i.amount }

// Unit returns the free-text unit.
func (i *Item) Unit() string { return i.unit }

// Category returns the grocery category.
func (i *Item) Category() grocery.Category { return i.category }

// UPC returns the scanned barcode, if any.
func (i *Item) UPC() string { return i.upc }

// Price returns the purchase price as recorded, if any.
func (i *Item) Price() string { return i.price }

// ExpiryDate returns the expiry date, if known.
func (i *Item) ExpiryDate() *time.Time { return i.expiryDate }

// Source returns how the item entered the pantry.
func (i *Item) Source() Source { return i.source }

// Status returns the lifecycle state.
func (i *Item) Status() Status { return i.status }

// ResolvedAt returns when the item was marked used or wasted.
func (i *Item) ResolvedAt() *time.Time { return i.resolvedAt }

// CreatedAt returns when the item was added.
func (i *Item) CreatedAt() time.Time { return i.createdAt }

// UpdatedAt returns when the item last changed.
func (i *Item) UpdatedAt() time.Time { return i.updatedAt }

// IsActive reports whether the item still counts as on hand.
func (i *Item) IsActive() bool { return i.status == StatusActive }

// SetBarcode attaches UPC and price details from a barcode lookup.
func (i *Item) SetBarcode(upc, price string) {
	i.upc = upc
	i.price = price
	i.updatedAt = time.Now()
}

// SetExpiry sets or clears the expiry date.
func (i *Item) SetExpiry(expiry *time.Time) {
	i.expiryDate = expiry
	i.updatedAt = time.Now()
}

// UpdateQuantity replaces amount and unit.
func (i *Item) UpdateQuantity(amount, unit string) {
	if amount != "" {
		i.amount = amount
	}
	if unit != "" {
		i.unit = unit
	}
	i.updatedAt = time.Now()
}

// Recategorize moves the item to another grocery category.
func (i *Item) Recategorize(category grocery.Category) error {
	if !category.IsValid() {
		return ErrInvalidCategory
	}
	i.category = category
	i.updatedAt = time.Now()
	return nil
}

// MarkUsed records the item as consumed.
func (i *Item) MarkUsed() error {
	return i.resolve(StatusUsed)
}

// MarkWasted records the item as thrown away.
func (i *Item) MarkWasted() error {
	return i.resolve(StatusWasted)
}

func (i *Item) resolve(status Status) error {
	if i.status != StatusActive {
		return ErrItemAlreadyResolved
	}

	now := time.Now()
	i.status = status
	i.resolvedAt = &now
	i.updatedAt = now

	i.addEvent(ItemResolvedEvent{
		ItemID:     i.id,
		OwnerID:    i.ownerID,
		Outcome:    status,
		ResolvedAt: now,
	})

	return nil
}

// ExpiresWithin reports whether the item has an expiry date falling on or
// before the given number of days from now. Items without expiry dates
// never expire.
func (i *Item) ExpiresWithin(days int, now time.Time) bool {
	if i.expiryDate == nil || !i.IsActive() {
		return false
	}
	cutoff := now.AddDate(0, 0, days)
	return !i.expiryDate.After(cutoff)
}

func (i *Item) addEvent(event shared.DomainEvent) {
	i.events = append(i.events, event)
}

// Events returns and clears pending domain events.
func (i *Item) Events() []shared.DomainEvent {
	events := i.events
	i.events = nil
	return events
}
