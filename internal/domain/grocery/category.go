// Package grocery contains the store-section category vocabulary and the
// keyword-based ingredient classifier shared by every layer of the
// application. The classifier is deliberately heuristic: ingredient identity
// is a free-text string and matching is substring containment, so the rule
// tables live here as data and the matching strategy sits behind small
// interfaces that a real ingredient taxonomy could replace later.
package grocery

// Category is one label from the fixed store-section enumeration. It is the
// single category vocabulary used across classification, shopping lists and
// inventory; no other package defines category labels.
type Category string

const (
	// CategorySkip is a pseudo-category: callers omit the item entirely.
	CategorySkip Category = "skip"

	CategoryProduce          Category = "produce"
	CategoryDairy            Category = "dairy"
	CategoryDryGoods         Category = "dry-goods"
	CategoryCannedGoods      Category = "canned-goods"
	CategoryPoultry          Category = "poultry"
	CategoryPork             Category = "pork"
	CategoryRedMeat          Category = "red-meat"
	CategorySeafood          Category = "seafood"
	CategoryDeli             Category = "deli"
	CategoryFrozen           Category = "frozen"
	CategoryBeverages        Category = "beverages"
	CategorySnacks           Category = "snacks"
	CategoryBread            Category = "bread"
	CategoryEthnicFoods      Category = "ethnic-foods"
	CategoryHouseholdGoods   Category = "household-goods"
	CategoryCleaningSupplies Category = "cleaning-supplies"
	CategoryPets             Category = "pets"
)

// DefaultCategory is the fallback for names no rule claims. Produce is
// chosen as the least-harmful bucket: unclassified items stay visible
// instead of being silently dropped.
const DefaultCategory = CategoryProduce

// Categories lists every real category in display order. CategorySkip is
// excluded; it never reaches a shopping list or inventory view.
func Categories() []Category {
	return []Category{
		CategoryProduce,
		CategoryDeli,
		CategoryPoultry,
		CategoryPork,
		CategoryRedMeat,
		CategorySeafood,
		CategoryDairy,
		CategoryFrozen,
		CategoryBeverages,
		CategorySnacks,
		CategoryCannedGoods,
		CategoryDryGoods,
		CategoryBread,
		CategoryEthnicFoods,
		CategoryHouseholdGoods,
		CategoryCleaningSupplies,
		CategoryPets,
	}
}

var displayNames = map[Category]string{
	CategoryProduce:          "Produce",
	CategoryDeli:             "Deli",
	CategoryPoultry:          "Poultry",
	CategoryPork:             "Pork",
	CategoryRedMeat:          "Red Meat",
	CategorySeafood:          "Seafood",
	CategoryDairy:            "Dairy",
	CategoryFrozen:           "Frozen",
	CategoryBeverages:        "Beverages",
	CategorySnacks:           "Snacks",
	CategoryCannedGoods:      "Canned Goods",
	CategoryDryGoods:         "Dry Goods & Baking",
	CategoryBread:            "Bread & Bakery",
	CategoryEthnicFoods:      "International Foods",
	CategoryHouseholdGoods:   "Household",
	CategoryCleaningSupplies: "Cleaning",
	CategoryPets:             "Pet Supplies",
}

// DisplayName returns the store-aisle label for a category.
func (c Category) DisplayName() string {
	if name, ok := displayNames[c]; ok {
		return name
	}
	return string(c)
}

// IsValid reports whether c is a known category (including skip).
func (c Category) IsValid() bool {
	if c == CategorySkip {
		return true
	}
	_, ok := displayNames[c]
	return ok
}
