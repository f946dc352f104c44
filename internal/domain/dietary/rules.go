// Package dietary evaluates recipe ingredient lists against a user's
// dietary restrictions and allergies. The conflict rule base is a static,
// versioned table; matching is the same case-insensitive substring
// heuristic used everywhere else, so false positives are possible by
// construction ("coconut water" does not trip a dairy check, but
// "almond milk" does trip a nut allergy, and that is the intended bias).
package dietary

// Restriction is a dietary-restriction label as stored in preferences.
type Restriction string

// Supported dietary restrictions.
const (
	RestrictionVegetarian Restriction = "Vegetarian"
	RestrictionVegan      Restriction = "Vegan"
	RestrictionGlutenFree Restriction = "Gluten-Free"
	RestrictionDairyFree  Restriction = "Dairy-Free"
	RestrictionKeto       Restriction = "Keto"
	RestrictionPaleo      Restriction = "Paleo"
	RestrictionLowCarb    Restriction = "Low-Carb"
	RestrictionKosher     Restriction = "Kosher"
	RestrictionHalal      Restriction = "Halal"
)

// Allergen is an allergy label as stored in preferences.
type Allergen string

// Supported allergens.
const (
	AllergenNuts      Allergen = "Nuts"
	AllergenPeanuts   Allergen = "Peanuts"
	AllergenShellfish Allergen = "Shellfish"
	AllergenFish      Allergen = "Fish"
	AllergenEggs      Allergen = "Eggs"
	AllergenMilk      Allergen = "Milk"
	AllergenSoy       Allergen = "Soy"
	AllergenWheat     Allergen = "Wheat"
	AllergenSesame    Allergen = "Sesame"
)

// RuleBase maps restriction and allergen labels to the ingredient keywords
// that disqualify a recipe. Loaded once; the checker never builds its own.
type RuleBase struct {
	Version      string
	Restrictions map[Restriction][]string
	Allergens    map[Allergen][]string
}

// DefaultRuleBase returns the built-in conflict table.
func DefaultRuleBase() *RuleBase {
	return &RuleBase{
		Version: "2025.2",
		Restrictions: map[Restriction][]string{
			RestrictionVegetarian: {
				"beef", "pork", "chicken", "turkey", "fish", "seafood",
				"meat", "bacon", "ham", "sausage",
			},
			RestrictionVegan: {
				"beef", "pork", "chicken", "turkey", "fish", "seafood",
				"meat", "bacon", "ham", "sausage", "milk", "cheese",
				"butter", "cream", "yogurt", "egg",
			},
			RestrictionGlutenFree: {
				"wheat", "flour", "bread", "pasta", "barley", "rye", "gluten",
			},
			RestrictionDairyFree: {
				"milk", "cheese", "butter", "cream", "yogurt", "dairy",
			},
			RestrictionKeto: {
				"bread", "pasta", "rice", "potato", "sugar", "flour",
			},
			RestrictionPaleo: {
				"grain", "legume", "dairy", "refined", "processed",
			},
			RestrictionLowCarb: {
				"bread", "pasta", "rice", "potato", "sugar", "flour",
			},
			RestrictionKosher: {
				"pork", "shellfish",
			},
			RestrictionHalal: {
				"pork", "alcohol", "wine",
			},
		},
		Allergens: map[Allergen][]string{
			AllergenNuts: {
				"almond", "walnut", "pecan", "cashew", "pistachio",
				"hazelnut", "brazil nut",
			},
			AllergenPeanuts:   {"peanut"},
			AllergenShellfish: {"shrimp", "crab", "lobster", "oyster", "mussel", "clam"},
			AllergenFish:      {"salmon", "tuna", "cod", "fish", "anchovy"},
			AllergenEggs:      {"egg"},
			AllergenMilk:      {"milk", "dairy"},
			AllergenSoy:       {"soy", "tofu", "tempeh"},
			AllergenWheat:     {"wheat", "flour"},
			AllergenSesame:    {"sesame", "tahini"},
		},
	}
}
