package pantry

import (
	"strings"

	"github.com/pantrysage/v2/internal/domain/grocery"
	"github.com/pantrysage/v2/internal/domain/recipe"
)

// MissingItem is a recipe ingredient the pantry cannot cover, ready to be
// added to a shopping list. Amount and unit carry the recipe's values,
// falling back to "1 item" when the recipe left them blank.
type MissingItem struct {
	Item     string           `json:"item"`
	Amount   string           `json:"amount"`
	Unit     string           `json:"unit"`
	Category grocery.Category `json:"category"`
}

// Reconciler matches recipe ingredient lists against pantry contents.
// Matching is bidirectional containment, so inventory "eggs" covers
// recipe "large eggs" and inventory "whole wheat bread" covers recipe
// "bread".
type Reconciler struct {
	match      grocery.Matcher
	classifier grocery.Classifier
}

// NewReconciler builds a Reconciler. Nil arguments select the default
// matcher and classifier.
func NewReconciler(match grocery.Matcher, classifier grocery.Classifier) *Reconciler {
	if match == nil {
		match = grocery.ContainsEither
	}
	if classifier == nil {
		classifier = grocery.NewClassifier(nil, nil)
	}
	return &Reconciler{match: match, classifier: classifier}
}

// FindMissing returns the recipe ingredients not covered by any active
// inventory item, preserving recipe order. Ingredient lines with blank
// names are skipped.
func (r *Reconciler) FindMissing(ingredients []recipe.Ingredient, inventory []*Item) []MissingItem {
	onHand := make([]string, 0, len(inventory))
	for _, it := range inventory {
		if it.IsActive() {
			onHand = append(onHand, it.Name())
		}
	}
	return r.findMissing(ingredients, onHand)
}

// FindMissingByName is FindMissing over bare inventory names, for callers
// that already filtered to active stock.
func (r *Reconciler) FindMissingByName(ingredients []recipe.Ingredient, inventoryNames []string) []MissingItem {
	return r.findMissing(ingredients, inventoryNames)
}

func (r *Reconciler) findMissing(ingredients []recipe.Ingredient, onHand []string) []MissingItem {
	missing := make([]MissingItem, 0, len(ingredients))
	for _, ing := range ingredients {
		name := strings.TrimSpace(ing.Item)
		if name == "" {
			continue
		}
		if r.covered(name, onHand) {
			continue
		}

		amount := ing.Amount
		if amount == "" {
			amount = "1"
		}
		unit := ing.Unit
		if unit == "" {
			unit = "item"
		}
		missing = append(missing, MissingItem{
			Item:     name,
			Amount:   amount,
			Unit:     unit,
			Category: r.classifier.Classify(name),
		})
	}
	return missing
}

// Covers reports whether any of the given inventory names matches the
// ingredient name.
func (r *Reconciler) Covers(ingredientName string, inventoryNames []string) bool {
	return r.covered(strings.TrimSpace(ingredientName), inventoryNames)
}

func (r *Reconciler) covered(name string, onHand []string) bool {
	for _, have := range onHand {
		if r.match(name, have) {
			return true
		}
	}
	return false
}
