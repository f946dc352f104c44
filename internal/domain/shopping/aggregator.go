package shopping

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/pantrysage/v2/internal/domain/grocery"
	"github.com/pantrysage/v2/internal/domain/mealplan"
	"github.com/pantrysage/v2/internal/domain/recipe"
)

// Outcome distinguishes the user-visible results of a generation pass.
// "No meal plans in range" and "plans found but the list already covers
// everything" read very differently to the user even though both add
// zero lines.
type Outcome string

const (
	OutcomeAdded      Outcome = "added"
	OutcomeNoEntries  Outcome = "no_entries_in_range"
	OutcomeNoNewItems Outcome = "nothing_new_to_add"
)

// Aggregator merges ingredient requirements across planned meals into
// shopping list lines. Pure computation; persistence stays with callers.
type Aggregator struct {
	match      grocery.Matcher
	classifier grocery.Classifier
}

// NewAggregator builds an Aggregator. Nil arguments select the default
// matcher and classifier so every component shares one rule table.
func NewAggregator(match grocery.Matcher, classifier grocery.Classifier) *Aggregator {
	if match == nil {
		match = grocery.ContainsEither
	}
	if classifier == nil {
		classifier = grocery.NewClassifier(nil, nil)
	}
	return &Aggregator{match: match, classifier: classifier}
}

// aggregate accumulates one (item, unit) key. The key is case sensitive
// and un-normalized on purpose: "Tomato" and "tomato" stay separate
// lines rather than guessing that they are the same thing.
type aggregate struct {
	item   string
	unit   string
	total  float64
	titles []string
	seen   map[string]bool
}

// Build filters entries to the inclusive calendar-date range, resolves
// each entry's recipe, sums ingredient quantities per (item, unit) key,
// and returns new list lines for everything not already covered by
// existingItems. Entries whose recipe is missing or deleted are skipped
// silently, as are blank ingredient names and skip-classified items.
func (a *Aggregator) Build(
	entries []*mealplan.Entry,
	recipesByID map[uuid.UUID]*recipe.Recipe,
	existingItems []ListItem,
	from, to time.Time,
) ([]ListItem, Outcome) {
	inRange := make([]*mealplan.Entry, 0, len(entries))
	for _, e := range entries {
		if e.InRange(from, to) {
			inRange = append(inRange, e)
		}
	}
	if len(inRange) == 0 {
		return nil, OutcomeNoEntries
	}

	byKey := make(map[string]*aggregate)
	var order []string
	for _, e := range inRange {
		rec, ok := recipesByID[e.RecipeID()]
		if !ok || rec.IsDeleted() {
			continue
		}
		for _, ing := range rec.Ingredients() {
			item := strings.TrimSpace(ing.Item)
			if item == "" {
				continue
			}

			key := item + "|" + ing.Unit
			agg, ok := byKey[key]
			if !ok {
				agg = &aggregate{item: item, unit: ing.Unit, seen: map[string]bool{}}
				byKey[key] = agg
				order = append(order, key)
			}
			agg.total += amountOrOne(ing.Amount)
			if title := rec.Title(); !agg.seen[title] {
				agg.seen[title] = true
				agg.titles = append(agg.titles, title)
			}
		}
	}

	existingNames := make([]string, 0, len(existingItems))
	for _, it := range existingItems {
		existingNames = append(existingNames, it.Item)
	}

	now := time.Now()
	var added []ListItem
	for _, key := range order {
		agg := byKey[key]

		category := a.classifier.Classify(agg.item)
		if category == grocery.CategorySkip {
			continue
		}
		if a.alreadyListed(agg.item, existingNames) {
			continue
		}

		unit := agg.unit
		if unit == "" {
			unit = "item"
		}
		added = append(added, ListItem{
			ID:          uuid.New(),
			Item:        agg.item,
			Amount:      formatAmount(agg.total),
			Unit:        unit,
			Category:    category,
			FromRecipes: agg.titles,
			AddedAt:     now,
		})
	}

	if len(added) == 0 {
		return nil, OutcomeNoNewItems
	}
	return added, OutcomeAdded
}

func (a *Aggregator) alreadyListed(item string, existing []string) bool {
	for _, name := range existing {
		if a.match(item, name) {
			return true
		}
	}
	return false
}

// amountOrOne parses the leading numeric portion of a free-text amount.
// "2" is 2, "1.5 heaping" is 1.5, "a splash" is 1. Unparseable amounts
// count as one unit so the line still appears rather than being lost.
func amountOrOne(amount string) float64 {
	s := strings.TrimSpace(amount)
	end := 0
	for end < len(s) {
		c := s[end]
		if (c >= '0' && c <= '9') || c == '.' {
			end++
			continue
		}
		break
	}
	if end == 0 {
		return 1
	}
	v, err := strconv.ParseFloat(s[:end], 64)
	if err != nil {
		return 1
	}
	return v
}

func formatAmount(total float64) string {
	return strconv.FormatFloat(total, 'f', -1, 64)
}
