// Package suggestion ranks inventory-aware recipe suggestions produced
// by an external generator. The generator scores each candidate against
// the pantry; this package only groups and orders the results for
// presentation, it never re-scores.
package suggestion

import "sort"

// MatchType labels how completely the pantry covers a suggestion.
type MatchType string

const (
	MatchFull    MatchType = "full"
	MatchPartial MatchType = "partial"
	MatchNone    MatchType = "none"
)

// Group is the presentation bucket a suggestion lands in.
type Group string

const (
	GroupReadyNow       Group = "ready_now"
	GroupAlmostMakeable Group = "almost_makeable"
	GroupQuickIdeas     Group = "quick_ideas"
)

// Suggestion is one generated recipe candidate as delivered by the
// external collaborator, already scored against the user's inventory.
type Suggestion struct {
	Title              string    `json:"title"`
	Description        string    `json:"description"`
	Ingredients        []string  `json:"ingredients"`
	Instructions       []string  `json:"instructions,omitempty"`
	PrepMinutes        int       `json:"prepMinutes"`
	InventoryMatch     int       `json:"inventoryMatch"`
	MatchType          MatchType `json:"matchType"`
	MissingIngredients []string  `json:"missingIngredients"`
}

// GroupFor maps a match type to its presentation bucket. Anything the
// generator did not label full or partial falls through to quick ideas.
func GroupFor(mt MatchType) Group {
	switch mt {
	case MatchFull:
		return GroupReadyNow
	case MatchPartial:
		return GroupAlmostMakeable
	default:
		return GroupQuickIdeas
	}
}

// Ranked is the presentation-ready output: suggestions bucketed and
// ordered, ready-now first.
type Ranked struct {
	ReadyNow       []Suggestion `json:"readyNow"`
	AlmostMakeable []Suggestion `json:"almostMakeable"`
	QuickIdeas     []Suggestion `json:"quickIdeas"`
}

// Total returns the number of suggestions across all groups.
func (r Ranked) Total() int {
	return len(r.ReadyNow) + len(r.AlmostMakeable) + len(r.QuickIdeas)
}

// Rank buckets suggestions by match type and sorts each bucket by
// inventory match descending. The sort is stable so suggestions with
// equal scores keep the generator's order.
func Rank(suggestions []Suggestion) Ranked {
	var ranked Ranked
	for _, s := range suggestions {
		switch GroupFor(s.MatchType) {
		case GroupReadyNow:
			ranked.ReadyNow = append(ranked.ReadyNow, s)
		case GroupAlmostMakeable:
			ranked.AlmostMakeable = append(ranked.AlmostMakeable, s)
		default:
			ranked.QuickIdeas = append(ranked.QuickIdeas, s)
		}
	}
	byMatchDesc(ranked.ReadyNow)
	byMatchDesc(ranked.AlmostMakeable)
	byMatchDesc(ranked.QuickIdeas)
	return ranked
}

func byMatchDesc(s []Suggestion) {
	sort.SliceStable(s, func(i, j int) bool {
		return s[i].InventoryMatch > s[j].InventoryMatch
	})
}
