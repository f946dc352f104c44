package dietary

import (
	"fmt"
	"strings"
)

// Severity distinguishes advisory restriction mismatches from hard
// allergen hits.
type Severity string

const (
	// SeverityRestriction flags a diet mismatch. The recipe stays usable.
	SeverityRestriction Severity = "restriction"
	// SeverityAllergen flags a recorded allergy. Always surfaced prominently.
	SeverityAllergen Severity = "allergen"
)

// Warning is a single safety finding for one recipe ingredient.
// Checks emit one warning per triggering ingredient, never deduplicated,
// so callers can show exactly which lines caused the conflict.
type Warning struct {
	Severity   Severity `json:"severity"`
	Label      string   `json:"label"`
	Ingredient string   `json:"ingredient"`
	Message    string   `json:"message"`
}

// Profile is the slice of user preferences the checker cares about.
type Profile struct {
	Restrictions []Restriction
	Allergies    []Allergen
}

// Checker evaluates ingredient lists against a profile using a rule base.
type Checker struct {
	rules *RuleBase
}

// NewChecker builds a Checker. A nil rule base falls back to the built-in
// table.
func NewChecker(rules *RuleBase) *Checker {
	if rules == nil {
		rules = DefaultRuleBase()
	}
	return &Checker{rules: rules}
}

// RulesVersion reports the version of the loaded conflict table.
func (c *Checker) RulesVersion() string {
	return c.rules.Version
}

// Check scans every ingredient name against every restriction and allergy
// in the profile. Matching is one-directional: a rule keyword contained
// anywhere in the lowercased ingredient name triggers. Allergen warnings
// sort ahead of restriction warnings; otherwise order follows the
// ingredient list, so output is deterministic for a given input.
func (c *Checker) Check(ingredients []string, profile Profile) []Warning {
	var allergen, restriction []Warning
	for _, raw := range ingredients {
		name := strings.ToLower(strings.TrimSpace(raw))
		if name == "" {
			continue
		}
		for _, a := range profile.Allergies {
			if c.matchesAny(name, c.rules.Allergens[a]) {
				allergen = append(allergen, Warning{
					Severity:   SeverityAllergen,
					Label:      string(a),
					Ingredient: raw,
					Message:    fmt.Sprintf("ALLERGY WARNING: Contains %s", a),
				})
			}
		}
		for _, r := range profile.Restrictions {
			if c.matchesAny(name, c.rules.Restrictions[r]) {
				restriction = append(restriction, Warning{
					Severity:   SeverityRestriction,
					Label:      string(r),
					Ingredient: raw,
					Message:    fmt.Sprintf("Contains ingredients not suitable for %s diet", r),
				})
			}
		}
	}
	return append(allergen, restriction...)
}

// HasAllergenConflict reports whether any warning for the given inputs is
// allergen-severity. Used by rankers to exclude unsafe suggestions outright.
func (c *Checker) HasAllergenConflict(ingredients []string, profile Profile) bool {
	for _, w := range c.Check(ingredients, profile) {
		if w.Severity == SeverityAllergen {
			return true
		}
	}
	return false
}

func (c *Checker) matchesAny(name string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(name, kw) {
			return true
		}
	}
	return false
}

// Summarize collapses a warning list into one display line per label,
// keeping allergen labels first. The underlying warnings stay
// per-ingredient; this is presentation only.
func Summarize(warnings []Warning) []string {
	var lines []string
	seen := make(map[string]bool)
	for _, w := range warnings {
		key := string(w.Severity) + ":" + w.Label
		if seen[key] {
			continue
		}
		seen[key] = true
		lines = append(lines, w.Message)
	}
	return lines
}
