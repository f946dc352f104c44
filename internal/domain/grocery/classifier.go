package grocery

import "strings"

// Classifier maps a free-text ingredient name to a store-section category.
// Implementations must be pure: identical input yields identical output.
type Classifier interface {
	Classify(name string) Category
}

// KeywordClassifier classifies by ordered keyword rules over a RuleSet.
type KeywordClassifier struct {
	rules *RuleSet
	match Matcher
}

// NewClassifier builds a classifier over the given rule set. A nil rule set
// uses the built-in default; a nil matcher uses bidirectional containment.
func NewClassifier(rules *RuleSet, match Matcher) *KeywordClassifier {
	if rules == nil {
		rules = DefaultRuleSet()
	}
	if match == nil {
		match = ContainsEither
	}
	return &KeywordClassifier{rules: rules, match: match}
}

// Classify returns the first category whose keyword set claims the name,
// or DefaultCategory when nothing does. Names caught by the skip rule
// return CategorySkip and should be omitted by callers.
func (c *KeywordClassifier) Classify(name string) Category {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return DefaultCategory
	}

	if c.skipped(name) {
		return CategorySkip
	}

	for _, rule := range c.rules.Rules {
		for _, keyword := range rule.Keywords {
			if c.match(name, keyword) {
				return rule.Category
			}
		}
	}

	return DefaultCategory
}

// RulesVersion reports the version of the loaded rule table.
func (c *KeywordClassifier) RulesVersion() string {
	return c.rules.Version
}

// skipped matches the skip keyword on word boundaries so "watermelon"
// is not mistaken for "water".
func (c *KeywordClassifier) skipped(name string) bool {
	skip := c.rules.Skip
	if skip.Keyword == "" {
		return false
	}
	found := false
	for _, field := range strings.Fields(name) {
		if field == skip.Keyword {
			found = true
			break
		}
	}
	if !found {
		return false
	}
	for _, qualifier := range skip.Qualifiers {
		if strings.Contains(name, qualifier) {
			return false
		}
	}
	return true
}
