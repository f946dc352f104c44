package grocery

import "strings"

// Matcher decides whether two ingredient name strings refer to the same
// thing. It is the single matching primitive used for classification,
// inventory reconciliation and shopping-list dedup; swapping it for a
// taxonomy-backed implementation changes matching everywhere at once.
type Matcher func(a, b string) bool

// ContainsEither is the default Matcher: case-insensitive bidirectional
// substring containment. "large eggs" matches "eggs" and vice versa.
// Empty strings never match anything.
func ContainsEither(a, b string) bool {
	a = strings.ToLower(strings.TrimSpace(a))
	b = strings.ToLower(strings.TrimSpace(b))
	if a == "" || b == "" {
		return false
	}
	return strings.Contains(a, b) || strings.Contains(b, a)
}
