// Package poi classifies, reduces, and deduplicates points of interest
// extracted from open-mapping feature collections.
package poi

import "strings"

// Category is the semantic label assigned to an accepted POI.
type Category string

// Known categories.
const (
	CategorySynagogue Category = "synagogue"
	CategoryKosher    Category = "kosher"
	CategoryJCC       Category = "jcc"
)

// Properties is the raw attribute mapping of an input feature. Values are
// arbitrary JSON; non-string values fail string comparisons rather than
// erroring.
type Properties map[string]any

// str returns the attribute as a string, or "" when absent or non-string.
func (p Properties) str(key string) string {
	s, _ := p[key].(string)
	return s
}

// rules are evaluated in order; the first match wins. Order is significant:
// religious-building tags before dietary tags before the name heuristic.
var rules = []struct {
	category Category
	match    func(Properties) bool
}{
	{CategorySynagogue, func(p Properties) bool {
		return p.str("building") == "synagogue"
	}},
	{CategorySynagogue, func(p Properties) bool {
		return p.str("amenity") == "place_of_worship" && p.str("religion") == "jewish"
	}},
	{CategoryKosher, func(p Properties) bool {
		k := p.str("diet:kosher")
		return k == "yes" || k == "only"
	}},
	{CategoryJCC, matchJCCName},
}

// jccNameTerms are matched case-insensitively against the name attribute.
var jccNameTerms = []string{"jcc", "jewish community center", "jewish community centre"}

func matchJCCName(p Properties) bool {
	name := strings.ToLower(p.str("name"))
	for _, term := range jccNameTerms {
		if strings.Contains(name, term) {
			return true
		}
	}
	return false
}

// Classify returns the category for a feature's attributes, or false when
// no rule matches. Tag comparisons are case-sensitive except the name
// heuristic. Missing attributes never error; they simply fail the rule.
func Classify(props Properties) (Category, bool) {
	for _, r := range rules {
		if r.match(props) {
			return r.category, true
		}
	}
	return "", false
}
