package engine

import (
	"regexp"
	"strings"
)

// quantityPattern matches a numeric amount (including fractions and
// decimals) followed by a measurement unit. The amount may be glued to
// the unit, as in "400g".
var quantityPattern = regexp.MustCompile(`(?i)\b\d+(?:[./]\d+)?\s*(?:cups?|tbsp|tsp|oz|lbs?|pounds?|grams?|g|kg)\b`)

// modifierWords are preparation and state words that carry no identity:
// "fresh parsley" and "parsley" name the same ingredient.
var modifierWords = map[string]struct{}{
	"fresh":   {},
	"dried":   {},
	"ground":  {},
	"chopped": {},
	"diced":   {},
	"sliced":  {},
	"minced":  {},
	"whole":   {},
	"organic": {},
	"raw":     {},
}

// Normalize reduces a raw ingredient phrase to its canonical form:
// lowercase, quantity+unit tokens and modifier words removed,
// whitespace collapsed. It is pure and idempotent. A phrase made up
// entirely of removable tokens (e.g. "1 cup") normalizes to the empty
// string, which callers must treat as matching nothing.
func Normalize(phrase string) string {
	s := strings.ToLower(phrase)
	s = quantityPattern.ReplaceAllString(s, " ")

	words := strings.Fields(s)
	kept := make([]string, 0, len(words))
	for _, w := range words {
		if _, ok := modifierWords[w]; ok {
			continue
		}
		kept = append(kept, w)
	}

	return strings.Join(kept, " ")
}
