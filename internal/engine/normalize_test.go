package engine

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		phrase   string
		expected string
	}{
		{
			name:     "quantity and unit stripped",
			phrase:   "2 tbsp fresh parsley",
			expected: "parsley",
		},
		{
			name:     "glued unit stripped",
			phrase:   "400g spaghetti",
			expected: "spaghetti",
		},
		{
			name:     "fraction quantity stripped",
			phrase:   "1/2 cup olive oil",
			expected: "olive oil",
		},
		{
			name:     "bare number without unit kept",
			phrase:   "6 cloves garlic",
			expected: "6 cloves garlic",
		},
		{
			name:     "modifier words removed",
			phrase:   "Fresh Diced Organic Tomatoes",
			expected: "tomatoes",
		},
		{
			name:     "modifier prefix of longer word kept",
			phrase:   "freshly squeezed juice",
			expected: "freshly squeezed juice",
		},
		{
			name:     "whitespace collapsed",
			phrase:   "  olive   oil  ",
			expected: "olive oil",
		},
		{
			name:     "uppercase folded",
			phrase:   "2 Cups MILK",
			expected: "milk",
		},
		{
			name:     "only removable tokens",
			phrase:   "1 cup",
			expected: "",
		},
		{
			name:     "empty input",
			phrase:   "",
			expected: "",
		},
		{
			name:     "unit word without amount kept",
			phrase:   "pound cake",
			expected: "pound cake",
		},
		{
			name:     "modifier inside word kept",
			phrase:   "rawhide",
			expected: "rawhide",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.phrase)
			if got != tt.expected {
				t.Errorf("Normalize(%q) = %q, want %q", tt.phrase, got, tt.expected)
			}
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	phrases := []string{
		"2 tbsp fresh parsley",
		"400g spaghetti",
		"6 cloves garlic",
		"salt and pepper to taste",
		"1 cup",
		"",
	}

	for _, p := range phrases {
		once := Normalize(p)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: %q -> %q", p, once, twice)
		}
	}
}
