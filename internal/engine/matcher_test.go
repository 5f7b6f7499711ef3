package engine

import (
	"reflect"
	"testing"
)

func TestFindMatch(t *testing.T) {
	e := NewDefault()

	tests := []struct {
		name       string
		user       string
		candidates []string
		expected   string
		found      bool
	}{
		{
			name:       "user ingredient contained in candidate",
			user:       "garlic",
			candidates: []string{"6 cloves garlic"},
			expected:   "6 cloves garlic",
			found:      true,
		},
		{
			name:       "candidate contained in user ingredient",
			user:       "extra virgin olive oil",
			candidates: []string{"1/2 cup olive oil"},
			expected:   "1/2 cup olive oil",
			found:      true,
		},
		{
			name:       "fuzzy match above threshold",
			user:       "tomatos",
			candidates: []string{"2 lbs tomatoes"},
			expected:   "2 lbs tomatoes",
			found:      true,
		},
		{
			name:       "no match below threshold",
			user:       "pasta",
			candidates: []string{"400g spaghetti"},
			found:      false,
		},
		{
			name:       "empty user ingredient never matches",
			user:       "",
			candidates: []string{"garlic"},
			found:      false,
		},
		{
			name:       "candidate of only removable tokens never matches",
			user:       "cup",
			candidates: []string{"1 cup"},
			found:      false,
		},
		{
			name:       "no candidates",
			user:       "garlic",
			candidates: nil,
			found:      false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := e.FindMatch(tt.user, tt.candidates)
			if ok != tt.found {
				t.Fatalf("FindMatch(%q) found = %v, want %v", tt.user, ok, tt.found)
			}
			if ok && got != tt.expected {
				t.Errorf("FindMatch(%q) = %q, want %q", tt.user, got, tt.expected)
			}
		})
	}
}

func TestFindMatchContainmentBeatsFuzzy(t *testing.T) {
	e := NewDefault()

	// "tomatoes" scores a near-perfect fuzzy hit against "tomatos",
	// but the containment hit on "tomatoes soup" must win because it
	// is checked first across all candidates.
	got, ok := e.FindMatch("tomatoes", []string{"tomatos", "tomatoes soup"})
	if !ok {
		t.Fatal("expected a match")
	}
	if got != "tomatoes soup" {
		t.Errorf("expected containment to take precedence, got %q", got)
	}
}

func TestFindMatchFirstContainmentWins(t *testing.T) {
	e := NewDefault()

	got, ok := e.FindMatch("garlic", []string{"garlic powder", "garlic cloves"})
	if !ok {
		t.Fatal("expected a match")
	}
	if got != "garlic powder" {
		t.Errorf("expected first containment candidate, got %q", got)
	}
}

func TestFindMatchFuzzyTieKeepsFirst(t *testing.T) {
	e := NewDefault()

	// Both candidates are one edit away from the user ingredient.
	got, ok := e.FindMatch("tomatos", []string{"tomatoes", "tomatons"})
	if !ok {
		t.Fatal("expected a match")
	}
	if got != "tomatoes" {
		t.Errorf("expected first of equal-score candidates, got %q", got)
	}
}

func TestSubstitutionsDirect(t *testing.T) {
	e := NewDefault()

	got := e.Substitutions("parmesan cheese")
	want := []string{"nutritional yeast", "pecorino romano", "asiago"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Substitutions(parmesan cheese) = %v, want %v", got, want)
	}
}

func TestSubstitutionsNormalizesInput(t *testing.T) {
	e := NewDefault()

	got := e.Substitutions("1/2 cup Parmesan Cheese")
	want := []string{"nutritional yeast", "pecorino romano", "asiago"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Substitutions(1/2 cup Parmesan Cheese) = %v, want %v", got, want)
	}
}

func TestSubstitutionsAlias(t *testing.T) {
	e := NewDefault()

	// "scallions" resolves through the alias table to "green onions".
	got := e.Substitutions("scallions")
	want := []string{"chives", "shallots", "leeks"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Substitutions(scallions) = %v, want %v", got, want)
	}
}

func TestSubstitutionsAliasSubstring(t *testing.T) {
	e := NewDefault()

	// The phrase contains the alias "scallions" as a substring.
	got := e.Substitutions("2 sliced scallions")
	want := []string{"chives", "shallots", "leeks"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Substitutions(2 sliced scallions) = %v, want %v", got, want)
	}
}

func TestSubstitutionsAliasWithoutBaseEntry(t *testing.T) {
	e := New(
		[]Substitution{{Ingredient: "butter", Substitutes: []string{"margarine"}}},
		[]Alias{{Name: "scallions", Base: "green onions"}},
		Options{},
	)

	// The alias resolves, the base has no table entry: an empty result,
	// not a failure, and no fall-through to fuzzy lookup.
	got := e.Substitutions("scallions")
	if len(got) != 0 {
		t.Errorf("Substitutions(scallions) = %v, want empty", got)
	}
}

func TestSubstitutionsFuzzy(t *testing.T) {
	e := NewDefault()

	// One edit away from the "buttermilk" key, well above 0.8, and no
	// alias covers the typo.
	got := e.Substitutions("buttermilkk")
	want := []string{"milk with lemon juice", "milk with vinegar"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Substitutions(buttermilkk) = %v, want %v", got, want)
	}
}

func TestSubstitutionsNone(t *testing.T) {
	e := NewDefault()

	for _, ing := range []string{"dragon fruit", "", "1 cup"} {
		if got := e.Substitutions(ing); len(got) != 0 {
			t.Errorf("Substitutions(%q) = %v, want empty", ing, got)
		}
	}
}
