package engine

import (
	"sort"

	"github.com/Lillian-Frost/mchop/internal/catalog"
)

// RecipeMatch is the result of scoring one recipe against a user's
// ingredient list. Available and Missing partition the recipe's
// ingredient list in its original order; Substitutions holds
// suggestions for missing ingredients that have any.
type RecipeMatch struct {
	Recipe        catalog.Recipe      `json:"recipe"`
	Score         float64             `json:"score"`
	Available     []string            `json:"available"`
	Missing       []string            `json:"missing"`
	Substitutions map[string][]string `json:"substitutions,omitempty"`
}

// FindRecipes scores every recipe in the catalog against the user's
// ingredients, keeps those at or above minScore, and returns them
// sorted by score descending. Equal scores keep catalog order. The
// call is a pure function of its inputs.
func (e *Engine) FindRecipes(userIngredients []string, recipes []catalog.Recipe, minScore float64) []RecipeMatch {
	matches := make([]RecipeMatch, 0, len(recipes))
	for _, r := range recipes {
		m := e.scoreRecipe(userIngredients, r)
		if m.Score >= minScore {
			matches = append(matches, m)
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})
	return matches
}

func (e *Engine) scoreRecipe(userIngredients []string, r catalog.Recipe) RecipeMatch {
	m := RecipeMatch{
		Recipe:    r,
		Available: []string{},
		Missing:   []string{},
	}

	for _, ing := range r.Ingredients {
		matched := false
		for _, user := range userIngredients {
			if _, ok := e.FindMatch(user, []string{ing}); ok {
				matched = true
				break
			}
		}
		if matched {
			m.Available = append(m.Available, ing)
		} else {
			m.Missing = append(m.Missing, ing)
		}
	}

	if len(r.Ingredients) > 0 {
		m.Score = float64(len(m.Available)) / float64(len(r.Ingredients))
	}

	for _, ing := range m.Missing {
		if subs := e.Substitutions(ing); len(subs) > 0 {
			if m.Substitutions == nil {
				m.Substitutions = make(map[string][]string)
			}
			m.Substitutions[ing] = subs
		}
	}

	return m
}
