package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/Lillian-Frost/mchop/internal/engine"
)

func (s *Server) registerHandlers() {
	s.handlers["find_recipes"] = s.handleFindRecipes
	s.handlers["get_recipe_details"] = s.handleGetRecipeDetails
	s.handlers["suggest_substitutions"] = s.handleSuggestSubstitutions
}

type findRecipesParams struct {
	Ingredients   []string `json:"ingredients"`
	MinMatchScore *float64 `json:"min_match_score"`
	MaxResults    *int     `json:"max_results"`
}

// recipeMatchResult is a RecipeMatch flattened for tool output: catalog
// fields plus the match data, score as a percentage with one decimal.
type recipeMatchResult struct {
	ID                   string              `json:"id"`
	Name                 string              `json:"name"`
	Description          string              `json:"description,omitempty"`
	CookTime             string              `json:"cook_time,omitempty"`
	Servings             int                 `json:"servings,omitempty"`
	Cuisine              string              `json:"cuisine,omitempty"`
	Difficulty           string              `json:"difficulty,omitempty"`
	Ingredients          []string            `json:"ingredients"`
	Instructions         []string            `json:"instructions,omitempty"`
	MatchScore           float64             `json:"match_score"`
	AvailableIngredients []string            `json:"available_ingredients"`
	MissingIngredients   []string            `json:"missing_ingredients"`
	Substitutions        map[string][]string `json:"substitutions,omitempty"`
}

type findRecipesResult struct {
	TotalFound int                 `json:"total_found"`
	Recipes    []recipeMatchResult `json:"recipes"`
}

func (s *Server) handleFindRecipes(ctx context.Context, params json.RawMessage) (interface{}, error) {
	var p findRecipesParams
	if err := json.Unmarshal(params, &p); err != nil {
		return nil, fmt.Errorf("invalid parameters: %w", err)
	}

	if len(p.Ingredients) == 0 {
		return nil, fmt.Errorf("at least one ingredient is required")
	}

	minScore := s.cfg.Matching.MinMatchScore
	if p.MinMatchScore != nil {
		minScore = *p.MinMatchScore
		if minScore < 0 || minScore > 1 {
			return nil, fmt.Errorf("min_match_score must be between 0 and 1, got %v", minScore)
		}
	}

	maxResults := s.cfg.Matching.MaxResults
	if p.MaxResults != nil {
		maxResults = *p.MaxResults
		if maxResults < 1 {
			return nil, fmt.Errorf("max_results must be at least 1, got %d", maxResults)
		}
	}

	recipes, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("catalog error: %w", err)
	}

	matches := s.engine.FindRecipes(p.Ingredients, recipes, minScore)

	result := findRecipesResult{
		TotalFound: len(matches),
		Recipes:    []recipeMatchResult{},
	}
	if len(matches) > maxResults {
		matches = matches[:maxResults]
	}
	for _, m := range matches {
		result.Recipes = append(result.Recipes, toMatchResult(m))
	}

	return result, nil
}

func toMatchResult(m engine.RecipeMatch) recipeMatchResult {
	return recipeMatchResult{
		ID:                   m.Recipe.ID,
		Name:                 m.Recipe.Name,
		Description:          m.Recipe.Description,
		CookTime:             m.Recipe.CookTime,
		Servings:             m.Recipe.Servings,
		Cuisine:              m.Recipe.Cuisine,
		Difficulty:           m.Recipe.Difficulty,
		Ingredients:          m.Recipe.Ingredients,
		Instructions:         m.Recipe.Instructions,
		MatchScore:           math.Round(m.Score*1000) / 10,
		AvailableIngredients: m.Available,
		MissingIngredients:   m.Missing,
		Substitutions:        m.Substitutions,
	}
}

type getRecipeDetailsParams struct {
	RecipeID string `json:"recipe_id"`
}

// recipeDetailsResult reports not-found as data rather than a protocol
// error, so callers can tell it apart from a malformed request.
type recipeDetailsResult struct {
	Found   bool        `json:"found"`
	Message string      `json:"message,omitempty"`
	Recipe  interface{} `json:"recipe,omitempty"`
}

func (s *Server) handleGetRecipeDetails(ctx context.Context, params json.RawMessage) (interface{}, error) {
	var p getRecipeDetailsParams
	if err := json.Unmarshal(params, &p); err != nil {
		return nil, fmt.Errorf("invalid parameters: %w", err)
	}

	if p.RecipeID == "" {
		return nil, fmt.Errorf("recipe_id is required")
	}

	r, err := s.store.Get(ctx, p.RecipeID)
	if err != nil {
		return nil, fmt.Errorf("catalog error: %w", err)
	}

	if r == nil {
		return recipeDetailsResult{
			Found:   false,
			Message: fmt.Sprintf("recipe not found: %s", p.RecipeID),
		}, nil
	}

	return recipeDetailsResult{Found: true, Recipe: r}, nil
}

type suggestSubstitutionsParams struct {
	Ingredients []string `json:"ingredients"`
}

type suggestSubstitutionsResult struct {
	Substitutions map[string][]string `json:"substitutions"`
}

func (s *Server) handleSuggestSubstitutions(ctx context.Context, params json.RawMessage) (interface{}, error) {
	var p suggestSubstitutionsParams
	if err := json.Unmarshal(params, &p); err != nil {
		return nil, fmt.Errorf("invalid parameters: %w", err)
	}

	if len(p.Ingredients) == 0 {
		return nil, fmt.Errorf("at least one ingredient is required")
	}

	result := suggestSubstitutionsResult{
		Substitutions: make(map[string][]string),
	}
	for _, ing := range p.Ingredients {
		if subs := s.engine.Substitutions(ing); len(subs) > 0 {
			result.Substitutions[ing] = subs
		}
	}

	return result, nil
}

// Resource handlers

func (s *Server) handleReadResource(ctx context.Context, uri string) (string, error) {
	switch uri {
	case "mchop://recipes":
		return s.getResourceRecipes(ctx)
	case "mchop://substitutions":
		return s.getResourceSubstitutions(ctx)
	default:
		return "", fmt.Errorf("unknown resource: %s", uri)
	}
}

func (s *Server) getResourceRecipes(ctx context.Context) (string, error) {
	recipes, err := s.store.List(ctx)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Recipe Catalog (%d recipes)\n", len(recipes))
	b.WriteString("===========================\n\n")

	if len(recipes) == 0 {
		b.WriteString("The catalog is empty.\n")
		return b.String(), nil
	}

	for _, r := range recipes {
		fmt.Fprintf(&b, "  - %s [%s]", r.Name, r.ID)
		if r.Cuisine != "" {
			fmt.Fprintf(&b, " - %s", r.Cuisine)
		}
		if r.CookTime != "" {
			fmt.Fprintf(&b, ", %s", r.CookTime)
		}
		fmt.Fprintf(&b, ", %d ingredients\n", len(r.Ingredients))
	}

	return b.String(), nil
}

func (s *Server) getResourceSubstitutions(ctx context.Context) (string, error) {
	var b strings.Builder
	b.WriteString("Substitution Table\n==================\n\n")

	for _, sub := range engine.DefaultSubstitutions {
		fmt.Fprintf(&b, "  %s: %s\n", sub.Ingredient, strings.Join(sub.Substitutes, ", "))
	}
	for _, sub := range s.cfg.Substitutions {
		fmt.Fprintf(&b, "  %s: %s (configured)\n", sub.Ingredient, strings.Join(sub.Substitutes, ", "))
	}

	b.WriteString("\nAliases\n-------\n")
	for _, a := range engine.DefaultAliases {
		fmt.Fprintf(&b, "  %s -> %s\n", a.Name, a.Base)
	}
	for _, a := range s.cfg.Aliases {
		fmt.Fprintf(&b, "  %s -> %s (configured)\n", a.Alias, a.Ingredient)
	}

	return b.String(), nil
}
