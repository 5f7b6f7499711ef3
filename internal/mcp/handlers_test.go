package mcp

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/Lillian-Frost/mchop/internal/catalog"
	"github.com/Lillian-Frost/mchop/internal/config"
)

func setupTestServer(t *testing.T) (*Server, func()) {
	t.Helper()

	tmpDir, err := os.MkdirTemp("", "mchop-mcp-test-*")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}

	store, err := catalog.Open(filepath.Join(tmpDir, "catalog.db"))
	if err != nil {
		os.RemoveAll(tmpDir)
		t.Fatalf("failed to open catalog: %v", err)
	}

	cfg := config.Default()
	server := New(store, cfg.Engine(), cfg)

	cleanup := func() {
		store.Close()
		os.RemoveAll(tmpDir)
	}
	return server, cleanup
}

func TestFindRecipesRequiresIngredients(t *testing.T) {
	server, cleanup := setupTestServer(t)
	defer cleanup()

	_, err := server.handleFindRecipes(context.Background(), json.RawMessage(`{"ingredients": []}`))
	if err == nil {
		t.Fatal("expected an error for an empty ingredient list")
	}
}

func TestFindRecipesScoresAndLimits(t *testing.T) {
	server, cleanup := setupTestServer(t)
	defer cleanup()

	raw := json.RawMessage(`{
		"ingredients": ["garlic", "olive oil", "spaghetti", "parmesan cheese", "parsley", "red pepper flakes", "salt"],
		"min_match_score": 0.3,
		"max_results": 1
	}`)
	result, err := server.handleFindRecipes(context.Background(), raw)
	if err != nil {
		t.Fatalf("handleFindRecipes() error = %v", err)
	}

	r, ok := result.(findRecipesResult)
	if !ok {
		t.Fatalf("unexpected result type %T", result)
	}
	if r.TotalFound < 1 {
		t.Fatalf("expected at least one match, got %d", r.TotalFound)
	}
	if len(r.Recipes) != 1 {
		t.Fatalf("expected max_results to cap recipes at 1, got %d", len(r.Recipes))
	}

	top := r.Recipes[0]
	if top.ID != "spaghetti-aglio-e-olio" {
		t.Errorf("expected the aglio e olio recipe first, got %s", top.ID)
	}
	if top.MatchScore != 100.0 {
		t.Errorf("expected a 100.0 match score, got %v", top.MatchScore)
	}
	if len(top.AvailableIngredients)+len(top.MissingIngredients) != len(top.Ingredients) {
		t.Error("available and missing do not partition the ingredient list")
	}
}

func TestFindRecipesEmptyResultIsNotError(t *testing.T) {
	server, cleanup := setupTestServer(t)
	defer cleanup()

	raw := json.RawMessage(`{"ingredients": ["unobtainium"], "min_match_score": 0.3}`)
	result, err := server.handleFindRecipes(context.Background(), raw)
	if err != nil {
		t.Fatalf("handleFindRecipes() error = %v", err)
	}

	r := result.(findRecipesResult)
	if r.TotalFound != 0 {
		t.Errorf("expected total_found=0, got %d", r.TotalFound)
	}
	if r.Recipes == nil || len(r.Recipes) != 0 {
		t.Errorf("expected an empty recipe list, got %v", r.Recipes)
	}
}

func TestGetRecipeDetails(t *testing.T) {
	server, cleanup := setupTestServer(t)
	defer cleanup()

	result, err := server.handleGetRecipeDetails(context.Background(),
		json.RawMessage(`{"recipe_id": "spaghetti-aglio-e-olio"}`))
	if err != nil {
		t.Fatalf("handleGetRecipeDetails() error = %v", err)
	}

	r := result.(recipeDetailsResult)
	if !r.Found {
		t.Fatal("expected the recipe to be found")
	}
}

func TestGetRecipeDetailsNotFound(t *testing.T) {
	server, cleanup := setupTestServer(t)
	defer cleanup()

	result, err := server.handleGetRecipeDetails(context.Background(),
		json.RawMessage(`{"recipe_id": "no-such-recipe"}`))
	if err != nil {
		t.Fatalf("not-found must not be an error, got %v", err)
	}

	r := result.(recipeDetailsResult)
	if r.Found {
		t.Error("expected found=false for an unknown id")
	}
	if r.Message == "" {
		t.Error("expected a not-found message")
	}
}

func TestSuggestSubstitutions(t *testing.T) {
	server, cleanup := setupTestServer(t)
	defer cleanup()

	result, err := server.handleSuggestSubstitutions(context.Background(),
		json.RawMessage(`{"ingredients": ["parmesan cheese", "dragon fruit"]}`))
	if err != nil {
		t.Fatalf("handleSuggestSubstitutions() error = %v", err)
	}

	r := result.(suggestSubstitutionsResult)
	if _, ok := r.Substitutions["parmesan cheese"]; !ok {
		t.Error("expected substitutions for parmesan cheese")
	}
	if _, ok := r.Substitutions["dragon fruit"]; ok {
		t.Error("ingredients without substitutions must be omitted")
	}
}
