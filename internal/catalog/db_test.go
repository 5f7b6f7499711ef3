package catalog

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func setupTestStore(t *testing.T) (*Store, func()) {
	t.Helper()

	tmpDir, err := os.MkdirTemp("", "mchop-test-*")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}

	dbPath := filepath.Join(tmpDir, "catalog.db")
	store, err := Open(dbPath)
	if err != nil {
		os.RemoveAll(tmpDir)
		t.Fatalf("failed to open catalog: %v", err)
	}

	cleanup := func() {
		store.Close()
		os.RemoveAll(tmpDir)
	}

	return store, cleanup
}

func TestOpenSeedsCatalog(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()
	ctx := context.Background()

	count, err := store.Count(ctx)
	if err != nil {
		t.Fatalf("failed to count recipes: %v", err)
	}
	if count != len(seedRecipes) {
		t.Errorf("expected %d seeded recipes, got %d", len(seedRecipes), count)
	}
}

func TestOpenIsIdempotent(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "mchop-test-*")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	dbPath := filepath.Join(tmpDir, "catalog.db")
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		store, err := Open(dbPath)
		if err != nil {
			t.Fatalf("open %d failed: %v", i, err)
		}
		count, err := store.Count(ctx)
		store.Close()
		if err != nil {
			t.Fatalf("count %d failed: %v", i, err)
		}
		if count != len(seedRecipes) {
			t.Errorf("open %d: expected %d recipes, got %d", i, len(seedRecipes), count)
		}
	}
}

func TestListPreservesOrder(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()
	ctx := context.Background()

	recipes, err := store.List(ctx)
	if err != nil {
		t.Fatalf("failed to list recipes: %v", err)
	}
	if len(recipes) != len(seedRecipes) {
		t.Fatalf("expected %d recipes, got %d", len(seedRecipes), len(recipes))
	}

	for i, r := range recipes {
		if r.ID != seedRecipes[i].ID {
			t.Errorf("position %d: expected %s, got %s", i, seedRecipes[i].ID, r.ID)
		}
	}
}

func TestGet(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()
	ctx := context.Background()

	r, err := store.Get(ctx, "spaghetti-aglio-e-olio")
	if err != nil {
		t.Fatalf("failed to get recipe: %v", err)
	}
	if r == nil {
		t.Fatal("expected recipe, got nil")
	}
	if r.Name != "Spaghetti Aglio e Olio" {
		t.Errorf("expected Spaghetti Aglio e Olio, got %s", r.Name)
	}
	if len(r.Ingredients) != 7 {
		t.Errorf("expected 7 ingredients, got %d", len(r.Ingredients))
	}
	if r.Ingredients[0] != "400g spaghetti" {
		t.Errorf("ingredient order not preserved: got %s first", r.Ingredients[0])
	}
}

func TestGetNotFound(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	r, err := store.Get(context.Background(), "no-such-recipe")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r != nil {
		t.Errorf("expected nil for unknown id, got %+v", r)
	}
}

func TestPutAssignsID(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()
	ctx := context.Background()

	r := &Recipe{
		Name:        "Test Omelette",
		Ingredients: []string{"3 eggs", "1 tbsp butter"},
	}
	if err := store.Put(ctx, r); err != nil {
		t.Fatalf("failed to put recipe: %v", err)
	}
	if r.ID == "" {
		t.Error("expected Put to assign an ID")
	}

	got, err := store.Get(ctx, r.ID)
	if err != nil {
		t.Fatalf("failed to get recipe back: %v", err)
	}
	if got == nil || got.Name != "Test Omelette" {
		t.Errorf("round trip failed: %+v", got)
	}

	// New recipes append after the seed set.
	recipes, err := store.List(ctx)
	if err != nil {
		t.Fatalf("failed to list: %v", err)
	}
	if recipes[len(recipes)-1].ID != r.ID {
		t.Errorf("expected new recipe last, got %s", recipes[len(recipes)-1].ID)
	}
}
