package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Lillian-Frost/mchop/internal/catalog"
	"github.com/Lillian-Frost/mchop/internal/config"
)

var importCmd = &cobra.Command{
	Use:   "import <file.json>",
	Short: "Import recipes from a JSON file",
	Long: `Import recipes into the catalog from a JSON file containing an
array of recipe objects. Recipes without an "id" get one assigned.

Example file:

  [
    {
      "name": "Shakshuka",
      "cuisine": "Middle Eastern",
      "cook_time": "30 minutes",
      "servings": 2,
      "ingredients": ["4 eggs", "1 can crushed tomatoes", "1 diced onion"],
      "instructions": ["Simmer the sauce.", "Poach the eggs in it."]
    }
  ]`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", args[0], err)
	}

	var recipes []*catalog.Recipe
	if err := json.Unmarshal(data, &recipes); err != nil {
		return fmt.Errorf("failed to parse %s: %w", args[0], err)
	}
	if len(recipes) == 0 {
		return fmt.Errorf("%s contains no recipes", args[0])
	}

	for i, r := range recipes {
		if r.Name == "" {
			return fmt.Errorf("recipe %d has no name", i)
		}
		if len(r.Ingredients) == 0 {
			return fmt.Errorf("recipe %q has no ingredients", r.Name)
		}
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	store, err := catalog.Open(cfg.Catalog.Path)
	if err != nil {
		return fmt.Errorf("failed to open catalog: %w", err)
	}
	defer store.Close()

	if err := store.PutAll(ctx, recipes); err != nil {
		return fmt.Errorf("import failed: %w", err)
	}

	fmt.Printf("Imported %d recipe(s).\n", len(recipes))
	return nil
}
