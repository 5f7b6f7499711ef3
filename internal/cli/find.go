package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Lillian-Frost/mchop/internal/catalog"
	"github.com/Lillian-Frost/mchop/internal/config"
	"github.com/Lillian-Frost/mchop/internal/output"
)

var findCmd = &cobra.Command{
	Use:   "find [ingredients...]",
	Short: "Find recipes matching your ingredients",
	Long: `Find recipes you can cook with the ingredients you have.

Quantities and preparation words are ignored, so "2 cups flour" and
"flour" mean the same thing.

Examples:
  mchop find garlic "olive oil" spaghetti
  mchop find chicken rice --min-score 0.5
  mchop find eggs milk flour -o json`,
	RunE: runFind,
}

var (
	findMinScore float64
	findLimit    int
)

func init() {
	rootCmd.AddCommand(findCmd)

	findCmd.Flags().Float64Var(&findMinScore, "min-score", -1,
		"Minimum match score between 0 and 1 (default from config)")
	findCmd.Flags().IntVar(&findLimit, "limit", 0,
		"Maximum number of results (default from config)")
}

func runFind(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	if len(args) == 0 {
		return fmt.Errorf("at least one ingredient is required")
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	minScore := cfg.Matching.MinMatchScore
	if cmd.Flags().Changed("min-score") {
		if findMinScore < 0 || findMinScore > 1 {
			return fmt.Errorf("--min-score must be between 0 and 1")
		}
		minScore = findMinScore
	}

	limit := cfg.Matching.MaxResults
	if findLimit > 0 {
		limit = findLimit
	}

	store, err := catalog.Open(cfg.Catalog.Path)
	if err != nil {
		return fmt.Errorf("failed to open catalog: %w", err)
	}
	defer store.Close()

	recipes, err := store.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list recipes: %w", err)
	}

	matches := cfg.Engine().FindRecipes(args, recipes, minScore)
	if len(matches) > limit {
		matches = matches[:limit]
	}

	return output.Output(outputFmt, matches)
}
