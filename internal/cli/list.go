package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Lillian-Frost/mchop/internal/catalog"
	"github.com/Lillian-Frost/mchop/internal/config"
	"github.com/Lillian-Frost/mchop/internal/output"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all recipes in the catalog",
	Long: `List every recipe in the catalog in catalog order.

Examples:
  mchop list
  mchop list -o json`,
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
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

	return output.Output(outputFmt, recipes)
}
