package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Lillian-Frost/mchop/internal/catalog"
	"github.com/Lillian-Frost/mchop/internal/config"
	"github.com/Lillian-Frost/mchop/internal/output"
)

var showCmd = &cobra.Command{
	Use:   "show <recipe-id>",
	Short: "Show full recipe details",
	Long: `Show a recipe's ingredients and instructions by ID.

Recipe IDs are printed by 'mchop find' and 'mchop list'.`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
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

	r, err := store.Get(ctx, args[0])
	if err != nil {
		return fmt.Errorf("failed to get recipe: %w", err)
	}

	if r == nil {
		fmt.Printf("Recipe not found: %s\n", args[0])
		fmt.Println("Use 'mchop list' to see the catalog.")
		return nil
	}

	return output.Output(outputFmt, r)
}
