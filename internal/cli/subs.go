package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Lillian-Frost/mchop/internal/config"
	"github.com/Lillian-Frost/mchop/internal/output"
)

var subsCmd = &cobra.Command{
	Use:   "subs [ingredients...]",
	Short: "Suggest substitutions for ingredients",
	Long: `Suggest substitutes for ingredients you don't have.

Ingredients with no known substitutes are left out of the result;
finding none at all is a normal outcome, not an error.

Examples:
  mchop subs "parmesan cheese"
  mchop subs butter milk eggs -o json`,
	RunE: runSubs,
}

func init() {
	rootCmd.AddCommand(subsCmd)
}

func runSubs(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("at least one ingredient is required")
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	eng := cfg.Engine()
	subs := make(map[string][]string)
	for _, ing := range args {
		if s := eng.Substitutions(ing); len(s) > 0 {
			subs[ing] = s
		}
	}

	return output.Output(outputFmt, subs)
}
