package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create default configuration file",
	RunE:  runConfigInit,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Display current configuration",
	RunE:  runConfigShow,
}

func init() {
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("failed to get home directory: %w", err)
	}

	configDir := filepath.Join(home, ".config", "mchop")
	dataDir := filepath.Join(home, ".local", "share", "mchop")

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	configFile := filepath.Join(configDir, "config.toml")

	if _, err := os.Stat(configFile); err == nil {
		fmt.Printf("Config file already exists at %s\n", configFile)
		fmt.Println("Use 'mchop config show' to view current configuration")
		return nil
	}

	if err := os.WriteFile(configFile, []byte(defaultConfig), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	fmt.Printf("Created config file at %s\n", configFile)
	fmt.Println()
	fmt.Println("The catalog is created and seeded with starter recipes on first use.")
	fmt.Println("Try:")
	fmt.Println("  mchop find garlic \"olive oil\" spaghetti")
	fmt.Println("  mchop import my-recipes.json")

	return nil
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			fmt.Println("No config file found; defaults are in effect.")
			fmt.Println("Run 'mchop config init' to create one.")
			return nil
		}
		return fmt.Errorf("failed to read config: %w", err)
	}

	fmt.Printf("# Config file: %s\n\n", configPath)
	fmt.Println(string(data))
	return nil
}

const defaultConfig = `# mchop configuration

[catalog]
path = "~/.local/share/mchop/catalog.db"

[matching]
match_threshold = 0.6        # fuzzy ingredient match cutoff (0.0-1.0)
substitution_threshold = 0.8 # fuzzy substitution lookup cutoff (0.0-1.0)
min_match_score = 0.3        # hide recipes matching less than this
max_results = 10

[mcp]
enabled = true
transport = "stdio"

# Extra substitution table entries, appended after the built-in table.
#
# [[substitutions]]
# ingredient = "gochujang"
# substitutes = ["sriracha with miso", "sambal oelek"]

# Extra aliases mapping alternate names to substitution table keys.
#
# [[aliases]]
# alias = "korean chili paste"
# ingredient = "gochujang"
`
