package config

import (
	"fmt"

	"github.com/Lillian-Frost/mchop/internal/engine"
)

// Config represents the application configuration
type Config struct {
	Catalog       CatalogConfig       `toml:"catalog"`
	Matching      MatchingConfig      `toml:"matching"`
	MCP           MCPConfig           `toml:"mcp"`
	Substitutions []SubstitutionEntry `toml:"substitutions"`
	Aliases       []AliasEntry        `toml:"aliases"`
}

// CatalogConfig contains recipe catalog settings
type CatalogConfig struct {
	Path string `toml:"path"`
}

// MatchingConfig contains the engine thresholds
type MatchingConfig struct {
	MatchThreshold        float64 `toml:"match_threshold"`
	SubstitutionThreshold float64 `toml:"substitution_threshold"`
	MinMatchScore         float64 `toml:"min_match_score"`
	MaxResults            int     `toml:"max_results"`
}

// MCPConfig contains MCP server settings
type MCPConfig struct {
	Enabled   bool   `toml:"enabled"`
	Transport string `toml:"transport"`
}

// SubstitutionEntry is a user-curated substitution table row, appended
// after the built-in table.
type SubstitutionEntry struct {
	Ingredient  string   `toml:"ingredient"`
	Substitutes []string `toml:"substitutes"`
}

// AliasEntry maps an alternate ingredient name to a substitution table
// key, appended after the built-in aliases.
type AliasEntry struct {
	Alias      string `toml:"alias"`
	Ingredient string `toml:"ingredient"`
}

// Default returns a Config with sensible defaults
func Default() *Config {
	return &Config{
		Catalog: CatalogConfig{
			Path: "~/.local/share/mchop/catalog.db",
		},
		Matching: MatchingConfig{
			MatchThreshold:        engine.DefaultMatchThreshold,
			SubstitutionThreshold: engine.DefaultSubstitutionThreshold,
			MinMatchScore:         engine.DefaultMinMatchScore,
			MaxResults:            engine.DefaultMaxResults,
		},
		MCP: MCPConfig{
			Enabled:   true,
			Transport: "stdio",
		},
	}
}

// Validate checks the configuration for invalid values
func (c *Config) Validate() error {
	if c.Catalog.Path == "" {
		return fmt.Errorf("catalog.path must not be empty")
	}

	check := func(name string, v float64) error {
		if v < 0 || v > 1 {
			return fmt.Errorf("%s must be between 0 and 1, got %v", name, v)
		}
		return nil
	}
	if err := check("matching.match_threshold", c.Matching.MatchThreshold); err != nil {
		return err
	}
	if err := check("matching.substitution_threshold", c.Matching.SubstitutionThreshold); err != nil {
		return err
	}
	if err := check("matching.min_match_score", c.Matching.MinMatchScore); err != nil {
		return err
	}

	if c.Matching.MaxResults < 1 {
		return fmt.Errorf("matching.max_results must be at least 1, got %d", c.Matching.MaxResults)
	}

	for i, s := range c.Substitutions {
		if s.Ingredient == "" {
			return fmt.Errorf("substitutions[%d]: ingredient must not be empty", i)
		}
	}
	for i, a := range c.Aliases {
		if a.Alias == "" || a.Ingredient == "" {
			return fmt.Errorf("aliases[%d]: alias and ingredient must not be empty", i)
		}
	}

	return nil
}

// Engine builds a matching engine from the built-in tables, the
// configured extras, and the configured thresholds.
func (c *Config) Engine() *engine.Engine {
	subs := make([]engine.Substitution, 0, len(engine.DefaultSubstitutions)+len(c.Substitutions))
	subs = append(subs, engine.DefaultSubstitutions...)
	for _, s := range c.Substitutions {
		subs = append(subs, engine.Substitution{Ingredient: s.Ingredient, Substitutes: s.Substitutes})
	}

	aliases := make([]engine.Alias, 0, len(engine.DefaultAliases)+len(c.Aliases))
	aliases = append(aliases, engine.DefaultAliases...)
	for _, a := range c.Aliases {
		aliases = append(aliases, engine.Alias{Name: a.Alias, Base: a.Ingredient})
	}

	return engine.New(subs, aliases, engine.Options{
		MatchThreshold:        c.Matching.MatchThreshold,
		SubstitutionThreshold: c.Matching.SubstitutionThreshold,
	})
}
