package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/Lillian-Frost/mchop/internal/catalog"
	"github.com/Lillian-Frost/mchop/internal/config"
	"github.com/Lillian-Frost/mchop/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP server (stdio transport)",
	Long: `Start the MCP (Model Context Protocol) server using stdio transport.

This allows AI assistants like Claude Desktop to search the recipe catalog
and suggest substitutions.

Add to Claude Desktop config (~/Library/Application Support/Claude/claude_desktop_config.json):

{
  "mcpServers": {
    "mchop": {
      "command": "/path/to/mchop",
      "args": ["mcp"]
    }
  }
}`,
	RunE: runMCP,
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}

func runMCP(cmd *cobra.Command, args []string) error {
	// Load configuration
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Check if MCP is enabled
	if !cfg.MCP.Enabled {
		return fmt.Errorf("MCP server is disabled in config")
	}

	// Open catalog
	store, err := catalog.Open(cfg.Catalog.Path)
	if err != nil {
		return fmt.Errorf("failed to open catalog: %w", err)
	}
	defer store.Close()

	// Create MCP server
	server := mcp.New(store, cfg.Engine(), cfg)

	// Handle interrupt
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt)
	go func() {
		<-sigCh
		cancel()
	}()

	// Run server
	return server.Start(ctx)
}
