package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/tabula/internal/adapters/driving/mcp"
	"github.com/custodia-labs/tabula/internal/logger"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "MCP server commands",
	Long:  `Commands for the Model Context Protocol (MCP) server integration.`,
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	Long: `Start the Model Context Protocol server for AI assistant integration.

The server offers the get_tab, search_tabs, search_artists and explore_tabs
tools. By default it communicates over stdio using JSON-RPC.

Use --port to start an HTTP server instead. In HTTP mode the server also
exposes Prometheus metrics at /metrics and reloads rate limits when
config.toml changes.

Examples:
  # Stdio mode (default, for desktop assistants)
  tabula mcp serve

  # HTTP mode (for MCP Inspector, remote access)
  tabula mcp serve --port 8080

Assistant configuration:
  {
    "mcpServers": {
      "tabula": {
        "command": "/path/to/tabula",
        "args": ["mcp", "serve"]
      }
    }
  }`,
	RunE: runMCPServe,
}

func init() {
	mcpServeCmd.Flags().IntP("port", "p", 0, "HTTP port (0 = use stdio)")
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}

func runMCPServe(cmd *cobra.Command, _ []string) error {
	port, err := cmd.Flags().GetInt("port")
	if err != nil {
		return fmt.Errorf("getting port flag: %w", err)
	}

	ports := &mcp.Ports{
		Tab:    tabService,
		Search: searchService,
	}
	if port > 0 {
		ports.Metrics = serverHooks.Metrics
	}

	server, err := mcp.NewServer(ports)
	if err != nil {
		return err
	}

	if port > 0 {
		watchConfig(cmd)
		addr := fmt.Sprintf(":%d", port)
		fmt.Fprintf(cmd.OutOrStdout(), "MCP server listening on http://localhost%s\n", addr)
		return server.RunHTTP(cmd.Context(), addr)
	}

	return server.Run(cmd.Context())
}

// watchConfig reloads settings into running components whenever the
// configuration file changes, until the command context is done.
func watchConfig(cmd *cobra.Command) {
	if serverHooks.Watch == nil || serverHooks.Reload == nil || settingsService == nil {
		return
	}

	go func() {
		if err := serverHooks.Watch(cmd.Context(), reloadSettings); err != nil {
			logger.Warn("config watch stopped: %v", err)
		}
	}()
}

func reloadSettings() {
	settings, err := settingsService.Get()
	if err != nil {
		logger.Warn("config reload skipped: %v", err)
		return
	}
	logger.Info("config reloaded")
	serverHooks.Reload(settings)
}
