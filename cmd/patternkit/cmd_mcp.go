package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	mcpserver "github.com/mark3labs/mcp-go/server"

	pkmcp "github.com/ajitpratap0/patternkit/internal/mcp"
)

func mcpCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "Start the MCP (Model Context Protocol) server over stdio",
		Long: `Starts an MCP JSON-RPC 2.0 server that reads from stdin and writes to stdout.
All diagnostic logs go to stderr so that stdout remains exclusively MCP protocol traffic.

Tools exposed:
  list_prototypes     list registered types per kind
  get_prototype       show a registered prototype
  clone_prototype     mint an independent copy of a prototype
  register_prototype  add or replace a prototype from JSON`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger := newLogger()

			cat, err := newCatalog(logger)
			if err != nil {
				return fmt.Errorf("mcp: %w", err)
			}

			srv := pkmcp.NewServer(cat, logger)

			// Use a standard log.Logger pointing at stderr for the mcp-go error logger.
			errLogger := log.New(os.Stderr, "mcp: ", log.LstdFlags)

			logger.Info("mcp: patternkit MCP server starting", "transport", "stdio")

			return mcpserver.ServeStdio(
				srv.MCPServer(),
				mcpserver.WithErrorLogger(errLogger),
			)
		},
	}

	return cmd
}
