package main

import (
	"github.com/spf13/cobra"

	mcpserver "github.com/gnana997/uicatalog/pkg/mcp"
	"github.com/gnana997/uicatalog/pkg/mcplog"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the component index over MCP on stdio",
	Long: `Start an MCP server on stdin/stdout.

The index is loaded once at startup; a malformed index is fatal. Logs go to
stderr. With --tool-log every tool call is appended as one JSON line.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		qs, err := openQueryService()
		if err != nil {
			return err
		}

		toolLog, err := mcplog.NewLogger(cfg.toolLog)
		if err != nil {
			return err
		}
		defer func() { _ = toolLog.Close() }()

		return mcpserver.NewServer(qs, logger, toolLog).ServeStdio()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
