package main

import (
	"fmt"

	"github.com/spf13/cobra"

	mcpserver "github.com/gnana997/uicatalog/pkg/mcp"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "uicatalog %s\n", mcpserver.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
