package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gnana997/uicatalog/pkg/classify"
)

var classifyCmd = &cobra.Command{
	Use:   "classify <name>...",
	Short: "Show which category the built-in rules assign to component names",
	Long: `Classify component names without scanning anything, and show which
stage of the rule chain decided (exact, prefix, marker, keyword, fallback).

Examples:
  uicatalog classify FormDialog StepFormDialog SaveBtn`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c := classify.NewDefault()
		w := cmd.OutOrStdout()
		for _, name := range args {
			d := c.Explain(name)
			line := fmt.Sprintf("%s\t%s\t%s", name, d.Category, d.Stage)
			if d.Matched != "" {
				line += "\t" + d.Matched
			}
			fmt.Fprintln(w, line)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(classifyCmd)
}
