// Command uicatalog builds a component index from a UI library source tree
// and serves it to coding agents over MCP.
package main

import (
	"fmt"
	"os"
)

func main() {
	os.Exit(run())
}

// run executes the root command and returns the process exit code.
func run() int {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		return 1
	}
	return 0
}
