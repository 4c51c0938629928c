package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/gnana997/uicatalog/pkg/catalog"
	"github.com/gnana997/uicatalog/pkg/scanner"
)

var (
	indexOutput  string
	indexExclude []string
)

var indexCmd = &cobra.Command{
	Use:   "index [source-root]",
	Short: "Scan a component source tree and write the index",
	Long: `Scan a component library source tree and write the component index.

Every directory holding index.ts, index.tsx, <dir>.tsx or <dir>.ts is a
component. The index is replaced atomically, never merged.

The source root defaults to source_root from the config file.

Examples:
  uicatalog index ./smarthr-ui/packages/smarthr-ui/src/components
  uicatalog index src/components -o catalogs/smarthr/components.json
  uicatalog index src --exclude '**/internal/**'`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		root := cfg.sourceRoot
		if len(args) == 1 {
			root = args[0]
		}
		if root == "" {
			return errors.New("no source root: pass a directory or set source_root in the config file")
		}
		out := firstNonEmpty(indexOutput, cfg.indexPath)

		scanCfg := scanner.DefaultScanConfig()
		scanCfg.Exclude = append(scanCfg.Exclude, indexExclude...)

		b := scanner.NewBuilder(logger, scanner.WithScanConfig(scanCfg))
		defer func() { _ = b.Close() }()

		result, err := b.Build(root)
		if err != nil {
			return err
		}
		return writeIndex(cmd.OutOrStdout(), cmd.ErrOrStderr(), out, result)
	},
}

func writeIndex(stdout, stderr io.Writer, path string, result *scanner.BuildResult) error {
	if err := catalog.WriteIndexFile(path, result.Records); err != nil {
		return err
	}
	fmt.Fprintf(stdout, "indexed %d components into %s\n", len(result.Records), path)
	for _, d := range result.Duplicates {
		fmt.Fprintf(stderr, "warning: duplicate component %s at %s (kept %s)\n", d.Name, d.Skipped, d.Kept)
	}
	return nil
}

func init() {
	indexCmd.Flags().StringVarP(&indexOutput, "output", "o", "", "index file to write (default: the configured index path)")
	indexCmd.Flags().StringArrayVar(&indexExclude, "exclude", nil, "additional doublestar pattern to exclude (repeatable)")
	rootCmd.AddCommand(indexCmd)
}
