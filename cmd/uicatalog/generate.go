package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gnana997/uicatalog/pkg/catalog"
)

var (
	generateProps     []string
	generatePropsJSON string
)

var generateCmd = &cobra.Command{
	Use:   "generate <name>",
	Short: "Print an import and usage snippet for a component",
	Long: `Print an import statement and a usage tag for a component.

Props keep the order they are given in. --props is applied first, then each
--prop in turn. A --prop value that parses as JSON (numbers, true, false,
null, arrays, objects) is used as that value; anything else is a string.

Examples:
  uicatalog generate Button
  uicatalog generate Button --prop variant=primary --prop size=s --prop wide=true
  uicatalog generate Table --props '{"fixedHead":true,"layout":"fixed"}'`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		props, err := buildProps(generatePropsJSON, generateProps)
		if err != nil {
			return err
		}

		qs, err := openQueryService()
		if err != nil {
			return err
		}
		code, err := qs.GenerateComponentCode(args[0], props)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), code)
		return nil
	},
}

// buildProps merges a JSON object and key=value pairs into ordered props.
func buildProps(propsJSON string, pairs []string) (*catalog.Props, error) {
	props, err := catalog.ParseProps([]byte(propsJSON))
	if err != nil {
		return nil, err
	}
	for _, pair := range pairs {
		key, raw, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid --prop %q (want key=value)", pair)
		}
		props.Set(key, parsePropValue(raw))
	}
	return props, nil
}

// parsePropValue reads a --prop value as JSON when it is JSON, else as a string.
func parsePropValue(raw string) any {
	if v, err := catalog.DecodePropValue([]byte(raw)); err == nil {
		return v
	}
	return raw
}

func init() {
	generateCmd.Flags().StringArrayVar(&generateProps, "prop", nil, "prop as key=value (repeatable, order kept)")
	generateCmd.Flags().StringVar(&generatePropsJSON, "props", "", "props as a JSON object (key order kept)")
	rootCmd.AddCommand(generateCmd)
}
