package main

import (
	"github.com/spf13/cobra"

	"github.com/gnana997/uicatalog/pkg/catalog"
)

var (
	listExperimental bool
	listDeprecated   bool
	listCategories   []string
	showHuman        bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List components as JSON",
	Long: `List components as JSON in index order.

Experimental and deprecated components are hidden unless requested.

Examples:
  uicatalog list
  uicatalog list --category Button --category dialog
  uicatalog list --experimental --deprecated`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := catalog.DiscoveryOptions{
			IncludeExperimental: listExperimental,
			IncludeDeprecated:   listDeprecated,
		}
		if cmd.Flags().Changed("category") {
			opts.Categories = make([]catalog.Category, 0, len(listCategories))
			for _, name := range listCategories {
				c, err := catalog.ParseCategoryFold(name)
				if err != nil {
					return err
				}
				opts.Categories = append(opts.Categories, c)
			}
		}

		qs, err := openQueryService()
		if err != nil {
			return err
		}
		return writeJSON(cmd.OutOrStdout(), qs.DiscoverComponents(opts))
	},
}

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search components by name, category or description",
	Long: `Case-insensitive substring search over name, category and description.
Experimental components are included; deprecated ones never are.

Examples:
  uicatalog search button
  uicatalog search ダイアログ`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		qs, err := openQueryService()
		if err != nil {
			return err
		}
		return writeJSON(cmd.OutOrStdout(), qs.SearchComponents(args[0]))
	},
}

var showCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Show one component",
	Long: `Show one component by exact, case-sensitive name. Deprecated and
experimental components are found too.

Examples:
  uicatalog show Button
  uicatalog show Button --human`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		qs, err := openQueryService()
		if err != nil {
			return err
		}
		detail, ok := qs.GetComponent(args[0])
		if !ok {
			return &catalog.NotFoundError{Name: args[0]}
		}
		if showHuman {
			printComponentHuman(cmd.OutOrStdout(), detail)
			return nil
		}
		return writeJSON(cmd.OutOrStdout(), detail)
	},
}

var categoryCmd = &cobra.Command{
	Use:   "category <category>",
	Short: "List the components of one category",
	Long: `List the non-experimental, non-deprecated components of one category.
The category name is matched case-insensitively.

Examples:
  uicatalog category Dialog`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := catalog.ParseCategoryFold(args[0])
		if err != nil {
			return err
		}
		qs, err := openQueryService()
		if err != nil {
			return err
		}
		return writeJSON(cmd.OutOrStdout(), qs.GetComponentsByCategory(c.String()))
	},
}

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List every category with its component count",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		qs, err := openQueryService()
		if err != nil {
			return err
		}
		return writeJSON(cmd.OutOrStdout(), qs.CategoryCounts(catalog.DiscoveryOptions{}))
	},
}

func init() {
	listCmd.Flags().BoolVar(&listExperimental, "experimental", false, "include Experimental components")
	listCmd.Flags().BoolVar(&listDeprecated, "deprecated", false, "include deprecated components")
	listCmd.Flags().StringArrayVar(&listCategories, "category", nil, "restrict to a category (repeatable)")

	showCmd.Flags().BoolVar(&showHuman, "human", false, "print a readable summary instead of JSON")

	rootCmd.AddCommand(listCmd, searchCmd, showCmd, categoryCmd, categoriesCmd)
}
