package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/gnana997/uicatalog/pkg/catalog"
)

func listComponentsTool() mcp.Tool {
	return mcp.NewTool("list_components",
		mcp.WithDescription("List UI components. Experimental and deprecated components are hidden unless requested."),
		mcp.WithBoolean("include_experimental",
			mcp.Description("Include Experimental components"),
			mcp.DefaultBool(false),
		),
		mcp.WithBoolean("include_deprecated",
			mcp.Description("Include components whose description carries @deprecated"),
			mcp.DefaultBool(false),
		),
		mcp.WithArray("categories",
			mcp.Description("Restrict to these categories"),
			mcp.WithStringItems(mcp.Enum(catalog.CategoryNames()...)),
		),
		mcp.WithReadOnlyHintAnnotation(true),
	)
}

func searchComponentsTool() mcp.Tool {
	return mcp.NewTool("search_components",
		mcp.WithDescription("Search UI components by name, category, or description"),
		mcp.WithString("query",
			mcp.Description("Search query (case-insensitive substring)"),
			mcp.Required(),
		),
		mcp.WithReadOnlyHintAnnotation(true),
	)
}

func getComponentTool() mcp.Tool {
	return mcp.NewTool("get_component",
		mcp.WithDescription("Get detailed information about a specific UI component"),
		mcp.WithString("name",
			mcp.Description("Component name"),
			mcp.Required(),
		),
		mcp.WithReadOnlyHintAnnotation(true),
	)
}

func listComponentsByCategoryTool() mcp.Tool {
	return mcp.NewTool("list_components_by_category",
		mcp.WithDescription("List all components in a specific category"),
		mcp.WithString("category",
			mcp.Description("Component category"),
			mcp.Enum(catalog.CategoryNames()...),
			mcp.Required(),
		),
		mcp.WithReadOnlyHintAnnotation(true),
	)
}

func generateComponentCodeTool() mcp.Tool {
	return mcp.NewTool("generate_component_code",
		mcp.WithDescription("Generate usage code for a UI component with specified props"),
		mcp.WithString("component",
			mcp.Description("Component name"),
			mcp.Required(),
		),
		mcp.WithObject("props",
			mcp.Description("Component props as key-value pairs"),
		),
		mcp.WithReadOnlyHintAnnotation(true),
	)
}

func listCategoriesTool() mcp.Tool {
	return mcp.NewTool("list_categories",
		mcp.WithDescription("List every category with the number of non-experimental, non-deprecated components in it"),
		mcp.WithReadOnlyHintAnnotation(true),
	)
}
