package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/gnana997/uicatalog/pkg/catalog"
)

// --- list_components ---

func (s *Server) handleListComponents(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	opts := catalog.DiscoveryOptions{
		IncludeExperimental: req.GetBool("include_experimental", false),
		IncludeDeprecated:   req.GetBool("include_deprecated", false),
	}

	if raw := req.GetStringSlice("categories", nil); raw != nil {
		opts.Categories = make([]catalog.Category, 0, len(raw))
		for _, name := range raw {
			c, err := catalog.ParseCategory(name)
			if err != nil {
				return toolError(err)
			}
			opts.Categories = append(opts.Categories, c)
		}
	}

	return jsonResult(s.query.DiscoverComponents(opts))
}

// --- search_components ---

func (s *Server) handleSearchComponents(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := req.RequireString("query")
	if err != nil {
		return toolError(err)
	}
	return jsonResult(s.query.SearchComponents(query))
}

// --- get_component ---

func (s *Server) handleGetComponent(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := req.RequireString("name")
	if err != nil {
		return toolError(err)
	}
	detail, ok := s.query.GetComponent(name)
	if !ok {
		return toolError(&catalog.NotFoundError{Name: name})
	}
	return jsonResult(detail)
}

// --- list_components_by_category ---

func (s *Server) handleListComponentsByCategory(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	raw, err := req.RequireString("category")
	if err != nil {
		return toolError(err)
	}
	c, err := catalog.ParseCategory(raw)
	if err != nil {
		return toolError(err)
	}
	return jsonResult(s.query.GetComponentsByCategory(c.String()))
}

// --- generate_component_code ---

type generateArgs struct {
	Component string          `json:"component"`
	Props     json.RawMessage `json:"props"`
}

func (s *Server) handleGenerateComponentCode(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args generateArgs
	if err := req.BindArguments(&args); err != nil {
		return toolError(fmt.Errorf("invalid arguments: %w", err))
	}
	if args.Component == "" {
		return toolError(fmt.Errorf("required argument %q not found", "component"))
	}

	var props *catalog.Props
	if raw := bytes.TrimSpace(args.Props); len(raw) > 0 && !bytes.Equal(raw, []byte("null")) {
		p, err := catalog.ParseProps(raw)
		if err != nil {
			return toolError(err)
		}
		props = p
	}

	code, err := s.query.GenerateComponentCode(args.Component, props)
	if err != nil {
		return toolError(err)
	}
	return mcp.NewToolResultText(code), nil
}

// --- list_categories ---

func (s *Server) handleListCategories(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return jsonResult(s.query.CategoryCounts(catalog.DiscoveryOptions{}))
}

// --- helpers ---

// toolError reports err to the client as a tool-level failure; the JSON-RPC
// call itself succeeds.
func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	text, err := marshalIndent(v)
	if err != nil {
		return toolError(err)
	}
	return mcp.NewToolResultText(text), nil
}

// marshalIndent renders v as two-space indented JSON without HTML escaping
// or a trailing newline.
func marshalIndent(v any) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return "", fmt.Errorf("failed to encode result: %w", err)
	}
	return string(bytes.TrimSuffix(buf.Bytes(), []byte("\n"))), nil
}
