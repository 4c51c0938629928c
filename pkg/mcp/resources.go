package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/gnana997/uicatalog/pkg/catalog"
)

const (
	componentsURI        = "smarthr-ui://components"
	componentURITemplate = componentsURI + "/{name}"
	jsonMIME             = "application/json"
)

func componentsResource() mcp.Resource {
	return mcp.NewResource(componentsURI, "SmartHR UI Components",
		mcp.WithResourceDescription("List of all available SmartHR UI components"),
		mcp.WithMIMEType(jsonMIME),
	)
}

func componentResourceTemplate() mcp.ResourceTemplate {
	return mcp.NewResourceTemplate(componentURITemplate, "SmartHR UI Component",
		mcp.WithTemplateDescription("Detail of a single component by name"),
		mcp.WithTemplateMIMEType(jsonMIME),
	)
}

func (s *Server) handleComponentsResource(_ context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	text, err := marshalIndent(s.query.DiscoverComponents(catalog.DiscoveryOptions{}))
	if err != nil {
		return nil, err
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{URI: req.Params.URI, MIMEType: jsonMIME, Text: text},
	}, nil
}

func (s *Server) handleComponentResource(_ context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	name := templateArg(req, "name")
	if name == "" {
		name = strings.TrimPrefix(req.Params.URI, componentsURI+"/")
	}

	detail, ok := s.query.GetComponent(name)
	if !ok {
		return nil, &catalog.NotFoundError{Name: name}
	}
	text, err := marshalIndent(detail)
	if err != nil {
		return nil, fmt.Errorf("component %s: %w", name, err)
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{URI: req.Params.URI, MIMEType: jsonMIME, Text: text},
	}, nil
}

// templateArg reads a matched URI template variable. mcp-go stores matches
// as []string; direct callers may pass a plain string.
func templateArg(req mcp.ReadResourceRequest, key string) string {
	switch v := req.Params.Arguments[key].(type) {
	case string:
		return v
	case []string:
		if len(v) > 0 {
			return v[0]
		}
	case []any:
		if len(v) > 0 {
			if s, ok := v[0].(string); ok {
				return s
			}
		}
	}
	return ""
}
