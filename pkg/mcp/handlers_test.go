package mcp

import (
	"bufio"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gnana997/uicatalog/pkg/catalog"
	"github.com/gnana997/uicatalog/pkg/mcplog"
)

// --- helpers ---

func testServer(t *testing.T, toolLog *mcplog.Logger) *Server {
	t.Helper()
	idx, err := catalog.NewIndex([]catalog.ComponentRecord{
		{Name: "AnchorButton", Category: catalog.CategoryButton, Description: catalog.StringPtr("Link styled as a button")},
		{Name: "Button", Category: catalog.CategoryButton, Description: catalog.StringPtr("Clickable button"), HasStorybook: true},
		{Name: "OldButton", Category: catalog.CategoryButton, Description: catalog.StringPtr("@deprecated use Button"), Deprecated: true},
		{Name: "ActionDialog", Category: catalog.CategoryDialog},
		{Name: "ExperimentalChart", Category: catalog.CategoryExperimental, Description: catalog.StringPtr("Chart preview")},
		{Name: "Tooltip", Category: catalog.CategoryFeedback, Description: catalog.StringPtr("Hover <hint>")},
	})
	require.NoError(t, err)
	qs, err := catalog.NewQueryService(idx)
	require.NoError(t, err)
	return NewServer(qs, nil, toolLog)
}

func makeRequest(toolName string, args map[string]any) mcp.CallToolRequest {
	var arguments any
	if args != nil {
		arguments = args
	}
	return mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Name:      toolName,
			Arguments: arguments,
		},
	}
}

func callTool(t *testing.T, s *Server, name string, args map[string]any) *mcp.CallToolResult {
	t.Helper()
	tool := s.mcpServer.GetTool(name)
	require.NotNil(t, tool, "tool %s not registered", name)

	result, err := tool.Handler(context.Background(), makeRequest(name, args))
	require.NoError(t, err)
	require.NotNil(t, result)
	return result
}

func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	require.NotEmpty(t, result.Content)
	textContent, ok := result.Content[0].(mcp.TextContent)
	require.True(t, ok, "expected TextContent, got %T", result.Content[0])
	return textContent.Text
}

func resultNames(t *testing.T, result *mcp.CallToolResult) []string {
	t.Helper()
	require.False(t, result.IsError, resultText(t, result))
	var infos []catalog.ComponentInfo
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &infos))
	out := make([]string, len(infos))
	for i, info := range infos {
		out[i] = info.Name
	}
	return out
}

// rpc sends one JSON-RPC request through the full server stack.
func rpc(t *testing.T, s *Server, method string, params any) map[string]any {
	t.Helper()
	msg, err := json.Marshal(map[string]any{
		"jsonrpc": "2.0",
		"id":      1,
		"method":  method,
		"params":  params,
	})
	require.NoError(t, err)

	resp := s.mcpServer.HandleMessage(context.Background(), msg)
	require.NotNil(t, resp)
	raw, err := json.Marshal(resp)
	require.NoError(t, err)

	var out map[string]any
	require.NoError(t, json.Unmarshal(raw, &out))
	return out
}

// --- registration ---

func TestServer_RegistersTools(t *testing.T) {
	s := testServer(t, nil)
	tools := s.mcpServer.ListTools()
	for _, name := range []string{
		"list_components", "search_components", "get_component",
		"list_components_by_category", "generate_component_code", "list_categories",
	} {
		assert.Contains(t, tools, name)
	}
	assert.Len(t, tools, 6)
}

// --- list_components ---

func TestHandleListComponents_Default(t *testing.T) {
	s := testServer(t, nil)
	got := resultNames(t, callTool(t, s, "list_components", nil))
	assert.Equal(t, []string{"AnchorButton", "Button", "ActionDialog", "Tooltip"}, got)
}

func TestHandleListComponents_Flags(t *testing.T) {
	s := testServer(t, nil)
	got := resultNames(t, callTool(t, s, "list_components", map[string]any{
		"include_experimental": true,
		"include_deprecated":   true,
	}))
	assert.Len(t, got, 6)
}

func TestHandleListComponents_Categories(t *testing.T) {
	s := testServer(t, nil)

	got := resultNames(t, callTool(t, s, "list_components", map[string]any{
		"categories": []any{"Dialog", "Feedback"},
	}))
	assert.Equal(t, []string{"ActionDialog", "Tooltip"}, got)

	got = resultNames(t, callTool(t, s, "list_components", map[string]any{
		"categories": []any{},
	}))
	assert.Empty(t, got)
}

func TestHandleListComponents_InvalidCategory(t *testing.T) {
	s := testServer(t, nil)
	result := callTool(t, s, "list_components", map[string]any{"categories": []any{"Widgets"}})
	assert.True(t, result.IsError)
	assert.Contains(t, resultText(t, result), "invalid category")
}

// --- search_components ---

func TestHandleSearchComponents(t *testing.T) {
	s := testServer(t, nil)

	got := resultNames(t, callTool(t, s, "search_components", map[string]any{"query": "BUTTON"}))
	assert.Equal(t, []string{"AnchorButton", "Button"}, got, "deprecated components are never searched")

	got = resultNames(t, callTool(t, s, "search_components", map[string]any{"query": "chart"}))
	assert.Equal(t, []string{"ExperimentalChart"}, got)

	got = resultNames(t, callTool(t, s, "search_components", map[string]any{"query": "nothing-matches"}))
	assert.Empty(t, got)
}

func TestHandleSearchComponents_MissingQuery(t *testing.T) {
	s := testServer(t, nil)
	result := callTool(t, s, "search_components", nil)
	assert.True(t, result.IsError)
}

func TestHandleSearchComponents_NoHTMLEscaping(t *testing.T) {
	s := testServer(t, nil)
	text := resultText(t, callTool(t, s, "search_components", map[string]any{"query": "hint"}))
	assert.Contains(t, text, "Hover <hint>")
	assert.Contains(t, text, "\n  {", "two-space indentation")
}

// --- get_component ---

func TestHandleGetComponent(t *testing.T) {
	s := testServer(t, nil)
	result := callTool(t, s, "get_component", map[string]any{"name": "OldButton"})
	require.False(t, result.IsError)

	var detail map[string]any
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &detail))
	assert.Equal(t, "OldButton", detail["name"])
	assert.Equal(t, "OldButton", detail["displayName"])
	assert.Equal(t, true, detail["deprecated"])
	assert.Equal(t, "smarthr-ui", detail["exportPath"])
	assert.Equal(t, []any{}, detail["props"])
	assert.Equal(t, []any{}, detail["examples"])
	assert.Equal(t, []any{}, detail["dependencies"])
}

func TestHandleGetComponent_NotFound(t *testing.T) {
	s := testServer(t, nil)
	result := callTool(t, s, "get_component", map[string]any{"name": "button"})
	assert.True(t, result.IsError)
	assert.Equal(t, "Component button not found", resultText(t, result))
}

// --- list_components_by_category ---

func TestHandleListComponentsByCategory(t *testing.T) {
	s := testServer(t, nil)

	got := resultNames(t, callTool(t, s, "list_components_by_category", map[string]any{"category": "Button"}))
	assert.Equal(t, []string{"AnchorButton", "Button"}, got)

	got = resultNames(t, callTool(t, s, "list_components_by_category", map[string]any{"category": "Experimental"}))
	assert.Empty(t, got)
}

func TestHandleListComponentsByCategory_Invalid(t *testing.T) {
	s := testServer(t, nil)

	result := callTool(t, s, "list_components_by_category", map[string]any{"category": "button"})
	assert.True(t, result.IsError, "enum values are case-sensitive")

	result = callTool(t, s, "list_components_by_category", nil)
	assert.True(t, result.IsError)
}

// --- generate_component_code ---

func TestHandleGenerateComponentCode(t *testing.T) {
	s := testServer(t, nil)
	result := callTool(t, s, "generate_component_code", map[string]any{
		"component": "Button",
		"props": map[string]any{
			"size":     "s",
			"wide":     true,
			"disabled": false,
			"count":    3,
		},
	})
	require.False(t, result.IsError)
	assert.Equal(t,
		"import { Button } from 'smarthr-ui'\n\n// Usage example\n<Button count={3} disabled={false} size=\"s\" wide />",
		resultText(t, result))
}

func TestHandleGenerateComponentCode_NoProps(t *testing.T) {
	s := testServer(t, nil)
	for _, args := range []map[string]any{
		{"component": "Tooltip"},
		{"component": "Tooltip", "props": nil},
		{"component": "Tooltip", "props": map[string]any{}},
	} {
		result := callTool(t, s, "generate_component_code", args)
		require.False(t, result.IsError)
		assert.Equal(t, "import { Tooltip } from 'smarthr-ui'\n\n// Usage example\n<Tooltip />", resultText(t, result))
	}
}

func TestHandleGenerateComponentCode_Errors(t *testing.T) {
	s := testServer(t, nil)

	result := callTool(t, s, "generate_component_code", map[string]any{"component": "Nope"})
	assert.True(t, result.IsError)
	assert.Equal(t, "Component Nope not found", resultText(t, result))

	result = callTool(t, s, "generate_component_code", nil)
	assert.True(t, result.IsError)

	result = callTool(t, s, "generate_component_code", map[string]any{"component": "Button", "props": []any{"x"}})
	assert.True(t, result.IsError)
}

// --- list_categories ---

func TestHandleListCategories(t *testing.T) {
	s := testServer(t, nil)
	result := callTool(t, s, "list_categories", nil)
	require.False(t, result.IsError)

	var counts []catalog.CategoryCount
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &counts))
	require.Len(t, counts, len(catalog.AllCategories()))
	assert.Equal(t, catalog.CategoryButton, counts[0].Category)
	assert.Equal(t, 2, counts[0].Count)
	for _, c := range counts {
		if c.Category == catalog.CategoryExperimental {
			assert.Zero(t, c.Count)
		}
	}
}

// --- resources ---

func readResource(t *testing.T, s *Server, uri string) map[string]any {
	t.Helper()
	return rpc(t, s, "resources/read", map[string]any{"uri": uri})
}

func TestResource_Components(t *testing.T) {
	s := testServer(t, nil)
	resp := readResource(t, s, "smarthr-ui://components")
	require.Contains(t, resp, "result")

	contents := resp["result"].(map[string]any)["contents"].([]any)
	require.Len(t, contents, 1)
	first := contents[0].(map[string]any)
	assert.Equal(t, "application/json", first["mimeType"])

	var infos []catalog.ComponentInfo
	require.NoError(t, json.Unmarshal([]byte(first["text"].(string)), &infos))
	assert.Len(t, infos, 4)
}

func TestResource_Component(t *testing.T) {
	s := testServer(t, nil)
	resp := readResource(t, s, "smarthr-ui://components/Button")
	require.Contains(t, resp, "result")

	contents := resp["result"].(map[string]any)["contents"].([]any)
	require.Len(t, contents, 1)
	first := contents[0].(map[string]any)
	assert.Equal(t, "smarthr-ui://components/Button", first["uri"])

	var detail catalog.ComponentDetail
	require.NoError(t, json.Unmarshal([]byte(first["text"].(string)), &detail))
	assert.Equal(t, "Button", detail.Name)
	assert.True(t, detail.HasStorybook)
}

func TestResource_ComponentNotFound(t *testing.T) {
	s := testServer(t, nil)
	resp := readResource(t, s, "smarthr-ui://components/Missing")
	require.Contains(t, resp, "error")
	assert.Contains(t, resp["error"].(map[string]any)["message"], "Component Missing not found")
}

func TestHandleComponentResource_DirectStringArgument(t *testing.T) {
	s := testServer(t, nil)
	req := mcp.ReadResourceRequest{}
	req.Params.URI = "smarthr-ui://components/Tooltip"
	req.Params.Arguments = map[string]any{"name": "Tooltip"}

	contents, err := s.handleComponentResource(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, contents, 1)
}

// --- full stack ---

func TestToolCall_ThroughMiddleware(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tools.jsonl")
	toolLog, err := mcplog.NewLogger(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = toolLog.Close() })

	s := testServer(t, toolLog)

	resp := rpc(t, s, "tools/call", map[string]any{
		"name":      "generate_component_code",
		"arguments": map[string]any{"component": "Button", "props": map[string]any{"wide": true, "size": "s"}},
	})
	require.Contains(t, resp, "result")
	content := resp["result"].(map[string]any)["content"].([]any)
	// Over MCP the props object arrives as a Go map, so attributes come out in key order.
	assert.Equal(t,
		"import { Button } from 'smarthr-ui'\n\n// Usage example\n<Button size=\"s\" wide />",
		content[0].(map[string]any)["text"])

	resp = rpc(t, s, "tools/call", map[string]any{
		"name":      "get_component",
		"arguments": map[string]any{"name": "Missing"},
	})
	assert.Equal(t, true, resp["result"].(map[string]any)["isError"])

	require.NoError(t, toolLog.Close())
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	var entries []mcplog.Entry
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		var e mcplog.Entry
		require.NoError(t, json.Unmarshal(sc.Bytes(), &e))
		entries = append(entries, e)
	}
	require.Len(t, entries, 2)
	assert.Equal(t, "generate_component_code", entries[0].Tool)
	assert.Equal(t, float64(2), entries[0].Params["props_keys"])
	assert.False(t, entries[0].IsError)
	assert.Equal(t, "get_component", entries[1].Tool)
	assert.True(t, entries[1].IsError)
	require.NotNil(t, entries[1].Error)
	assert.Equal(t, "Component Missing not found", *entries[1].Error)
}
