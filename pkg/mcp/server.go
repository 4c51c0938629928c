package mcp

import (
	"log/slog"

	"github.com/mark3labs/mcp-go/server"

	"github.com/gnana997/uicatalog/pkg/catalog"
	"github.com/gnana997/uicatalog/pkg/mcplog"
)

const serverName = "uicatalog"

// Version is reported to MCP clients during initialization.
const Version = "0.1.0"

// Server exposes a component index over MCP: query tools, code generation
// and two read-only resources.
type Server struct {
	mcpServer *server.MCPServer
	query     *catalog.QueryService
	log       *slog.Logger
	toolLog   *mcplog.Logger // nil disables the JSONL tool log
}

// NewServer creates a server backed by qs. logger may be nil; toolLog may be
// nil to disable per-call audit lines.
func NewServer(qs *catalog.QueryService, logger *slog.Logger, toolLog *mcplog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{query: qs, log: logger, toolLog: toolLog}

	s.mcpServer = server.NewMCPServer(
		serverName,
		Version,
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
		server.WithRecovery(),
		server.WithResourceRecovery(),
		server.WithToolHandlerMiddleware(s.loggingMiddleware()),
	)

	s.mcpServer.AddTools(
		server.ServerTool{Tool: listComponentsTool(), Handler: s.handleListComponents},
		server.ServerTool{Tool: searchComponentsTool(), Handler: s.handleSearchComponents},
		server.ServerTool{Tool: getComponentTool(), Handler: s.handleGetComponent},
		server.ServerTool{Tool: listComponentsByCategoryTool(), Handler: s.handleListComponentsByCategory},
		server.ServerTool{Tool: generateComponentCodeTool(), Handler: s.handleGenerateComponentCode},
		server.ServerTool{Tool: listCategoriesTool(), Handler: s.handleListCategories},
	)

	s.mcpServer.AddResource(componentsResource(), s.handleComponentsResource)
	s.mcpServer.AddResourceTemplate(componentResourceTemplate(), s.handleComponentResource)

	return s
}

// ServeStdio starts the MCP server on stdin/stdout and blocks until the
// client disconnects or the process is signalled.
func (s *Server) ServeStdio() error {
	s.log.Info("serving MCP on stdio", "components", s.query.Index().Len(), "export_path", s.query.ExportPath())
	return server.ServeStdio(s.mcpServer)
}

