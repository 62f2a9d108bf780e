// Package server exposes the tracker over the Model Context Protocol so
// agents can query status and summaries without shelling out.
package server

import (
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/ParkerVR/sith/internal/config"
	"github.com/ParkerVR/sith/internal/store"
	"github.com/ParkerVR/sith/internal/tracker"
)

// Config holds MCP server configuration.
type Config struct {
	Transport string
	Port      int
	DataDir   string
}

// Server wraps the MCP server with the tracker's config, store, and an
// optional OS poller.
type Server struct {
	cfg     config.Config
	dataDir string
	st      *store.Store
	poller  *tracker.Poller
	now     func() time.Time

	mcp *mcpserver.MCPServer
}

// New creates and configures an MCP server with all sith tools. poller may
// be nil on platforms without a watcher; the status tool then reports the
// unknown app.
func New(cfg config.Config, dataDir string, st *store.Store, poller *tracker.Poller) *Server {
	s := &Server{
		cfg:     cfg,
		dataDir: dataDir,
		st:      st,
		poller:  poller,
		now:     time.Now,
	}

	s.mcp = mcpserver.NewMCPServer("sith", "1.0.0")
	s.registerTools()
	return s
}

// Serve starts the MCP server with the configured transport.
func (s *Server) Serve(cfg Config) error {
	switch cfg.Transport {
	case "stdio":
		return mcpserver.ServeStdio(s.mcp)
	case "streamable-http":
		httpServer := mcpserver.NewStreamableHTTPServer(s.mcp)
		return httpServer.Start(fmt.Sprintf(":%d", cfg.Port))
	default:
		return fmt.Errorf("unsupported transport: %s (use stdio or streamable-http)", cfg.Transport)
	}
}

func (s *Server) registerTools() {
	s.mcp.AddTool(
		mcp.NewTool("status",
			mcp.WithDescription("Current foreground app, idle state, and today's tracked totals"),
		),
		s.handleStatus,
	)

	s.mcp.AddTool(
		mcp.NewTool("summary",
			mcp.WithDescription("Tracked time summaries from the summary file"),
			mcp.WithString("date", mcp.Description("ISO date (default: today)")),
			mcp.WithBoolean("all", mcp.Description("Return every recorded day")),
		),
		s.handleSummary,
	)

	s.mcp.AddTool(
		mcp.NewTool("allowlist",
			mcp.WithDescription("Read or edit the set of apps eligible for time accrual. Edits apply on the tracker's next start."),
			mcp.WithString("action", mcp.Description("get, add, or remove (default: get)")),
			mcp.WithString("app", mcp.Description("App name for add/remove")),
		),
		s.handleAllowlist,
	)

	s.mcp.AddTool(
		mcp.NewTool("config_get",
			mcp.WithDescription("The effective tracker configuration"),
		),
		s.handleConfigGet,
	)
}
