package mcp

import (
	"context"
	"sync"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/1broseidon/swmctrl/internal/platform"
)

const (
	ServerName    = "swmctrl"
	ServerVersion = "0.1.0"
)

// Server exposes window listing and activation as MCP tools.
type Server struct {
	mcpServer     *mcpsdk.Server
	backend       platform.Backend
	switchDesktop bool

	// mu serializes backend calls; the X11 client is single-threaded.
	mu sync.Mutex
}

// NewServer creates an MCP server backed by backend. switchDesktop is the
// default for activation requests that do not set it.
func NewServer(backend platform.Backend, switchDesktop bool) *Server {
	s := &Server{
		backend:       backend,
		switchDesktop: switchDesktop,
	}

	s.mcpServer = mcpsdk.NewServer(
		&mcpsdk.Implementation{
			Name:    ServerName,
			Version: ServerVersion,
		},
		nil,
	)

	s.registerTools()
	return s
}

// Run starts the MCP server on stdio transport, blocking until done.
func (s *Server) Run(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcpsdk.StdioTransport{})
}

func (s *Server) registerTools() {
	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "list_windows",
		Description: "List the top-level client windows managed by the X11 window manager, with window id, owning process id and title, in window-manager order.",
	}, s.handleListWindows)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "activate_window",
		Description: "Raise and focus a window by its X11 window id. By default switches to the window's virtual desktop first.",
	}, s.handleActivateWindow)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "activate_pid",
		Description: "Raise and focus the first window owned by a process id. Fails when no managed window belongs to the process.",
	}, s.handleActivatePID)
}
