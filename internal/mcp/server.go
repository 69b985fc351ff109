// Package mcp exposes workspace placement as MCP tools over stdio, so
// agents can drive focus, moves, and the output mapping through the same
// reconciler the CLI uses.
package mcp

import (
	"context"
	"log/slog"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/swayws/swayws/internal/reconcile"
	"github.com/swayws/swayws/internal/state"
	"github.com/swayws/swayws/internal/sway"
)

const (
	ServerName    = "swayws"
	ServerVersion = "0.1.0"
)

// Server is the MCP server. Each tool call operates on a fresh snapshot so
// the compositor state is re-observed per request.
type Server struct {
	mcpServer *mcpsdk.Server
	ipc       sway.IPC
	store     *state.Store
	logger    *slog.Logger
}

// NewServer creates an MCP server on top of an established compositor
// connection and the state store.
func NewServer(ipc sway.IPC, store *state.Store, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{ipc: ipc, store: store, logger: logger}
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

// Run serves on stdio, blocking until done.
func (s *Server) Run(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcpsdk.StdioTransport{})
}

// reconciler builds a per-call reconciler over a fresh snapshot.
func (s *Server) reconciler() *reconcile.Reconciler {
	client := sway.NewClient(s.ipc)
	snap := sway.NewSnapshot(s.ipc)
	return reconcile.New(client, snap, s.store, s.logger)
}

func (s *Server) registerTools() {
	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "focus_workspace",
		Description: "Focus a workspace by number and/or name. If the workspace does not exist and its number is mapped to an output, it is created on that output. Number 0 means no number was given.",
	}, s.handleFocusWorkspace)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "move_to_workspace",
		Description: "Move the focused container to a workspace by number and/or name. A workspace created by the move is relocated to its mapped output. Number 0 means no number was given.",
	}, s.handleMoveToWorkspace)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "set_mapping",
		Description: "Declare which workspace numbers belong on which outputs. Each assignment has the form OUTPUT:N, OUTPUT:N,M,... or OUTPUT:A-B, where OUTPUT is an output name or 'make model serial' identifier. Assignments for disconnected outputs are skipped.",
	}, s.handleSetMapping)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "apply_mapping",
		Description: "Move every existing workspace onto the output claiming its number, fill mapped outputs that would be left empty, and restore the focused workspace.",
	}, s.handleApplyMapping)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "list_workspaces",
		Description: "List the current workspaces with their numbers, names, outputs, and focus state.",
	}, s.handleListWorkspaces)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "list_outputs",
		Description: "List the connected outputs with their names, identifiers, and focus state.",
	}, s.handleListOutputs)
}
