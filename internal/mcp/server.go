// Package mcp exposes the Vim protocol adapter as an MCP stdio server, so
// MCP clients (agents, IDE assistants) can drive a running Vim instance.
package mcp

import (
	"context"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/jamescherti/vim-client/internal/config"
	"github.com/jamescherti/vim-client/internal/vim"
)

const (
	ServerName    = "vim-client"
	ServerVersion = "0.1.0"
)

// Server is the MCP server wrapping the Vim remote protocol.
type Server struct {
	mcpServer *mcpsdk.Server
	config    *config.Config
}

// NewServer creates an MCP server using cfg for binary candidates and
// server-selection defaults.
func NewServer(cfg *config.Config) *Server {
	s := &Server{config: cfg}
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
		Name:        "vim_list_servers",
		Description: "List the names of all running Vim servers reachable via the Vim binary's --serverlist option. An empty list means no server is listening.",
	}, s.handleListServers)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "vim_ping",
		Description: "Check that a Vim server is alive and evaluating expressions. A server can be advertised yet frozen; this distinguishes the two.",
	}, s.handlePing)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "vim_eval",
		Description: "Evaluate a Vim expression on a running Vim server and return the output lines. Fails when the server produces no output.",
	}, s.handleEval)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "vim_send",
		Description: "Execute a batch of ex commands on a running Vim server as one sequential unit. Partial application inside the batch is not detectable.",
	}, s.handleSend)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "vim_edit",
		Description: "Make a running Vim server open files or directories, optionally in new tabs or splits, with optional working directory and pre/post commands.",
	}, s.handleEdit)
}

// connect binds a fresh adapter for one tool call. The advertised server
// universe is external state that changes between calls and a bound client
// never re-resolves, so each call gets its own.
func (s *Server) connect(pattern string) (*vim.Client, error) {
	if pattern == "" {
		pattern = s.config.ServerName
	}
	if pattern == "" {
		pattern = ".*"
	}
	return vim.New(pattern,
		vim.WithBinaries(s.config.VimBin),
		vim.WithForceTab(s.config.ForceTab),
	)
}
