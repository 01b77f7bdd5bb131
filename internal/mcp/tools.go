package mcp

import (
	"context"
	"fmt"
	"path/filepath"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/jamescherti/vim-client/internal/vim"
)

func (s *Server) handleListServers(_ context.Context, _ *mcpsdk.CallToolRequest, _ ListServersInput) (*mcpsdk.CallToolResult, ListServersOutput, error) {
	bin, err := vim.FindBinary(s.config.VimBin)
	if err != nil {
		return nil, ListServersOutput{}, err
	}
	servers := vim.ListServers(bin)
	if servers == nil {
		servers = []string{}
	}
	return nil, ListServersOutput{Servers: servers}, nil
}

func (s *Server) handlePing(_ context.Context, _ *mcpsdk.CallToolRequest, args PingInput) (*mcpsdk.CallToolResult, PingOutput, error) {
	client, err := s.connect(args.ServerName)
	if err != nil {
		return nil, PingOutput{}, err
	}
	if err := client.Ping(); err != nil {
		return nil, PingOutput{}, err
	}
	return nil, PingOutput{ServerName: client.ServerName, Responding: true}, nil
}

func (s *Server) handleEval(_ context.Context, _ *mcpsdk.CallToolRequest, args EvalInput) (*mcpsdk.CallToolResult, EvalOutput, error) {
	if args.Expression == "" {
		return nil, EvalOutput{}, fmt.Errorf("expression is required")
	}
	client, err := s.connect(args.ServerName)
	if err != nil {
		return nil, EvalOutput{}, err
	}
	lines, err := client.Expr(args.Expression)
	if err != nil {
		return nil, EvalOutput{}, err
	}
	return nil, EvalOutput{ServerName: client.ServerName, Lines: lines}, nil
}

func (s *Server) handleSend(_ context.Context, _ *mcpsdk.CallToolRequest, args SendInput) (*mcpsdk.CallToolResult, SendOutput, error) {
	if len(args.Commands) == 0 {
		return nil, SendOutput{}, fmt.Errorf("commands must not be empty")
	}
	client, err := s.connect(args.ServerName)
	if err != nil {
		return nil, SendOutput{}, err
	}
	if err := client.SendCommands(args.Commands...); err != nil {
		return nil, SendOutput{}, err
	}
	return nil, SendOutput{ServerName: client.ServerName, Sent: len(args.Commands)}, nil
}

func (s *Server) handleEdit(_ context.Context, _ *mcpsdk.CallToolRequest, args EditInput) (*mcpsdk.CallToolResult, EditOutput, error) {
	if len(args.Paths) == 0 {
		return nil, EditOutput{}, fmt.Errorf("paths must not be empty")
	}

	mode := args.OpenIn
	if mode == "" {
		mode = s.config.OpenIn
	}
	openIn, err := vim.ParseOpenIn(mode)
	if err != nil {
		return nil, EditOutput{}, err
	}

	client, err := s.connect(args.ServerName)
	if err != nil {
		return nil, EditOutput{}, err
	}

	opened := make([]string, 0, len(args.Paths))
	for _, p := range args.Paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return nil, EditOutput{}, err
		}
		opened = append(opened, abs)
	}

	req := vim.EditRequest{
		Paths:        opened,
		Cwd:          args.Cwd,
		PreCommands:  append(append([]string(nil), s.config.PreCommands...), args.PreCommands...),
		PostCommands: append(append([]string(nil), args.PostCommands...), s.config.PostCommands...),
		OpenIn:       openIn,
	}
	if err := client.Edit(req); err != nil {
		return nil, EditOutput{}, err
	}
	return nil, EditOutput{ServerName: client.ServerName, Opened: opened}, nil
}
