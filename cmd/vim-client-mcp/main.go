// vim-client-mcp exposes a running Vim server to MCP clients over stdio.
//
// Example (Claude Code):
//
//	claude mcp add vim -- vim-client-mcp
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/term"

	"github.com/jamescherti/vim-client/internal/config"
	"github.com/jamescherti/vim-client/internal/mcp"
)

func main() {
	if term.IsTerminal(int(os.Stdin.Fd())) {
		log.Println("vim-client-mcp speaks MCP over stdio and is meant to be launched by an MCP client")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	server := mcp.NewServer(cfg)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	if err := server.Run(ctx); err != nil {
		log.Fatalf("MCP server error: %v", err)
	}
}
