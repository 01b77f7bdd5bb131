//go:build !windows

package mcp

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/jamescherti/vim-client/internal/config"
	"github.com/jamescherti/vim-client/internal/vim"
)

func installStubVim(t *testing.T) (stubDir string, logPath string) {
	t.Helper()

	dir := t.TempDir()
	logPath = filepath.Join(dir, "vim.log")

	script := `#!/bin/sh
set -eu

if [ -n "${VIM_STUB_LOG:-}" ]; then
  printf '%s\n' "$*" >> "${VIM_STUB_LOG}"
fi

case "${1:-}" in
  --serverlist)
    if [ -n "${VIM_STUB_SERVERLIST:-}" ]; then
      printf '%s\n' "${VIM_STUB_SERVERLIST}"
    fi
    exit 0
    ;;
  --servername)
    shift 2
    if [ "${1:-}" = "--remote-expr" ]; then
      printf '%s\n' "${VIM_STUB_EXPR_OUTPUT:-1024}"
    fi
    exit 0
    ;;
esac
exit 0
`
	if err := os.WriteFile(filepath.Join(dir, "vim"), []byte(script), 0o755); err != nil {
		t.Fatalf("write vim stub: %v", err)
	}

	t.Setenv("PATH", dir)
	t.Setenv("VIM_STUB_LOG", logPath)
	t.Setenv("VIM_STUB_SERVERLIST", "VIM_A\nVIM_B")
	t.Setenv("VIM_STUB_EXPR_OUTPUT", "")

	return dir, logPath
}

func testServer() *Server {
	return NewServer(config.DefaultConfig())
}

func TestHandleListServers(t *testing.T) {
	installStubVim(t)

	_, out, err := testServer().handleListServers(context.Background(), nil, ListServersInput{})
	if err != nil {
		t.Fatalf("vim_list_servers: %v", err)
	}
	if want := []string{"VIM_A", "VIM_B"}; !reflect.DeepEqual(out.Servers, want) {
		t.Fatalf("Servers=%v, want %v", out.Servers, want)
	}
}

func TestHandleListServersEmpty(t *testing.T) {
	installStubVim(t)
	t.Setenv("VIM_STUB_SERVERLIST", "")

	_, out, err := testServer().handleListServers(context.Background(), nil, ListServersInput{})
	if err != nil {
		t.Fatalf("vim_list_servers: %v", err)
	}
	if len(out.Servers) != 0 {
		t.Fatalf("Servers=%v, want empty", out.Servers)
	}
}

func TestHandlePing(t *testing.T) {
	installStubVim(t)

	_, out, err := testServer().handlePing(context.Background(), nil, PingInput{ServerName: "VIM_B"})
	if err != nil {
		t.Fatalf("vim_ping: %v", err)
	}
	if out.ServerName != "VIM_B" || !out.Responding {
		t.Fatalf("PingOutput=%+v", out)
	}
}

func TestHandlePingUnresponsive(t *testing.T) {
	installStubVim(t)
	t.Setenv("VIM_STUB_EXPR_OUTPUT", "garbage")

	_, _, err := testServer().handlePing(context.Background(), nil, PingInput{})
	var unresponsive *vim.ServerUnresponsiveError
	if !errors.As(err, &unresponsive) {
		t.Fatalf("vim_ping error=%v, want ServerUnresponsiveError", err)
	}
}

func TestHandleEval(t *testing.T) {
	installStubVim(t)
	t.Setenv("VIM_STUB_EXPR_OUTPUT", "42")

	_, out, err := testServer().handleEval(context.Background(), nil, EvalInput{Expression: "6*7"})
	if err != nil {
		t.Fatalf("vim_eval: %v", err)
	}
	if want := []string{"42"}; !reflect.DeepEqual(out.Lines, want) {
		t.Fatalf("Lines=%v, want %v", out.Lines, want)
	}
	if out.ServerName != "VIM_A" {
		t.Fatalf("ServerName=%q, want VIM_A (first match)", out.ServerName)
	}
}

func TestHandleEvalRequiresExpression(t *testing.T) {
	installStubVim(t)

	if _, _, err := testServer().handleEval(context.Background(), nil, EvalInput{}); err == nil {
		t.Fatal("vim_eval accepted an empty expression")
	}
}

func TestHandleSend(t *testing.T) {
	_, logPath := installStubVim(t)

	_, out, err := testServer().handleSend(context.Background(), nil, SendInput{Commands: []string{"wincmd p", "tabnext"}})
	if err != nil {
		t.Fatalf("vim_send: %v", err)
	}
	if out.Sent != 2 {
		t.Fatalf("Sent=%d, want 2", out.Sent)
	}

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "execute('wincmd p | tabnext')") {
		t.Fatalf("log missing batch: %s", data)
	}
}

func TestHandleSendRequiresCommands(t *testing.T) {
	installStubVim(t)

	if _, _, err := testServer().handleSend(context.Background(), nil, SendInput{}); err == nil {
		t.Fatal("vim_send accepted an empty batch")
	}
}

func TestHandleEdit(t *testing.T) {
	_, logPath := installStubVim(t)

	in := EditInput{
		Paths:  []string{"a.txt", "b.txt"},
		OpenIn: "tab",
	}
	_, out, err := testServer().handleEdit(context.Background(), nil, in)
	if err != nil {
		t.Fatalf("vim_edit: %v", err)
	}
	if len(out.Opened) != 2 || !filepath.IsAbs(out.Opened[0]) {
		t.Fatalf("Opened=%v, want two absolute paths", out.Opened)
	}

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if got := strings.Count(string(data), "execute('tabnew | "); got != 2 {
		t.Fatalf("tab batches=%d, want 2", got)
	}
}

func TestHandleEditInvalidOpenIn(t *testing.T) {
	installStubVim(t)

	in := EditInput{Paths: []string{"a.txt"}, OpenIn: "floating"}
	_, _, err := testServer().handleEdit(context.Background(), nil, in)
	if !errors.Is(err, vim.ErrInvalidOpenIn) {
		t.Fatalf("vim_edit error=%v, want ErrInvalidOpenIn", err)
	}
}

func TestHandleEditNoServer(t *testing.T) {
	installStubVim(t)
	t.Setenv("VIM_STUB_SERVERLIST", "")

	_, _, err := testServer().handleEdit(context.Background(), nil, EditInput{Paths: []string{"a.txt"}})
	var notFound *vim.ServerNotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("vim_edit error=%v, want ServerNotFoundError", err)
	}
	if !notFound.NoneListening() {
		t.Fatal("NoneListening()=false, want true")
	}
}
