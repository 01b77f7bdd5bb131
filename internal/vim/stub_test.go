//go:build !windows

package vim

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// installStubVim writes a shell script that mimics the vim binary's remote
// argument family under each of the given names, puts the directory at the
// front of PATH, and returns the path of the invocation log.
func installStubVim(t *testing.T, names ...string) (stubDir string, logPath string) {
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
    if [ -n "${VIM_STUB_SERVERLIST_EXIT:-}" ]; then
      exit "${VIM_STUB_SERVERLIST_EXIT}"
    fi
    if [ -n "${VIM_STUB_SERVERLIST:-}" ]; then
      printf '%s\n' "${VIM_STUB_SERVERLIST}"
    fi
    exit 0
    ;;
  --servername)
    shift 2
    if [ "${1:-}" = "--remote-expr" ]; then
      if [ -n "${VIM_STUB_EXPR_EXIT:-}" ]; then
        exit "${VIM_STUB_EXPR_EXIT}"
      fi
      if [ -z "${VIM_STUB_EXPR_SILENT:-}" ]; then
        printf '%s\n' "${VIM_STUB_EXPR_OUTPUT-1024}"
      fi
    fi
    exit 0
    ;;
esac
exit 0
`
	for _, name := range names {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(script), 0o755); err != nil {
			t.Fatalf("write vim stub %s: %v", name, err)
		}
	}

	t.Setenv("PATH", dir)
	t.Setenv("VIM_STUB_LOG", logPath)
	t.Setenv("VIM_STUB_SERVERLIST", "")
	t.Setenv("VIM_STUB_SERVERLIST_EXIT", "")
	t.Setenv("VIM_STUB_EXPR_OUTPUT", "")
	os.Unsetenv("VIM_STUB_EXPR_OUTPUT")
	t.Setenv("VIM_STUB_EXPR_EXIT", "")
	t.Setenv("VIM_STUB_EXPR_SILENT", "")

	return dir, logPath
}

func setupNoVim(t *testing.T) {
	t.Helper()
	t.Setenv("PATH", t.TempDir())
}

func readLogLines(t *testing.T, logPath string) []string {
	t.Helper()
	data, err := os.ReadFile(logPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		t.Fatalf("read log: %v", err)
	}
	out := strings.TrimSpace(string(data))
	if out == "" {
		return nil
	}
	return strings.Split(out, "\n")
}

// remoteExprLines filters the invocation log down to --remote-expr calls.
func remoteExprLines(t *testing.T, logPath string) []string {
	t.Helper()
	var exprs []string
	for _, line := range readLogLines(t, logPath) {
		if strings.Contains(line, "--remote-expr") {
			exprs = append(exprs, line)
		}
	}
	return exprs
}
