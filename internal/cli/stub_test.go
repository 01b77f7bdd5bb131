//go:build !windows

package cli

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// installStubVim mirrors the stub used by the internal/vim tests: a shell
// script standing in for the vim binary, with env-controlled behavior and an
// invocation log.
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
	t.Setenv("VIM_STUB_SERVERLIST", "VIM_A")
	t.Setenv("VIM_STUB_EXPR_OUTPUT", "")

	// Keep the user's real config out of the test.
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	return dir, logPath
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

func executeBatches(t *testing.T, logPath string) []string {
	t.Helper()
	var batches []string
	for _, line := range readLogLines(t, logPath) {
		if strings.Contains(line, "--remote-expr execute(") {
			batches = append(batches, line)
		}
	}
	return batches
}
