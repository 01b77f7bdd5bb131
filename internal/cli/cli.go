// Package cli implements the vim-client-edit and vim-client-diff command-line
// tools on top of the protocol adapter in internal/vim.
package cli

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"syscall"

	"github.com/jamescherti/vim-client/internal/config"
	"github.com/jamescherti/vim-client/internal/vim"
)

// stringList collects repeated flag values.
type stringList []string

func (s *stringList) String() string {
	return strings.Join(*s, ",")
}

func (s *stringList) Set(v string) error {
	*s = append(*s, v)
	return nil
}

type options struct {
	paths      []string
	serverName string
	vimBin     stringList
	serverList bool
	diff       bool
	openIn     string
}

func parseFlags(name string, args []string, diffTool bool, output io.Writer) (*options, error) {
	o := &options{}
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(output)

	fs.StringVar(&o.serverName, "servername", "",
		"Connect to the Vim server with this exact name. Without it, any available server is used; "+
			"if none is listening, a new Vim instance is launched with '--servername SERVERNAME'.")
	fs.Var(&o.vimBin, "vim-bin",
		"Path to the Vim binary (repeatable; default: vim, gvim). Used both for connecting to a "+
			"server and for launching a new instance when no server is listening.")
	fs.BoolVar(&o.serverList, "serverlist", false,
		"List the names of all Vim servers that can be found.")
	if !diffTool {
		fs.BoolVar(&o.diff, "d", false, "Start in diff mode. Works like 'vim-client-diff'.")
		fs.BoolVar(&o.diff, "diff", false, "Start in diff mode. Works like 'vim-client-diff'.")
	}

	var split, vsplit, tab bool
	fs.BoolVar(&split, "o", false, "Edit files/directories in stacked horizontal splits.")
	fs.BoolVar(&split, "split", false, "Edit files/directories in stacked horizontal splits.")
	fs.BoolVar(&vsplit, "O", false, "Edit files/directories in side-by-side vertical splits.")
	fs.BoolVar(&vsplit, "vsplit", false, "Edit files/directories in side-by-side vertical splits.")
	fs.BoolVar(&tab, "p", false, "Edit files/directories in separate tabs.")
	fs.BoolVar(&tab, "tab", false, "Edit files/directories in separate tabs.")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	o.paths = fs.Args()

	switch {
	case tab:
		o.openIn = string(vim.OpenTab)
	case vsplit:
		o.openIn = string(vim.OpenVSplit)
	case split:
		o.openIn = string(vim.OpenSplit)
	}
	return o, nil
}

// serverPattern turns the --servername value into the adapter's selection
// pattern: an anchored exact name when given, otherwise match-anything.
func serverPattern(serverName string) string {
	if serverName == "" {
		return ".*"
	}
	return "^" + regexp.QuoteMeta(serverName) + "$"
}

func connect(o *options, cfg *config.Config) (*vim.Client, error) {
	candidates := []string(o.vimBin)
	if len(candidates) == 0 {
		candidates = cfg.VimBin
	}

	pattern := serverPattern(o.serverName)
	if o.serverName == "" && cfg.ServerName != "" {
		pattern = cfg.ServerName
	}

	return vim.New(pattern,
		vim.WithBinaries(candidates),
		vim.WithForceTab(cfg.ForceTab),
	)
}

// fallbackLaunch replaces the current process with a standalone Vim instance.
// It is used when no server is listening (or none matched). Only returns on
// failure.
func fallbackLaunch(name string, o *options, cfg *config.Config, diffTool bool) int {
	candidates := []string(o.vimBin)
	if len(candidates) == 0 {
		candidates = cfg.VimBin
	}
	if diffTool {
		// vim -> vimdiff, gvim -> gvimdiff
		withDiff := make([]string, len(candidates))
		for i, c := range candidates {
			withDiff[i] = c + "diff"
		}
		candidates = withDiff
	}

	bin, err := vim.FindBinary(candidates)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	argv := []string{bin}
	if o.serverName != "" {
		argv = append(argv, "--servername", o.serverName)
	}
	argv = append(argv, o.paths...)

	fmt.Fprintf(os.Stderr, "[RUN] %s\n", strings.Join(argv, " "))
	if err := syscall.Exec(bin, argv, os.Environ()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: Could not execute '%s': %v\n", bin, err)
	}
	return 1
}

// initClient parses flags, loads config, and either binds a client or takes
// the fallback-launch path. A nil client with exit >= 0 means the process
// should exit with that code (the fallback path normally never returns).
func initClient(name string, args []string, diffTool bool) (*vim.Client, *options, *config.Config, int) {
	o, err := parseFlags(name, args, diffTool, os.Stderr)
	if err != nil {
		return nil, nil, nil, 2
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, nil, nil, fatal(name, err)
	}

	client, err := connect(o, cfg)
	if err != nil {
		if len(o.vimBin) == 0 {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		}
		return nil, nil, nil, fallbackLaunch(name, o, cfg, diffTool)
	}

	if o.serverList {
		// Forward to the server list and cease to exist; an error here means
		// the exec itself failed.
		if err := client.ExecVim("--serverlist"); err != nil {
			return nil, nil, nil, fatal(name, err)
		}
		return nil, nil, nil, 0
	}

	return client, o, cfg, -1
}

func fatal(name string, err error) int {
	fmt.Fprintf(os.Stderr, "%s: fatal: %v.\n", name, err)
	return 1
}

func absPaths(paths []string) ([]string, error) {
	abs := make([]string, 0, len(paths))
	for _, p := range paths {
		a, err := filepath.Abs(p)
		if err != nil {
			return nil, err
		}
		abs = append(abs, a)
	}
	return abs, nil
}
