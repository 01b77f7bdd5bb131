package vim

import (
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"
)

// Client drives one running Vim server through the binary's --remote*
// command-line protocol. Every operation is a fresh subprocess invocation;
// there is no persistent connection and no timeout, so a hung server hangs
// the caller until the subprocess exits.
//
// Bin and ServerName are resolved once by New and never re-resolved: the
// client targets the same server for its whole lifetime even if the
// advertised server universe changes afterwards.
type Client struct {
	Bin        string
	ServerName string

	replaceProcess bool
	forceTab       bool
}

// EditRequest describes one edit intent: which paths to open, where, and
// which commands to run around each open.
type EditRequest struct {
	// Paths are the files/directories to open, in order. Empty means no-op.
	Paths []string
	// Cwd, when set, becomes the window-local working directory before each
	// open (via :lcd).
	Cwd string
	// PreCommands run before each open, PostCommands after.
	PreCommands  []string
	PostCommands []string
	// OpenIn selects the layout mode. The zero value reuses the current
	// window.
	OpenIn OpenIn
}

// Option configures a Client.
type Option func(*clientOptions)

type clientOptions struct {
	binaries       []string
	replaceProcess bool
	forceTab       bool
}

// WithBinaries overrides the candidate Vim binaries tried in order
// (default: DefaultBinaries).
func WithBinaries(candidates []string) Option {
	return func(o *clientOptions) {
		o.binaries = candidates
	}
}

// WithReplaceProcess makes ExecRemote replace the current process image with
// the Vim binary instead of spawning a child. Calls under this policy never
// return on success.
func WithReplaceProcess(replace bool) Option {
	return func(o *clientOptions) {
		o.replaceProcess = replace
	}
}

// WithForceTab enables the force-tab strategy: current-window opens are
// upgraded to new tabs when the server already displays content, so an
// existing view is not clobbered.
func WithForceTab(force bool) Option {
	return func(o *clientOptions) {
		o.forceTab = force
	}
}

// New resolves a Vim binary and binds to the first advertised server whose
// name matches pattern (case-insensitive regexp search). It fails fast:
// binary resolution first, then server resolution. There is no partially
// constructed client.
func New(pattern string, opts ...Option) (*Client, error) {
	o := &clientOptions{}
	for _, opt := range opts {
		opt(o)
	}

	bin, err := FindBinary(o.binaries)
	if err != nil {
		return nil, err
	}

	server, err := SelectServer(ListServers(bin), pattern, bin)
	if err != nil {
		return nil, err
	}

	return &Client{
		Bin:            bin,
		ServerName:     server,
		replaceProcess: o.replaceProcess,
		forceTab:       o.forceTab,
	}, nil
}

// Ping checks that the selected server evaluates expressions. A server can
// be advertised and still be frozen; listing is not liveness.
func (c *Client) Ping() error {
	lines, err := c.Expr("1024")
	if err != nil || strings.TrimSpace(lines[0]) != "1024" {
		return &ServerUnresponsiveError{ServerName: c.ServerName}
	}
	return nil
}

// Expr evaluates expression on the server and returns the output lines.
// Empty output means failure: Vim prints nothing both when the expression
// crashed and when it was silently rejected, and the client does not pretend
// to tell those apart.
func (c *Client) Expr(expression string) ([]string, error) {
	lines, err := c.runRemote("--remote-expr", expression)
	if err != nil {
		lines = nil
	}
	if len(lines) == 0 {
		return nil, &ExprError{ServerName: c.ServerName, Expression: expression}
	}
	return lines, nil
}

// SendCommands executes commands on the server as one sequential batch. An
// empty batch is a no-op with no subprocess spawned. Vim runs the batch as a
// unit; if a command fails partway through, later commands may or may not
// run and that partial application is not detectable here.
func (c *Client) SendCommands(commands ...string) error {
	if len(commands) == 0 {
		return nil
	}
	joined := strings.Join(commands, " | ")
	_, err := c.Expr("execute('" + strings.ReplaceAll(joined, "'", "''") + "')")
	return err
}

// Edit makes the server open req.Paths in order. Each path gets its own
// batch and its own layout command, so N paths in tab mode become N tabs.
func (c *Client) Edit(req EditRequest) error {
	if len(req.Paths) == 0 {
		return nil
	}

	layout, err := req.OpenIn.layoutCommand()
	if err != nil {
		return err
	}
	if layout == "" && c.forceTab && c.serverShowsContent() {
		layout = "tabnew"
	}

	cwd := req.Cwd
	if cwd != "" {
		if cwd, err = filepath.Abs(cwd); err != nil {
			return err
		}
	}

	for _, path := range req.Paths {
		abs, err := filepath.Abs(path)
		if err != nil {
			return err
		}

		var batch []string
		if layout != "" {
			batch = append(batch, layout)
		}
		if cwd != "" {
			batch = append(batch, EscapeCommand("lcd", cwd))
		}
		batch = append(batch, req.PreCommands...)
		batch = append(batch, EscapeCommand("edit", abs))
		batch = append(batch, req.PostCommands...)

		if err := c.SendCommands(batch...); err != nil {
			return err
		}
	}
	return nil
}

// serverShowsContent reports whether the server has more than one tab,
// window, or buffer. Probe failures count as "no content": the open then
// proceeds in the current window and the real error surfaces there.
func (c *Client) serverShowsContent() bool {
	lines, err := c.Expr(`tabpagenr('$') . "/" . winnr('$') . "/" . bufnr('$')`)
	if err != nil {
		return false
	}
	for _, field := range strings.Split(strings.TrimSpace(lines[0]), "/") {
		if n, err := strconv.Atoi(field); err == nil && n > 1 {
			return true
		}
	}
	return false
}

// ExecRemote runs `vim --servername <selected> <args>`. Under the
// replace-process policy it replaces the current process image and never
// returns on success; otherwise it spawns a child, waits, and returns the
// captured stdout lines.
func (c *Client) ExecRemote(args ...string) ([]string, error) {
	if c.replaceProcess {
		return nil, c.ExecVim(append([]string{"--servername", c.ServerName}, args...)...)
	}
	return c.runRemote(args...)
}

// ExecVim replaces the current process image with `vim <args>`. It only ever
// returns on failure to exec; on success the calling process ceases to exist.
func (c *Client) ExecVim(args ...string) error {
	return syscall.Exec(c.Bin, append([]string{c.Bin}, args...), os.Environ())
}

func (c *Client) runRemote(args ...string) ([]string, error) {
	vimArgs := append([]string{"--servername", c.ServerName}, args...)
	out, err := exec.Command(c.Bin, vimArgs...).Output()
	if err != nil {
		return nil, err
	}
	return splitLines(string(out)), nil
}

// splitLines splits captured output into lines without discarding interior
// empty lines. A bare newline is one empty line, which still counts as a
// response from the server.
func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(s, "\n"), "\n")
}
