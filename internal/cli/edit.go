package cli

import (
	"os"

	"github.com/jamescherti/vim-client/internal/vim"
)

// RunEdit implements vim-client-edit: connect to a Vim server and make it
// edit files/directories. name is the tool name used in messages.
func RunEdit(name string, args []string) int {
	o, err := parseFlags(name, args, false, os.Stderr)
	if err != nil {
		return 2
	}
	if o.diff {
		return RunDiff(name, stripDiffFlags(args))
	}

	client, o, cfg, exit := initClient(name, args, false)
	if client == nil {
		return exit
	}

	paths := o.paths
	if len(paths) == 0 {
		paths = []string{"."}
	}
	paths, err = absPaths(paths)
	if err != nil {
		return fatal(name, err)
	}

	cwd, err := os.Getwd()
	if err != nil {
		return fatal(name, err)
	}

	openIn, err := vim.ParseOpenIn(editOpenIn(o, cfg.OpenIn))
	if err != nil {
		return fatal(name, err)
	}

	req := vim.EditRequest{
		Paths:        paths,
		Cwd:          cwd,
		PreCommands:  append([]string{"call foreground()"}, cfg.PreCommands...),
		PostCommands: cfg.PostCommands,
		OpenIn:       openIn,
	}
	if err := client.Edit(req); err != nil {
		return fatal(name, err)
	}
	return 0
}

// editOpenIn resolves the layout mode: flag first, then config default.
func editOpenIn(o *options, configured string) string {
	if o.openIn != "" {
		return o.openIn
	}
	return configured
}

// stripDiffFlags removes -d/--diff so the remaining arguments can be
// re-parsed by the diff tool.
func stripDiffFlags(args []string) []string {
	out := make([]string, 0, len(args))
	for _, a := range args {
		if a == "-d" || a == "--diff" || a == "-diff" {
			continue
		}
		out = append(out, a)
	}
	return out
}
