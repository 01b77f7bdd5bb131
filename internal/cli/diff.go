package cli

import (
	"fmt"
	"os"

	"github.com/jamescherti/vim-client/internal/vim"
)

// maxDiffFiles bounds a diff invocation, matching Vim's own diff limit.
const maxDiffFiles = 8

// RunDiff implements vim-client-diff: connect to a Vim server and show the
// differences between 2 to 8 files.
func RunDiff(name string, args []string) int {
	client, o, cfg, exit := initClient(name, args, true)
	if client == nil {
		return exit
	}

	if len(o.paths) < 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s <file1> <file2> [file3]...\n", name)
		return 1
	}
	if len(o.paths) > maxDiffFiles {
		fmt.Fprintf(os.Stderr, "%s: cannot diff more than %d files\n", name, maxDiffFiles)
		return 1
	}
	for _, p := range o.paths {
		info, err := os.Stat(p)
		if err != nil || !info.Mode().IsRegular() {
			fmt.Fprintf(os.Stderr, "%s: %s: no such file or directory\n", name, p)
			return 1
		}
	}

	paths, err := absPaths(o.paths)
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
		Paths:        paths[:1],
		Cwd:          cwd,
		PreCommands:  append([]string{"call foreground()"}, cfg.PreCommands...),
		PostCommands: append(diffPostCommands(paths[1:]), cfg.PostCommands...),
		OpenIn:       openIn,
	}
	if err := client.Edit(req); err != nil {
		return fatal(name, err)
	}
	return 0
}

// diffPostCommands builds one diffsplit command per additional file. The
// first file is opened normally; each of these splits against it.
func diffPostCommands(paths []string) []string {
	cmds := make([]string, 0, len(paths))
	for _, p := range paths {
		cmds = append(cmds, vim.EscapeCommand("silent diffsplit", p))
	}
	return cmds
}
