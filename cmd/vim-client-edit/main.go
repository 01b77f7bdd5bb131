// vim-client-edit connects to a running Vim server and makes it edit
// files/directories. If no server is listening, it launches a fresh Vim
// instance instead.
package main

import (
	"os"
	"path/filepath"

	"github.com/jamescherti/vim-client/internal/cli"
)

func main() {
	os.Exit(cli.RunEdit(filepath.Base(os.Args[0]), os.Args[1:]))
}
