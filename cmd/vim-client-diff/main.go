// vim-client-diff connects to a running Vim server and makes it show the
// differences between 2 to 8 files. If no server is listening, it launches a
// fresh vimdiff instance instead.
package main

import (
	"os"
	"path/filepath"

	"github.com/jamescherti/vim-client/internal/cli"
)

func main() {
	os.Exit(cli.RunDiff(filepath.Base(os.Args[0]), os.Args[1:]))
}
