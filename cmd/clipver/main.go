package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/clipflowpro/clipver/internal/cli"
)

const (
	cmdName = "clipver"

	shortDesc = "ClipFlow Pro version helpers."
	longDesc  = `Show or bump the release version stored in ClipFlow Pro's metadata.json.

The metadata file is read from the parent of the directory holding this
executable, unless --metadata is given. Only the integer "version" field is
ever changed; every other field is written back as it was found.
`
)

func main() {
	cmd := cli.NewRootCmd(cmdName, shortDesc, longDesc)

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, strings.TrimLeft(err.Error(), "\n"))
		os.Exit(1)
	}
}
