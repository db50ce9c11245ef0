package main

import (
	"os"

	"github.com/neandrake/medicom-go/cmd/dcmdump/internal/cli"
)

// Build-time metadata injected via -ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if err := cli.Run(version, commit, date); err != nil {
		os.Exit(1)
	}
}
