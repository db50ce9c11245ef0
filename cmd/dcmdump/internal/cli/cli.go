// Package cli implements the dcmdump command line interface.
package cli

import (
	"os"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"
)

const (
	appName        = "dcmdump"
	appDescription = "Inspect the data elements of DICOM files"
)

// CLI represents the root command structure.
type CLI struct {
	Verbose bool `name:"verbose" short:"v" help:"Enable debug logging"`

	Dump DumpCmd `cmd:"" default:"withargs" help:"Render the elements of DICOM files"`
}

// Run executes the dcmdump CLI with the provided build info.
func Run(version, commit, date string) error {
	cli := &CLI{}
	ctx := kong.Parse(cli,
		kong.Name(appName),
		kong.Description(appDescription),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: false,
	})
	if cli.Verbose {
		logger.SetLevel(log.DebugLevel)
	}

	logger.Debug("dcmdump starting", "version", version, "commit", commit, "build_date", date)

	err := ctx.Run(logger)
	if err != nil {
		logger.Error("command failed", "error", err)
		return err
	}
	return nil
}
