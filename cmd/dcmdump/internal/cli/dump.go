package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/neandrake/medicom-go/cmd/dcmdump/internal/ui"
	"github.com/neandrake/medicom-go/dicom"
	"github.com/neandrake/medicom-go/dicom/tag"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true)
	subtleStyle = lipgloss.NewStyle().Faint(true)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// DumpCmd renders the data elements of DICOM files.
type DumpCmd struct {
	Paths []string `arg:"" type:"existingfile" help:"DICOM files to dump"`

	Multiline        bool   `name:"multiline" help:"Render multi-valued strings across lines"`
	MaxItems         int    `name:"max-items" default:"16" help:"Maximum value entries rendered per element"`
	HideDelims       bool   `name:"hide-delims" help:"Hide item and sequence delimiter elements"`
	HideGroupLengths bool   `name:"hide-group-lengths" help:"Hide group length elements"`
	StopBefore       string `name:"stop-before" placeholder:"TAGPATH" help:"Stop before the element at the given tag path (e.g. PixelData)"`
}

// Run executes the dump command.
func (c *DumpCmd) Run(logger *log.Logger) error {
	// Print banner
	ui.PrintBanner()

	var stop dicom.Stop = dicom.StopEndOfDataset{}
	if c.StopBefore != "" {
		path, err := tag.ParsePath(c.StopBefore, tag.Standard)
		if err != nil {
			return fmt.Errorf("invalid --stop-before: %w", err)
		}
		stop = dicom.StopBeforeTag{Path: path}
	}

	for i, path := range c.Paths {
		if i > 0 {
			fmt.Println(subtleStyle.Render("---"))
		}
		if err := c.dumpFile(path, stop, logger); err != nil {
			logger.Error("failed to dump file", "file", path, "error", err)
			return err
		}
	}
	return nil
}

func (c *DumpCmd) dumpFile(path string, stop dicom.Stop, logger *log.Logger) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	logger.Debug("parsing file", "file", path)

	parser := dicom.NewParserBuilder().
		Dictionary(tag.Standard).
		Stop(stop).
		Build(file)

	fmt.Println(headerStyle.Render(fmt.Sprintf("# Dicom-File-Format File: %s", path)))

	count := 0
	for {
		elem, err := parser.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			// Render what parsed before the failure, then surface it.
			fmt.Println(errorStyle.Render(fmt.Sprintf("<parse error: %v>", err)))
			return err
		}

		f := dicom.NewFormattedElement(elem)
		f.Dictionary = tag.Standard
		f.Multiline = c.Multiline
		f.MaxItems = c.MaxItems
		f.HideDelims = c.HideDelims
		f.HideGroupLengths = c.HideGroupLengths
		if f.ShouldOmit() {
			continue
		}
		fmt.Println(f.String())
		count++
	}

	fmt.Println(subtleStyle.Render(fmt.Sprintf("# %d elements, transfer syntax: %s", count, parser.TransferSyntax().Ident)))
	return nil
}
