package ui

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/common-nighthawk/go-figure"
)

// BannerStyle defines the styling for the ASCII banner.
var BannerStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("#2f7e6d")).
	Bold(true)

// PrintBanner prints the "dcmdump" ASCII art banner to stderr, keeping
// stdout clean for the rendered elements.
func PrintBanner() {
	banner := figure.NewFigure("dcmdump", "banner3", true)

	fmt.Fprintln(os.Stderr, BannerStyle.Render(banner.String()))
	fmt.Fprintln(os.Stderr)
}
