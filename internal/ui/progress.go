package ui

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"

	"testconv/internal/discovery"
)

// ProgressBar renders class file scan progress on stderr
type ProgressBar struct {
	bar *progressbar.ProgressBar
}

// NewProgressBar creates a new progress bar for count class files
func NewProgressBar(count int) *ProgressBar {
	bar := progressbar.NewOptions(count,
		progressbar.OptionSetDescription(
			color.CyanString("Scanning classes: ")+
				color.GreenString("[tests: 0]"),
		),
		progressbar.OptionSetWidth(50),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        color.CyanString("█"),
			SaucerHead:    color.CyanString("█"),
			SaucerPadding: "░",
			BarStart:      "│",
			BarEnd:        "│",
		}),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprint(os.Stderr, "\n")
		}),
		progressbar.OptionSetRenderBlankState(true),
	)

	return &ProgressBar{bar: bar}
}

// ProgressFactory adapts NewProgressBar to the detector's progress hook
func ProgressFactory() discovery.ProgressFactory {
	return func(total int) discovery.ProgressReporter {
		return NewProgressBar(total)
	}
}

// Update moves the bar to scanned files and shows the number of tests found
func (p *ProgressBar) Update(scanned, matched int) {
	_ = p.bar.Set(scanned)
	p.bar.Describe(
		color.CyanString("Scanning classes: ") +
			color.GreenString("[tests: %d]", matched),
	)
}

// Finish completes the progress bar
func (p *ProgressBar) Finish() {
	_ = p.bar.Finish()
}
