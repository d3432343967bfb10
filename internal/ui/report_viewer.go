package ui

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"testconv/internal/domain"
)

// reportEntry is one row of the viewer's list
type reportEntry struct {
	title   string
	details string
}

// ReportViewer displays a stored check report in an interactive TUI
type ReportViewer struct{}

// NewReportViewer creates a new ReportViewer
func NewReportViewer() *ReportViewer {
	return &ReportViewer{}
}

// View displays the report in an interactive TUI
func (rv *ReportViewer) View(report *domain.CheckReport) error {
	entries := reportEntries(report)
	if len(entries) == 0 {
		color.Green("✓ Last %s check passed, nothing to browse.", report.Check)
		return nil
	}

	app := tview.NewApplication()

	list := tview.NewList().
		ShowSecondaryText(false).
		SetHighlightFullLine(true)
	for i, entry := range entries {
		list.AddItem(fmt.Sprintf("[yellow]%d.[white] %s", i+1, entry.title), "", 0, nil)
	}
	list.SetMainTextColor(tview.Styles.PrimaryTextColor).
		SetSelectedTextColor(tcell.ColorWhite).
		SetSelectedBackgroundColor(tcell.ColorDarkCyan)

	statsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(false)
	statsView.SetText(formatReportStats(report))

	detailsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(true).
		SetWordWrap(true)

	detailsContainer := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(detailsView, 0, 1, false).
		AddItem(tview.NewBox(), 2, 0, false)

	rightSide := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(statsView, 3, 0, false).
		AddItem(detailsContainer, 0, 1, false)

	flex := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(list, 0, 1, true).
		AddItem(rightSide, 0, 2, false)

	headerView := tview.NewTextView().
		SetTextAlign(tview.AlignCenter).
		SetDynamicColors(true)
	headerView.SetText(fmt.Sprintf(" %s (%d entries) | Use ↑↓ to navigate, → to view details, ← to go back, [yellow]q[white] or Esc to exit ",
		reportTitle(report), len(entries)))

	updateDetails := func(index int) {
		if index >= 0 && index < len(entries) {
			detailsView.SetText(entries[index].details)
			detailsView.ScrollToBeginning()
		}
	}

	list.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyEnter, tcell.KeyRight:
			app.SetFocus(detailsView)
			return nil
		case tcell.KeyEsc, tcell.KeyCtrlC:
			app.Stop()
			return nil
		case tcell.KeyRune:
			if event.Rune() == 'q' {
				app.Stop()
				return nil
			}
		}
		return event
	})

	detailsView.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyLeft, tcell.KeyEsc:
			app.SetFocus(list)
			return nil
		case tcell.KeyCtrlC:
			app.Stop()
			return nil
		}
		return event
	})

	list.SetChangedFunc(func(index int, mainText string, secondaryText string, shortcut rune) {
		updateDetails(index)
	})
	updateDetails(0)

	mainLayout := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(headerView, 1, 0, false).
		AddItem(tview.NewBox(), 1, 0, false).
		AddItem(flex, 0, 1, true)

	if err := app.SetRoot(mainLayout, true).SetFocus(list).Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}

	return nil
}

func reportTitle(report *domain.CheckReport) string {
	switch report.Check {
	case domain.CheckNaming:
		return "Naming Violations"
	case domain.CheckInclusion:
		return "Excluded Test Classes"
	default:
		return "Test Output"
	}
}

// reportEntries builds the list rows for a report. Naming reports list one
// row per file, inclusion reports one row per excluded class.
func reportEntries(report *domain.CheckReport) []reportEntry {
	var entries []reportEntry

	switch report.Check {
	case domain.CheckNaming:
		var files []string
		byFile := make(map[string][]domain.NamingViolation)
		for _, v := range report.Violations {
			if _, seen := byFile[v.FilePath]; !seen {
				files = append(files, v.FilePath)
			}
			byFile[v.FilePath] = append(byFile[v.FilePath], v)
		}
		for _, file := range files {
			entries = append(entries, reportEntry{
				title:   filepath.Base(file),
				details: formatFileViolations(file, byFile[file]),
			})
		}
	case domain.CheckInclusion:
		for _, className := range report.Excluded {
			entries = append(entries, reportEntry{
				title:   className,
				details: formatExcludedClass(className, report.Patterns),
			})
		}
	default:
		if !report.Passed {
			entries = append(entries, reportEntry{
				title:   "PreconditionViolationException",
				details: fmt.Sprintf("[red]✗ %s[white]\n", report.Summary),
			})
		}
	}

	return entries
}

// formatFileViolations formats the violations of one file using tview color tags
func formatFileViolations(file string, violations []domain.NamingViolation) string {
	var builder strings.Builder

	fmt.Fprintf(&builder, "[cyan]File: %s[white]\n\n", file)
	for _, v := range violations {
		fmt.Fprintf(&builder, "[red]✗ %s[white]\n", v.Kind)
		fmt.Fprintf(&builder, "  %s\n\n", v.Message)
	}

	return builder.String()
}

func formatExcludedClass(className string, patterns []string) string {
	var builder strings.Builder

	fmt.Fprintf(&builder, "[red]✗ %s[white]\n\n", className)
	builder.WriteString("[yellow]Does not match any of:[white]\n")
	for _, p := range patterns {
		fmt.Fprintf(&builder, "  %s\n", p)
	}
	builder.WriteString("\nThis test class will NOT be executed.\n")

	return builder.String()
}

// formatReportStats formats the stats header for a report
func formatReportStats(report *domain.CheckReport) string {
	module := report.Module
	if module == "" {
		module = "root"
	}
	return fmt.Sprintf("[cyan]module:[white] [yellow]%s[white]  [cyan]run:[white] %s\n[cyan]at:[white] %s\n%s",
		module, report.ID, report.Timestamp, report.Summary)
}
