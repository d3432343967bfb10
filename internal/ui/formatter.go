package ui

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"

	"testconv/internal/domain"
)

const (
	namingHeader    = "========== Test File Naming Check Results =========="
	namingFooter    = "=================================================="
	inclusionHeader = "========== Test Inclusion Check Results (JUnit-based) =========="
	inclusionFooter = "=================================================================="
	outputHeader    = "========== Test Output Check Results =========="
	outputFooter    = "==============================================="
)

// NamingReport is the input for rendering a naming check run
type NamingReport struct {
	Module       string
	BaseDir      string // Paths are printed relative to this directory
	FilesChecked int
	Violations   []domain.NamingViolation
}

// InclusionReport is the input for rendering an inclusion check run
type InclusionReport struct {
	Module     string
	Patterns   []string
	Discovered domain.ClassSet
	Excluded   domain.ClassSet
}

// OutputReport is the input for rendering a test output check run
type OutputReport struct {
	Module             string
	LogPath            string
	LogMissing         bool
	PreconditionFailed bool
	Counts             domain.TestCounts
}

// Reporter renders check results as human-readable text
type Reporter struct {
	noColor bool
}

// NewReporter creates a new Reporter. Colour is also disabled when output is not a terminal.
func NewReporter(noColor bool) *Reporter {
	return &Reporter{noColor: noColor}
}

func (r *Reporter) paint(attrs ...color.Attribute) *color.Color {
	c := color.New(attrs...)
	if r.noColor {
		c.DisableColor()
	}
	return c
}

// RenderNaming prints the naming check report and reports whether the run failed
func (r *Reporter) RenderNaming(w io.Writer, report NamingReport) bool {
	fmt.Fprintln(w)
	r.paint(color.FgCyan).Fprintln(w, namingHeader)
	if report.Module != "" {
		fmt.Fprintf(w, "Module: %s\n", report.Module)
	}
	fmt.Fprintf(w, "Test source files checked: %d\n", report.FilesChecked)

	if len(report.Violations) == 0 {
		r.paint(color.FgGreen).Fprintln(w, "✅ All test files follow proper naming conventions.")
		fmt.Fprintln(w, namingFooter)
		fmt.Fprintln(w)
		return false
	}

	r.paint(color.FgRed).Fprintf(w, "❌ Found %d naming convention violation(s):\n", len(report.Violations))
	fmt.Fprintln(w)

	// Group by file, keeping the order in which files were reported
	var files []string
	byFile := make(map[string][]domain.NamingViolation)
	for _, v := range report.Violations {
		if _, seen := byFile[v.FilePath]; !seen {
			files = append(files, v.FilePath)
		}
		byFile[v.FilePath] = append(byFile[v.FilePath], v)
	}

	for _, file := range files {
		r.paint(color.FgYellow).Fprintf(w, "📁 %s:\n", relativePath(report.BaseDir, file))
		for _, v := range byFile[file] {
			fmt.Fprintf(w, "   • %s\n", v.Message)
		}
		fmt.Fprintln(w)
	}

	counts := make(map[domain.ViolationKind]int)
	for _, v := range report.Violations {
		counts[v.Kind]++
	}
	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Rule", "Violations"})
	for _, kind := range domain.ViolationKinds {
		t.AppendRow(table.Row{kind.String(), counts[kind]})
	}
	t.AppendFooter(table.Row{"Files", len(files)})
	fmt.Fprintln(w, t.Render())
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Naming Convention Rules:")
	fmt.Fprintln(w, "1. File name must match the test class name")
	fmt.Fprintln(w, "2. Only one test class per file (data classes are allowed)")
	fmt.Fprintln(w, "3. Test class names must end with 'Test' or 'Spec'")
	fmt.Fprintln(w, namingFooter)
	fmt.Fprintln(w)
	return true
}

// RenderInclusion prints the inclusion check report and reports whether the run failed
func (r *Reporter) RenderInclusion(w io.Writer, report InclusionReport) bool {
	discovered := report.Discovered.Len()
	excluded := report.Excluded.Len()

	fmt.Fprintln(w)
	r.paint(color.FgCyan).Fprintln(w, inclusionHeader)
	if report.Module != "" {
		fmt.Fprintf(w, "Module: %s\n", report.Module)
	}
	fmt.Fprintf(w, "Include patterns: %s\n", strings.Join(report.Patterns, ", "))
	fmt.Fprintf(w, "Total test classes discovered by JUnit: %d\n", discovered)
	fmt.Fprintf(w, "Test classes matching patterns: %d\n", discovered-excluded)
	fmt.Fprintf(w, "Test classes NOT matching patterns: %d\n", excluded)

	if excluded == 0 {
		fmt.Fprintln(w)
		r.paint(color.FgGreen).Fprintln(w, "✅ All JUnit test classes match the include patterns and will be executed.")
		fmt.Fprintln(w, inclusionFooter)
		fmt.Fprintln(w)
		return false
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "The following JUnit test classes don't match any includeTestsMatching patterns:")
	for _, className := range report.Excluded.Sorted() {
		r.paint(color.FgRed).Fprintf(w, "  ❌ %s\n", className)
	}
	fmt.Fprintln(w)
	r.paint(color.FgYellow).Fprintln(w, "These tests will NOT be executed!")
	fmt.Fprintln(w, "Consider updating your includeTestsMatching patterns or renaming the test classes.")
	fmt.Fprintln(w, inclusionFooter)
	fmt.Fprintln(w)
	return true
}

// RenderOutputCheck prints the test output check report and reports whether the run failed
func (r *Reporter) RenderOutputCheck(w io.Writer, report OutputReport) bool {
	fmt.Fprintln(w)
	r.paint(color.FgCyan).Fprintln(w, outputHeader)
	if report.Module != "" {
		fmt.Fprintf(w, "Module: %s\n", report.Module)
	}
	fmt.Fprintf(w, "Test output log: %s\n", report.LogPath)

	if report.LogMissing {
		fmt.Fprintln(w, "No test output log found, nothing to check.")
		fmt.Fprintln(w, outputFooter)
		fmt.Fprintln(w)
		return false
	}

	if report.Counts.Total > 0 {
		fmt.Fprintf(w, "Tests: %d | Failed: %d | Skipped: %d\n", report.Counts.Total, report.Counts.Failed, report.Counts.Skipped)
	}

	if report.PreconditionFailed {
		r.paint(color.FgRed).Fprintln(w, "❌ PreconditionViolationException detected in test output.")
		fmt.Fprintln(w, "JUnit rejected at least one test class or method; those tests did not run.")
		fmt.Fprintln(w, outputFooter)
		fmt.Fprintln(w)
		return true
	}

	r.paint(color.FgGreen).Fprintln(w, "✅ No PreconditionViolationException in test output.")
	fmt.Fprintln(w, outputFooter)
	fmt.Fprintln(w)
	return false
}

// RenderClassList prints a numbered list of class names under a title
func (r *Reporter) RenderClassList(w io.Writer, title string, classes []string) {
	fmt.Fprintln(w)
	r.paint(color.FgCyan).Fprintf(w, "========== %s ==========\n", title)

	if len(classes) == 0 {
		fmt.Fprintln(w, "  No test classes found")
	} else {
		t := table.NewWriter()
		t.SetStyle(table.StyleLight)
		t.AppendHeader(table.Row{"#", "Class"})
		for i, className := range classes {
			t.AppendRow(table.Row{i + 1, className})
		}
		fmt.Fprintln(w, t.Render())
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "Total test classes found: %d\n", len(classes))
	fmt.Fprintln(w, strings.Repeat("=", len(title)+22))
}

// relativePath returns path relative to base when possible
func relativePath(base, path string) string {
	if base == "" {
		return path
	}
	rel, err := filepath.Rel(base, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return path
	}
	return rel
}
