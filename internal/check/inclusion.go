package check

import (
	"fmt"
	"io"

	"go.uber.org/zap"

	"testconv/internal/discovery"
	"testconv/internal/domain"
	"testconv/internal/ui"
)

// FindExcluded returns the discovered test classes matching none of the include patterns
func FindExcluded(discovered domain.ClassSet, patterns []string) domain.ClassSet {
	matcher := discovery.NewIncludeMatcher(patterns)
	excluded := domain.NewClassSet()
	for name := range discovered {
		if !matcher.Matches(name) {
			excluded.Add(name)
		}
	}
	return excluded
}

// InclusionTarget is the part of a module an inclusion check runs over
type InclusionTarget struct {
	Module     string
	ClassesDir string   // Compiled test classes
	Patterns   []string // includeTestsMatching patterns
}

// InclusionCheck verifies that every JUnit test class is selected by the include patterns
type InclusionCheck struct {
	detector *discovery.Detector
	reporter *ui.Reporter
	logger   *zap.Logger
}

// NewInclusionCheck creates a new InclusionCheck
func NewInclusionCheck(detector *discovery.Detector, reporter *ui.Reporter, logger *zap.Logger) *InclusionCheck {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &InclusionCheck{
		detector: detector,
		reporter: reporter,
		logger:   logger,
	}
}

// Run discovers the compiled test classes of target, prints the report to w and
// returns a *ViolationError when any class would be skipped by the test task.
// Without include patterns nothing is scanned.
func (c *InclusionCheck) Run(w io.Writer, target InclusionTarget) (*domain.CheckReport, error) {
	report := newReport(domain.CheckInclusion, target.Module)
	report.Patterns = target.Patterns

	if len(target.Patterns) == 0 {
		c.logger.Info("no includeTestsMatching patterns configured, skipping inclusion check",
			zap.String("module", target.Module))
		report.Summary = "No include patterns configured."
		return report, nil
	}

	discovered := c.detector.DiscoverTestClasses(target.ClassesDir)
	excluded := FindExcluded(discovered, target.Patterns)

	report.Discovered = discovered.Sorted()
	report.Excluded = excluded.Sorted()

	failed := c.reporter.RenderInclusion(w, ui.InclusionReport{
		Module:     target.Module,
		Patterns:   target.Patterns,
		Discovered: discovered,
		Excluded:   excluded,
	})
	if failed {
		return fail(report, inclusionViolationError(excluded.Len()))
	}

	report.Summary = fmt.Sprintf("All %d JUnit test classes match the include patterns.", discovered.Len())
	return report, nil
}
