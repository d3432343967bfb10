package check

import (
	"errors"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"testconv/internal/domain"
	"testconv/internal/parser"
	"testconv/internal/ui"
)

// OutputCheck scans a test task's output log for JUnit precondition failures
type OutputCheck struct {
	parser   parser.Parser
	reporter *ui.Reporter
	logger   *zap.Logger
}

// NewOutputCheck creates a new OutputCheck
func NewOutputCheck(p parser.Parser, reporter *ui.Reporter, logger *zap.Logger) *OutputCheck {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &OutputCheck{
		parser:   p,
		reporter: reporter,
		logger:   logger,
	}
}

// Run checks the log at logPath, prints the report to w and returns a
// *ViolationError when a PreconditionViolationException was logged.
// A missing log passes.
func (c *OutputCheck) Run(w io.Writer, module, logPath string) (*domain.CheckReport, error) {
	report := newReport(domain.CheckOutput, module)

	content, err := os.ReadFile(logPath)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("read test output log: %w", err)
		}
		c.logger.Info("no test output log found", zap.String("module", module), zap.String("log", logPath))
		c.reporter.RenderOutputCheck(w, ui.OutputReport{Module: module, LogPath: logPath, LogMissing: true})
		report.Summary = "No test output log found."
		return report, nil
	}

	text := string(content)
	counts := c.parser.ParseTestCounts(text)
	failed := c.reporter.RenderOutputCheck(w, ui.OutputReport{
		Module:             module,
		LogPath:            logPath,
		PreconditionFailed: c.parser.ContainsPreconditionViolation(text),
		Counts:             counts,
	})
	if failed {
		return fail(report, outputViolationError())
	}

	report.Summary = fmt.Sprintf("No PreconditionViolationException in %d completed tests.", counts.Total)
	return report, nil
}
