package check

import (
	"time"

	"github.com/google/uuid"

	"testconv/internal/domain"
)

func newReport(check, module string) *domain.CheckReport {
	return &domain.CheckReport{
		ID:        uuid.NewString(),
		Check:     check,
		Module:    module,
		Timestamp: time.Now().Format(time.RFC3339),
		Passed:    true,
	}
}

// fail marks the report failed and records the error message as its summary
func fail(report *domain.CheckReport, err *ViolationError) (*domain.CheckReport, error) {
	report.Passed = false
	report.Summary = err.Error()
	return report, err
}
