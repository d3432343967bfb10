package check

import (
	"fmt"

	"testconv/internal/domain"
)

// ViolationError is returned by a check run that found policy violations.
// It is raised only after the full report has been printed.
type ViolationError struct {
	Check string // Check that failed
	Count int    // Number of violations or excluded classes
	msg   string
}

func (e *ViolationError) Error() string {
	return e.msg
}

func namingViolationError(count int) *ViolationError {
	return &ViolationError{
		Check: domain.CheckNaming,
		Count: count,
		msg:   fmt.Sprintf("%d test file naming convention violations found.", count),
	}
}

func inclusionViolationError(count int) *ViolationError {
	return &ViolationError{
		Check: domain.CheckInclusion,
		Count: count,
		msg:   fmt.Sprintf("%d test classes don't match includeTestsMatching patterns and won't be executed.", count),
	}
}

func outputViolationError() *ViolationError {
	return &ViolationError{
		Check: domain.CheckOutput,
		Count: 1,
		msg:   "PreconditionViolationException detected in test results.",
	}
}
