package parser

import (
	"regexp"
	"strconv"
	"strings"

	"testconv/internal/domain"
)

// PreconditionViolationMarker is printed by the JUnit platform when it rejects a test class or method
const PreconditionViolationMarker = "org.junit.platform.commons.PreconditionViolationException"

// Gradle prints e.g. "12 tests completed, 2 failed, 1 skipped" at the end of a test task
var (
	testsCompletedPattern = regexp.MustCompile(`(\d+) tests? completed`)
	testsFailedPattern    = regexp.MustCompile(`(\d+) failed`)
	testsSkippedPattern   = regexp.MustCompile(`(\d+) skipped`)
)

// OutputParser parses Gradle test task output
type OutputParser struct{}

// NewOutputParser creates a new OutputParser
func NewOutputParser() *OutputParser {
	return &OutputParser{}
}

// ContainsPreconditionViolation reports whether the output mentions a PreconditionViolationException
func (p *OutputParser) ContainsPreconditionViolation(content string) bool {
	return strings.Contains(content, PreconditionViolationMarker)
}

// ParseTestCounts reads the last test summary line. Zero counts are returned when there is none.
func (p *OutputParser) ParseTestCounts(content string) domain.TestCounts {
	var counts domain.TestCounts

	lines := strings.Split(content, "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		line := lines[i]
		m := testsCompletedPattern.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		counts.Total = atoi(m[1])
		if m := testsFailedPattern.FindStringSubmatch(line); m != nil {
			counts.Failed = atoi(m[1])
		}
		if m := testsSkippedPattern.FindStringSubmatch(line); m != nil {
			counts.Skipped = atoi(m[1])
		}
		break
	}

	return counts
}

func atoi(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}
