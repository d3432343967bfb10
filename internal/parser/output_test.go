package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"testconv/internal/domain"
)

func TestContainsPreconditionViolation(t *testing.T) {
	p := NewOutputParser()

	tests := []struct {
		name    string
		content string
		want    bool
	}{
		{"empty", "", false},
		{"clean run", "> Task :test\nBUILD SUCCESSFUL in 3s\n", false},
		{"violation", "org.junit.platform.commons.PreconditionViolationException: Could not load class [FooTest]", true},
		{"simple name only", "PreconditionViolationException", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, p.ContainsPreconditionViolation(tt.content))
		})
	}
}

func TestParseTestCounts(t *testing.T) {
	p := NewOutputParser()

	tests := []struct {
		name    string
		content string
		want    domain.TestCounts
	}{
		{"no summary", "BUILD SUCCESSFUL", domain.TestCounts{}},
		{"all parts", "> Task :app:test\n\n12 tests completed, 2 failed, 1 skipped\n", domain.TestCounts{Total: 12, Failed: 2, Skipped: 1}},
		{"failed only", "3 tests completed, 1 failed", domain.TestCounts{Total: 3, Failed: 1}},
		{"single test", "1 test completed, 1 failed", domain.TestCounts{Total: 1, Failed: 1}},
		{"last summary wins", "4 tests completed, 4 failed\n9 tests completed, 0 failed", domain.TestCounts{Total: 9}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, p.ParseTestCounts(tt.content))
		})
	}
}
