package parser

import "testconv/internal/domain"

// Parser inspects the output a build's test task wrote to its log
type Parser interface {
	ContainsPreconditionViolation(content string) bool
	ParseTestCounts(content string) domain.TestCounts
}
