package discovery

import (
	"regexp"
	"strings"
)

// compilePattern translates an include pattern into an anchored regexp.
// '*' matches any sequence, '?' matches one character, everything else is literal.
func compilePattern(pattern string) *regexp.Regexp {
	var b strings.Builder
	b.WriteString("^(?:")
	for _, r := range pattern {
		switch r {
		case '*':
			b.WriteString(".*")
		case '?':
			b.WriteString(".")
		default:
			b.WriteString(regexp.QuoteMeta(string(r)))
		}
	}
	b.WriteString(")$")
	return regexp.MustCompile(b.String())
}

// MatchesPattern reports whether a qualified class name matches an include pattern
func MatchesPattern(className, pattern string) bool {
	return compilePattern(pattern).MatchString(className)
}

// IncludeMatcher matches class names against a set of include patterns
type IncludeMatcher struct {
	patterns []*regexp.Regexp
}

// NewIncludeMatcher compiles the given include patterns
func NewIncludeMatcher(patterns []string) *IncludeMatcher {
	compiled := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		compiled = append(compiled, compilePattern(p))
	}
	return &IncludeMatcher{patterns: compiled}
}

// Matches reports whether className matches any of the patterns
func (m *IncludeMatcher) Matches(className string) bool {
	for _, re := range m.patterns {
		if re.MatchString(className) {
			return true
		}
	}
	return false
}

// Filter returns the names matching any pattern. With no patterns every name is kept.
func (m *IncludeMatcher) Filter(names []string) []string {
	if len(m.patterns) == 0 {
		return names
	}
	var filtered []string
	for _, name := range names {
		if m.Matches(name) {
			filtered = append(filtered, name)
		}
	}
	return filtered
}
