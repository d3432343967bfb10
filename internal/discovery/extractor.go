package discovery

import (
	"regexp"
	"strings"

	"testconv/internal/domain"
)

// Class declarations are matched without any scope awareness, so
// declarations inside strings or comments match too.
var (
	// Groups: 1 = data modifier, 2 = class name.
	classNamePattern = regexp.MustCompile(`(?:\b(data)\s+)?\bclass\s+(\w+)`)
	// An optionally annotated constructor keyword after the type parameters.
	constructorPattern = regexp.MustCompile(`^(?:\s*@\w+)*\s*(?:(?:private|protected|internal|public)\s+)?constructor`)
	// Group 1 = inheritance clause, up to a constructor call or body.
	supertypePattern = regexp.MustCompile(`^\s*:\s*([^{(;\n]*)`)
)

// Extractor finds class declarations in Kotlin source text
type Extractor struct{}

// NewExtractor creates a new Extractor
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract returns the class declarations in content in order of appearance.
// Type parameters and the primary constructor may nest brackets.
func (e *Extractor) Extract(content string) []domain.ClassInfo {
	var classes []domain.ClassInfo

	for pos := 0; pos < len(content); {
		loc := classNamePattern.FindStringSubmatchIndex(content[pos:])
		if loc == nil {
			break
		}
		info := domain.ClassInfo{
			ClassName:   content[pos+loc[4] : pos+loc[5]],
			IsDataClass: loc[2] >= 0,
		}

		end := skipBalanced(content, pos+loc[1], '<', '>')
		if m := constructorPattern.FindStringIndex(content[end:]); m != nil {
			end += m[1]
		}
		end = skipBalanced(content, end, '(', ')')
		if m := supertypePattern.FindStringSubmatchIndex(content[end:]); m != nil {
			info.InheritsFrom = strings.TrimSpace(content[end+m[2] : end+m[3]])
			end += m[1]
		}

		classes = append(classes, info)
		pos = end
	}

	return classes
}

// skipBalanced returns the offset just past a balanced open/close group that
// starts after optional whitespace at i. Without such a group it returns i.
func skipBalanced(s string, i int, open, close byte) int {
	j := i
	for j < len(s) && strings.IndexByte(" \t\r\n", s[j]) >= 0 {
		j++
	}
	if j == len(s) || s[j] != open {
		return i
	}

	depth := 0
	for ; j < len(s); j++ {
		switch s[j] {
		case open:
			depth++
		case close:
			// -> in a function type is not a closing angle bracket
			if close == '>' && s[j-1] == '-' {
				continue
			}
			depth--
			if depth == 0 {
				return j + 1
			}
		}
	}
	return i
}

// PackageName returns the package declared on the first line starting with "package "
func (e *Extractor) PackageName(content string) (string, bool) {
	for _, line := range strings.Split(content, "\n") {
		if strings.HasPrefix(line, "package ") {
			return strings.TrimSpace(strings.TrimPrefix(line, "package ")), true
		}
	}
	return "", false
}
