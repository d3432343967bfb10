package discovery

import "strings"

// TestNameSuffixes are the class name endings that mark a test class
var TestNameSuffixes = []string{"Test", "Tests", "Spec", "Should", "TestClass"}

// KotestStyleBases are the Kotest spec styles a test class may inherit from
var KotestStyleBases = []string{
	"FunSpec",
	"StringSpec",
	"ShouldSpec",
	"DescribeSpec",
	"BehaviorSpec",
	"WordSpec",
	"FreeSpec",
	"FeatureSpec",
	"ExpectSpec",
	"AnnotationSpec",
}

// Classifier decides whether a class is a test class
type Classifier struct {
	suffixes []string
	bases    []string
}

// NewClassifier creates a Classifier with the default suffix and base-class rules
func NewClassifier() *Classifier {
	return &Classifier{
		suffixes: TestNameSuffixes,
		bases:    KotestStyleBases,
	}
}

// IsTestName applies the name rule alone.
// "Test" does not count when the name ends with "TestData".
func (c *Classifier) IsTestName(className string) bool {
	for _, suffix := range c.suffixes {
		if !strings.HasSuffix(className, suffix) {
			continue
		}
		if suffix == "Test" && strings.HasSuffix(className, "TestData") {
			continue
		}
		return true
	}
	return false
}

// IsTestClass reports whether the class is a test by name or by inheriting a Kotest spec style
func (c *Classifier) IsTestClass(className, inheritsFrom string) bool {
	if c.IsTestName(className) {
		return true
	}
	for _, base := range c.bases {
		if strings.Contains(inheritsFrom, base) {
			return true
		}
	}
	return false
}
