package check

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"testconv/internal/discovery"
	"testconv/internal/domain"
	"testconv/internal/ui"
)

// ValidTestClassSuffixes are the only suffixes a test class name may end with.
// Classes recognized as tests by other suffixes (Tests, Should, TestClass) must be renamed.
var ValidTestClassSuffixes = []string{"Test", "Spec"}

// NamingValidator checks one test source file against the naming rules
type NamingValidator struct {
	extractor  *discovery.Extractor
	classifier *discovery.Classifier
}

// NewNamingValidator creates a new NamingValidator
func NewNamingValidator(extractor *discovery.Extractor, classifier *discovery.Classifier) *NamingValidator {
	return &NamingValidator{
		extractor:  extractor,
		classifier: classifier,
	}
}

// ValidateFile returns the naming violations of a single source file.
// A file without test classes never has violations.
func (v *NamingValidator) ValidateFile(file domain.SourceFile) []domain.NamingViolation {
	var violations []domain.NamingViolation
	fileName := strings.TrimSuffix(filepath.Base(file.Path), filepath.Ext(file.Path))

	var testClasses []string
	for _, class := range v.extractor.Extract(file.Content) {
		if v.classifier.IsTestClass(class.ClassName, class.InheritsFrom) {
			testClasses = append(testClasses, class.ClassName)
		}
	}

	if len(testClasses) > 1 {
		violations = append(violations, domain.NamingViolation{
			FilePath: file.Path,
			Kind:     domain.MultipleTestClasses,
			Message: fmt.Sprintf("File contains %d test classes: %s. Only one test class per file is allowed.",
				len(testClasses), strings.Join(testClasses, ", ")),
		})
	}

	for _, className := range testClasses {
		if className != fileName {
			violations = append(violations, domain.NamingViolation{
				FilePath: file.Path,
				Kind:     domain.FileClassNameMismatch,
				Message:  fmt.Sprintf("Test class name '%s' does not match file name '%s'", className, fileName),
			})
		}
	}

	for _, className := range testClasses {
		if !hasValidSuffix(className) {
			violations = append(violations, domain.NamingViolation{
				FilePath: file.Path,
				Kind:     domain.InvalidTestClassSuffix,
				Message:  fmt.Sprintf("Test class '%s' must end with 'Test' or 'Spec'", className),
			})
		}
	}

	return violations
}

func hasValidSuffix(className string) bool {
	for _, suffix := range ValidTestClassSuffixes {
		if strings.HasSuffix(className, suffix) {
			return true
		}
	}
	return false
}

// NamingTarget is the part of a module a naming check runs over
type NamingTarget struct {
	Module     string
	BaseDir    string   // Module directory, used for relative paths in the report
	SourceDirs []string // Test source roots
}

// NamingCheck validates every test source file of a module and prints the report
type NamingCheck struct {
	validator *NamingValidator
	scanner   *discovery.Scanner
	reporter  *ui.Reporter
	extension string
	logger    *zap.Logger
}

// NewNamingCheck creates a new NamingCheck for source files with the given extension
func NewNamingCheck(validator *NamingValidator, scanner *discovery.Scanner, reporter *ui.Reporter, extension string, logger *zap.Logger) *NamingCheck {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &NamingCheck{
		validator: validator,
		scanner:   scanner,
		reporter:  reporter,
		extension: extension,
		logger:    logger,
	}
}

// Run validates all source files of target, prints the report to w and
// returns a *ViolationError when any rule is broken.
func (c *NamingCheck) Run(w io.Writer, target NamingTarget) (*domain.CheckReport, error) {
	report := newReport(domain.CheckNaming, target.Module)

	var violations []domain.NamingViolation
	filesChecked := 0
	for _, dir := range target.SourceDirs {
		files, err := c.scanner.Scan(dir, c.extension)
		if err != nil {
			c.logger.Warn("skipping test source dir", zap.String("dir", dir), zap.Error(err))
			continue
		}
		for _, path := range files {
			content, err := os.ReadFile(path)
			if err != nil {
				c.logger.Debug("cannot read test source file", zap.String("file", path), zap.Error(err))
				continue
			}
			filesChecked++
			violations = append(violations, c.validator.ValidateFile(domain.SourceFile{Path: path, Content: string(content)})...)
		}
	}

	c.logger.Debug("naming check finished",
		zap.String("module", target.Module),
		zap.Int("files", filesChecked),
		zap.Int("violations", len(violations)))

	report.Violations = violations
	failed := c.reporter.RenderNaming(w, ui.NamingReport{
		Module:       target.Module,
		BaseDir:      target.BaseDir,
		FilesChecked: filesChecked,
		Violations:   violations,
	})
	if failed {
		return fail(report, namingViolationError(len(violations)))
	}

	report.Summary = fmt.Sprintf("%d test source files follow the naming conventions.", filesChecked)
	return report, nil
}
