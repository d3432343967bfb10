package discovery

import (
	"bytes"
	"os"

	"go.uber.org/zap"

	"testconv/internal/domain"
)

// testAnnotationSignatures are the JUnit 5 and JUnit 4 @Test annotation names
// in slash-path and field-descriptor form. All are ASCII, so a byte search is
// the same as a search over the class file decoded as ISO-8859-1.
var testAnnotationSignatures = [][]byte{
	[]byte("org/junit/jupiter/api/Test"),
	[]byte("org/junit/Test"),
	[]byte("Lorg/junit/jupiter/api/Test;"),
	[]byte("Lorg/junit/Test;"),
}

// ProgressReporter receives scan progress updates
type ProgressReporter interface {
	Update(scanned, matched int)
	Finish()
}

// ProgressFactory creates a ProgressReporter for a scan of total files
type ProgressFactory func(total int) ProgressReporter

// Detector finds compiled classes that reference a JUnit @Test annotation.
// It sniffs raw bytes and does not parse the constant pool, so incidental
// occurrences of a signature also count.
type Detector struct {
	scanner  *Scanner
	logger   *zap.Logger
	progress ProgressFactory
}

// NewDetector creates a new Detector
func NewDetector(scanner *Scanner, logger *zap.Logger) *Detector {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Detector{scanner: scanner, logger: logger}
}

// SetProgress sets the factory used to report scan progress
func (d *Detector) SetProgress(progress ProgressFactory) {
	d.progress = progress
}

// DiscoverTestClasses returns the qualified names of classes under dir containing a test annotation signature
func (d *Detector) DiscoverTestClasses(dir string) domain.ClassSet {
	found := domain.NewClassSet()

	classes, err := compiledClasses(d.scanner, dir)
	if err != nil {
		d.logger.Warn("failed to discover JUnit test classes", zap.String("dir", dir), zap.Error(err))
		return found
	}

	var progress ProgressReporter
	if d.progress != nil && len(classes) > 0 {
		progress = d.progress(len(classes))
	}

	for i, class := range classes {
		if d.HasTestAnnotation(class.path) {
			found.Add(class.name)
		}
		if progress != nil {
			progress.Update(i+1, found.Len())
		}
	}
	if progress != nil {
		progress.Finish()
	}

	return found
}

// HasTestAnnotation reports whether the class file at path contains a test annotation signature.
// A file that cannot be read is not a test class.
func (d *Detector) HasTestAnnotation(path string) bool {
	content, err := os.ReadFile(path)
	if err != nil {
		d.logger.Debug("cannot analyze class file", zap.String("file", path), zap.Error(err))
		return false
	}
	for _, signature := range testAnnotationSignatures {
		if bytes.Contains(content, signature) {
			return true
		}
	}
	return false
}
