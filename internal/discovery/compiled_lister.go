package discovery

import (
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"testconv/internal/domain"
)

const (
	// ClassFileExtension is the extension of compiled class files
	ClassFileExtension = "class"
	// InnerClassMarker marks inner and anonymous class files
	InnerClassMarker = "$"
)

// ListMode selects which compiled classes are listed
type ListMode int

const (
	// ListTestsOnly keeps classes whose simple name passes the test name rule
	ListTestsOnly ListMode = iota
	// ListAll keeps every top-level compiled class
	ListAll
)

// CompiledLister lists classes from a compiled classes directory
type CompiledLister struct {
	scanner    *Scanner
	classifier *Classifier
	logger     *zap.Logger
}

// NewCompiledLister creates a new CompiledLister
func NewCompiledLister(scanner *Scanner, classifier *Classifier, logger *zap.Logger) *CompiledLister {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CompiledLister{scanner: scanner, classifier: classifier, logger: logger}
}

// ListFromCompiled returns qualified class names found under dir. It never fails:
// a missing or unreadable directory yields an empty list.
func (l *CompiledLister) ListFromCompiled(dir string, mode ListMode) []string {
	classes, err := compiledClasses(l.scanner, dir)
	if err != nil {
		l.logger.Warn("failed to list compiled classes", zap.String("dir", dir), zap.Error(err))
		return nil
	}

	var names []string
	for _, c := range classes {
		if mode == ListTestsOnly && !l.classifier.IsTestName(domain.SimpleName(c.name)) {
			continue
		}
		names = append(names, c.name)
	}
	return names
}

// compiledClass is a top-level class file and the qualified name derived from its path
type compiledClass struct {
	name string
	path string
}

// compiledClasses finds top-level class files under dir, skipping inner and anonymous classes
func compiledClasses(scanner *Scanner, dir string) ([]compiledClass, error) {
	files, err := scanner.Scan(dir, ClassFileExtension)
	if err != nil {
		return nil, err
	}

	root := filepath.Clean(dir)
	var classes []compiledClass
	for _, file := range files {
		if strings.Contains(filepath.Base(file), InnerClassMarker) {
			continue
		}
		rel, err := filepath.Rel(root, file)
		if err != nil {
			continue
		}
		name := strings.TrimSuffix(rel, "."+ClassFileExtension)
		name = strings.ReplaceAll(name, string(filepath.Separator), ".")
		classes = append(classes, compiledClass{name: name, path: file})
	}
	return classes, nil
}
