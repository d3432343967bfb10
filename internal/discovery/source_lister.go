package discovery

import (
	"os"

	"go.uber.org/zap"

	"testconv/internal/domain"
)

// SourceLister lists test classes declared in source files
type SourceLister struct {
	scanner    *Scanner
	extractor  *Extractor
	classifier *Classifier
	extension  string
	logger     *zap.Logger
}

// NewSourceLister creates a new SourceLister for files with the given extension
func NewSourceLister(scanner *Scanner, extractor *Extractor, classifier *Classifier, extension string, logger *zap.Logger) *SourceLister {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SourceLister{
		scanner:    scanner,
		extractor:  extractor,
		classifier: classifier,
		extension:  extension,
		logger:     logger,
	}
}

// ListFromSources returns the qualified names of test classes under dirs.
// Results are concatenated in directory-then-file order and are not deduplicated.
func (l *SourceLister) ListFromSources(dirs []string) []string {
	var classes []string

	for _, dir := range dirs {
		files, err := l.scanner.Scan(dir, l.extension)
		if err != nil {
			l.logger.Warn("skipping source directory", zap.String("dir", dir), zap.Error(err))
			continue
		}

		for _, file := range files {
			classes = append(classes, l.listFile(file)...)
		}
	}

	return classes
}

func (l *SourceLister) listFile(path string) []string {
	content, err := os.ReadFile(path)
	if err != nil {
		l.logger.Debug("skipping unreadable source file", zap.String("file", path), zap.Error(err))
		return nil
	}

	text := string(content)
	pkg, _ := l.extractor.PackageName(text)

	var classes []string
	for _, info := range l.extractor.Extract(text) {
		if l.classifier.IsTestClass(info.ClassName, info.InheritsFrom) {
			classes = append(classes, domain.QualifiedName(pkg, info.ClassName))
		}
	}
	return classes
}
