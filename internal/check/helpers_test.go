package check

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"testconv/internal/discovery"
	"testconv/internal/parser"
	"testconv/internal/ui"
)

// writeFile creates baseDir/relativePath with content, creating parent directories
func writeFile(t *testing.T, baseDir, relativePath, content string) string {
	t.Helper()
	path := filepath.Join(baseDir, filepath.FromSlash(relativePath))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func newTestValidator() *NamingValidator {
	return NewNamingValidator(discovery.NewExtractor(), discovery.NewClassifier())
}

func newTestNamingCheck(t *testing.T) *NamingCheck {
	logger := zaptest.NewLogger(t)
	return NewNamingCheck(newTestValidator(), discovery.NewScanner(nil, logger), ui.NewReporter(true), "kt", logger)
}

func newTestInclusionCheck(t *testing.T) *InclusionCheck {
	logger := zaptest.NewLogger(t)
	return NewInclusionCheck(discovery.NewDetector(discovery.NewScanner(nil, logger), logger), ui.NewReporter(true), logger)
}

func newTestOutputCheck(t *testing.T) *OutputCheck {
	return NewOutputCheck(parser.NewOutputParser(), ui.NewReporter(true), zaptest.NewLogger(t))
}
