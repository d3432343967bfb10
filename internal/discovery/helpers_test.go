package discovery

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// writeFile creates baseDir/relativePath with content, creating parent directories
func writeFile(t *testing.T, baseDir, relativePath, content string) string {
	t.Helper()
	path := filepath.Join(baseDir, filepath.FromSlash(relativePath))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}
