package execution

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func requireShell(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}
}

func TestRunner_Run(t *testing.T) {
	requireShell(t)

	t.Run("writes output to log and stream", func(t *testing.T) {
		dir := t.TempDir()
		logPath := filepath.Join(dir, "build", "test-logs", "test-output.log")
		var stream bytes.Buffer

		result, err := NewRunner(dir, &stream, zaptest.NewLogger(t)).
			Run(context.Background(), []string{"sh", "-c", "echo 3 tests completed; echo oops >&2"}, logPath)

		require.NoError(t, err)
		assert.True(t, result.Success)
		assert.Contains(t, result.Output, "3 tests completed")
		assert.Contains(t, result.Output, "oops")
		assert.Equal(t, result.Output, stream.String())

		logged, err := os.ReadFile(logPath)
		require.NoError(t, err)
		assert.Equal(t, result.Output, string(logged))
	})

	t.Run("replaces previous log", func(t *testing.T) {
		dir := t.TempDir()
		logPath := filepath.Join(dir, "test-output.log")
		require.NoError(t, os.WriteFile(logPath, []byte("stale PreconditionViolationException"), 0644))

		_, err := NewRunner(dir, nil, nil).Run(context.Background(), []string{"sh", "-c", "echo fresh"}, logPath)
		require.NoError(t, err)

		logged, err := os.ReadFile(logPath)
		require.NoError(t, err)
		assert.Equal(t, "fresh\n", string(logged))
	})

	t.Run("non-zero exit is not an error", func(t *testing.T) {
		dir := t.TempDir()

		result, err := NewRunner(dir, nil, zaptest.NewLogger(t)).
			Run(context.Background(), []string{"sh", "-c", "exit 3"}, filepath.Join(dir, "out.log"))

		require.NoError(t, err)
		assert.False(t, result.Success)
		assert.Error(t, result.Error)
	})

	t.Run("runs in the module dir", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "marker.txt"), []byte("here"), 0644))

		result, err := NewRunner(dir, nil, nil).
			Run(context.Background(), []string{"sh", "-c", "cat marker.txt"}, filepath.Join(dir, "out.log"))

		require.NoError(t, err)
		assert.Equal(t, "here", result.Output)
	})
}

func TestRunner_RunErrors(t *testing.T) {
	dir := t.TempDir()
	r := NewRunner(dir, nil, nil)

	_, err := r.Run(context.Background(), nil, filepath.Join(dir, "out.log"))
	assert.Error(t, err)

	_, err = r.Run(context.Background(), []string{"testconv-command-that-does-not-exist"}, filepath.Join(dir, "out.log"))
	assert.Error(t, err)
}
