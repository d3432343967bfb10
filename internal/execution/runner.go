package execution

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"testconv/internal/domain"
)

// Runner executes a module's test command
type Runner struct {
	dir    string
	stream io.Writer
	logger *zap.Logger
}

// NewRunner creates a new Runner working in dir. Output is also copied to stream when it is not nil.
func NewRunner(dir string, stream io.Writer, logger *zap.Logger) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{dir: dir, stream: stream, logger: logger}
}

// Run executes argv and writes its combined output to logPath, replacing any previous log.
// A command that exits non-zero is reported through the result, not as an error;
// errors are returned only when the log cannot be written or the command cannot start.
func (r *Runner) Run(ctx context.Context, argv []string, logPath string) (domain.CommandResult, error) {
	result := domain.CommandResult{Command: argv, LogPath: logPath}
	if len(argv) == 0 {
		return result, errors.New("no test command given")
	}

	if err := os.MkdirAll(filepath.Dir(logPath), 0755); err != nil {
		return result, fmt.Errorf("create log dir: %w", err)
	}
	logFile, err := os.Create(logPath)
	if err != nil {
		return result, fmt.Errorf("create test output log: %w", err)
	}
	defer logFile.Close()

	var output bytes.Buffer
	writers := []io.Writer{logFile, &output}
	if r.stream != nil {
		writers = append(writers, r.stream)
	}
	out := io.MultiWriter(writers...)

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Env = os.Environ()
	cmd.Dir = r.dir
	cmd.Stdout = out
	cmd.Stderr = out

	r.logger.Info("running test command", zap.String("command", strings.Join(argv, " ")), zap.String("dir", r.dir))
	runErr := cmd.Run()

	result.Output = output.String()
	result.Success = runErr == nil
	result.Error = runErr

	var exitErr *exec.ExitError
	if runErr != nil && !errors.As(runErr, &exitErr) {
		return result, fmt.Errorf("run test command: %w", runErr)
	}
	if exitErr != nil {
		r.logger.Warn("test command failed", zap.Int("exit_code", exitErr.ExitCode()))
	}
	return result, nil
}
