package execution

import (
	"context"

	"testconv/internal/domain"
)

// Executor runs a build's test command and captures its output
type Executor interface {
	Run(ctx context.Context, argv []string, logPath string) (domain.CommandResult, error)
}
