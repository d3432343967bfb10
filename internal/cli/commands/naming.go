package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"testconv/internal/check"
	"testconv/internal/discovery"
	"testconv/internal/watch"
)

// CheckNamingCommand handles the check-naming command
type CheckNamingCommand struct {
	env   *Env
	watch bool
}

// NewCheckNamingCommand creates a new CheckNamingCommand
func NewCheckNamingCommand(env *Env) *CheckNamingCommand {
	return &CheckNamingCommand{env: env}
}

// Execute runs the command
func (nc *CheckNamingCommand) Execute(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	err := nc.runOnce(out)
	if !nc.watch {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	return nc.watchLoop(ctx, out)
}

// runOnce checks every module and joins the per-module errors
func (nc *CheckNamingCommand) runOnce(out io.Writer) error {
	cfg := nc.env.Config
	validator := check.NewNamingValidator(discovery.NewExtractor(), discovery.NewClassifier())
	naming := check.NewNamingCheck(validator, nc.env.sourceScanner(), nc.env.reporter(), cfg.SourceExtension, nc.env.Logger)

	modules := cfg.ResolvedModules()
	var errs []error
	for _, module := range modules {
		report, err := naming.Run(out, check.NamingTarget{
			Module:     module.Name,
			BaseDir:    module.Dir,
			SourceDirs: module.SourceDirs,
		})
		if saveErr := nc.env.saveReport(report); saveErr != nil {
			errs = append(errs, saveErr)
		}
		if err != nil {
			errs = append(errs, moduleError(module.Name, len(modules), err))
		}
	}
	return errors.Join(errs...)
}

func (nc *CheckNamingCommand) watchLoop(ctx context.Context, out io.Writer) error {
	var roots []string
	for _, module := range nc.env.Config.ResolvedModules() {
		roots = append(roots, module.SourceDirs...)
	}

	color.Cyan("Watching test sources for changes. Press Ctrl+C to stop.")
	w := watch.NewWatcher(roots, nc.env.Config.SourceExtension, nc.env.Logger)
	return w.Run(ctx, func() {
		if err := nc.runOnce(out); err != nil {
			nc.env.Logger.Debug("naming check failed", zap.Error(err))
			color.Red("Error: %v", err)
		}
	})
}

// moduleError prefixes err with the module name when more than one module is checked.
// The prefix keeps err in the chain so callers can still errors.As the violation.
func moduleError(module string, modules int, err error) error {
	if modules <= 1 {
		return err
	}
	return fmt.Errorf(":%s: %w", module, err)
}
