package commands

import (
	"errors"

	"github.com/spf13/cobra"

	"testconv/internal/check"
	"testconv/internal/discovery"
	"testconv/internal/ui"
)

// CheckInclusionCommand handles the check-inclusion command
type CheckInclusionCommand struct {
	env      *Env
	progress bool
}

// NewCheckInclusionCommand creates a new CheckInclusionCommand
func NewCheckInclusionCommand(env *Env) *CheckInclusionCommand {
	return &CheckInclusionCommand{env: env}
}

// Execute runs the command
func (ic *CheckInclusionCommand) Execute(cmd *cobra.Command, args []string) error {
	cfg := ic.env.Config

	detector := discovery.NewDetector(ic.env.classScanner(), ic.env.Logger)
	if ic.progress {
		detector.SetProgress(ui.ProgressFactory())
	}
	inclusion := check.NewInclusionCheck(detector, ic.env.reporter(), ic.env.Logger)

	modules := cfg.ResolvedModules()
	var errs []error
	for _, module := range modules {
		report, err := inclusion.Run(cmd.OutOrStdout(), check.InclusionTarget{
			Module:     module.Name,
			ClassesDir: module.ClassesDir,
			Patterns:   cfg.IncludePatterns,
		})
		if saveErr := ic.env.saveReport(report); saveErr != nil {
			errs = append(errs, saveErr)
		}
		if err != nil {
			errs = append(errs, moduleError(module.Name, len(modules), err))
		}
	}
	return errors.Join(errs...)
}
