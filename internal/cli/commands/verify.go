package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"testconv/internal/check"
	"testconv/internal/execution"
	"testconv/internal/parser"
)

// VerifyOutputCommand handles the verify-output command
type VerifyOutputCommand struct {
	env *Env
}

// NewVerifyOutputCommand creates a new VerifyOutputCommand
func NewVerifyOutputCommand(env *Env) *VerifyOutputCommand {
	return &VerifyOutputCommand{env: env}
}

// Execute runs the command. Arguments after -- are the test command to run first.
func (vc *VerifyOutputCommand) Execute(cmd *cobra.Command, args []string) error {
	var testCommand []string
	if dash := cmd.ArgsLenAtDash(); dash >= 0 {
		testCommand = args[dash:]
		args = args[:dash]
	}
	if len(args) > 0 {
		return fmt.Errorf("unexpected arguments %v: put the test command after --", args)
	}

	outputCheck := check.NewOutputCheck(parser.NewOutputParser(), vc.env.reporter(), vc.env.Logger)
	modules := vc.env.Config.ResolvedModules()

	var errs []error
	for _, module := range modules {
		if len(testCommand) > 0 {
			var runner execution.Executor = execution.NewRunner(module.Dir, cmd.ErrOrStderr(), vc.env.Logger)
			if _, err := runner.Run(cmd.Context(), testCommand, module.TestOutputLog); err != nil {
				errs = append(errs, moduleError(module.Name, len(modules), err))
				continue
			}
		}

		report, err := outputCheck.Run(cmd.OutOrStdout(), module.Name, module.TestOutputLog)
		if saveErr := vc.env.saveReport(report); saveErr != nil {
			errs = append(errs, saveErr)
		}
		if err != nil {
			errs = append(errs, moduleError(module.Name, len(modules), err))
		}
	}
	return errors.Join(errs...)
}
