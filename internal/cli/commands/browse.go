package commands

import (
	"errors"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"testconv/internal/domain"
	"testconv/internal/storage"
	"testconv/internal/ui"
)

// BrowseCommand handles the browse command
type BrowseCommand struct {
	env    *Env
	check  string
	viewer ui.Viewer
}

// NewBrowseCommand creates a new BrowseCommand
func NewBrowseCommand(env *Env) *BrowseCommand {
	return &BrowseCommand{env: env, check: domain.CheckNaming, viewer: ui.NewReportViewer()}
}

// Execute runs the command.
// Reports are kept per module; the first configured module is shown.
func (bc *BrowseCommand) Execute(cmd *cobra.Command, args []string) error {
	module := bc.env.Config.ResolvedModules()[0].Name
	report, err := bc.env.storage().Load(bc.check, module)
	if err != nil {
		if errors.Is(err, storage.ErrNoReport) {
			color.Yellow("No saved %s report for module %s. Run the check first.", bc.check, module)
			return nil
		}
		return err
	}

	return bc.viewer.View(report)
}
