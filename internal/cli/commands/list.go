package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"testconv/internal/discovery"
)

const (
	sourceListing   = "source"
	compiledListing = "compiled"
)

// ListCommand handles the list command
type ListCommand struct {
	env    *Env
	from   string
	all    bool
	filter string
}

// NewListCommand creates a new ListCommand
func NewListCommand(env *Env) *ListCommand {
	return &ListCommand{env: env, from: sourceListing}
}

// Execute runs the command
func (lc *ListCommand) Execute(cmd *cobra.Command, args []string) error {
	cfg := lc.env.Config
	reporter := lc.env.reporter()
	classifier := discovery.NewClassifier()

	var patterns []string
	if lc.filter != "" {
		patterns = []string{lc.filter}
	}
	matcher := discovery.NewIncludeMatcher(patterns)

	for _, module := range cfg.ResolvedModules() {
		var classes []string
		var title string

		switch lc.from {
		case compiledListing:
			mode := discovery.ListTestsOnly
			if lc.all {
				mode = discovery.ListAll
			}
			lister := discovery.NewCompiledLister(lc.env.classScanner(), classifier, lc.env.Logger)
			classes = lister.ListFromCompiled(module.ClassesDir, mode)
			title = fmt.Sprintf("Test Classes in :%s module (from compiled classes)", module.Name)
		default:
			lister := discovery.NewSourceLister(lc.env.sourceScanner(), discovery.NewExtractor(), classifier, cfg.SourceExtension, lc.env.Logger)
			classes = lister.ListFromSources(module.SourceDirs)
			title = fmt.Sprintf("Test Classes in :%s module", module.Name)
		}

		reporter.RenderClassList(cmd.OutOrStdout(), title, matcher.Filter(classes))
	}
	return nil
}
