package commands

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"testconv/internal/cli"
	"testconv/internal/config"
	"testconv/internal/discovery"
	"testconv/internal/domain"
	"testconv/internal/logging"
	"testconv/internal/storage"
	"testconv/internal/ui"
)

// Env carries the loaded configuration and logger to every command
type Env struct {
	Config *config.Config
	Logger *zap.Logger
}

func (e *Env) reporter() *ui.Reporter {
	return ui.NewReporter(e.Config.NoColor)
}

// sourceScanner skips the configured skip_dirs; compiled class trees are walked without skips
func (e *Env) sourceScanner() *discovery.Scanner {
	return discovery.NewScanner(e.Config.SkipDirs, e.Logger)
}

func (e *Env) classScanner() *discovery.Scanner {
	return discovery.NewScanner(nil, e.Logger)
}

func (e *Env) storage() storage.Storage {
	return storage.NewJSONStorage(e.Config.GetReportDir())
}

// saveReport stores the report when report saving is enabled
func (e *Env) saveReport(report *domain.CheckReport) error {
	if report == nil || !e.Config.SaveReport {
		return nil
	}
	if err := e.storage().Save(report); err != nil {
		return fmt.Errorf("failed to save %s report: %w", report.Check, err)
	}
	return nil
}

// Commands holds all CLI commands
type Commands struct {
	env            *Env
	CheckNaming    *CheckNamingCommand
	CheckInclusion *CheckInclusionCommand
	List           *ListCommand
	VerifyOutput   *VerifyOutputCommand
	Browse         *BrowseCommand
}

// NewCommands creates all commands. Their environment is filled in once flags are parsed.
func NewCommands(cfg *config.Config) *Commands {
	env := &Env{Config: cfg, Logger: zap.NewNop()}

	return &Commands{
		env:            env,
		CheckNaming:    NewCheckNamingCommand(env),
		CheckInclusion: NewCheckInclusionCommand(env),
		List:           NewListCommand(env),
		VerifyOutput:   NewVerifyOutputCommand(env),
		Browse:         NewBrowseCommand(env),
	}
}

// Register registers all commands with cobra
func (c *Commands) Register(rootCmd *cobra.Command, flags *cli.Flags, cfg *config.Config) {
	rootCmd.SilenceUsage = true
	rootCmd.SilenceErrors = true

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&flags.ConfigFile, "config", "c", "", "Config file (default: <project-dir>/testconv.yaml)")
	pf.StringVarP(&flags.ProjectDir, "project-dir", "p", "", "Project root directory (default: current directory)")
	pf.StringSliceVarP(&flags.Modules, "module", "m", nil, "Module directory relative to the project (repeatable)")
	pf.StringSliceVar(&flags.SourceDirs, "source-dir", nil, "Test source root relative to a module (repeatable)")
	pf.StringVar(&flags.SourceExt, "source-ext", config.DefaultSourceExtension, "Test source file extension")
	pf.StringVar(&flags.ClassesDir, "classes-dir", config.DefaultClassesDir, "Compiled test classes directory relative to a module")
	pf.StringSliceVarP(&flags.Include, "include", "i", nil, "includeTestsMatching pattern (repeatable, supports * and ?)")
	pf.StringVar(&flags.TestOutputLog, "test-output-log", config.DefaultTestOutputLog, "Test task output log relative to a module")
	pf.StringVar(&flags.ReportDir, "report-dir", config.DefaultReportDir, "Directory reports are saved to, relative to the project")
	pf.BoolVar(&flags.SaveReport, "save-report", true, "Save the report of each check run")
	pf.BoolVarP(&flags.Verbose, "verbose", "v", false, "Enable debug logging")
	pf.BoolVar(&flags.NoColor, "no-color", false, "Disable colored output")

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(flags.ConfigFile, cmd.Flags())
		if err != nil {
			return err
		}
		*cfg = *loaded

		logger, err := logging.New(cfg.Verbose)
		if err != nil {
			return err
		}
		c.env.Logger = logger

		if cfg.NoColor {
			color.NoColor = true
		}
		return nil
	}
	rootCmd.PersistentPostRun = func(cmd *cobra.Command, args []string) {
		_ = c.env.Logger.Sync()
	}

	// Check naming command
	namingCmd := &cobra.Command{
		Use:   "check-naming",
		Short: "Check test file naming conventions",
		Long: `Validate every test source file: one test class per file, file name equal to the class name,
and test class names ending in Test or Spec.`,
		Args: cobra.NoArgs,
		RunE: c.CheckNaming.Execute,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			c.CheckNaming.watch = flags.Watch
			return nil
		},
	}
	namingCmd.Flags().BoolVarP(&flags.Watch, "watch", "w", false, "Re-run the check whenever a test source file changes")
	rootCmd.AddCommand(namingCmd)

	// Check inclusion command
	inclusionCmd := &cobra.Command{
		Use:   "check-inclusion",
		Short: "Check that every JUnit test class matches the include patterns",
		Long:  "Scan compiled test classes for JUnit @Test annotations and report the ones no includeTestsMatching pattern selects",
		Args:  cobra.NoArgs,
		RunE:  c.CheckInclusion.Execute,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			c.CheckInclusion.progress = flags.Progress
			return nil
		},
	}
	inclusionCmd.Flags().BoolVar(&flags.Progress, "progress", false, "Show a progress bar while scanning class files")
	rootCmd.AddCommand(inclusionCmd)

	// List command
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List discovered test classes",
		Long:  "List test classes found in test sources or in compiled test classes without running any check",
		Args:  cobra.NoArgs,
		RunE:  c.List.Execute,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			switch flags.From {
			case sourceListing, compiledListing:
			default:
				return fmt.Errorf("invalid --from %q: must be %q or %q", flags.From, sourceListing, compiledListing)
			}
			c.List.from = flags.From
			c.List.all = flags.All
			c.List.filter = flags.Filter
			return nil
		},
	}
	listCmd.Flags().StringVar(&flags.From, "from", sourceListing, "Where to discover classes: source or compiled")
	listCmd.Flags().BoolVarP(&flags.All, "all", "a", false, "List every compiled class, not only tests (with --from compiled)")
	listCmd.Flags().StringVarP(&flags.Filter, "filter", "f", "", "Only list classes matching a pattern (supports wildcards, e.g. 'com.example.*Test')")
	rootCmd.AddCommand(listCmd)

	// Verify output command
	verifyCmd := &cobra.Command{
		Use:   "verify-output [-- test command...]",
		Short: "Check test output for JUnit precondition failures",
		Long: `Scan the test task output log for org.junit.platform.commons.PreconditionViolationException.
When a command is given after --, it is run first in each module and its output replaces the log.`,
		RunE: c.VerifyOutput.Execute,
	}
	rootCmd.AddCommand(verifyCmd)

	// Browse command
	browseCmd := &cobra.Command{
		Use:   "browse",
		Short: "Browse the last saved report interactively",
		Long:  "Display the last saved report of a check in an interactive viewer.\nWith several modules, pick one with --module.",
		Args:  cobra.NoArgs,
		RunE:  c.Browse.Execute,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			switch flags.Check {
			case domain.CheckNaming, domain.CheckInclusion, domain.CheckOutput:
			default:
				return fmt.Errorf("invalid --check %q: must be %s, %s or %s",
					flags.Check, domain.CheckNaming, domain.CheckInclusion, domain.CheckOutput)
			}
			c.Browse.check = flags.Check
			return nil
		},
	}
	browseCmd.Flags().StringVar(&flags.Check, "check", domain.CheckNaming, "Report to browse: naming, inclusion or output")
	rootCmd.AddCommand(browseCmd)
}
