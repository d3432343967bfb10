package cli

// Flags holds command-line flags.
// Configuration flags are read back through the config loader; the rest are command options.
type Flags struct {
	// Configuration
	ConfigFile    string
	ProjectDir    string
	Modules       []string
	SourceDirs    []string
	SourceExt     string
	ClassesDir    string
	Include       []string
	TestOutputLog string
	ReportDir     string
	SaveReport    bool
	Verbose       bool
	NoColor       bool

	// Command options
	Watch    bool
	From     string
	All      bool
	Filter   string
	Check    string
	Progress bool
}
