package domain

// Check names used for reports and storage keys
const (
	CheckNaming    = "naming"
	CheckInclusion = "inclusion"
	CheckOutput    = "output"
)

// CheckReport is the stored record of one check run
type CheckReport struct {
	ID         string            `json:"id"`
	Check      string            `json:"check"`
	Module     string            `json:"module"`
	Timestamp  string            `json:"timestamp"`
	Passed     bool              `json:"passed"`
	Violations []NamingViolation `json:"violations,omitempty"`
	Patterns   []string          `json:"patterns,omitempty"`
	Discovered []string          `json:"discovered,omitempty"`
	Excluded   []string          `json:"excluded,omitempty"`
	Summary    string            `json:"summary"`
}

// TestCounts holds the test totals printed by a build's test task
type TestCounts struct {
	Total   int `json:"total"`
	Failed  int `json:"failed"`
	Skipped int `json:"skipped"`
}

// CommandResult is the outcome of running the build's test command
type CommandResult struct {
	Command []string // Command line that was executed
	Success bool     // Whether the command exited with status 0
	LogPath string   // File the combined output was written to
	Output  string   // Combined stdout and stderr
	Error   error    // Error if execution failed
}
