package config

const (
	// DefaultProjectDir is the default project directory
	DefaultProjectDir = "."
	// DefaultSourceExtension is the default test source file extension
	DefaultSourceExtension = "kt"
	// DefaultClassesDir is where the test task writes compiled test classes, relative to a module
	DefaultClassesDir = "build/classes/kotlin/test"
	// DefaultTestOutputLog is where the test task output is logged, relative to a module
	DefaultTestOutputLog = "build/test-logs/test-output.log"
	// DefaultReportDir is the default report directory, relative to the project
	DefaultReportDir = ".testconv"
	// DefaultConfigFile is the config file looked up in the project directory
	DefaultConfigFile = "testconv.yaml"
	// EnvPrefix prefixes every environment variable read as configuration
	EnvPrefix = "TESTCONV_"
)

// DefaultModules holds the single root module
var DefaultModules = []string{"."}

// DefaultTestSourceDirs are the test source roots of a module
var DefaultTestSourceDirs = []string{
	"src/test/kotlin",
	"src/test/java",
}

// DefaultSkipDirs are directory names never descended into when scanning test sources.
// Empty: every file under a test source root is checked.
var DefaultSkipDirs = []string{}
