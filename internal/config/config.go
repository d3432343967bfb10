package config

import (
	"path/filepath"
)

// Config holds all configuration for the application
type Config struct {
	// Project settings
	ProjectDir string   `koanf:"project_dir"`
	Modules    []string `koanf:"modules"`

	// Source checks
	TestSourceDirs  []string `koanf:"test_source_dirs"`
	SourceExtension string   `koanf:"source_extension"`
	SkipDirs        []string `koanf:"skip_dirs"`

	// Compiled checks
	ClassesDir      string   `koanf:"classes_dir"`
	IncludePatterns []string `koanf:"include_patterns"`
	TestOutputLog   string   `koanf:"test_output_log"`

	// Output settings
	ReportDir  string `koanf:"report_dir"`
	SaveReport bool   `koanf:"save_report"`
	Verbose    bool   `koanf:"verbose"`
	NoColor    bool   `koanf:"no_color"`
}

// Module is one module of the project with its paths resolved
type Module struct {
	Name          string
	Dir           string
	SourceDirs    []string
	ClassesDir    string
	TestOutputLog string
}

// New creates a new Config with defaults
func New() *Config {
	return &Config{
		ProjectDir:      DefaultProjectDir,
		Modules:         append([]string(nil), DefaultModules...),
		TestSourceDirs:  append([]string(nil), DefaultTestSourceDirs...),
		SourceExtension: DefaultSourceExtension,
		SkipDirs:        append([]string(nil), DefaultSkipDirs...),
		ClassesDir:      DefaultClassesDir,
		TestOutputLog:   DefaultTestOutputLog,
		ReportDir:       DefaultReportDir,
		SaveReport:      true,
	}
}

// ResolvedModules returns the configured modules with absolute paths.
// No configured modules means the project directory itself.
func (c *Config) ResolvedModules() []Module {
	names := c.Modules
	if len(names) == 0 {
		names = DefaultModules
	}

	modules := make([]Module, 0, len(names))
	for _, name := range names {
		dir := resolvePathRelativeTo(name, c.ProjectDir)
		m := Module{
			Name:          moduleName(name, c.ProjectDir),
			Dir:           dir,
			ClassesDir:    resolvePathRelativeTo(c.ClassesDir, dir),
			TestOutputLog: resolvePathRelativeTo(c.TestOutputLog, dir),
		}
		for _, src := range c.TestSourceDirs {
			m.SourceDirs = append(m.SourceDirs, resolvePathRelativeTo(src, dir))
		}
		modules = append(modules, m)
	}
	return modules
}

// GetReportDir returns the absolute report directory
func (c *Config) GetReportDir() string {
	p := resolvePathRelativeTo(c.ReportDir, c.ProjectDir)
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return p
}

// moduleName names a module the way Gradle prints project paths, without the leading colon
func moduleName(name, projectDir string) string {
	clean := filepath.Clean(name)
	if clean == "." {
		return filepath.Base(projectDir)
	}
	return filepath.ToSlash(clean)
}

// resolvePathRelativeTo resolves a path relative to baseDir if it's not absolute.
func resolvePathRelativeTo(path, baseDir string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(baseDir, path)
}
