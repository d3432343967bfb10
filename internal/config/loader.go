package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// listKeys are read from environment variables as comma separated lists
var listKeys = map[string]bool{
	"modules":          true,
	"test_source_dirs": true,
	"skip_dirs":        true,
	"include_patterns": true,
}

// flagKeys maps CLI flag names to config keys. Flags not listed are command options, not configuration.
var flagKeys = map[string]string{
	"project-dir":     "project_dir",
	"module":          "modules",
	"source-dir":      "test_source_dirs",
	"source-ext":      "source_extension",
	"classes-dir":     "classes_dir",
	"include":         "include_patterns",
	"test-output-log": "test_output_log",
	"report-dir":      "report_dir",
	"save-report":     "save_report",
	"verbose":         "verbose",
	"no-color":        "no_color",
}

// Load loads configuration from defaults, the config file, .env, environment variables and flags.
// Precedence (highest to lowest): flags > env vars > config file > defaults
func Load(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")
	defaults := New()

	projectDir := inferProjectDir(flags)

	// 1. Defaults
	if err := k.Load(confmap.Provider(map[string]interface{}{
		"project_dir":      projectDir,
		"modules":          defaults.Modules,
		"test_source_dirs": defaults.TestSourceDirs,
		"source_extension": defaults.SourceExtension,
		"skip_dirs":        defaults.SkipDirs,
		"classes_dir":      defaults.ClassesDir,
		"include_patterns": []string{},
		"test_output_log":  defaults.TestOutputLog,
		"report_dir":       defaults.ReportDir,
		"save_report":      defaults.SaveReport,
		"verbose":          false,
		"no_color":         false,
	}, "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// 2. Config file
	if cfgFile == "" {
		candidate := filepath.Join(projectDir, DefaultConfigFile)
		if _, err := os.Stat(candidate); err == nil {
			cfgFile = candidate
		}
	}
	if cfgFile != "" {
		if err := k.Load(file.Provider(cfgFile), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", cfgFile, err)
		}
	}

	// 3. .env in the project directory; variables already set win
	if err := godotenv.Load(filepath.Join(projectDir, ".env")); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	// 4. Environment variables: TESTCONV_INCLUDE_PATTERNS -> include_patterns
	if err := k.Load(env.ProviderWithValue(EnvPrefix, ".", func(key, value string) (string, interface{}) {
		key = strings.ToLower(strings.TrimPrefix(key, EnvPrefix))
		if listKeys[key] {
			return key, splitList(value)
		}
		return key, value
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	// 5. Flags that were explicitly set
	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			key, ok := flagKeys[f.Name]
			if !ok || !f.Changed {
				return "", nil
			}
			return key, posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if abs, err := filepath.Abs(cfg.ProjectDir); err == nil {
		cfg.ProjectDir = abs
	}
	if cfg.SourceExtension == "" {
		cfg.SourceExtension = DefaultSourceExtension
	}
	cfg.SourceExtension = strings.TrimPrefix(cfg.SourceExtension, ".")

	return &cfg, nil
}

// inferProjectDir returns the --project-dir flag, or TESTCONV_PROJECT_DIR, or the working directory
func inferProjectDir(flags *pflag.FlagSet) string {
	if flags != nil && flags.Changed("project-dir") {
		if dir, _ := flags.GetString("project-dir"); dir != "" {
			return absOrClean(dir)
		}
	}
	if dir := os.Getenv(EnvPrefix + "PROJECT_DIR"); dir != "" {
		return absOrClean(dir)
	}
	return absOrClean(DefaultProjectDir)
}

func absOrClean(dir string) string {
	if abs, err := filepath.Abs(dir); err == nil {
		return abs
	}
	return filepath.Clean(dir)
}

func splitList(value string) []string {
	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
