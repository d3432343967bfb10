package main

import (
	"fmt"
	"os"

	"testconv/internal/cli"
	"testconv/internal/cli/commands"
	"testconv/internal/config"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	rootCmd := &cobra.Command{
		Use:     "testconv",
		Short:   "Test convention checker for Kotlin/JVM projects",
		Long:    `Checks test naming conventions, includeTestsMatching coverage and JUnit precondition failures of Kotlin/JVM test suites. Meant to run as a build step: any violation exits non-zero.`,
		Version: version,
	}

	cfg := config.New()
	var flags cli.Flags
	commands.NewCommands(cfg).Register(rootCmd, &flags, cfg)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
