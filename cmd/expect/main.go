package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"expect/internal/cli"
	"expect/internal/cli/commands"
	"expect/internal/config"
)

var version = "dev"

func main() {
	// Create root command
	rootCmd := &cobra.Command{
		Use:           "expect",
		Short:         "Sequential runner for expect test binaries",
		Long:          `Runs test binaries built with the expect check and testmain packages one after another, parses their console reports and summarizes what failed.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Create initial config with defaults
	cfg := config.New()

	// Create flags struct (will be populated by command flags)
	var flags cli.Flags

	// Create commands with dependencies
	cmds := commands.NewCommands(cfg, os.Stdout, os.Stderr)

	// Register all commands
	cmds.Register(rootCmd, &flags, cfg)

	// Execute root command
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, commands.ErrTestsFailed) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}
