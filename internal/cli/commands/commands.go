package commands

import (
	"errors"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"expect/internal/cli"
	"expect/internal/config"
	"expect/internal/discovery"
	"expect/internal/execution"
	"expect/internal/parser"
	"expect/internal/ui"
)

// ErrTestsFailed is returned by the run command when any binary failed
var ErrTestsFailed = errors.New("test binaries failed")

// Commands holds all CLI commands
type Commands struct {
	Run  *RunCommand
	List *ListCommand

	sequence *execution.Sequence
}

// NewCommands creates all commands with dependencies. Reports go to out,
// progress and diagnostics to errOut.
func NewCommands(cfg *config.Config, out, errOut io.Writer) *Commands {
	// Initialize dependencies
	filter := discovery.NewFilter()
	runner := execution.NewRunner(cfg)
	sequence := execution.NewSequence(cfg, runner, nil)
	reportParser := parser.NewReportParser()
	formatter := ui.NewFormatter(cfg, out)
	errorViewer := ui.NewErrorViewer(cfg)

	return &Commands{
		Run:      NewRunCommand(cfg, filter, sequence, reportParser, formatter, errorViewer, errOut),
		List:     NewListCommand(cfg, filter, formatter),
		sequence: sequence,
	}
}

// Register registers all commands with cobra
func (c *Commands) Register(rootCmd *cobra.Command, flags *cli.Flags, cfg *config.Config) {
	// Run command
	runCmd := &cobra.Command{
		Use:   "run [flags] BINARY...",
		Short: "Run test binaries one after another",
		Long:  "Execute the given test binaries sequentially, parse their reports and summarize the failures",
		Args:  cobra.MinimumNArgs(1),
		RunE:  c.Run.Execute,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			// Update config with flags after parsing
			return c.apply(flags, cfg)
		},
	}
	runCmd.Flags().StringVarP(&flags.NameFilter, "filter", "f", "", "Filter binaries by name pattern (supports wildcards, e.g., 'net_*' or '*parser*')")
	runCmd.Flags().BoolVar(&flags.FailFast, "fail-fast", false, "Stop after the first failing binary")
	runCmd.Flags().DurationVarP(&flags.Timeout, "timeout", "t", config.DefaultTimeout, "Maximum run time of a single binary")
	runCmd.Flags().StringVar(&flags.EnvFile, "env-file", "", "Dotenv file with extra variables for the binaries (default "+config.DefaultEnvFile+" when present)")
	runCmd.Flags().BoolVarP(&flags.Interactive, "interactive", "i", false, "Open the failure viewer when the run finishes with failures")
	runCmd.Flags().BoolVarP(&flags.Verbose, "verbose", "v", false, "Log diagnostics to stderr")
	runCmd.Flags().BoolVar(&flags.NoColor, "no-color", false, "Disable colored output")
	rootCmd.AddCommand(runCmd)

	// List command
	listCmd := &cobra.Command{
		Use:   "list [flags] BINARY...",
		Short: "List the binaries a run would execute",
		Long:  "Apply the name filter to the given binaries and print them in run order without executing them",
		Args:  cobra.MinimumNArgs(1),
		RunE:  c.List.Execute,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return c.apply(flags, cfg)
		},
	}
	listCmd.Flags().StringVarP(&flags.NameFilter, "filter", "f", "", "Filter binaries by name pattern (supports wildcards, e.g., 'net_*' or '*parser*')")
	listCmd.Flags().BoolVar(&flags.NoColor, "no-color", false, "Disable colored output")
	rootCmd.AddCommand(listCmd)
}

func (c *Commands) apply(flags *cli.Flags, cfg *config.Config) error {
	cfg.Apply(flags.ToConfigFlags())

	logger, err := NewLogger(cfg.Flags.Verbose)
	if err != nil {
		return err
	}
	c.sequence.SetLogger(logger)
	return nil
}

// NewLogger returns a development logger on stderr when verbose, else a nop logger
func NewLogger(verbose bool) (*zap.Logger, error) {
	if !verbose {
		return zap.NewNop(), nil
	}
	return zap.NewDevelopment()
}
