package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"expect/internal/config"
	"expect/internal/discovery"
	"expect/internal/domain"
	"expect/internal/execution"
	"expect/internal/parser"
	"expect/internal/ui"
)

// RunCommand handles the run command
type RunCommand struct {
	config      *config.Config
	filter      *discovery.Filter
	executor    execution.Executor
	parser      parser.Parser
	formatter   *ui.Formatter
	viewer      ui.Viewer
	progressOut io.Writer
}

// NewRunCommand creates a new RunCommand
func NewRunCommand(
	cfg *config.Config,
	filter *discovery.Filter,
	executor execution.Executor,
	reportParser parser.Parser,
	formatter *ui.Formatter,
	viewer ui.Viewer,
	progressOut io.Writer,
) *RunCommand {
	return &RunCommand{
		config:      cfg,
		filter:      filter,
		executor:    executor,
		parser:      reportParser,
		formatter:   formatter,
		viewer:      viewer,
		progressOut: progressOut,
	}
}

// Execute runs the command
func (rc *RunCommand) Execute(cmd *cobra.Command, args []string) error {
	// Filter binaries
	binaries := rc.filter.Unique(args)
	binaries = rc.filter.FilterByName(binaries, rc.config.Flags.NameFilter)

	if len(binaries) == 0 {
		rc.formatter.PrintNotice("No test binaries to execute")
		return nil
	}

	rc.formatter.PrintStart(len(binaries), rc.config.Flags.FailFast, rc.config.Timeout)

	// Create and set progress bar
	rc.executor.SetProgress(ui.NewProgressBar(len(binaries), rc.progressOut, rc.config.UseColor()))

	// Execute binaries
	results, duration, err := rc.executor.Execute(cmd.Context(), binaries)
	if err != nil {
		return fmt.Errorf("test run aborted: %w", err)
	}

	// Parse reports
	reports := make([]domain.Report, 0, len(results))
	for _, result := range results {
		reports = append(reports, rc.parser.Parse(result))
	}

	summary := domain.NewRunSummary(reports, len(binaries), duration)
	rc.formatter.PrintSummary(summary)

	if summary.Failed == 0 {
		return nil
	}

	if rc.config.Flags.Interactive {
		if err := rc.viewer.View(summary.Failures()); err != nil {
			return err
		}
	}
	return ErrTestsFailed
}
