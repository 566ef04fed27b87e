package commands

import (
	"github.com/spf13/cobra"

	"expect/internal/config"
	"expect/internal/discovery"
	"expect/internal/ui"
)

// ListCommand handles the list command
type ListCommand struct {
	config    *config.Config
	filter    *discovery.Filter
	formatter *ui.Formatter
}

// NewListCommand creates a new ListCommand
func NewListCommand(
	cfg *config.Config,
	filter *discovery.Filter,
	formatter *ui.Formatter,
) *ListCommand {
	return &ListCommand{
		config:    cfg,
		filter:    filter,
		formatter: formatter,
	}
}

// Execute runs the command
func (lc *ListCommand) Execute(cmd *cobra.Command, args []string) error {
	binaries := lc.filter.Unique(args)
	binaries = lc.filter.FilterByName(binaries, lc.config.Flags.NameFilter)

	if len(binaries) == 0 {
		lc.formatter.PrintNotice("No test binaries found")
		return nil
	}

	lc.formatter.PrintBinaryList(binaries)
	return nil
}
