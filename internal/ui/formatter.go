package ui

import (
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/fatih/color"

	"expect/internal/config"
	"expect/internal/domain"
)

// Formatter formats and displays output
type Formatter struct {
	config *config.Config
	out    io.Writer
}

// NewFormatter creates a new Formatter writing to out
func NewFormatter(cfg *config.Config, out io.Writer) *Formatter {
	return &Formatter{
		config: cfg,
		out:    out,
	}
}

func (f *Formatter) paint(attr color.Attribute) *color.Color {
	c := color.New(attr)
	if f.config.UseColor() {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c
}

// PrintSummary displays run statistics followed by one block per failed binary
func (f *Formatter) PrintSummary(summary domain.RunSummary) {
	cyan := f.paint(color.FgCyan)
	white := f.paint(color.FgWhite)
	green := f.paint(color.FgGreen)
	red := f.paint(color.FgRed)

	// Print header
	fmt.Fprint(f.out, "\n")
	cyan.Fprintln(f.out, "╔═══════════════════════════════════════════════════════════════╗")
	cyan.Fprintln(f.out, "║                    Test Execution Statistics                  ║")
	cyan.Fprintln(f.out, "╚═══════════════════════════════════════════════════════════════╝")

	// Print table
	fmt.Fprintln(f.out, "┌─────────────────────────────────┬─────────────────────────────┐")
	f.printRow("Test Binaries", white, fmt.Sprint(summary.Total))
	fmt.Fprintln(f.out, "├─────────────────────────────────┼─────────────────────────────┤")
	f.printRow("Passed", green, fmt.Sprint(summary.Passed))
	fmt.Fprintln(f.out, "├─────────────────────────────────┼─────────────────────────────┤")
	f.printRow("Failed", red, fmt.Sprint(summary.Failed))
	if summary.Skipped > 0 {
		fmt.Fprintln(f.out, "├─────────────────────────────────┼─────────────────────────────┤")
		f.printRow("Skipped (fail-fast)", white, fmt.Sprint(summary.Skipped))
	}
	fmt.Fprintln(f.out, "├─────────────────────────────────┼─────────────────────────────┤")
	f.printRow("Duration", white, fmt.Sprintf("%.2fs", summary.Duration.Seconds()))
	fmt.Fprintln(f.out, "└─────────────────────────────────┴─────────────────────────────┘")

	// Print summary line
	fmt.Fprintln(f.out)
	if summary.Failed == 0 {
		green.Fprintln(f.out, "✓ All tests passed!")
		return
	}

	red.Fprintf(f.out, "✗ %d test binary(ies) failed\n", summary.Failed)
	fmt.Fprintln(f.out)
	failures := summary.Failures()
	f.printFailedTree(failures)
	for _, report := range failures {
		fmt.Fprintln(f.out)
		f.printFailure(report)
	}
}

func (f *Formatter) printRow(label string, c *color.Color, value string) {
	fmt.Fprintf(f.out, "│ %-31s │ ", label)
	c.Fprintf(f.out, "%-27s │\n", value)
}

// printFailure prints what a failed binary reported
func (f *Formatter) printFailure(report domain.Report) {
	red := f.paint(color.FgRed)
	yellow := f.paint(color.FgYellow)

	red.Fprintf(f.out, "✗ %s", displayName(report))
	fmt.Fprintf(f.out, " (%s, exit %d)\n", report.Outcome, report.ExitCode)

	switch report.Outcome {
	case domain.OutcomeAssertion:
		if report.Failure == nil {
			return
		}
		yellow.Fprintf(f.out, "  %s:%d", report.Failure.File, report.Failure.Line)
		fmt.Fprintf(f.out, " in %s\n", report.Failure.Function)
		fmt.Fprintln(f.out, indent(report.Failure.Message, "  "))
	case domain.OutcomeError:
		fmt.Fprintf(f.out, "  an error escaped the test: %s\n", strings.ReplaceAll(report.Notice, "\n", "\n  "))
	case domain.OutcomeUnknown:
		fmt.Fprintln(f.out, "  a non-error value escaped the test")
	default:
		fmt.Fprintln(f.out, indent(f.tail(report.Notice), "  "))
	}
}

func (f *Formatter) tail(text string) string {
	lines := strings.Split(text, "\n")
	if n := f.config.FailureOutputLines; n > 0 && len(lines) > n {
		lines = lines[len(lines)-n:]
	}
	return strings.Join(lines, "\n")
}

func indent(text, prefix string) string {
	return prefix + strings.ReplaceAll(text, "\n", "\n"+prefix)
}

func displayName(report domain.Report) string {
	if report.TestName != "" {
		return report.TestName
	}
	return filepath.Base(report.Path)
}

// TreeNode represents a node in the directory tree of failed binaries
type TreeNode struct {
	Name     string
	Children map[string]*TreeNode
	Reports  []domain.Report
	IsFile   bool
}

// printFailedTree prints the failed binaries grouped by directory
func (f *Formatter) printFailedTree(failures []domain.Report) {
	if len(failures) == 0 {
		return
	}

	root := &TreeNode{Children: make(map[string]*TreeNode)}
	for _, report := range failures {
		parts := strings.Split(strings.TrimPrefix(filepath.ToSlash(report.Path), "./"), "/")
		current := root
		for i, part := range parts {
			if part == "" {
				continue
			}
			if current.Children[part] == nil {
				current.Children[part] = &TreeNode{
					Name:     part,
					Children: make(map[string]*TreeNode),
					IsFile:   i == len(parts)-1,
				}
			}
			current = current.Children[part]
			if i == len(parts)-1 {
				current.Reports = append(current.Reports, report)
			}
		}
	}

	f.printTreeNode(root, "", true)
}

func (f *Formatter) printTreeNode(node *TreeNode, prefix string, isRoot bool) {
	cyan := f.paint(color.FgCyan)
	yellow := f.paint(color.FgYellow)
	red := f.paint(color.FgRed)

	// Sort children for consistent output
	keys := make([]string, 0, len(node.Children))
	for key := range node.Children {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for i, key := range keys {
		child := node.Children[key]
		isLastChild := i == len(keys)-1

		connector := prefix + "├── "
		if isLastChild {
			connector = prefix + "└── "
		}
		if isRoot {
			connector = ""
		}

		if child.IsFile {
			yellow.Fprintf(f.out, "%s%s\n", connector, child.Name)
		} else {
			cyan.Fprintf(f.out, "%s%s\n", connector, child.Name)
		}

		newPrefix := prefix + "│   "
		if isLastChild {
			newPrefix = prefix + "    "
		}
		if isRoot {
			newPrefix = ""
		}

		for j, report := range child.Reports {
			casePrefix := newPrefix + "├── "
			if j == len(child.Reports)-1 {
				casePrefix = newPrefix + "└── "
			}
			red.Fprintf(f.out, "%s%s\n", casePrefix, failureLabel(report))
		}

		f.printTreeNode(child, newPrefix, false)
	}
}

func failureLabel(report domain.Report) string {
	name := report.TestName
	if name == "" {
		name = "(no test name)"
	}
	if report.Failure != nil {
		return fmt.Sprintf("%s: %s:%d", name, report.Failure.Function, report.Failure.Line)
	}
	return fmt.Sprintf("%s: %s", name, report.Outcome)
}

// PrintBinaryList prints the binaries that a run would execute, in order
func (f *Formatter) PrintBinaryList(paths []string) {
	f.paint(color.FgGreen).Fprintf(f.out, "Found %d test binary(ies):\n\n", len(paths))

	cyan := f.paint(color.FgCyan)
	for i, path := range paths {
		if i == len(paths)-1 {
			cyan.Fprintf(f.out, "└── %s\n", path)
		} else {
			cyan.Fprintf(f.out, "├── %s\n", path)
		}
	}
}

// PrintNotice prints a one-line notice such as an empty selection
func (f *Formatter) PrintNotice(msg string) {
	f.paint(color.FgYellow).Fprintln(f.out, msg)
}

// PrintStart announces a run
func (f *Formatter) PrintStart(count int, failFast bool, timeout time.Duration) {
	mode := "all"
	if failFast {
		mode = "fail-fast"
	}
	f.paint(color.FgCyan).Fprintf(f.out, "Running %d test binary(ies) sequentially (%s, timeout %s)\n", count, mode, timeout)
}
