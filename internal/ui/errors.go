package ui

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"expect/internal/config"
	"expect/internal/domain"
)

// ErrorViewer displays the failures of the current run in an interactive TUI
type ErrorViewer struct {
	config *config.Config
}

// NewErrorViewer creates a new ErrorViewer
func NewErrorViewer(cfg *config.Config) *ErrorViewer {
	return &ErrorViewer{config: cfg}
}

// View displays failed reports until the user exits
func (ev *ErrorViewer) View(reports []domain.Report) error {
	if len(reports) == 0 {
		color.Green("✓ No test failures found!")
		return nil
	}

	// Reviewed marks only live for this session
	reviewed := make(map[int]bool)

	// Create the application
	app := tview.NewApplication()

	// Create list for failed binaries (left side)
	list := tview.NewList().
		ShowSecondaryText(false).
		SetHighlightFullLine(true)

	getListItemText := func(index int) string {
		name := tview.Escape(displayName(reports[index]))
		if reviewed[index] {
			return fmt.Sprintf("[gray]✓ [yellow]%d.[gray] %s[white]", index+1, name)
		}
		return fmt.Sprintf("[yellow]%d.[white] %s", index+1, name)
	}

	for i := range reports {
		list.AddItem(getListItemText(i), "", 0, nil)
	}

	list.SetMainTextColor(tview.Styles.PrimaryTextColor).
		SetSelectedTextColor(tcell.ColorWhite).
		SetSelectedBackgroundColor(tcell.ColorDarkCyan)

	// Create stats header view (shows path and test name)
	statsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(false).
		SetWordWrap(false)

	// Create text view for failure details (right side)
	detailsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(true).
		SetWordWrap(true)

	detailsContainer := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(detailsView, 0, 1, false).
		AddItem(tview.NewBox(), 2, 0, false)

	rightSide := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(statsView, 3, 0, false).
		AddItem(detailsContainer, 0, 1, false)

	// List on left (1/3), details on right (2/3)
	flex := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(list, 0, 1, true).
		AddItem(rightSide, 0, 2, false)

	headerView := tview.NewTextView().
		SetTextAlign(tview.AlignCenter).
		SetDynamicColors(true)

	updateHeader := func() {
		remaining := 0
		for i := range reports {
			if !reviewed[i] {
				remaining++
			}
		}
		headerView.SetText(fmt.Sprintf(" Failed Test Binaries (%d total, %d not reviewed) | Use ↑↓ to navigate, [yellow]R[white] to mark reviewed, → to view details, ← to go back, Ctrl+C to exit ", len(reports), remaining))
	}
	updateHeader()

	updateDetails := func() {
		index := list.GetCurrentItem()
		if index >= 0 && index < len(reports) {
			statsView.SetText(formatFailureStats(reports[index]))
			detailsView.SetText(formatFailureDetails(reports[index]))
			detailsView.ScrollToBeginning()
		}
	}

	list.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyEnter, tcell.KeyRight:
			app.SetFocus(detailsView)
			return nil
		case tcell.KeyCtrlC:
			app.Stop()
			return nil
		case tcell.KeyRune:
			if event.Rune() == 'r' || event.Rune() == 'R' {
				index := list.GetCurrentItem()
				if index >= 0 && index < len(reports) {
					reviewed[index] = !reviewed[index]
					list.SetItemText(index, getListItemText(index), "")
					updateHeader()
				}
				return nil
			}
		}
		return event
	})

	detailsView.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyLeft, tcell.KeyEsc:
			app.SetFocus(list)
			return nil
		case tcell.KeyCtrlC:
			app.Stop()
			return nil
		}
		return event
	})

	list.SetChangedFunc(func(int, string, string, rune) {
		updateDetails()
	})
	updateDetails()

	mainLayout := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(headerView, 1, 0, false).
		AddItem(tview.NewBox(), 1, 0, false).
		AddItem(flex, 0, 1, true)

	if err := app.SetRoot(mainLayout, true).SetFocus(list).Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}

	return nil
}

// formatFailureDetails formats a failed report using tview color tags ([red], [cyan], etc.)
func formatFailureDetails(report domain.Report) string {
	var builder strings.Builder
	w := tabwriter.NewWriter(&builder, 0, 0, 2, ' ', 0)

	fmt.Fprintf(w, "[red]✗ Test: %s[white]\n\n", tview.Escape(displayName(report)))
	fmt.Fprintf(w, "[cyan]Binary:\t%s[white]\n", tview.Escape(report.Path))
	fmt.Fprintf(w, "[cyan]Outcome:\t%s (exit %d)[white]\n", report.Outcome, report.ExitCode)

	if f := report.Failure; f != nil {
		fmt.Fprintf(w, "[yellow]Location:\t%s:%d[white]\n", tview.Escape(f.File), f.Line)
		fmt.Fprintf(w, "[yellow]Function:\t%s[white]\n", tview.Escape(f.Function))
		w.Flush()
		fmt.Fprintf(&builder, "\n[yellow]Message:[white]\n%s\n", tview.Escape(f.Message))
		return builder.String()
	}
	w.Flush()

	switch report.Outcome {
	case domain.OutcomeError:
		fmt.Fprintf(&builder, "\n[yellow]Error:[white]\n%s\n", tview.Escape(report.Notice))
	case domain.OutcomeUnknown:
		fmt.Fprintf(&builder, "\n[yellow]A non-error value escaped the test.[white]\n")
	default:
		if report.Notice != "" {
			fmt.Fprintf(&builder, "\n[yellow]Output:[white]\n%s\n", tview.Escape(report.Notice))
		}
	}
	return builder.String()
}

// formatFailureStats formats the stats header for a failed report
func formatFailureStats(report domain.Report) string {
	path := report.Path
	if path == "" {
		path = "Unknown path"
	}
	return fmt.Sprintf("[cyan]path:[white] [yellow]%s[white]::[yellow]%s[white]\n", tview.Escape(path), tview.Escape(displayName(report)))
}
