package domain

import (
	"path/filepath"
	"time"
)

// BinaryResult represents the result of executing one test binary
type BinaryResult struct {
	Path     string        // Path to the test binary that was executed
	Success  bool          // Whether the binary exited with status 0
	ExitCode int           // Process exit status, -1 if it never started
	Output   string        // Combined stdout and stderr
	Error    error         // Error if execution failed
	Duration time.Duration // Time taken to execute
}

// Name returns the binary's file name for display.
func (r BinaryResult) Name() string {
	return filepath.Base(r.Path)
}

// RunSummary aggregates the reports of one batch run
type RunSummary struct {
	Total    int
	Passed   int
	Failed   int
	Skipped  int // Binaries not run because fail-fast stopped the batch
	Duration time.Duration
	Reports  []Report
}

// NewRunSummary counts passed and failed reports.
func NewRunSummary(reports []Report, requested int, duration time.Duration) RunSummary {
	summary := RunSummary{
		Total:    requested,
		Duration: duration,
		Reports:  reports,
	}
	for _, r := range reports {
		if r.Outcome == OutcomePassed {
			summary.Passed++
		} else {
			summary.Failed++
		}
	}
	summary.Skipped = requested - len(reports)
	return summary
}

// Failures returns the reports that did not pass, in run order.
func (s RunSummary) Failures() []Report {
	var failed []Report
	for _, r := range s.Reports {
		if r.Outcome != OutcomePassed {
			failed = append(failed, r)
		}
	}
	return failed
}
