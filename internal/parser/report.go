package parser

import (
	"regexp"
	"strconv"
	"strings"

	"expect/internal/domain"
)

// Console lines written by the test driver.
const (
	startedPrefix  = "Test started: "
	finishedLine   = "Test finished"
	failedLine     = "Test has failed:"
	errorPrefix    = "Test has failed, an exception was thrown: "
	unknownLine    = "Test has failed, an unhandled exception was thrown."
	filePrefix     = "File: "
	linePrefix     = "Line: "
	functionPrefix = "Function: "
)

// crashNoticeTail is how many trailing output lines a crash report keeps.
const crashNoticeTail = 20

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// ReportParser parses the console report of a test binary
type ReportParser struct{}

// NewReportParser creates a new ReportParser
func NewReportParser() *ReportParser {
	return &ReportParser{}
}

// Parse classifies result by the driver lines in its output. Output that
// does not match the exit status is treated as a crash.
func (p *ReportParser) Parse(result domain.BinaryResult) domain.Report {
	report := domain.Report{
		Path:     result.Path,
		ExitCode: result.ExitCode,
		Output:   result.Output,
		Outcome:  domain.OutcomeCrashed,
	}

	lines := strings.Split(ansiPattern.ReplaceAllString(result.Output, ""), "\n")
	for i, line := range lines {
		line = strings.TrimRight(line, "\r")

		switch {
		case strings.HasPrefix(line, startedPrefix) && report.TestName == "":
			report.TestName = strings.TrimPrefix(line, startedPrefix)

		case line == finishedLine && result.Success:
			report.Outcome = domain.OutcomePassed
			return report

		case line == failedLine && !result.Success:
			if failure, ok := parseFailure(lines[i+1:]); ok {
				report.Outcome = domain.OutcomeAssertion
				report.Failure = failure
				return report
			}

		case strings.HasPrefix(line, errorPrefix) && !result.Success:
			report.Outcome = domain.OutcomeError
			rest := append([]string{strings.TrimPrefix(line, errorPrefix)}, lines[i+1:]...)
			report.Notice = strings.TrimRight(strings.Join(rest, "\n"), "\r\n")
			return report

		case line == unknownLine && !result.Success:
			report.Outcome = domain.OutcomeUnknown
			return report
		}
	}

	report.Notice = crashNotice(result, lines)
	return report
}

// parseFailure reads the File, Line and Function lines and takes the rest
// of the output as the message.
func parseFailure(lines []string) (*domain.FailureRecord, bool) {
	if len(lines) < 4 {
		return nil, false
	}

	file, ok := cutPrefix(lines[0], filePrefix)
	if !ok {
		return nil, false
	}
	lineText, ok := cutPrefix(lines[1], linePrefix)
	if !ok {
		return nil, false
	}
	line, err := strconv.Atoi(lineText)
	if err != nil {
		return nil, false
	}
	function, ok := cutPrefix(lines[2], functionPrefix)
	if !ok {
		return nil, false
	}

	message := strings.TrimRight(strings.Join(lines[3:], "\n"), "\r\n")
	return &domain.FailureRecord{
		File:     file,
		Line:     line,
		Function: function,
		Message:  message,
	}, true
}

func cutPrefix(line, prefix string) (string, bool) {
	return strings.CutPrefix(strings.TrimRight(line, "\r"), prefix)
}

func crashNotice(result domain.BinaryResult, lines []string) string {
	if result.Error != nil && strings.TrimSpace(result.Output) == "" {
		return result.Error.Error()
	}
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) > crashNoticeTail {
		lines = lines[len(lines)-crashNoticeTail:]
	}
	return strings.Join(lines, "\n")
}
