package domain

// Outcome classifies how a test binary's run ended
type Outcome string

const (
	OutcomePassed    Outcome = "passed"
	OutcomeAssertion Outcome = "assertion" // a check failed
	OutcomeError     Outcome = "error"     // an error escaped a routine
	OutcomeUnknown   Outcome = "unknown"   // a non-error value escaped a routine
	OutcomeCrashed   Outcome = "crashed"   // no recognizable report
)

// FailureRecord is the failure block printed by a test binary
type FailureRecord struct {
	File     string
	Line     int
	Function string
	Message  string
}

// Report is the parsed console report of one test binary
type Report struct {
	Path     string
	TestName string // Name from the "Test started:" line
	Outcome  Outcome
	Failure  *FailureRecord // Set for OutcomeAssertion
	Notice   string         // Error text for OutcomeError, raw output tail for OutcomeCrashed
	ExitCode int
	Output   string
}
