package check

import (
	"fmt"

	"expect/internal/callsite"
)

// Failure is the signal raised, by panicking, when a check fails.
//
// Failure intentionally does not implement error: recovery code that looks
// for errors cannot swallow it by accident. Only the test driver and the
// Throws helpers recover a *Failure, and the helpers re-panic it unchanged.
type Failure struct {
	File     string
	Line     int
	Function string
	Message  string
}

// String renders the failure the way the driver reports it on one line.
func (f *Failure) String() string {
	return fmt.Sprintf("%s:%d (%s): %s", f.File, f.Line, f.Function, f.Message)
}

// AsFailure reports whether a recovered panic value is a failure signal.
func AsFailure(recovered any) (*Failure, bool) {
	f, ok := recovered.(*Failure)
	return f, ok && f != nil
}

func raise(loc callsite.Location, msg string) {
	panic(&Failure{
		File:     loc.File,
		Line:     loc.Line,
		Function: loc.Function,
		Message:  msg,
	})
}
