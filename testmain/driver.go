// Package testmain runs a hand-listed sequence of test routines built on
// package check and turns the outcome into a process exit status.
//
//	func main() {
//		testmain.Main("Parser",
//			testEmptyInput,
//			testNestedBlocks,
//		)
//	}
package testmain

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"go.uber.org/zap"

	"expect/check"
)

// Exit statuses of a test binary.
const (
	ExitPassed = 0
	ExitFailed = 1
)

// ErrAlreadyRun is returned when Run is called on a Driver that already ran.
var ErrAlreadyRun = errors.New("test driver already ran")

// Routine is a single test routine. It signals failure by panicking,
// normally through the helpers in package check.
type Routine func()

// State is the driver's position in its run.
type State int

const (
	Started State = iota
	Running
	Passed
	Failed
)

func (s State) String() string {
	switch s {
	case Started:
		return "started"
	case Running:
		return "running"
	case Passed:
		return "passed"
	case Failed:
		return "failed"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Option configures a Driver
type Option func(*Driver)

// WithLogger sets the logger that receives state transitions at debug level.
func WithLogger(logger *zap.Logger) Option {
	return func(d *Driver) {
		if logger != nil {
			d.logger = logger
		}
	}
}

// WithColor enables or disables colored report lines.
func WithColor(enabled bool) Option {
	return func(d *Driver) {
		d.colorize = enabled
	}
}

// Driver runs one named test sequence exactly once.
type Driver struct {
	name     string
	out      io.Writer
	logger   *zap.Logger
	colorize bool
	state    State
	ran      bool
}

// NewDriver creates a Driver that writes its notices to out. Color is off
// unless enabled with WithColor.
func NewDriver(name string, out io.Writer, opts ...Option) *Driver {
	d := &Driver{
		name:   name,
		out:    out,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// State returns the driver's current state.
func (d *Driver) State() State {
	return d.state
}

// Run executes routines in order and returns the exit status. All routines
// share one recovery region: the first failure ends the sequence.
func (d *Driver) Run(routines ...Routine) (int, error) {
	if d.ran {
		return ExitFailed, ErrAlreadyRun
	}
	d.ran = true

	d.transition(Started)
	fmt.Fprintf(d.out, "Test started: %s\n", d.name)

	d.transition(Running)
	recovered, ok := d.runAll(routines)
	if ok {
		d.transition(Passed)
		d.paint(color.FgGreen).Fprintln(d.out, "Test finished")
		return ExitPassed, nil
	}

	d.transition(Failed)
	d.report(recovered)
	return ExitFailed, nil
}

// runAll reports ok=false when any routine panicked.
func (d *Driver) runAll(routines []Routine) (recovered any, ok bool) {
	defer func() {
		if !ok {
			recovered = recover()
		}
	}()
	for i, routine := range routines {
		d.logger.Debug("running routine", zap.String("test", d.name), zap.Int("index", i))
		routine()
	}
	return nil, true
}

func (d *Driver) report(recovered any) {
	red := d.paint(color.FgRed)

	if f, ok := check.AsFailure(recovered); ok {
		d.logger.Debug("assertion failed",
			zap.String("file", f.File),
			zap.Int("line", f.Line),
			zap.String("function", f.Function),
		)
		red.Fprintln(d.out, "Test has failed:")
		fmt.Fprintf(d.out, "File: %s\n", f.File)
		fmt.Fprintf(d.out, "Line: %d\n", f.Line)
		fmt.Fprintf(d.out, "Function: %s\n", f.Function)
		fmt.Fprintln(d.out, f.Message)
		return
	}

	if err, ok := recovered.(error); ok {
		d.logger.Debug("unexpected error", zap.Error(err))
		red.Fprintf(d.out, "Test has failed, an exception was thrown: %v\n", err)
		return
	}

	d.logger.Debug("unhandled panic", zap.String("type", fmt.Sprintf("%T", recovered)))
	red.Fprintln(d.out, "Test has failed, an unhandled exception was thrown.")
}

func (d *Driver) transition(to State) {
	d.logger.Debug("test state", zap.String("test", d.name), zap.Stringer("from", d.state), zap.Stringer("to", to))
	d.state = to
}

func (d *Driver) paint(attr color.Attribute) *color.Color {
	c := color.New(attr)
	if d.colorize {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c
}

// Run drives routines under name against stdout and returns the exit status.
func Run(name string, routines ...Routine) int {
	d := NewDriver(name, os.Stdout, WithColor(!color.NoColor))
	status, _ := d.Run(routines...)
	return status
}

// Main is Run followed by os.Exit. Call it from a test binary's main.
func Main(name string, routines ...Routine) {
	os.Exit(Run(name, routines...))
}
