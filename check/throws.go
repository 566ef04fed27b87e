package check

import (
	"errors"
	"fmt"
	"reflect"

	"expect/internal/callsite"
)

// Throws fails unless stmt panics with an error that errors.As can match to E.
//
// A *Failure raised inside stmt is re-panicked as is, so a failing nested
// check is reported as itself and never as the wrong kind of error. Other
// errors and non-error panic values are replaced by a new Failure describing
// what was thrown instead.
func Throws[E error](stmt func()) {
	recovered, panicked := capture(stmt)
	if f, ok := AsFailure(recovered); ok {
		panic(f)
	}

	kind := typeName[E]()
	loc := callsite.Capture(1)
	if !panicked {
		raise(loc, fmt.Sprintf("Failed to throw an exception of type %s", kind))
	}

	err, isErr := recovered.(error)
	if !isErr {
		raise(loc, fmt.Sprintf("An unexpected unknown exception object was thrown, was expecting type %s (got %T)", kind, recovered))
	}

	var target E
	if errors.As(err, &target) {
		return
	}
	raise(loc, fmt.Sprintf("An unexpected error was thrown, was expecting type %s. Error (%T) message is: %v", kind, err, err))
}

// ThrowsAny fails unless stmt panics. A *Failure raised inside stmt is
// re-panicked unchanged; any other panic value counts as success.
func ThrowsAny(stmt func()) {
	recovered, panicked := capture(stmt)
	if f, ok := AsFailure(recovered); ok {
		panic(f)
	}
	if !panicked {
		raise(callsite.Capture(1), "Failed to throw an exception of any type")
	}
}

// capture runs stmt and returns whatever it panicked with. panicked is
// tracked separately because a nil recover() result does not prove stmt
// returned normally.
func capture(stmt func()) (recovered any, panicked bool) {
	panicked = true
	defer func() {
		if panicked {
			recovered = recover()
		}
	}()
	stmt()
	panicked = false
	return nil, false
}

func typeName[E any]() string {
	return reflect.TypeOf((*E)(nil)).Elem().String()
}
