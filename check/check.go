package check

import (
	"cmp"
	"fmt"

	gocmp "github.com/google/go-cmp/cmp"

	"expect/internal/callsite"
)

// Equal fails unless a == b.
func Equal[T comparable](a, b T) {
	if a == b {
		return
	}
	loc := callsite.Capture(1)
	x := callsite.Args(loc, "Equal", 2)
	raise(loc, equalityMessage(x[0], x[1], a, b))
}

// EqualMsg fails unless a == b, adding note to the report.
func EqualMsg[T comparable](a, b T, note string) {
	if a == b {
		return
	}
	loc := callsite.Capture(1)
	x := callsite.Args(loc, "EqualMsg", 2)
	head := fmt.Sprintf("Equality test failed: %s != %s (%s)", x[0], x[1], note)
	raise(loc, withValues(head, x[0], x[1], a, b))
}

// NotEqual fails if a == b.
func NotEqual[T comparable](a, b T) {
	if a != b {
		return
	}
	loc := callsite.Capture(1)
	x := callsite.Args(loc, "NotEqual", 2)
	raise(loc, fmt.Sprintf("Inequality test failed: %s == %s (== %v)", x[0], x[1], a))
}

// True fails unless x is true. The report reads like Equal(x, true).
func True(x bool) {
	equalBool(x, true, "True")
}

// False fails unless x is false. The report reads like Equal(x, false).
func False(x bool) {
	equalBool(x, false, "False")
}

func equalBool(x, want bool, callee string) {
	if x == want {
		return
	}
	// Two frames up: True or False, then their caller.
	loc := callsite.Capture(2)
	text := callsite.Args(loc, callee, 1)[0]
	raise(loc, equalityMessage(text, fmt.Sprint(want), x, want))
}

// GreaterOrEqual fails if stmt < bound.
func GreaterOrEqual[T cmp.Ordered](stmt, bound T) {
	if !(stmt < bound) {
		return
	}
	loc := callsite.Capture(1)
	x := callsite.Args(loc, "GreaterOrEqual", 2)
	raise(loc, comparisonMessage(x[0], x[1], "<", stmt, bound))
}

// LessOrEqual fails if stmt > bound.
func LessOrEqual[T cmp.Ordered](stmt, bound T) {
	if !(stmt > bound) {
		return
	}
	loc := callsite.Capture(1)
	x := callsite.Args(loc, "LessOrEqual", 2)
	raise(loc, comparisonMessage(x[0], x[1], ">", stmt, bound))
}

// DeepEqual fails unless a and b are equal according to go-cmp. Use it for
// slices, maps and structs that == cannot compare. Values with unexported
// fields make cmp panic, which the driver reports as an unexpected error.
func DeepEqual[T any](a, b T) {
	if gocmp.Equal(a, b) {
		return
	}
	loc := callsite.Capture(1)
	x := callsite.Args(loc, "DeepEqual", 2)
	msg := equalityMessage(x[0], x[1], a, b)
	raise(loc, fmt.Sprintf("%s\ndiff (-%s +%s):\n%s", msg, x[0], x[1], gocmp.Diff(a, b)))
}

// Fail fails unconditionally with msg as the whole report message.
func Fail(msg string) {
	raise(callsite.Capture(1), msg)
}

func equalityMessage(exprA, exprB string, a, b any) string {
	return withValues(fmt.Sprintf("Equality test failed: %s != %s", exprA, exprB), exprA, exprB, a, b)
}

func comparisonMessage(exprS, exprV, op string, s, v any) string {
	return withValues(fmt.Sprintf("Comparison failed: %s %s %s", exprS, op, exprV), exprS, exprV, s, v)
}

func withValues(head, exprA, exprB string, a, b any) string {
	return fmt.Sprintf("%s\n%s = %v\n%s = %v", head, exprA, a, exprB, b)
}
