// Command selftest is a test binary for a small bounded stack, written with
// the check and testmain packages. It exits 0 when every routine passes.
package main

import (
	"errors"
	"fmt"
	"strconv"

	"expect/check"
	"expect/testmain"
)

var errEmpty = errors.New("stack is empty")

type overflowError struct{ capacity int }

func (e *overflowError) Error() string {
	return fmt.Sprintf("stack capacity %d exceeded", e.capacity)
}

type stack struct {
	items    []int
	capacity int
}

func newStack(capacity int) *stack {
	return &stack{capacity: capacity}
}

// push panics with *overflowError when the stack is full
func (s *stack) push(v int) {
	if len(s.items) == s.capacity {
		panic(&overflowError{capacity: s.capacity})
	}
	s.items = append(s.items, v)
}

func (s *stack) pop() int {
	if len(s.items) == 0 {
		panic(errEmpty)
	}
	v := s.items[len(s.items)-1]
	s.items = s.items[:len(s.items)-1]
	return v
}

func (s *stack) len() int { return len(s.items) }

func testPushPop() {
	s := newStack(4)
	s.push(1)
	s.push(2)
	check.Equal(s.len(), 2)
	check.Equal(s.pop(), 2)
	check.EqualMsg(s.pop(), 1, "last in, first out")
	check.True(s.len() == 0)
	check.False(s.len() > 0)
}

func testBounds() {
	s := newStack(3)
	for i := 0; i < 3; i++ {
		s.push(i)
		check.GreaterOrEqual(s.len(), 1)
		check.LessOrEqual(s.len(), 3)
	}
	check.NotEqual(s.pop(), 0)
	check.DeepEqual(s.items, []int{0, 1})
}

func testOverflowThrows() {
	s := newStack(1)
	s.push(7)
	check.Throws[*overflowError](func() { s.push(8) })
	check.Throws[error](func() { s.push(9) })
	check.Equal(s.len(), 1)
}

func testEmptyPopThrows() {
	check.ThrowsAny(func() { newStack(1).pop() })
	check.Throws[error](func() { newStack(2).pop() })
}

func testParseRejectsGarbage() {
	check.Throws[*strconv.NumError](func() {
		if _, err := strconv.Atoi("x1"); err != nil {
			panic(err)
		}
	})
}

func main() {
	testmain.Main("BoundedStack",
		testPushPop,
		testBounds,
		testOverflowThrows,
		testEmptyPopThrows,
		testParseRejectsGarbage,
	)
}
