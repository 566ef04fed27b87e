package check_test

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"expect/check"
)

type wrongKind struct{}

func (wrongKind) Error() string { return "wrong kind" }

type otherKind struct{ reason string }

func (e *otherKind) Error() string { return "other kind: " + e.reason }

func throwOther() {
	panic(&otherKind{reason: "disk full"})
}

func TestThrows(t *testing.T) {
	tests := []struct {
		name     string
		fn       func()
		contains []string
	}{
		{
			name: "expected kind",
			fn:   func() { check.Throws[*otherKind](throwOther) },
		},
		{
			name: "wrapped expected kind",
			fn: func() {
				check.Throws[*otherKind](func() { panic(fmt.Errorf("saving: %w", &otherKind{reason: "x"})) })
			},
		},
		{
			name: "interface kind",
			fn:   func() { check.Throws[error](throwOther) },
		},
		{
			name: "standard library kind",
			fn: func() {
				check.Throws[*fs.PathError](func() {
					if _, err := os.Open("/definitely/not/here"); err != nil {
						panic(err)
					}
				})
			},
		},
		{
			name:     "nothing thrown",
			fn:       func() { check.Throws[*otherKind](func() {}) },
			contains: []string{"Failed to throw an exception of type *check_test.otherKind"},
		},
		{
			name: "different error kind",
			fn:   func() { check.Throws[wrongKind](throwOther) },
			contains: []string{
				"was expecting type check_test.wrongKind",
				"*check_test.otherKind",
				"other kind: disk full",
			},
		},
		{
			name: "non-error panic value",
			fn:   func() { check.Throws[wrongKind](func() { panic("boom") }) },
			contains: []string{
				"An unexpected unknown exception object was thrown, was expecting type check_test.wrongKind",
				"(got string)",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := recoverFailure(t, tt.fn)
			if len(tt.contains) == 0 {
				assert.Nil(t, f)
				return
			}
			require.NotNil(t, f)
			for _, part := range tt.contains {
				assert.Contains(t, f.Message, part)
			}
		})
	}
}

func TestThrows_NestedFailurePropagates(t *testing.T) {
	var nested *check.Failure
	f := recoverFailure(t, func() {
		check.Throws[wrongKind](func() {
			defer func() {
				r := recover()
				nested, _ = check.AsFailure(r)
				panic(r)
			}()
			check.Equal(1, 2)
		})
	})

	require.NotNil(t, nested)
	assert.Same(t, nested, f)
	assert.Contains(t, f.Message, "Equality test failed")
	assert.NotContains(t, f.Message, "was expecting type")
}

func TestThrows_FailureLocationIsCallSite(t *testing.T) {
	f := recoverFailure(t, func() { check.Throws[wrongKind](func() {}) })
	require.NotNil(t, f)
	assert.Equal(t, "TestThrows_FailureLocationIsCallSite.func1", f.Function)
}

func TestThrowsAny(t *testing.T) {
	tests := []struct {
		name  string
		fn    func()
		fails bool
	}{
		{name: "error", fn: func() { check.ThrowsAny(throwOther) }},
		{name: "string", fn: func() { check.ThrowsAny(func() { panic("boom") }) }},
		{name: "runtime error", fn: func() {
			check.ThrowsAny(func() {
				var m map[string]int
				m["x"] = 1
			})
		}},
		{name: "nothing thrown", fn: func() { check.ThrowsAny(func() {}) }, fails: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := recoverFailure(t, tt.fn)
			if !tt.fails {
				assert.Nil(t, f)
				return
			}
			require.NotNil(t, f)
			assert.Equal(t, "Failed to throw an exception of any type", f.Message)
		})
	}
}

func TestThrowsAny_NestedFailurePropagates(t *testing.T) {
	var nested *check.Failure
	f := recoverFailure(t, func() {
		check.ThrowsAny(func() {
			defer func() {
				r := recover()
				nested, _ = check.AsFailure(r)
				panic(r)
			}()
			check.Fail("inner")
		})
	})

	require.NotNil(t, nested)
	assert.Same(t, nested, f)
	assert.Equal(t, "inner", f.Message)
}

func TestFailureIsNotAnError(t *testing.T) {
	var v any = &check.Failure{}
	_, isErr := v.(error)
	assert.False(t, isErr)

	_, ok := check.AsFailure(fmt.Errorf("wrapped: %w", errors.New("x")))
	assert.False(t, ok)

	_, ok = check.AsFailure((*check.Failure)(nil))
	assert.False(t, ok)
}
