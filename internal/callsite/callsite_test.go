package callsite

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShortName(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "plain function", input: "main.testLogin", expected: "testLogin"},
		{name: "import path", input: "example.com/x/pkg.run", expected: "run"},
		{name: "method", input: "example.com/x/pkg.(*Suite).check", expected: "(*Suite).check"},
		{name: "closure", input: "expect/check_test.TestX.func1", expected: "TestX.func1"},
		{name: "no package", input: "bare", expected: "bare"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ShortName(tt.input))
		})
	}
}

func whereAmI() Location {
	return Capture(0)
}

func TestCapture(t *testing.T) {
	_, file, line, ok := runtime.Caller(0)
	require.True(t, ok)

	loc := Capture(0)
	assert.Equal(t, file, loc.File)
	assert.Equal(t, line+3, loc.Line)
	assert.Equal(t, "TestCapture", loc.Function)

	assert.Equal(t, "whereAmI", whereAmI().Function)
}

func writeSource(t *testing.T, src string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sample.go")
	require.NoError(t, os.WriteFile(path, []byte(src), 0644))
	return path
}

func TestArgs(t *testing.T) {
	src := `package sample

func run() {
	check.Equal(len(items), want+1)
	check.Equal[int](a,
		b)
	Equal(x, y)
	check.True(strings.HasPrefix(s, "ab"))
	other(check.NotEqual(p, q))
	func() { check.Equal(got, want); check.Equal(x, x) }()
	check.Equal(wrap(check.Equal(m, n)), o)
}
`
	path := writeSource(t, src)

	tests := []struct {
		name     string
		line     int
		callee   string
		n        int
		expected []string
	}{
		{name: "selector call", line: 4, callee: "Equal", n: 2, expected: []string{"len(items)", "want+1"}},
		{name: "generic instantiation", line: 5, callee: "Equal", n: 2, expected: []string{"a", "b"}},
		{name: "multi-line call reported on last line", line: 6, callee: "Equal", n: 2, expected: []string{"a", "b"}},
		{name: "plain identifier", line: 7, callee: "Equal", n: 2, expected: []string{"x", "y"}},
		{name: "single argument", line: 8, callee: "True", n: 1, expected: []string{`strings.HasPrefix(s, "ab")`}},
		{name: "nested call", line: 9, callee: "NotEqual", n: 2, expected: []string{"p", "q"}},
		{name: "two calls side by side", line: 10, callee: "Equal", n: 2, expected: []string{Unknown, Unknown}},
		{name: "same callee nested resolves innermost", line: 11, callee: "Equal", n: 2, expected: []string{"m", "n"}},
		{name: "wrong callee", line: 4, callee: "NotEqual", n: 2, expected: []string{Unknown, Unknown}},
		{name: "wrong line", line: 2, callee: "Equal", n: 2, expected: []string{Unknown, Unknown}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loc := Location{File: path, Line: tt.line}
			assert.Equal(t, tt.expected, Args(loc, tt.callee, tt.n))
		})
	}
}

func TestArgs_UnreadableSource(t *testing.T) {
	loc := Location{File: "/non/existent/file.go", Line: 1}
	assert.Equal(t, []string{Unknown, Unknown}, Args(loc, "Equal", 2))

	broken := writeSource(t, "package sample\nfunc {")
	assert.Equal(t, []string{Unknown}, Args(Location{File: broken, Line: 2}, "True", 1))
}
