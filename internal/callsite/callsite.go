// Package callsite resolves where an assertion was called from and, when a
// report is needed, the source text of the arguments passed at that call.
package callsite

import (
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"runtime"
	"strings"
	"sync"
)

// Unknown is the expression text used when the call's source cannot be read.
const Unknown = "?"

// Location identifies a call site
type Location struct {
	File     string
	Line     int
	Function string
}

// Capture returns the location of the caller skip frames above Capture's caller.
// Capture(0) describes the function that called Capture.
func Capture(skip int) Location {
	// Room for more than one pc lets CallersFrames expand inlined frames.
	var pcs [8]uintptr
	// +2 skips runtime.Callers and Capture itself.
	n := runtime.Callers(skip+2, pcs[:])
	if n == 0 {
		return Location{File: Unknown, Function: Unknown}
	}

	frame, _ := runtime.CallersFrames(pcs[:n]).Next()
	loc := Location{File: frame.File, Line: frame.Line, Function: Unknown}
	if frame.Function != "" {
		loc.Function = ShortName(frame.Function)
	}
	return loc
}

// ShortName strips the import path and package name from a fully qualified
// function name, e.g. "example.com/x/pkg.(*T).run.func1" -> "(*T).run.func1".
func ShortName(name string) string {
	if i := strings.LastIndex(name, "/"); i >= 0 {
		name = name[i+1:]
	}
	if i := strings.Index(name, "."); i >= 0 {
		name = name[i+1:]
	}
	return name
}

type parsedFile struct {
	fset *token.FileSet
	file *ast.File
	src  []byte
}

var (
	cacheMu sync.Mutex
	cache   = make(map[string]*parsedFile)
)

// Args returns the source text of the first n arguments of the call to callee
// found on loc's line. Every text is Unknown if the file cannot be read or
// parsed or no matching call exists.
func Args(loc Location, callee string, n int) []string {
	texts := make([]string, n)
	for i := range texts {
		texts[i] = Unknown
	}

	pf := load(loc.File)
	if pf == nil {
		return texts
	}

	call := findCall(pf, loc.Line, callee)
	if call == nil {
		return texts
	}

	for i := 0; i < n && i < len(call.Args); i++ {
		start := pf.fset.Position(call.Args[i].Pos()).Offset
		end := pf.fset.Position(call.Args[i].End()).Offset
		if start >= 0 && end <= len(pf.src) && start < end {
			texts[i] = string(pf.src[start:end])
		}
	}
	return texts
}

func load(path string) *parsedFile {
	cacheMu.Lock()
	defer cacheMu.Unlock()

	if pf, ok := cache[path]; ok {
		return pf
	}

	var pf *parsedFile
	if src, err := os.ReadFile(path); err == nil {
		fset := token.NewFileSet()
		if file, err := parser.ParseFile(fset, path, src, parser.SkipObjectResolution); err == nil {
			pf = &parsedFile{fset: fset, file: file, src: src}
		}
	}

	// Failed loads are cached too so a missing file is only stat'ed once.
	cache[path] = pf
	return pf
}

// findCall returns the call to callee whose extent covers line. Nested
// matches resolve to the innermost one; matches side by side on the same
// line are ambiguous and yield nil.
func findCall(pf *parsedFile, line int, callee string) *ast.CallExpr {
	var matches []*ast.CallExpr
	ast.Inspect(pf.file, func(node ast.Node) bool {
		if node == nil {
			return false
		}
		if pf.fset.Position(node.Pos()).Line > line || pf.fset.Position(node.End()).Line < line {
			return false
		}
		if call, ok := node.(*ast.CallExpr); ok && calleeName(call.Fun) == callee {
			matches = append(matches, call)
		}
		return true
	})
	if len(matches) == 0 {
		return nil
	}

	// Inspect visits parents first, so the innermost candidate is last.
	inner := matches[len(matches)-1]
	for _, outer := range matches[:len(matches)-1] {
		if outer.Pos() > inner.Pos() || outer.End() < inner.End() {
			return nil
		}
	}
	return inner
}

func calleeName(expr ast.Expr) string {
	switch fun := expr.(type) {
	case *ast.Ident:
		return fun.Name
	case *ast.SelectorExpr:
		return fun.Sel.Name
	case *ast.IndexExpr:
		return calleeName(fun.X)
	case *ast.IndexListExpr:
		return calleeName(fun.X)
	case *ast.ParenExpr:
		return calleeName(fun.X)
	}
	return ""
}
