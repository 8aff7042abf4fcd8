// Package source recovers the text of the argument expressions of a call
// from the file that contains it.
//
// Files are parsed on first use and kept for the lifetime of the Resolver,
// failures included, so a binary deployed without its sources pays for the
// failed read once per file.
package source

import (
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"strings"
	"sync"
)

// LazyName is the callee name whose single func literal argument is
// unwrapped to its return expression.
const LazyName = "Lazy"

// Resolver caches parsed files
type Resolver struct {
	mu    sync.Mutex
	files map[string]*file
}

type file struct {
	src  []byte
	fset *token.FileSet
	ast  *ast.File
	err  error
}

var shared = NewResolver()

// NewResolver creates an empty resolver
func NewResolver() *Resolver {
	return &Resolver{files: make(map[string]*file)}
}

// Shared returns the process-wide resolver
func Shared() *Resolver {
	return shared
}

// Labels returns the source text of the n arguments of the call to name
// that spans line in path. It reports false when the file cannot be read
// or no such call exists. When several calls match, the innermost wins.
func (r *Resolver) Labels(path string, line int, name string, n int) ([]string, bool) {
	f := r.load(path)
	if f.err != nil {
		return nil, false
	}
	call := f.find(line, name, n)
	if call == nil {
		return nil, false
	}
	labels := make([]string, n)
	for i, arg := range call.Args {
		labels[i] = f.text(unwrapLazy(arg))
	}
	return labels, true
}

// Forget drops the cached parse of path
func (r *Resolver) Forget(path string) {
	r.mu.Lock()
	delete(r.files, path)
	r.mu.Unlock()
}

func (r *Resolver) load(path string) *file {
	r.mu.Lock()
	defer r.mu.Unlock()
	if f, ok := r.files[path]; ok {
		return f
	}
	f := parse(path)
	r.files[path] = f
	return f
}

func parse(path string) *file {
	src, err := os.ReadFile(path)
	if err != nil {
		return &file{err: err}
	}
	fset := token.NewFileSet()
	af, err := parser.ParseFile(fset, path, src, parser.SkipObjectResolution)
	if err != nil {
		return &file{err: err}
	}
	return &file{src: src, fset: fset, ast: af}
}

func (f *file) find(line int, name string, n int) *ast.CallExpr {
	var best *ast.CallExpr
	ast.Inspect(f.ast, func(node ast.Node) bool {
		if node == nil {
			return false
		}
		if f.fset.Position(node.Pos()).Line > line || f.fset.Position(node.End()).Line < line {
			return false
		}
		call := statementCall(node)
		if call == nil || call.Ellipsis.IsValid() || len(call.Args) != n || calleeName(call.Fun) != name {
			return true
		}
		if best == nil || call.End()-call.Pos() < best.End()-best.Pos() {
			best = call
		}
		return true
	})
	return best
}

// statementCall returns the call a statement consists of. Logging calls
// return nothing, so a same-named call nested in an argument is never the
// call being resolved.
func statementCall(node ast.Node) *ast.CallExpr {
	switch s := node.(type) {
	case *ast.ExprStmt:
		call, _ := ast.Unparen(s.X).(*ast.CallExpr)
		return call
	case *ast.DeferStmt:
		return s.Call
	case *ast.GoStmt:
		return s.Call
	}
	return nil
}

func (f *file) text(e ast.Expr) string {
	start := f.fset.Position(e.Pos()).Offset
	end := f.fset.Position(e.End()).Offset
	if start < 0 || end > len(f.src) || start > end {
		return ""
	}
	return collapse(string(f.src[start:end]))
}

func calleeName(fun ast.Expr) string {
	switch fn := fun.(type) {
	case *ast.Ident:
		return fn.Name
	case *ast.SelectorExpr:
		return fn.Sel.Name
	case *ast.IndexExpr:
		return calleeName(fn.X)
	case *ast.IndexListExpr:
		return calleeName(fn.X)
	case *ast.ParenExpr:
		return calleeName(fn.X)
	}
	return ""
}

// unwrapLazy turns Lazy(func() T { return expr }) into expr
func unwrapLazy(e ast.Expr) ast.Expr {
	call, ok := e.(*ast.CallExpr)
	if !ok || len(call.Args) != 1 || calleeName(call.Fun) != LazyName {
		return e
	}
	lit, ok := call.Args[0].(*ast.FuncLit)
	if !ok || len(lit.Body.List) != 1 {
		return e
	}
	ret, ok := lit.Body.List[0].(*ast.ReturnStmt)
	if !ok || len(ret.Results) != 1 {
		return e
	}
	return ret.Results[0]
}

// collapse replaces every whitespace run that contains a newline with a
// single space, so multi-line expressions fit on one label.
func collapse(s string) string {
	if !strings.ContainsRune(s, '\n') {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		c := s[i]
		if c != ' ' && c != '\t' && c != '\n' && c != '\r' {
			b.WriteByte(c)
			i++
			continue
		}
		j := i
		newline := false
		for j < len(s) && (s[j] == ' ' || s[j] == '\t' || s[j] == '\n' || s[j] == '\r') {
			newline = newline || s[j] == '\n'
			j++
		}
		if newline {
			b.WriteByte(' ')
		} else {
			b.WriteString(s[i:j])
		}
		i = j
	}
	return b.String()
}
