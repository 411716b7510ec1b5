// Package functions holds the process-wide registry of built-in sass
// functions. The registry is populated once at init time and read-only
// afterwards; user-declared functions live in the compile scope
// instead and shadow built-ins.
package functions

import (
	"github.com/titpetric/sassgo/ast"
	"github.com/titpetric/sassgo/scope"
	"github.com/titpetric/sassgo/value"
)

var registry = map[string]scope.Function{}

// Register adds a function to the registry. Registering during a
// compile is not supported; do it at init time.
func Register(name string, f scope.Function) {
	registry[name] = f
}

// Lookup resolves a built-in by name
func Lookup(name string) (scope.Function, bool) {
	f, ok := registry[name]
	return f, ok
}

// def registers a builtin with the given parameter declarations.
// A parameter may carry a default value expression.
func def(name string, params []param, call func(*scope.Scope) (value.Value, error)) {
	var formal ast.FormalArgs
	for _, p := range params {
		formal.Args = append(formal.Args, ast.FormalArg{Name: p.name, Default: p.def})
	}
	Register(name, scope.Function{Args: formal, Call: call})
}

type param struct {
	name string
	def  ast.Expression
}

func required(name string) param {
	return param{name: name}
}

func optional(name string, def ast.Expression) param {
	return param{name: name, def: def}
}

// nullDefault marks parameters that may be left out entirely
func nullDefault(name string) param {
	return param{name: name, def: &ast.Null{}}
}
