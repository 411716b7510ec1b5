// Package scope implements the lexical environment of a compile:
// variables, mixins and functions live in separate namespaces on a
// chain of nested scopes rooted in the global scope.
package scope

import (
	"github.com/titpetric/sassgo/ast"
	"github.com/titpetric/sassgo/value"
)

// Mixin is a declared mixin: its formal parameters and body
type Mixin struct {
	Args ast.FormalArgs
	Body []ast.Item
}

// Function is a callable sass function. Built-ins supply a Go closure;
// user functions wrap a body evaluator. Call receives the argument
// scope with the formal parameters already bound.
type Function struct {
	Args ast.FormalArgs
	Call func(*Scope) (value.Value, error)
}

// Scope is one frame of the environment. The global scope has a nil
// parent.
type Scope struct {
	parent    *Scope
	variables map[string]value.Value
	mixins    map[string]Mixin
	functions map[string]Function
}

// NewGlobal creates the root scope of a compile
func NewGlobal() *Scope {
	return &Scope{
		variables: make(map[string]value.Value),
		mixins:    make(map[string]Mixin),
		functions: make(map[string]Function),
	}
}

// Sub creates an empty child scope
func Sub(parent *Scope) *Scope {
	s := NewGlobal()
	s.parent = parent
	return s
}

// global walks to the root scope
func (s *Scope) global() *Scope {
	g := s
	for g.parent != nil {
		g = g.parent
	}
	return g
}

// Define binds a variable in the current scope
func (s *Scope) Define(name string, v value.Value) {
	s.variables[name] = v
}

// DefineGlobal binds a variable in the global scope
func (s *Scope) DefineGlobal(name string, v value.Value) {
	s.global().Define(name, v)
}

// DefineDefault binds a variable only when the chosen scope does not
// already hold a non-null binding for the name. With global set the
// chosen scope is the global scope.
func (s *Scope) DefineDefault(name string, v value.Value, global bool) {
	target := s
	if global {
		target = s.global()
	}
	if old, ok := target.lookup(name); !ok || value.IsNull(old) {
		target.Define(name, v)
	}
}

// Get returns the variable's value, walking up the chain. A missing
// name degrades to Null.
func (s *Scope) Get(name string) value.Value {
	if v, ok := s.lookup(name); ok {
		return v
	}
	return value.Null{}
}

// Has reports whether the name is bound anywhere on the chain
func (s *Scope) Has(name string) bool {
	_, ok := s.lookup(name)
	return ok
}

func (s *Scope) lookup(name string) (value.Value, bool) {
	for cur := s; cur != nil; cur = cur.parent {
		if v, ok := cur.variables[name]; ok {
			return v, true
		}
	}
	return nil, false
}

// DefineMixin registers a mixin in the current scope
func (s *Scope) DefineMixin(name string, args ast.FormalArgs, body []ast.Item) {
	s.mixins[name] = Mixin{Args: args, Body: body}
}

// GetMixin resolves a mixin, walking up the chain
func (s *Scope) GetMixin(name string) (Mixin, bool) {
	for cur := s; cur != nil; cur = cur.parent {
		if m, ok := cur.mixins[name]; ok {
			return m, true
		}
	}
	return Mixin{}, false
}

// DefineFunction registers a function in the current scope
func (s *Scope) DefineFunction(name string, f Function) {
	s.functions[name] = f
}

// GetFunction resolves a function, walking up the chain
func (s *Scope) GetFunction(name string) (Function, bool) {
	for cur := s; cur != nil; cur = cur.parent {
		if f, ok := cur.functions[name]; ok {
			return f, true
		}
	}
	return Function{}, false
}
