// Package compiler evaluates a parsed scss item list into the css
// intermediate representation. Statements compile in three contexts:
// the root, rule bodies and function bodies, which share cases but
// accept different statements and produce different results.
package compiler

import (
	"sort"

	"github.com/titpetric/sassgo/ast"
	"github.com/titpetric/sassgo/css"
	"github.com/titpetric/sassgo/importer"
	"github.com/titpetric/sassgo/scope"
	"github.com/titpetric/sassgo/value"
)

// contentMixin is the reserved mixin slot holding the @content body of
// the innermost mixin call. The name cannot collide with user mixins.
const contentMixin = "%%BODY%%"

// Compile evaluates items in a fresh global scope
func Compile(files *importer.FileContext, items []ast.Item) ([]css.Item, error) {
	return CompileInScope(files, scope.NewGlobal(), items)
}

// CompileInScope evaluates items as the document root
func CompileInScope(files *importer.FileContext, s *scope.Scope, items []ast.Item) ([]css.Item, error) {
	return compileRootItems(files, s, items)
}

// CompileValue evaluates a function body and returns its result, or
// Null when no @return was reached.
func CompileValue(s *scope.Scope, items []ast.Item) (value.Value, error) {
	result, err := compileFunctionItems(s, items)
	if err != nil {
		return nil, err
	}
	if result == nil {
		return value.Null{}, nil
	}
	return result, nil
}

// sortItems hoists imports above other items. The sort is stable so
// source order is kept within each priority class.
func sortItems(items []css.Item) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Priority() < items[j].Priority()
	})
}

// defineVariable handles the !default and !global flags. The value
// expression of a !default declaration is only evaluated when the name
// is unbound or null.
func defineVariable(s *scope.Scope, item *ast.VariableDeclaration) error {
	if item.Default {
		if s.Has(item.Name) && !value.IsNull(s.Get(item.Name)) {
			return nil
		}
		v, err := Eval(s, item.Value)
		if err != nil {
			return err
		}
		s.DefineDefault(item.Name, v, item.Global)
		return nil
	}
	v, err := Eval(s, item.Value)
	if err != nil {
		return err
	}
	if item.Global {
		s.DefineGlobal(item.Name, v)
	} else {
		s.Define(item.Name, v)
	}
	return nil
}

// defineFunction registers a user function whose call evaluates the
// declared body with the early-return protocol.
func defineFunction(s *scope.Scope, item *ast.FunctionDeclaration) {
	body := item.Body
	s.DefineFunction(item.Name, scope.Function{
		Args: item.Args,
		Call: func(argScope *scope.Scope) (value.Value, error) {
			return CompileValue(argScope, body)
		},
	})
}

// eachValues flattens the iterated value of an @each loop: lists
// iterate their elements, anything else iterates once.
func eachValues(v value.Value) []value.Value {
	if list, ok := v.(value.List); ok {
		return list.Items
	}
	return []value.Value{v}
}

// forRange evaluates the loop bounds of an @for statement
func forRange(s *scope.Scope, item *ast.For) (from, to int64, err error) {
	fromVal, err := Eval(s, item.From)
	if err != nil {
		return 0, 0, err
	}
	from, err = value.Integer(fromVal)
	if err != nil {
		return 0, 0, err
	}
	toVal, err := Eval(s, item.To)
	if err != nil {
		return 0, 0, err
	}
	to, err = value.Integer(toVal)
	if err != nil {
		return 0, 0, err
	}
	if item.Inclusive {
		to++
	}
	return from, to, nil
}
