package compiler

import (
	"github.com/titpetric/sassgo/ast"
	"github.com/titpetric/sassgo/scope"
	"github.com/titpetric/sassgo/value"
)

// compileFunctionItems evaluates a user function body. A non-nil
// result is the value of the first @return reached; it short-circuits
// every enclosing loop and conditional up to the function boundary.
// A nil result means the body fell through.
func compileFunctionItems(s *scope.Scope, items []ast.Item) (value.Value, error) {
	for _, item := range items {
		switch t := item.(type) {
		case *ast.Return:
			return Eval(s, t.Value)

		case *ast.VariableDeclaration:
			if err := defineVariable(s, t); err != nil {
				return nil, err
			}

		case *ast.If:
			cond, err := Eval(s, t.Cond)
			if err != nil {
				return nil, err
			}
			body := t.Then
			if !value.IsTrue(cond) {
				body = t.Else
			}
			result, err := compileFunctionItems(s, body)
			if err != nil || result != nil {
				return result, err
			}

		case *ast.Each:
			values, err := Eval(s, t.Values)
			if err != nil {
				return nil, err
			}
			for _, v := range eachValues(values) {
				s.Define(t.Name, v)
				result, err := compileFunctionItems(s, t.Body)
				if err != nil || result != nil {
					return result, err
				}
			}

		case *ast.For:
			from, to, err := forRange(s, t)
			if err != nil {
				return nil, err
			}
			for i := from; i < to; i++ {
				s.Define(t.Name, value.Scalar(i))
				result, err := compileFunctionItems(s, t.Body)
				if err != nil || result != nil {
					return result, err
				}
			}

		case *ast.While:
			loopScope := scope.Sub(s)
			for {
				cond, err := Eval(loopScope, t.Cond)
				if err != nil {
					return nil, err
				}
				if !value.IsTrue(cond) {
					break
				}
				result, err := compileFunctionItems(loopScope, t.Body)
				if err != nil || result != nil {
					return result, err
				}
			}

		case *ast.None:
			// inert

		default:
			return nil, illegalContext("statement", "function")
		}
	}
	return nil, nil
}
