package functions

import (
	"math/big"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/titpetric/sassgo/ast"
	"github.com/titpetric/sassgo/scope"
	"github.com/titpetric/sassgo/value"
)

// Expr registers a sass function backed by an expr-lang expression.
// Parameters are exposed to the program as plain variables: numerics
// as float64 (units stripped), strings as string, booleans as bool.
// The program result converts back the same way; a numeric result is
// unitless.
//
//	functions.Expr("golden", []string{"x"}, "x * 1.61803")
func Expr(name string, params []string, src string) error {
	program, err := expr.Compile(src, expr.AllowUndefinedVariables())
	if err != nil {
		return err
	}
	var formal ast.FormalArgs
	for _, p := range params {
		formal.Args = append(formal.Args, ast.FormalArg{Name: p})
	}
	Register(name, scope.Function{
		Args: formal,
		Call: func(s *scope.Scope) (value.Value, error) {
			env := make(map[string]any, len(params))
			for _, p := range params {
				env[p] = exprValue(s.Get(p))
			}
			return runExpr(program, env)
		},
	})
	return nil
}

func runExpr(program *vm.Program, env map[string]any) (value.Value, error) {
	out, err := expr.Run(program, env)
	if err != nil {
		return nil, err
	}
	switch result := out.(type) {
	case float64:
		return value.Numeric{Value: floatRat(result), Calculated: true}, nil
	case int:
		return value.Numeric{Value: big.NewRat(int64(result), 1), Calculated: true}, nil
	case int64:
		return value.Numeric{Value: big.NewRat(result, 1), Calculated: true}, nil
	case bool:
		return value.Bool(result), nil
	case string:
		return value.Literal{Value: result, Quotes: value.NoQuotes}, nil
	case nil:
		return value.Null{}, nil
	default:
		return nil, value.BadValue("expression result", value.Null{})
	}
}

func exprValue(v value.Value) any {
	switch t := v.(type) {
	case value.Numeric:
		f, _ := t.Value.Float64()
		return f
	case value.Bool:
		return bool(t)
	case value.Literal:
		return t.Value
	case value.Null:
		return nil
	default:
		return value.Render(v, false)
	}
}

func floatRat(f float64) *big.Rat {
	r := new(big.Rat)
	r.SetFloat64(f)
	return r
}
