package compiler

import (
	"math/big"
	"strings"

	"github.com/titpetric/sassgo/ast"
	"github.com/titpetric/sassgo/functions"
	"github.com/titpetric/sassgo/parser"
	"github.com/titpetric/sassgo/scope"
	"github.com/titpetric/sassgo/value"
)

// interpolateRaw resolves #{...} fragments inside raw text like
// property names.
func interpolateRaw(s *scope.Scope, raw string) (string, error) {
	if !strings.Contains(raw, "#{") {
		return raw, nil
	}
	var sb strings.Builder
	for i := 0; i < len(raw); {
		if raw[i] == '#' && i+1 < len(raw) && raw[i+1] == '{' {
			end := strings.IndexByte(raw[i:], '}')
			if end < 0 {
				sb.WriteString(raw[i:])
				break
			}
			expr, err := parser.ParseValue([]byte(raw[i+2 : i+end]))
			if err != nil {
				return "", err
			}
			v, err := eval(s, expr, true)
			if err != nil {
				return "", err
			}
			sb.WriteString(value.Interpolate(v))
			i += end + 1
			continue
		}
		sb.WriteByte(raw[i])
		i++
	}
	return sb.String(), nil
}

// Eval evaluates an expression against a scope. Expressions are lazy:
// they are evaluated at the point of use, against the scope current at
// that point.
func Eval(s *scope.Scope, expr ast.Expression) (value.Value, error) {
	return eval(s, expr, false)
}

// eval is the expression evaluator. The arith flag marks an explicit
// arithmetic context; inside one a slash always divides instead of
// staying a literal slash.
func eval(s *scope.Scope, expr ast.Expression, arith bool) (value.Value, error) {
	switch t := expr.(type) {
	case *ast.Null:
		return value.Null{}, nil
	case *ast.True:
		return value.Bool(true), nil
	case *ast.False:
		return value.Bool(false), nil
	case *ast.Literal:
		return value.Literal{Value: t.Value, Quotes: t.Quotes}, nil
	case *ast.Number:
		return value.Numeric{Value: t.Value, Unit: t.Unit, WithSign: t.WithSign}, nil
	case *ast.Color:
		return value.Color{R: t.R, G: t.G, B: t.B, A: t.A, Name: t.Name}, nil
	case *ast.Variable:
		// a value reached through a variable is in arithmetic
		// context: $x/2 divides even when $x was a literal
		return value.IntoCalculated(s.Get(t.Name)), nil
	case *ast.List:
		items := make([]value.Value, len(t.Items))
		for i, item := range t.Items {
			v, err := eval(s, item, arith)
			if err != nil {
				return nil, err
			}
			items[i] = v
		}
		return value.List{Items: items, Separator: t.Separator}, nil
	case *ast.Paren:
		v, err := eval(s, t.Inner, true)
		if err != nil {
			return nil, err
		}
		return value.IntoCalculated(v), nil
	case *ast.Interpolation:
		return evalInterpolation(s, t)
	case *ast.UnaryOp:
		return evalUnary(s, t, arith)
	case *ast.BinOp:
		return evalBinOp(s, t, arith)
	case *ast.Div:
		return evalDiv(s, t, arith)
	case *ast.Call:
		return evalCall(s, t)
	default:
		return nil, value.BadValue("expression", value.Null{})
	}
}

func evalInterpolation(s *scope.Scope, t *ast.Interpolation) (value.Value, error) {
	var sb strings.Builder
	for _, part := range t.String.Parts {
		if part.Value == nil {
			sb.WriteString(part.Literal)
			continue
		}
		v, err := eval(s, part.Value, true)
		if err != nil {
			return nil, err
		}
		sb.WriteString(value.Interpolate(v))
	}
	return value.Literal{Value: sb.String(), Quotes: t.Quotes}, nil
}

func evalUnary(s *scope.Scope, t *ast.UnaryOp, arith bool) (value.Value, error) {
	v, err := eval(s, t.Expr, arith)
	if err != nil {
		return nil, err
	}
	if t.Op == value.OpMinus {
		if n, ok := v.(value.Numeric); ok {
			return value.Numeric{
				Value:      new(big.Rat).Neg(n.Value),
				Unit:       n.Unit,
				Calculated: true,
			}, nil
		}
	}
	return value.UnaryOp{Op: t.Op, Value: v}, nil
}

func evalBinOp(s *scope.Scope, t *ast.BinOp, arith bool) (value.Value, error) {
	left, err := eval(s, t.Left, arith)
	if err != nil {
		return nil, err
	}
	right, err := eval(s, t.Right, arith)
	if err != nil {
		return nil, err
	}
	switch t.Op {
	case value.OpPlus:
		return value.Add(left, right)
	case value.OpMinus:
		return value.Sub(left, right)
	case value.OpMul:
		return value.Mul(left, right)
	case value.OpMod:
		return value.Mod(left, right)
	case value.OpEq:
		return value.Bool(value.Equal(left, right)), nil
	case value.OpNeq:
		return value.Bool(!value.Equal(left, right)), nil
	case value.OpLt, value.OpLte, value.OpGt, value.OpGte:
		cmp, err := value.Compare(left, right)
		if err != nil {
			return nil, err
		}
		switch t.Op {
		case value.OpLt:
			return value.Bool(cmp < 0), nil
		case value.OpLte:
			return value.Bool(cmp <= 0), nil
		case value.OpGt:
			return value.Bool(cmp > 0), nil
		default:
			return value.Bool(cmp >= 0), nil
		}
	}
	return value.BinOp{Left: left, Op: t.Op, Right: right}, nil
}

// evalDiv decides between a literal slash and true division: plain
// numeric literals on both sides keep the slash, any arithmetic
// context forces division.
func evalDiv(s *scope.Scope, t *ast.Div, arith bool) (value.Value, error) {
	left, err := eval(s, t.Left, arith)
	if err != nil {
		return nil, err
	}
	right, err := eval(s, t.Right, arith)
	if err != nil {
		return nil, err
	}
	if !arith && !value.IsCalculated(left) && !value.IsCalculated(right) {
		if isPlainOperand(left) && isPlainOperand(right) {
			return value.Div{
				Left:        left,
				Right:       right,
				SpaceBefore: t.SpaceBefore,
				SpaceAfter:  t.SpaceAfter,
			}, nil
		}
	}
	return value.Divide(left, right)
}

func isPlainOperand(v value.Value) bool {
	switch v.(type) {
	case value.Numeric, value.Literal, value.Color, value.Div:
		return true
	default:
		return false
	}
}

// evalCall resolves a function call: scope functions first, then the
// built-in registry; an unresolved name passes through verbatim since
// css has native functions like url().
func evalCall(s *scope.Scope, t *ast.Call) (value.Value, error) {
	args, err := evalCallArgs(s, t.Args)
	if err != nil {
		return nil, err
	}
	fn, ok := s.GetFunction(t.Name)
	if !ok {
		fn, ok = functions.Lookup(t.Name)
	}
	if !ok {
		return value.Call{Name: t.Name, Args: args}, nil
	}
	argScope, err := bindFormalArgs(fn.Args, s, args)
	if err != nil {
		return nil, err
	}
	return fn.Call(argScope)
}

// evalCallArgs evaluates actual arguments in the caller's scope.
// Argument expressions are an arithmetic context.
func evalCallArgs(s *scope.Scope, args ast.CallArgs) (value.CallArgs, error) {
	out := value.CallArgs{Args: make([]value.CallArg, len(args.Args))}
	for i, arg := range args.Args {
		v, err := eval(s, arg.Value, true)
		if err != nil {
			return value.CallArgs{}, err
		}
		out.Args[i] = value.CallArg{Name: arg.Name, Value: v}
	}
	return out, nil
}
