package value

import (
	"math/big"
)

// Value is a computed sass value. Values are immutable; every operation
// produces a new value.
type Value interface {
	value()
}

// Null is the absence of a value. Null properties are dropped from the
// output.
type Null struct{}

func (Null) value() {}

// Bool is `true` or `false`
type Bool bool

func (Bool) value() {}

// Numeric is a rational number with a unit.
//
// WithSign is true for values written with an explicit + sign.
// Calculated is true for values that arose from arithmetic and false
// for literal values; the distinction decides whether a slash between
// two numbers divides or stays a slash in the output.
type Numeric struct {
	Value      *big.Rat
	Unit       Unit
	WithSign   bool
	Calculated bool
}

func (Numeric) value() {}

// Color is an rgba colour with rational components, r/g/b in [0, 255]
// and alpha in [0, 1]. Name is carried when the colour came from a
// named constant and is preserved through non-arithmetic operations.
type Color struct {
	R, G, B, A *big.Rat
	Name       string
}

func (Color) value() {}

// Literal is a string with a quote style
type Literal struct {
	Value  string
	Quotes Quotes
}

func (Literal) value() {}

// List is a sequence of values with a separator
type List struct {
	Items     []Value
	Separator ListSeparator
}

func (List) value() {}

// Call is an unresolved function reference that surfaces verbatim in
// the output, like url(...).
type Call struct {
	Name string
	Args CallArgs
}

func (Call) value() {}

// BinOp is a binary operation that did not evaluate to a simpler value
type BinOp struct {
	Left  Value
	Op    Operator
	Right Value
}

func (BinOp) value() {}

// UnaryOp is a unary operation that did not evaluate to a simpler value
type UnaryOp struct {
	Op    Operator
	Value Value
}

func (UnaryOp) value() {}

// Div is a slash between two values that did not collapse to division
type Div struct {
	Left        Value
	Right       Value
	SpaceBefore bool
	SpaceAfter  bool
}

func (Div) value() {}

// Scalar returns a unitless literal integer
func Scalar(v int64) Numeric {
	return Numeric{Value: big.NewRat(v, 1), Unit: UnitNone}
}

// Rgba builds a colour, capping r/g/b to [0, 255] and alpha to [0, 1]
func Rgba(r, g, b, a *big.Rat) Color {
	ff := big.NewRat(255, 1)
	one := big.NewRat(1, 1)
	return Color{R: cap0(r, ff), G: cap0(g, ff), B: cap0(b, ff), A: cap0(a, one)}
}

func cap0(n, max *big.Rat) *big.Rat {
	if n.Cmp(max) > 0 {
		return new(big.Rat).Set(max)
	}
	if n.Sign() < 0 {
		return new(big.Rat)
	}
	return new(big.Rat).Set(n)
}

// IsTrue reports sass truthiness: everything except Null and false
func IsTrue(v Value) bool {
	switch t := v.(type) {
	case Null:
		return false
	case Bool:
		return bool(t)
	default:
		return true
	}
}

// IsNull reports whether the value is null. A list of all-null items is
// itself null.
func IsNull(v Value) bool {
	switch t := v.(type) {
	case Null:
		return true
	case List:
		for _, item := range t.Items {
			if !IsNull(item) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// TypeName names the value's type for error messages
func TypeName(v Value) string {
	switch v.(type) {
	case Color:
		return "color"
	case Literal:
		return "string"
	case Numeric:
		return "number"
	case List:
		return "list"
	case Bool:
		return "bool"
	case Null:
		return "null"
	default:
		return "unknown"
	}
}

// Integer returns the value as an integer, or a BadValue error
func Integer(v Value) (int64, error) {
	if n, ok := v.(Numeric); ok && n.Value.IsInt() {
		return n.Value.Num().Int64(), nil
	}
	return 0, BadValue("integer", v)
}

// IsCalculated reports whether the value is the result of arithmetic
func IsCalculated(v Value) bool {
	switch t := v.(type) {
	case Numeric:
		return t.Calculated
	case Color:
		return t.Name == ""
	default:
		return false
	}
}

// IntoCalculated marks a numeric value as calculated
func IntoCalculated(v Value) Value {
	if n, ok := v.(Numeric); ok {
		n.Calculated = true
		return n
	}
	return v
}

// Unquote strips quote marks from literals, recursing into lists
func Unquote(v Value) Value {
	switch t := v.(type) {
	case Literal:
		return Literal{Value: t.Value, Quotes: NoQuotes}
	case List:
		items := make([]Value, len(t.Items))
		for i, item := range t.Items {
			items[i] = Unquote(item)
		}
		return List{Items: items, Separator: t.Separator}
	default:
		return v
	}
}

// IsASCII reports whether the rendered value is plain ascii. The
// emitter uses this to decide whether a byte order mark is needed.
func IsASCII(v Value) bool {
	switch t := v.(type) {
	case Literal:
		return asciiString(t.Value)
	case Color:
		return asciiString(t.Name)
	case List:
		for _, item := range t.Items {
			if !IsASCII(item) {
				return false
			}
		}
		return true
	case Call:
		if !asciiString(t.Name) {
			return false
		}
		for _, arg := range t.Args.Args {
			if !asciiString(arg.Name) || !IsASCII(arg.Value) {
				return false
			}
		}
		return true
	case BinOp:
		return IsASCII(t.Left) && IsASCII(t.Right)
	case UnaryOp:
		return IsASCII(t.Value)
	case Div:
		return IsASCII(t.Left) && IsASCII(t.Right)
	default:
		return true
	}
}

func asciiString(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			return false
		}
	}
	return true
}

// Equal compares two values structurally. Numerics compare equal when
// their scaled-to-canonical-unit rationals are equal; literals compare
// modulo quote style.
func Equal(a, b Value) bool {
	switch av := a.(type) {
	case Null:
		_, ok := b.(Null)
		return ok
	case Bool:
		bv, ok := b.(Bool)
		return ok && av == bv
	case Numeric:
		bv, ok := b.(Numeric)
		if !ok {
			return false
		}
		if av.Unit == bv.Unit {
			return av.Value.Cmp(bv.Value) == 0
		}
		if av.Unit.Dimension() != bv.Unit.Dimension() {
			return false
		}
		as := new(big.Rat).Mul(av.Value, av.Unit.ScaleFactor())
		bs := new(big.Rat).Mul(bv.Value, bv.Unit.ScaleFactor())
		return as.Cmp(bs) == 0
	case Color:
		bv, ok := b.(Color)
		return ok && av.R.Cmp(bv.R) == 0 && av.G.Cmp(bv.G) == 0 &&
			av.B.Cmp(bv.B) == 0 && av.A.Cmp(bv.A) == 0
	case Literal:
		bv, ok := b.(Literal)
		return ok && av.Value == bv.Value
	case List:
		bv, ok := b.(List)
		if !ok || len(av.Items) != len(bv.Items) || av.Separator != bv.Separator {
			return false
		}
		for i := range av.Items {
			if !Equal(av.Items[i], bv.Items[i]) {
				return false
			}
		}
		return true
	default:
		return Render(a, false) == Render(b, false)
	}
}
