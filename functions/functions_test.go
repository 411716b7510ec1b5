package functions

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/titpetric/sassgo/scope"
	"github.com/titpetric/sassgo/value"
)

// call invokes a registered builtin with arguments bound by position
func call(t *testing.T, name string, args ...value.Value) value.Value {
	t.Helper()
	fn, ok := Lookup(name)
	require.True(t, ok, "builtin %s not registered", name)

	s := scope.NewGlobal()
	for i, arg := range args {
		require.Less(t, i, len(fn.Args.Args), "too many arguments for %s", name)
		s.Define(fn.Args.Args[i].Name, arg)
	}
	for i := len(args); i < len(fn.Args.Args); i++ {
		s.Define(fn.Args.Args[i].Name, value.Null{})
	}

	result, err := fn.Call(s)
	require.NoError(t, err)
	return result
}

func rat(n, d int64) *big.Rat {
	return big.NewRat(n, d)
}

func num(n int64) value.Numeric {
	return value.Numeric{Value: rat(n, 1)}
}

func TestRgb(t *testing.T) {
	got := call(t, "rgb", num(255), num(0), num(0))
	require.Equal(t, "red", value.Render(got, false))

	// percentages scale against 255, out-of-range caps
	got = call(t, "rgb",
		value.Numeric{Value: rat(150, 1), Unit: value.Percent},
		num(300), num(256))
	require.Equal(t, "white", value.Render(got, false))

	got = call(t, "rgb", num(-3),
		value.Numeric{Value: rat(-2, 1), Unit: value.Percent}, num(0))
	require.Equal(t, "black", value.Render(got, false))
}

func TestRgbaColorOverload(t *testing.T) {
	base := value.Rgba(rat(10, 1), rat(20, 1), rat(30, 1), rat(1, 1))

	fn, ok := Lookup("rgba")
	require.True(t, ok)

	// rgba(color, alpha) binds the colour as "red" and the alpha
	// as "green", positionally
	s := scope.NewGlobal()
	s.Define("red", base)
	s.Define("green", value.Numeric{Value: rat(1, 2)})
	s.Define("blue", value.Null{})
	s.Define("alpha", value.Null{})
	s.Define("color", value.Null{})

	got, err := fn.Call(s)
	require.NoError(t, err)
	require.Equal(t, "rgba(10, 20, 30, 0.5)", value.Render(got, false))
}

func TestChannelGetters(t *testing.T) {
	c := value.Rgba(rat(11, 1), rat(22, 1), rat(33, 1), rat(1, 1))
	require.Equal(t, "11", value.Render(call(t, "red", c), false))
	require.Equal(t, "22", value.Render(call(t, "green", c), false))
	require.Equal(t, "33", value.Render(call(t, "blue", c), false))
}

func TestMix(t *testing.T) {
	red := value.Rgba(rat(255, 1), rat(0, 1), rat(0, 1), rat(1, 1))
	blue := value.Rgba(rat(0, 1), rat(0, 1), rat(255, 1), rat(1, 1))

	// even weight comes from the default parameter
	fn, _ := Lookup("mix")
	require.Len(t, fn.Args.Args, 3)
	require.NotNil(t, fn.Args.Args[2].Default)

	got := call(t, "mix", red, blue,
		value.Numeric{Value: rat(50, 1), Unit: value.Percent})
	require.Equal(t, "purple", value.Render(got, false))

	got = call(t, "mix", red, blue,
		value.Numeric{Value: rat(100, 1), Unit: value.Percent})
	require.Equal(t, "red", value.Render(got, false))
}

func TestInvert(t *testing.T) {
	c := value.Rgba(rat(255, 1), rat(0, 1), rat(204, 1), rat(1, 1))
	got := call(t, "invert", c)
	require.Equal(t, "#00ff33", value.Render(got, false))
}

func TestInvertBadArgument(t *testing.T) {
	fn, _ := Lookup("invert")
	s := scope.NewGlobal()
	s.Define("color", value.Literal{Value: "nope"})
	_, err := fn.Call(s)
	require.Error(t, err)
}

func TestTypeOf(t *testing.T) {
	tests := []struct {
		arg  value.Value
		want string
	}{
		{num(1), "number"},
		{value.Literal{Value: "x"}, "string"},
		{value.Bool(true), "bool"},
		{value.Null{}, "null"},
		{value.Rgba(rat(0, 1), rat(0, 1), rat(0, 1), rat(1, 1)), "color"},
	}
	for _, tt := range tests {
		got := call(t, "type-of", tt.arg)
		require.Equal(t, tt.want, value.Render(got, false))
	}
}

func TestUnitAndUnitless(t *testing.T) {
	px := value.Numeric{Value: rat(10, 1), Unit: value.Px}
	require.Equal(t, `"px"`, value.Render(call(t, "unit", px), false))
	require.Equal(t, "false", value.Render(call(t, "unitless", px), false))
	require.Equal(t, "true", value.Render(call(t, "unitless", num(3)), false))
}

func TestQuoteUnquote(t *testing.T) {
	quoted := value.Literal{Value: "hi", Quotes: value.DoubleQuotes}
	bare := value.Literal{Value: "hi"}

	require.Equal(t, `"hi"`, value.Render(call(t, "quote", bare), false))
	require.Equal(t, "hi", value.Render(call(t, "unquote", quoted), false))
}

func TestLengthAndNth(t *testing.T) {
	list := value.List{
		Items:     []value.Value{num(1), num(2), num(3)},
		Separator: value.CommaSeparator,
	}
	require.Equal(t, "3", value.Render(call(t, "length", list), false))
	require.Equal(t, "1", value.Render(call(t, "length", num(7)), false))

	require.Equal(t, "2", value.Render(call(t, "nth", list, num(2)), false))
	require.Equal(t, "3", value.Render(call(t, "nth", list, num(-1)), false))

	fn, _ := Lookup("nth")
	s := scope.NewGlobal()
	s.Define("list", list)
	s.Define("n", num(9))
	_, err := fn.Call(s)
	require.Error(t, err)
}

func TestIf(t *testing.T) {
	got := call(t, "if", value.Bool(true), num(1), num(2))
	require.Equal(t, "1", value.Render(got, false))
	got = call(t, "if", value.Null{}, num(1), num(2))
	require.Equal(t, "2", value.Render(got, false))
}

func TestExprFunction(t *testing.T) {
	require.NoError(t, Expr("golden-test", []string{"x"}, "x * 2.0"))

	got := call(t, "golden-test", value.Numeric{Value: rat(21, 1), Unit: value.Px})
	// units are stripped on the way into the program
	require.Equal(t, "42", value.Render(got, false))

	require.Error(t, Expr("broken", nil, "1 +"))
}
