package functions

import (
	"math/big"

	"github.com/titpetric/sassgo/ast"
	"github.com/titpetric/sassgo/scope"
	"github.com/titpetric/sassgo/value"
)

func init() {
	def("rgb", []param{required("red"), required("green"), required("blue")},
		func(s *scope.Scope) (value.Value, error) {
			r, err := channel(s.Get("red"))
			if err != nil {
				return nil, err
			}
			g, err := channel(s.Get("green"))
			if err != nil {
				return nil, err
			}
			b, err := channel(s.Get("blue"))
			if err != nil {
				return nil, err
			}
			return value.Rgba(r, g, b, big.NewRat(1, 1)), nil
		})

	// rgba has two shapes: rgba(r, g, b, a) and rgba(color, alpha)
	def("rgba", []param{
		nullDefault("red"), nullDefault("green"), nullDefault("blue"),
		nullDefault("alpha"), nullDefault("color"),
	}, func(s *scope.Scope) (value.Value, error) {
		alpha := s.Get("alpha")
		red := s.Get("red")
		if value.IsNull(red) {
			red = s.Get("color")
		}
		if c, ok := red.(value.Color); ok {
			if value.IsNull(alpha) {
				alpha = s.Get("green")
			}
			a, err := rational(alpha)
			if err != nil {
				return nil, err
			}
			return value.Rgba(c.R, c.G, c.B, a), nil
		}
		r, err := channel(red)
		if err != nil {
			return nil, err
		}
		g, err := channel(s.Get("green"))
		if err != nil {
			return nil, err
		}
		b, err := channel(s.Get("blue"))
		if err != nil {
			return nil, err
		}
		a, err := rational(alpha)
		if err != nil {
			return nil, err
		}
		return value.Rgba(r, g, b, a), nil
	})

	def("red", []param{required("color")}, channelGetter(func(c value.Color) *big.Rat { return c.R }))
	def("green", []param{required("color")}, channelGetter(func(c value.Color) *big.Rat { return c.G }))
	def("blue", []param{required("color")}, channelGetter(func(c value.Color) *big.Rat { return c.B }))
	def("alpha", []param{required("color")}, channelGetter(func(c value.Color) *big.Rat { return c.A }))

	fiftyPercent := &ast.Number{Value: big.NewRat(50, 1), Unit: value.Percent}
	def("mix", []param{required("color1"), required("color2"), optional("weight", fiftyPercent)},
		func(s *scope.Scope) (value.Value, error) {
			c1, ok1 := s.Get("color1").(value.Color)
			c2, ok2 := s.Get("color2").(value.Color)
			w, ok3 := s.Get("weight").(value.Numeric)
			if !ok1 || !ok2 || !ok3 {
				return nil, value.BadArgs(
					[]string{"color", "color", "number"},
					[]value.Value{s.Get("color1"), s.Get("color2"), s.Get("weight")})
			}
			weight := w.Value
			if w.Unit == value.Percent {
				weight = new(big.Rat).Quo(weight, big.NewRat(100, 1))
			}
			one := big.NewRat(1, 1)
			// w2 = 1 - (1 - w*a1)*a2
			w2 := new(big.Rat).Sub(one, new(big.Rat).Mul(
				new(big.Rat).Sub(one, new(big.Rat).Mul(weight, c1.A)), c2.A))
			blend := func(v1, v2, w *big.Rat) *big.Rat {
				return new(big.Rat).Add(
					new(big.Rat).Mul(v1, w),
					new(big.Rat).Mul(v2, new(big.Rat).Sub(one, w)))
			}
			return value.Rgba(
				blend(c1.R, c2.R, w2),
				blend(c1.G, c2.G, w2),
				blend(c1.B, c2.B, w2),
				blend(c1.A, c2.A, weight)), nil
		})

	def("invert", []param{required("color")},
		func(s *scope.Scope) (value.Value, error) {
			c, ok := s.Get("color").(value.Color)
			if !ok {
				return nil, value.BadArg("color", s.Get("color"))
			}
			ff := big.NewRat(255, 1)
			return value.Rgba(
				new(big.Rat).Sub(ff, c.R),
				new(big.Rat).Sub(ff, c.G),
				new(big.Rat).Sub(ff, c.B),
				c.A), nil
		})
}

func channelGetter(get func(value.Color) *big.Rat) func(*scope.Scope) (value.Value, error) {
	return func(s *scope.Scope) (value.Value, error) {
		c, ok := s.Get("color").(value.Color)
		if !ok {
			return nil, value.BadArg("color", s.Get("color"))
		}
		return value.Numeric{Value: get(c), Calculated: true}, nil
	}
}

// channel converts a channel argument to a rational; percentages scale
// against 255.
func channel(v value.Value) (*big.Rat, error) {
	n, ok := v.(value.Numeric)
	if !ok {
		return nil, value.BadArg("number", v)
	}
	if n.Unit == value.Percent {
		return new(big.Rat).Mul(big.NewRat(255, 100), n.Value), nil
	}
	return n.Value, nil
}

func rational(v value.Value) (*big.Rat, error) {
	n, ok := v.(value.Numeric)
	if !ok {
		return nil, value.BadArg("number", v)
	}
	return n.Value, nil
}
