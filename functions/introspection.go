package functions

import (
	"github.com/titpetric/sassgo/scope"
	"github.com/titpetric/sassgo/value"
)

func init() {
	def("type-of", []param{required("value")},
		func(s *scope.Scope) (value.Value, error) {
			return unquoted(value.TypeName(s.Get("value"))), nil
		})

	def("unit", []param{required("number")},
		func(s *scope.Scope) (value.Value, error) {
			n, ok := s.Get("number").(value.Numeric)
			if !ok {
				return nil, value.BadArg("number", s.Get("number"))
			}
			return value.Literal{Value: n.Unit.String(), Quotes: value.DoubleQuotes}, nil
		})

	def("unitless", []param{required("number")},
		func(s *scope.Scope) (value.Value, error) {
			n, ok := s.Get("number").(value.Numeric)
			if !ok {
				return nil, value.BadArg("number", s.Get("number"))
			}
			return value.Bool(n.Unit == value.UnitNone), nil
		})

	def("quote", []param{required("string")},
		func(s *scope.Scope) (value.Value, error) {
			if lit, ok := s.Get("string").(value.Literal); ok {
				return value.Literal{Value: lit.Value, Quotes: value.DoubleQuotes}, nil
			}
			return value.Literal{
				Value:  value.Render(s.Get("string"), false),
				Quotes: value.DoubleQuotes,
			}, nil
		})

	def("unquote", []param{required("string")},
		func(s *scope.Scope) (value.Value, error) {
			return value.Unquote(s.Get("string")), nil
		})

	def("if", []param{required("condition"), required("if-true"), required("if-false")},
		func(s *scope.Scope) (value.Value, error) {
			if value.IsTrue(s.Get("condition")) {
				return s.Get("if-true"), nil
			}
			return s.Get("if-false"), nil
		})
}

func unquoted(s string) value.Literal {
	return value.Literal{Value: s, Quotes: value.NoQuotes}
}
