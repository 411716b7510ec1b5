package functions

import (
	"github.com/titpetric/sassgo/scope"
	"github.com/titpetric/sassgo/value"
)

func init() {
	def("length", []param{required("list")},
		func(s *scope.Scope) (value.Value, error) {
			return value.Numeric{
				Value:      value.Scalar(int64(listLen(s.Get("list")))).Value,
				Calculated: true,
			}, nil
		})

	def("nth", []param{required("list"), required("n")},
		func(s *scope.Scope) (value.Value, error) {
			n, err := value.Integer(s.Get("n"))
			if err != nil {
				return nil, err
			}
			items := listItems(s.Get("list"))
			// sass list indices are one-based; negatives count
			// from the end
			if n < 0 {
				n += int64(len(items)) + 1
			}
			if n < 1 || n > int64(len(items)) {
				return nil, value.BadArguments("index %d out of range for list of %d", n, len(items))
			}
			return items[n-1], nil
		})
}

func listItems(v value.Value) []value.Value {
	if list, ok := v.(value.List); ok {
		return list.Items
	}
	return []value.Value{v}
}

func listLen(v value.Value) int {
	return len(listItems(v))
}
