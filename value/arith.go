package value

import "math/big"

// coerce converts two numerics to a common unit. A unitless operand
// adopts the other operand's unit; compatible dimension classes convert
// via their scale factors; disjoint classes fail.
func coerce(a, b Numeric) (left, right *big.Rat, unit Unit, err error) {
	switch {
	case a.Unit == b.Unit:
		return a.Value, b.Value, a.Unit, nil
	case a.Unit == UnitNone:
		return a.Value, b.Value, b.Unit, nil
	case b.Unit == UnitNone:
		return a.Value, b.Value, a.Unit, nil
	case a.Unit.Dimension() == b.Unit.Dimension() && a.Unit.Dimension() != "none":
		ratio := new(big.Rat).Quo(b.Unit.ScaleFactor(), a.Unit.ScaleFactor())
		return a.Value, new(big.Rat).Mul(b.Value, ratio), a.Unit, nil
	default:
		return nil, nil, UnitNone, IncompatibleUnits(a.Unit, b.Unit)
	}
}

// Add implements the sass + operator: numeric addition with unit
// coercion, componentwise colour addition, and string concatenation
// that preserves the left operand's quoting.
func Add(a, b Value) (Value, error) {
	switch av := a.(type) {
	case Numeric:
		if bv, ok := b.(Numeric); ok {
			l, r, unit, err := coerce(av, bv)
			if err != nil {
				return nil, err
			}
			return Numeric{Value: new(big.Rat).Add(l, r), Unit: unit, Calculated: true}, nil
		}
	case Color:
		switch bv := b.(type) {
		case Color:
			return Rgba(
				new(big.Rat).Add(av.R, bv.R),
				new(big.Rat).Add(av.G, bv.G),
				new(big.Rat).Add(av.B, bv.B),
				av.A,
			), nil
		case Numeric:
			return colorOffset(av, bv.Value, false), nil
		}
	}
	return concatOrBinOp(a, b)
}

// Sub implements the sass - operator
func Sub(a, b Value) (Value, error) {
	switch av := a.(type) {
	case Numeric:
		if bv, ok := b.(Numeric); ok {
			l, r, unit, err := coerce(av, bv)
			if err != nil {
				return nil, err
			}
			return Numeric{Value: new(big.Rat).Sub(l, r), Unit: unit, Calculated: true}, nil
		}
	case Color:
		switch bv := b.(type) {
		case Color:
			return Rgba(
				new(big.Rat).Sub(av.R, bv.R),
				new(big.Rat).Sub(av.G, bv.G),
				new(big.Rat).Sub(av.B, bv.B),
				av.A,
			), nil
		case Numeric:
			return colorOffset(av, bv.Value, true), nil
		}
	}
	return BinOp{Left: a, Op: OpMinus, Right: b}, nil
}

// Mul implements the sass * operator
func Mul(a, b Value) (Value, error) {
	av, aok := a.(Numeric)
	bv, bok := b.(Numeric)
	if aok && bok {
		l, r, unit, err := coerce(av, bv)
		if err != nil {
			return nil, err
		}
		return Numeric{Value: new(big.Rat).Mul(l, r), Unit: unit, Calculated: true}, nil
	}
	return BinOp{Left: a, Op: OpMul, Right: b}, nil
}

// Divide performs true division of two numerics. Dividing values of the
// same unit cancels the unit.
func Divide(a, b Value) (Value, error) {
	av, aok := a.(Numeric)
	bv, bok := b.(Numeric)
	if aok && bok {
		if bv.Value.Sign() == 0 {
			return nil, BadValue("non-zero number", b)
		}
		unit := av.Unit
		right := bv.Value
		switch {
		case av.Unit == bv.Unit:
			unit = UnitNone
		case bv.Unit == UnitNone:
			// keep left unit
		case av.Unit.Dimension() == bv.Unit.Dimension() && av.Unit.Dimension() != "none":
			ratio := new(big.Rat).Quo(bv.Unit.ScaleFactor(), av.Unit.ScaleFactor())
			right = new(big.Rat).Mul(bv.Value, ratio)
			unit = UnitNone
		case av.Unit == UnitNone:
			return nil, IncompatibleUnits(av.Unit, bv.Unit)
		default:
			return nil, IncompatibleUnits(av.Unit, bv.Unit)
		}
		return Numeric{Value: new(big.Rat).Quo(av.Value, right), Unit: unit, Calculated: true}, nil
	}
	return nil, BadValue("number", a)
}

// Mod implements the sass % operator on numerics
func Mod(a, b Value) (Value, error) {
	av, aok := a.(Numeric)
	bv, bok := b.(Numeric)
	if !aok || !bok {
		return nil, BadValue("number", a)
	}
	l, r, unit, err := coerce(av, bv)
	if err != nil {
		return nil, err
	}
	if r.Sign() == 0 {
		return nil, BadValue("non-zero number", b)
	}
	q := new(big.Rat).Quo(l, r)
	floor := new(big.Int).Div(q.Num(), q.Denom())
	rem := new(big.Rat).Sub(l, new(big.Rat).Mul(new(big.Rat).SetInt(floor), r))
	return Numeric{Value: rem, Unit: unit, Calculated: true}, nil
}

// Compare orders two numerics of compatible units. It returns -1, 0 or
// 1, or an error when the operands are not comparable.
func Compare(a, b Value) (int, error) {
	av, aok := a.(Numeric)
	bv, bok := b.(Numeric)
	if !aok {
		return 0, BadValue("number", a)
	}
	if !bok {
		return 0, BadValue("number", b)
	}
	l, r, _, err := coerce(av, bv)
	if err != nil {
		return 0, err
	}
	return l.Cmp(r), nil
}

func colorOffset(c Color, n *big.Rat, negative bool) Color {
	offset := func(ch *big.Rat) *big.Rat {
		if negative {
			return new(big.Rat).Sub(ch, n)
		}
		return new(big.Rat).Add(ch, n)
	}
	return Rgba(offset(c.R), offset(c.G), offset(c.B), c.A)
}

// concatOrBinOp concatenates when either operand is a string literal,
// preserving the left operand's quoting; anything else stays a BinOp.
func concatOrBinOp(a, b Value) (Value, error) {
	al, aok := a.(Literal)
	bl, bok := b.(Literal)
	switch {
	case aok && bok:
		return Literal{Value: al.Value + bl.Value, Quotes: al.Quotes}, nil
	case aok:
		return Literal{Value: al.Value + Render(b, false), Quotes: al.Quotes}, nil
	case bok:
		return Literal{Value: Render(a, false) + bl.Value, Quotes: bl.Quotes}, nil
	default:
		return BinOp{Left: a, Op: OpPlus, Right: b}, nil
	}
}
