// Package value implements the typed runtime values of the compiler:
// rational numerics with units, colours, strings, lists and booleans,
// together with their arithmetic and CSS formatting.
package value

import "math/big"

// Unit enumerates the css units, as defined in
// https://www.w3.org/TR/css3-values/
type Unit int

const (
	// UnitNone is the unitless unit
	UnitNone Unit = iota
	// <length> type
	Em
	Ex
	Ch
	Rem
	Vw
	Vh
	Vmin
	Vmax
	Cm
	Mm
	Q
	In
	Pt
	Pc
	Px
	// <angle> type
	Deg
	Grad
	Rad
	Turn
	// <time> type
	S
	Ms
	// <frequency> type
	Hz
	Khz
	// <resolution> type
	Dpi
	Dpcm
	Dppx
	// Percent is the special % unit
	Percent
)

var unitNames = map[Unit]string{
	Em: "em", Ex: "ex", Ch: "ch", Rem: "rem",
	Vw: "vw", Vh: "vh", Vmin: "vmin", Vmax: "vmax",
	Cm: "cm", Mm: "mm", Q: "q", In: "in",
	Pt: "pt", Pc: "pc", Px: "px",
	Deg: "deg", Grad: "grad", Rad: "rad", Turn: "turn",
	S: "s", Ms: "ms",
	Hz: "Hz", Khz: "kHz",
	Dpi: "dpi", Dpcm: "dpcm", Dppx: "dppx",
	Percent: "%", UnitNone: "",
}

var unitsByName = func() map[string]Unit {
	m := make(map[string]Unit, len(unitNames))
	for u, name := range unitNames {
		m[name] = u
	}
	return m
}()

// UnitByName looks up a unit by its css spelling. The empty string maps
// to UnitNone.
func UnitByName(name string) (Unit, bool) {
	u, ok := unitsByName[name]
	return u, ok
}

// String returns the css spelling of the unit
func (u Unit) String() string {
	return unitNames[u]
}

// Dimension returns the dimension class of the unit. Units within a
// class convert via their scale factors; units of different classes do
// not mix in arithmetic.
func (u Unit) Dimension() string {
	switch u {
	case Em, Ex, Ch, Rem, Vw, Vh, Vmin, Vmax, Cm, Mm, Q, In, Pt, Pc, Px:
		return "length"
	case Deg, Grad, Rad, Turn:
		return "angle"
	case S, Ms:
		return "time"
	case Hz, Khz:
		return "frequency"
	case Dpi, Dpcm, Dppx:
		return "resolution"
	default:
		return "none"
	}
}

// ScaleFactor maps the unit to the canonical unit of its dimension
// class. Some of these are exact, others are more arbitrary; comparing
// 10cm to 4in gives correct results, comparing rems to vw is anybody's
// guess.
func (u Unit) ScaleFactor() *big.Rat {
	switch u {
	case Em, Rem:
		return big.NewRat(10, 2)
	case Ex:
		return big.NewRat(10, 3)
	case Ch:
		return big.NewRat(10, 4)
	case Cm:
		return big.NewRat(10, 1)
	case Q:
		return big.NewRat(1, 4)
	case In:
		return big.NewRat(254, 10)
	case Pt:
		return big.NewRat(254, 720)
	case Pc:
		return big.NewRat(254, 60)
	case Px:
		return big.NewRat(254, 960)
	case Deg:
		return big.NewRat(1, 360)
	case Grad:
		return big.NewRat(1, 400)
	case Rad:
		return big.NewRat(10000, 62832) // approximate
	case Ms:
		return big.NewRat(1, 1000)
	case Khz:
		return big.NewRat(1000, 1)
	case Dpi:
		return big.NewRat(1, 96)
	case Dpcm:
		return big.NewRat(254, 9600)
	case Percent:
		return big.NewRat(1, 100)
	default:
		return big.NewRat(1, 1)
	}
}
