package value

import (
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"
)

// Render formats a value as css. The compressed flag selects the
// space-free output forms.
func Render(v Value, compressed bool) string {
	var sb strings.Builder
	renderTo(&sb, v, compressed)
	return sb.String()
}

// Interpolate formats a value for #{...} substitution: quote marks are
// dropped from literals and the normal (uncompressed) forms are used.
func Interpolate(v Value) string {
	return Render(Unquote(v), false)
}

func renderTo(sb *strings.Builder, v Value, compressed bool) {
	switch t := v.(type) {
	case Null:
		// nothing
	case Bool:
		if t {
			sb.WriteString("true")
		} else {
			sb.WriteString("false")
		}
	case Literal:
		renderLiteral(sb, t)
	case Numeric:
		sb.WriteString(rationalString(t.Value, t.WithSign, compressed))
		sb.WriteString(t.Unit.String())
	case Color:
		renderColor(sb, t, compressed)
	case List:
		sep := " "
		if t.Separator == CommaSeparator {
			if compressed {
				sep = ","
			} else {
				sep = ", "
			}
		}
		first := true
		for _, item := range t.Items {
			if IsNull(item) {
				continue
			}
			if !first {
				sb.WriteString(sep)
			}
			first = false
			renderTo(sb, item, compressed)
		}
	case Call:
		sb.WriteString(t.Name)
		sb.WriteByte('(')
		sb.WriteString(RenderCallArgs(t.Args, compressed))
		sb.WriteByte(')')
	case Div:
		renderTo(sb, t.Left, compressed)
		if t.SpaceBefore {
			sb.WriteByte(' ')
		}
		sb.WriteByte('/')
		if t.SpaceAfter {
			sb.WriteByte(' ')
		}
		renderTo(sb, t.Right, compressed)
	case BinOp:
		renderTo(sb, t.Left, compressed)
		// the plus operator doubles as a concat operator
		if t.Op != OpPlus {
			sb.WriteString(t.Op.String())
		}
		renderTo(sb, t.Right, compressed)
	case UnaryOp:
		sb.WriteString(t.Op.String())
		renderTo(sb, t.Value, compressed)
	default:
		fmt.Fprintf(sb, "%v", v)
	}
}

// RenderCallArgs formats evaluated call arguments, named ones as
// $name: value.
func RenderCallArgs(args CallArgs, compressed bool) string {
	parts := make([]string, 0, len(args.Args))
	for _, arg := range args.Args {
		if arg.Name != "" {
			parts = append(parts, "$"+arg.Name+": "+Render(arg.Value, compressed))
		} else {
			parts = append(parts, Render(arg.Value, compressed))
		}
	}
	return strings.Join(parts, ", ")
}

func renderLiteral(sb *strings.Builder, lit Literal) {
	switch lit.Quotes {
	case DoubleQuotes:
		sb.WriteByte('"')
		escapeInto(sb, lit.Value, '"')
		sb.WriteByte('"')
	case SingleQuotes:
		sb.WriteByte('\'')
		escapeInto(sb, lit.Value, '\'')
		sb.WriteByte('\'')
	default:
		sb.WriteString(lit.Value)
	}
}

func escapeInto(sb *strings.Builder, s string, quote byte) {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '#' || c == '\\' || c == quote {
			sb.WriteByte('\\')
		}
		sb.WriteByte(c)
	}
}

func renderColor(sb *strings.Builder, c Color, compressed bool) {
	r := roundChannel(c.R)
	g := roundChannel(c.G)
	b := roundChannel(c.B)
	one := big.NewRat(1, 1)
	switch {
	case c.Name != "":
		sb.WriteString(c.Name)
	case c.A.Cmp(one) >= 0:
		// E.g. #ff00cc can be written #f0c in css, since 17 = 0x11.
		var hex string
		if compressed && r%17 == 0 && g%17 == 0 && b%17 == 0 {
			hex = fmt.Sprintf("#%x%x%x", r/17, g/17, b/17)
		} else {
			hex = fmt.Sprintf("#%02x%02x%02x", r, g, b)
		}
		if name, ok := NameForRgb(r, g, b); ok {
			if !compressed || len(name) <= len(hex) {
				sb.WriteString(name)
				return
			}
		}
		sb.WriteString(hex)
	case c.A.Sign() == 0 && c.R.Sign() == 0 && c.G.Sign() == 0 && c.B.Sign() == 0:
		sb.WriteString("transparent")
	default:
		sep := ", "
		if compressed {
			sep = ","
		}
		fmt.Fprintf(sb, "rgba(%d%s%d%s%d%s%s)",
			r, sep, g, sep, b, sep, rationalString(c.A, false, false))
	}
}

func roundChannel(r *big.Rat) uint8 {
	f, _ := r.Float64()
	v := math.Round(f)
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// rationalString formats a rational for css output. Integers print
// exact; other values round to five decimal places. In compressed mode
// the leading zero of 0.x values is stripped.
func rationalString(r *big.Rat, withSign, skipZero bool) string {
	var result string
	if r.IsInt() {
		result = r.Num().String()
		if withSign && r.Sign() >= 0 {
			result = "+" + result
		}
	} else {
		f, _ := r.Float64()
		rounded := math.Round(f*100000) / 100000
		result = strconv.FormatFloat(rounded, 'f', -1, 64)
		if withSign && rounded >= 0 {
			result = "+" + result
		}
	}
	if skipZero && strings.HasPrefix(result, "0.") {
		result = result[1:]
	}
	return result
}
