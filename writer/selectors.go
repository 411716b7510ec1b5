package writer

import (
	"io"
	"strings"

	"github.com/titpetric/sassgo/css"
)

func writeSelectors(out io.Writer, style Style, selectors css.Selectors) error {
	for index, selector := range selectors {
		if index > 0 {
			if _, err := io.WriteString(out, ","+style.SelectorSeparator()); err != nil {
				return err
			}
		}
		if err := writeSelector(out, style, selector); err != nil {
			return err
		}
	}
	return nil
}

func writeSelector(out io.Writer, style Style, selector css.Selector) error {
	var sb strings.Builder
	for _, part := range selector {
		writeSelectorPart(&sb, style, part)
	}
	// clean up combinator whitespace rather than tracking it while
	// rendering parts
	rendered := strings.Trim(sb.String(), " ")
	for strings.Contains(rendered, "  ") {
		rendered = strings.ReplaceAll(rendered, "  ", " ")
	}
	_, err := io.WriteString(out, rendered)
	return err
}

func writeSelectorPart(sb *strings.Builder, style Style, part css.SelectorPart) {
	switch t := part.(type) {
	case *css.Simple:
		sb.WriteString(t.Name)
	case *css.Descendant:
		sb.WriteByte(' ')
	case *css.RelOp:
		// the ~ combinator keeps its spaces even compressed, to
		// not collide with attribute selectors
		if t.Op == '~' {
			sb.WriteString(" ~ ")
		} else {
			sep := style.SelectorSeparator()
			sb.WriteString(sep)
			sb.WriteByte(t.Op)
			sb.WriteString(sep)
		}
	case *css.Attribute:
		sb.WriteByte('[')
		sb.WriteString(t.Name)
		sb.WriteString(t.Op)
		sb.WriteString(t.Val)
		sb.WriteByte(']')
	case *css.PseudoElement:
		sb.WriteString("::")
		sb.WriteString(t.Name)
	case *css.Pseudo:
		sb.WriteByte(':')
		sb.WriteString(t.Name)
		if t.HasArg {
			sb.WriteByte('(')
			// some pseudo-classes always print their argument
			// in compact form
			argStyle := style
			if t.Name == "nth-child" || t.Name == "nth-of-type" {
				argStyle = Compressed()
			}
			var arg strings.Builder
			for index, sel := range t.Arg {
				if index > 0 {
					arg.WriteString("," + argStyle.SelectorSeparator())
				}
				for _, p := range sel {
					writeSelectorPart(&arg, argStyle, p)
				}
			}
			sb.WriteString(strings.Trim(arg.String(), " "))
			sb.WriteByte(')')
		}
	case *css.BackRef:
		sb.WriteByte('&')
	}
}
