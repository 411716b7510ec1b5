package compiler

import (
	"strings"

	"github.com/titpetric/sassgo/ast"
	"github.com/titpetric/sassgo/css"
	"github.com/titpetric/sassgo/parser"
	"github.com/titpetric/sassgo/scope"
	"github.com/titpetric/sassgo/value"
)

// interpolateSelectors materialises #{...} parts by rendering the
// selector list to text and re-parsing it, giving interpolation the
// semantics of textual substitution.
func interpolateSelectors(s *scope.Scope, selectors ast.Selectors) (ast.Selectors, error) {
	var sb strings.Builder
	for i, selector := range selectors {
		if i > 0 {
			sb.WriteByte(',')
		}
		if err := writeSelector(&sb, s, selector); err != nil {
			return nil, err
		}
	}
	sb.WriteByte(';')
	return parser.ParseSelectors([]byte(sb.String()))
}

func writeSelector(sb *strings.Builder, s *scope.Scope, selector ast.Selector) error {
	for _, part := range selector {
		if err := writeSelectorPart(sb, s, part); err != nil {
			return err
		}
	}
	return nil
}

func writeSelectorPart(sb *strings.Builder, s *scope.Scope, part ast.SelectorPart) error {
	switch t := part.(type) {
	case *ast.SimplePart:
		return writeInterpolationString(sb, s, t.Name)
	case *ast.AttributePart:
		sb.WriteByte('[')
		if err := writeInterpolationString(sb, s, t.Name); err != nil {
			return err
		}
		sb.WriteString(t.Op)
		sb.WriteString(t.Val)
		sb.WriteByte(']')
	case *ast.PseudoElementPart:
		sb.WriteString("::")
		return writeInterpolationString(sb, s, t.Name)
	case *ast.PseudoPart:
		sb.WriteByte(':')
		if err := writeInterpolationString(sb, s, t.Name); err != nil {
			return err
		}
		if t.HasArg {
			sb.WriteByte('(')
			for i, sel := range t.Arg {
				if i > 0 {
					sb.WriteByte(',')
				}
				if err := writeSelector(sb, s, sel); err != nil {
					return err
				}
			}
			sb.WriteByte(')')
		}
	case *ast.DescendantPart:
		sb.WriteByte(' ')
	case *ast.RelOpPart:
		sb.WriteByte(' ')
		sb.WriteByte(t.Op)
		sb.WriteByte(' ')
	case *ast.BackRefPart:
		sb.WriteByte('&')
	}
	return nil
}

func writeInterpolationString(sb *strings.Builder, s *scope.Scope, str ast.InterpolationString) error {
	for _, part := range str.Parts {
		if part.Value == nil {
			sb.WriteString(part.Literal)
			continue
		}
		v, err := eval(s, part.Value, true)
		if err != nil {
			return err
		}
		sb.WriteString(value.Interpolate(v))
	}
	return nil
}

// compileSelectors lowers interpolation-free sass selectors to the css
// representation used by the selector algebra and the writer.
func compileSelectors(selectors ast.Selectors) css.Selectors {
	out := make(css.Selectors, len(selectors))
	for i, selector := range selectors {
		out[i] = compileSelector(selector)
	}
	return out
}

func compileSelector(selector ast.Selector) css.Selector {
	out := make(css.Selector, len(selector))
	for i, part := range selector {
		out[i] = compileSelectorPart(part)
	}
	return out
}

func compileSelectorPart(part ast.SelectorPart) css.SelectorPart {
	switch t := part.(type) {
	case *ast.SimplePart:
		return &css.Simple{Name: t.Name.String()}
	case *ast.DescendantPart:
		return &css.Descendant{}
	case *ast.RelOpPart:
		return &css.RelOp{Op: t.Op}
	case *ast.AttributePart:
		return &css.Attribute{Name: t.Name.String(), Op: t.Op, Val: t.Val}
	case *ast.PseudoElementPart:
		return &css.PseudoElement{Name: t.Name.String()}
	case *ast.PseudoPart:
		pseudo := &css.Pseudo{Name: t.Name.String(), HasArg: t.HasArg}
		if t.HasArg {
			pseudo.Arg = compileSelectors(t.Arg)
		}
		return pseudo
	default:
		return &css.BackRef{}
	}
}

// resolveSelectors interpolates a rule head and joins it against the
// parent selectors.
func resolveSelectors(s *scope.Scope, selectors ast.Selectors, parent css.Selectors) (css.Selectors, error) {
	interpolated, err := interpolateSelectors(s, selectors)
	if err != nil {
		return nil, err
	}
	return compileSelectors(interpolated).Inside(parent), nil
}
