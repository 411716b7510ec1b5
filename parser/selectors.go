package parser

import (
	"strings"

	"github.com/titpetric/sassgo/ast"
)

// ParseSelectors parses a standalone selector list, as used when
// materialised selector interpolation is re-parsed.
func ParseSelectors(src []byte) (ast.Selectors, error) {
	p := New(src)
	p.skipSpaceAndComments()
	selectors, err := p.parseSelectors(0)
	if err != nil {
		return nil, err
	}
	p.skipSpaceAndComments()
	if p.peek() == ';' {
		p.pos++
		p.skipSpaceAndComments()
	}
	if !p.eof() {
		return nil, p.errorf("unexpected input after selectors")
	}
	return selectors, nil
}

// parseSelectors reads a comma-separated selector list up to `stop`
// (or end of input when stop is 0). The stop byte is not consumed.
func (p *Parser) parseSelectors(stop byte) (ast.Selectors, error) {
	var selectors ast.Selectors
	for {
		sel, err := p.parseSelector(stop)
		if err != nil {
			return nil, err
		}
		selectors = append(selectors, sel)
		p.skipSpaceAndComments()
		if p.peek() != ',' {
			return selectors, nil
		}
		p.pos++
		p.skipSpaceAndComments()
	}
}

func (p *Parser) parseSelector(stop byte) (ast.Selector, error) {
	var sel ast.Selector
	pendingSpace := false

	flushSpace := func() {
		if pendingSpace && len(sel) > 0 && !sel[len(sel)-1].IsOperator() {
			sel = append(sel, &ast.DescendantPart{})
		}
		pendingSpace = false
	}

	for {
		c := p.peek()
		if c == 0 || c == stop || c == ',' || c == ';' || c == '{' || c == '}' || c == ')' {
			return sel, nil
		}
		switch {
		case isSpace(c):
			pendingSpace = true
			p.skipSpaceAndComments()
		case c == '/' && p.peekAt(1) == '*':
			p.skipSpaceAndComments()
		case c == '>' || c == '+' || c == '~':
			pendingSpace = false
			p.pos++
			sel = append(sel, &ast.RelOpPart{Op: c})
			p.skipSpaceAndComments()
		case c == '&':
			flushSpace()
			p.pos++
			sel = append(sel, &ast.BackRefPart{})
		case c == '[':
			flushSpace()
			part, err := p.parseAttribute()
			if err != nil {
				return nil, err
			}
			sel = append(sel, part)
		case c == ':':
			flushSpace()
			part, err := p.parsePseudo()
			if err != nil {
				return nil, err
			}
			sel = append(sel, part)
		default:
			flushSpace()
			name, err := p.parseSelectorName()
			if err != nil {
				return nil, err
			}
			sel = append(sel, &ast.SimplePart{Name: name})
		}
	}
}

// selector name characters beyond identifiers: type/class/id/placeholder
// prefixes, the universal selector and nth-child expressions like 2n+1.
func isSelectorNameChar(c byte) bool {
	return isNameChar(c) || c == '.' || c == '#' || c == '*' || c == '%' || c == '|'
}

func (p *Parser) parseSelectorName() (ast.InterpolationString, error) {
	var parts []ast.InterpolationPart
	var literal strings.Builder
	for {
		c := p.peek()
		switch {
		case c == '#' && p.peekAt(1) == '{':
			if literal.Len() > 0 {
				parts = append(parts, ast.InterpolationPart{Literal: literal.String()})
				literal.Reset()
			}
			expr, err := p.parseInterpolationValue()
			if err != nil {
				return ast.InterpolationString{}, err
			}
			parts = append(parts, ast.InterpolationPart{Value: expr})
		case isSelectorNameChar(c):
			literal.WriteByte(c)
			p.pos++
		default:
			if literal.Len() > 0 || len(parts) == 0 {
				parts = append(parts, ast.InterpolationPart{Literal: literal.String()})
			}
			if len(parts) == 1 && parts[0].Value == nil && parts[0].Literal == "" {
				return ast.InterpolationString{}, p.errorf("expected selector, got %q", string(c))
			}
			return ast.InterpolationString{Parts: parts}, nil
		}
	}
}

func (p *Parser) parseAttribute() (ast.SelectorPart, error) {
	p.pos++ // [
	p.skipSpaceAndComments()
	name, err := p.parseSelectorName()
	if err != nil {
		return nil, err
	}
	p.skipSpaceAndComments()
	var op strings.Builder
	for {
		c := p.peek()
		if c == '=' || c == '~' || c == '^' || c == '|' || c == '$' || c == '*' {
			op.WriteByte(c)
			p.pos++
			continue
		}
		break
	}
	p.skipSpaceAndComments()
	var val strings.Builder
	for !p.eof() && p.peek() != ']' {
		val.WriteByte(p.next())
	}
	if err := p.expect(']'); err != nil {
		return nil, err
	}
	return &ast.AttributePart{
		Name: name,
		Op:   op.String(),
		Val:  strings.TrimSpace(val.String()),
	}, nil
}

func (p *Parser) parsePseudo() (ast.SelectorPart, error) {
	p.pos++ // :
	if p.peek() == ':' {
		p.pos++
		name, err := p.parseSelectorName()
		if err != nil {
			return nil, err
		}
		return &ast.PseudoElementPart{Name: name}, nil
	}
	name, err := p.parseSelectorName()
	if err != nil {
		return nil, err
	}
	if p.peek() != '(' {
		return &ast.PseudoPart{Name: name}, nil
	}
	p.pos++
	p.skipSpaceAndComments()
	arg, err := p.parseSelectors(')')
	if err != nil {
		return nil, err
	}
	if err := p.expect(')'); err != nil {
		return nil, err
	}
	return &ast.PseudoPart{Name: name, Arg: arg, HasArg: true}, nil
}
