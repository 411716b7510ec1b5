package parser

import (
	"math/big"
	"strings"

	"github.com/titpetric/sassgo/ast"
	"github.com/titpetric/sassgo/value"
)

// ParseValue parses a single value expression, as used by
// CompileValue and by the tests.
func ParseValue(src []byte) (ast.Expression, error) {
	p := New(src)
	p.skipSpaceAndComments()
	expr, err := p.parseCommaList()
	if err != nil {
		return nil, err
	}
	p.skipSpaceAndComments()
	if p.peek() == ';' {
		p.pos++
		p.skipSpaceAndComments()
	}
	if !p.eof() {
		return nil, p.errorf("unexpected input after value")
	}
	return expr, nil
}

// value expression terminators at depth 0
func (p *Parser) atValueEnd() bool {
	switch p.peek() {
	case 0, ';', '{', '}', ')', '!':
		return true
	}
	return false
}

// parseCommaList parses a comma-separated list, the lowest precedence
// level of a value expression.
func (p *Parser) parseCommaList() (ast.Expression, error) {
	first, err := p.parseSpaceList()
	if err != nil {
		return nil, err
	}
	items := []ast.Expression{first}
	for {
		p.skipSpaceAndComments()
		if p.peek() != ',' {
			break
		}
		p.pos++
		p.skipSpaceAndComments()
		if p.atValueEnd() {
			break
		}
		item, err := p.parseSpaceList()
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if len(items) == 1 {
		return first, nil
	}
	return &ast.List{Items: items, Separator: value.CommaSeparator}, nil
}

// parseSpaceList parses a space-separated list of comparisons
func (p *Parser) parseSpaceList() (ast.Expression, error) {
	first, err := p.parseComparison()
	if err != nil {
		return nil, err
	}
	items := []ast.Expression{first}
	for {
		p.skipSpaceAndComments()
		if p.atValueEnd() || p.peek() == ',' {
			break
		}
		item, err := p.parseComparison()
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if len(items) == 1 {
		return first, nil
	}
	return &ast.List{Items: items, Separator: value.SpaceSeparator}, nil
}

func (p *Parser) parseComparison() (ast.Expression, error) {
	left, err := p.parseAdditive()
	if err != nil {
		return nil, err
	}
	p.skipSpaceAndComments()
	var op value.Operator
	switch {
	case p.peek() == '=' && p.peekAt(1) == '=':
		op, p.pos = value.OpEq, p.pos+2
	case p.peek() == '!' && p.peekAt(1) == '=':
		op, p.pos = value.OpNeq, p.pos+2
	case p.peek() == '<' && p.peekAt(1) == '=':
		op, p.pos = value.OpLte, p.pos+2
	case p.peek() == '>' && p.peekAt(1) == '=':
		op, p.pos = value.OpGte, p.pos+2
	case p.peek() == '<':
		op, p.pos = value.OpLt, p.pos+1
	case p.peek() == '>':
		op, p.pos = value.OpGt, p.pos+1
	default:
		return left, nil
	}
	p.skipSpaceAndComments()
	right, err := p.parseAdditive()
	if err != nil {
		return nil, err
	}
	return &ast.BinOp{Left: left, Op: op, Right: right}, nil
}

// binaryAdditive decides whether a +/- at the current position is a
// binary operator or starts a new term of a space list. "10px - 2px"
// and "10px-2px" subtract; "10px -2px" is a two-item list.
func (p *Parser) binaryAdditive() bool {
	c := p.peek()
	if c != '+' && c != '-' {
		return false
	}
	spaceAfter := isSpace(p.peekAt(1))
	if p.spaceBefore() && !spaceAfter {
		return false
	}
	if !p.spaceBefore() && c == '-' {
		// adjacent minus binds only numeric-ish operands; `a-b`
		// never reaches here because idents consume hyphens
		after := p.peekAt(1)
		return isDigit(after) || after == '$' || after == '(' || after == '.' || isSpace(after)
	}
	return true
}

func (p *Parser) parseAdditive() (ast.Expression, error) {
	left, err := p.parseMultiplicative()
	if err != nil {
		return nil, err
	}
	for {
		p.skipSpaceAndComments()
		if !p.binaryAdditive() {
			return left, nil
		}
		op := value.OpPlus
		if p.next() == '-' {
			op = value.OpMinus
		}
		p.skipSpaceAndComments()
		right, err := p.parseMultiplicative()
		if err != nil {
			return nil, err
		}
		left = &ast.BinOp{Left: left, Op: op, Right: right}
	}
}

func (p *Parser) parseMultiplicative() (ast.Expression, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for {
		spaceBefore := false
		mark := p.pos
		p.skipSpaceAndComments()
		if p.pos > mark {
			spaceBefore = true
		}
		switch p.peek() {
		case '*':
			p.pos++
			p.skipSpaceAndComments()
			right, err := p.parseUnary()
			if err != nil {
				return nil, err
			}
			left = &ast.BinOp{Left: left, Op: value.OpMul, Right: right}
		case '/':
			p.pos++
			spaceAfter := isSpace(p.peek())
			p.skipSpaceAndComments()
			right, err := p.parseUnary()
			if err != nil {
				return nil, err
			}
			left = &ast.Div{
				Left:        left,
				Right:       right,
				SpaceBefore: spaceBefore,
				SpaceAfter:  spaceAfter,
			}
		case '%':
			// modulo needs space before it; otherwise % is a unit
			if !spaceBefore {
				p.pos = mark
				return left, nil
			}
			p.pos++
			p.skipSpaceAndComments()
			right, err := p.parseUnary()
			if err != nil {
				return nil, err
			}
			left = &ast.BinOp{Left: left, Op: value.OpMod, Right: right}
		default:
			p.pos = mark
			return left, nil
		}
	}
}

func (p *Parser) parseUnary() (ast.Expression, error) {
	if p.peek() == '-' && !isDigit(p.peekAt(1)) && p.peekAt(1) != '.' {
		after := p.peekAt(1)
		if after == '$' || after == '(' {
			p.pos++
			term, err := p.parseUnary()
			if err != nil {
				return nil, err
			}
			return &ast.UnaryOp{Op: value.OpMinus, Expr: term}, nil
		}
	}
	return p.parseTerm()
}

func (p *Parser) parseTerm() (ast.Expression, error) {
	switch c := p.peek(); {
	case c == '(':
		p.pos++
		p.skipSpaceAndComments()
		inner, err := p.parseCommaList()
		if err != nil {
			return nil, err
		}
		p.skipSpaceAndComments()
		if err := p.expect(')'); err != nil {
			return nil, err
		}
		return &ast.Paren{Inner: inner}, nil
	case c == '"' || c == '\'':
		return p.parseQuotedString()
	case c == '#' && p.peekAt(1) == '{':
		return p.parseBareInterpolation()
	case c == '#':
		return p.parseHexColor()
	case c == '$':
		p.pos++
		name := p.ident()
		if name == "" {
			return nil, p.errorf("expected variable name after $")
		}
		return &ast.Variable{Name: name}, nil
	case isDigit(c) || c == '.' || ((c == '-' || c == '+') && (isDigit(p.peekAt(1)) || p.peekAt(1) == '.')):
		return p.parseNumber()
	case isNameStart(c) || c == '-':
		return p.parseIdentTerm()
	default:
		return nil, p.errorf("unexpected %q in value", string(c))
	}
}

func (p *Parser) parseQuotedString() (ast.Expression, error) {
	quote := p.next()
	quotes := value.DoubleQuotes
	if quote == '\'' {
		quotes = value.SingleQuotes
	}
	var parts []ast.InterpolationPart
	var literal strings.Builder
	for {
		if p.eof() {
			return nil, p.errorf("unterminated string")
		}
		c := p.peek()
		switch {
		case c == quote:
			p.pos++
			if literal.Len() > 0 || len(parts) == 0 {
				parts = append(parts, ast.InterpolationPart{Literal: literal.String()})
			}
			if len(parts) == 1 && parts[0].Value == nil {
				return &ast.Literal{Value: parts[0].Literal, Quotes: quotes}, nil
			}
			return &ast.Interpolation{
				String: ast.InterpolationString{Parts: parts},
				Quotes: quotes,
			}, nil
		case c == '\\':
			p.pos++
			literal.WriteByte(p.next())
		case c == '#' && p.peekAt(1) == '{':
			if literal.Len() > 0 {
				parts = append(parts, ast.InterpolationPart{Literal: literal.String()})
				literal.Reset()
			}
			expr, err := p.parseInterpolationValue()
			if err != nil {
				return nil, err
			}
			parts = append(parts, ast.InterpolationPart{Value: expr})
		default:
			p.pos++
			literal.WriteByte(c)
		}
	}
}

// parseInterpolationValue consumes `#{expr}`
func (p *Parser) parseInterpolationValue() (ast.Expression, error) {
	p.pos += 2 // #{
	p.skipSpaceAndComments()
	expr, err := p.parseCommaList()
	if err != nil {
		return nil, err
	}
	p.skipSpaceAndComments()
	if err := p.expect('}'); err != nil {
		return nil, err
	}
	return expr, nil
}

func (p *Parser) parseBareInterpolation() (ast.Expression, error) {
	expr, err := p.parseInterpolationValue()
	if err != nil {
		return nil, err
	}
	parts := []ast.InterpolationPart{{Value: expr}}
	// adjacent ident text and further interpolations glue into one
	// string, so #{$i}px is a single value
	for {
		if p.peek() == '#' && p.peekAt(1) == '{' {
			glued, err := p.parseInterpolationValue()
			if err != nil {
				return nil, err
			}
			parts = append(parts, ast.InterpolationPart{Value: glued})
			continue
		}
		if isNameChar(p.peek()) || p.peek() == '%' {
			start := p.pos
			for isNameChar(p.peek()) || p.peek() == '%' {
				p.pos++
			}
			parts = append(parts, ast.InterpolationPart{Literal: string(p.src[start:p.pos])})
			continue
		}
		break
	}
	return &ast.Interpolation{
		String: ast.InterpolationString{Parts: parts},
	}, nil
}

func (p *Parser) parseHexColor() (ast.Expression, error) {
	p.pos++ // #
	start := p.pos
	for isHexDigit(p.peek()) {
		p.pos++
	}
	hex := string(p.src[start:p.pos])
	var r, g, b int64
	switch len(hex) {
	case 3:
		r = hexVal(hex[0])*16 + hexVal(hex[0])
		g = hexVal(hex[1])*16 + hexVal(hex[1])
		b = hexVal(hex[2])*16 + hexVal(hex[2])
	case 6:
		r = hexVal(hex[0])*16 + hexVal(hex[1])
		g = hexVal(hex[2])*16 + hexVal(hex[3])
		b = hexVal(hex[4])*16 + hexVal(hex[5])
	default:
		return nil, p.errorf("invalid hex color #%s", hex)
	}
	return &ast.Color{
		R: big.NewRat(r, 1),
		G: big.NewRat(g, 1),
		B: big.NewRat(b, 1),
		A: big.NewRat(1, 1),
	}, nil
}

func hexVal(c byte) int64 {
	switch {
	case c >= '0' && c <= '9':
		return int64(c - '0')
	case c >= 'a' && c <= 'f':
		return int64(c-'a') + 10
	default:
		return int64(c-'A') + 10
	}
}

func (p *Parser) parseNumber() (ast.Expression, error) {
	withSign := false
	negative := false
	switch p.peek() {
	case '+':
		withSign = true
		p.pos++
	case '-':
		negative = true
		p.pos++
	}
	num := big.NewRat(0, 1)
	ten := big.NewRat(10, 1)
	digits := 0
	for isDigit(p.peek()) {
		num.Mul(num, ten)
		num.Add(num, big.NewRat(int64(p.next()-'0'), 1))
		digits++
	}
	if p.peek() == '.' && isDigit(p.peekAt(1)) {
		p.pos++
		frac := big.NewRat(1, 1)
		for isDigit(p.peek()) {
			frac.Quo(frac, ten)
			num.Add(num, new(big.Rat).Mul(frac, big.NewRat(int64(p.next()-'0'), 1)))
			digits++
		}
	}
	if digits == 0 {
		return nil, p.errorf("malformed number")
	}
	if negative {
		num.Neg(num)
	}
	unit := value.UnitNone
	if p.peek() == '%' {
		unit = value.Percent
		p.pos++
	} else if isNameStart(p.peek()) {
		// A unit is a run of letters; a hyphen right after it starts an
		// adjacent subtraction (10px-5px) rather than extending the name.
		mark := p.pos
		for c := p.peek(); (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z'); c = p.peek() {
			p.pos++
		}
		name := string(p.src[mark:p.pos])
		next := p.peek()
		if u, ok := value.UnitByName(name); ok && next != '(' && (next == '-' || !isNameChar(next)) {
			unit = u
		} else {
			p.pos = mark
		}
	}
	return &ast.Number{Value: num, Unit: unit, WithSign: withSign}, nil
}

func (p *Parser) parseIdentTerm() (ast.Expression, error) {
	name := p.ident()
	if name == "" {
		return nil, p.errorf("expected identifier")
	}
	if p.peek() == '(' {
		return p.parseCall(name)
	}
	switch name {
	case "true":
		return &ast.True{}, nil
	case "false":
		return &ast.False{}, nil
	case "null":
		return &ast.Null{}, nil
	}
	if c, ok := value.ColorByName(name); ok {
		return &ast.Color{R: c.R, G: c.G, B: c.B, A: c.A, Name: name}, nil
	}
	// idents followed directly by interpolation glue together
	if p.peek() == '#' && p.peekAt(1) == '{' {
		parts := []ast.InterpolationPart{{Literal: name}}
		for {
			if p.peek() == '#' && p.peekAt(1) == '{' {
				expr, err := p.parseInterpolationValue()
				if err != nil {
					return nil, err
				}
				parts = append(parts, ast.InterpolationPart{Value: expr})
				continue
			}
			if isNameChar(p.peek()) {
				parts = append(parts, ast.InterpolationPart{Literal: p.ident()})
				continue
			}
			break
		}
		return &ast.Interpolation{String: ast.InterpolationString{Parts: parts}}, nil
	}
	return &ast.Literal{Value: name, Quotes: value.NoQuotes}, nil
}

// parseCall parses the argument list of name(...). The url(), calc()
// and expression() forms are special-cased: their argument is raw
// text, not a sass expression.
func (p *Parser) parseCall(name string) (ast.Expression, error) {
	p.pos++ // (
	if name == "url" || name == "calc" || name == "expression" {
		start := p.pos
		depth := 0
		for !p.eof() {
			switch p.peek() {
			case '(':
				depth++
			case ')':
				if depth == 0 {
					raw := strings.TrimSpace(string(p.src[start:p.pos]))
					p.pos++
					args := ast.NewCallArgs(ast.CallArg{
						Value: &ast.Literal{Value: raw, Quotes: value.NoQuotes},
					})
					return &ast.Call{Name: name, Args: args}, nil
				}
				depth--
			}
			p.pos++
		}
		return nil, p.errorf("unterminated url()")
	}
	var args ast.CallArgs
	p.skipSpaceAndComments()
	for p.peek() != ')' {
		if p.eof() {
			return nil, p.errorf("unterminated argument list for %s()", name)
		}
		argName := ""
		if p.peek() == '$' {
			mark := p.pos
			p.pos++
			ident := p.ident()
			p.skipSpaceAndComments()
			if ident != "" && p.peek() == ':' {
				p.pos++
				p.skipSpaceAndComments()
				argName = ident
			} else {
				p.pos = mark
			}
		}
		expr, err := p.parseSpaceList()
		if err != nil {
			return nil, err
		}
		if argName != "" {
			args.Named(argName, expr)
		} else {
			args.Positional(expr)
		}
		p.skipSpaceAndComments()
		if p.peek() == ',' {
			p.pos++
			p.skipSpaceAndComments()
		}
	}
	p.pos++ // )
	return &ast.Call{Name: name, Args: args}, nil
}
