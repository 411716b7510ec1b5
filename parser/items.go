package parser

import (
	"strings"

	"github.com/titpetric/sassgo/ast"
)

// Parse parses a whole scss file into a list of items
func Parse(src []byte) ([]ast.Item, error) {
	p := New(src)
	items, err := p.parseItems()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if !p.eof() {
		return nil, p.errorf("unexpected %q", string(p.peek()))
	}
	return items, nil
}

// parseItems parses statements until `}` or end of input. The closing
// brace is not consumed.
func (p *Parser) parseItems() ([]ast.Item, error) {
	var items []ast.Item
	for {
		p.skipSpace()
		switch {
		case p.eof() || p.peek() == '}':
			return items, nil
		case p.peek() == ';':
			p.pos++
		case p.peek() == '/' && p.peekAt(1) == '*':
			items = append(items, p.parseComment())
		case p.peek() == '@':
			item, err := p.parseAtItem()
			if err != nil {
				return nil, err
			}
			items = append(items, item)
		case p.peek() == '$':
			item, err := p.parseVariableDeclaration()
			if err != nil {
				return nil, err
			}
			items = append(items, item)
		default:
			item, err := p.parseRuleOrProperty()
			if err != nil {
				return nil, err
			}
			items = append(items, item)
		}
	}
}

func (p *Parser) parseComment() ast.Item {
	p.pos += 2 // /*
	start := p.pos
	for !p.eof() && !(p.peek() == '*' && p.peekAt(1) == '/') {
		p.pos++
	}
	text := string(p.src[start:p.pos])
	p.pos += 2
	return &ast.Comment{Text: text}
}

// parseBlock consumes a `{ ... }` delimited item list
func (p *Parser) parseBlock() ([]ast.Item, error) {
	p.skipSpace()
	if err := p.expect('{'); err != nil {
		return nil, err
	}
	items, err := p.parseItems()
	if err != nil {
		return nil, err
	}
	if err := p.expect('}'); err != nil {
		return nil, err
	}
	return items, nil
}

func (p *Parser) endStatement() error {
	p.skipSpace()
	switch p.peek() {
	case ';':
		p.pos++
		return nil
	case '}', 0:
		return nil
	}
	return p.errorf("expected end of statement, got %q", string(p.peek()))
}

func (p *Parser) parseAtItem() (ast.Item, error) {
	p.pos++ // @
	name := p.ident()
	p.skipSpace()
	switch name {
	case "import":
		expr, err := p.parseCommaList()
		if err != nil {
			return nil, err
		}
		if err := p.endStatement(); err != nil {
			return nil, err
		}
		return &ast.Import{Path: expr}, nil
	case "mixin":
		return p.parseMixinDeclaration()
	case "include":
		return p.parseMixinCall()
	case "content":
		if err := p.endStatement(); err != nil {
			return nil, err
		}
		return &ast.Content{}, nil
	case "function":
		mixin, err := p.parseMixinDeclaration()
		if err != nil {
			return nil, err
		}
		decl := mixin.(*ast.MixinDeclaration)
		return &ast.FunctionDeclaration{
			Name: decl.Name,
			Args: decl.Args,
			Body: decl.Body,
		}, nil
	case "return":
		expr, err := p.parseCommaList()
		if err != nil {
			return nil, err
		}
		if err := p.endStatement(); err != nil {
			return nil, err
		}
		return &ast.Return{Value: expr}, nil
	case "if":
		return p.parseIf()
	case "each":
		return p.parseEach()
	case "for":
		return p.parseFor()
	case "while":
		return p.parseWhile()
	case "else":
		return nil, p.errorf("@else without matching @if")
	case "":
		return nil, p.errorf("expected at-rule name after @")
	default:
		return p.parseGenericAtRule(name)
	}
}

func (p *Parser) parseFormalArgs() (ast.FormalArgs, error) {
	var args ast.FormalArgs
	if p.peek() != '(' {
		return args, nil
	}
	p.pos++
	p.skipSpaceAndComments()
	for p.peek() != ')' {
		if p.eof() {
			return args, p.errorf("unterminated parameter list")
		}
		if err := p.expect('$'); err != nil {
			return args, err
		}
		name := p.ident()
		if name == "" {
			return args, p.errorf("expected parameter name")
		}
		p.skipSpaceAndComments()
		var def ast.Expression
		if p.peek() == ':' {
			p.pos++
			p.skipSpaceAndComments()
			var err error
			def, err = p.parseSpaceList()
			if err != nil {
				return args, err
			}
			p.skipSpaceAndComments()
		}
		args.Args = append(args.Args, ast.FormalArg{Name: name, Default: def})
		if p.peek() == ',' {
			p.pos++
			p.skipSpaceAndComments()
		}
	}
	p.pos++ // )
	return args, nil
}

func (p *Parser) parseMixinDeclaration() (ast.Item, error) {
	name := p.ident()
	if name == "" {
		return nil, p.errorf("expected mixin name")
	}
	p.skipSpace()
	args, err := p.parseFormalArgs()
	if err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return &ast.MixinDeclaration{Name: name, Args: args, Body: body}, nil
}

func (p *Parser) parseMixinCall() (ast.Item, error) {
	name := p.ident()
	if name == "" {
		return nil, p.errorf("expected mixin name after @include")
	}
	p.skipSpace()
	var args ast.CallArgs
	if p.peek() == '(' {
		call, err := p.parseCall(name)
		if err != nil {
			return nil, err
		}
		args = call.(*ast.Call).Args
		p.skipSpace()
	}
	var body []ast.Item
	if p.peek() == '{' {
		var err error
		body, err = p.parseBlock()
		if err != nil {
			return nil, err
		}
	} else if err := p.endStatement(); err != nil {
		return nil, err
	}
	return &ast.MixinCall{Name: name, Args: args, Body: body}, nil
}

func (p *Parser) parseIf() (ast.Item, error) {
	cond, err := p.parseCommaList()
	if err != nil {
		return nil, err
	}
	then, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	item := &ast.If{Cond: cond, Then: then}
	mark := p.pos
	p.skipSpace()
	if p.peek() == '@' {
		save := p.pos
		p.pos++
		if p.ident() == "else" {
			p.skipSpace()
			if p.peek() == '{' {
				item.Else, err = p.parseBlock()
				if err != nil {
					return nil, err
				}
				return item, nil
			}
			inner := p.ident()
			if inner != "if" {
				return nil, p.errorf("expected `if` or block after @else")
			}
			p.skipSpace()
			nested, err := p.parseIf()
			if err != nil {
				return nil, err
			}
			item.Else = []ast.Item{nested}
			return item, nil
		}
		p.pos = save
	}
	p.pos = mark
	return item, nil
}

func (p *Parser) parseEach() (ast.Item, error) {
	if err := p.expect('$'); err != nil {
		return nil, err
	}
	name := p.ident()
	if name == "" {
		return nil, p.errorf("expected loop variable after @each")
	}
	p.skipSpace()
	if p.ident() != "in" {
		return nil, p.errorf("expected `in` in @each")
	}
	p.skipSpace()
	values, err := p.parseCommaList()
	if err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return &ast.Each{Name: name, Values: values, Body: body}, nil
}

func (p *Parser) parseFor() (ast.Item, error) {
	if err := p.expect('$'); err != nil {
		return nil, err
	}
	name := p.ident()
	if name == "" {
		return nil, p.errorf("expected loop variable after @for")
	}
	p.skipSpace()
	if p.ident() != "from" {
		return nil, p.errorf("expected `from` in @for")
	}
	p.skipSpace()
	from, err := p.parseSpaceListUntilKeyword("through", "to")
	if err != nil {
		return nil, err
	}
	keyword := p.ident()
	inclusive := keyword == "through"
	if !inclusive && keyword != "to" {
		return nil, p.errorf("expected `through` or `to` in @for")
	}
	p.skipSpace()
	to, err := p.parseCommaList()
	if err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return &ast.For{Name: name, From: from, To: to, Inclusive: inclusive, Body: body}, nil
}

// parseSpaceListUntilKeyword parses terms until one of the given bare
// keywords follows, leaving the keyword unconsumed.
func (p *Parser) parseSpaceListUntilKeyword(keywords ...string) (ast.Expression, error) {
	first, err := p.parseComparison()
	if err != nil {
		return nil, err
	}
	for {
		p.skipSpaceAndComments()
		mark := p.pos
		next := p.ident()
		p.pos = mark
		for _, kw := range keywords {
			if next == kw {
				return first, nil
			}
		}
		if p.atValueEnd() || p.peek() == ',' {
			return first, nil
		}
		return nil, p.errorf("unexpected input in @for bounds")
	}
}

func (p *Parser) parseWhile() (ast.Item, error) {
	cond, err := p.parseCommaList()
	if err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return &ast.While{Cond: cond, Body: body}, nil
}

// parseGenericAtRule handles directives like @media or @font-face. The
// argument text is kept as an interpolation string rather than parsed
// as a sass expression, so media query syntax passes through.
func (p *Parser) parseGenericAtRule(name string) (ast.Item, error) {
	var parts []ast.InterpolationPart
	var literal strings.Builder
	for {
		c := p.peek()
		if c == 0 || c == '{' || c == ';' || c == '}' {
			break
		}
		if c == '#' && p.peekAt(1) == '{' {
			if literal.Len() > 0 {
				parts = append(parts, ast.InterpolationPart{Literal: literal.String()})
				literal.Reset()
			}
			expr, err := p.parseInterpolationValue()
			if err != nil {
				return nil, err
			}
			parts = append(parts, ast.InterpolationPart{Value: expr})
			continue
		}
		literal.WriteByte(c)
		p.pos++
	}
	if s := strings.TrimSpace(literal.String()); s != "" || len(parts) > 0 {
		if s != literal.String() && len(parts) == 0 {
			literal.Reset()
			literal.WriteString(s)
		}
		parts = append(parts, ast.InterpolationPart{Literal: strings.TrimRight(literal.String(), " \t\r\n")})
	}
	var args ast.Expression = &ast.Null{}
	if len(parts) > 0 {
		args = &ast.Interpolation{String: ast.InterpolationString{Parts: parts}}
	}
	rule := &ast.AtRule{Name: name, Args: args}
	if p.peek() == '{' {
		body, err := p.parseBlock()
		if err != nil {
			return nil, err
		}
		rule.Body = body
		rule.HasBody = true
	} else if err := p.endStatement(); err != nil {
		return nil, err
	}
	return rule, nil
}

func (p *Parser) parseVariableDeclaration() (ast.Item, error) {
	p.pos++ // $
	name := p.ident()
	if name == "" {
		return nil, p.errorf("expected variable name")
	}
	p.skipSpace()
	if err := p.expect(':'); err != nil {
		return nil, err
	}
	p.skipSpaceAndComments()
	expr, err := p.parseCommaList()
	if err != nil {
		return nil, err
	}
	decl := &ast.VariableDeclaration{Name: name, Value: expr}
	for p.peek() == '!' {
		p.pos++
		switch flag := p.ident(); flag {
		case "default":
			decl.Default = true
		case "global":
			decl.Global = true
		default:
			return nil, p.errorf("unknown flag !%s", flag)
		}
		p.skipSpace()
	}
	if err := p.endStatement(); err != nil {
		return nil, err
	}
	return decl, nil
}

// parseRuleOrProperty disambiguates rules, properties and namespace
// rules by scanning ahead for the first `;` or `{` at depth zero. A
// colon with trailing whitespace before a block opens a property
// namespace; a colon inside a selector (a:hover) never has one.
func (p *Parser) parseRuleOrProperty() (ast.Item, error) {
	terminator, segment := p.scanStatement()
	if terminator == '{' {
		if name, ok := namespaceName(segment); ok {
			return p.parseNamespaceRule(name)
		}
		selectors, err := p.parseSelectors('{')
		if err != nil {
			return nil, err
		}
		body, err := p.parseBlock()
		if err != nil {
			return nil, err
		}
		return &ast.Rule{Selectors: selectors, Body: body}, nil
	}
	return p.parseProperty()
}

// scanStatement looks ahead for the byte that terminates the current
// statement: `;`, `{` or `}` at depth zero. Interpolation braces and
// parentheses do not count.
func (p *Parser) scanStatement() (byte, string) {
	depth := 0
	for i := p.pos; i < len(p.src); i++ {
		c := p.src[i]
		switch {
		case c == '(' || c == '[':
			depth++
		case c == ')' || c == ']':
			depth--
		case c == '#' && i+1 < len(p.src) && p.src[i+1] == '{':
			for i < len(p.src) && p.src[i] != '}' {
				i++
			}
		case c == '"' || c == '\'':
			quote := c
			for i++; i < len(p.src) && p.src[i] != quote; i++ {
				if p.src[i] == '\\' {
					i++
				}
			}
		case depth == 0 && (c == ';' || c == '{' || c == '}'):
			return c, string(p.src[p.pos:i])
		}
	}
	return 0, string(p.src[p.pos:])
}

// namespaceName reports whether a pre-block segment like `font: 12px`
// declares a property namespace: a bare identifier, a colon, and
// either nothing or whitespace-separated values after it.
func namespaceName(segment string) (string, bool) {
	colon := strings.IndexByte(segment, ':')
	if colon < 0 {
		return "", false
	}
	name := segment[:colon]
	for i := 0; i < len(name); i++ {
		if !isNameChar(name[i]) {
			return "", false
		}
	}
	if name == "" || !isNameStart(name[0]) {
		return "", false
	}
	rest := segment[colon+1:]
	if strings.TrimSpace(rest) == "" {
		return name, true
	}
	// `a:hover` is a selector; `font: 12px` is a namespace
	if len(rest) > 0 && !isSpace(rest[0]) {
		return "", false
	}
	return name, true
}

func (p *Parser) parseNamespaceRule(name string) (ast.Item, error) {
	p.pos += len(name)
	p.skipSpace()
	p.pos++ // :
	p.skipSpaceAndComments()
	var val ast.Expression = &ast.Null{}
	if p.peek() != '{' {
		var err error
		val, err = p.parseCommaList()
		if err != nil {
			return nil, err
		}
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return &ast.NamespaceRule{Name: name, Value: val, Body: body}, nil
}

func (p *Parser) parseProperty() (ast.Item, error) {
	name, err := p.parsePropertyName()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if err := p.expect(':'); err != nil {
		return nil, err
	}
	p.skipSpaceAndComments()
	expr, err := p.parseCommaList()
	if err != nil {
		return nil, err
	}
	prop := &ast.Property{Name: name, Value: expr}
	p.skipSpace()
	if p.peek() == '!' {
		p.pos++
		if p.ident() != "important" {
			return nil, p.errorf("unknown flag after !")
		}
		prop.Important = true
	}
	if err := p.endStatement(); err != nil {
		return nil, err
	}
	return prop, nil
}

// parsePropertyName reads a property name, resolving #{} interpolation
// at parse time is not possible, so interpolated names keep their raw
// #{...} text and are resolved by the compiler.
func (p *Parser) parsePropertyName() (string, error) {
	start := p.pos
	for {
		c := p.peek()
		if isNameChar(c) {
			p.pos++
			continue
		}
		if c == '#' && p.peekAt(1) == '{' {
			for !p.eof() && p.peek() != '}' {
				p.pos++
			}
			p.pos++
			continue
		}
		break
	}
	if p.pos == start {
		return "", p.errorf("expected property name")
	}
	return string(p.src[start:p.pos]), nil
}
