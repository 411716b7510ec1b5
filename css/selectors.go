package css

// Selectors is a comma-separated selector list with all interpolation
// already materialised.
type Selectors []Selector

// Root returns the selector list of the top level: a single empty
// selector. Joining anything with it returns the child unchanged.
func Root() Selectors {
	return Selectors{Selector{}}
}

// Inside resolves nesting: every child selector is joined with every
// parent selector, in "for each parent, for each child" order. A nil
// parent returns the receiver unchanged.
func (s Selectors) Inside(parent Selectors) Selectors {
	if parent == nil {
		return s
	}
	result := make(Selectors, 0, len(parent)*len(s))
	for _, p := range parent {
		for _, c := range s {
			result = append(result, p.Join(c))
		}
	}
	return result
}

// IsRoot reports whether this is the root selector list
func (s Selectors) IsRoot() bool {
	return len(s) == 1 && len(s[0]) == 0
}

// IsASCII reports whether all selectors render as plain ascii
func (s Selectors) IsASCII() bool {
	for _, sel := range s {
		if !sel.IsASCII() {
			return false
		}
	}
	return true
}

// Selector is an ordered sequence of parts
type Selector []SelectorPart

// Join combines a parent selector with a child. When the child holds a
// back-reference the parent replaces it in place; otherwise the parent
// is prepended, with a descendant combinator unless the child already
// starts with one.
func (s Selector) Join(other Selector) Selector {
	for i, part := range other {
		if _, ok := part.(*BackRef); ok {
			result := make(Selector, 0, len(other)-1+len(s))
			result = append(result, other[:i]...)
			result = append(result, s...)
			result = append(result, other[i+1:]...)
			return result
		}
	}
	result := make(Selector, 0, len(s)+1+len(other))
	result = append(result, s...)
	if len(s) > 0 && !(len(other) > 0 && other[0].IsOperator()) {
		result = append(result, &Descendant{})
	}
	result = append(result, other...)
	return result
}

// IsASCII reports whether the selector renders as plain ascii
func (s Selector) IsASCII() bool {
	for _, p := range s {
		if !p.IsASCII() {
			return false
		}
	}
	return true
}

// SelectorPart is one element of a materialised selector
type SelectorPart interface {
	selectorPart()
	IsOperator() bool
	IsASCII() bool
}

// Simple is a plain component like `div`, `.cls` or `#id`
type Simple struct {
	Name string
}

func (p *Simple) selectorPart()    {}
func (p *Simple) IsOperator() bool { return false }
func (p *Simple) IsASCII() bool    { return asciiString(p.Name) }

// Descendant is the whitespace combinator
type Descendant struct{}

func (p *Descendant) selectorPart()    {}
func (p *Descendant) IsOperator() bool { return true }
func (p *Descendant) IsASCII() bool    { return true }

// RelOp is one of the `>`, `+` or `~` combinators
type RelOp struct {
	Op byte
}

func (p *RelOp) selectorPart()    {}
func (p *RelOp) IsOperator() bool { return true }
func (p *RelOp) IsASCII() bool    { return true }

// Attribute is an attribute selector
type Attribute struct {
	Name string
	Op   string
	Val  string
}

func (p *Attribute) selectorPart()    {}
func (p *Attribute) IsOperator() bool { return false }
func (p *Attribute) IsASCII() bool {
	return asciiString(p.Name) && asciiString(p.Op) && asciiString(p.Val)
}

// PseudoElement is a css3 pseudo-element like ::before
type PseudoElement struct {
	Name string
}

func (p *PseudoElement) selectorPart()    {}
func (p *PseudoElement) IsOperator() bool { return false }
func (p *PseudoElement) IsASCII() bool    { return asciiString(p.Name) }

// Pseudo is a pseudo-class (or css2 pseudo-element) with an optional
// selector argument.
type Pseudo struct {
	Name   string
	Arg    Selectors
	HasArg bool
}

func (p *Pseudo) selectorPart()    {}
func (p *Pseudo) IsOperator() bool { return false }
func (p *Pseudo) IsASCII() bool {
	if !asciiString(p.Name) {
		return false
	}
	return !p.HasArg || p.Arg.IsASCII()
}

// BackRef is the parent back-reference `&`
type BackRef struct{}

func (p *BackRef) selectorPart()    {}
func (p *BackRef) IsOperator() bool { return false }
func (p *BackRef) IsASCII() bool    { return true }
