package ast

// Selectors is a comma-separated selector list
type Selectors []Selector

// Selector is an ordered sequence of selector parts
type Selector []SelectorPart

// SelectorPart is one element of a selector
type SelectorPart interface {
	selectorPart()
	// IsOperator reports whether the part is a combinator
	IsOperator() bool
}

// SimplePart is a plain selector component like `div`, `.cls` or `#id`,
// possibly containing #{...} interpolation.
type SimplePart struct {
	Name InterpolationString
}

func (s *SimplePart) selectorPart()    {}
func (s *SimplePart) IsOperator() bool { return false }

// DescendantPart is the whitespace combinator
type DescendantPart struct{}

func (d *DescendantPart) selectorPart()    {}
func (d *DescendantPart) IsOperator() bool { return true }

// RelOpPart is one of the `>`, `+` or `~` combinators
type RelOpPart struct {
	Op byte
}

func (r *RelOpPart) selectorPart()    {}
func (r *RelOpPart) IsOperator() bool { return true }

// AttributePart is an attribute selector like [href^="https:"]
type AttributePart struct {
	Name InterpolationString
	Op   string
	Val  string
}

func (a *AttributePart) selectorPart()    {}
func (a *AttributePart) IsOperator() bool { return false }

// PseudoElementPart is a css3 pseudo-element like ::before
type PseudoElementPart struct {
	Name InterpolationString
}

func (p *PseudoElementPart) selectorPart()    {}
func (p *PseudoElementPart) IsOperator() bool { return false }

// PseudoPart is a pseudo-class (or css2 pseudo-element) with an
// optional selector argument, like :hover or :not(.foo).
type PseudoPart struct {
	Name   InterpolationString
	Arg    Selectors
	HasArg bool
}

func (p *PseudoPart) selectorPart()    {}
func (p *PseudoPart) IsOperator() bool { return false }

// BackRefPart is the parent back-reference `&`
type BackRefPart struct{}

func (b *BackRefPart) selectorPart()    {}
func (b *BackRefPart) IsOperator() bool { return false }
