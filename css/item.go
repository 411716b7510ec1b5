// Package css holds the intermediate representation produced by the
// compiler and consumed by the writer: rules, at-rules, properties and
// comments with fully resolved selectors and values.
package css

import "github.com/titpetric/sassgo/value"

// Item is a single css output item
type Item interface {
	cssItem()
	// Priority orders items within a block: imports first, then
	// everything else in source order.
	Priority() int
	// IsASCII reports whether the rendered item is plain ascii
	IsASCII() bool
}

// Import is an @import line
type Import struct {
	Value value.Value
}

func (i *Import) cssItem()      {}
func (i *Import) Priority() int { return 0 }
func (i *Import) IsASCII() bool { return value.IsASCII(i.Value) }

// AtRule is an @-rule with optional body
type AtRule struct {
	Name    string
	Args    value.Value
	Body    []Item
	HasBody bool
}

func (a *AtRule) cssItem()      {}
func (a *AtRule) Priority() int { return 1 }

func (a *AtRule) IsASCII() bool {
	if !asciiString(a.Name) || !value.IsASCII(a.Args) {
		return false
	}
	for _, item := range a.Body {
		if !item.IsASCII() {
			return false
		}
	}
	return true
}

// Rule is a selector list with a body of items
type Rule struct {
	Selectors Selectors
	Body      []Item
}

func (r *Rule) cssItem()      {}
func (r *Rule) Priority() int { return 1 }

func (r *Rule) IsASCII() bool {
	if !r.Selectors.IsASCII() {
		return false
	}
	for _, item := range r.Body {
		if !item.IsASCII() {
			return false
		}
	}
	return true
}

// Property is a name: value declaration
type Property struct {
	Name      string
	Value     value.Value
	Important bool
}

func (p *Property) cssItem()      {}
func (p *Property) Priority() int { return 1 }
func (p *Property) IsASCII() bool {
	return asciiString(p.Name) && value.IsASCII(p.Value)
}

// Comment is a /* */ comment
type Comment struct {
	Text string
}

func (c *Comment) cssItem()      {}
func (c *Comment) Priority() int { return 1 }
func (c *Comment) IsASCII() bool { return asciiString(c.Text) }

func asciiString(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			return false
		}
	}
	return true
}
