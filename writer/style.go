// Package writer renders the css intermediate representation to bytes
// in one of two output styles.
package writer

import "strings"

// Style selects the target format: compressed removes all optional
// whitespace, expanded indents by two spaces per nesting level.
type Style struct {
	compressed bool
	level      int
}

// Compressed returns the space-free output style
func Compressed() Style {
	return Style{compressed: true}
}

// Expanded returns the human-readable style at the given indentation
// level.
func Expanded(level int) Style {
	return Style{level: level}
}

// IsCompressed reports whether the style is the compressed one
func (s Style) IsCompressed() bool {
	return s.compressed
}

// Indent returns the style one nesting level deeper
func (s Style) Indent() Style {
	if s.compressed {
		return s
	}
	return Style{level: s.level + 1}
}

// Indentation returns the current leading whitespace
func (s Style) Indentation() string {
	if s.compressed {
		return ""
	}
	return strings.Repeat("  ", s.level)
}

// ItemSeparator separates top-level and body items
func (s Style) ItemSeparator() string {
	if s.compressed {
		return ""
	}
	return "\n"
}

// PropertySeparator follows the colon of a declaration
func (s Style) PropertySeparator() string {
	if s.compressed {
		return ""
	}
	return " "
}

// RuleOpeningSeparator follows an opening brace
func (s Style) RuleOpeningSeparator() string {
	if s.compressed {
		return ""
	}
	return "\n"
}

// SelectorSeparator surrounds combinators and follows selector commas
func (s Style) SelectorSeparator() string {
	if s.compressed {
		return ""
	}
	return " "
}

// ImportantSeparator precedes !important
func (s Style) ImportantSeparator() string {
	if s.compressed {
		return ""
	}
	return " "
}

// IncludeTrailingSemicolon reports whether the last declaration of a
// block keeps its semicolon.
func (s Style) IncludeTrailingSemicolon() bool {
	return !s.compressed
}

// IncludeComments reports whether comments are kept in the output
func (s Style) IncludeComments() bool {
	return !s.compressed
}

// ByteOrderMark is emitted when any output item is non-ascii
func (s Style) ByteOrderMark() string {
	if s.compressed {
		return "\ufeff"
	}
	return "@charset \"UTF-8\";\n"
}

// EndOfFileSeparator terminates the output
func (s Style) EndOfFileSeparator() string {
	if s.compressed {
		return "\n"
	}
	return ""
}
