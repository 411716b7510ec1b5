package value

// Operator enumerates binary and unary operators in sass expressions
type Operator int

const (
	OpPlus Operator = iota
	OpMinus
	OpMul
	OpDiv
	OpMod
	OpEq
	OpNeq
	OpLt
	OpLte
	OpGt
	OpGte
)

func (o Operator) String() string {
	switch o {
	case OpPlus:
		return "+"
	case OpMinus:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	case OpMod:
		return "%"
	case OpEq:
		return "=="
	case OpNeq:
		return "!="
	case OpLt:
		return "<"
	case OpLte:
		return "<="
	case OpGt:
		return ">"
	case OpGte:
		return ">="
	}
	return "?"
}

// Quotes is the quote style of a string literal
type Quotes int

const (
	// NoQuotes marks an unquoted string
	NoQuotes Quotes = iota
	// DoubleQuotes marks a "..." string
	DoubleQuotes
	// SingleQuotes marks a '...' string
	SingleQuotes
)

// ListSeparator is the separator of a list value
type ListSeparator int

const (
	// SpaceSeparator joins list items with spaces
	SpaceSeparator ListSeparator = iota
	// CommaSeparator joins list items with commas
	CommaSeparator
)
