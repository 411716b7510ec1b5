package ast

// FormalArg is a single declared mixin or function parameter. Default
// is nil for required parameters.
type FormalArg struct {
	Name    string
	Default Expression
}

// FormalArgs is the declared parameter list of a mixin or function
type FormalArgs struct {
	Args []FormalArg
}

// NewFormalArgs builds a parameter list from name/default pairs
func NewFormalArgs(args ...FormalArg) FormalArgs {
	return FormalArgs{Args: args}
}

// CallArg is a single actual argument. Name is empty for positional
// arguments.
type CallArg struct {
	Name  string
	Value Expression
}

// CallArgs is the actual argument list of a mixin or function call
type CallArgs struct {
	Args []CallArg
}

// NewCallArgs builds an argument list
func NewCallArgs(args ...CallArg) CallArgs {
	return CallArgs{Args: args}
}

// Positional appends an unnamed argument
func (c *CallArgs) Positional(value Expression) {
	c.Args = append(c.Args, CallArg{Value: value})
}

// Named appends a $name: value argument
func (c *CallArgs) Named(name string, value Expression) {
	c.Args = append(c.Args, CallArg{Name: name, Value: value})
}
