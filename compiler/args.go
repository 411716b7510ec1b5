package compiler

import (
	"github.com/titpetric/sassgo/ast"
	"github.com/titpetric/sassgo/scope"
	"github.com/titpetric/sassgo/value"
)

// bindFormalArgs builds the argument scope of a mixin or function
// call: a fresh child of the caller's scope with every formal
// parameter bound. Defaults are evaluated against that child scope, so
// a later default may reference an earlier parameter.
func bindFormalArgs(formal ast.FormalArgs, caller *scope.Scope, args value.CallArgs) (*scope.Scope, error) {
	argScope := scope.Sub(caller)
	bound := make(map[string]bool, len(formal.Args))

	declared := func(name string) bool {
		for _, f := range formal.Args {
			if f.Name == name {
				return true
			}
		}
		return false
	}

	positional := 0
	for _, arg := range args.Args {
		if arg.Name == "" {
			continue
		}
		if !declared(arg.Name) {
			return nil, value.BadArguments("unknown argument $%s", arg.Name)
		}
		argScope.Define(arg.Name, arg.Value)
		bound[arg.Name] = true
	}

	for _, f := range formal.Args {
		if bound[f.Name] {
			continue
		}
		arg, ok := nextPositional(args, &positional)
		if ok {
			argScope.Define(f.Name, arg)
			bound[f.Name] = true
			continue
		}
		if f.Default == nil {
			return nil, value.BadArguments("missing argument $%s", f.Name)
		}
		def, err := eval(argScope, f.Default, true)
		if err != nil {
			return nil, err
		}
		argScope.Define(f.Name, def)
		bound[f.Name] = true
	}

	if arg, ok := nextPositional(args, &positional); ok {
		return nil, value.BadArguments("too many arguments, starting at %s",
			value.Render(arg, false))
	}

	return argScope, nil
}

func nextPositional(args value.CallArgs, index *int) (value.Value, bool) {
	for *index < len(args.Args) {
		arg := args.Args[*index]
		*index++
		if arg.Name == "" {
			return arg.Value, true
		}
	}
	return nil, false
}
