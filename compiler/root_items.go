package compiler

import (
	"github.com/titpetric/sassgo/ast"
	"github.com/titpetric/sassgo/css"
	"github.com/titpetric/sassgo/importer"
	"github.com/titpetric/sassgo/parser"
	"github.com/titpetric/sassgo/scope"
	"github.com/titpetric/sassgo/value"
)

func compileRootItems(files *importer.FileContext, s *scope.Scope, items []ast.Item) ([]css.Item, error) {
	result := make([]css.Item, 0, len(items))
	for _, item := range items {
		compiled, err := compileRootItem(files, s, item)
		if err != nil {
			return nil, err
		}
		result = append(result, compiled...)
	}
	sortItems(result)
	return result, nil
}

func compileRootItem(files *importer.FileContext, s *scope.Scope, item ast.Item) ([]css.Item, error) {
	switch t := item.(type) {
	case *ast.Import:
		return compileRootImport(files, s, t)

	case *ast.VariableDeclaration:
		return nil, defineVariable(s, t)

	case *ast.AtRule:
		args, err := Eval(s, t.Args)
		if err != nil {
			return nil, err
		}
		rule := &css.AtRule{Name: t.Name, Args: args, HasBody: t.HasBody}
		if t.HasBody {
			body, err := compileBodyItems(files, scope.Sub(s), css.Root(), t.Body)
			if err != nil {
				return nil, err
			}
			rule.Body = body
		}
		return []css.Item{rule}, nil

	case *ast.MixinDeclaration:
		s.DefineMixin(t.Name, t.Args, t.Body)
		return nil, nil

	case *ast.MixinCall:
		mixin, ok := s.GetMixin(t.Name)
		if !ok {
			return nil, &UndefinedMixinError{Name: t.Name}
		}
		args, err := evalCallArgs(s, t.Args)
		if err != nil {
			return nil, err
		}
		argScope, err := bindFormalArgs(mixin.Args, s, args)
		if err != nil {
			return nil, err
		}
		argScope.DefineMixin(contentMixin, ast.FormalArgs{}, t.Body)
		return compileRootItems(files, argScope, mixin.Body)

	case *ast.Content:
		return nil, illegalContext("@content", "global")

	case *ast.FunctionDeclaration:
		defineFunction(s, t)
		return nil, nil

	case *ast.Return:
		return nil, illegalContext("@return", "global")

	case *ast.If:
		cond, err := Eval(s, t.Cond)
		if err != nil {
			return nil, err
		}
		if value.IsTrue(cond) {
			return compileRootItems(files, s, t.Then)
		}
		return compileRootItems(files, s, t.Else)

	case *ast.Each:
		values, err := Eval(s, t.Values)
		if err != nil {
			return nil, err
		}
		var result []css.Item
		for _, v := range eachValues(values) {
			s.Define(t.Name, v)
			compiled, err := compileRootItems(files, s, t.Body)
			if err != nil {
				return nil, err
			}
			result = append(result, compiled...)
		}
		return result, nil

	case *ast.For:
		from, to, err := forRange(s, t)
		if err != nil {
			return nil, err
		}
		var result []css.Item
		for i := from; i < to; i++ {
			loopScope := scope.Sub(s)
			loopScope.Define(t.Name, value.Scalar(i))
			compiled, err := compileRootItems(files, loopScope, t.Body)
			if err != nil {
				return nil, err
			}
			result = append(result, compiled...)
		}
		return result, nil

	case *ast.While:
		loopScope := scope.Sub(s)
		var result []css.Item
		for {
			cond, err := Eval(loopScope, t.Cond)
			if err != nil {
				return nil, err
			}
			if !value.IsTrue(cond) {
				return result, nil
			}
			compiled, err := compileRootItems(files, loopScope, t.Body)
			if err != nil {
				return nil, err
			}
			result = append(result, compiled...)
		}

	case *ast.Rule:
		selectors, err := resolveSelectors(s, t.Selectors, css.Root())
		if err != nil {
			return nil, err
		}
		body, err := compileBodyItems(files, scope.Sub(s), selectors, t.Body)
		if err != nil {
			return nil, err
		}
		if len(body) == 0 {
			return nil, nil
		}
		return []css.Item{&css.Rule{Selectors: selectors, Body: body}}, nil

	case *ast.NamespaceRule:
		return nil, illegalContext("namespaced property", "global")

	case *ast.Property:
		return nil, illegalContext("property", "global")

	case *ast.Comment:
		return []css.Item{&css.Comment{Text: t.Text}}, nil

	case *ast.None:
		return nil, nil

	default:
		return nil, illegalContext("statement", "global")
	}
}

// compileRootImport splices a resolvable literal import inline and
// emits an @import item otherwise.
func compileRootImport(files *importer.FileContext, s *scope.Scope, item *ast.Import) ([]css.Item, error) {
	name, err := Eval(s, item.Path)
	if err != nil {
		return nil, err
	}
	lit, ok := name.(value.Literal)
	if !ok {
		return []css.Item{&css.Import{Value: name}}, nil
	}
	if sub, data, found := files.FindFile(lit.Value); found {
		imported, err := parser.Parse(data)
		if err != nil {
			return nil, err
		}
		return compileRootItems(sub, s, imported)
	}
	url := value.Call{
		Name: "url",
		Args: value.NewCallArgs(value.Literal{Value: lit.Value, Quotes: value.NoQuotes}),
	}
	return []css.Item{&css.Import{Value: url}}, nil
}
