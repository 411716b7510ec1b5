package compiler

import (
	"fmt"

	"github.com/titpetric/sassgo/ast"
	"github.com/titpetric/sassgo/css"
	"github.com/titpetric/sassgo/importer"
	"github.com/titpetric/sassgo/parser"
	"github.com/titpetric/sassgo/scope"
	"github.com/titpetric/sassgo/value"
)

func compileBodyItems(files *importer.FileContext, s *scope.Scope, selectors css.Selectors, items []ast.Item) ([]css.Item, error) {
	result := make([]css.Item, 0, len(items))
	for _, item := range items {
		compiled, err := compileBodyItem(files, s, selectors, item)
		if err != nil {
			return nil, err
		}
		result = append(result, compiled...)
	}
	sortItems(result)
	return result, nil
}

func compileBodyItem(files *importer.FileContext, s *scope.Scope, selectors css.Selectors, item ast.Item) ([]css.Item, error) {
	switch t := item.(type) {
	case *ast.Import:
		name, err := Eval(s, t.Path)
		if err != nil {
			return nil, err
		}
		lit, ok := name.(value.Literal)
		if !ok {
			return nil, nil
		}
		sub, data, err := files.File(lit.Value)
		if err != nil {
			return nil, err
		}
		imported, err := parser.Parse(data)
		if err != nil {
			return nil, err
		}
		return compileBodyItems(sub, s, selectors, imported)

	case *ast.VariableDeclaration:
		return nil, defineVariable(s, t)

	case *ast.AtRule:
		args, err := Eval(s, t.Args)
		if err != nil {
			return nil, err
		}
		rule := &css.AtRule{Name: t.Name, Args: args, HasBody: t.HasBody}
		if t.HasBody {
			body, err := compileBodyItems(files, scope.Sub(s), selectors, t.Body)
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
			// a missing mixin in a body degrades to a comment
			args, _ := evalCallArgs(s, t.Args)
			text := fmt.Sprintf("Unknown mixin %s(%s)",
				t.Name, value.RenderCallArgs(args, false))
			return []css.Item{&css.Comment{Text: text}}, nil
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
		return compileBodyItems(files, argScope, selectors, mixin.Body)

	case *ast.Content:
		content, ok := s.GetMixin(contentMixin)
		if !ok {
			return []css.Item{&css.Comment{Text: "Mixin @content not found."}}, nil
		}
		return compileBodyItems(files, s, selectors, content.Body)

	case *ast.FunctionDeclaration:
		defineFunction(s, t)
		return nil, nil

	case *ast.Return:
		return nil, illegalContext("@return", "rule body")

	case *ast.If:
		cond, err := Eval(s, t.Cond)
		if err != nil {
			return nil, err
		}
		if value.IsTrue(cond) {
			return compileBodyItems(files, scope.Sub(s), selectors, t.Then)
		}
		return compileBodyItems(files, scope.Sub(s), selectors, t.Else)

	case *ast.Each:
		values, err := Eval(s, t.Values)
		if err != nil {
			return nil, err
		}
		var result []css.Item
		for _, v := range eachValues(values) {
			loopScope := scope.Sub(s)
			loopScope.Define(t.Name, v)
			compiled, err := compileBodyItems(files, loopScope, selectors, t.Body)
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
			compiled, err := compileBodyItems(files, loopScope, selectors, t.Body)
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
			compiled, err := compileBodyItems(files, loopScope, selectors, t.Body)
			if err != nil {
				return nil, err
			}
			result = append(result, compiled...)
		}

	case *ast.Rule:
		nested, err := resolveSelectors(s, t.Selectors, selectors)
		if err != nil {
			return nil, err
		}
		body, err := compileBodyItems(files, scope.Sub(s), nested, t.Body)
		if err != nil {
			return nil, err
		}
		if len(body) == 0 {
			return nil, nil
		}
		return []css.Item{&css.Rule{Selectors: nested, Body: body}}, nil

	case *ast.NamespaceRule:
		return compileNamespaceRule(files, s, selectors, t)

	case *ast.Property:
		v, err := Eval(s, t.Value)
		if err != nil {
			return nil, err
		}
		if value.IsNull(v) {
			return nil, nil
		}
		name, err := interpolateRaw(s, t.Name)
		if err != nil {
			return nil, err
		}
		return []css.Item{&css.Property{Name: name, Value: v, Important: t.Important}}, nil

	case *ast.Comment:
		return []css.Item{&css.Comment{Text: t.Text}}, nil

	case *ast.None:
		return nil, nil

	default:
		return nil, illegalContext("statement", "rule body")
	}
}

// compileNamespaceRule prefixes every property of the inner body with
// the namespace name, emitting the namespace's own value first when it
// has one.
func compileNamespaceRule(files *importer.FileContext, s *scope.Scope, selectors css.Selectors, item *ast.NamespaceRule) ([]css.Item, error) {
	var result []css.Item

	v, err := Eval(s, item.Value)
	if err != nil {
		return nil, err
	}
	if !value.IsNull(v) {
		result = append(result, &css.Property{Name: item.Name, Value: v})
	}

	body, err := compileBodyItems(files, s, selectors, item.Body)
	if err != nil {
		return nil, err
	}
	for _, inner := range body {
		if prop, ok := inner.(*css.Property); ok {
			result = append(result, &css.Property{
				Name:      item.Name + "-" + prop.Name,
				Value:     prop.Value,
				Important: prop.Important,
			})
			continue
		}
		result = append(result, inner)
	}
	return result, nil
}
