package scope

import (
	"testing"

	"github.com/titpetric/sassgo/ast"
	"github.com/titpetric/sassgo/value"
)

func TestGetWalksUp(t *testing.T) {
	global := NewGlobal()
	global.Define("a", value.Bool(true))

	child := Sub(Sub(global))
	if !value.IsTrue(child.Get("a")) {
		t.Error("lookups should walk up to the global scope")
	}
	if _, ok := child.Get("missing").(value.Null); !ok {
		t.Error("a missing variable should degrade to null")
	}
}

func TestDefineShadowsParent(t *testing.T) {
	global := NewGlobal()
	global.Define("x", value.Literal{Value: "outer"})

	child := Sub(global)
	child.Define("x", value.Literal{Value: "inner"})

	if got := child.Get("x").(value.Literal).Value; got != "inner" {
		t.Errorf("child lookup = %q, want inner", got)
	}
	if got := global.Get("x").(value.Literal).Value; got != "outer" {
		t.Errorf("child definitions must not leak to the parent, got %q", got)
	}
}

func TestDefineGlobal(t *testing.T) {
	global := NewGlobal()
	child := Sub(Sub(global))

	child.DefineGlobal("g", value.Bool(true))
	if !value.IsTrue(global.Get("g")) {
		t.Error("DefineGlobal should bind in the root scope")
	}
}

func TestDefineDefault(t *testing.T) {
	global := NewGlobal()
	global.Define("bound", value.Literal{Value: "kept"})
	global.Define("nullish", value.Null{})

	global.DefineDefault("bound", value.Literal{Value: "ignored"}, false)
	global.DefineDefault("nullish", value.Literal{Value: "set"}, false)
	global.DefineDefault("fresh", value.Literal{Value: "set"}, false)

	if got := global.Get("bound").(value.Literal).Value; got != "kept" {
		t.Errorf("default must not override a bound name, got %q", got)
	}
	if got := global.Get("nullish").(value.Literal).Value; got != "set" {
		t.Errorf("null counts as unbound for !default, got %q", got)
	}
	if got := global.Get("fresh").(value.Literal).Value; got != "set" {
		t.Errorf("default should bind fresh names, got %q", got)
	}
}

func TestDefineDefaultGlobalFlag(t *testing.T) {
	global := NewGlobal()
	child := Sub(global)

	child.DefineDefault("v", value.Bool(true), true)
	if !value.IsTrue(global.Get("v")) {
		t.Error("the global flag targets the root scope")
	}
}

func TestSeparateNamespaces(t *testing.T) {
	s := NewGlobal()
	s.Define("name", value.Bool(true))
	s.DefineMixin("name", ast.FormalArgs{}, nil)
	s.DefineFunction("name", Function{})

	if !value.IsTrue(s.Get("name")) {
		t.Error("variable lost")
	}
	if _, ok := s.GetMixin("name"); !ok {
		t.Error("mixin lost")
	}
	if _, ok := s.GetFunction("name"); !ok {
		t.Error("function lost")
	}
}

func TestMixinLookupWalksUp(t *testing.T) {
	global := NewGlobal()
	global.DefineMixin("m", ast.FormalArgs{}, nil)

	if _, ok := Sub(global).GetMixin("m"); !ok {
		t.Error("mixin lookup should walk up the chain")
	}
	if _, ok := Sub(global).GetMixin("missing"); ok {
		t.Error("unknown mixin should not resolve")
	}
}
