package css

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func simple(names ...string) Selector {
	var sel Selector
	for i, name := range names {
		if i > 0 {
			sel = append(sel, &Descendant{})
		}
		sel = append(sel, &Simple{Name: name})
	}
	return sel
}

func TestRootJoin(t *testing.T) {
	s := Selector{&Simple{Name: "foo"}}
	got := Selector{}.Join(s)
	if diff := cmp.Diff(s, got); diff != "" {
		t.Error(diff)
	}
}

func TestJoinDescendant(t *testing.T) {
	got := simple("a").Join(simple("b"))
	if diff := cmp.Diff(simple("a", "b"), got); diff != "" {
		t.Error(diff)
	}
}

func TestJoinCombinatorChild(t *testing.T) {
	child := Selector{&RelOp{Op: '>'}, &Simple{Name: "b"}}
	got := simple("a").Join(child)
	want := Selector{&Simple{Name: "a"}, &RelOp{Op: '>'}, &Simple{Name: "b"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Error(diff)
	}
}

func TestJoinBackRef(t *testing.T) {
	child := Selector{&BackRef{}, &Pseudo{Name: "hover"}}
	got := simple("a").Join(child)
	want := Selector{&Simple{Name: "a"}, &Pseudo{Name: "hover"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Error(diff)
	}
}

func TestJoinBackRefMidSelector(t *testing.T) {
	child := Selector{&Simple{Name: ".menu"}, &Descendant{}, &BackRef{}}
	got := simple(".btn").Join(child)
	want := Selector{&Simple{Name: ".menu"}, &Descendant{}, &Simple{Name: ".btn"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Error(diff)
	}
}

func TestInsideCartesian(t *testing.T) {
	parent := Selectors{simple("a"), simple("b")}
	child := Selectors{simple("c"), simple("d")}

	got := child.Inside(parent)
	want := Selectors{
		simple("a", "c"), simple("a", "d"),
		simple("b", "c"), simple("b", "d"),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Error(diff)
	}
}

func TestInsideRootIsNeutral(t *testing.T) {
	child := Selectors{simple("c")}
	got := child.Inside(Root())
	if diff := cmp.Diff(child, got); diff != "" {
		t.Error(diff)
	}
}

func TestInsideNilParent(t *testing.T) {
	child := Selectors{simple("c")}
	if diff := cmp.Diff(child, child.Inside(nil)); diff != "" {
		t.Error(diff)
	}
}
