package value

import (
	"math/big"
	"testing"
)

func rgb(r, g, b int64) Color {
	return Color{
		R: big.NewRat(r, 1),
		G: big.NewRat(g, 1),
		B: big.NewRat(b, 1),
		A: big.NewRat(1, 1),
	}
}

func TestRenderColor(t *testing.T) {
	tests := []struct {
		name       string
		color      Color
		want       string
		compressed string
	}{
		{"shortenable hex", rgb(255, 0, 204), "#ff00cc", "#f0c"},
		{"plain hex", rgb(18, 52, 86), "#123456", "#123456"},
		{"named wins expanded", rgb(255, 0, 0), "red", "red"},
		{"name shorter than hex", rgb(0, 0, 255), "blue", "blue"},
		{"carried name", Color{R: big.NewRat(0, 1), G: big.NewRat(128, 1), B: big.NewRat(0, 1), A: big.NewRat(1, 1), Name: "green"}, "green", "green"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Render(tt.color, false); got != tt.want {
				t.Errorf("Render = %q, want %q", got, tt.want)
			}
			if got := Render(tt.color, true); got != tt.compressed {
				t.Errorf("Render compressed = %q, want %q", got, tt.compressed)
			}
		})
	}
}

func TestRenderTransparent(t *testing.T) {
	c := Rgba(big.NewRat(0, 1), big.NewRat(0, 1), big.NewRat(0, 1), big.NewRat(0, 1))
	if got := Render(c, true); got != "transparent" {
		t.Errorf("all-zero rgba = %q, want transparent", got)
	}
}

func TestRenderRgba(t *testing.T) {
	c := Rgba(big.NewRat(10, 1), big.NewRat(20, 1), big.NewRat(30, 1), big.NewRat(1, 2))
	if got := Render(c, false); got != "rgba(10, 20, 30, 0.5)" {
		t.Errorf("Render = %q", got)
	}
	if got := Render(c, true); got != "rgba(10,20,30,0.5)" {
		t.Errorf("Render compressed = %q", got)
	}
}

func TestRgbaCaps(t *testing.T) {
	c := Rgba(big.NewRat(300, 1), big.NewRat(-5, 1), big.NewRat(128, 1), big.NewRat(3, 1))
	if c.R.Cmp(big.NewRat(255, 1)) != 0 {
		t.Error("red should cap at 255")
	}
	if c.G.Sign() != 0 {
		t.Error("green should cap at 0")
	}
	if c.A.Cmp(big.NewRat(1, 1)) != 0 {
		t.Error("alpha should cap at 1")
	}
}

func TestRenderNumeric(t *testing.T) {
	tests := []struct {
		name       string
		value      Numeric
		want       string
		compressed string
	}{
		{"integer", num(42, 1, Px), "42px", "42px"},
		{"fraction rounds to five places", num(1, 3, UnitNone), "0.33333", ".33333"},
		{"percent", num(50, 1, Percent), "50%", "50%"},
		{"explicit sign", Numeric{Value: big.NewRat(2, 1), Unit: Em, WithSign: true}, "+2em", "+2em"},
		{"negative", num(-5, 2, Rem), "-2.5rem", "-2.5rem"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Render(tt.value, false); got != tt.want {
				t.Errorf("Render = %q, want %q", got, tt.want)
			}
			if got := Render(tt.value, true); got != tt.compressed {
				t.Errorf("Render compressed = %q, want %q", got, tt.compressed)
			}
		})
	}
}

func TestRenderList(t *testing.T) {
	list := List{
		Items:     []Value{num(1, 1, Px), Null{}, num(2, 1, Px)},
		Separator: CommaSeparator,
	}
	if got := Render(list, false); got != "1px, 2px" {
		t.Errorf("Render = %q, null items should be dropped", got)
	}
	if got := Render(list, true); got != "1px,2px" {
		t.Errorf("Render compressed = %q", got)
	}

	spaced := List{Items: []Value{Literal{Value: "solid"}, num(1, 1, Px)}}
	if got := Render(spaced, true); got != "solid 1px" {
		t.Errorf("Render = %q", got)
	}
}

func TestRenderDiv(t *testing.T) {
	div := Div{Left: num(10, 1, Px), Right: num(6, 5, UnitNone)}
	if got := Render(div, false); got != "10px/1.2" {
		t.Errorf("Render = %q", got)
	}
	spaced := Div{Left: num(10, 1, Px), Right: num(2, 1, UnitNone), SpaceBefore: true, SpaceAfter: true}
	if got := Render(spaced, false); got != "10px / 2" {
		t.Errorf("Render = %q", got)
	}
}

func TestRenderLiteralEscaping(t *testing.T) {
	lit := Literal{Value: `a"b#c\d`, Quotes: DoubleQuotes}
	if got := Render(lit, false); got != `"a\"b\#c\\d"` {
		t.Errorf("Render = %q", got)
	}
}

func TestColorByName(t *testing.T) {
	c, ok := ColorByName("rebeccapurple")
	if !ok {
		t.Fatal("rebeccapurple should resolve")
	}
	if c.Name != "rebeccapurple" {
		t.Errorf("name should be carried, got %q", c.Name)
	}
	if _, ok := ColorByName("notacolor"); ok {
		t.Error("notacolor should not resolve")
	}
}

func TestNameForRgbPrefersShortest(t *testing.T) {
	// cyan and aqua share a value; either is fine but the choice
	// must be deterministic and four letters long
	name, ok := NameForRgb(0, 255, 255)
	if !ok || len(name) != 4 {
		t.Errorf("NameForRgb(0,255,255) = %q, %v", name, ok)
	}
}
