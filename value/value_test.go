package value

import (
	"math/big"
	"testing"
)

func num(n, d int64, unit Unit) Numeric {
	return Numeric{Value: big.NewRat(n, d), Unit: unit}
}

func TestAdd(t *testing.T) {
	tests := []struct {
		name    string
		left    Value
		right   Value
		want    string
		wantErr bool
	}{
		{"same unit", num(10, 1, Px), num(5, 1, Px), "15px", false},
		{"unitless adopts left", num(10, 1, Px), num(5, 1, UnitNone), "15px", false},
		{"unitless adopts right", num(10, 1, UnitNone), num(5, 1, Em), "15em", false},
		{"compatible units convert", num(10, 1, Cm), num(10, 1, Mm), "11cm", false},
		{"incompatible units", num(10, 1, Px), num(5, 1, S), "", true},
		{"string concat keeps left quotes", Literal{Value: "foo", Quotes: DoubleQuotes}, Literal{Value: "bar"}, `"foobar"`, false},
		{"number and string concat", num(1, 1, UnitNone), Literal{Value: "px"}, "1px", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Add(tt.left, tt.right)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Add err = %v, want error %v", err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if rendered := Render(got, false); rendered != tt.want {
				t.Errorf("Add = %q, want %q", rendered, tt.want)
			}
		})
	}
}

func TestDivide(t *testing.T) {
	tests := []struct {
		name  string
		left  Value
		right Value
		want  string
	}{
		{"unit by scalar", num(10, 1, Px), num(2, 1, UnitNone), "5px"},
		{"same units cancel", num(10, 1, Px), num(5, 1, Px), "2"},
		{"compatible units cancel", num(1, 1, In), num(4, 1, Q), "25.4"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Divide(tt.left, tt.right)
			if err != nil {
				t.Fatalf("Divide: %v", err)
			}
			if rendered := Render(got, false); rendered != tt.want {
				t.Errorf("Divide = %q, want %q", rendered, tt.want)
			}
		})
	}
}

func TestDivideByZero(t *testing.T) {
	if _, err := Divide(num(1, 1, UnitNone), num(0, 1, UnitNone)); err == nil {
		t.Fatal("expected an error dividing by zero")
	}
}

func TestCompare(t *testing.T) {
	cmp, err := Compare(num(10, 1, Mm), num(1, 1, Cm))
	if err != nil {
		t.Fatalf("Compare: %v", err)
	}
	if cmp != 0 {
		t.Errorf("10mm should equal 1cm, got %d", cmp)
	}

	if _, err := Compare(num(1, 1, Px), num(1, 1, Deg)); err == nil {
		t.Error("expected an error comparing px to deg")
	}
}

func TestEqual(t *testing.T) {
	if !Equal(num(1, 1, Cm), num(10, 1, Mm)) {
		t.Error("1cm should equal 10mm")
	}
	if Equal(num(1, 1, Px), num(1, 1, Em)) {
		t.Error("1px should not equal 1em")
	}
	// quote style does not matter for equality
	if !Equal(Literal{Value: "x", Quotes: DoubleQuotes}, Literal{Value: "x"}) {
		t.Error("quoted and unquoted strings with equal content should be equal")
	}
}

func TestTruthiness(t *testing.T) {
	if IsTrue(Null{}) || IsTrue(Bool(false)) {
		t.Error("null and false are falsy")
	}
	if !IsTrue(Bool(true)) || !IsTrue(num(0, 1, UnitNone)) || !IsTrue(Literal{}) {
		t.Error("everything else is truthy")
	}
}

func TestIsNull(t *testing.T) {
	if !IsNull(List{Items: []Value{Null{}, Null{}}}) {
		t.Error("a list of nulls is null")
	}
	if IsNull(List{Items: []Value{Null{}, num(1, 1, UnitNone)}}) {
		t.Error("a list with a non-null item is not null")
	}
}
