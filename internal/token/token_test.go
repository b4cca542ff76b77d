package token

import (
	"math"
	"testing"
)

func TestLookupTerm(t *testing.T) {
	tests := []struct {
		lexeme   string
		expected TokenType
	}{
		{"def", DEF},
		{"type", TYPE},
		{"then", THEN},
		{"else", ELSE},
		{"define", TERM},
		{"thenelse", TERM},
		{"push", TERM},
		{"+", TERM},
	}

	for _, tt := range tests {
		if got := LookupTerm(tt.lexeme); got != tt.expected {
			t.Errorf("LookupTerm(%q) = %s, want %s", tt.lexeme, got, tt.expected)
		}
	}
}

func TestLiteralEqual(t *testing.T) {
	tests := []struct {
		name     string
		a, b     *Literal
		expected bool
	}{
		{"int_eq", IntLiteral(1), IntLiteral(1), true},
		{"int_neq", IntLiteral(1), IntLiteral(2), false},
		{"int_vs_float", IntLiteral(1), FloatLiteral(1), false},
		{"float_eq", FloatLiteral(3.14), FloatLiteral(3.14), true},
		{"nan_eq_nan", FloatLiteral(math.NaN()), FloatLiteral(math.NaN()), true},
		{"neg_zero", FloatLiteral(0.0), FloatLiteral(math.Copysign(0, -1)), false},
		{"char_eq", CharLiteral('a'), CharLiteral('a'), true},
		{"string_eq", StringLiteral("foo"), StringLiteral("foo"), true},
		{"string_neq", StringLiteral("foo"), StringLiteral("bar"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Equal(*tt.b); got != tt.expected {
				t.Errorf("Equal(%s, %s) = %t, want %t", tt.a, tt.b, got, tt.expected)
			}
		})
	}
}

func TestLiteralHashNaN(t *testing.T) {
	// All NaN bit patterns must land in a single hash slot.
	a := FloatLiteral(math.NaN())
	b := FloatLiteral(math.Float64frombits(math.Float64bits(math.NaN()) | 1))
	if a.Hash() != b.Hash() {
		t.Errorf("NaN literals hash differently: %d vs %d", a.Hash(), b.Hash())
	}
	if !a.Equal(*b) {
		t.Error("NaN literals should compare equal")
	}
}

func TestLiteralString(t *testing.T) {
	tests := []struct {
		lit      *Literal
		expected string
	}{
		{IntLiteral(42), "42"},
		{IntLiteral(-1), "-1"},
		{FloatLiteral(3.14), "3.14"},
		{CharLiteral('x'), "'x'"},
		{StringLiteral("foo"), `"foo"`},
	}

	for _, tt := range tests {
		if got := tt.lit.String(); got != tt.expected {
			t.Errorf("String() = %q, want %q", got, tt.expected)
		}
	}
}
