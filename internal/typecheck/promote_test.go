package typecheck

import (
	"testing"

	"github.com/timb-machine-mirrors/gnu-poke/internal/ptype"
)

func TestCombineIntegralCommutative(t *testing.T) {
	a := ptype.MustIntegral(16, false)
	b := ptype.MustIntegral(8, true)
	ab := combineIntegral(a, b)
	ba := combineIntegral(b, a)
	if !ptype.Equal(ab, ba) {
		t.Errorf("combineIntegral(a,b) = %s, combineIntegral(b,a) = %s, want equal", ab, ba)
	}
	if ab.Size != 16 {
		t.Errorf("got width %d, want the wider operand's 16", ab.Size)
	}
	if ab.Signed {
		t.Error("unsignedness should be contagious: one unsigned operand makes the result unsigned")
	}
}

func TestCombineIntegralBothSigned(t *testing.T) {
	r := combineIntegral(ptype.MustIntegral(8, true), ptype.MustIntegral(32, true))
	if !r.Signed {
		t.Error("two signed operands should produce a signed result")
	}
}

func TestPromotionCompatibleExceptions(t *testing.T) {
	tests := []struct {
		name          string
		formal, actual ptype.Type
		want          bool
	}{
		{"any accepts integral", ptype.Any{}, ptype.MustIntegral(8, true), true},
		{"any accepts string", ptype.Any{}, ptype.String{}, true},
		{"integral formal accepts any integral width", ptype.MustIntegral(32, true), ptype.MustIntegral(8, false), true},
		{"offset formal accepts any offset", ptype.Offset{Base: ptype.MustIntegral(32, false), Unit: 8}, ptype.Offset{Base: ptype.MustIntegral(8, false), Unit: 1}, true},
		{"string formal requires exact kind match", ptype.String{}, ptype.MustIntegral(8, true), false},
		{"struct formal requires structural equality", ptype.Struct{Fields: nil, Complete: true}, ptype.MustIntegral(8, true), false},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := promotionCompatible(test.formal, test.actual); got != test.want {
				t.Errorf("promotionCompatible(%s, %s) = %v, want %v", test.formal, test.actual, got, test.want)
			}
		})
	}
}
