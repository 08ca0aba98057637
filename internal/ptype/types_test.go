package ptype

import (
	"strings"
	"testing"
)

func TestNewIntegralBoundary(t *testing.T) {
	tests := []struct {
		name       string
		size       int
		shouldPass bool
	}{
		{"minimum width 1", 1, true},
		{"maximum width 64", 64, true},
		{"typical width 32", 32, true},
		{"zero width rejected", 0, false},
		{"width 65 rejected", 65, false},
		{"negative width rejected", -8, false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := NewIntegral(test.size, true)
			if test.shouldPass && err != nil {
				t.Errorf("NewIntegral(%d): expected success, got %v", test.size, err)
			}
			if !test.shouldPass && err == nil {
				t.Errorf("NewIntegral(%d): expected an error, got none", test.size)
			}
		})
	}
}

func TestIntegralStringSignedness(t *testing.T) {
	s := MustIntegral(32, true)
	if s.String() != "int<32>" {
		t.Errorf("got %q, want int<32>", s.String())
	}
	u := MustIntegral(16, false)
	if u.String() != "uint<16>" {
		t.Errorf("got %q, want uint<16>", u.String())
	}
}

func TestCanonicalConstants(t *testing.T) {
	if b := Bool32(); b.Size != 32 || !b.Signed {
		t.Errorf("Bool32() = %+v, want int<32>", b)
	}
	if s := Size64(); s.Size != 64 || s.Signed {
		t.Errorf("Size64() = %+v, want uint<64>", s)
	}
	if s := Size8U(); s.Size != 8 || s.Signed {
		t.Errorf("Size8U() = %+v, want uint<8>", s)
	}
}

func TestEqualIntegral(t *testing.T) {
	a := MustIntegral(32, true)
	b := MustIntegral(32, true)
	c := MustIntegral(32, false)
	if !Equal(a, b) {
		t.Error("two int<32> values should be equal")
	}
	if Equal(a, c) {
		t.Error("int<32> and uint<32> should not be equal")
	}
}

func TestEqualOffset(t *testing.T) {
	a := Offset{Base: MustIntegral(32, false), Unit: 8}
	b := Offset{Base: MustIntegral(32, false), Unit: 8}
	c := Offset{Base: MustIntegral(32, false), Unit: 1}
	if !Equal(a, b) {
		t.Error("identical offsets should be equal")
	}
	if Equal(a, c) {
		t.Error("offsets with different units should not be equal")
	}
}

func TestEqualStructFieldNames(t *testing.T) {
	name := "x"
	a := Struct{Fields: []StructField{{Name: &name, Type: MustIntegral(32, true)}}}
	b := Struct{Fields: []StructField{{Name: &name, Type: MustIntegral(32, true)}}}
	other := "y"
	c := Struct{Fields: []StructField{{Name: &other, Type: MustIntegral(32, true)}}}
	if !Equal(a, b) {
		t.Error("structurally identical structs should be equal")
	}
	if Equal(a, c) {
		t.Error("structs with differently-named fields should not be equal")
	}
}

func TestIsCompleteLeafKinds(t *testing.T) {
	tests := []struct {
		name string
		t    Type
		want bool
	}{
		{"integral always complete", MustIntegral(8, false), true},
		{"offset always complete", Offset{Base: MustIntegral(32, false), Unit: 8}, true},
		{"string never complete", String{}, false},
		{"any never complete", Any{}, false},
		{"function never complete", Function{Ret: Void{}}, false},
		{"void never complete", Void{}, false},
		{"nil never complete", nil, false},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := IsComplete(test.t); got != test.want {
				t.Errorf("IsComplete(%v) = %v, want %v", test.t, got, test.want)
			}
		})
	}
}

func TestIsCompleteArrayFollowsFlag(t *testing.T) {
	complete := Array{Elem: MustIntegral(8, false), Complete: true}
	incomplete := Array{Elem: MustIntegral(8, false), Complete: false}
	if !IsComplete(complete) {
		t.Error("array with Complete=true should report complete")
	}
	if IsComplete(incomplete) {
		t.Error("array with Complete=false should report incomplete")
	}
}

func TestInternSharesIdenticalKeys(t *testing.T) {
	a := Intern(MustIntegral(32, true))
	b := Intern(MustIntegral(32, true))
	if a != b {
		t.Errorf("Intern should return the same value for identical keys: %+v vs %+v", a, b)
	}
}

func TestSizeDescription(t *testing.T) {
	tests := []uint64{32, 1, 64, 65}
	for _, bits := range tests {
		got := SizeDescription(bits)
		if bits%8 == 0 && !strings.Contains(got, "B)") {
			t.Errorf("SizeDescription(%d) = %q, want a byte count", bits, got)
		}
		if bits%8 != 0 && strings.Contains(got, "(") {
			t.Errorf("SizeDescription(%d) = %q, should not report a byte count", bits, got)
		}
	}
}

func TestDebugStringRenders(t *testing.T) {
	got := DebugString(MustIntegral(16, false))
	if got == "" {
		t.Error("DebugString should never return an empty string")
	}
}

func TestStructFieldByName(t *testing.T) {
	name := "count"
	s := Struct{Fields: []StructField{{Name: &name, Type: MustIntegral(32, true)}}}
	if _, ok := s.FieldByName("count"); !ok {
		t.Error("expected to find field \"count\"")
	}
	if _, ok := s.FieldByName("missing"); ok {
		t.Error("did not expect to find field \"missing\"")
	}
}

func TestFunctionString(t *testing.T) {
	name := "x"
	f := Function{
		Ret: Void{},
		Args: []FunctionArg{
			{Name: &name, Type: MustIntegral(32, true)},
			{Type: MustIntegral(32, true), Optional: true},
		},
	}
	got := f.String()
	if !strings.HasPrefix(got, "fun (") {
		t.Errorf("Function.String() = %q, want it to start with \"fun (\"", got)
	}
}
