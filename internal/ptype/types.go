// Package ptype defines Poke's compile-time type values: the things
// typify-1 attributes to every expression node and typify-2 classifies as
// complete or incomplete.
package ptype

import "fmt"

// Kind discriminates the type-node variants.
type Kind int

const (
	KindIntegral Kind = iota
	KindString
	KindArray
	KindStruct
	KindOffset
	KindFunction
	KindAny
	KindVoid
)

// Type is implemented by every type-node variant. Type values are
// immutable once built (aside from the completeness flag on Array/Struct,
// written exclusively by typify-2) and are safe to share between many
// expression nodes.
type Type interface {
	Kind() Kind
	// String renders the type in Poke's own surface syntax.
	String() string
}

// Integral is a size-bounded, signed-or-unsigned integer type.
// Size is always in [1,64]; construct with NewIntegral to enforce that.
type Integral struct {
	Size   int
	Signed bool
}

// NewIntegral validates size against the [1,64] range before
// a caller can build an Integral. This is the single choke point every
// handler that synthesizes an integral type goes through (literal
// validation, promotion, attribute results, sizeof, offset bases).
func NewIntegral(size int, signed bool) (Integral, error) {
	if size < 1 || size > 64 {
		return Integral{}, fmt.Errorf("width of an integral type should be in the [1,64] range, got %d", size)
	}
	return Integral{Size: size, Signed: signed}, nil
}

// MustIntegral panics on an out-of-range size; only used internally for
// well-known constants (e.g. the canonical 32-bit boolean) where the size
// is a literal the package itself controls.
func MustIntegral(size int, signed bool) Integral {
	t, err := NewIntegral(size, signed)
	if err != nil {
		panic(err)
	}
	return t
}

func (Integral) Kind() Kind { return KindIntegral }

func (t Integral) String() string {
	if t.Signed {
		return fmt.Sprintf("int<%d>", t.Size)
	}
	return fmt.Sprintf("uint<%d>", t.Size)
}

// Bool32 is the canonical boolean result type used by relational,
// logical and isa expressions.
func Bool32() Integral { return MustIntegral(32, true) }

// Size64 is the canonical result type for sizeof/'size/'magnitude/'unit
// and the other 64-bit unsigned attribute results.
func Size64() Integral { return MustIntegral(64, false) }

// Size8U is the canonical `uint<8>` type: the element type of a string
// indexer, and the one integral type a cast-to-string accepts.
func Size8U() Integral { return MustIntegral(8, false) }

// String is Poke's string type. It carries no attributes of its own.
type String struct{}

func (String) Kind() Kind     { return KindString }
func (String) String() string { return "string" }

// Array is an array type. NElem is nil for an unsized array type
// (`T[]`); when present it is the AST node whose type was checked to be
// integral or offset (typify-1) and whose constant-ness feeds Complete
// (typify-2). Complete is written exclusively by typify-2.
type Array struct {
	Elem     Type
	NElem    ConstSizeExpr // nil => unsized
	Complete bool
}

// ConstSizeExpr is the minimal view typify-2 needs of an array's element
// count expression: whether it is a constant expression, independent of
// which concrete ast.Expr it is. Kept here (rather than importing ast)
// so ptype has no dependency on the ast package.
type ConstSizeExpr interface {
	IsConstant() bool
}

func (Array) Kind() Kind { return KindArray }

func (a Array) String() string {
	if a.NElem == nil {
		return fmt.Sprintf("%s[]", a.Elem)
	}
	return fmt.Sprintf("%s[?]", a.Elem)
}

// StructField is one field of a Struct type: an optional name and its
// type. Unnamed fields are legal (e.g. anonymous padding) and are simply
// not reachable through field-access lookup.
type StructField struct {
	Name *string
	Type Type
}

// Struct is a struct type. Complete is written exclusively by typify-2.
type Struct struct {
	Fields   []StructField
	Complete bool
}

func (Struct) Kind() Kind { return KindStruct }

func (s Struct) String() string {
	out := "struct {"
	for i, f := range s.Fields {
		if i > 0 {
			out += "; "
		} else {
			out += " "
		}
		if f.Name != nil {
			out += *f.Name + ": "
		}
		out += f.Type.String()
	}
	return out + " }"
}

// FieldByName returns the field with the given name, if any is named
// that, and whether it was found.
func (s Struct) FieldByName(name string) (StructField, bool) {
	for _, f := range s.Fields {
		if f.Name != nil && *f.Name == name {
			return f, true
		}
	}
	return StructField{}, false
}

// Offset is a dimensioned scalar: a base integral magnitude and a unit
// expressed as bits-per-unit (so bytes = 8, kilobytes = 8000, ...).
type Offset struct {
	Base Integral
	Unit int64
}

func (Offset) Kind() Kind { return KindOffset }

func (o Offset) String() string {
	return fmt.Sprintf("offset<%s,%d>", o.Base, o.Unit)
}

// FunctionArg is one formal argument of a Function type.
type FunctionArg struct {
	Type     Type
	Name     *string
	Optional bool
	Vararg   bool
}

// Function is a function type. Never complete.
type Function struct {
	Ret  Type
	Args []FunctionArg
}

func (Function) Kind() Kind { return KindFunction }

func (f Function) String() string {
	out := "fun ("
	for i, a := range f.Args {
		if i > 0 {
			out += ", "
		}
		if a.Name != nil {
			out += *a.Name + ": "
		}
		out += a.Type.String()
		if a.Optional {
			out += "=..."
		}
		if a.Vararg {
			out += "..."
		}
	}
	return out + "): " + f.Ret.String()
}

// Any is the top type: accepts any value, never complete.
type Any struct{}

func (Any) Kind() Kind     { return KindAny }
func (Any) String() string { return "any" }

// Void marks a non-value return. Never complete.
type Void struct{}

func (Void) Kind() Kind     { return KindVoid }
func (Void) String() string { return "void" }
