package typecheck

import "github.com/timb-machine-mirrors/gnu-poke/internal/ptype"

// combineIntegral implements the one promotion rule every
// arithmetic/bitwise family shares: width widens to the larger operand,
// and unsignedness is contagious (if either operand is unsigned, so is
// the result). Commutative in both arguments.
func combineIntegral(a, b ptype.Integral) ptype.Integral {
	size := a.Size
	if b.Size > size {
		size = b.Size
	}
	signed := a.Signed && b.Signed
	return ptype.Intern(ptype.MustIntegral(size, signed))
}

// combineOffsetBase promotes two offsets' base integral types using the
// same rule, for the offset/offset forms of +, - and /. (The
// offset/offset form of % keeps the left operand's base instead.)
func combineOffsetBase(a, b ptype.Offset) ptype.Integral {
	return combineIntegral(a.Base, b.Base)
}

// promotionCompatible is the "actual assignable to formal" rule shared
// by funcall-argument checking, assignment and return statements: exact
// equality, except integral accepts any integral, offset accepts any
// offset, and any accepts anything.
func promotionCompatible(formal, actual ptype.Type) bool {
	if formal.Kind() == ptype.KindAny {
		return true
	}
	if formal.Kind() != actual.Kind() {
		return false
	}
	switch formal.Kind() {
	case ptype.KindIntegral, ptype.KindOffset:
		return true
	default:
		return ptype.Equal(formal, actual)
	}
}
