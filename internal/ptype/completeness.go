package ptype

// IsComplete reports whether t's total size in bits is known at compile
// time and constant.
//
// Only Array and Struct carry a mutable Complete flag, since those are
// the only variants whose completeness depends on a sub-expression (an
// element/field type, or a count expression) rather than being fixed by
// the type's own shape. The remaining kinds are decided structurally:
//   - Integral: always complete, its size is the type itself.
//   - Offset: always complete, its own representation is its base
//     integral's width; the unit is fixed metadata, not instance data.
//   - String: never complete. A string value's length is not bounded by
//     its type, so there is no compile-time constant size to report.
//   - Any, Function: never complete; neither has a static size.
//   - Void: never complete; it denotes the absence of a value.
func IsComplete(t Type) bool {
	if t == nil {
		return false
	}
	switch v := t.(type) {
	case Integral:
		return true
	case Offset:
		return true
	case Array:
		return v.Complete
	case Struct:
		return v.Complete
	default:
		return false
	}
}

// StaticBitSize reports t's total size in bits, when that size is known
// without running the program: an Integral's own width, an Offset's base
// width, or a Struct's field widths summed (only once every field is
// itself statically sized). An Array's size depends on a count that is
// only known to be constant, never its literal value (ConstSizeExpr
// exposes IsConstant, not the count), so it never reports a size here.
// String, Any, Function and Void have no static bit size.
func StaticBitSize(t Type) (uint64, bool) {
	switch v := t.(type) {
	case Integral:
		return uint64(v.Size), true
	case Offset:
		return uint64(v.Base.Size), true
	case Struct:
		var total uint64
		for _, f := range v.Fields {
			size, ok := StaticBitSize(f.Type)
			if !ok {
				return 0, false
			}
			total += size
		}
		return total, true
	default:
		return 0, false
	}
}
