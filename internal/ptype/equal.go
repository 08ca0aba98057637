package ptype

// Equal implements the structural equality every typing rule in
// typecheck relies on. Two types are equal iff they are the same kind
// and their essential attributes match recursively; the Complete flag
// (written by typify-2, not part of a type's identity) never factors in.
func Equal(a, b Type) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Kind() != b.Kind() {
		return false
	}
	switch av := a.(type) {
	case Integral:
		bv := b.(Integral)
		return av.Size == bv.Size && av.Signed == bv.Signed
	case String:
		return true
	case Any:
		return true
	case Void:
		return true
	case Offset:
		bv := b.(Offset)
		return Equal(av.Base, bv.Base) && av.Unit == bv.Unit
	case Array:
		bv := b.(Array)
		if (av.NElem == nil) != (bv.NElem == nil) {
			return false
		}
		return Equal(av.Elem, bv.Elem)
	case Struct:
		bv := b.(Struct)
		if len(av.Fields) != len(bv.Fields) {
			return false
		}
		for i := range av.Fields {
			fa, fb := av.Fields[i], bv.Fields[i]
			if (fa.Name == nil) != (fb.Name == nil) {
				return false
			}
			if fa.Name != nil && *fa.Name != *fb.Name {
				return false
			}
			if !Equal(fa.Type, fb.Type) {
				return false
			}
		}
		return true
	case Function:
		bv := b.(Function)
		if !Equal(av.Ret, bv.Ret) {
			return false
		}
		if len(av.Args) != len(bv.Args) {
			return false
		}
		for i := range av.Args {
			aa, ba := av.Args[i], bv.Args[i]
			if aa.Optional != ba.Optional || aa.Vararg != ba.Vararg {
				return false
			}
			if !Equal(aa.Type, ba.Type) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// IsKind reports whether t is non-nil and of kind k.
func IsKind(t Type, k Kind) bool {
	return t != nil && t.Kind() == k
}
