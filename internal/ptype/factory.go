package ptype

import (
	"sync"

	"golang.org/x/exp/maps"
)

// internTable shares identical integral type values across the whole
// compilation unit rather than allocating a fresh value per expression
// node: a given type value may be referenced from many expression
// nodes, and the common scalar types (the canonical booleans, the
// 64-bit size type, byte-wide integrals) recur constantly.
type internTable struct {
	mu       sync.Mutex
	integral map[IntegralKey]Integral
}

// IntegralKey is the (size, signed) identity of an interned Integral.
type IntegralKey struct {
	Size   int
	Signed bool
}

var interned = &internTable{integral: make(map[IntegralKey]Integral)}

// Intern returns the shared Integral value for (size, signed), creating
// and caching it on first use. Callers that already validated size via
// NewIntegral can use this directly; it never itself range-checks.
func Intern(t Integral) Integral {
	key := IntegralKey{t.Size, t.Signed}
	interned.mu.Lock()
	defer interned.mu.Unlock()
	if v, ok := interned.integral[key]; ok {
		return v
	}
	interned.integral[key] = t
	return t
}

// InternedKinds returns the set of distinct (size,signed) pairs interned
// so far, in no particular order: a debug accessor over the intern table.
func InternedKinds() []IntegralKey {
	interned.mu.Lock()
	defer interned.mu.Unlock()
	return maps.Keys(interned.integral)
}
