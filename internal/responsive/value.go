// Package responsive models property values that are either breakpoint
// invariant or vary across the compact, medium and expanded breakpoints.
package responsive

import (
	"fmt"

	"github.com/alexisbeaulieu97/flexkit/internal/breakpoint"
)

// Slot is one entry of a responsive tuple. An empty slot means "no style
// contribution at this breakpoint", which is different from a token whose
// name happens to be none.
type Slot[T any] struct {
	value T
	ok    bool
}

// Some returns a slot holding v.
func Some[T any](v T) Slot[T] {
	return Slot[T]{value: v, ok: true}
}

// None returns an empty slot.
func None[T any]() Slot[T] {
	return Slot[T]{}
}

// Get returns the slot value and whether it is present.
func (s Slot[T]) Get() (T, bool) {
	return s.value, s.ok
}

type kind uint8

const (
	kindUnset kind = iota
	kindScalar
	kindTuple
)

// Value is either a scalar or a responsive tuple of two or three slots. The
// zero Value is unset and contributes nothing on any platform.
type Value[T any] struct {
	kind     kind
	scalar   T
	slots    [breakpoint.Count]Slot[T]
	declared int
}

// Scalar returns a breakpoint-invariant value.
func Scalar[T any](v T) Value[T] {
	return Value[T]{kind: kindScalar, scalar: v}
}

// Tuple returns a responsive value from two or three slots in breakpoint
// order. A two-slot tuple leaves the expanded slot undeclared.
func Tuple[T any](slots ...Slot[T]) Value[T] {
	if len(slots) < 2 || len(slots) > breakpoint.Count {
		panic(fmt.Sprintf("responsive: tuple needs 2 or %d slots, got %d", breakpoint.Count, len(slots)))
	}
	v := Value[T]{kind: kindTuple, declared: len(slots)}
	copy(v.slots[:], slots)
	return v
}

// Responsive returns a tuple where every given value is present.
func Responsive[T any](values ...T) Value[T] {
	slots := make([]Slot[T], len(values))
	for i, value := range values {
		slots[i] = Some(value)
	}
	return Tuple(slots...)
}

// IsSet reports whether the value was supplied at all.
func (v Value[T]) IsSet() bool {
	return v.kind != kindUnset
}

// IsScalar reports whether the value is breakpoint invariant.
func (v Value[T]) IsScalar() bool {
	return v.kind == kindScalar
}

// IsTuple reports whether the value varies per breakpoint.
func (v Value[T]) IsTuple() bool {
	return v.kind == kindTuple
}

// Len returns the number of declared tuple slots, 1 for scalars and 0 when
// unset.
func (v Value[T]) Len() int {
	switch v.kind {
	case kindScalar:
		return 1
	case kindTuple:
		return v.declared
	default:
		return 0
	}
}

// ScalarValue returns the scalar and true when v is a scalar.
func (v Value[T]) ScalarValue() (T, bool) {
	if v.kind != kindScalar {
		var zero T
		return zero, false
	}
	return v.scalar, true
}

// At resolves v for a single breakpoint. Scalars are returned unchanged for
// every breakpoint. Empty and undeclared slots report false.
func (v Value[T]) At(bp breakpoint.Breakpoint) (T, bool) {
	var zero T
	switch v.kind {
	case kindScalar:
		return v.scalar, true
	case kindTuple:
		if !bp.Valid() || bp.Index() >= v.declared {
			return zero, false
		}
		return v.slots[bp.Index()].Get()
	default:
		return zero, false
	}
}

// WebAt resolves v the way the class resolver does: an undeclared expanded
// slot falls back to the medium slot. Compact and medium never fall back, and
// an explicitly empty expanded slot stays empty.
func (v Value[T]) WebAt(bp breakpoint.Breakpoint) (T, bool) {
	if v.kind == kindTuple && bp == breakpoint.Expanded && v.declared < breakpoint.Count {
		return v.At(breakpoint.Medium)
	}
	return v.At(bp)
}

// ResolveAt is the functional form of Value.At.
func ResolveAt[T any](v Value[T], bp breakpoint.Breakpoint) (T, bool) {
	return v.At(bp)
}

// Map converts every present slot with fn, keeping empty slots and the
// declared tuple width. The first conversion error aborts the mapping.
func Map[T, U any](v Value[T], fn func(T) (U, error)) (Value[U], error) {
	switch v.kind {
	case kindScalar:
		mapped, err := fn(v.scalar)
		if err != nil {
			return Value[U]{}, err
		}
		return Scalar(mapped), nil
	case kindTuple:
		out := Value[U]{kind: kindTuple, declared: v.declared}
		for i := 0; i < v.declared; i++ {
			value, ok := v.slots[i].Get()
			if !ok {
				continue
			}
			mapped, err := fn(value)
			if err != nil {
				return Value[U]{}, err
			}
			out.slots[i] = Some(mapped)
		}
		return out, nil
	default:
		return Value[U]{}, nil
	}
}
