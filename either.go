package either

//go:generate go tool errtrace -w .

import (
	"cmp"

	"github.com/ghettovoice/either/internal/types"
)

// Either holds exactly one value: a value of type A (the first variant)
// or a value of type B (the second variant).
//
// The inactive side always holds its zero value.
type Either[A, B any] struct {
	first    A
	second   B
	isSecond bool
}

// First returns a union holding v as the first variant.
func First[A, B any](v A) Either[A, B] {
	return Either[A, B]{first: v}
}

// Second returns a union holding v as the second variant.
func Second[A, B any](v B) Either[A, B] {
	return Either[A, B]{second: v, isSecond: true}
}

// IsFirst reports whether the union holds the first variant.
func (e Either[A, B]) IsFirst() bool { return !e.isSecond }

// IsSecond reports whether the union holds the second variant.
func (e Either[A, B]) IsSecond() bool { return e.isSecond }

// First returns the value of the first variant.
// The second return value is false when the union holds the second variant.
func (e Either[A, B]) First() (A, bool) {
	if e.isSecond {
		var zero A
		return zero, false
	}
	return e.first, true
}

// Second returns the value of the second variant.
// The second return value is false when the union holds the first variant.
func (e Either[A, B]) Second() (B, bool) {
	if !e.isSecond {
		var zero B
		return zero, false
	}
	return e.second, true
}

// View returns a union of pointers to the active payload of e.
// The returned union holds the same variant as e.
// Writes through the pointer are visible in e, so the view must not be kept
// after e is reassigned.
func View[A, B any](e *Either[A, B]) Either[*A, *B] {
	if e.isSecond {
		return Second[*A](&e.second)
	}
	return First[*A, *B](&e.first)
}

// Swap returns the union with its variants exchanged:
// First(v) becomes Second(v) and Second(v) becomes First(v).
func (e Either[A, B]) Swap() Either[B, A] {
	if e.isSecond {
		return First[B, A](e.second)
	}
	return Second[B](e.first)
}

// Equal reports whether e and other hold the same variant with equal payloads.
// Payloads are compared with go-cmp, so types with an Equal method compare
// through it. Unexported struct fields take part in the comparison.
func (e Either[A, B]) Equal(other Either[A, B]) bool {
	if e.isSecond != other.isSecond {
		return false
	}
	if e.isSecond {
		return types.IsEqual(e.second, other.second)
	}
	return types.IsEqual(e.first, other.first)
}

// Clone returns a copy of e.
// The payload is deep-copied when it has a Clone method returning its own type,
// otherwise it is copied by value.
func (e Either[A, B]) Clone() Either[A, B] {
	if e.isSecond {
		return Second[A](types.Clone[B](e.second))
	}
	return First[A, B](types.Clone[A](e.first))
}

// Compare orders x and y: any first variant sorts before any second variant,
// and values of the same variant sort by payload.
// It returns -1 if x < y, 0 if x == y and +1 if x > y.
func Compare[A, B cmp.Ordered](x, y Either[A, B]) int {
	switch {
	case x.isSecond != y.isSecond:
		if x.isSecond {
			return 1
		}
		return -1
	case x.isSecond:
		return cmp.Compare(x.second, y.second)
	default:
		return cmp.Compare(x.first, y.first)
	}
}
