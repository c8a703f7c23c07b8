package either

import (
	"braces.dev/errtrace"

	"github.com/ghettovoice/either/internal/errorutil"
)

// ErrNilFirst is returned by [ToResult] when the union holds the first variant
// with a nil error, which has no failure counterpart in a (T, error) result.
const ErrNilFirst errorutil.Error = "either: first variant holds a nil error"

// FromResult converts a (T, error) result to a union.
//
// A failure (non-nil err) maps to the first variant and a success maps to the second one.
// The order is a convention shared with [ToResult], not a priority of one variant
// over the other. The value v is dropped on failure.
func FromResult[T any](v T, err error) Either[error, T] {
	if err != nil {
		return First[error, T](err)
	}
	return Second[error](v)
}

// ToResult converts a union to a (T, error) result.
//
// The first variant maps to the failure case and its error is returned as is.
// The second variant maps to the success case with a nil error.
// A first variant holding a nil error yields [ErrNilFirst].
func ToResult[T any](e Either[error, T]) (T, error) {
	if e.isSecond {
		return e.second, nil
	}
	var zero T
	if e.first == nil {
		return zero, errtrace.Wrap(ErrNilFirst)
	}
	return zero, e.first //errtrace:skip
}
