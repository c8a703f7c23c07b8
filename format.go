package either

import (
	"fmt"
	"log/slog"
)

const (
	firstName  = "first"
	secondName = "second"
)

// String returns "First(v)" or "Second(v)" with the payload formatted by %v.
func (e Either[A, B]) String() string {
	if e.isSecond {
		return fmt.Sprintf("Second(%v)", e.second)
	}
	return fmt.Sprintf("First(%v)", e.first)
}

// GoString returns a Go-syntax representation of the union.
func (e Either[A, B]) GoString() string {
	if e.isSecond {
		return fmt.Sprintf("either.Second(%#v)", e.second)
	}
	return fmt.Sprintf("either.First(%#v)", e.first)
}

// LogValue implements [slog.LogValuer].
// The union is logged as a group with the active side name and the payload.
func (e Either[A, B]) LogValue() slog.Value {
	if e.isSecond {
		return slog.GroupValue(
			slog.String("side", secondName),
			slog.Any("value", e.second),
		)
	}
	return slog.GroupValue(
		slog.String("side", firstName),
		slog.Any("value", e.first),
	)
}
