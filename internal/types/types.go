// Package types contains common helpers for payload values held by unions.
package types

import (
	"reflect"

	"github.com/google/go-cmp/cmp"
)

var exportAll = cmp.Exporter(func(reflect.Type) bool { return true })

// IsEqual returns true if the values are equal.
// Values with an `Equal(T) bool` method are compared through it.
// Unexported struct fields are compared like exported ones.
func IsEqual[T any](v1, v2 T) bool {
	return cmp.Equal(v1, v2, exportAll)
}

type Cloneable[T any] interface {
	Clone() T
}

// Clone clones the value if it has method `Clone() T`, otherwise returns v as is.
func Clone[T any](v T) T {
	if v1, ok := any(v).(Cloneable[T]); ok {
		return v1.Clone()
	}
	return v
}
