// Package errorutil provides error types shared by the module packages.
package errorutil

// Error is a string type that implements the error interface.
// It allows sentinel errors to be declared as constants.
type Error string

func (s Error) Error() string { return string(s) }
