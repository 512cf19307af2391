package rpc_types

import "fmt"

// ErrUnknownMethod is returned for any method not in the registry
// (spec.md §4.G).
func ErrUnknownMethod() *Error {
	return NewError("Unknown method")
}

// ErrInvalidParams is returned when a method's params are missing or
// malformed.
func ErrInvalidParams(method string) *Error {
	return NewError(fmt.Sprintf("Invalid %s params", method))
}

// ErrBlockedByProfile is returned when a mutating method is called under
// the production profile.
func ErrBlockedByProfile() *Error {
	return NewError("Method blocked by profile policy")
}
