package sets

import "errors"

var (
	// ErrNotSorted signals input which is not in strictly ascending order.
	ErrNotSorted = errors.New("sets: elements not strictly ascending")
	// ErrNilCompare signals a missing comparison function.
	ErrNilCompare = errors.New("sets: compare function is nil")
)
