package btree

import "errors"

var (
	// ErrInvalidConfig signals an invalid tree configuration or a corrupt tree.
	ErrInvalidConfig = errors.New("btree: invalid configuration")
	// ErrIndexOutOfBounds signals an invalid positional index.
	ErrIndexOutOfBounds = errors.New("btree: index out of bounds")
	// ErrNotOrdered signals items which are not strictly ascending, either
	// within a bulk load or across two trees to be joined.
	ErrNotOrdered = errors.New("btree: items not strictly ascending")
)
