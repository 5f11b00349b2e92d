package sets

import "github.com/npillmayer/sets/btree"

// Cursor is a forward-only cursor over the elements of an ordered set.
//
// A fresh cursor is positioned before the first element. Once a cursor has
// reported exhaustion, every further call reports exhaustion as well.
type Cursor[T any] interface {
	// Next advances to the following element and returns it.
	Next() (T, bool)
	// Seek advances to the first element not less than key and returns it.
	// Seek never moves backwards: if the current element is already not
	// less than key, it is returned again. On a fresh cursor, Seek behaves
	// like a lower-bound search from the start.
	Seek(key T) (T, bool)
}

// OrderedSet is the contract the intersection relies on. Len has to be cheap,
// Cursor has to return a fresh cursor each time it is called.
type OrderedSet[T any] interface {
	Len() int
	Cursor() Cursor[T]
}

// Bounded is implemented by ordered sets which know their extreme elements
// without iterating. Intersections use it to detect disjoint operands early.
type Bounded[T any] interface {
	Min() (T, bool)
	Max() (T, bool)
}

// setCursor implements Cursor on top of a tree iterator.
type setCursor[T any] struct {
	it *btree.Iterator[entry[T], span[T]]
}

func (c *setCursor[T]) Next() (v T, ok bool) {
	if !c.it.Next() {
		return v, false
	}
	return c.it.Item().value, true
}

func (c *setCursor[T]) Seek(key T) (v T, ok bool) {
	if !c.it.Seek(entry[T]{value: key}) {
		return v, false
	}
	return c.it.Item().value, true
}
