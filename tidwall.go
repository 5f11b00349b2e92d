package sets

import (
	"cmp"

	"github.com/tidwall/btree"
)

// TidwallSet is an ordered set backed by a github.com/tidwall/btree BTreeG.
// It satisfies OrderedSet and Bounded, and may be intersected with a Set or
// with another TidwallSet.
type TidwallSet[T any] struct {
	cmp   func(a, b T) int
	inner *btree.BTreeG[T]
}

// NewTidwall creates an empty tidwall-backed set of naturally ordered elements.
func NewTidwall[T cmp.Ordered]() *TidwallSet[T] {
	return NewTidwallFunc(cmp.Compare[T])
}

// NewTidwallFunc creates an empty tidwall-backed set ordered by compare.
// NewTidwallFunc panics if compare is nil.
func NewTidwallFunc[T any](compare func(a, b T) int) *TidwallSet[T] {
	if compare == nil {
		panic(ErrNilCompare)
	}
	inner := btree.NewBTreeGOptions(func(a, b T) bool {
		return compare(a, b) < 0
	}, btree.Options{
		Degree:  32,
		NoLocks: true,
	})
	return &TidwallSet[T]{cmp: compare, inner: inner}
}

// TidwallOf creates a tidwall-backed set from items in any order.
func TidwallOf[T cmp.Ordered](items ...T) *TidwallSet[T] {
	s := NewTidwall[T]()
	for _, item := range items {
		s.Insert(item)
	}
	return s
}

// Len returns the number of elements in s.
func (s *TidwallSet[T]) Len() int {
	return s.inner.Len()
}

func (s *TidwallSet[T]) Min() (T, bool) {
	return s.inner.Min()
}

func (s *TidwallSet[T]) Max() (T, bool) {
	return s.inner.Max()
}

// Contains reports whether v is an element of s.
func (s *TidwallSet[T]) Contains(v T) bool {
	_, ok := s.inner.Get(v)
	return ok
}

// Insert adds v to s and reports whether it has not been present before.
func (s *TidwallSet[T]) Insert(v T) bool {
	_, replaced := s.inner.Set(v)
	return !replaced
}

// Delete removes v from s and reports whether it has been present.
func (s *TidwallSet[T]) Delete(v T) bool {
	_, deleted := s.inner.Delete(v)
	return deleted
}

// Cursor returns a fresh forward cursor over a copy-on-write snapshot of s.
func (s *TidwallSet[T]) Cursor() Cursor[T] {
	snapshot := s.inner.Copy()
	return &tidwallCursor[T]{
		cmp:  s.cmp,
		iter: snapshot.Iter(),
	}
}

// Intersection returns the lazy intersection of s and other, using s's order.
func (s *TidwallSet[T]) Intersection(other OrderedSet[T]) *Intersection[T] {
	return IntersectFunc[T](s, other, s.cmp)
}

type tidwallCursorState uint8

const (
	tidwallFresh tidwallCursorState = iota
	tidwallActive
	tidwallDone
)

// tidwallCursor adapts a tidwall iterator to Cursor. The iterator's own Seek
// restarts from the root, so a forward-only Seek checks the current item
// first.
type tidwallCursor[T any] struct {
	cmp   func(a, b T) int
	iter  btree.IterG[T]
	state tidwallCursorState
}

func (c *tidwallCursor[T]) Next() (v T, ok bool) {
	switch c.state {
	case tidwallFresh:
		ok = c.iter.First()
	case tidwallActive:
		ok = c.iter.Next()
	default:
		return v, false
	}
	return c.settle(ok)
}

func (c *tidwallCursor[T]) Seek(key T) (v T, ok bool) {
	switch c.state {
	case tidwallActive:
		if cur := c.iter.Item(); c.cmp(cur, key) >= 0 {
			return cur, true
		}
	case tidwallDone:
		return v, false
	}
	return c.settle(c.iter.Seek(key))
}

func (c *tidwallCursor[T]) settle(ok bool) (v T, _ bool) {
	if !ok {
		c.state = tidwallDone
		c.iter.Release()
		return v, false
	}
	c.state = tidwallActive
	return c.iter.Item(), true
}
