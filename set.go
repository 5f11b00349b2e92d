package sets

import (
	"cmp"
	"errors"
	"fmt"
	"iter"
	"strings"

	"github.com/npillmayer/sets/btree"
)

// Set is an ordered set of distinct elements.
//
// The zero value is not usable; create sets with New, NewFunc, Of or
// FromSorted. Copying a Set value shares its contents; use Clone to obtain an
// independent set.
type Set[T any] struct {
	cmp  func(a, b T) int
	tree *btree.Tree[entry[T], span[T]]
}

// New creates an empty set of naturally ordered elements.
func New[T cmp.Ordered]() *Set[T] {
	return NewFunc(cmp.Compare[T])
}

// NewFunc creates an empty set ordered by compare, which has to be a
// three-way comparison implementing a total order. NewFunc panics if compare
// is nil.
func NewFunc[T any](compare func(a, b T) int) *Set[T] {
	if compare == nil {
		panic(ErrNilCompare)
	}
	tree, err := btree.New(treeConfig(compare))
	if err != nil {
		panic(err) // cannot happen for a non-nil compare
	}
	return &Set[T]{cmp: compare, tree: tree}
}

func treeConfig[T any](compare func(a, b T) int) btree.Config[entry[T], span[T]] {
	return btree.Config[entry[T], span[T]]{
		Compare: func(a, b entry[T]) int {
			return compare(a.value, b.value)
		},
		Monoid: spanMonoid[T]{},
	}
}

// Of creates a set from items, given in any order and possibly with duplicates.
func Of[T cmp.Ordered](items ...T) *Set[T] {
	s := New[T]()
	for _, item := range items {
		s.Insert(item)
	}
	return s
}

// FromSorted creates a set ordered by compare from items, which have to be
// strictly ascending. Otherwise FromSorted returns ErrNotSorted.
func FromSorted[T any](compare func(a, b T) int, items []T) (*Set[T], error) {
	if compare == nil {
		panic(ErrNilCompare)
	}
	entries := make([]entry[T], len(items))
	for i, item := range items {
		entries[i] = entry[T]{value: item}
	}
	tree, err := btree.Build(treeConfig(compare), entries)
	if errors.Is(err, btree.ErrNotOrdered) {
		return nil, fmt.Errorf("%w: %v", ErrNotSorted, err)
	} else if err != nil {
		return nil, err
	}
	return &Set[T]{cmp: compare, tree: tree}, nil
}

// Len returns the number of elements in s, in constant time.
func (s *Set[T]) Len() int {
	return s.tree.Summary().count
}

// IsEmpty reports whether s has no elements.
func (s *Set[T]) IsEmpty() bool {
	return s.Len() == 0
}

// Min returns the smallest element of s, in constant time.
func (s *Set[T]) Min() (T, bool) {
	sp := s.tree.Summary()
	return sp.min, sp.count > 0
}

// Max returns the largest element of s, in constant time.
func (s *Set[T]) Max() (T, bool) {
	sp := s.tree.Summary()
	return sp.max, sp.count > 0
}

// Compare returns the comparison function s is ordered by.
func (s *Set[T]) Compare() func(a, b T) int {
	return s.cmp
}

// Contains reports whether v is an element of s.
func (s *Set[T]) Contains(v T) bool {
	_, found := s.tree.Get(entry[T]{value: v})
	return found
}

// Insert adds v to s and reports whether it has not been present before.
func (s *Set[T]) Insert(v T) bool {
	tree, inserted := s.tree.Insert(entry[T]{value: v})
	s.tree = tree
	return inserted
}

// Delete removes v from s and reports whether it has been present.
func (s *Set[T]) Delete(v T) bool {
	tree, deleted := s.tree.Delete(entry[T]{value: v})
	s.tree = tree
	return deleted
}

// DeleteRange removes all elements x with from <= x < to and returns the
// number of elements removed.
func (s *Set[T]) DeleteRange(from, to T) int {
	tree, removed := s.tree.DeleteRange(entry[T]{value: from}, entry[T]{value: to})
	s.tree = tree
	return removed
}

// At returns the element at position index in ascending order, in
// logarithmic time. It panics if index is out of range.
func (s *Set[T]) At(index int) T {
	e, err := s.tree.At(index)
	if err != nil {
		panic(err)
	}
	return e.value
}

// Rank returns the number of elements of s less than v.
func (s *Set[T]) Rank(v T) int {
	return s.tree.Rank(entry[T]{value: v})
}

// SplitOff moves all elements not less than key into a new set, which is
// returned.
func (s *Set[T]) SplitOff(key T) *Set[T] {
	left, right := s.tree.Split(entry[T]{value: key})
	s.tree = left
	return &Set[T]{cmp: s.cmp, tree: right}
}

// Append moves all elements of other into s, leaving other empty. If all
// elements of other are greater than all elements of s, the underlying trees
// are joined without inserting elements one by one.
func (s *Set[T]) Append(other *Set[T]) {
	if other == nil || other == s || other.IsEmpty() {
		return
	}
	if tree, err := s.tree.Join(other.tree); err == nil {
		tracer().Debugf("set append by join, %d elements", tree.Len())
		s.tree = tree
	} else {
		for v := range other.All() {
			s.Insert(v)
		}
	}
	other.Clear()
}

// Clear removes all elements from s.
func (s *Set[T]) Clear() {
	tree, err := btree.New(treeConfig(s.cmp))
	if err != nil {
		panic(err)
	}
	s.tree = tree
}

// Clone returns a copy of s in constant time. Subsequent mutations of either
// set do not affect the other one.
func (s *Set[T]) Clone() *Set[T] {
	return &Set[T]{cmp: s.cmp, tree: s.tree}
}

// Cursor returns a fresh forward cursor over the elements of s, positioned
// before the first element. The cursor observes s as of the time of the call.
func (s *Set[T]) Cursor() Cursor[T] {
	return &setCursor[T]{it: btree.NewIterator(s.tree)}
}

// All returns an iterator over the elements of s in ascending order.
func (s *Set[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for e := range s.tree.All() {
			if !yield(e.value) {
				return
			}
		}
	}
}

// Ascend returns an iterator over the elements of s not less than from, in
// ascending order.
func (s *Set[T]) Ascend(from T) iter.Seq[T] {
	return func(yield func(T) bool) {
		c := s.Cursor()
		for v, ok := c.Seek(from); ok; v, ok = c.Next() {
			if !yield(v) {
				return
			}
		}
	}
}

// Items returns the elements of s as an ascending slice.
func (s *Set[T]) Items() []T {
	items := make([]T, 0, s.Len())
	for v := range s.All() {
		items = append(items, v)
	}
	return items
}

// Intersection returns the lazy intersection of s and other, using s's order.
func (s *Set[T]) Intersection(other OrderedSet[T]) *Intersection[T] {
	return IntersectFunc[T](s, other, s.cmp)
}

// Check validates the structure and ordering of the underlying tree, and
// the consistency of the set's summary. It is meant to be used in tests.
func (s *Set[T]) Check() error {
	if err := s.tree.Check(); err != nil {
		return err
	}
	if s.Len() != s.tree.Len() {
		return fmt.Errorf("sets: summary count %d, tree holds %d elements", s.Len(), s.tree.Len())
	}
	if s.IsEmpty() {
		return nil
	}
	lo, _ := s.Min()
	hi, _ := s.Max()
	if s.cmp(lo, s.At(0)) != 0 || s.cmp(hi, s.At(s.Len()-1)) != 0 {
		return fmt.Errorf("sets: summary bounds do not match the elements")
	}
	return nil
}

// String returns the elements of s in braces, like {1 2 3}.
func (s *Set[T]) String() string {
	var b strings.Builder
	b.WriteByte('{')
	first := true
	for v := range s.All() {
		if !first {
			b.WriteByte(' ')
		}
		first = false
		fmt.Fprint(&b, v)
	}
	b.WriteByte('}')
	return b.String()
}
