package sets

import (
	"cmp"
	"fmt"
	"iter"
)

// Strategy names the algorithm an Intersection uses to find common elements.
type Strategy uint8

const (
	// Stitch walks both sets side by side, always advancing the cursor with
	// the smaller head. Cost is linear in the sum of both sizes.
	Stitch Strategy = iota
	// Search walks the smaller set and seeks each of its elements in the
	// larger one. Cost is linear in the smaller size and logarithmic in the
	// larger size.
	Search
)

func (s Strategy) String() string {
	switch s {
	case Stitch:
		return "Stitch"
	case Search:
		return "Search"
	}
	return fmt.Sprintf("Strategy(%d)", uint8(s))
}

// tippingRatio is the size ratio between larger and smaller set above which
// searching beats stitching.
const tippingRatio = 16

// ChooseStrategy returns the strategy an intersection of sets with sizes
// aLen and bLen will use.
func ChooseStrategy(aLen, bLen int) Strategy {
	small, large := aLen, bLen
	if small > large {
		small, large = large, small
	}
	if small > large/tippingRatio {
		return Stitch
	}
	return Search
}

// Stats counts the work an Intersection has done so far.
type Stats struct {
	Compares int // element comparisons performed by the intersection itself
	Advances int // calls to Cursor.Next on either operand
	Seeks    int // calls to Cursor.Seek on the larger operand
}

// Intersection is a lazy, forward-only view of the elements common to two
// ordered sets, in ascending order.
//
// The strategy is fixed when the intersection is created. An Intersection is
// single-use: once exhausted it stays exhausted, and consuming it again
// requires creating a new one. It may be abandoned at any time. An
// Intersection must not be consumed from more than one goroutine at a time.
type Intersection[T any] struct {
	strategy Strategy
	cmp      func(a, b T) int
	done     bool
	stitch   stitchState[T] // used if strategy is Stitch
	search   searchState[T] // used if strategy is Search
	stats    Stats
}

type stitchState[T any] struct {
	a, b         Cursor[T]
	aLeft, bLeft int // upper bounds of elements not yet taken from a and b
}

type searchState[T any] struct {
	small     Cursor[T] // driver
	large     Cursor[T] // seek target
	smallLeft int
}

// Intersect creates a lazy intersection of two sets of naturally ordered
// elements. Both sets have to be ordered by cmp.Compare.
func Intersect[T cmp.Ordered](a, b OrderedSet[T]) *Intersection[T] {
	return IntersectFunc(a, b, cmp.Compare[T])
}

// IntersectFunc creates a lazy intersection of two sets, both ordered by
// compare. The strategy is chosen from the sizes of a and b. If either set
// is empty, or both are Bounded and their ranges do not overlap, the
// intersection starts exhausted without touching the sets.
func IntersectFunc[T any](a, b OrderedSet[T], compare func(a, b T) int) *Intersection[T] {
	if compare == nil {
		panic(ErrNilCompare)
	}
	strategy := ChooseStrategy(a.Len(), b.Len())
	if disjoint(a, b, compare) {
		tracer().Debugf("intersection of sizes %d and %d is empty, operands do not overlap", a.Len(), b.Len())
		return &Intersection[T]{strategy: strategy, cmp: compare, done: true}
	}
	tracer().Debugf("intersect sets of sizes %d and %d using %s", a.Len(), b.Len(), strategy)
	return IntersectWith(a, b, compare, strategy)
}

// IntersectWith creates a lazy intersection of two sets, both ordered by
// compare, using the given strategy. It bypasses all heuristics, including
// the early exit for non-overlapping sets. The result does not depend on the
// strategy, only the cost of computing it does.
func IntersectWith[T any](a, b OrderedSet[T], compare func(a, b T) int, strategy Strategy) *Intersection[T] {
	if compare == nil {
		panic(ErrNilCompare)
	}
	if strategy != Stitch && strategy != Search {
		panic(fmt.Sprintf("sets: unknown intersection strategy %s", strategy))
	}
	x := &Intersection[T]{
		strategy: strategy,
		cmp:      compare,
	}
	if strategy == Stitch {
		x.stitch = stitchState[T]{
			a:     a.Cursor(),
			b:     b.Cursor(),
			aLeft: a.Len(),
			bLeft: b.Len(),
		}
		return x
	}
	small, large := a, b
	if small.Len() > large.Len() {
		small, large = large, small
	}
	x.search = searchState[T]{
		small:     small.Cursor(),
		large:     large.Cursor(),
		smallLeft: small.Len(),
	}
	return x
}

// disjoint reports whether a and b cannot have common elements, judging from
// sizes and, where available, from their extreme elements.
func disjoint[T any](a, b OrderedSet[T], compare func(a, b T) int) bool {
	if a.Len() == 0 || b.Len() == 0 {
		return true
	}
	ba, ok := a.(Bounded[T])
	if !ok {
		return false
	}
	bb, ok := b.(Bounded[T])
	if !ok {
		return false
	}
	aMin, _ := ba.Min()
	aMax, _ := ba.Max()
	bMin, _ := bb.Min()
	bMax, _ := bb.Max()
	return compare(aMax, bMin) < 0 || compare(bMax, aMin) < 0
}

// Strategy returns the strategy chosen at construction.
func (x *Intersection[T]) Strategy() Strategy {
	return x.strategy
}

// Stats returns the work counters accumulated so far.
func (x *Intersection[T]) Stats() Stats {
	return x.stats
}

// Next returns the next common element. When the intersection is exhausted,
// Next returns false, and keeps doing so on every further call.
func (x *Intersection[T]) Next() (v T, ok bool) {
	if x.done {
		return v, false
	}
	switch x.strategy {
	case Stitch:
		v, ok = x.nextStitch()
	default:
		v, ok = x.nextSearch()
	}
	if !ok {
		x.finish()
	}
	return v, ok
}

func (x *Intersection[T]) nextStitch() (v T, ok bool) {
	st := &x.stitch
	a, ok := x.advance(st.a, &st.aLeft)
	if !ok {
		return v, false
	}
	b, ok := x.advance(st.b, &st.bLeft)
	if !ok {
		return v, false
	}
	for {
		x.stats.Compares++
		switch c := x.cmp(a, b); {
		case c < 0:
			if a, ok = x.advance(st.a, &st.aLeft); !ok {
				return v, false
			}
		case c > 0:
			if b, ok = x.advance(st.b, &st.bLeft); !ok {
				return v, false
			}
		default:
			return a, true
		}
	}
}

func (x *Intersection[T]) nextSearch() (v T, ok bool) {
	se := &x.search
	for {
		s, ok := x.advance(se.small, &se.smallLeft)
		if !ok {
			return v, false
		}
		x.stats.Seeks++
		l, ok := se.large.Seek(s)
		if !ok {
			return v, false
		}
		x.stats.Compares++
		if x.cmp(l, s) == 0 {
			return s, true
		}
	}
}

func (x *Intersection[T]) advance(c Cursor[T], left *int) (T, bool) {
	x.stats.Advances++
	v, ok := c.Next()
	if ok && *left > 0 {
		*left--
	}
	return v, ok
}

// finish releases the operand cursors. From here on the intersection is
// exhausted.
func (x *Intersection[T]) finish() {
	x.done = true
	x.stitch = stitchState[T]{}
	x.search = searchState[T]{}
}

// SizeHint returns bounds on the number of elements still to come.
func (x *Intersection[T]) SizeHint() (lower, upper int) {
	if x.done {
		return 0, 0
	}
	if x.strategy == Stitch {
		return 0, min(x.stitch.aLeft, x.stitch.bLeft)
	}
	return 0, x.search.smallLeft
}

// Count drains the intersection and returns the number of elements it
// produced.
func (x *Intersection[T]) Count() int {
	n := 0
	for _, ok := x.Next(); ok; _, ok = x.Next() {
		n++
	}
	return n
}

// Collect drains the intersection into an ascending slice.
func (x *Intersection[T]) Collect() []T {
	_, upper := x.SizeHint()
	result := make([]T, 0, min(upper, 64))
	for v, ok := x.Next(); ok; v, ok = x.Next() {
		result = append(result, v)
	}
	return result
}

// All returns an iterator over the remaining elements of the intersection.
// Breaking out of a range loop leaves the intersection where it stopped.
func (x *Intersection[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for v, ok := x.Next(); ok; v, ok = x.Next() {
			if !yield(v) {
				return
			}
		}
	}
}
