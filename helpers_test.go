package sets

import (
	"cmp"
	"math/rand"
	"slices"
	"testing"
)

// counter wraps cmp.Compare and counts its invocations.
type counter struct {
	calls int
}

func (c *counter) compare(a, b int) int {
	c.calls++
	return cmp.Compare(a, b)
}

// randomSets mirrors the "random" benchmark family: two sets of n1 and n2
// random elements.
func randomSets(rng *rand.Rand, n1, n2 int) (*Set[int], *Set[int]) {
	fill := func(n int) *Set[int] {
		s := New[int]()
		for s.Len() < n {
			s.Insert(rng.Int())
		}
		return s
	}
	return fill(n1), fill(n2)
}

// staggerSets mirrors the "stagger" family: n1 elements in the first set,
// n1*factor in the second, interleaved and disjoint.
func staggerSets(n1, factor int) (*Set[int], *Set[int]) {
	a, b := New[int](), New[int]()
	for i := 0; i < n1+n1*factor; i++ {
		if i%(factor+1) == 0 {
			a.Insert(i)
		} else {
			b.Insert(i)
		}
	}
	return a, b
}

// negVsPos mirrors the "neg_vs_pos" family: n1 negative and n2 positive
// elements.
func negVsPos(n1, n2 int) (*Set[int], *Set[int]) {
	neg, pos := New[int](), New[int]()
	for i := -n1; i <= -1; i++ {
		neg.Insert(i)
	}
	for i := 1; i <= n2; i++ {
		pos.Insert(i)
	}
	return neg, pos
}

func posVsNeg(n1, n2 int) (*Set[int], *Set[int]) {
	neg, pos := negVsPos(n2, n1)
	return pos, neg
}

// naiveIntersection is the reference result.
func naiveIntersection(a, b []int) []int {
	result := []int{}
	for _, x := range a {
		if _, found := slices.BinarySearch(b, x); found {
			result = append(result, x)
		}
	}
	return result
}

func rangeSet(from, to, step int) *Set[int] {
	s := New[int]()
	for i := from; i < to; i += step {
		s.Insert(i)
	}
	return s
}

func mustCheck(t *testing.T, s *Set[int]) {
	t.Helper()
	if err := s.Check(); err != nil {
		t.Fatalf("set invalid: %v", err)
	}
}

// drainCursor collects everything a cursor yields.
func drainCursor[T any](c Cursor[T]) []T {
	var result []T
	for v, ok := c.Next(); ok; v, ok = c.Next() {
		result = append(result, v)
	}
	return result
}
