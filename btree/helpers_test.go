package btree

import (
	"testing"
)

// num is a test item, ordered numerically.
type num int

type numSummary struct {
	Count int
	Sum   int
	Max   int
}

func (n num) Summary() numSummary {
	return numSummary{Count: 1, Sum: int(n), Max: int(n)}
}

type numMonoid struct{}

func (numMonoid) Zero() numSummary { return numSummary{} }

func (numMonoid) Add(left, right numSummary) numSummary {
	if right.Count == 0 {
		return left
	}
	if left.Count == 0 {
		return right
	}
	return numSummary{
		Count: left.Count + right.Count,
		Sum:   left.Sum + right.Sum,
		Max:   right.Max,
	}
}

func compareNums(a, b num) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func numConfig(degree int) Config[num, numSummary] {
	return Config[num, numSummary]{
		Compare: compareNums,
		Monoid:  numMonoid{},
		Degree:  degree,
	}
}

func makeNumTree(t testing.TB) *Tree[num, numSummary] {
	t.Helper()
	tree, err := New(numConfig(0))
	if err != nil {
		t.Fatalf("failed to create tree: %v", err)
	}
	return tree
}

// buildNumTree inserts the given values one by one.
func buildNumTree(t testing.TB, values ...int) *Tree[num, numSummary] {
	t.Helper()
	tree := makeNumTree(t)
	for _, v := range values {
		tree, _ = tree.Insert(num(v))
	}
	return tree
}

// loadNumTree bulk-loads ascending values into a tree of the given degree.
func loadNumTree(t testing.TB, degree int, values ...int) *Tree[num, numSummary] {
	t.Helper()
	tree, err := Build(numConfig(degree), nums(values...))
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}
	return tree
}

// seq returns from, from+step, ... with n elements.
func seq(from, step, n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = from + i*step
	}
	return out
}

func nums(values ...int) []num {
	out := make([]num, len(values))
	for i, v := range values {
		out[i] = num(v)
	}
	return out
}

func collectNums(tree *Tree[num, numSummary]) []int {
	var out []int
	for item := range tree.All() {
		out = append(out, int(item))
	}
	return out
}

func assertNums(t *testing.T, got, want []int) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("mismatch at %d: got %d want %d", i, got[i], want[i])
		}
	}
}

func assertValid(t *testing.T, tree *Tree[num, numSummary]) {
	t.Helper()
	if err := tree.Check(); err != nil {
		t.Fatalf("tree invariants failed: %v", err)
	}
}
