package btree

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestNewRejectsInvalidConfig(t *testing.T) {
	cases := []struct {
		name string
		cfg  Config[num, numSummary]
	}{
		{"missing compare", Config[num, numSummary]{Monoid: numMonoid{}}},
		{"missing monoid", Config[num, numSummary]{Compare: compareNums}},
		{"degree too small", Config[num, numSummary]{Compare: compareNums, Monoid: numMonoid{}, Degree: 3}},
		{"min fill too large", Config[num, numSummary]{Compare: compareNums, Monoid: numMonoid{}, Degree: 8, MinFill: 5}},
		{"min fill too small", Config[num, numSummary]{Compare: compareNums, Monoid: numMonoid{}, Degree: 8, MinFill: 1}},
	}
	for _, c := range cases {
		_, err := New(c.cfg)
		if !errors.Is(err, ErrInvalidConfig) {
			t.Fatalf("%s: expected ErrInvalidConfig, got %v", c.name, err)
		}
	}
}

func TestNewNormalizesConfig(t *testing.T) {
	tree := makeNumTree(t)
	if tree.cfg.Degree != DefaultDegree || tree.cfg.MinFill != DefaultMinFill {
		t.Fatalf("expected default degree/minFill, got %d/%d", tree.cfg.Degree, tree.cfg.MinFill)
	}
	tree, err := New(numConfig(9))
	if err != nil {
		t.Fatal(err)
	}
	if tree.cfg.MinFill != 4 {
		t.Fatalf("expected minFill 4 for degree 9, got %d", tree.cfg.MinFill)
	}
}

func TestInsertAndGet(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	values := rng.Perm(500)
	tree := buildNumTree(t, values...)
	assertValid(t, tree)
	if tree.Len() != 500 {
		t.Fatalf("expected 500 items, have %d", tree.Len())
	}
	assertNums(t, collectNums(tree), seq(0, 1, 500))
	for _, v := range []int{0, 17, 499} {
		if item, ok := tree.Get(num(v)); !ok || int(item) != v {
			t.Fatalf("expected to find %d, got %d/%v", v, item, ok)
		}
	}
	if _, ok := tree.Get(500); ok {
		t.Fatalf("did not expect to find 500")
	}
	if _, ok := makeNumTree(t).Get(1); ok {
		t.Fatalf("did not expect to find anything in an empty tree")
	}
}

func TestInsertDuplicateReturnsReceiver(t *testing.T) {
	tree := buildNumTree(t, seq(0, 2, 100)...)
	same, inserted := tree.Insert(42)
	if inserted || same != tree {
		t.Fatalf("expected duplicate insert to return the receiver unchanged")
	}
}

func TestInsertKeepsReceiverUnchanged(t *testing.T) {
	before := buildNumTree(t, seq(0, 2, 100)...)
	after, inserted := before.Insert(51)
	if !inserted {
		t.Fatalf("expected 51 to be inserted")
	}
	if before.Len() != 100 || after.Len() != 101 {
		t.Fatalf("unexpected lengths %d and %d", before.Len(), after.Len())
	}
	if _, ok := before.Get(51); ok {
		t.Fatalf("receiver must not see the inserted item")
	}
	assertValid(t, before)
	assertValid(t, after)
}

func TestInsertGrowsHeight(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sets.btree")
	defer teardown()
	//
	tree, _ := New(numConfig(4))
	for i := 0; i < 1000; i++ {
		tree, _ = tree.Insert(num(i))
	}
	if tree.Height() < 5 {
		t.Fatalf("expected a deep tree for degree 4, height is %d", tree.Height())
	}
	assertValid(t, tree)
	assertNums(t, collectNums(tree), seq(0, 1, 1000))
}

func TestDeleteRebalances(t *testing.T) {
	tree := loadNumTree(t, 4, seq(0, 1, 100)...)
	for v := 0; v < 100; v += 2 {
		var deleted bool
		tree, deleted = tree.Delete(num(v))
		if !deleted {
			t.Fatalf("expected %d to be deleted", v)
		}
		assertValid(t, tree)
	}
	assertNums(t, collectNums(tree), seq(1, 2, 50))
}

func TestDeleteMissingReturnsReceiver(t *testing.T) {
	tree := buildNumTree(t, seq(0, 2, 50)...)
	for _, v := range []int{-1, 3, 99, 1000} {
		same, deleted := tree.Delete(num(v))
		if deleted || same != tree {
			t.Fatalf("expected delete of missing %d to return the receiver", v)
		}
	}
}

func TestDeleteAllItems(t *testing.T) {
	tree := loadNumTree(t, 4, seq(0, 1, 60)...)
	rng := rand.New(rand.NewSource(5))
	for _, v := range rng.Perm(60) {
		tree, _ = tree.Delete(num(v))
		assertValid(t, tree)
	}
	if !tree.IsEmpty() || tree.Height() != 0 || tree.Len() != 0 {
		t.Fatalf("expected empty tree, have %d items at height %d", tree.Len(), tree.Height())
	}
}

func TestBuildShapes(t *testing.T) {
	for n := 0; n <= 200; n++ {
		tree := loadNumTree(t, 4, seq(0, 3, n)...)
		assertValid(t, tree)
		if tree.Len() != n {
			t.Fatalf("n=%d: tree has %d items", n, tree.Len())
		}
	}
	tree := loadNumTree(t, 0, seq(0, 1, 10_000)...)
	assertValid(t, tree)
	assertNums(t, collectNums(tree), seq(0, 1, 10_000))
}

func TestBuildRejectsUnordered(t *testing.T) {
	for _, values := range [][]int{{1, 1}, {1, 3, 2}} {
		_, err := Build(numConfig(0), nums(values...))
		if !errors.Is(err, ErrNotOrdered) {
			t.Fatalf("expected ErrNotOrdered for %v, got %v", values, err)
		}
	}
}

func TestSummaryAggregates(t *testing.T) {
	tree := buildNumTree(t, seq(1, 1, 100)...)
	s := tree.Summary()
	if s.Count != 100 || s.Sum != 5050 || s.Max != 100 {
		t.Fatalf("unexpected summary %+v", s)
	}
	if makeNumTree(t).Summary() != (numSummary{}) {
		t.Fatalf("expected zero summary for empty tree")
	}
}

func TestAtAndRank(t *testing.T) {
	tree := loadNumTree(t, 4, seq(0, 10, 300)...)
	for i := 0; i < 300; i += 7 {
		item, err := tree.At(i)
		if err != nil || int(item) != 10*i {
			t.Fatalf("At(%d) = %d, %v", i, item, err)
		}
	}
	if _, err := tree.At(300); !errors.Is(err, ErrIndexOutOfBounds) {
		t.Fatalf("expected ErrIndexOutOfBounds, got %v", err)
	}
	if _, err := tree.At(-1); !errors.Is(err, ErrIndexOutOfBounds) {
		t.Fatalf("expected ErrIndexOutOfBounds, got %v", err)
	}
	cases := []struct{ key, rank int }{
		{-5, 0}, {0, 0}, {1, 1}, {10, 1}, {15, 2}, {2990, 299}, {2991, 300}, {5000, 300},
	}
	for _, c := range cases {
		if r := tree.Rank(num(c.key)); r != c.rank {
			t.Errorf("Rank(%d) = %d, expected %d", c.key, r, c.rank)
		}
	}
}

func TestSplit(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sets.btree")
	defer teardown()
	//
	tree := loadNumTree(t, 4, seq(0, 2, 200)...)
	for _, key := range []int{-1, 0, 1, 2, 77, 200, 397, 398, 399, 1000} {
		left, right := tree.Split(num(key))
		assertValid(t, left)
		assertValid(t, right)
		want := tree.Rank(num(key))
		if left.Len() != want || right.Len() != 200-want {
			t.Fatalf("split at %d: sizes %d/%d, expected %d/%d", key, left.Len(), right.Len(), want, 200-want)
		}
		for item := range left.All() {
			if int(item) >= key {
				t.Fatalf("split at %d: left contains %d", key, item)
			}
		}
		for item := range right.All() {
			if int(item) < key {
				t.Fatalf("split at %d: right contains %d", key, item)
			}
		}
	}
	assertNums(t, collectNums(tree), seq(0, 2, 200))
}

func TestJoinDifferentHeights(t *testing.T) {
	small := loadNumTree(t, 4, seq(0, 1, 5)...)
	large := loadNumTree(t, 4, seq(100, 1, 900)...)
	if small.Height() >= large.Height() {
		t.Fatalf("test needs trees of different heights")
	}
	joined, err := small.Join(large)
	if err != nil {
		t.Fatal(err)
	}
	assertValid(t, joined)
	assertNums(t, collectNums(joined), append(seq(0, 1, 5), seq(100, 1, 900)...))
	low := loadNumTree(t, 4, seq(0, 1, 900)...)
	high := loadNumTree(t, 4, seq(1000, 1, 3)...)
	joined, err = low.Join(high)
	if err != nil {
		t.Fatal(err)
	}
	assertValid(t, joined)
	if joined.Len() != 903 {
		t.Fatalf("expected 903 items, have %d", joined.Len())
	}
}

func TestJoinWithEmpty(t *testing.T) {
	tree := buildNumTree(t, 1, 2, 3)
	empty := makeNumTree(t)
	if j, _ := tree.Join(empty); j.Len() != 3 {
		t.Fatalf("join with empty right failed")
	}
	if j, _ := empty.Join(tree); j.Len() != 3 {
		t.Fatalf("join with empty left failed")
	}
}

func TestJoinRejectsOverlap(t *testing.T) {
	a := buildNumTree(t, 1, 5, 9)
	b := buildNumTree(t, 9, 10)
	if _, err := a.Join(b); !errors.Is(err, ErrNotOrdered) {
		t.Fatalf("expected ErrNotOrdered, got %v", err)
	}
}

func TestDeleteRange(t *testing.T) {
	tree := loadNumTree(t, 4, seq(0, 1, 300)...)
	out, removed := tree.DeleteRange(100, 200)
	if removed != 100 {
		t.Fatalf("expected 100 items removed, got %d", removed)
	}
	assertValid(t, out)
	assertNums(t, collectNums(out), append(seq(0, 1, 100), seq(200, 1, 100)...))
	if same, n := out.DeleteRange(120, 180); n != 0 || same != out {
		t.Fatalf("expected empty range to return the receiver")
	}
	if same, n := out.DeleteRange(50, 10); n != 0 || same != out {
		t.Fatalf("expected inverted range to return the receiver")
	}
}

func TestAllStopsEarly(t *testing.T) {
	tree := buildNumTree(t, seq(0, 1, 100)...)
	count := 0
	for item := range tree.All() {
		if item == 10 {
			break
		}
		count++
	}
	if count != 10 {
		t.Fatalf("expected 10 items before stopping, got %d", count)
	}
}

func TestCheckDetectsCorruption(t *testing.T) {
	tree := loadNumTree(t, 4, seq(0, 1, 50)...)
	root := tree.root.(*innerNode[num, numSummary])
	broken := &Tree[num, numSummary]{cfg: tree.cfg, root: root, height: tree.height + 1}
	if err := broken.Check(); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected height mismatch to be detected, got %v", err)
	}
	swapped := &leafNode[num, numSummary]{items: nums(2, 1)}
	unordered := &Tree[num, numSummary]{cfg: tree.cfg, root: swapped, height: 1}
	if err := unordered.Check(); !errors.Is(err, ErrNotOrdered) {
		t.Fatalf("expected unordered leaf to be detected, got %v", err)
	}
}
