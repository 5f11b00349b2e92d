package btree

import (
	"fmt"
	"iter"
)

// Tree is a persistent, ordered B+ sum-tree.
//
// I is the leaf item type, S is the summary type aggregated through the
// tree. The item type is tied to summary type via SummarizedItem[S]. Items
// are kept in strictly ascending order as defined by Config.Compare, and
// every inner node caches its item count and its largest item, which route
// key-directed descents.
//
// A Tree is never modified after construction; all edits return a new tree
// sharing untouched subtrees with the receiver.
type Tree[I SummarizedItem[S], S any] struct {
	cfg    Config[I, S]
	root   treeNode[I, S]
	height int // 0 means empty tree
}

// New creates an empty tree with validated configuration.
func New[I SummarizedItem[S], S any](cfg Config[I, S]) (*Tree[I, S], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &Tree[I, S]{cfg: cfg.normalized()}, nil
}

// Build creates a tree from strictly ascending items. Leaves and inner nodes
// are packed bottom-up, which is considerably faster than inserting items
// one by one. If items are not strictly ascending, Build returns
// ErrNotOrdered.
func Build[I SummarizedItem[S], S any](cfg Config[I, S], items []I) (*Tree[I, S], error) {
	t, err := New(cfg)
	if err != nil {
		return nil, err
	}
	for i := 1; i < len(items); i++ {
		if t.cfg.Compare(items[i-1], items[i]) >= 0 {
			return nil, fmt.Errorf("%w: at positions %d and %d", ErrNotOrdered, i-1, i)
		}
	}
	if len(items) == 0 {
		return t, nil
	}
	level, height := pack(t, items, t.newLeaf), 1
	for len(level) > 1 {
		level, height = pack(t, level, t.newInner), height+1
	}
	tracer().Debugf("btree build of %d items, height %d", len(items), height)
	return t.with(level[0], height), nil
}

// pack groups entries into as few nodes as the degree allows, spreading
// entries evenly.
func pack[I SummarizedItem[S], S any, E any](t *Tree[I, S], entries []E,
	build func([]E) treeNode[I, S]) []treeNode[I, S] {
	//
	n := (len(entries) + t.cfg.Degree - 1) / t.cfg.Degree
	nodes := make([]treeNode[I, S], 0, n)
	for i := range n {
		from, to := i*len(entries)/n, (i+1)*len(entries)/n
		nodes = append(nodes, build(entries[from:to]))
	}
	return nodes
}

// with returns a tree sharing t's configuration with the given root. Inner
// roots with a single child are collapsed.
func (t *Tree[I, S]) with(root treeNode[I, S], height int) *Tree[I, S] {
	for root != nil && !root.isLeaf() {
		inner := root.(*innerNode[I, S])
		if len(inner.children) > 1 {
			break
		}
		root, height = inner.children[0], height-1
	}
	if root == nil {
		height = 0
	}
	return &Tree[I, S]{cfg: t.cfg, root: root, height: height}
}

// IsEmpty reports whether the tree has no items.
func (t *Tree[I, S]) IsEmpty() bool {
	return t == nil || t.root == nil
}

// Len returns the number of items in the tree, in constant time.
func (t *Tree[I, S]) Len() int {
	if t.IsEmpty() {
		return 0
	}
	return t.root.itemCount()
}

// Height returns the tree height, where 0 means empty and 1 means a leaf root.
func (t *Tree[I, S]) Height() int {
	if t == nil {
		return 0
	}
	return t.height
}

// Summary returns the root summary, or Zero() for an empty tree.
func (t *Tree[I, S]) Summary() S {
	if t == nil {
		var zero S
		return zero
	}
	if t.root == nil {
		return t.cfg.Monoid.Zero()
	}
	return t.root.Summary()
}

// Get returns the item equal to key, if present.
func (t *Tree[I, S]) Get(key I) (item I, found bool) {
	n := t.root
	for n != nil && !n.isLeaf() {
		inner := n.(*innerNode[I, S])
		slot := t.slotFor(inner, key)
		if slot == len(inner.children) {
			return item, false
		}
		n = inner.children[slot]
	}
	if n == nil {
		return item, false
	}
	leaf := n.(*leafNode[I, S])
	if i, ok := t.search(leaf, key); ok {
		return leaf.items[i], true
	}
	return item, false
}

// At returns the item at position index, counting from the smallest item.
// Cached subtree sizes make this logarithmic.
func (t *Tree[I, S]) At(index int) (item I, err error) {
	if index < 0 || index >= t.Len() {
		return item, fmt.Errorf("%w: %d of %d", ErrIndexOutOfBounds, index, t.Len())
	}
	n := t.root
	for !n.isLeaf() {
		for _, child := range n.(*innerNode[I, S]).children {
			if index < child.itemCount() {
				n = child
				break
			}
			index -= child.itemCount()
		}
	}
	return n.(*leafNode[I, S]).items[index], nil
}

// Rank returns the number of items less than key.
func (t *Tree[I, S]) Rank(key I) int {
	rank := 0
	n := t.root
	for n != nil && !n.isLeaf() {
		inner := n.(*innerNode[I, S])
		slot := t.slotFor(inner, key)
		for _, child := range inner.children[:slot] {
			rank += child.itemCount()
		}
		if slot == len(inner.children) {
			return rank
		}
		n = inner.children[slot]
	}
	if n != nil {
		i, _ := t.search(n.(*leafNode[I, S]), key)
		rank += i
	}
	return rank
}

// All returns an iterator over all items in ascending order.
func (t *Tree[I, S]) All() iter.Seq[I] {
	return func(yield func(I) bool) {
		if !t.IsEmpty() {
			walk(t.root, yield)
		}
	}
}

func walk[I SummarizedItem[S], S any](n treeNode[I, S], yield func(I) bool) bool {
	if n.isLeaf() {
		for _, item := range n.(*leafNode[I, S]).items {
			if !yield(item) {
				return false
			}
		}
		return true
	}
	for _, child := range n.(*innerNode[I, S]).children {
		if !walk(child, yield) {
			return false
		}
	}
	return true
}
