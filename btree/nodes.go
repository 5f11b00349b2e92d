package btree

import "slices"

// treeNode is either a *leafNode or an *innerNode. Nodes are never modified
// once they are linked into a tree, and they are never empty.
type treeNode[I SummarizedItem[S], S any] interface {
	isLeaf() bool
	Summary() S
	itemCount() int
	firstItem() I
	lastItem() I
}

type leafNode[I SummarizedItem[S], S any] struct {
	summary S
	items   []I // strictly ascending
}

func (l *leafNode[I, S]) isLeaf() bool   { return true }
func (l *leafNode[I, S]) Summary() S     { return l.summary }
func (l *leafNode[I, S]) itemCount() int { return len(l.items) }
func (l *leafNode[I, S]) firstItem() I   { return l.items[0] }
func (l *leafNode[I, S]) lastItem() I    { return l.items[len(l.items)-1] }

type innerNode[I SummarizedItem[S], S any] struct {
	summary  S
	size     int // number of items below this node
	last     I   // largest item below this node, routes key-directed descents
	children []treeNode[I, S]
}

func (n *innerNode[I, S]) isLeaf() bool   { return false }
func (n *innerNode[I, S]) Summary() S     { return n.summary }
func (n *innerNode[I, S]) itemCount() int { return n.size }
func (n *innerNode[I, S]) firstItem() I   { return n.children[0].firstItem() }
func (n *innerNode[I, S]) lastItem() I    { return n.last }

// newLeaf creates a leaf owning a private copy of items, or nil if there
// are no items.
func (t *Tree[I, S]) newLeaf(items []I) treeNode[I, S] {
	if len(items) == 0 {
		return nil
	}
	assert(len(items) <= t.cfg.Degree, "leaf exceeds degree")
	leaf := &leafNode[I, S]{
		summary: t.cfg.Monoid.Zero(),
		items:   slices.Clone(items),
	}
	for _, item := range leaf.items {
		leaf.summary = t.cfg.Monoid.Add(leaf.summary, item.Summary())
	}
	return leaf
}

// newInner creates an inner node owning a private copy of children, or nil
// if there are no children.
func (t *Tree[I, S]) newInner(children []treeNode[I, S]) treeNode[I, S] {
	if len(children) == 0 {
		return nil
	}
	assert(len(children) <= t.cfg.Degree, "inner node exceeds degree")
	inner := &innerNode[I, S]{
		summary:  t.cfg.Monoid.Zero(),
		children: slices.Clone(children),
	}
	for _, child := range inner.children {
		inner.summary = t.cfg.Monoid.Add(inner.summary, child.Summary())
		inner.size += child.itemCount()
	}
	inner.last = children[len(children)-1].lastItem()
	return inner
}

// newNodes creates one node from entries, or two if entries exceed the
// degree. E is I for leaves and treeNode[I, S] for inner nodes.
func newNodes[I SummarizedItem[S], S any, E any](t *Tree[I, S], entries []E,
	build func([]E) treeNode[I, S]) (treeNode[I, S], treeNode[I, S]) {
	//
	if len(entries) <= t.cfg.Degree {
		return build(entries), nil
	}
	mid := len(entries) / 2
	return build(entries[:mid]), build(entries[mid:])
}

// slotFor returns the index of the first child whose items reach key, or
// the number of children if key is beyond all items of inner.
func (t *Tree[I, S]) slotFor(inner *innerNode[I, S], key I) int {
	slot, _ := slices.BinarySearchFunc(inner.children, key, func(child treeNode[I, S], k I) int {
		return t.cfg.Compare(child.lastItem(), k)
	})
	return slot
}

// search returns the position of the first item in leaf not less than key,
// and whether it equals key.
func (t *Tree[I, S]) search(leaf *leafNode[I, S], key I) (int, bool) {
	return slices.BinarySearchFunc(leaf.items, key, t.cfg.Compare)
}
