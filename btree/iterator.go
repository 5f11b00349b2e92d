package btree

import "slices"

type iterState uint8

const (
	iterFresh iterState = iota
	iterActive
	iterDone
)

type iterFrame[I SummarizedItem[S], S any] struct {
	node *innerNode[I, S]
	slot int // child currently descended into
}

// Iterator walks the items of a tree in ascending order and supports
// forward seeks.
//
// An iterator captures the root of the tree it was created from. As trees are
// persistent, later edits (which produce new trees) are not visible to it.
//
// Usage follows the Next/Item pattern:
//
//	it := NewIterator(tree)
//	for it.Next() {
//		item := it.Item()
//		...
//	}
//
// Next must be called before Item, Seek may be called at any time. Once
// exhausted, an iterator stays exhausted. Iterators may be abandoned at any
// time.
type Iterator[I SummarizedItem[S], S any] struct {
	cmp   func(a, b I) int
	root  treeNode[I, S]
	state iterState
	stack []iterFrame[I, S]
	leaf  *leafNode[I, S]
	pos   int // position of the current item in leaf
}

// NewIterator creates an iterator over tree, positioned before the first item.
func NewIterator[I SummarizedItem[S], S any](tree *Tree[I, S]) *Iterator[I, S] {
	return &Iterator[I, S]{
		cmp:  tree.cfg.Compare,
		root: tree.root,
	}
}

// Next moves to the next item and reports whether there is one.
func (it *Iterator[I, S]) Next() bool {
	switch it.state {
	case iterFresh:
		if it.root == nil {
			it.finish()
			return false
		}
		it.state = iterActive
		it.descend(it.root, nil)
		return true
	case iterActive:
		if it.pos++; it.pos < len(it.leaf.items) {
			return true
		}
		return it.climb(nil)
	}
	return false
}

// Seek moves forward to the first item not less than key. If the current
// item already is not less than key, the iterator does not move. Seek
// reports whether such an item exists; if not, the iterator is exhausted.
//
// A seek climbs only as far up as needed to find a subtree reaching key,
// therefore its cost is logarithmic in the distance skipped.
func (it *Iterator[I, S]) Seek(key I) bool {
	switch it.state {
	case iterFresh:
		if it.root == nil || it.cmp(it.root.lastItem(), key) < 0 {
			it.finish()
			return false
		}
		it.state = iterActive
		it.descend(it.root, &key)
		return true
	case iterActive:
		if it.cmp(it.leaf.items[it.pos], key) >= 0 {
			return true
		}
		if it.cmp(it.leaf.lastItem(), key) >= 0 {
			i, _ := slices.BinarySearchFunc(it.leaf.items[it.pos+1:], key, it.cmp)
			it.pos += 1 + i
			return true
		}
		return it.climb(&key)
	}
	return false
}

// Item returns the current item. It must only be called after Next or Seek
// returned true.
func (it *Iterator[I, S]) Item() I {
	assert(it.state == iterActive, "Item called on inactive iterator")
	return it.leaf.items[it.pos]
}

// Done reports whether the iterator is exhausted.
func (it *Iterator[I, S]) Done() bool {
	return it.state == iterDone
}

// descend pushes frames from n down to a leaf. With a key, it follows the
// first child reaching key, which has to exist below n; without, it follows
// the leftmost child.
func (it *Iterator[I, S]) descend(n treeNode[I, S], key *I) {
	for !n.isLeaf() {
		inner := n.(*innerNode[I, S])
		slot := 0
		if key != nil {
			slot, _ = slices.BinarySearchFunc(inner.children, *key, it.reaches)
		}
		it.stack = append(it.stack, iterFrame[I, S]{node: inner, slot: slot})
		n = inner.children[slot]
	}
	it.leaf = n.(*leafNode[I, S])
	it.pos = 0
	if key != nil {
		it.pos, _ = slices.BinarySearchFunc(it.leaf.items, *key, it.cmp)
	}
}

// climb pops frames until a frame has a following child reaching key (any
// following child, if key is nil), then descends into it.
func (it *Iterator[I, S]) climb(key *I) bool {
	for len(it.stack) > 0 {
		top := &it.stack[len(it.stack)-1]
		next := top.slot + 1
		if key != nil && next < len(top.node.children) {
			i, _ := slices.BinarySearchFunc(top.node.children[next:], *key, it.reaches)
			next += i
		}
		if next < len(top.node.children) {
			top.slot = next
			it.descend(top.node.children[next], key)
			return true
		}
		it.stack = it.stack[:len(it.stack)-1]
	}
	it.finish()
	return false
}

func (it *Iterator[I, S]) reaches(child treeNode[I, S], key I) int {
	return it.cmp(child.lastItem(), key)
}

func (it *Iterator[I, S]) finish() {
	it.state = iterDone
	it.stack = nil
	it.leaf = nil
	it.pos = 0
}
