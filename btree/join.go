package btree

import (
	"fmt"
	"slices"
)

// Join returns a tree holding the items of t followed by the items of
// other. Every item of t has to be less than every item of other, otherwise
// Join returns ErrNotOrdered.
//
// The lower tree is hung into the facing spine of the higher one, so the
// cost is logarithmic. Both trees are left unchanged.
func (t *Tree[I, S]) Join(other *Tree[I, S]) (*Tree[I, S], error) {
	if other.IsEmpty() {
		return t, nil
	}
	if t.IsEmpty() {
		return t.with(other.root, other.height), nil
	}
	if t.cfg.Compare(t.root.lastItem(), other.root.firstItem()) >= 0 {
		return nil, fmt.Errorf("%w: joined trees overlap", ErrNotOrdered)
	}
	root, height := t.join(t.root, t.height, other.root, other.height)
	return t.with(root, height), nil
}

// Split partitions the tree at key: left holds all items less than key,
// right all others. The receiver is left unchanged.
func (t *Tree[I, S]) Split(key I) (left, right *Tree[I, S]) {
	if t.root == nil {
		return t, t
	}
	l, hl, r, hr := t.split(t.root, t.height, key)
	tracer().Debugf("btree split: heights %d/%d", hl, hr)
	return t.with(l, hl), t.with(r, hr)
}

// DeleteRange removes all items x with from <= x < to. It returns the
// resulting tree and the number of items removed.
func (t *Tree[I, S]) DeleteRange(from, to I) (*Tree[I, S], int) {
	if t.root == nil || t.cfg.Compare(from, to) >= 0 {
		return t, 0
	}
	left, rest := t.Split(from)
	_, right := rest.Split(to)
	removed := t.Len() - left.Len() - right.Len()
	if removed == 0 {
		return t, 0
	}
	out, err := left.Join(right)
	assert(err == nil, "split fragments must not overlap")
	return out, removed
}

// split cuts subtree n of height h at key, returning the left and right
// fragments with their heights. Either fragment may be nil.
func (t *Tree[I, S]) split(n treeNode[I, S], h int, key I) (l treeNode[I, S], hl int, r treeNode[I, S], hr int) {
	if n.isLeaf() {
		leaf := n.(*leafNode[I, S])
		i, _ := t.search(leaf, key)
		switch i {
		case 0:
			return nil, 0, n, 1
		case len(leaf.items):
			return n, 1, nil, 0
		}
		return t.newLeaf(leaf.items[:i]), 1, t.newLeaf(leaf.items[i:]), 1
	}
	inner := n.(*innerNode[I, S])
	slot := t.slotFor(inner, key)
	if slot == len(inner.children) {
		return n, h, nil, 0
	}
	cl, chl, cr, chr := t.split(inner.children[slot], h-1, key)
	l, hl = t.join(t.newInner(inner.children[:slot]), h, cl, chl)
	r, hr = t.join(cr, chr, t.newInner(inner.children[slot+1:]), h)
	return l, hl, r, hr
}

// join concatenates subtrees a and b of heights ha and hb, where all items
// of a are less than all items of b. It returns the result and its height.
func (t *Tree[I, S]) join(a treeNode[I, S], ha int, b treeNode[I, S], hb int) (treeNode[I, S], int) {
	switch {
	case a == nil:
		return b, hb
	case b == nil:
		return a, ha
	}
	var l, r treeNode[I, S]
	switch {
	case ha == hb:
		l, r = t.joinSiblings(a, b)
	case ha > hb:
		l, r = t.joinRight(a, ha, b, hb)
	default:
		l, r = t.joinLeft(a, ha, b, hb)
	}
	h := max(ha, hb)
	if r == nil {
		return l, h
	}
	return t.newInner([]treeNode[I, S]{l, r}), h + 1
}

// joinRight hangs b into the right spine of the higher subtree a. The
// result has the height of a and is split in two if it overflows.
func (t *Tree[I, S]) joinRight(a treeNode[I, S], ha int, b treeNode[I, S], hb int) (treeNode[I, S], treeNode[I, S]) {
	inner := a.(*innerNode[I, S])
	last := len(inner.children) - 1
	var l, r treeNode[I, S]
	if ha-1 == hb {
		l, r = t.joinSiblings(inner.children[last], b)
	} else {
		l, r = t.joinRight(inner.children[last], ha-1, b, hb)
	}
	children := append(slices.Clone(inner.children[:last]), l)
	if r != nil {
		children = append(children, r)
	}
	return newNodes(t, children, t.newInner)
}

// joinLeft hangs a into the left spine of the higher subtree b.
func (t *Tree[I, S]) joinLeft(a treeNode[I, S], ha int, b treeNode[I, S], hb int) (treeNode[I, S], treeNode[I, S]) {
	inner := b.(*innerNode[I, S])
	var l, r treeNode[I, S]
	if hb-1 == ha {
		l, r = t.joinSiblings(a, inner.children[0])
	} else {
		l, r = t.joinLeft(a, ha, inner.children[0], hb-1)
	}
	children := make([]treeNode[I, S], 0, len(inner.children)+1)
	children = append(children, l)
	if r != nil {
		children = append(children, r)
	}
	children = append(children, inner.children[1:]...)
	return newNodes(t, children, t.newInner)
}

// joinSiblings combines two adjacent nodes of equal height. Healthy
// siblings too wide to merge are returned as they are; otherwise their
// entries are merged into one node or shared evenly between two.
func (t *Tree[I, S]) joinSiblings(a, b treeNode[I, S]) (treeNode[I, S], treeNode[I, S]) {
	if t.width(a)+t.width(b) > t.cfg.Degree && !t.underfull(a) && !t.underfull(b) {
		return a, b
	}
	if a.isLeaf() {
		la, lb := a.(*leafNode[I, S]), b.(*leafNode[I, S])
		return newNodes(t, slices.Concat(la.items, lb.items), t.newLeaf)
	}
	ia, ib := a.(*innerNode[I, S]), b.(*innerNode[I, S])
	return newNodes(t, slices.Concat(ia.children, ib.children), t.newInner)
}
