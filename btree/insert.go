package btree

import "slices"

// Insert adds item to the tree unless an equal item is present. It returns
// the resulting tree and whether item has been added; if not, the receiver
// itself is returned.
//
// Insert descends once from the root, finding the position of item and
// copying the nodes along the path. Overflowing nodes are split, and splits
// propagate upwards.
func (t *Tree[I, S]) Insert(item I) (*Tree[I, S], bool) {
	if t.root == nil {
		return t.with(t.newLeaf([]I{item}), 1), true
	}
	left, right, inserted := t.insert(t.root, item)
	if !inserted {
		return t, false
	}
	if right == nil {
		return t.with(left, t.height), true
	}
	return t.with(t.newInner([]treeNode[I, S]{left, right}), t.height+1), true
}

// insert returns the node replacing n, plus a right sibling if n had to be
// split. If an item equal to item is found, n is returned unchanged.
func (t *Tree[I, S]) insert(n treeNode[I, S], item I) (left, right treeNode[I, S], inserted bool) {
	if n.isLeaf() {
		leaf := n.(*leafNode[I, S])
		i, found := t.search(leaf, item)
		if found {
			return n, nil, false
		}
		left, right = newNodes(t, slices.Insert(slices.Clip(leaf.items), i, item), t.newLeaf)
		return left, right, true
	}
	inner := n.(*innerNode[I, S])
	// items beyond the largest one go to the rightmost child
	slot := min(t.slotFor(inner, item), len(inner.children)-1)
	cl, cr, ok := t.insert(inner.children[slot], item)
	if !ok {
		return n, nil, false
	}
	children := slices.Clone(inner.children)
	children[slot] = cl
	if cr != nil {
		children = slices.Insert(children, slot+1, cr)
	}
	left, right = newNodes(t, children, t.newInner)
	return left, right, true
}
