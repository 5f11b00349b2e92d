package btree

import "slices"

// Delete removes the item equal to key. It returns the resulting tree and
// whether an item has been removed; if not, the receiver itself is returned.
//
// Delete descends once from the root and copies the nodes along the path.
// A child left underfull borrows from or merges with an adjacent sibling.
func (t *Tree[I, S]) Delete(key I) (*Tree[I, S], bool) {
	if t.root == nil {
		return t, false
	}
	root, deleted := t.delete(t.root, key)
	if !deleted {
		return t, false
	}
	return t.with(root, t.height), true
}

// delete returns the node replacing n, which is nil if n has become empty.
func (t *Tree[I, S]) delete(n treeNode[I, S], key I) (treeNode[I, S], bool) {
	if n.isLeaf() {
		leaf := n.(*leafNode[I, S])
		i, found := t.search(leaf, key)
		if !found {
			return n, false
		}
		return t.newLeaf(slices.Delete(slices.Clone(leaf.items), i, i+1)), true
	}
	inner := n.(*innerNode[I, S])
	slot := t.slotFor(inner, key)
	if slot == len(inner.children) {
		return n, false
	}
	child, deleted := t.delete(inner.children[slot], key)
	if !deleted {
		return n, false
	}
	children := slices.Clone(inner.children)
	if child == nil {
		children = slices.Delete(children, slot, slot+1)
	} else {
		children[slot] = child
		children = t.rebalance(children, slot)
	}
	return t.newInner(children), true
}

// rebalance fixes an underfull child at slot by joining it with an adjacent
// sibling. Depending on their combined width, the two siblings either merge
// or share their entries evenly.
func (t *Tree[I, S]) rebalance(children []treeNode[I, S], slot int) []treeNode[I, S] {
	if len(children) < 2 || !t.underfull(children[slot]) {
		return children
	}
	if slot == len(children)-1 {
		slot--
	}
	left, right := t.joinSiblings(children[slot], children[slot+1])
	if right == nil {
		return slices.Replace(children, slot, slot+2, left)
	}
	return slices.Replace(children, slot, slot+2, left, right)
}

// width is the number of entries of a node: items for leaves, children for
// inner nodes.
func (t *Tree[I, S]) width(n treeNode[I, S]) int {
	if n.isLeaf() {
		return len(n.(*leafNode[I, S]).items)
	}
	return len(n.(*innerNode[I, S]).children)
}

func (t *Tree[I, S]) underfull(n treeNode[I, S]) bool {
	return t.width(n) < t.cfg.MinFill
}
