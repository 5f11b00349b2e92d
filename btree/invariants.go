package btree

import "fmt"

// Check validates structural tree invariants: bounded node widths, uniform
// leaf depth, strictly ascending items, and correct cached sizes and
// largest items. It is meant to be used in tests.
//
// Minimum occupancy is not checked, as split and join may leave underfull
// nodes along their seams.
func (t *Tree[I, S]) Check() error {
	if t == nil {
		return fmt.Errorf("%w: nil tree", ErrInvalidConfig)
	}
	if t.root == nil {
		if t.height != 0 {
			return fmt.Errorf("%w: empty tree must have height 0", ErrInvalidConfig)
		}
		return nil
	}
	if inner, ok := t.root.(*innerNode[I, S]); ok && len(inner.children) < 2 {
		return fmt.Errorf("%w: inner root must have at least 2 children", ErrInvalidConfig)
	}
	c := checker[I, S]{t: t}
	_, height, err := c.check(t.root)
	if err != nil {
		return err
	}
	if height != t.height {
		return fmt.Errorf("%w: height mismatch (%d != %d)", ErrInvalidConfig, height, t.height)
	}
	return nil
}

type checker[I SummarizedItem[S], S any] struct {
	t       *Tree[I, S]
	prev    I
	visited int
}

func (c *checker[I, S]) check(n treeNode[I, S]) (items int, height int, err error) {
	if n == nil {
		return 0, 0, fmt.Errorf("%w: nil node", ErrInvalidConfig)
	}
	width := c.t.width(n)
	if width == 0 || width > c.t.cfg.Degree {
		return 0, 0, fmt.Errorf("%w: node width %d outside [1,%d]", ErrInvalidConfig, width, c.t.cfg.Degree)
	}
	if n.isLeaf() {
		for _, item := range n.(*leafNode[I, S]).items {
			if c.visited > 0 && c.t.cfg.Compare(c.prev, item) >= 0 {
				return 0, 0, fmt.Errorf("%w: at position %d", ErrNotOrdered, c.visited)
			}
			c.prev = item
			c.visited++
		}
		return width, 1, nil
	}
	inner := n.(*innerNode[I, S])
	var total, childHeight int
	for i, child := range inner.children {
		cItems, cHeight, cErr := c.check(child)
		if cErr != nil {
			return 0, 0, cErr
		}
		if i > 0 && cHeight != childHeight {
			return 0, 0, fmt.Errorf("%w: non-uniform subtree heights", ErrInvalidConfig)
		}
		total, childHeight = total+cItems, cHeight
	}
	if total != inner.size {
		return 0, 0, fmt.Errorf("%w: cached size mismatch (%d != %d)", ErrInvalidConfig, inner.size, total)
	}
	if c.t.cfg.Compare(inner.last, c.prev) != 0 {
		return 0, 0, fmt.Errorf("%w: cached largest item is stale", ErrInvalidConfig)
	}
	return total, childHeight + 1, nil
}
