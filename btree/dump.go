package btree

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// levelColors cycles through by tree level, root first.
var levelColors = []color.Attribute{
	color.FgBlue,
	color.FgMagenta,
	color.FgCyan,
	color.FgYellow,
}

// Dump writes an indented outline of the tree structure to w, for debugging
// purposes. Inner nodes print their item count, leaves print their items
// using label. If colored is set, each level is printed in its own color.
func (t *Tree[I, S]) Dump(w io.Writer, label func(I) string, colored bool) error {
	if t == nil || t.root == nil {
		_, err := io.WriteString(w, "(empty)\n")
		return err
	}
	if label == nil {
		label = func(item I) string { return fmt.Sprintf("%v", item) }
	}
	palette := make([]*color.Color, len(levelColors))
	for i, attr := range levelColors {
		palette[i] = color.New(attr)
		if colored {
			palette[i].EnableColor()
		} else {
			palette[i].DisableColor()
		}
	}
	return t.dumpNode(w, t.root, 0, palette, label)
}

func (t *Tree[I, S]) dumpNode(w io.Writer, n treeNode[I, S], depth int, palette []*color.Color, label func(I) string) error {
	c := palette[depth%len(palette)]
	indent := strings.Repeat("  ", depth)
	if n.isLeaf() {
		leaf := n.(*leafNode[I, S])
		labels := make([]string, len(leaf.items))
		for i, item := range leaf.items {
			labels[i] = label(item)
		}
		_, err := c.Fprintf(w, "%sleaf[%d] %s\n", indent, len(leaf.items), strings.Join(labels, " "))
		return err
	}
	inner := n.(*innerNode[I, S])
	if _, err := c.Fprintf(w, "%snode[%d] items=%d\n", indent, len(inner.children), inner.size); err != nil {
		return err
	}
	for _, child := range inner.children {
		if err := t.dumpNode(w, child, depth+1, palette, label); err != nil {
			return err
		}
	}
	return nil
}
