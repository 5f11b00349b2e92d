package btree

import (
	"fmt"
	"io"
	"strings"
)

// ToDot writes the internal structure of the tree in Graphviz DOT format
// to w (for debugging purposes). Leaves are labeled with their items, using
// label; inner nodes with the number of items below them.
func (t *Tree[I, S]) ToDot(w io.Writer, label func(I) string) error {
	if label == nil {
		label = func(item I) string { return fmt.Sprintf("%v", item) }
	}
	var nodelist, edgelist strings.Builder
	ids := 0
	var walk func(n treeNode[I, S]) int
	walk = func(n treeNode[I, S]) int {
		ids++
		id := ids
		if n.isLeaf() {
			leaf := n.(*leafNode[I, S])
			labels := make([]string, len(leaf.items))
			for i, item := range leaf.items {
				labels[i] = dotEscape(label(item))
			}
			fmt.Fprintf(&nodelist, "\"%d\" [label=\"%s\" %s];\n", id, strings.Join(labels, " | "),
				dotStyle(true))
			return id
		}
		inner := n.(*innerNode[I, S])
		fmt.Fprintf(&nodelist, "\"%d\" [label=%d %s];\n", id, inner.size, dotStyle(false))
		for _, child := range inner.children {
			cid := walk(child)
			fmt.Fprintf(&edgelist, "\"%d\" -> \"%d\";\n", id, cid)
		}
		return id
	}
	if t != nil && t.root != nil {
		walk(t.root)
	}
	var out strings.Builder
	out.WriteString("strict digraph {\n")
	out.WriteString("\tnode [fontname=Arial,fontsize=12];\n")
	out.WriteString(nodelist.String())
	out.WriteString(edgelist.String())
	out.WriteString("}\n")
	_, err := io.WriteString(w, out.String())
	return err
}

func dotStyle(isleaf bool) string {
	s := ",style=filled"
	if isleaf {
		s += ",shape=record"
	} else {
		s += ",color=black,fillcolor=\"#a3d7e4\",shape=circle"
	}
	return s
}

func dotEscape(s string) string {
	return strings.NewReplacer(`"`, `\"`, `|`, `\|`, `{`, `\{`, `}`, `\}`, `<`, `\<`, `>`, `\>`).Replace(s)
}
