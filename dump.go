package sets

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// Dump writes the tree structure underlying s to w, for debugging purposes.
// Output is colored if w is a terminal.
func (s *Set[T]) Dump(w io.Writer) error {
	colored := false
	if f, ok := w.(*os.File); ok {
		colored = term.IsTerminal(int(f.Fd()))
	}
	return s.tree.Dump(w, func(e entry[T]) string {
		return fmt.Sprint(e.value)
	}, colored)
}

// ToDot writes the tree structure underlying s to w in Graphviz DOT format.
func (s *Set[T]) ToDot(w io.Writer) error {
	return s.tree.ToDot(w, func(e entry[T]) string {
		return fmt.Sprint(e.value)
	})
}
