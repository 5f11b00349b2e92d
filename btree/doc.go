/*
Package btree provides a persistent, ordered B+ sum-tree.

Items are kept in strictly ascending order, as defined by a client supplied
comparison. Leaf items carry a summary (`item.Summary()`), and summaries are
aggregated up the tree through a client supplied monoid. Every inner node
caches the number of items below it and its largest item; the latter routes
key-directed descents, the former makes positional access logarithmic.

The tree supports:
  - bulk loading of sorted items (`Build`),
  - single-descent path-copy insertion and deletion (`Insert`, `Delete`),
    with split propagation and sibling borrow/merge rebalancing,
  - lookup by key and by position (`Get`, `Rank`, `At`),
  - splitting at a key and joining of ordered trees of different heights
    (`Split`, `Join`, `DeleteRange`),
  - forward iteration with logarithmic seeks (`Iterator`),
  - structural checks, colored dumps and Graphviz output for debugging
    (`Check`, `Dump`, `ToDot`).

All mutating operations return a new tree and leave the receiver untouched.
Iterators capture the root they were created from and therefore observe a
stable snapshot.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package btree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'sets.btree'.
func tracer() tracing.Trace {
	return tracing.Select("sets.btree")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
