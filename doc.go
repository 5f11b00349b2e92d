/*
Package sets implements ordered sets and an adaptive intersection over them.

A Set keeps distinct elements in ascending order, backed by the persistent
B+ sum-tree of package btree. Every subtree summarizes its element count,
minimum and maximum, which gives O(1) cardinality and logarithmic
lower-bound searches. Cursors over a Set are forward-only and support Seek,
skipping runs of elements in time logarithmic to the distance skipped.

# Intersection

Intersect computes the intersection of two ordered sets lazily. Depending on
the sizes of its operands it either stitches both sets together, comparing
heads and advancing the smaller one (linear in the sum of both sizes), or
drives the smaller set and seeks each of its elements in the larger one
(linear in the smaller size, logarithmic in the larger one). The strategy is
chosen once, when the intersection is created; it never influences the
result.

	a := sets.Of(1, 3, 5, 7, 9)
	b := sets.Of(3, 4, 5, 6, 7)
	for x := range sets.Intersect(a, b).All() {
		fmt.Println(x) // 3, 5, 7
	}

Intersect works on any OrderedSet implementation. Besides Set, package sets
provides TidwallSet, an adapter around github.com/tidwall/btree.

Sets are persistent: cursors and intersections capture the state of a set
at the time they are created, and are not affected by later mutations.
Sets themselves are not safe for concurrent mutation.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package sets

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'sets'.
func tracer() tracing.Trace {
	return tracing.Select("sets")
}
