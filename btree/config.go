package btree

import "fmt"

const (
	// DefaultDegree is the default max fanout of inner nodes and max item count of leaves.
	DefaultDegree = 12
	// DefaultMinFill is the default lower occupancy bound of non-root nodes.
	DefaultMinFill = 6
)

// SummarizedItem ties a leaf item to its summary type at compile time.
type SummarizedItem[S any] interface {
	Summary() S
}

// SummaryMonoid defines how summaries are aggregated up the tree.
//
// For summaries s, t, u, Add should be associative:
//
//	Add(Add(s, t), u) == Add(s, Add(t, u))
//
// and Zero should be the neutral element:
//
//	Add(Zero(), s) == s == Add(s, Zero())
//
// Add need not be commutative; left always summarizes items smaller than
// the items summarized by right.
type SummaryMonoid[S any] interface {
	Zero() S
	Add(left, right S) S
}

// Config configures an ordered B+ sum-tree.
type Config[I any, S any] struct {
	// Compare orders items. It has to implement a strict total order; items
	// comparing equal are considered the same item.
	Compare func(a, b I) int
	// Monoid aggregates summaries up the tree.
	Monoid SummaryMonoid[S]
	// Degree is the max fanout of inner nodes and the max item count of leaves.
	// Zero selects DefaultDegree.
	Degree int
	// MinFill is the occupancy below which deletions rebalance a node.
	// Zero selects DefaultMinFill, or Degree/2 if Degree is set.
	MinFill int
}

func (cfg Config[I, S]) normalized() Config[I, S] {
	if cfg.Degree == 0 {
		cfg.Degree = DefaultDegree
		if cfg.MinFill == 0 {
			cfg.MinFill = DefaultMinFill
		}
	}
	if cfg.MinFill == 0 {
		cfg.MinFill = cfg.Degree / 2
	}
	return cfg
}

func (cfg Config[I, S]) validate() error {
	cfg = cfg.normalized()
	if cfg.Compare == nil {
		return fmt.Errorf("%w: compare function is required", ErrInvalidConfig)
	}
	if cfg.Monoid == nil {
		return fmt.Errorf("%w: monoid is required", ErrInvalidConfig)
	}
	if cfg.Degree < 4 {
		return fmt.Errorf("%w: degree must be >= 4, is %d", ErrInvalidConfig, cfg.Degree)
	}
	// splitting an overflowing node must leave both halves at least MinFill
	if cfg.MinFill < 2 || cfg.MinFill > (cfg.Degree+1)/2 {
		return fmt.Errorf("%w: minFill must be in [2,%d], is %d",
			ErrInvalidConfig, (cfg.Degree+1)/2, cfg.MinFill)
	}
	return nil
}
