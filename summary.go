package sets

// entry is the leaf item of a set's tree.
type entry[T any] struct {
	value T
}

func (e entry[T]) Summary() span[T] {
	return keyOf(e.value)
}

// span summarizes a run of ascending elements. The zero span is empty.
type span[T any] struct {
	count    int
	min, max T
}

func keyOf[T any](v T) span[T] {
	return span[T]{count: 1, min: v, max: v}
}

// spanMonoid aggregates spans. As the elements of a set are ascending, the
// left operand holds the minimum and the right operand holds the maximum.
type spanMonoid[T any] struct{}

func (spanMonoid[T]) Zero() span[T] {
	return span[T]{}
}

func (spanMonoid[T]) Add(left, right span[T]) span[T] {
	if right.count == 0 {
		return left
	}
	if left.count == 0 {
		return right
	}
	return span[T]{
		count: left.count + right.count,
		min:   left.min,
		max:   right.max,
	}
}
