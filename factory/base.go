package factory

import "sync/atomic"

// BaseFactory numbers every value it builds. The first value gets sequence 1.
type BaseFactory[T any] struct {
	seq     atomic.Int64
	Builder func(seq int64) T
}

// NewBaseFactory creates a BaseFactory around builder.
func NewBaseFactory[T any](builder func(seq int64) T) *BaseFactory[T] {
	return &BaseFactory[T]{Builder: builder}
}

func (f *BaseFactory[T]) nextSeq() int64 {
	return f.seq.Add(1)
}

// Build creates the next value.
func (f *BaseFactory[T]) Build() T {
	return f.Builder(f.nextSeq())
}

// BuildMany creates n values in sequence order. n <= 0 yields an empty slice.
func (f *BaseFactory[T]) BuildMany(n int) []T {
	if n <= 0 {
		return []T{}
	}

	result := make([]T, 0, n)
	for i := 0; i < n; i++ {
		result = append(result, f.Build())
	}
	return result
}

// Reset restarts the sequence at 1.
func (f *BaseFactory[T]) Reset() {
	f.seq.Store(0)
}
