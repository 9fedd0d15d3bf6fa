package list

import (
	"iter"

	"github.com/sirkon/deepequal"
)

// EqualFn reports whether two values are equivalent. Contains, IndexOf and Remove use it to match elements.
type EqualFn[T any] func(a, b T) bool

// Option configures a DoubleLinkedList during construction.
type Option[T any] func(l *DoubleLinkedList[T])

// WithEqual overrides the equality used to match elements. A nil function keeps the current one.
func WithEqual[T any](equal EqualFn[T]) Option[T] {
	return func(l *DoubleLinkedList[T]) {
		if equal != nil {
			l.equal = equal
		}
	}
}

// WithValues appends every value produced by `seq` to the list, in order.
func WithValues[T any](seq iter.Seq[T]) Option[T] {
	return func(l *DoubleLinkedList[T]) {
		if seq == nil {
			return
		}
		for v := range seq {
			l.Add(v)
		}
	}
}

// comparableEqual is the equality of lists whose element type supports ==.
func comparableEqual[T comparable](a, b T) bool {
	return a == b
}

// structuralEqual is used when no equality was configured, e.g. on a zero value list.
func structuralEqual[T any](a, b T) bool {
	return deepequal.Equal(a, b)
}
