// Package list implements a generic doubly linked list with positional access.
//
// DoubleLinkedList keeps its values in a chain of nodes linked in both directions, so adding at the head or the tail
// is O(1) while reaching a position is O(n). Nodes never leave the package: callers see values, positions and
// cursors only. Lists are not safe for concurrent use.
//
//	l := list.FromSlice([]int{1, 2, 5, 4})
//	_, _ = l.RemoveAt(1) // [1 5 4]
//	_ = l.Insert(1, 2)    // [1 2 5 4]
//	for v := range l.All() {
//		...
//	}
package list

import (
	"flag"
	"fmt"
	"iter"
	"log/slog"
	"strings"

	"github.com/emirpasic/gods/v2/containers"
	godsutils "github.com/emirpasic/gods/v2/utils"
	"github.com/nobletooth/dlist/pkg/utils"
)

// invariantModule labels the invariants raised by this package.
const invariantModule = "list"

var verifyLinks = flag.Bool("list_verify_links", false,
	"Walk the whole chain after every structural change and raise an invariant on broken links.")

// node holds one value of the list along with its neighbours.
type node[T any] struct {
	next  *node[T]
	prev  *node[T]
	value T
}

// DoubleLinkedList is an ordered, mutable sequence of values of type T.
// The zero value is an empty list that matches elements with structural equality.
type DoubleLinkedList[T any] struct {
	head  *node[T]
	tail  *node[T]
	size  int
	equal EqualFn[T] // nil means structural equality.
	// mods is bumped on every structural change; cursors compare it to detect modification.
	mods uint64
}

var _ containers.Container[int] = (*DoubleLinkedList[int])(nil)

// New returns an empty list that matches elements with ==.
func New[T comparable](opts ...Option[T]) *DoubleLinkedList[T] {
	return newList(comparableEqual[T], opts)
}

// NewFunc returns an empty list that matches elements with `equal`.
// A nil `equal` falls back to structural equality.
func NewFunc[T any](equal EqualFn[T], opts ...Option[T]) *DoubleLinkedList[T] {
	if equal == nil {
		equal = structuralEqual[T]
	}
	return newList(equal, opts)
}

// From returns a list holding every value produced by `seq`, in order. The sequence is consumed once.
func From[T comparable](seq iter.Seq[T], opts ...Option[T]) *DoubleLinkedList[T] {
	l := New(opts...)
	WithValues(seq)(l)
	return l
}

// FromSlice returns a list holding a copy of `values`.
func FromSlice[T comparable](values []T, opts ...Option[T]) *DoubleLinkedList[T] {
	l := New(opts...)
	for _, v := range values {
		l.Add(v)
	}
	return l
}

func newList[T any](equal EqualFn[T], opts []Option[T]) *DoubleLinkedList[T] {
	l := &DoubleLinkedList[T]{equal: equal}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Len returns the number of elements in the list.
func (l *DoubleLinkedList[T]) Len() int {
	return l.size
}

// Size is the same as Len.
func (l *DoubleLinkedList[T]) Size() int {
	return l.size
}

// Empty returns true when the list has no elements.
func (l *DoubleLinkedList[T]) Empty() bool {
	return l.size == 0
}

// IsReadOnly always returns false; every list is mutable.
func (l *DoubleLinkedList[T]) IsReadOnly() bool {
	return false
}

// Front returns the first value, or false if the list is empty.
func (l *DoubleLinkedList[T]) Front() (T, bool) {
	if l.head == nil {
		return *new(T), false
	}
	return l.head.value, true
}

// Back returns the last value, or false if the list is empty.
func (l *DoubleLinkedList[T]) Back() (T, bool) {
	if l.tail == nil {
		return *new(T), false
	}
	return l.tail.value, true
}

// Get returns the value at `index`. It fails with ErrOutOfRange unless 0 <= index < Len().
func (l *DoubleLinkedList[T]) Get(index int) (T, error) {
	n, err := l.lookup(index)
	if err != nil {
		return *new(T), err
	}
	return n.value, nil
}

// Set replaces the value at `index`. It fails with ErrOutOfRange unless 0 <= index < Len().
// Set does not change the shape of the list, so it doesn't invalidate cursors.
func (l *DoubleLinkedList[T]) Set(index int, value T) error {
	n, err := l.lookup(index)
	if err != nil {
		return err
	}
	n.value = value
	return nil
}

// AddHead inserts `value` before the first element.
func (l *DoubleLinkedList[T]) AddHead(value T) {
	n := &node[T]{value: value, next: l.head}
	if l.head != nil {
		l.head.prev = n
	} else { // List was empty.
		l.tail = n
	}
	l.head = n
	l.size++
	l.modified()
}

// Add appends `value` after the last element.
func (l *DoubleLinkedList[T]) Add(value T) {
	n := &node[T]{value: value, prev: l.tail}
	if l.tail != nil {
		l.tail.next = n
	} else { // List was empty.
		l.head = n
	}
	l.tail = n
	l.size++
	l.modified()
}

// Insert places `value` at `index`, shifting the element previously there (and everything after it) by one.
// Index 0 adds a new head and index Len() a new tail; anything outside [0, Len()] fails with ErrOutOfRange.
func (l *DoubleLinkedList[T]) Insert(index int, value T) error {
	switch {
	case index < 0 || index > l.size:
		return outOfRange(index, l.size)
	case index == 0:
		l.AddHead(value)
		return nil
	case index == l.size:
		l.Add(value)
		return nil
	}

	next := l.nodeAt(index)
	if next == nil || next.prev == nil {
		utils.RaiseInvariant(invariantModule, "missing_splice_neighbour",
			"Inner position has no node or no predecessor.", "index", index, "count", l.size)
		return outOfRange(index, l.size)
	}
	prev := next.prev
	n := &node[T]{value: value, prev: prev, next: next}
	prev.next = n
	next.prev = n
	l.size++
	l.modified()
	return nil
}

// Remove unlinks the first element equal to `value` and reports whether one was found.
func (l *DoubleLinkedList[T]) Remove(value T) bool {
	for n := l.head; n != nil; n = n.next {
		if l.matches(n.value, value) {
			l.unlink(n)
			return true
		}
	}
	return false
}

// RemoveAt unlinks the element at `index` and returns its value.
// It fails with ErrOutOfRange unless 0 <= index < Len(), leaving the list untouched.
func (l *DoubleLinkedList[T]) RemoveAt(index int) (T, error) {
	n, err := l.lookup(index)
	if err != nil {
		return *new(T), err
	}
	l.unlink(n)
	return n.value, nil
}

// Clear removes every element. Clearing an empty list is not a modification.
func (l *DoubleLinkedList[T]) Clear() {
	if l.head == nil {
		return
	}
	released := 0
	for n := l.head; n != nil; {
		next := n.next
		n.prev, n.next = nil, nil
		n = next
		released++
	}
	l.head, l.tail, l.size = nil, nil, 0
	l.modified()
	slog.Debug("Cleared list.", "released", released)
}

// Contains reports whether any element equals `value`.
func (l *DoubleLinkedList[T]) Contains(value T) bool {
	return l.IndexOf(value) != NotFound
}

// IndexOf returns the position of the first element equal to `value`, or NotFound.
func (l *DoubleLinkedList[T]) IndexOf(value T) int {
	i := 0
	for n := l.head; n != nil; n = n.next {
		if l.matches(n.value, value) {
			return i
		}
		i++
	}
	return NotFound
}

// CopyTo writes the elements, head first, into `dst` starting at `offset`.
// Nothing is written unless `dst` has room for all of them.
func (l *DoubleLinkedList[T]) CopyTo(dst []T, offset int) error {
	if offset < 0 || len(dst)-offset < l.size {
		return fmt.Errorf("%w: offset %d, count %d, capacity %d", ErrOutOfRange, offset, l.size, len(dst))
	}
	for n := l.head; n != nil; n = n.next {
		dst[offset] = n.value
		offset++
	}
	return nil
}

// Values returns a copy of the elements, head first.
func (l *DoubleLinkedList[T]) Values() []T {
	values := make([]T, 0, l.size)
	for n := l.head; n != nil; n = n.next {
		values = append(values, n.value)
	}
	return values
}

// String formats the list as DoubleLinkedList[v0 v1 ...].
func (l *DoubleLinkedList[T]) String() string {
	var sb strings.Builder
	sb.WriteString("DoubleLinkedList[")
	for n := l.head; n != nil; n = n.next {
		if n != l.head {
			sb.WriteByte(' ')
		}
		sb.WriteString(fmt.Sprint(n.value))
	}
	sb.WriteByte(']')
	return sb.String()
}

// All yields the elements from head to tail. The loop body may remove elements; the walk continues from the
// first element after the visited one that is still in the list.
func (l *DoubleLinkedList[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := l.head; n != nil; {
			prev, next := n.prev, n.next
			if !yield(n.value) {
				return
			}
			switch {
			case l.linked(n):
				n = n.next
			case l.linked(next):
				n = next
			case l.linked(prev):
				n = prev.next
			case prev == nil: // The visited element was the head.
				n = l.head
			default:
				return
			}
		}
	}
}

// Backward yields the elements from tail to head, with the same removal rules as All.
func (l *DoubleLinkedList[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := l.tail; n != nil; {
			prev, next := n.prev, n.next
			if !yield(n.value) {
				return
			}
			switch {
			case l.linked(n):
				n = n.prev
			case l.linked(prev):
				n = prev
			case l.linked(next):
				n = next.prev
			case next == nil:
				n = l.tail
			default:
				return
			}
		}
	}
}

// Indexed yields (position, value) pairs from head to tail. The list must not change shape during the walk.
func (l *DoubleLinkedList[T]) Indexed() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		i := 0
		for n := l.head; n != nil; n = n.next {
			if !yield(i, n.value) {
				return
			}
			i++
		}
	}
}

// SortedFunc returns the elements ordered by `compare`. The list itself keeps its order.
func (l *DoubleLinkedList[T]) SortedFunc(compare godsutils.Comparator[T]) []T {
	return containers.GetSortedValuesFunc[T](l, compare)
}

// Iterator returns a new cursor positioned before the head. Cursors are independent of each other.
func (l *DoubleLinkedList[T]) Iterator() *Cursor[T] {
	c := &Cursor[T]{list: l}
	c.Reset()
	return c
}

// lookup returns the node at `index` or an ErrOutOfRange error.
func (l *DoubleLinkedList[T]) lookup(index int) (*node[T], error) {
	if index < 0 || index >= l.size {
		return nil, outOfRange(index, l.size)
	}
	n := l.nodeAt(index)
	if n == nil {
		return nil, outOfRange(index, l.size)
	}
	return n, nil
}

// nodeAt walks to `index` from the closer end. The index must be within [0, size).
func (l *DoubleLinkedList[T]) nodeAt(index int) *node[T] {
	var n *node[T]
	if index < l.size/2 {
		n = l.head
		for i := 0; i < index && n != nil; i++ {
			n = n.next
		}
	} else {
		n = l.tail
		for i := l.size - 1; i > index && n != nil; i-- {
			n = n.prev
		}
	}
	if n == nil {
		utils.RaiseInvariant(invariantModule, "chain_shorter_than_count",
			"Reached the end of the chain before the requested position.", "index", index, "count", l.size)
	}
	return n
}

// unlink detaches `n` by connecting its neighbours to each other.
func (l *DoubleLinkedList[T]) unlink(n *node[T]) {
	prev, next := n.prev, n.next
	if prev != nil {
		prev.next = next
	} else { // Node is the head.
		l.head = next
	}
	if next != nil {
		next.prev = prev
	} else { // Node is the tail.
		l.tail = prev
	}
	// Drop the removed node's links so it doesn't keep the chain reachable.
	n.prev, n.next = nil, nil
	l.size--
	l.modified()
}

// linked reports whether `n` is still part of the chain. Unlinked nodes have no neighbours and aren't the head.
func (l *DoubleLinkedList[T]) linked(n *node[T]) bool {
	return n != nil && (n.prev != nil || l.head == n)
}

func (l *DoubleLinkedList[T]) matches(a, b T) bool {
	if l.equal == nil {
		return structuralEqual(a, b)
	}
	return l.equal(a, b)
}

// modified records a structural change.
func (l *DoubleLinkedList[T]) modified() {
	l.mods++
	if *verifyLinks {
		l.verify()
	}
}
