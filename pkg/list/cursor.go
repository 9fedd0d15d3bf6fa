package list

import (
	"fmt"

	"github.com/emirpasic/gods/v2/containers"
)

// Cursor walks a DoubleLinkedList one element at a time. A cursor is either before the head, on an element,
// or past the tail; once past the tail, Next keeps returning false until Reset.
//
//	c := l.Iterator()
//	for c.Next() {
//		v := c.Value()
//		...
//	}
//	if err := c.Err(); err != nil {
//		...
//	}
//
// Every call to DoubleLinkedList.Iterator returns its own cursor, so nested or interleaved walks don't interfere.
// A cursor is fail-fast: after the list is structurally changed (add, insert, remove, clear), Next and Prev
// return false and Err returns ErrModified until the cursor is reset.
type Cursor[T any] struct {
	list  *DoubleLinkedList[T]
	node  *node[T] // nil when before the head or past the tail.
	index int      // -1 before the head, list size past the tail.
	mods  uint64   // The list's modification count the cursor is in sync with.
	err   error
}

var _ containers.ReverseIteratorWithIndex[int] = (*Cursor[int])(nil)

// Next moves to the following element and reports whether there is one.
// From before the head it moves to the head.
func (c *Cursor[T]) Next() bool {
	if !c.inSync() {
		return false
	}
	switch {
	case c.node != nil:
		c.node = c.node.next
		c.index++
	case c.index == -1:
		c.node = c.list.head
		c.index = 0
	default: // Exhausted.
		return false
	}
	return c.node != nil
}

// Prev moves to the preceding element and reports whether there is one.
// From past the tail it moves to the tail.
func (c *Cursor[T]) Prev() bool {
	if !c.inSync() {
		return false
	}
	switch {
	case c.node != nil:
		c.node = c.node.prev
		c.index--
	case c.index != -1:
		c.node = c.list.tail
		c.index = c.list.size - 1
	default: // Already before the head.
		return false
	}
	return c.node != nil
}

// Reset moves the cursor before the head and clears any error.
func (c *Cursor[T]) Reset() {
	c.node = nil
	c.index = -1
	c.sync()
}

// Begin is the same as Reset.
func (c *Cursor[T]) Begin() {
	c.Reset()
}

// End moves the cursor past the tail and clears any error.
func (c *Cursor[T]) End() {
	c.node = nil
	c.index = c.list.size
	c.sync()
}

// First resets the cursor and moves it to the head, reporting whether the list has one.
func (c *Cursor[T]) First() bool {
	c.Reset()
	return c.Next()
}

// Last moves the cursor to the tail, reporting whether the list has one.
func (c *Cursor[T]) Last() bool {
	c.End()
	return c.Prev()
}

// NextTo advances until `match` accepts the current position and value, reporting whether it did.
func (c *Cursor[T]) NextTo(match func(index int, value T) bool) bool {
	for c.Next() {
		if match(c.index, c.node.value) {
			return true
		}
	}
	return false
}

// PrevTo moves backward until `match` accepts the current position and value, reporting whether it did.
func (c *Cursor[T]) PrevTo(match func(index int, value T) bool) bool {
	for c.Prev() {
		if match(c.index, c.node.value) {
			return true
		}
	}
	return false
}

// Current returns the value under the cursor, or ErrNoCurrent when it is before the head or past the tail.
func (c *Cursor[T]) Current() (T, error) {
	if c.node == nil {
		return *new(T), fmt.Errorf("%w: index %d", ErrNoCurrent, c.index)
	}
	return c.node.value, nil
}

// Value returns the value under the cursor. It panics when the cursor isn't on an element; use Current to get
// an error instead.
func (c *Cursor[T]) Value() T {
	value, err := c.Current()
	if err != nil {
		panic(err)
	}
	return value
}

// Index returns the position of the cursor: -1 before the head, Len() past the tail.
func (c *Cursor[T]) Index() int {
	return c.index
}

// Err returns ErrModified if the walk stopped because the list changed under the cursor.
func (c *Cursor[T]) Err() error {
	return c.err
}

func (c *Cursor[T]) sync() {
	c.mods = c.list.mods
	c.err = nil
}

// inSync fails the cursor if the list changed shape since the last Reset / End.
func (c *Cursor[T]) inSync() bool {
	if c.err != nil {
		return false
	}
	if c.mods != c.list.mods {
		c.err = ErrModified
		c.node = nil
		c.index = c.list.size
		return false
	}
	return true
}
