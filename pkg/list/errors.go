package list

import (
	"errors"
	"fmt"
)

// NotFound is returned by IndexOf when no element matches.
const NotFound = -1

var (
	// ErrOutOfRange is returned when a position is outside the bounds permitted by an operation.
	ErrOutOfRange = errors.New("index out of range")
	// ErrNoCurrent is returned when a cursor is read while it is not positioned on an element.
	ErrNoCurrent = errors.New("cursor is not positioned on an element")
	// ErrModified is reported by a cursor whose list was structurally modified after the cursor was reset.
	ErrModified = errors.New("list was modified during iteration")
)

func outOfRange(index, count int) error {
	return fmt.Errorf("%w: index %d, count %d", ErrOutOfRange, index, count)
}
