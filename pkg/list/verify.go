package list

import "github.com/nobletooth/dlist/pkg/utils"

// verify walks the chain in both directions and raises an invariant on the first inconsistency it meets.
// It returns true when the links, the ends and the count all agree.
func (l *DoubleLinkedList[T]) verify() bool {
	if (l.head == nil) != (l.tail == nil) || (l.head == nil) != (l.size == 0) {
		utils.RaiseInvariant(invariantModule, "inconsistent_ends", "Head, tail and count disagree on emptiness.",
			"count", l.size, "hasHead", l.head != nil, "hasTail", l.tail != nil)
		return false
	}
	if l.head == nil {
		return true
	}
	if l.head.prev != nil || l.tail.next != nil {
		utils.RaiseInvariant(invariantModule, "open_ends", "Head has a predecessor or tail has a successor.",
			"count", l.size)
		return false
	}

	steps := 0
	for n := l.head; n != nil; n = n.next {
		steps++
		if steps > l.size { // Also stops on cycles.
			utils.RaiseInvariant(invariantModule, "forward_chain_too_long",
				"Forward walk went past the element count.", "count", l.size)
			return false
		}
		if n.next == nil && n != l.tail {
			utils.RaiseInvariant(invariantModule, "forward_chain_misses_tail",
				"Forward walk ended on a node other than the tail.", "steps", steps, "count", l.size)
			return false
		}
		if n.next != nil && n.next.prev != n {
			utils.RaiseInvariant(invariantModule, "broken_back_link",
				"Successor does not point back to its predecessor.", "position", steps-1, "count", l.size)
			return false
		}
	}
	if steps != l.size {
		utils.RaiseInvariant(invariantModule, "forward_chain_too_short",
			"Forward walk reached the tail early.", "steps", steps, "count", l.size)
		return false
	}

	steps = 0
	for n := l.tail; n != nil; n = n.prev {
		steps++
		if steps > l.size {
			utils.RaiseInvariant(invariantModule, "backward_chain_too_long",
				"Backward walk went past the element count.", "count", l.size)
			return false
		}
	}
	if steps != l.size {
		utils.RaiseInvariant(invariantModule, "backward_chain_too_short",
			"Backward walk reached the head early.", "steps", steps, "count", l.size)
		return false
	}
	return true
}
