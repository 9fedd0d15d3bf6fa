package main

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/emirpasic/gods/v2/containers"
	"github.com/nobletooth/dlist/pkg/list"
)

var errUnknownOperation = errors.New("unknown operation")

// operationArity is the number of integer arguments each operation takes.
var operationArity = map[string]int{
	"add":       1, // add:VALUE
	"add_head":  1, // add_head:VALUE
	"insert":    2, // insert:INDEX:VALUE
	"set":       2, // set:INDEX:VALUE
	"get":       1, // get:INDEX
	"remove":    1, // remove:VALUE
	"remove_at": 1, // remove_at:INDEX
	"index_of":  1, // index_of:VALUE
	"contains":  1, // contains:VALUE
	"clear":     0,
	"sorted":    0, // Prints the values in ascending order without reordering the list.
}

// operation is one parsed script step, e.g. "insert:1:2".
type operation struct {
	name string
	args []int
}

// parseValues turns "1,2,5,4" into a list; an empty string gives an empty list.
func parseValues(raw string) (*list.DoubleLinkedList[int], error) {
	l := list.New[int]()
	if strings.TrimSpace(raw) == "" {
		return l, nil
	}
	for _, field := range strings.Split(raw, ",") {
		v, err := strconv.Atoi(strings.TrimSpace(field))
		if err != nil {
			return nil, fmt.Errorf("failed to parse value %q: %w", field, err)
		}
		l.Add(v)
	}
	return l, nil
}

func parseOperation(raw string) (operation, error) {
	parts := strings.Split(raw, ":")
	op := operation{name: strings.ToLower(parts[0])}
	arity, known := operationArity[op.name]
	if !known {
		return operation{}, fmt.Errorf("%w: %q", errUnknownOperation, parts[0])
	}
	if len(parts)-1 != arity {
		return operation{}, fmt.Errorf("operation %q expects %d argument(s), got %d", op.name, arity, len(parts)-1)
	}
	for _, part := range parts[1:] {
		v, err := strconv.Atoi(part)
		if err != nil {
			return operation{}, fmt.Errorf("operation %q has a non-integer argument %q: %w", op.name, part, err)
		}
		op.args = append(op.args, v)
	}
	return op, nil
}

// apply runs the operation on `l` and returns what it produced, if anything.
func (op operation) apply(l *list.DoubleLinkedList[int]) (any, error) {
	switch op.name {
	case "add":
		l.Add(op.args[0])
		return nil, nil
	case "add_head":
		l.AddHead(op.args[0])
		return nil, nil
	case "insert":
		return nil, l.Insert(op.args[0], op.args[1])
	case "set":
		return nil, l.Set(op.args[0], op.args[1])
	case "get":
		return l.Get(op.args[0])
	case "remove":
		return l.Remove(op.args[0]), nil
	case "remove_at":
		return l.RemoveAt(op.args[0])
	case "index_of":
		return l.IndexOf(op.args[0]), nil
	case "contains":
		return l.Contains(op.args[0]), nil
	case "clear":
		l.Clear()
		return nil, nil
	case "sorted":
		return containers.GetSortedValues[int](l), nil
	default:
		return nil, fmt.Errorf("%w: %q", errUnknownOperation, op.name)
	}
}

// runScript applies every raw operation in order, stopping at the first one that fails.
func runScript(l *list.DoubleLinkedList[int], script []string) error {
	for step, raw := range script {
		op, err := parseOperation(raw)
		if err != nil {
			return fmt.Errorf("step %d: %w", step, err)
		}
		result, err := op.apply(l)
		if err != nil {
			return fmt.Errorf("step %d (%s): %w", step, raw, err)
		}
		slog.Info("Applied operation.", "step", step, "op", raw, "result", result, "count", l.Len())
	}
	return nil
}
