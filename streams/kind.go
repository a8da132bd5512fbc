package streams

import (
	"fmt"

	"github.com/broady/bricks/typedesc"
)

// Container families by raw name. A type is matched against list, set and
// queue in that order, so java.util.LinkedList collects as a list.
var (
	listTypes = map[string]bool{
		"java.util.Collection":                      true,
		"java.util.List":                            true,
		"java.util.ArrayList":                       true,
		"java.util.LinkedList":                      true,
		"java.util.Vector":                          true,
		"java.util.Stack":                           true,
		"java.util.AbstractList":                    true,
		"java.util.concurrent.CopyOnWriteArrayList": true,
		"java.lang.Iterable":                        true,
	}
	setTypes = map[string]bool{
		"java.util.Set":                              true,
		"java.util.HashSet":                          true,
		"java.util.LinkedHashSet":                    true,
		"java.util.TreeSet":                          true,
		"java.util.SortedSet":                        true,
		"java.util.NavigableSet":                     true,
		"java.util.AbstractSet":                      true,
		"java.util.EnumSet":                          true,
		"java.util.concurrent.CopyOnWriteArraySet":   true,
		"java.util.concurrent.ConcurrentSkipListSet": true,
	}
	queueTypes = map[string]bool{
		"java.util.Queue":                            true,
		"java.util.Deque":                            true,
		"java.util.PriorityQueue":                    true,
		"java.util.ArrayDeque":                       true,
		"java.util.AbstractQueue":                    true,
		"java.util.concurrent.BlockingQueue":         true,
		"java.util.concurrent.LinkedBlockingQueue":   true,
		"java.util.concurrent.ArrayBlockingQueue":    true,
		"java.util.concurrent.PriorityBlockingQueue": true,
		"java.util.concurrent.ConcurrentLinkedQueue": true,
		"java.util.concurrent.ConcurrentLinkedDeque": true,
	}
)

// KindOf picks the collector for a container type. Arrays and slices collect
// as lists.
func KindOf(d *typedesc.Descriptor) (Kind, error) {
	switch {
	case d == nil:
		return 0, fmt.Errorf("nil descriptor: %w", ErrUnsupported)
	case d.IsArray() || listTypes[d.RawName()]:
		return KindList, nil
	case setTypes[d.RawName()]:
		return KindSet, nil
	case queueTypes[d.RawName()]:
		return KindQueue, nil
	default:
		return 0, fmt.Errorf("%s: %w", typedesc.Render(d), ErrUnsupported)
	}
}
