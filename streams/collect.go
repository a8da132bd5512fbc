// Package streams collects iterator sequences into lists, sets and priority
// queues, and picks the collection kind for a described container type.
package streams

import (
	"cmp"
	"errors"
	"fmt"
	"iter"
	"maps"
	"slices"
)

// ErrUnsupported is returned for collection kinds or container types that
// have no collector.
var ErrUnsupported = errors.New("unsupported collection type")

// Kind selects a collector.
type Kind int

const (
	KindList Kind = iota
	KindSet
	KindQueue
)

func (k Kind) String() string {
	switch k {
	case KindList:
		return "list"
	case KindSet:
		return "set"
	case KindQueue:
		return "queue"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Collection is the result of collecting a sequence.
type Collection[T any] interface {
	Len() int
	// All yields the elements. Lists yield in insertion order, queues in
	// priority order and sets in no particular order.
	All() iter.Seq[T]
}

// List keeps elements in encounter order.
type List[T any] []T

func (l List[T]) Len() int { return len(l) }

func (l List[T]) All() iter.Seq[T] { return slices.Values(l) }

// Set keeps distinct elements.
type Set[T comparable] map[T]struct{}

func (s Set[T]) Len() int { return len(s) }

func (s Set[T]) All() iter.Seq[T] { return maps.Keys(s) }

// Has reports whether v is in the set.
func (s Set[T]) Has(v T) bool {
	_, ok := s[v]
	return ok
}

// CollectList collects seq into a List.
func CollectList[T any](seq iter.Seq[T]) List[T] {
	return List[T](slices.Collect(seq))
}

// CollectSet collects seq into a Set.
func CollectSet[T comparable](seq iter.Seq[T]) Set[T] {
	s := make(Set[T])
	for v := range seq {
		s[v] = struct{}{}
	}
	return s
}

// CollectQueue collects seq into a min-first priority Queue.
func CollectQueue[T cmp.Ordered](seq iter.Seq[T]) *Queue[T] {
	return CollectQueueFunc(seq, cmp.Less[T])
}

// CollectQueueFunc collects seq into a priority Queue ordered by less.
func CollectQueueFunc[T any](seq iter.Seq[T], less func(a, b T) bool) *Queue[T] {
	q := NewQueue(less)
	for v := range seq {
		q.Push(v)
	}
	return q
}

// Collect collects seq into the collection selected by kind.
func Collect[T cmp.Ordered](seq iter.Seq[T], kind Kind) (Collection[T], error) {
	switch kind {
	case KindList:
		return CollectList(seq), nil
	case KindSet:
		return CollectSet(seq), nil
	case KindQueue:
		return CollectQueue(seq), nil
	default:
		return nil, fmt.Errorf("%v: %w", kind, ErrUnsupported)
	}
}
