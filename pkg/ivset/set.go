package ivset

import (
	"fmt"
	"strings"

	"github.com/emirpasic/gods/v2/trees/redblacktree"
)

// Set is a canonical set of non-overlapping, non-abutting intervals over
// T, backed by a red-black tree keyed by each interval's Min endpoint
// (value is the matching Max). Canonical form means the set is always
// represented with the fewest possible intervals: Add fuses anything
// that touches or overlaps what it inserts.
//
// Set is not safe for concurrent use without external synchronization,
// matching the rest of this module's single-writer assumption.
type Set[T Scalar] struct {
	tree *redblacktree.Tree[T, T]
}

// New returns an empty Set.
func New[T Scalar]() *Set[T] {
	return &Set[T]{tree: redblacktree.New[T, T]()}
}

// intervals returns every stored interval in ascending Min order. The
// red-black tree's Keys() performs an in-order traversal, so the result
// is already sorted; no secondary sort is needed.
func (s *Set[T]) intervals() []Interval[T] {
	keys := s.tree.Keys()
	out := make([]Interval[T], 0, len(keys))
	for _, k := range keys {
		max, ok := s.tree.Get(k)
		if !ok {
			panic(fmt.Sprintf("ivset: key %v present in Keys() but missing from Get()", k))
		}
		out = append(out, Interval[T]{Min: k, Max: max})
	}
	return out
}

// Intervals returns a copy of every canonical interval in the set, in
// ascending order.
func (s *Set[T]) Intervals() []Interval[T] {
	return s.intervals()
}

// Add inserts iv, fusing it with any interval it overlaps or abuts.
// Adding an empty interval is a no-op.
func (s *Set[T]) Add(iv Interval[T]) {
	if !iv.valid() {
		panic(fmt.Sprintf("ivset: invalid interval %v", iv))
	}
	if iv.Empty() {
		return
	}
	min, max := iv.Min, iv.Max
	for _, e := range s.intervals() {
		if !e.overlapsOrAbuts(Interval[T]{Min: min, Max: max}) {
			continue
		}
		if e.Min < min {
			min = e.Min
		}
		if e.Max > max {
			max = e.Max
		}
		s.tree.Remove(e.Min)
	}
	s.tree.Put(min, max)
}

// AddValue adds the single value v to the set.
func (s *Set[T]) AddValue(v T) {
	s.Add(Interval[T]{Min: v, Max: v + 1})
}

// Contains reports whether v is a member of the set.
func (s *Set[T]) Contains(v T) bool {
	for _, e := range s.intervals() {
		if e.Min > v {
			break
		}
		if e.Contains(v) {
			return true
		}
	}
	return false
}

// LowerBound returns the first interval (in Min order) whose span
// reaches or passes v — i.e. the first interval with Max > v. It is the
// interval that contains v, or the nearest one after v if v falls in a
// gap. The second return is false if no such interval exists.
func (s *Set[T]) LowerBound(v T) (Interval[T], bool) {
	for _, e := range s.intervals() {
		if e.Max > v {
			return e, true
		}
	}
	return Interval[T]{}, false
}

// UpperBound returns the first interval (in Min order) that starts
// strictly after v. The second return is false if no such interval
// exists.
func (s *Set[T]) UpperBound(v T) (Interval[T], bool) {
	for _, e := range s.intervals() {
		if e.Min > v {
			return e, true
		}
	}
	return Interval[T]{}, false
}

// SumOfSizes returns the total number of discrete values covered by the
// set.
func (s *Set[T]) SumOfSizes() T {
	var total T
	for _, e := range s.intervals() {
		total += e.Len()
	}
	return total
}

// Size returns the number of canonical (fused) intervals in the set.
func (s *Set[T]) Size() int {
	return s.tree.Size()
}

// Empty reports whether the set has no members.
func (s *Set[T]) Empty() bool {
	return s.tree.Empty()
}

// Clear removes every interval from the set.
func (s *Set[T]) Clear() {
	s.tree.Clear()
}

// Equal reports whether s and other describe the same set of values.
// Since both sides are always stored in canonical form, this reduces to
// comparing their interval lists pairwise.
func (s *Set[T]) Equal(other *Set[T]) bool {
	a, b := s.intervals(), other.intervals()
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Complement returns the set of values in bound that are not in s.
// Complementing a set that lies entirely within bound twice, against
// the same bound, is an involution: it returns a set equal to the
// original.
func (s *Set[T]) Complement(bound Interval[T]) *Set[T] {
	out := New[T]()
	if bound.Empty() {
		return out
	}
	cursor := bound.Min
	for _, e := range s.intervals() {
		min, max := e.Min, e.Max
		if max <= bound.Min || min >= bound.Max {
			continue
		}
		if min < bound.Min {
			min = bound.Min
		}
		if max > bound.Max {
			max = bound.Max
		}
		if min > cursor {
			out.Add(Interval[T]{Min: cursor, Max: min})
		}
		if max > cursor {
			cursor = max
		}
	}
	if cursor < bound.Max {
		out.Add(Interval[T]{Min: cursor, Max: bound.Max})
	}
	return out
}

func (s *Set[T]) String() string {
	ivs := s.intervals()
	parts := make([]string, len(ivs))
	for i, e := range ivs {
		parts[i] = e.String()
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
