// Package ivset implements a generic, half-open interval set.
//
// It mirrors the algorithms of Verible's IntervalSet<T> template
// (common/util/interval_set.h): intervals are stored in a canonical
// form where no two stored intervals overlap or abut, so the set is
// always represented by the minimum possible number of intervals.
package ivset

import "fmt"

// Scalar is the set of types an Interval's endpoints may hold.
//
// golang.org/x/exp/constraints would fit here, but nothing else in this
// module pulls it in, so a small local constraint avoids adding a
// dependency for one type set.
type Scalar interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Interval is a half-open range [Min, Max). Min == Max denotes the
// empty interval. An interval with Max < Min is invalid.
type Interval[T Scalar] struct {
	Min, Max T
}

// Len reports the number of discrete values spanned by i.
func (i Interval[T]) Len() T {
	if i.Max <= i.Min {
		return 0
	}
	return i.Max - i.Min
}

// Empty reports whether i spans no values.
func (i Interval[T]) Empty() bool {
	return i.Max <= i.Min
}

// valid reports whether i is a well-formed (possibly empty) interval.
func (i Interval[T]) valid() bool {
	return i.Max >= i.Min
}

// Contains reports whether v falls inside i.
func (i Interval[T]) Contains(v T) bool {
	return v >= i.Min && v < i.Max
}

// overlapsOrAbuts reports whether i and j touch or overlap, i.e.
// whether merging them produces a single interval with no gap.
func (i Interval[T]) overlapsOrAbuts(j Interval[T]) bool {
	return i.Min <= j.Max && j.Min <= i.Max
}

func (i Interval[T]) String() string {
	return fmt.Sprintf("[%v,%v)", i.Min, i.Max)
}
