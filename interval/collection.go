package interval

import (
	"iter"
	"slices"
	"strings"
)

// Collection is a sorted, duplicate-free sequence of intervals. It is the
// result of any operation that may produce more than one interval, and is
// never modified once built.
type Collection[T any] struct {
	items []Interval[T]
}

// NewCollection sorts intervals by Interval.Compare and drops exact
// duplicates.
func NewCollection[T any](intervals ...Interval[T]) Collection[T] {
	return mustDomain[T]().collect(intervals)
}

func (d *Domain[T]) collect(intervals []Interval[T]) Collection[T] {
	if len(intervals) == 0 {
		return Collection[T]{}
	}
	items := slices.Clone(intervals)
	slices.SortStableFunc(items, d.compareIntervals)
	items = slices.CompactFunc(items, d.equal)
	return Collection[T]{items: items}
}

func (c Collection[T]) Len() int { return len(c.items) }

// At returns the i-th interval. It panics if i is out of range.
func (c Collection[T]) At(i int) Interval[T] { return c.items[i] }

// All iterates over the intervals in order.
func (c Collection[T]) All() iter.Seq2[int, Interval[T]] {
	return func(yield func(int, Interval[T]) bool) {
		for i, item := range c.items {
			if !yield(i, item) {
				return
			}
		}
	}
}

// Intervals returns a copy of the intervals.
func (c Collection[T]) Intervals() []Interval[T] {
	return slices.Clone(c.items)
}

// IsEmpty reports whether no member holds a value.
func (c Collection[T]) IsEmpty() bool {
	for _, item := range c.items {
		if !item.IsEmpty() {
			return false
		}
	}
	return true
}

// Contains reports whether any member contains v.
func (c Collection[T]) Contains(v T) bool {
	for _, item := range c.items {
		if item.Contains(v) {
			return true
		}
	}
	return false
}

// Equal compares member by member.
func (c Collection[T]) Equal(other Collection[T]) bool {
	return slices.EqualFunc(c.items, other.items, Interval[T].Equal)
}

func (c Collection[T]) String() string {
	if len(c.items) == 0 {
		return "∅"
	}
	parts := make([]string, len(c.items))
	for i, item := range c.items {
		parts[i] = item.String()
	}
	return "{" + strings.Join(parts, "; ") + "}"
}
