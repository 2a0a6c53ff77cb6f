package notation

import (
	"math"

	"github.com/vipcxj/intervals/interval"
)

// Lowest returns the smallest integer in i, or false if i holds none.
func Lowest(i interval.Interval[int64]) (int64, bool) {
	if i.IsEmpty() {
		return 0, false
	}
	lower := i.LowerBound()
	if lower.IsClosed() {
		return lower.Value(), true
	}
	if lower.Value() == math.MaxInt64 {
		return 0, false
	}
	return lower.Value() + 1, true
}

// Highest returns the largest integer in i, or false if i holds none.
func Highest(i interval.Interval[int64]) (int64, bool) {
	if i.IsEmpty() {
		return 0, false
	}
	upper := i.UpperBound()
	if upper.IsClosed() {
		return upper.Value(), true
	}
	if upper.Value() == math.MinInt64 {
		return 0, false
	}
	return upper.Value() - 1, true
}

// Canonical rewrites i as the closed interval of the integers it holds, so
// (1,5) becomes [2,4] and (3,4) becomes empty. The engine itself treats
// int64 as a dense order and never does this.
func Canonical(i interval.Interval[int64]) interval.Interval[int64] {
	lo, ok1 := Lowest(i)
	hi, ok2 := Highest(i)
	if !ok1 || !ok2 || lo > hi {
		return interval.Empty[int64]()
	}
	return interval.Must(interval.Closed(lo, hi))
}

// CanonicalAll applies Canonical to every member of c and drops the
// members left without integers.
func CanonicalAll(c interval.Collection[int64]) interval.Collection[int64] {
	var out []interval.Interval[int64]
	for _, i := range c.All() {
		if x := Canonical(i); !x.IsEmpty() {
			out = append(out, x)
		}
	}
	return interval.NewCollection(out...)
}
