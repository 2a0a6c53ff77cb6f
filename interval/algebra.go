package interval

import (
	"slices"

	"github.com/cockroachdb/errors"
)

// Universe returns the interval spanning the whole domain of T. Its bounds
// are closed on finite extremes and open on infinite ones.
//
// Universe panics with ErrUnknownDomain if T has no domain; so do Empty and
// the other functions below that cannot return an error.
func Universe[T any]() Interval[T] {
	return mustDomain[T]().universe()
}

// Empty returns the canonical empty interval: open on both sides at the
// zero value of T, which keeps it distinct from SingletonOf(zero).
func Empty[T any]() Interval[T] {
	return mustDomain[T]().empty()
}

// SingletonOf returns [v, v]. Infinite extremes have no singleton.
func SingletonOf[T any](v T) (Interval[T], error) {
	return Closed(v, v)
}

// Contains reports whether v belongs to i. Empty intervals contain nothing.
func Contains[T any](i Interval[T], v T) bool {
	return mustDomain[T]().contains(i, v)
}

// Intersect reports whether a and b share at least one value.
func Intersect[T any](a, b Interval[T]) bool {
	return mustDomain[T]().intersects(a, b)
}

// ComplementOf returns the values of the domain that are not in i.
func ComplementOf[T any](i Interval[T]) Collection[T] {
	return mustDomain[T]().complement(i)
}

// ComplementOfCollection returns the values of the domain that are in no
// member of c. Each member's complement is cut down by every other member
// before the pieces are merged.
func ComplementOfCollection[T any](c Collection[T]) Collection[T] {
	d := mustDomain[T]()
	if len(c.items) == 0 {
		return Collection[T]{items: []Interval[T]{d.universe()}}
	}
	var pieces []Interval[T]
	for i, member := range c.items {
		frags := d.complement(member).items
		for j, other := range c.items {
			if i != j {
				frags = d.subtract(frags, other)
			}
		}
		pieces = append(pieces, frags...)
	}
	return d.collect(d.mergeHighest(pieces))
}

// DifferenceOf returns the values in a that are not in b.
func DifferenceOf[T any](a, b Interval[T]) Collection[T] {
	d := mustDomain[T]()
	switch {
	case d.isEmpty(a):
		return Collection[T]{}
	case d.isEmpty(b):
		return Collection[T]{items: []Interval[T]{a}}
	case d.equal(a, b):
		return Collection[T]{}
	}
	u := d.universe()
	var out []Interval[T]
	if left, ok := d.fragment(u.lower, b.lower.reverse()); ok {
		if x := d.intersection(a, left); !d.isEmpty(x) {
			out = append(out, x)
		}
	}
	if right, ok := d.fragment(b.upper.reverse(), u.upper); ok {
		if x := d.intersection(a, right); !d.isEmpty(x) {
			out = append(out, x)
		}
	}
	return d.collect(out)
}

// DifferenceOfCollection returns the values in a member of a that are in no
// member of b.
func DifferenceOfCollection[T any](a, b Collection[T]) Collection[T] {
	d := mustDomain[T]()
	var out []Interval[T]
	for _, x := range a.items {
		out = append(out, d.subtract([]Interval[T]{x}, b.items...)...)
	}
	return d.collect(d.mergeHighest(out))
}

// IntersectionOf returns the values common to all arguments.
func IntersectionOf[T any](first Interval[T], rest ...Interval[T]) Interval[T] {
	d := mustDomain[T]()
	result := first
	for _, i := range rest {
		result = d.intersection(result, i)
	}
	if d.isEmpty(result) {
		return d.empty()
	}
	return result
}

// IntersectionOfCollection returns the values common to all members of c.
// A collection without members has no defined intersection and yields
// ErrNilArgument.
func IntersectionOfCollection[T any](c Collection[T]) (Interval[T], error) {
	if len(c.items) == 0 {
		return Interval[T]{}, errors.Wrap(ErrNilArgument, "intersection of an empty collection")
	}
	return IntersectionOf(c.items[0], c.items[1:]...), nil
}

// UnionOf returns the values in any of intervals, split according to
// denominator.
func UnionOf[T any](denominator Denominator, intervals ...Interval[T]) (Collection[T], error) {
	d := mustDomain[T]()
	switch denominator {
	case DenominatorHighest:
		return d.collect(d.mergeHighest(intervals)), nil
	case DenominatorLowest:
		return d.collect(d.refineLowest(intervals)), nil
	default:
		return Collection[T]{}, errors.Wrapf(ErrUnknownDenominator, "%s", denominator)
	}
}

// UnionOfCollections is UnionOf over the members of all collections.
func UnionOfCollections[T any](denominator Denominator, collections ...Collection[T]) (Collection[T], error) {
	var all []Interval[T]
	for _, c := range collections {
		all = append(all, c.items...)
	}
	return UnionOf(denominator, all...)
}

// mergeHighest sorts the non-empty inputs and folds every interval that
// touches or overlaps its predecessor into it.
func (d *Domain[T]) mergeHighest(intervals []Interval[T]) []Interval[T] {
	items := slices.DeleteFunc(slices.Clone(intervals), d.isEmpty)
	slices.SortFunc(items, d.compareIntervals)
	var out []Interval[T]
	for _, x := range items {
		if n := len(out); n > 0 && d.unionCompare(out[n-1].upper, x.lower) >= 0 {
			if d.compareBounds(x.upper, out[n-1].upper) > 0 {
				out[n-1].upper = x.upper
			}
			continue
		}
		out = append(out, x)
	}
	return out
}

// refineLowest splits the inputs into disjoint fragments such that each
// fragment is covered by exactly the same inputs. Every new input x is cut
// against each fragment f already present into f∩x, f−x and x−f.
func (d *Domain[T]) refineLowest(intervals []Interval[T]) []Interval[T] {
	var frags []Interval[T]
	for _, x := range intervals {
		if d.isEmpty(x) {
			continue
		}
		pending := []Interval[T]{x}
		next := make([]Interval[T], 0, len(frags)+2)
		for _, f := range frags {
			overlaps := slices.ContainsFunc(pending, func(p Interval[T]) bool {
				return d.intersects(p, f)
			})
			if !overlaps {
				next = append(next, f)
				continue
			}
			rest := []Interval[T]{f}
			var remaining []Interval[T]
			for _, p := range pending {
				if common := d.intersection(f, p); !d.isEmpty(common) {
					next = append(next, common)
				}
				rest = d.subtract(rest, p)
				remaining = append(remaining, d.difference(p, f).items...)
			}
			next = append(next, rest...)
			pending = remaining
		}
		frags = append(next, pending...)
	}
	return frags
}

// subtract removes every interval of ys from each interval of xs.
func (d *Domain[T]) subtract(xs []Interval[T], ys ...Interval[T]) []Interval[T] {
	for _, y := range ys {
		var out []Interval[T]
		for _, x := range xs {
			out = append(out, d.difference(x, y).items...)
		}
		xs = out
	}
	return xs
}
