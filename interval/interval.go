package interval

import (
	"github.com/cockroachdb/errors"
)

// Interval is a convex range of T delimited by a lower and an upper Bound.
//
// Intervals are values: copy them freely. The zero Interval is empty.
type Interval[T any] struct {
	lower Bound[T]
	upper Bound[T]
}

// New returns the interval between lower and upper.
//
// It fails with ErrInvalidArgument when the bounds are on the wrong sides,
// when lower lies after upper, or when both hold the same finite value but
// only one of them is closed.
func New[T any](lower, upper Bound[T]) (Interval[T], error) {
	d, err := domainFor[T]()
	if err != nil {
		return Interval[T]{}, err
	}
	return d.newInterval(lower, upper)
}

// NewInterval builds both bounds and the interval between them.
func NewInterval[T any](lowerDirection Direction, lowerValue, upperValue T, upperDirection Direction) (Interval[T], error) {
	d, err := domainFor[T]()
	if err != nil {
		return Interval[T]{}, err
	}
	lower, err := d.newBound(SideLower, lowerDirection, lowerValue)
	if err != nil {
		return Interval[T]{}, err
	}
	upper, err := d.newBound(SideUpper, upperDirection, upperValue)
	if err != nil {
		return Interval[T]{}, err
	}
	return d.newInterval(lower, upper)
}

// TryParse reports whether lower and upper form a valid interval, and
// returns it if they do. It never fails otherwise.
func TryParse[T any](lower, upper Bound[T]) (Interval[T], bool) {
	i, err := New(lower, upper)
	return i, err == nil
}

// Must returns i, panicking if err is not nil. It is meant for literals
// known to be valid.
func Must[T any](i Interval[T], err error) Interval[T] {
	if err != nil {
		panic(err)
	}
	return i
}

// Closed returns [lo, hi].
func Closed[T any](lo, hi T) (Interval[T], error) {
	return NewInterval(DirectionClosed, lo, hi, DirectionClosed)
}

// Open returns (lo, hi).
func Open[T any](lo, hi T) (Interval[T], error) {
	return NewInterval(DirectionOpen, lo, hi, DirectionOpen)
}

// ClosedOpen returns [lo, hi).
func ClosedOpen[T any](lo, hi T) (Interval[T], error) {
	return NewInterval(DirectionClosed, lo, hi, DirectionOpen)
}

// OpenClosed returns (lo, hi].
func OpenClosed[T any](lo, hi T) (Interval[T], error) {
	return NewInterval(DirectionOpen, lo, hi, DirectionClosed)
}

// AtLeast returns [lo, upmost of the domain.
func AtLeast[T any](lo T) (Interval[T], error) {
	return ray(SideLower, DirectionClosed, lo)
}

// GreaterThan returns (lo, upmost of the domain.
func GreaterThan[T any](lo T) (Interval[T], error) {
	return ray(SideLower, DirectionOpen, lo)
}

// AtMost returns lowest of the domain, hi].
func AtMost[T any](hi T) (Interval[T], error) {
	return ray(SideUpper, DirectionClosed, hi)
}

// LessThan returns lowest of the domain, hi).
func LessThan[T any](hi T) (Interval[T], error) {
	return ray(SideUpper, DirectionOpen, hi)
}

func ray[T any](side Side, direction Direction, v T) (Interval[T], error) {
	d, err := domainFor[T]()
	if err != nil {
		return Interval[T]{}, err
	}
	b, err := d.newBound(side, direction, v)
	if err != nil {
		return Interval[T]{}, err
	}
	u := d.universe()
	if side == SideLower {
		return d.newInterval(b, u.upper)
	}
	return d.newInterval(u.lower, b)
}

func (d *Domain[T]) newInterval(lower, upper Bound[T]) (Interval[T], error) {
	if lower.side != SideLower {
		return Interval[T]{}, errors.Wrapf(ErrInvalidArgument, "%s is not a lower bound", d.formatBound(lower))
	}
	if upper.side != SideUpper {
		return Interval[T]{}, errors.Wrapf(ErrInvalidArgument, "%s is not an upper bound", d.formatBound(upper))
	}
	c := d.Compare(lower.value, upper.value)
	if c > 0 {
		return Interval[T]{}, errors.Wrapf(ErrInvalidArgument, "lower bound %s lies after upper bound %s",
			d.formatBound(lower), d.formatBound(upper))
	}
	if c == 0 && lower.direction != upper.direction && !d.isInfinite(lower.value) {
		return Interval[T]{}, errors.Wrapf(ErrInvalidArgument, "zero-width interval %s, %s mixes open and closed bounds",
			d.formatBound(lower), d.formatBound(upper))
	}
	return Interval[T]{lower: lower, upper: upper}, nil
}

func (i Interval[T]) LowerBound() Bound[T] { return i.lower }

func (i Interval[T]) UpperBound() Bound[T] { return i.upper }

// IsEmpty reports whether i contains no value.
func (i Interval[T]) IsEmpty() bool {
	return mustDomain[T]().isEmpty(i)
}

// IsUniverse reports whether i spans the whole domain.
func (i Interval[T]) IsUniverse() bool {
	return mustDomain[T]().isUniverse(i)
}

// IsSingletonOf reports whether i is [v, v].
func (i Interval[T]) IsSingletonOf(v T) bool {
	d := mustDomain[T]()
	return d.isSingleton(i) && d.Compare(i.lower.value, v) == 0
}

// IsSingleton reports whether i holds exactly one value.
func (i Interval[T]) IsSingleton() bool {
	return mustDomain[T]().isSingleton(i)
}

// SingleValue returns the only value of a singleton interval.
func (i Interval[T]) SingleValue() (T, bool) {
	if i.IsSingleton() {
		return i.lower.value, true
	}
	var zero T
	return zero, false
}

// Contains reports whether v belongs to i. The infinite extremes of a
// domain are never contained by a well-formed interval.
func (i Interval[T]) Contains(v T) bool {
	return mustDomain[T]().contains(i, v)
}

// Complement returns everything in the domain that is not in i: zero, one or
// two intervals.
func (i Interval[T]) Complement() Collection[T] {
	return mustDomain[T]().complement(i)
}

// IntersectionWith returns the values in both i and other, possibly Empty.
func (i Interval[T]) IntersectionWith(other Interval[T]) Interval[T] {
	return mustDomain[T]().intersection(i, other)
}

// UnionWith returns the values in i or other, merged as by DenominatorHighest.
func (i Interval[T]) UnionWith(other Interval[T]) Collection[T] {
	d := mustDomain[T]()
	return d.collect(d.mergeHighest([]Interval[T]{i, other}))
}

// DifferenceWith returns the values in i that are not in other.
func (i Interval[T]) DifferenceWith(other Interval[T]) Collection[T] {
	return mustDomain[T]().difference(i, other)
}

// Compare orders intervals by lower bound, then by upper bound.
func (i Interval[T]) Compare(other Interval[T]) int {
	return mustDomain[T]().compareIntervals(i, other)
}

// Equal reports whether i and other have equal bounds. All empty intervals
// are equal.
func (i Interval[T]) Equal(other Interval[T]) bool {
	return mustDomain[T]().equal(i, other)
}

func (i Interval[T]) String() string {
	d := mustDomain[T]()
	if d.isEmpty(i) {
		return "∅"
	}
	return d.formatBound(i.lower) + ", " + d.formatBound(i.upper)
}

func (d *Domain[T]) universe() Interval[T] {
	dir := DirectionClosed
	if d.Infinite {
		dir = DirectionOpen
	}
	return Interval[T]{
		lower: Bound[T]{side: SideLower, direction: dir, value: d.Lowest},
		upper: Bound[T]{side: SideUpper, direction: dir, value: d.Upmost},
	}
}

// empty is the open zero-width interval on the zero value. It never equals
// a singleton, which is closed on both sides.
func (d *Domain[T]) empty() Interval[T] {
	var zero T
	return Interval[T]{
		lower: Bound[T]{side: SideLower, direction: DirectionOpen, value: zero},
		upper: Bound[T]{side: SideUpper, direction: DirectionOpen, value: zero},
	}
}

func (d *Domain[T]) isEmpty(i Interval[T]) bool {
	c := d.Compare(i.lower.value, i.upper.value)
	if c != 0 {
		return c > 0
	}
	if i.lower.direction == DirectionClosed && i.upper.direction == DirectionClosed {
		return false
	}
	// The zero-width ray on an infinite extreme with one closed side is kept.
	if i.lower.direction != i.upper.direction && d.isInfinite(i.lower.value) {
		return false
	}
	return true
}

func (d *Domain[T]) isUniverse(i Interval[T]) bool {
	u := d.universe()
	return d.equalBounds(i.lower, u.lower) && d.equalBounds(i.upper, u.upper)
}

func (d *Domain[T]) isSingleton(i Interval[T]) bool {
	return i.lower.direction == DirectionClosed && i.upper.direction == DirectionClosed &&
		d.Compare(i.lower.value, i.upper.value) == 0
}

func (d *Domain[T]) contains(i Interval[T], v T) bool {
	if d.isEmpty(i) {
		return false
	}
	if d.isInfinite(v) {
		return (i.lower.direction == DirectionClosed && d.Compare(i.lower.value, v) == 0) ||
			(i.upper.direction == DirectionClosed && d.Compare(i.upper.value, v) == 0)
	}
	return d.boundContains(i.lower, v) && d.boundContains(i.upper, v)
}

func (d *Domain[T]) equal(a, b Interval[T]) bool {
	ae, be := d.isEmpty(a), d.isEmpty(b)
	if ae || be {
		return ae && be
	}
	return d.equalBounds(a.lower, b.lower) && d.equalBounds(a.upper, b.upper)
}

func (d *Domain[T]) compareIntervals(a, b Interval[T]) int {
	if c := d.compareBounds(a.lower, b.lower); c != 0 {
		return c
	}
	return d.compareBounds(a.upper, b.upper)
}

// fragment builds one piece of a complement. Pieces that would need a
// closed bound on an infinite extreme, or that come out invalid or empty,
// are dropped.
func (d *Domain[T]) fragment(lower, upper Bound[T]) (Interval[T], bool) {
	if lower.direction == DirectionClosed && d.isInfinite(lower.value) {
		return Interval[T]{}, false
	}
	if upper.direction == DirectionClosed && d.isInfinite(upper.value) {
		return Interval[T]{}, false
	}
	i, err := d.newInterval(lower, upper)
	if err != nil || d.isEmpty(i) {
		return Interval[T]{}, false
	}
	return i, true
}

func (d *Domain[T]) complement(i Interval[T]) Collection[T] {
	u := d.universe()
	if d.isEmpty(i) {
		return Collection[T]{items: []Interval[T]{u}}
	}
	if d.isUniverse(i) {
		return Collection[T]{}
	}
	var out []Interval[T]
	if left, ok := d.fragment(u.lower, i.lower.reverse()); ok {
		out = append(out, left)
	}
	if right, ok := d.fragment(i.upper.reverse(), u.upper); ok {
		out = append(out, right)
	}
	return Collection[T]{items: out}
}

// laterLower and earlierUpper pick the more restrictive bound; at equal
// values the open one wins.
func (d *Domain[T]) laterLower(a, b Bound[T]) Bound[T] {
	if d.compareBounds(b, a) > 0 {
		return b
	}
	return a
}

func (d *Domain[T]) earlierUpper(a, b Bound[T]) Bound[T] {
	if d.compareBounds(b, a) < 0 {
		return b
	}
	return a
}

func (d *Domain[T]) intersection(a, b Interval[T]) Interval[T] {
	if d.isEmpty(a) || d.isEmpty(b) {
		return d.empty()
	}
	i, err := d.newInterval(d.laterLower(a.lower, b.lower), d.earlierUpper(a.upper, b.upper))
	if err != nil || d.isEmpty(i) {
		return d.empty()
	}
	return i
}

// intersects answers intersection(a, b) != Empty without building it.
func (d *Domain[T]) intersects(a, b Interval[T]) bool {
	if d.isEmpty(a) || d.isEmpty(b) {
		return false
	}
	lower, upper := d.laterLower(a.lower, b.lower), d.earlierUpper(a.upper, b.upper)
	c := d.Compare(lower.value, upper.value)
	if c != 0 {
		return c < 0
	}
	if lower.direction == DirectionClosed && upper.direction == DirectionClosed {
		return true
	}
	return lower.direction != upper.direction && d.isInfinite(lower.value)
}

func (d *Domain[T]) difference(a, b Interval[T]) Collection[T] {
	var out []Interval[T]
	for _, f := range d.complement(b).items {
		if x := d.intersection(a, f); !d.isEmpty(x) {
			out = append(out, x)
		}
	}
	return d.collect(out)
}
