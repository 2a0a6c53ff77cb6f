package interval

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// Bound is one end of an Interval: the side it closes, whether it admits
// its own value, and that value.
//
// The zero Bound is an open lower bound on the zero value of T.
type Bound[T any] struct {
	side      Side
	direction Direction
	value     T
}

// NewBound returns a bound on value. A closed bound on an infinite extreme
// of the domain, or a value outside the domain, is rejected with
// ErrInvalidArgument.
func NewBound[T any](side Side, direction Direction, value T) (Bound[T], error) {
	d, err := domainFor[T]()
	if err != nil {
		return Bound[T]{}, err
	}
	return d.newBound(side, direction, value)
}

func (d *Domain[T]) newBound(side Side, direction Direction, value T) (Bound[T], error) {
	if !side.IsASide() {
		return Bound[T]{}, errors.Wrapf(ErrInvalidArgument, "unknown side %s", side)
	}
	if !direction.IsADirection() {
		return Bound[T]{}, errors.Wrapf(ErrInvalidArgument, "unknown direction %s", direction)
	}
	if !d.inRange(value) {
		return Bound[T]{}, errors.Wrapf(ErrInvalidArgument, "value %v is outside the domain", value)
	}
	if direction == DirectionClosed && d.isInfinite(value) {
		return Bound[T]{}, errors.Wrapf(ErrInvalidArgument, "%s bound on infinite value %v must be open", side, value)
	}
	return Bound[T]{side: side, direction: direction, value: value}, nil
}

// reverse flips side and direction without any check. A closed bound on an
// infinite extreme may come out of it; callers normalise it away.
func (b Bound[T]) reverse() Bound[T] {
	return Bound[T]{side: b.side.opposite(), direction: b.direction.opposite(), value: b.value}
}

func (b Bound[T]) Side() Side { return b.side }

func (b Bound[T]) Direction() Direction { return b.direction }

func (b Bound[T]) Value() T { return b.value }

func (b Bound[T]) IsClosed() bool { return b.direction == DirectionClosed }

func (b Bound[T]) IsOpen() bool { return b.direction == DirectionOpen }

// CompareTo orders bounds for interval algebra. Values are compared first;
// at equal values a lower bound sorts before an upper one, a closed upper
// bound after an open one, and a closed lower bound before an open one.
func (b Bound[T]) CompareTo(other Bound[T]) int {
	return mustDomain[T]().compareBounds(b, other)
}

// UnionCompareTo is the adjacency comparator used when merging. Bounds on
// the same value touch (0) when either of them is closed, so ]0,1] and
// ]1,2[ merge into ]0,2[. Two open bounds on opposite sides of a value
// leave that value out: the upper one sorts first.
func (b Bound[T]) UnionCompareTo(other Bound[T]) int {
	return mustDomain[T]().unionCompare(b, other)
}

// Contains reports whether v lies on the admitted side of b.
func (b Bound[T]) Contains(v T) bool {
	return mustDomain[T]().boundContains(b, v)
}

func (b Bound[T]) Equal(other Bound[T]) bool {
	return mustDomain[T]().equalBounds(b, other)
}

func (b Bound[T]) String() string {
	return mustDomain[T]().formatBound(b)
}

func (d *Domain[T]) compareBounds(a, b Bound[T]) int {
	if c := d.Compare(a.value, b.value); c != 0 {
		return c
	}
	if a.side != b.side {
		if a.side == SideLower {
			return -1
		}
		return 1
	}
	if a.direction == b.direction {
		return 0
	}
	switch {
	case a.side == SideUpper && a.direction == DirectionClosed:
		return 1
	case a.side == SideUpper:
		return -1
	case a.direction == DirectionClosed:
		return -1
	default:
		return 1
	}
}

func (d *Domain[T]) unionCompare(a, b Bound[T]) int {
	if c := d.Compare(a.value, b.value); c != 0 {
		return c
	}
	if a.direction == DirectionClosed || b.direction == DirectionClosed || a.side == b.side {
		return 0
	}
	if a.side == SideUpper {
		return -1
	}
	return 1
}

func (d *Domain[T]) boundContains(b Bound[T], v T) bool {
	c := d.Compare(v, b.value)
	switch {
	case b.side == SideLower && b.direction == DirectionClosed:
		return c >= 0
	case b.side == SideLower:
		return c > 0
	case b.direction == DirectionClosed:
		return c <= 0
	default:
		return c < 0
	}
}

func (d *Domain[T]) equalBounds(a, b Bound[T]) bool {
	return a.side == b.side && a.direction == b.direction && d.Compare(a.value, b.value) == 0
}

func (d *Domain[T]) formatBound(b Bound[T]) string {
	v := fmt.Sprint(b.value)
	if d.isInfinite(b.value) {
		v = "+∞"
		if d.Compare(b.value, d.Lowest) == 0 {
			v = "-∞"
		}
	}
	if b.side == SideLower {
		if b.direction == DirectionClosed {
			return "[" + v
		}
		return "(" + v
	}
	if b.direction == DirectionClosed {
		return v + "]"
	}
	return v + ")"
}
