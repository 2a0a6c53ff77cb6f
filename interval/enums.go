//go:generate go run github.com/dmarkham/enumer -type=Side -trimprefix=Side -transform=kebab
//go:generate go run github.com/dmarkham/enumer -type=Direction -trimprefix=Direction -transform=kebab
//go:generate go run github.com/dmarkham/enumer -type=Denominator -trimprefix=Denominator -transform=kebab
package interval

// Side tells which end of an interval a Bound closes.
type Side uint8

const (
	SideLower Side = iota
	SideUpper
)

func (s Side) opposite() Side {
	if s == SideLower {
		return SideUpper
	}
	return SideLower
}

// Direction tells whether a Bound admits its own value (closed) or not (open).
type Direction uint8

const (
	DirectionOpen Direction = iota
	DirectionClosed
)

func (d Direction) opposite() Direction {
	if d == DirectionOpen {
		return DirectionClosed
	}
	return DirectionOpen
}

// Denominator selects how UnionOf merges its inputs.
type Denominator uint8

const (
	// DenominatorLowest keeps the finest partition: every fragment is covered
	// by exactly the same subset of inputs.
	DenominatorLowest Denominator = iota
	// DenominatorHighest merges touching or overlapping inputs into maximal
	// disjoint envelopes.
	DenominatorHighest
)
