package interval

import "github.com/cockroachdb/errors"

var (
	// ErrInvalidArgument is returned when a bound or interval would break its invariants.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrNilArgument is returned when a required set of intervals is missing.
	ErrNilArgument = errors.New("missing argument")
	// ErrUnknownDomain is returned when no Domain can be resolved for a type.
	ErrUnknownDomain = errors.New("unknown interval domain")
	// ErrDomainResolved is returned when a Domain is registered for a type that already has one.
	ErrDomainResolved = errors.New("interval domain already resolved")
	// ErrUnknownDenominator is returned when UnionOf is asked for a merge policy it does not know.
	ErrUnknownDenominator = errors.New("unknown union denominator")
)
