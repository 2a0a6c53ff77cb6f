// Package interval implements an algebra of bounded subsets of totally
// ordered domains.
//
// An Interval is a pair of Bounds, each of which is either open (the
// boundary value is excluded) or closed (it is included). Unbounded ends
// are expressed with the domain's own extreme values rather than with a
// separate marker, so every Bound is an ordinary comparable value. The
// extremes of a type are described by a Domain, resolved once per type:
//
//   - explicitly, through Register, RegisterEnum or RegisterFlags;
//   - through the Bounded capability implemented by the type itself;
//   - by kind: integers use their min/max, floats use -Inf/+Inf, and
//     time.Time uses the earliest and latest instants reachable with
//     time.Unix.
//
// Results that cannot be represented by one Interval (the complement of a
// bounded interval, the union of disjoint intervals) are returned as a
// Collection. All values are immutable and safe for concurrent use.
package interval
