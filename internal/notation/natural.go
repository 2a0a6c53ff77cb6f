package notation

import (
	"math"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/vipcxj/intervals/interval"
)

// Natural is a set of natural numbers (0, 1, 2, ...) held as sorted,
// disjoint closed intervals in which no two members are adjacent.
//
// Its text form joins tokens with '_':
//
//	"all"    -> every natural number
//	"N"      -> a single natural number
//	"N-M"    -> closed interval [N, M]
//	"N-"     -> >= N
//	"-M"     -> <= M
//
// Numbers must be non-decreasing when read left to right, so "1_3-5_7-7"
// is valid and "3_1-4" is not.
type Natural struct {
	set interval.Collection[int64]
}

// AllNatural accepts every natural number.
func AllNatural() Natural {
	return Natural{set: interval.NewCollection(naturals())}
}

func naturals() interval.Interval[int64] {
	return interval.Must(interval.AtLeast[int64](0))
}

// ParseNatural reads the '_' separated form. An empty string is the empty
// set.
func ParseNatural(v string) (Natural, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return Natural{}, nil
	}
	if v == "all" {
		return AllNatural(), nil
	}

	var items []interval.Interval[int64]
	var prev int64
	for i, tok := range strings.Split(v, "_") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			return Natural{}, errors.Wrapf(ErrSyntax, "empty token at position %d", i)
		}

		if strings.Count(tok, "-") > 1 {
			if tok == "--" || !strings.HasPrefix(tok, "-") || !strings.HasSuffix(tok, "-") {
				return Natural{}, errors.Wrapf(ErrSyntax, "invalid token %q", tok)
			}
			if _, err := parseNatural(tok[1 : len(tok)-1]); err != nil {
				return Natural{}, errors.Wrapf(err, "invalid token %q", tok)
			}
			items = append(items, naturals())
			continue
		}

		left, right, isRange := strings.Cut(tok, "-")
		if !isRange {
			n, err := parseNatural(tok)
			if err != nil {
				return Natural{}, errors.Wrapf(err, "invalid token %q", tok)
			}
			if err := checkOrder(prev, n); err != nil {
				return Natural{}, err
			}
			items = append(items, interval.Must(interval.SingletonOf(n)))
			prev = n
			continue
		}

		switch {
		case left == "" && right == "":
			return Natural{}, errors.Wrapf(ErrSyntax, "invalid token %q", tok)
		case left != "" && right != "":
			n1, err := parseNatural(left)
			if err != nil {
				return Natural{}, errors.Wrapf(err, "invalid left bound in %q", tok)
			}
			n2, err := parseNatural(right)
			if err != nil {
				return Natural{}, errors.Wrapf(err, "invalid right bound in %q", tok)
			}
			if n1 > n2 {
				return Natural{}, errors.Wrapf(ErrSyntax, "invalid range %q: min > max", tok)
			}
			if err := checkOrder(prev, n1); err != nil {
				return Natural{}, err
			}
			items = append(items, interval.Must(interval.Closed(n1, n2)))
			prev = n2
		case left != "":
			n, err := parseNatural(left)
			if err != nil {
				return Natural{}, errors.Wrapf(err, "invalid bound in %q", tok)
			}
			if err := checkOrder(prev, n); err != nil {
				return Natural{}, err
			}
			items = append(items, interval.Must(interval.AtLeast(n)))
			prev = n
		default:
			n, err := parseNatural(right)
			if err != nil {
				return Natural{}, errors.Wrapf(err, "invalid bound in %q", tok)
			}
			if err := checkOrder(prev, n); err != nil {
				return Natural{}, err
			}
			items = append(items, interval.Must(interval.Closed(0, n)))
			prev = n
		}
	}
	return Natural{set: normalizeNatural(items)}, nil
}

func parseNatural(s string) (int64, error) {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil || n < 0 {
		return 0, errors.Wrapf(ErrSyntax, "not natural number: %q", s)
	}
	return n, nil
}

func checkOrder(prev, n int64) error {
	if n < prev {
		return errors.Wrapf(ErrSyntax, "numbers must be non-decreasing: %d < %d", n, prev)
	}
	return nil
}

// normalizeNatural merges items, clips them to the naturals and joins
// members that are adjacent as integers.
func normalizeNatural(items []interval.Interval[int64]) interval.Collection[int64] {
	merged, _ := interval.UnionOf(interval.DenominatorHighest, items...)
	var clipped []interval.Interval[int64]
	for _, i := range merged.All() {
		clipped = append(clipped, i.IntersectionWith(naturals()))
	}
	var out []interval.Interval[int64]
	for _, cur := range CanonicalAll(interval.NewCollection(clipped...)).All() {
		if n := len(out); n > 0 {
			last := out[n-1]
			hi := last.UpperBound().Value()
			if hi != math.MaxInt64 && hi+1 >= cur.LowerBound().Value() {
				out[n-1] = interval.Must(interval.Closed(last.LowerBound().Value(), cur.UpperBound().Value()))
				continue
			}
		}
		out = append(out, cur)
	}
	return interval.NewCollection(out...)
}

// Test reports whether n is in the set.
func (f Natural) Test(n int64) bool {
	return n >= 0 && f.set.Contains(n)
}

// IsEmpty reports whether the set holds no number.
func (f Natural) IsEmpty() bool {
	return f.set.Len() == 0
}

// IsAll reports whether the set holds every natural number.
func (f Natural) IsAll() bool {
	return f.set.Len() == 1 && f.set.At(0).Equal(naturals())
}

// Collection returns the normalized members.
func (f Natural) Collection() interval.Collection[int64] {
	return f.set
}

// String renders the normalized set so that ParseNatural reads it back:
// "all", or "N", "N-M" and "N-" tokens joined by '_'. The empty set is "".
func (f Natural) String() string {
	if f.IsAll() {
		return "all"
	}
	var parts []string
	for _, i := range f.set.All() {
		lo, hi := i.LowerBound().Value(), i.UpperBound().Value()
		switch {
		case hi == math.MaxInt64:
			parts = append(parts, strconv.FormatInt(lo, 10)+"-")
		case lo == hi:
			parts = append(parts, strconv.FormatInt(lo, 10))
		default:
			parts = append(parts, strconv.FormatInt(lo, 10)+"-"+strconv.FormatInt(hi, 10))
		}
	}
	return strings.Join(parts, "_")
}
