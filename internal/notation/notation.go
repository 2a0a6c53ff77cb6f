// Package notation reads and writes the compact interval syntax used on the
// command line: N, =N, >N, >=N, <N, <=N and (a,b), [a,b], [a,b), (a,b].
// An empty side in bracket form stands for the end of the domain.
package notation

import (
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/vipcxj/intervals/interval"
)

// Number is the set of value types the notation can spell.
type Number interface {
	int64 | float64
}

// ErrSyntax is returned for text that is not valid interval notation.
var ErrSyntax = errors.New("invalid interval notation")

const emptySymbol = "∅"

// Parse reads value as an interval of T.
//
// An empty value is the universe when emptyAsUniverse is set and an error
// otherwise. "∅" and "empty" denote the empty interval. Invariant violations
// of the resulting interval are reported with the engine's errors.
func Parse[T Number](value string, emptyAsUniverse bool) (interval.Interval[T], error) {
	s := strings.TrimSpace(value)
	if s == "" {
		if emptyAsUniverse {
			return interval.Universe[T](), nil
		}
		return interval.Interval[T]{}, errors.Wrap(ErrSyntax, "empty range")
	}
	if s == emptySymbol || strings.EqualFold(s, "empty") {
		return interval.Empty[T](), nil
	}

	switch {
	case strings.HasPrefix(s, "="):
		n, err := ParseValue[T](s[1:])
		if err != nil {
			return interval.Interval[T]{}, errors.Wrapf(err, "invalid =N %q", value)
		}
		return interval.SingletonOf(n)
	case strings.HasPrefix(s, ">="):
		n, err := ParseValue[T](s[2:])
		if err != nil {
			return interval.Interval[T]{}, errors.Wrapf(err, "invalid >=N %q", value)
		}
		return interval.AtLeast(n)
	case strings.HasPrefix(s, ">"):
		n, err := ParseValue[T](s[1:])
		if err != nil {
			return interval.Interval[T]{}, errors.Wrapf(err, "invalid >N %q", value)
		}
		return interval.GreaterThan(n)
	case strings.HasPrefix(s, "<="):
		n, err := ParseValue[T](s[2:])
		if err != nil {
			return interval.Interval[T]{}, errors.Wrapf(err, "invalid <=N %q", value)
		}
		return interval.AtMost(n)
	case strings.HasPrefix(s, "<"):
		n, err := ParseValue[T](s[1:])
		if err != nil {
			return interval.Interval[T]{}, errors.Wrapf(err, "invalid <N %q", value)
		}
		return interval.LessThan(n)
	}

	if len(s) >= 2 && (s[0] == '(' || s[0] == '[') && (s[len(s)-1] == ')' || s[len(s)-1] == ']') {
		return parseBrackets[T](value, s)
	}

	n, err := ParseValue[T](s)
	if err != nil {
		return interval.Interval[T]{}, errors.Wrapf(ErrSyntax, "unrecognized range format %q", value)
	}
	return interval.SingletonOf(n)
}

// MustParse is Parse for literals known to be valid.
func MustParse[T Number](value string) interval.Interval[T] {
	i, err := Parse[T](value, false)
	if err != nil {
		panic(err)
	}
	return i
}

// ParseAll parses every value, stopping at the first error.
func ParseAll[T Number](values []string) ([]interval.Interval[T], error) {
	out := make([]interval.Interval[T], 0, len(values))
	for _, v := range values {
		i, err := Parse[T](v, false)
		if err != nil {
			return nil, err
		}
		out = append(out, i)
	}
	return out, nil
}

func parseBrackets[T Number](value, s string) (interval.Interval[T], error) {
	lowerDir := interval.DirectionOpen
	if s[0] == '[' {
		lowerDir = interval.DirectionClosed
	}
	upperDir := interval.DirectionOpen
	if s[len(s)-1] == ']' {
		upperDir = interval.DirectionClosed
	}
	parts := strings.SplitN(s[1:len(s)-1], ",", 2)
	if len(parts) != 2 {
		return interval.Interval[T]{}, errors.Wrapf(ErrSyntax, "invalid interval syntax %q", value)
	}
	left, right := strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1])
	u := interval.Universe[T]()

	lower := u.LowerBound()
	if left != "" {
		n, err := ParseValue[T](left)
		if err != nil {
			return interval.Interval[T]{}, errors.Wrapf(err, "invalid left value in %q", value)
		}
		if lower, err = interval.NewBound(interval.SideLower, lowerDir, n); err != nil {
			return interval.Interval[T]{}, err
		}
	} else if lowerDir == interval.DirectionClosed {
		return interval.Interval[T]{}, errors.Wrapf(ErrSyntax, "unbounded side must be open on left: %q", value)
	}

	upper := u.UpperBound()
	if right != "" {
		n, err := ParseValue[T](right)
		if err != nil {
			return interval.Interval[T]{}, errors.Wrapf(err, "invalid right value in %q", value)
		}
		if upper, err = interval.NewBound(interval.SideUpper, upperDir, n); err != nil {
			return interval.Interval[T]{}, err
		}
	} else if upperDir == interval.DirectionClosed {
		return interval.Interval[T]{}, errors.Wrapf(ErrSyntax, "unbounded side must be open on right: %q", value)
	}

	return interval.New(lower, upper)
}

// ParseValue reads a single number of T. Floats accept "inf" and "-inf",
// which name the ends of the float domain.
func ParseValue[T Number](tok string) (T, error) {
	tok = strings.TrimSpace(tok)
	if tok == "" {
		return 0, errors.Wrap(ErrSyntax, "empty number")
	}
	var out T
	switch p := any(&out).(type) {
	case *int64:
		n, err := strconv.ParseInt(tok, 10, 64)
		if err != nil {
			return 0, errors.Wrapf(ErrSyntax, "%v", err)
		}
		*p = n
	case *float64:
		n, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return 0, errors.Wrapf(ErrSyntax, "%v", err)
		}
		*p = n
	}
	return out, nil
}

// Format renders i in the compact form: a singleton as "N", a ray as
// ">=N", ">N", "<=N" or "<N", and anything else in bracket form. Ends that
// reach the end of the domain print as "-∞"/"∞" when showInfinity is set
// and are left blank otherwise, which Parse reads back.
func Format[T Number](i interval.Interval[T], showInfinity bool) string {
	if i.IsEmpty() {
		return emptySymbol
	}
	lower, upper := i.LowerBound(), i.UpperBound()
	if v, ok := i.SingleValue(); ok {
		return formatValue(v)
	}

	u := interval.Universe[T]()
	lowerOpenEnded := lower.Equal(u.LowerBound())
	upperOpenEnded := upper.Equal(u.UpperBound())

	switch {
	case lowerOpenEnded && !upperOpenEnded:
		if upper.IsClosed() {
			return "<=" + formatValue(upper.Value())
		}
		return "<" + formatValue(upper.Value())
	case upperOpenEnded && !lowerOpenEnded:
		if lower.IsClosed() {
			return ">=" + formatValue(lower.Value())
		}
		return ">" + formatValue(lower.Value())
	}

	var b strings.Builder
	if lowerOpenEnded {
		b.WriteString("(")
		if showInfinity {
			b.WriteString("-∞")
		}
	} else {
		b.WriteString(bracket(lower))
		b.WriteString(formatValue(lower.Value()))
	}
	b.WriteString(",")
	if upperOpenEnded {
		if showInfinity {
			b.WriteString("∞")
		}
		b.WriteString(")")
	} else {
		b.WriteString(formatValue(upper.Value()))
		b.WriteString(bracket(upper))
	}
	return b.String()
}

// String is Format with infinities shown.
func String[T Number](i interval.Interval[T]) string {
	return Format(i, true)
}

// FormatAll renders each interval of c; an empty collection yields "∅".
func FormatAll[T Number](c interval.Collection[T], showInfinity bool) []string {
	if c.Len() == 0 {
		return []string{emptySymbol}
	}
	out := make([]string, 0, c.Len())
	for _, i := range c.All() {
		out = append(out, Format(i, showInfinity))
	}
	return out
}

func bracket[T any](b interval.Bound[T]) string {
	switch {
	case b.Side() == interval.SideLower && b.IsClosed():
		return "["
	case b.Side() == interval.SideLower:
		return "("
	case b.IsClosed():
		return "]"
	default:
		return ")"
	}
}

func formatValue[T Number](v T) string {
	switch x := any(v).(type) {
	case int64:
		return strconv.FormatInt(x, 10)
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64)
	}
	return ""
}
