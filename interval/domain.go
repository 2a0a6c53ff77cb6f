package interval

import (
	"cmp"
	"math"
	"reflect"
	"slices"
	"sync"
	"time"
	"unsafe"

	"github.com/cockroachdb/errors"
	"golang.org/x/exp/constraints"
)

// Domain describes the ordered set of values an Interval ranges over.
type Domain[T any] struct {
	// Lowest and Upmost are the extremes used for unbounded ends.
	Lowest T
	Upmost T
	// Compare returns a negative number, zero or a positive number when a
	// is less than, equal to or greater than b.
	Compare func(a, b T) int
	// Infinite marks Lowest and Upmost as unreachable: bounds holding them
	// must be open, and no interval contains them.
	Infinite bool
}

// Bounded is implemented by types that describe their own domain. The
// methods must be callable on the zero value.
type Bounded[T any] interface {
	Lowest() T
	Upmost() T
	Compare(other T) int
}

const unixToInternal int64 = (1969*365 + 1969/4 - 1969/100 + 1969/400) * 24 * 60 * 60

var (
	minTime = time.Unix(math.MinInt64, 0).UTC()
	maxTime = time.Unix(math.MaxInt64-unixToInternal, 999999999).UTC()
)

// domains maps a reflect.Type to its *Domain. Each entry is stored once.
var domains sync.Map

// Register sets the domain of T. It must be called before T is used in any
// bound or interval; afterwards the domain is fixed and Register fails with
// ErrDomainResolved.
func Register[T any](d Domain[T]) error {
	t := reflect.TypeFor[T]()
	if d.Compare == nil {
		return errors.Wrapf(ErrInvalidArgument, "domain for %s has no compare function", t)
	}
	if d.Compare(d.Lowest, d.Upmost) > 0 {
		return errors.Wrapf(ErrInvalidArgument, "domain for %s: lowest %v is above upmost %v", t, d.Lowest, d.Upmost)
	}
	if _, loaded := domains.LoadOrStore(t, &d); loaded {
		return errors.Wrapf(ErrDomainResolved, "%s", t)
	}
	return nil
}

// RegisterEnum registers an enumeration: the domain spans from the smallest
// to the largest of values.
func RegisterEnum[T constraints.Integer](values ...T) error {
	if len(values) == 0 {
		return errors.Wrapf(ErrNilArgument, "no values for enum %s", reflect.TypeFor[T]())
	}
	return Register(Domain[T]{
		Lowest:  slices.Min(values),
		Upmost:  slices.Max(values),
		Compare: cmp.Compare[T],
	})
}

// RegisterFlags registers a bit-flag set: the domain spans from the smallest
// flag to the union of all flags.
func RegisterFlags[T constraints.Integer](flags ...T) error {
	if len(flags) == 0 {
		return errors.Wrapf(ErrNilArgument, "no flags for %s", reflect.TypeFor[T]())
	}
	var all T
	for _, f := range flags {
		all |= f
	}
	return Register(Domain[T]{
		Lowest:  slices.Min(flags),
		Upmost:  all,
		Compare: cmp.Compare[T],
	})
}

// DomainOf returns the domain of T, resolving it on first use.
func DomainOf[T any]() (Domain[T], error) {
	d, err := domainFor[T]()
	if err != nil {
		return Domain[T]{}, err
	}
	return *d, nil
}

func domainFor[T any]() (*Domain[T], error) {
	t := reflect.TypeFor[T]()
	if v, ok := domains.Load(t); ok {
		return v.(*Domain[T]), nil
	}
	d, ok := inferDomain[T]()
	if !ok {
		return nil, errors.Wrapf(ErrUnknownDomain, "%s", t)
	}
	// Concurrent first users compute the same domain; the first store wins.
	v, _ := domains.LoadOrStore(t, d)
	return v.(*Domain[T]), nil
}

func mustDomain[T any]() *Domain[T] {
	d, err := domainFor[T]()
	if err != nil {
		panic(err)
	}
	return d
}

func inferDomain[T any]() (*Domain[T], bool) {
	if b, ok := any(*new(T)).(Bounded[T]); ok {
		return &Domain[T]{
			Lowest: b.Lowest(),
			Upmost: b.Upmost(),
			Compare: func(x, y T) int {
				return any(x).(Bounded[T]).Compare(y)
			},
		}, true
	}
	if d, ok := builtinDomain[T](); ok {
		return d, true
	}
	return kindDomain[T](reflect.TypeFor[T]())
}

func builtinDomain[T any]() (*Domain[T], bool) {
	var d any
	switch any(*new(T)).(type) {
	case int:
		d = signedDomain[int]()
	case int8:
		d = signedDomain[int8]()
	case int16:
		d = signedDomain[int16]()
	case int32:
		d = signedDomain[int32]()
	case int64:
		d = signedDomain[int64]()
	case time.Duration:
		d = signedDomain[time.Duration]()
	case uint:
		d = unsignedDomain[uint]()
	case uint8:
		d = unsignedDomain[uint8]()
	case uint16:
		d = unsignedDomain[uint16]()
	case uint32:
		d = unsignedDomain[uint32]()
	case uint64:
		d = unsignedDomain[uint64]()
	case uintptr:
		d = unsignedDomain[uintptr]()
	case float32:
		d = floatDomain[float32]()
	case float64:
		d = floatDomain[float64]()
	case time.Time:
		d = &Domain[time.Time]{Lowest: minTime, Upmost: maxTime, Compare: time.Time.Compare}
	default:
		return nil, false
	}
	return d.(*Domain[T]), true
}

func signedDomain[T constraints.Signed]() *Domain[T] {
	lo := T(-1) << (reflect.TypeFor[T]().Bits() - 1)
	return &Domain[T]{Lowest: lo, Upmost: ^lo, Compare: cmp.Compare[T]}
}

func unsignedDomain[T constraints.Unsigned]() *Domain[T] {
	return &Domain[T]{Lowest: 0, Upmost: ^T(0), Compare: cmp.Compare[T]}
}

func floatDomain[T constraints.Float]() *Domain[T] {
	return &Domain[T]{
		Lowest:   T(math.Inf(-1)),
		Upmost:   T(math.Inf(1)),
		Compare:  cmp.Compare[T],
		Infinite: true,
	}
}

// kindDomain covers named types whose underlying type is numeric.
// Reflection builds the extremes; comparisons read values through a
// reader picked here for the kind and size of T.
func kindDomain[T any](rt reflect.Type) (*Domain[T], bool) {
	build := func(set func(v reflect.Value)) T {
		v := reflect.New(rt).Elem()
		set(v)
		return v.Interface().(T)
	}
	switch rt.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		lo := int64(-1) << (rt.Bits() - 1)
		read := signedReader[T](rt.Size())
		return &Domain[T]{
			Lowest:  build(func(v reflect.Value) { v.SetInt(lo) }),
			Upmost:  build(func(v reflect.Value) { v.SetInt(^lo) }),
			Compare: func(a, b T) int { return cmp.Compare(read(a), read(b)) },
		}, true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		hi := uint64(math.MaxUint64) >> (64 - rt.Bits())
		read := unsignedReader[T](rt.Size())
		return &Domain[T]{
			Lowest:  build(func(v reflect.Value) { v.SetUint(0) }),
			Upmost:  build(func(v reflect.Value) { v.SetUint(hi) }),
			Compare: func(a, b T) int { return cmp.Compare(read(a), read(b)) },
		}, true
	case reflect.Float32, reflect.Float64:
		read := floatReader[T](rt.Size())
		return &Domain[T]{
			Lowest:   build(func(v reflect.Value) { v.SetFloat(math.Inf(-1)) }),
			Upmost:   build(func(v reflect.Value) { v.SetFloat(math.Inf(1)) }),
			Compare:  func(a, b T) int { return cmp.Compare(read(a), read(b)) },
			Infinite: true,
		}, true
	}
	return nil, false
}

// A named numeric type shares the memory layout of its underlying type, so
// the readers below reinterpret &v as a pointer to a builtin of that size.

func signedReader[T any](size uintptr) func(T) int64 {
	switch size {
	case 1:
		return func(v T) int64 { return int64(*(*int8)(unsafe.Pointer(&v))) }
	case 2:
		return func(v T) int64 { return int64(*(*int16)(unsafe.Pointer(&v))) }
	case 4:
		return func(v T) int64 { return int64(*(*int32)(unsafe.Pointer(&v))) }
	default:
		return func(v T) int64 { return *(*int64)(unsafe.Pointer(&v)) }
	}
}

func unsignedReader[T any](size uintptr) func(T) uint64 {
	switch size {
	case 1:
		return func(v T) uint64 { return uint64(*(*uint8)(unsafe.Pointer(&v))) }
	case 2:
		return func(v T) uint64 { return uint64(*(*uint16)(unsafe.Pointer(&v))) }
	case 4:
		return func(v T) uint64 { return uint64(*(*uint32)(unsafe.Pointer(&v))) }
	default:
		return func(v T) uint64 { return *(*uint64)(unsafe.Pointer(&v)) }
	}
}

func floatReader[T any](size uintptr) func(T) float64 {
	if size == 4 {
		return func(v T) float64 { return float64(*(*float32)(unsafe.Pointer(&v))) }
	}
	return func(v T) float64 { return *(*float64)(unsafe.Pointer(&v)) }
}

// isInfinite reports whether v is one of the unreachable extremes.
func (d *Domain[T]) isInfinite(v T) bool {
	return d.Infinite && (d.Compare(v, d.Lowest) == 0 || d.Compare(v, d.Upmost) == 0)
}

func (d *Domain[T]) inRange(v T) bool {
	return d.Compare(v, d.Lowest) >= 0 && d.Compare(v, d.Upmost) <= 0
}
