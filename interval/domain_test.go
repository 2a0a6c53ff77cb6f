package interval

import (
	"math"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type weekday int

const (
	monday weekday = iota + 1
	tuesday
	wednesday
	thursday
	friday
	saturday
	sunday
)

type permission uint8

const (
	permRead permission = 1 << iota
	permWrite
	permExec
)

type celsius float64

type port uint16

type shard int32

type level int8

type offset int

type counter uint64

type reading float32

type label string

// grade orders letter grades from F (lowest) to A (upmost).
type grade string

func (grade) Lowest() grade { return "F" }

func (grade) Upmost() grade { return "A" }

func (g grade) Compare(other grade) int {
	return strings.Compare(string(other), string(g))
}

var (
	weekdayErr    = RegisterEnum(monday, tuesday, wednesday, thursday, friday, saturday, sunday)
	permissionErr = RegisterFlags(permRead, permWrite, permExec)
)

func TestDomainOf_Builtins(t *testing.T) {
	i64, err := DomainOf[int64]()
	require.NoError(t, err)
	assert.Equal(t, int64(math.MinInt64), i64.Lowest)
	assert.Equal(t, int64(math.MaxInt64), i64.Upmost)
	assert.False(t, i64.Infinite)

	u8, err := DomainOf[uint8]()
	require.NoError(t, err)
	assert.Equal(t, uint8(0), u8.Lowest)
	assert.Equal(t, uint8(math.MaxUint8), u8.Upmost)

	i16, err := DomainOf[int16]()
	require.NoError(t, err)
	assert.Equal(t, int16(math.MinInt16), i16.Lowest)
	assert.Equal(t, int16(math.MaxInt16), i16.Upmost)

	f64, err := DomainOf[float64]()
	require.NoError(t, err)
	assert.True(t, math.IsInf(f64.Lowest, -1))
	assert.True(t, math.IsInf(f64.Upmost, 1))
	assert.True(t, f64.Infinite)

	d, err := DomainOf[time.Duration]()
	require.NoError(t, err)
	assert.Equal(t, time.Duration(math.MaxInt64), d.Upmost)
}

func TestDomainOf_Time(t *testing.T) {
	d, err := DomainOf[time.Time]()
	require.NoError(t, err)
	now := time.Now()
	assert.Negative(t, d.Compare(d.Lowest, now))
	assert.Positive(t, d.Compare(d.Upmost, now))
	assert.True(t, Universe[time.Time]().Contains(now))
	assert.True(t, Universe[time.Time]().Contains(time.Time{}))
}

func TestDomainOf_NamedKinds(t *testing.T) {
	c, err := DomainOf[celsius]()
	require.NoError(t, err)
	assert.True(t, c.Infinite)
	assert.True(t, math.IsInf(float64(c.Upmost), 1))
	assert.Equal(t, -1, c.Compare(celsius(-3), celsius(2)))

	p, err := DomainOf[port]()
	require.NoError(t, err)
	assert.Equal(t, port(0), p.Lowest)
	assert.Equal(t, port(math.MaxUint16), p.Upmost)
	assert.True(t, Universe[port]().Contains(port(65535)))
}

func TestDomainOf_NamedKindOrder(t *testing.T) {
	l, err := DomainOf[level]()
	require.NoError(t, err)
	assert.Equal(t, level(math.MinInt8), l.Lowest)
	assert.Equal(t, -1, l.Compare(level(-3), level(2)))
	assert.Equal(t, -1, l.Compare(level(math.MinInt8), level(math.MaxInt8)))

	s, err := DomainOf[shard]()
	require.NoError(t, err)
	assert.Equal(t, 1, s.Compare(shard(70000), shard(-70000)))

	o, err := DomainOf[offset]()
	require.NoError(t, err)
	assert.Equal(t, -1, o.Compare(offset(math.MinInt64), offset(-1)))
	assert.Equal(t, 0, o.Compare(offset(42), offset(42)))

	p, err := DomainOf[port]()
	require.NoError(t, err)
	assert.Equal(t, 1, p.Compare(port(40000), port(300)))

	c, err := DomainOf[counter]()
	require.NoError(t, err)
	assert.Equal(t, 1, c.Compare(counter(math.MaxUint64), counter(1)))
	assert.Equal(t, counter(math.MaxUint64), c.Upmost)

	r, err := DomainOf[reading]()
	require.NoError(t, err)
	assert.True(t, r.Infinite)
	assert.Equal(t, -1, r.Compare(reading(-0.5), reading(0.25)))
	assert.Equal(t, 1, r.Compare(r.Upmost, reading(math.MaxFloat32)))

	i := Must(Closed(level(-10), level(10)))
	assert.True(t, i.Contains(level(-10)))
	assert.False(t, i.Contains(level(11)))
	assert.Equal(t, "{[-128, -10); (10, 127]}", ComplementOf(i).String())
}

func TestRegisterEnum(t *testing.T) {
	require.NoError(t, weekdayErr)
	d, err := DomainOf[weekday]()
	require.NoError(t, err)
	assert.Equal(t, monday, d.Lowest)
	assert.Equal(t, sunday, d.Upmost)

	u := Universe[weekday]()
	assert.False(t, u.IsSingletonOf(monday))
	assert.True(t, u.Contains(sunday))
	assert.False(t, u.Contains(weekday(0)))

	_, err = NewBound(SideLower, DirectionClosed, weekday(8))
	assert.ErrorIs(t, err, ErrInvalidArgument)

	err = RegisterEnum(monday, tuesday)
	assert.ErrorIs(t, err, ErrDomainResolved)
}

func TestRegisterFlags(t *testing.T) {
	require.NoError(t, permissionErr)
	d, err := DomainOf[permission]()
	require.NoError(t, err)
	assert.Equal(t, permRead, d.Lowest)
	assert.Equal(t, permRead|permWrite|permExec, d.Upmost)

	assert.ErrorIs(t, RegisterFlags[permission](), ErrNilArgument)
}

func TestRegister_Rejects(t *testing.T) {
	assert.ErrorIs(t, Register(Domain[label]{Lowest: "a", Upmost: "z"}), ErrInvalidArgument)
	assert.ErrorIs(t, Register(Domain[label]{Lowest: "z", Upmost: "a", Compare: func(a, b label) int {
		return strings.Compare(string(a), string(b))
	}}), ErrInvalidArgument)

	_, err := DomainOf[int]()
	require.NoError(t, err)
	assert.ErrorIs(t, Register(Domain[int]{Lowest: 0, Upmost: 1, Compare: func(a, b int) int { return a - b }}), ErrDomainResolved)
}

func TestDomainOf_Bounded(t *testing.T) {
	d, err := DomainOf[grade]()
	require.NoError(t, err)
	assert.Equal(t, grade("F"), d.Lowest)
	assert.Equal(t, grade("A"), d.Upmost)

	passing := Must(Closed(grade("C"), grade("A")))
	assert.True(t, passing.Contains("B"))
	assert.False(t, passing.Contains("D"))
}

func TestDomainOf_Unknown(t *testing.T) {
	_, err := DomainOf[label]()
	assert.ErrorIs(t, err, ErrUnknownDomain)

	_, err = NewBound(SideLower, DirectionClosed, label("x"))
	assert.ErrorIs(t, err, ErrUnknownDomain)

	_, err = Closed(label("a"), label("b"))
	assert.ErrorIs(t, err, ErrUnknownDomain)

	assert.Panics(t, func() { Universe[label]() })
}

func TestDomainOf_ConcurrentFirstUse(t *testing.T) {
	const workers = 16
	var wg sync.WaitGroup
	got := make([]Domain[shard], workers)
	errs := make([]error, workers)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			got[w], errs[w] = DomainOf[shard]()
		}(w)
	}
	wg.Wait()

	for w := 0; w < workers; w++ {
		require.NoError(t, errs[w])
		assert.Equal(t, shard(math.MinInt32), got[w].Lowest)
		assert.Equal(t, shard(math.MaxInt32), got[w].Upmost)
	}
}
