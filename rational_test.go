package exactsweep

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseRationalInteger(t *testing.T) {
	r, err := ParseRational("42")
	require.NoError(t, err)
	require.True(t, r.Equal(NewRationalInt(42)))

	r, err = ParseRational("-7")
	require.NoError(t, err)
	require.True(t, r.Equal(NewRationalInt(-7)))
}

func TestParseRationalFraction(t *testing.T) {
	r, err := ParseRational("1/2")
	require.NoError(t, err)
	half, _ := NewRationalFrac(1, 2)
	require.True(t, r.Equal(half))
}

func TestParseRationalTerminatingDecimal(t *testing.T) {
	r, err := ParseRational("0.25")
	require.NoError(t, err)
	quarter, _ := NewRationalFrac(1, 4)
	require.True(t, r.Equal(quarter))
}

func TestParseRationalRepeatingDecimal(t *testing.T) {
	r, err := ParseRational("0.1(6)")
	require.NoError(t, err)
	sixth, _ := NewRationalFrac(1, 6)
	require.True(t, r.Equal(sixth))
}

func TestParseRationalRoundTrip(t *testing.T) {
	lhs, err := ParseRational("0.1(6)")
	require.NoError(t, err)
	rhs, _ := NewRationalFrac(1, 6)
	require.True(t, lhs.Equal(rhs))

	a, err := ParseRational("1/2")
	require.NoError(t, err)
	b, err := ParseRational("1/3")
	require.NoError(t, err)
	sum := a.Add(b)
	expected, _ := NewRationalFrac(5, 6)
	require.True(t, sum.Equal(expected))
}

func TestParseRationalInvalid(t *testing.T) {
	for _, s := range []string{"", "abc", "1/0", "1//2", "1.2.3"} {
		_, err := ParseRational(s)
		require.Error(t, err, s)
	}
}

func TestRationalDivisionByZero(t *testing.T) {
	_, err := Zero().Recip()
	require.ErrorIs(t, err, ErrDivisionByZero)

	_, err = One().Div(Zero())
	require.ErrorIs(t, err, ErrDivisionByZero)
}

func TestRationalCanonicalForm(t *testing.T) {
	r, err := NewRationalFrac(4, 8)
	require.NoError(t, err)
	half, _ := NewRationalFrac(1, 2)
	require.True(t, r.Equal(half))

	r, err = NewRationalFrac(3, -6)
	require.NoError(t, err)
	require.Equal(t, -1, r.Sign())
	require.True(t, r.Equal(mustFrac(t, -1, 2)))
}

func TestRationalArithmetic(t *testing.T) {
	a, _ := NewRationalFrac(1, 3)
	b, _ := NewRationalFrac(1, 6)
	require.True(t, a.Sub(b).Equal(mustFrac(t, 1, 6)))
	require.True(t, a.Mul(b).Equal(mustFrac(t, 1, 18)))
	require.True(t, a.Neg().Equal(mustFrac(t, -1, 3)))
	require.True(t, a.Abs().Equal(a))
}

func TestRationalOrdering(t *testing.T) {
	a := NewRationalInt(1)
	b := NewRationalInt(2)
	require.True(t, a.Less(b))
	require.False(t, b.Less(a))
	require.Equal(t, -1, a.Cmp(b))
	require.Equal(t, 0, a.Cmp(a))
}

func mustFrac(t *testing.T, n, d int64) Rational {
	t.Helper()
	r, err := NewRationalFrac(n, d)
	require.NoError(t, err)
	return r
}
