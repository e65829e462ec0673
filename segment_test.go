package exactsweep

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func seg(x1, y1, x2, y2 int64) Segment {
	s, err := NewSegment(pt(x1, y1), pt(x2, y2))
	if err != nil {
		panic(err)
	}
	return s
}

func TestNewSegmentCanonicalizesEndpoints(t *testing.T) {
	s, err := NewSegment(pt(0, 0), pt(5, 5))
	require.NoError(t, err)
	require.True(t, s.P1.Equal(pt(5, 5)))
	require.True(t, s.P2.Equal(pt(0, 0)))
}

func TestNewSegmentDegenerate(t *testing.T) {
	_, err := NewSegment(pt(1, 1), pt(1, 1))
	require.ErrorIs(t, err, ErrDegenerateSegment)
}

func TestSegmentVerticalHorizontal(t *testing.T) {
	v := seg(5, 0, 5, 10)
	require.True(t, v.IsVertical())
	require.False(t, v.IsHorizontal())

	h := seg(0, 5, 10, 5)
	require.False(t, h.IsVertical())
	require.True(t, h.IsHorizontal())
}

func TestSegmentSlope(t *testing.T) {
	diag := seg(0, 0, 10, 10)
	slope, ok := diag.Slope()
	require.True(t, ok)
	require.True(t, slope.Equal(One()))

	v := seg(5, 0, 5, 10)
	_, ok = v.Slope()
	require.False(t, ok)
}

func TestSegmentXAt(t *testing.T) {
	diag := seg(0, 0, 10, 10)
	require.True(t, diag.XAt(NewRationalInt(5)).Equal(NewRationalInt(5)))

	v := seg(5, 0, 5, 10)
	require.True(t, v.XAt(NewRationalInt(3)).Equal(NewRationalInt(5)))
}

func TestSegmentContains(t *testing.T) {
	diag := seg(0, 0, 10, 10)
	require.True(t, diag.Contains(pt(5, 5)))
	require.False(t, diag.Contains(pt(5, 6)))
	require.False(t, diag.Contains(pt(11, 11)))
}

func TestSegmentBoundingBox(t *testing.T) {
	s := seg(10, 0, 0, 10)
	minX, minY, maxX, maxY := s.BoundingBox()
	require.True(t, minX.Equal(Zero()))
	require.True(t, minY.Equal(Zero()))
	require.True(t, maxX.Equal(NewRationalInt(10)))
	require.True(t, maxY.Equal(NewRationalInt(10)))
}
