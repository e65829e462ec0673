package exactsweep

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuildIntersectionsClosedPolygon(t *testing.T) {
	e1 := seg(3, 0, 4, 8)
	e2 := seg(4, 8, 8, 5)
	e3 := seg(5, 2, 8, 5)
	e4 := seg(5, 2, 6, 2)
	e5 := seg(5, 1, 6, 2)
	e6 := seg(3, 0, 5, 1)

	result, err := BuildIntersections([]Segment{e1, e2, e3, e4, e5, e6})
	require.NoError(t, err)
	require.Len(t, result, 6)

	cases := []struct {
		vertex Point
		edges  []Segment
	}{
		{pt(3, 0), []Segment{e1, e6}},
		{pt(4, 8), []Segment{e1, e2}},
		{pt(8, 5), []Segment{e2, e3}},
		{pt(5, 2), []Segment{e3, e4}},
		{pt(6, 2), []Segment{e4, e5}},
		{pt(5, 1), []Segment{e5, e6}},
	}
	for _, c := range cases {
		witnesses, ok := result.Lookup(c.vertex)
		require.Truef(t, ok, "missing vertex %s", c.vertex)
		require.ElementsMatch(t, c.edges, witnesses, "vertex %s", c.vertex)
	}
}

func TestBuildIntersectionsStarCross(t *testing.T) {
	diag1 := seg(-5, -5, 5, 5)
	diag2 := seg(-5, 5, 5, -5)
	shortAxis := seg(-1, 0, 1, 0)
	vertical := seg(0, 0, 0, 6)
	offVertical := seg(4, 1, 4, -5)
	longAxis := seg(-1, 0, 6, 0)

	segments := []Segment{diag1, diag2, shortAxis, vertical, offVertical, longAxis}
	result, err := BuildIntersections(segments)
	require.NoError(t, err)
	require.NotEmpty(t, result)

	origin := pt(0, 0)
	witnesses, ok := result.Lookup(origin)
	require.True(t, ok, "origin must be reported as an intersection")
	require.Contains(t, witnesses, diag1)
	require.Contains(t, witnesses, diag2)
	require.Contains(t, witnesses, vertical)

	// offVertical spans y in [-5,1], so it only reaches diag2 (y=-x) at
	// (4,-4); diag1's crossing of x=4 falls at (4,4), outside its range.
	crossing, ok := result.Lookup(pt(4, -4))
	require.True(t, ok, "(4,-4) crossing of diag2 and offVertical must be reported")
	require.Contains(t, crossing, diag2)
	require.Contains(t, crossing, offVertical)
}

func TestBuildIntersectionsSingleSegment(t *testing.T) {
	s := seg(0, 0, 1, 1)
	result, err := BuildIntersections([]Segment{s})
	require.NoError(t, err)
	require.Empty(t, result)

	q, err := NewEventQueue([]Segment{s})
	require.NoError(t, err)
	first, err := q.Poll()
	require.NoError(t, err)
	require.Len(t, first, 1)
	require.Equal(t, EventStart, first[0].Kind)

	second, err := q.Poll()
	require.NoError(t, err)
	require.Len(t, second, 1)
	require.Equal(t, EventEnd, second[0].Kind)

	require.True(t, q.IsEmpty())
	_, err = q.Poll()
	require.ErrorIs(t, err, ErrNoSuchElement)
}

func TestBuildIntersectionsCollinearOverlap(t *testing.T) {
	s1 := seg(0, 0, 2, 2)
	s2 := seg(1, 1, 3, 3)

	result, err := BuildIntersections([]Segment{s1, s2})
	require.NoError(t, err)

	witnesses, ok := result.Lookup(pt(1, 1))
	require.True(t, ok, "(1,1) must be reported as an intersection")
	require.ElementsMatch(t, []Segment{s1, s2}, witnesses)
}

func TestBuildIntersectionsThreeConcurrent(t *testing.T) {
	s1 := seg(0, 0, 4, 4)
	s2 := seg(0, 4, 4, 0)
	s3 := seg(2, 0, 2, 4)

	result, err := BuildIntersections([]Segment{s1, s2, s3})
	require.NoError(t, err)
	require.Len(t, result, 1)

	witnesses, ok := result.Lookup(pt(2, 2))
	require.True(t, ok)
	require.ElementsMatch(t, []Segment{s1, s2, s3}, witnesses)
}

func TestBuildIntersectionsEmptyInput(t *testing.T) {
	_, err := BuildIntersections(nil)
	require.ErrorIs(t, err, ErrEmptyInput)
}

func TestDriverIncrementalMatchesOneCall(t *testing.T) {
	s1 := seg(0, 0, 4, 4)
	s2 := seg(0, 4, 4, 0)

	queue, err := NewEventQueue([]Segment{s1, s2})
	require.NoError(t, err)

	d := NewDriver()
	d.queue = queue
	for !d.queue.IsEmpty() {
		events, err := d.Poll()
		require.NoError(t, err)
		require.NoError(t, d.Handle(events))
	}

	require.True(t, d.HasIntersections())
	require.Equal(t, 1, d.Size())

	witnesses, ok := d.Intersections().Lookup(pt(2, 2))
	require.True(t, ok)
	require.ElementsMatch(t, []Segment{s1, s2}, witnesses)

	oneCall, err := BuildIntersections([]Segment{s1, s2})
	require.NoError(t, err)
	require.Len(t, oneCall, d.Size())
	for _, entry := range oneCall {
		incremental, ok := d.Intersections().Lookup(entry.Point)
		require.Truef(t, ok, "incremental run missing point %s", entry.Point)
		require.ElementsMatch(t, entry.Segments, incremental)
	}
}
