package exactsweep

// Orientation returns the sign of
// (b.x-a.x)(c.y-a.y) - (b.y-a.y)(c.x-a.x):
// -1 for a clockwise (right) turn, 0 for collinear points, +1 for a
// counter-clockwise (left) turn.
func Orientation(a, b, c Point) int {
	lhs := b.X.Sub(a.X).Mul(c.Y.Sub(a.Y))
	rhs := b.Y.Sub(a.Y).Mul(c.X.Sub(a.X))
	return lhs.Sub(rhs).Sign()
}

// Collinear reports whether a, b, and c lie on a common line.
func Collinear(a, b, c Point) bool { return Orientation(a, b, c) == 0 }

// IntersectKind tags the result of Intersect.
type IntersectKind int

const (
	// IntersectEmpty means the segments share no point.
	IntersectEmpty IntersectKind = iota
	// IntersectPoint means the segments meet at exactly one point.
	IntersectPoint
	// IntersectOverlap means the segments are collinear and overlap along a
	// sub-segment of positive length.
	IntersectOverlap
)

// IntersectResult is the tagged outcome of Intersect: Empty, a single Point,
// or an Overlap sub-segment between two collinear, overlapping segments.
type IntersectResult struct {
	Kind    IntersectKind
	Point   Point
	Overlap Segment
}

// Intersect computes the exact intersection of two segments. A shared
// endpoint, or an endpoint of one lying on the interior of the other, is
// reported as IntersectPoint. Two collinear segments whose overlap reduces
// to a single point are also reported as IntersectPoint; only a
// positive-length collinear overlap is reported as IntersectOverlap.
func Intersect(s1, s2 Segment) IntersectResult {
	p1, q1 := s1.P1, s1.P2
	p2, q2 := s2.P1, s2.P2

	rX, rY := q1.X.Sub(p1.X), q1.Y.Sub(p1.Y)
	sX, sY := q2.X.Sub(p2.X), q2.Y.Sub(p2.Y)

	rxs := rX.Mul(sY).Sub(rY.Mul(sX))
	qpX, qpY := p2.X.Sub(p1.X), p2.Y.Sub(p1.Y)
	qpxr := qpX.Mul(rY).Sub(qpY.Mul(rX))

	if rxs.IsZero() {
		if !qpxr.IsZero() {
			return IntersectResult{Kind: IntersectEmpty} // parallel, not collinear
		}
		return intersectCollinear(s1, s2, p1, rX, rY)
	}

	qpxs := qpX.Mul(sY).Sub(qpY.Mul(sX))
	t, _ := qpxs.Div(rxs)
	u, _ := qpxr.Div(rxs)

	zero, one := Zero(), One()
	if t.Less(zero) || one.Less(t) || u.Less(zero) || one.Less(u) {
		return IntersectResult{Kind: IntersectEmpty}
	}

	return IntersectResult{
		Kind:  IntersectPoint,
		Point: Point{X: p1.X.Add(t.Mul(rX)), Y: p1.Y.Add(t.Mul(rY))},
	}
}

// intersectCollinear handles two segments already known to lie on the same
// line. It parametrizes points along r = q1 - p1 (t=0 at p1, t=1 at q1),
// intersects [0,1] with s2's projected parameter range, and reports Empty,
// a single Point, or a positive-length Overlap accordingly.
func intersectCollinear(s1, s2 Segment, p1 Point, rX, rY Rational) IntersectResult {
	paramOf := func(p Point) Rational {
		if !rX.IsZero() {
			t, _ := p.X.Sub(p1.X).Div(rX)
			return t
		}
		t, _ := p.Y.Sub(p1.Y).Div(rY)
		return t
	}

	t2, t3 := paramOf(s2.P1), paramOf(s2.P2)
	lo, hi := t2, t3
	if hi.Less(lo) {
		lo, hi = hi, lo
	}

	zero, one := Zero(), One()
	overlapLo, overlapHi := lo, zero
	if lo.Less(zero) {
		overlapLo = zero
	}
	overlapHi = one
	if hi.Less(one) {
		overlapHi = hi
	}

	if overlapHi.Less(overlapLo) {
		return IntersectResult{Kind: IntersectEmpty}
	}

	pointAt := func(t Rational) Point {
		return Point{X: p1.X.Add(t.Mul(rX)), Y: p1.Y.Add(t.Mul(rY))}
	}

	if overlapLo.Equal(overlapHi) {
		return IntersectResult{Kind: IntersectPoint, Point: pointAt(overlapLo)}
	}

	overlap, _ := NewSegment(pointAt(overlapLo), pointAt(overlapHi))
	return IntersectResult{Kind: IntersectOverlap, Overlap: overlap}
}
