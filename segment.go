package exactsweep

import "fmt"

// Segment is an unordered pair of distinct endpoints, canonicalized so that
// P1 is the upper endpoint under the sweep order ≺ and P2 is the lower one:
// P1 ≺ P2 strictly.
type Segment struct {
	P1, P2 Point
}

// NewSegment builds a canonical Segment from two points, ordering them by
// the sweep order ≺. It fails with ErrDegenerateSegment if p and q are the
// same point.
func NewSegment(p, q Point) (Segment, error) {
	if p.Equal(q) {
		return Segment{}, fmt.Errorf("%w: %s", ErrDegenerateSegment, p)
	}
	if p.Less(q) {
		return Segment{P1: p, P2: q}, nil
	}
	return Segment{P1: q, P2: p}, nil
}

// Equal reports whether s and other have the same endpoint set.
func (s Segment) Equal(other Segment) bool {
	return s.P1.Equal(other.P1) && s.P2.Equal(other.P2)
}

// IsVertical reports whether s has equal X coordinates on both endpoints.
func (s Segment) IsVertical() bool { return s.P1.X.Equal(s.P2.X) }

// IsHorizontal reports whether s has equal Y coordinates on both endpoints.
func (s Segment) IsHorizontal() bool { return s.P1.Y.Equal(s.P2.Y) }

// Slope returns the segment's slope and true, or an undefined zero value and
// false when the segment is vertical (the slope sentinel).
func (s Segment) Slope() (Rational, bool) {
	if s.IsVertical() {
		return Rational{}, false
	}
	dy := s.P2.Y.Sub(s.P1.Y)
	dx := s.P2.X.Sub(s.P1.X)
	slope, _ := dy.Div(dx) // dx != 0, IsVertical already excluded that
	return slope, true
}

// YIntercept returns the y-intercept of the line supporting s. It is only
// meaningful for non-vertical segments.
func (s Segment) YIntercept() (Rational, error) {
	slope, ok := s.Slope()
	if !ok {
		return Rational{}, fmt.Errorf("%w: segment is vertical", ErrInvalidArgument)
	}
	return s.P1.Y.Sub(slope.Mul(s.P1.X)), nil
}

// XAt returns the x-coordinate of the point on the segment's supporting
// line at ordinate y. The result is not clipped to the segment's bounding
// box. For vertical segments it returns the vertical's x. For horizontal
// segments (every x shares y = P1.Y) it returns P1.X by convention.
func (s Segment) XAt(y Rational) Rational {
	if s.IsVertical() {
		return s.P1.X
	}
	if s.IsHorizontal() {
		return s.P1.X
	}
	dy := y.Sub(s.P1.Y)
	dx := s.P2.X.Sub(s.P1.X)
	dyFull := s.P2.Y.Sub(s.P1.Y)
	ratio, _ := dy.Mul(dx).Div(dyFull) // dyFull != 0, IsHorizontal already excluded that
	return s.P1.X.Add(ratio)
}

// BoundingBox returns (minX, minY, maxX, maxY) for s.
func (s Segment) BoundingBox() (minX, minY, maxX, maxY Rational) {
	minX, maxX = s.P1.X, s.P2.X
	if maxX.Less(minX) {
		minX, maxX = maxX, minX
	}
	minY, maxY = s.P1.Y, s.P2.Y
	if maxY.Less(minY) {
		minY, maxY = maxY, minY
	}
	return
}

// Contains reports whether p lies on s: collinear with both endpoints and
// within s's bounding box, inclusive.
func (s Segment) Contains(p Point) bool {
	if !Collinear(s.P1, s.P2, p) {
		return false
	}
	minX, minY, maxX, maxY := s.BoundingBox()
	withinX := !p.X.Less(minX) && !maxX.Less(p.X)
	withinY := !p.Y.Less(minY) && !maxY.Less(p.Y)
	return withinX && withinY
}

// Key returns a string uniquely identifying s's canonical endpoint pair,
// suitable for use as a map key.
func (s Segment) Key() string { return s.P1.Key() + "-" + s.P2.Key() }

// String renders s as "(x1, y1)-(x2, y2)".
func (s Segment) String() string { return s.P1.String() + "-" + s.P2.String() }
