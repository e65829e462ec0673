package exactsweep

import "fmt"

// Line2D is an infinite line, represented either as (slope, intercept) or,
// for vertical lines, as "x = c". It is consumed by the predicates in this
// package but is never itself stored in the sweep status.
type Line2D struct {
	vertical  bool
	x         Rational // valid when vertical
	slope     Rational // valid when !vertical
	intercept Rational // valid when !vertical
}

// LineVertical builds the vertical line x = c.
func LineVertical(c Rational) Line2D { return Line2D{vertical: true, x: c} }

// LineFromSlopeIntercept builds the line y = slope*x + intercept.
func LineFromSlopeIntercept(slope, intercept Rational) Line2D {
	return Line2D{vertical: false, slope: slope, intercept: intercept}
}

// LineThrough builds the infinite line through two distinct points.
func LineThrough(p, q Point) (Line2D, error) {
	if p.Equal(q) {
		return Line2D{}, fmt.Errorf("%w: points coincide", ErrInvalidArgument)
	}
	if p.X.Equal(q.X) {
		return LineVertical(p.X), nil
	}
	slope, _ := q.Y.Sub(p.Y).Div(q.X.Sub(p.X))
	intercept := p.Y.Sub(slope.Mul(p.X))
	return LineFromSlopeIntercept(slope, intercept), nil
}

// IsVertical reports whether l is the vertical line x = c.
func (l Line2D) IsVertical() bool { return l.vertical }

// Slope returns l's slope and true, or a zero value and false if l is
// vertical.
func (l Line2D) Slope() (Rational, bool) {
	if l.vertical {
		return Rational{}, false
	}
	return l.slope, true
}

// YAt returns the y-coordinate of l at the given x. It fails with
// ErrInvalidArgument if l is vertical.
func (l Line2D) YAt(x Rational) (Rational, error) {
	if l.vertical {
		return Rational{}, fmt.Errorf("%w: line is vertical", ErrInvalidArgument)
	}
	return l.slope.Mul(x).Add(l.intercept), nil
}

// XAt returns the x-coordinate of l at the given y. It fails with
// ErrInvalidArgument if l is horizontal (slope zero), where every x shares
// the same y.
func (l Line2D) XAt(y Rational) (Rational, error) {
	if l.vertical {
		return l.x, nil
	}
	if l.slope.IsZero() {
		return Rational{}, fmt.Errorf("%w: line is horizontal", ErrInvalidArgument)
	}
	num := y.Sub(l.intercept)
	return num.Div(l.slope)
}

// Contains reports whether p lies on l.
func (l Line2D) Contains(p Point) bool {
	if l.vertical {
		return p.X.Equal(l.x)
	}
	y, _ := l.YAt(p.X)
	return y.Equal(p.Y)
}

// String renders l as "x = c" or "y = m*x + b".
func (l Line2D) String() string {
	if l.vertical {
		return "x = " + l.x.String()
	}
	return "y = " + l.slope.String() + "*x + " + l.intercept.String()
}
