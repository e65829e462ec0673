package exactsweep

// Point is an ordered pair (X, Y) of exact rationals. Equality is
// component-wise on reduced rationals.
type Point struct {
	X, Y Rational
}

// NewPoint builds a Point from two rationals.
func NewPoint(x, y Rational) Point { return Point{X: x, Y: y} }

// Equal reports whether p and other denote the same point.
func (p Point) Equal(other Point) bool {
	return p.X.Equal(other.X) && p.Y.Equal(other.Y)
}

// Less implements the sweep order ≺: p ≺ other iff p.Y > other.Y, or
// (p.Y == other.Y and p.X < other.X). The sweep proceeds top-to-bottom,
// breaking ties left-to-right.
func (p Point) Less(other Point) bool {
	if !p.Y.Equal(other.Y) {
		return p.Y.Cmp(other.Y) > 0
	}
	return p.X.Cmp(other.X) < 0
}

// Key returns a string uniquely identifying p's canonical coordinates,
// suitable for use as a map key.
func (p Point) Key() string { return p.X.Key() + "," + p.Y.Key() }

// String renders p as "(x, y)".
func (p Point) String() string { return "(" + p.X.String() + ", " + p.Y.String() + ")" }
