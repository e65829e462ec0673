package exactsweep

import (
	rbt "github.com/emirpasic/gods/trees/redblacktree"
)

// sweepLineComparator provides the dynamic comparison logic for the
// Red-Black Tree. Status order depends on each segment's x-coordinate at
// the comparator's currentY, which the driver updates at the top of every
// event-point handling step (spec §9's "dynamic-key ordered structure").
type sweepLineComparator struct {
	currentY Rational
}

// Compare implements github.com/emirpasic/gods's Comparator, ordering
// segments left-to-right by xAt(currentY), breaking ties by the order the
// segments take just below the shared point (see compareBySlope), so that
// segments sharing the current event point land in the order they will
// take just below it.
func (c *sweepLineComparator) Compare(a, b interface{}) int {
	segA := a.(Segment)
	segB := b.(Segment)

	xA := segA.XAt(c.currentY)
	xB := segB.XAt(c.currentY)
	if cmp := xA.Cmp(xB); cmp != 0 {
		return cmp
	}
	if cmp := compareBySlope(segA, segB); cmp != 0 {
		return cmp
	}
	// Equal position and equal slope means the two lines are collinear
	// (two non-vertical lines sharing a slope and an x-at-y are the same
	// line). Distinct collinear segments still need a stable order so the
	// tree doesn't collapse them onto one node.
	keyA, keyB := segA.Key(), segB.Key()
	switch {
	case keyA < keyB:
		return -1
	case keyA > keyB:
		return 1
	default:
		return 0
	}
}

// compareBySlope breaks position ties by x just below the shared point:
// descending by dx/dy, the x change per unit of descent. Among slopes of
// the same sign the larger slope sorts right; vertical segments sort right
// of positive slopes and left of negative ones; horizontal segments sort
// rightmost.
func compareBySlope(a, b Segment) int {
	horizA, horizB := a.IsHorizontal(), b.IsHorizontal()
	switch {
	case horizA && horizB:
		return 0
	case horizA:
		return 1
	case horizB:
		return -1
	}
	runA, _ := a.P2.X.Sub(a.P1.X).Div(a.P2.Y.Sub(a.P1.Y)) // dy != 0 for non-horizontal segments
	runB, _ := b.P2.X.Sub(b.P1.X).Div(b.P2.Y.Sub(b.P1.Y))
	return runB.Cmp(runA)
}

// Status is the ordered structure of segments currently crossing the sweep
// line, keyed left-to-right by x-coordinate at the current sweep y. It is
// implemented with a Red-Black Tree (github.com/emirpasic/gods) for
// O(log n) insert, remove, and LeftNeighbour/RightNeighbour lookups;
// SegmentsThrough and Neighbours scan every stored segment.
type Status struct {
	tree       *rbt.Tree
	comparator *sweepLineComparator
}

// NewStatus creates an empty Status.
func NewStatus() *Status {
	comp := &sweepLineComparator{currentY: Zero()}
	return &Status{tree: rbt.NewWith(comp.Compare), comparator: comp}
}

// SetSweepY updates the sweep line's current y-coordinate. This MUST be
// called before any Insert, Remove, or neighbour query performed while
// handling a new event point, so every comparison during that step is
// computed consistently.
func (s *Status) SetSweepY(y Rational) { s.comparator.currentY = y }

// Insert adds seg to the status at the given sweep y (SetSweepY should
// already have been called with this y; the parameter documents intent at
// call sites).
func (s *Status) Insert(seg Segment, _ Rational) { s.tree.Put(seg, true) }

// Remove deletes seg from the status.
func (s *Status) Remove(seg Segment) { s.tree.Remove(seg) }

// Contains reports whether seg is currently in the status.
func (s *Status) Contains(seg Segment) bool {
	_, found := s.tree.Get(seg)
	return found
}

// Size returns the number of segments currently in the status.
func (s *Status) Size() int { return s.tree.Size() }

// LeftNeighbour returns the segment immediately to the left of seg, or nil
// if seg has no left neighbour (or is not present).
func (s *Status) LeftNeighbour(seg Segment) *Segment {
	node := s.tree.GetNode(seg)
	if node == nil {
		return nil
	}
	if pred := findPredecessor(node); pred != nil {
		v := pred.Key.(Segment)
		return &v
	}
	return nil
}

// RightNeighbour returns the segment immediately to the right of seg, or
// nil if seg has no right neighbour (or is not present).
func (s *Status) RightNeighbour(seg Segment) *Segment {
	node := s.tree.GetNode(seg)
	if node == nil {
		return nil
	}
	if succ := findSuccessor(node); succ != nil {
		v := succ.Key.(Segment)
		return &v
	}
	return nil
}

// SegmentsThrough returns every segment currently in the status that
// contains p (collinear with its endpoints and within its bounding box). It
// scans the whole status.
func (s *Status) SegmentsThrough(p Point) []Segment {
	var out []Segment
	for _, key := range s.tree.Keys() {
		seg := key.(Segment)
		if seg.Contains(p) {
			out = append(out, seg)
		}
	}
	return out
}

// Neighbours returns the segments immediately left and right of where p
// would sit in the status, for use when no segment passes through p
// itself (so there is no node to query LeftNeighbour/RightNeighbour-style). SetSweepY
// must already reflect p.Y. This is a linear scan over the tree's
// in-order key sequence rather than a tree descent; it is only called on
// the branch of the sweep where the block of segments through p is empty,
// not on every event point.
func (s *Status) Neighbours(p Point) (left, right *Segment) {
	keys := s.tree.Keys()
	for _, key := range keys {
		seg := key.(Segment)
		if seg.XAt(p.Y).Less(p.X) {
			v := seg
			left = &v
			continue
		}
		v := seg
		right = &v
		break
	}
	return left, right
}

// findSuccessor finds the in-order successor of a node (the next segment to
// the right).
func findSuccessor(node *rbt.Node) *rbt.Node {
	if node.Right != nil {
		curr := node.Right
		for curr.Left != nil {
			curr = curr.Left
		}
		return curr
	}
	p := node.Parent
	curr := node
	for p != nil && curr == p.Right {
		curr = p
		p = p.Parent
	}
	return p
}

// findPredecessor finds the in-order predecessor of a node (the next
// segment to the left).
func findPredecessor(node *rbt.Node) *rbt.Node {
	if node.Left != nil {
		curr := node.Left
		for curr.Right != nil {
			curr = curr.Right
		}
		return curr
	}
	p := node.Parent
	curr := node
	for p != nil && curr == p.Left {
		curr = p
		p = p.Parent
	}
	return p
}
