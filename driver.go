package exactsweep

import (
	"io"
	"log"
	"sort"
)

// DriverOption configures a Driver at construction time.
type DriverOption func(*Driver)

// WithTrace enables a debug trace of every event-point handling step,
// written to w. Tracing is off by default.
func WithTrace(w io.Writer) DriverOption {
	return func(d *Driver) { d.traceLog = log.New(w, "exactsweep: ", 0) }
}

// Driver runs the Bentley-Ottmann sweep incrementally, owning the event
// queue, the status structure, and the accumulated intersection results
// for one run. It is not safe for concurrent use.
type Driver struct {
	queue    *EventQueue
	status   *Status
	results  map[string]*Intersection
	traceLog *log.Logger
}

// NewDriver builds an empty Driver, ready to Handle polled event groups.
func NewDriver(opts ...DriverOption) *Driver {
	d := &Driver{
		queue:   newEmptyEventQueue(),
		status:  NewStatus(),
		results: make(map[string]*Intersection),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

func (d *Driver) tracef(format string, args ...interface{}) {
	if d.traceLog != nil {
		d.traceLog.Printf(format, args...)
	}
}

// Poll removes and returns every event at the sweep-order-minimal point
// still pending in d's queue, as EventQueue.Poll does.
func (d *Driver) Poll() ([]Event, error) { return d.queue.Poll() }

// Handle processes one event-point group: events sharing a single point,
// as returned by Poll. It updates the status structure, records any
// intersection discovered at that point, and schedules any new
// intersection events found among the status's newly-adjacent segments.
func (d *Driver) Handle(events []Event) error {
	if len(events) == 0 {
		return nil
	}
	p := events[0].Point

	var starts, ends []Segment
	for _, e := range events {
		switch e.Kind {
		case EventStart:
			starts = append(starts, *e.Segment)
		case EventEnd:
			ends = append(ends, *e.Segment)
		}
	}

	d.status.SetSweepY(p.Y)
	through := d.status.SegmentsThrough(p)
	contained := unionExcluding(through, starts, ends)

	combined := unionDedup(starts, ends, contained)
	d.tracef("point %s: U=%d L=%d C=%d", p, len(starts), len(ends), len(contained))
	if len(combined) >= 2 {
		d.recordIntersection(p, combined)
	}

	for _, seg := range unionDedup(ends, contained) {
		d.status.Remove(seg)
	}
	for _, seg := range unionDedup(starts, contained) {
		d.status.Insert(seg, p.Y)
	}

	inserted := unionDedup(starts, contained)
	if len(inserted) == 0 {
		left, right := d.status.Neighbours(p)
		d.findNewEvent(left, right, p)
		return nil
	}

	sort.Slice(inserted, func(i, j int) bool {
		return d.status.comparator.Compare(inserted[i], inserted[j]) < 0
	})
	leftmost, rightmost := inserted[0], inserted[len(inserted)-1]
	left := d.status.LeftNeighbour(leftmost)
	right := d.status.RightNeighbour(rightmost)
	d.findNewEvent(left, &leftmost, p)
	d.findNewEvent(&rightmost, right, p)
	return nil
}

// findNewEvent checks whether a and b (either may be nil) meet at a point
// strictly after p in sweep order, scheduling an INTERSECTION event if so.
// A collinear overlap schedules its upper endpoint only, per the driver's
// single-event-at-overlap convention.
func (d *Driver) findNewEvent(a, b *Segment, p Point) {
	if a == nil || b == nil {
		return
	}
	result := Intersect(*a, *b)
	switch result.Kind {
	case IntersectPoint:
		if p.Less(result.Point) {
			d.queue.Insert(IntersectionEvent(result.Point))
		}
	case IntersectOverlap:
		if p.Less(result.Overlap.P1) {
			d.queue.Insert(IntersectionEvent(result.Overlap.P1))
		}
	}
}

// recordIntersection merges segs into the witness set recorded at p. Each
// sweep-order point is handled at most once per run, so no prior entry for
// p can exist; this still dedups by segment in case U/L/C overlapped.
func (d *Driver) recordIntersection(p Point, segs []Segment) {
	entry, ok := d.results[p.Key()]
	if !ok {
		entry = &Intersection{Point: p}
		d.results[p.Key()] = entry
	}
	entry.Segments = unionDedup(entry.Segments, segs)
}

// Intersections returns every intersection point discovered so far, sorted
// by sweep order, each with its deduplicated, sorted witness segments.
func (d *Driver) Intersections() IntersectionSet {
	out := make(IntersectionSet, 0, len(d.results))
	for _, entry := range d.results {
		segs := append([]Segment(nil), entry.Segments...)
		sort.Slice(segs, func(i, j int) bool { return segs[i].Key() < segs[j].Key() })
		out = append(out, Intersection{Point: entry.Point, Segments: segs})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Point.Less(out[j].Point) })
	return out
}

// Size returns the number of distinct intersection points discovered so
// far.
func (d *Driver) Size() int { return len(d.results) }

// HasIntersections reports whether any intersection has been discovered so
// far.
func (d *Driver) HasIntersections() bool { return len(d.results) > 0 }

// Intersection pairs a discovered point with the segments that meet there.
type Intersection struct {
	Point    Point
	Segments []Segment
}

// IntersectionSet is the result of a sweep run: every intersection point
// found, each with its witness segments. A plain map[Point][]Segment is
// deliberately avoided; see SPEC_FULL.md section 8 for why Point is unsafe
// as a built-in Go map key despite compiling as one.
type IntersectionSet []Intersection

// Lookup returns the witness segments recorded at p, using Point.Equal
// rather than built-in equality.
func (is IntersectionSet) Lookup(p Point) ([]Segment, bool) {
	for _, entry := range is {
		if entry.Point.Equal(p) {
			return entry.Segments, true
		}
	}
	return nil, false
}

// BuildIntersections runs the sweep to completion over segments in one
// call, returning every intersection point and its witnesses. It fails
// with ErrEmptyInput if segments is empty.
func BuildIntersections(segments []Segment) (IntersectionSet, error) {
	queue, err := NewEventQueue(segments)
	if err != nil {
		return nil, err
	}
	d := NewDriver()
	d.queue = queue
	for !d.queue.IsEmpty() {
		events, err := d.Poll()
		if err != nil {
			return nil, err
		}
		if err := d.Handle(events); err != nil {
			return nil, err
		}
	}
	return d.Intersections(), nil
}

// unionDedup merges any number of segment slices, deduplicating by
// Segment.Equal while preserving first-seen order.
func unionDedup(groups ...[]Segment) []Segment {
	var out []Segment
	for _, group := range groups {
		for _, seg := range group {
			if !containsSegment(out, seg) {
				out = append(out, seg)
			}
		}
	}
	return out
}

// unionExcluding returns the segments in through that are not already
// present in any of excluded, deduplicating the result.
func unionExcluding(through []Segment, excluded ...[]Segment) []Segment {
	var out []Segment
	for _, seg := range through {
		skip := false
		for _, group := range excluded {
			if containsSegment(group, seg) {
				skip = true
				break
			}
		}
		if !skip && !containsSegment(out, seg) {
			out = append(out, seg)
		}
	}
	return out
}

func containsSegment(group []Segment, seg Segment) bool {
	for _, s := range group {
		if s.Equal(seg) {
			return true
		}
	}
	return false
}
