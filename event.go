package exactsweep

// EventKind tags the nature of a sweep event.
type EventKind int

const (
	// EventStart marks the sweep line reaching a segment's upper endpoint.
	EventStart EventKind = iota
	// EventEnd marks the sweep line reaching a segment's lower endpoint.
	EventEnd
	// EventIntersection marks a point where two or more segments cross.
	EventIntersection
)

func (k EventKind) String() string {
	switch k {
	case EventStart:
		return "START"
	case EventEnd:
		return "END"
	case EventIntersection:
		return "INTERSECTION"
	default:
		return "UNKNOWN"
	}
}

// Event is a tagged record: a START or END event owns the Segment that
// triggered it; an INTERSECTION event carries no single segment, since its
// participants are discovered by status lookup at handling time.
type Event struct {
	Kind    EventKind
	Point   Point
	Segment *Segment
}

// StartEvent builds the START event for s, located at its upper endpoint.
func StartEvent(s Segment) Event {
	seg := s
	return Event{Kind: EventStart, Point: s.P1, Segment: &seg}
}

// EndEvent builds the END event for s, located at its lower endpoint.
func EndEvent(s Segment) Event {
	seg := s
	return Event{Kind: EventEnd, Point: s.P2, Segment: &seg}
}

// IntersectionEvent builds an INTERSECTION event at p, with no owning
// segment; participants are found via Status.SegmentsThrough at handling
// time.
func IntersectionEvent(p Point) Event {
	return Event{Kind: EventIntersection, Point: p}
}

// Key returns a string identifying e by (kind, point, segment), suitable
// for deduplication in the event queue.
func (e Event) Key() string {
	if e.Segment == nil {
		return e.Kind.String() + "@" + e.Point.Key()
	}
	return e.Kind.String() + "@" + e.Point.Key() + "#" + e.Segment.Key()
}

// String renders e for debug tracing.
func (e Event) String() string {
	if e.Segment == nil {
		return e.Kind.String() + " " + e.Point.String()
	}
	return e.Kind.String() + " " + e.Point.String() + " " + e.Segment.String()
}
