package exactsweep

import (
	"sort"

	"github.com/google/btree"
)

// eventGroup buckets every event sharing a single sweep-order point, so Poll
// can hand the driver the whole group in one call.
type eventGroup struct {
	point  Point
	events map[string]Event
}

func eventGroupLess(a, b *eventGroup) bool { return a.point.Less(b.point) }

// EventQueue is an ordered multiset of events keyed by the sweep order ≺.
// Events sharing a point are delivered together as a set; duplicates by
// (kind, point, segment) are suppressed on insert. It is backed by a
// generic B-tree (github.com/google/btree), following the event-queue
// design in the mikenye/geom2d sweep-line implementation.
type EventQueue struct {
	tree *btree.BTreeG[*eventGroup]
}

// NewEventQueue builds a queue seeded with one START and one END event per
// segment. It fails with ErrEmptyInput if segments is empty.
func NewEventQueue(segments []Segment) (*EventQueue, error) {
	if len(segments) == 0 {
		return nil, ErrEmptyInput
	}
	q := &EventQueue{tree: btree.NewG(32, eventGroupLess)}
	for _, s := range segments {
		q.Insert(StartEvent(s))
		q.Insert(EndEvent(s))
	}
	return q, nil
}

// newEmptyEventQueue builds a queue with no initial events, for incremental
// use via Driver.
func newEmptyEventQueue() *EventQueue {
	return &EventQueue{tree: btree.NewG(32, eventGroupLess)}
}

// Insert adds event to the queue. If an event with the same (kind, point,
// segment) already exists, this is a no-op.
func (q *EventQueue) Insert(event Event) {
	probe := &eventGroup{point: event.Point}
	group, ok := q.tree.Get(probe)
	if !ok {
		group = &eventGroup{point: event.Point, events: make(map[string]Event, 4)}
		q.tree.ReplaceOrInsert(group)
	}
	group.events[event.Key()] = event
}

// Poll removes and returns every event at the sweep-order-minimal point. It
// fails with ErrNoSuchElement when the queue is empty.
func (q *EventQueue) Poll() ([]Event, error) {
	group, ok := q.tree.DeleteMin()
	if !ok {
		return nil, ErrNoSuchElement
	}
	events := make([]Event, 0, len(group.events))
	for _, e := range group.events {
		events = append(events, e)
	}
	sort.Slice(events, func(i, j int) bool { return events[i].Key() < events[j].Key() })
	return events, nil
}

// PeekPoint returns the sweep-order-minimal point without removing it.
func (q *EventQueue) PeekPoint() (Point, bool) {
	group, ok := q.tree.Min()
	if !ok {
		return Point{}, false
	}
	return group.point, true
}

// IsEmpty reports whether the queue has no pending events.
func (q *EventQueue) IsEmpty() bool { return q.tree.Len() == 0 }

// Len returns the number of distinct event-point groups remaining.
func (q *EventQueue) Len() int { return q.tree.Len() }
