package exactsweep

// BuildIntersectionsNaive computes the same result as BuildIntersections by
// brute force: every pair of segments is tested with Intersect, and results
// are merged into the same point/witness-set shape. It is provided to
// cross-check the sweep driver in tests; its O(n^2) cost make it unsuitable
// for anything but small inputs.
//
// It agrees with BuildIntersections on every non-degenerate case. For
// collinear overlaps it only ever records the pair's upper endpoint,
// whereas the sweep driver also reports the lower endpoint: it is an
// endpoint of one of the two segments, hence an event point where both
// segments meet; the two are not expected to match on inputs containing
// overlaps.
func BuildIntersectionsNaive(segments []Segment) (IntersectionSet, error) {
	if len(segments) == 0 {
		return nil, ErrEmptyInput
	}

	byPoint := make(map[string]*Intersection)
	order := make([]string, 0)

	record := func(p Point, segs ...Segment) {
		key := p.Key()
		entry, ok := byPoint[key]
		if !ok {
			entry = &Intersection{Point: p}
			byPoint[key] = entry
			order = append(order, key)
		}
		entry.Segments = unionDedup(entry.Segments, segs)
	}

	for i := range segments {
		for j := i + 1; j < len(segments); j++ {
			s1, s2 := segments[i], segments[j]
			result := Intersect(s1, s2)
			switch result.Kind {
			case IntersectPoint:
				record(result.Point, s1, s2)
			case IntersectOverlap:
				// Only the upper endpoint is recorded, matching the driver's
				// single-event-at-overlap convention (see DESIGN.md).
				record(result.Overlap.P1, s1, s2)
			}
		}
	}

	out := make(IntersectionSet, 0, len(order))
	for _, key := range order {
		out = append(out, *byPoint[key])
	}
	return out, nil
}
