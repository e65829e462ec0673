package exactsweep

import "errors"

// Sentinel errors returned by this package. Call sites that need to attach
// context wrap these with fmt.Errorf and %w so errors.Is still matches.
var (
	// ErrInvalidNumber is returned when rational literal text cannot be parsed,
	// or parses to a zero denominator.
	ErrInvalidNumber = errors.New("exactsweep: invalid rational literal")
	// ErrDivisionByZero is returned by Rational.Div and Rational.Recip when the
	// divisor (or receiver, for Recip) is zero.
	ErrDivisionByZero = errors.New("exactsweep: division by zero")
	// ErrDegenerateSegment is returned when a segment is constructed from two
	// equal endpoints.
	ErrDegenerateSegment = errors.New("exactsweep: segment endpoints are equal")
	// ErrEmptyInput is returned when an event queue or driver is built from an
	// empty set of segments.
	ErrEmptyInput = errors.New("exactsweep: no segments supplied")
	// ErrNoSuchElement is returned by Poll on an empty event queue.
	ErrNoSuchElement = errors.New("exactsweep: queue is empty")
	// ErrInvalidArgument covers miscellaneous contract violations, such as
	// LineThrough with coincident points or YAt on a vertical line.
	ErrInvalidArgument = errors.New("exactsweep: invalid argument")
)
