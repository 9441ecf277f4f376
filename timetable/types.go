package timetable

import "math"

// Stop opaquely identifies a boarding/alighting location. Handles may
// start at zero, so the zero value can be a real stop; use NoStop for
// "absent".
type Stop int32

// Route opaquely identifies an equivalence class of trips that share the
// same ordered stop sequence.
type Route int32

// Trip opaquely identifies one concrete vehicle run along a Route.
type Trip int32

// Sentinel handles meaning "no such entity". Timetable implementations
// must never hand these out as real handles.
const (
	NoStop  Stop  = -1
	NoRoute Route = -1
	NoTrip  Trip  = -1
)

// Time is a count of seconds since a reference epoch shared by every
// Stop, Route, and Trip in a single Timetable (typically start-of-day).
// It is a plain integer so that saturating arithmetic and comparisons
// stay cheap in the core's hot loops.
type Time int64

// Infinity represents "unreachable". It is deliberately far below
// math.MaxInt64 so that Infinity plus any non-negative footpath duration
// still compares as unreachable without wrapping.
const Infinity Time = Time(math.MaxInt64 / 2)

// Add returns t+d, saturating at Infinity. d must be non-negative; the
// core never calls Add with a negative duration.
func (t Time) Add(d Time) Time {
	if t >= Infinity || d >= Infinity {
		return Infinity
	}
	sum := t + d
	if sum >= Infinity {
		return Infinity
	}
	return sum
}

// Reachable reports whether t is not the Infinity sentinel.
func (t Time) Reachable() bool {
	return t < Infinity
}

// Footpath is a walking arc from one stop to another with a fixed
// non-negative duration. Timetable.FootpathsFrom returns these; the
// destination stop of the arc is carried alongside its own duration so
// callers do not need a paired slice.
type Footpath struct {
	To       Stop
	Duration Time
}
