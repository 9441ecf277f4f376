package timetable

// Timetable is the read-only, pure, concurrency-safe collaborator that
// package raptor consumes. Every method must be safe to call from
// multiple goroutines concurrently with no internal mutation — the core
// treats it as constant-or-logarithmic-time and never mutates it itself
// (spec.md §5).
//
// Implementations own however they represent trips, stop times, and
// transfers; the core assumes nothing about that representation beyond
// what these eight methods expose.
type Timetable interface {
	// StopsOnRoute returns the ordered stop sequence of r. The returned
	// slice's index is the position IndexOf reports for stops on r; the
	// core treats the slice as read-only.
	StopsOnRoute(r Route) []Stop

	// IndexOf returns the position of p within StopsOnRoute(r), or -1 if
	// p is not on r.
	IndexOf(r Route, p Stop) int

	// RoutesThrough returns every Route that serves stop p.
	RoutesThrough(p Stop) []Route

	// EarliestTrip returns the earliest trip on r departing p at or
	// after tMin, or NoTrip if none exists.
	EarliestTrip(r Route, p Stop, tMin Time) Trip

	// Departure returns the departure time of trip t at stop p. p must
	// be on route(t); behavior is undefined otherwise (spec.md §7 treats
	// this as a programmer error, not a recoverable one).
	Departure(t Trip, p Stop) Time

	// Arrival returns the arrival time of trip t at stop p. Same
	// precondition as Departure.
	Arrival(t Trip, p Stop) Time

	// FootpathsFrom returns every walking arc leaving p. The set is
	// assumed transitively closed by contract (spec.md §4.4, §9 Open
	// Question 4); see raptor.WithFootpathClosure to opt out of that
	// assumption.
	FootpathsFrom(p Stop) []Footpath

	// LookupStop resolves a caller-facing external identifier (e.g. a
	// GTFS stop_id) to a Stop, or NoStop if unknown. Purely a
	// convenience for callers translating user input; the core never
	// calls this itself.
	LookupStop(externalID string) Stop
}
