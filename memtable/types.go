package memtable

import "github.com/routeweave/raptor/timetable"

// tripRecord holds one trip's per-stop-position times, keyed globally by
// its Trip handle (the handle is its index into Timetable.trips).
type tripRecord struct {
	route      timetable.Route
	departures []timetable.Time
	arrivals   []timetable.Time
}

// Timetable is the in-memory timetable.Timetable a Builder produces. Its
// zero value is not usable; construct one via NewBuilder().Build().
type Timetable struct {
	stopExternal map[string]timetable.Stop
	stopNames    []string // indexed by Stop; empty string if AddStop was called with ""

	routeStops []([]timetable.Stop)
	routePos   []map[timetable.Stop]int

	routesThrough map[timetable.Stop][]timetable.Route

	// tripsByPos[r][pos] holds r's trip ids sorted by departure at
	// position pos, independently for every position. A single order
	// shared across all positions would only be valid under a
	// route-wide no-overtaking assumption AddTrip never enforces;
	// sorting per position keeps EarliestTrip's binary search correct
	// even when trips on the same route overtake each other between
	// stops. Grounded on original_source/src/gtfs.rs's
	// departures_by_stop, which does the same for the same reason.
	tripsByPos [][][]timetable.Trip

	trips []tripRecord

	footpaths map[timetable.Stop][]timetable.Footpath
}
