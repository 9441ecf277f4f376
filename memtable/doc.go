// Package memtable is a hand-built, in-memory timetable.Timetable. It is
// not a GTFS feed parser: callers declare stops, routes (as an ordered
// stop sequence shared by a group of trips — a "pattern" in GTFS terms),
// trips, and footpaths directly through a Builder, then call Build to
// get back a queryable Timetable.
//
// Builder.AddRoute dedups by the stop sequence's exact identity: two
// calls with the same sequence of Stops return the same Route, so trips
// declared against either call accumulate onto one pattern instead of
// splitting across two.
//
// Trips on a route are kept sorted by departure time separately for
// every stop position on the route, so trips may overtake each other
// between stops. EarliestTrip binary-searches the list for the queried
// stop's position rather than scanning linearly.
package memtable
