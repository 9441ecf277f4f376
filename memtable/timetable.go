package memtable

import (
	"sort"

	"github.com/routeweave/raptor/timetable"
)

// StopsOnRoute returns r's ordered stop sequence.
func (tt *Timetable) StopsOnRoute(r timetable.Route) []timetable.Stop {
	if int(r) < 0 || int(r) >= len(tt.routeStops) {
		return nil
	}
	return tt.routeStops[r]
}

// IndexOf returns p's position on r, or -1 if p is not on r.
func (tt *Timetable) IndexOf(r timetable.Route, p timetable.Stop) int {
	if int(r) < 0 || int(r) >= len(tt.routePos) {
		return -1
	}
	if pos, ok := tt.routePos[r][p]; ok {
		return pos
	}
	return -1
}

// RoutesThrough returns every route serving p.
func (tt *Timetable) RoutesThrough(p timetable.Stop) []timetable.Route {
	return tt.routesThrough[p]
}

// EarliestTrip binary-searches r's trips departing p, sorted independently
// by departure at p's own position on r, for the first one departing at or
// after tMin. Grounded on the original implementation's partition_point
// lookup over departures_by_stop (original_source/src/gtfs.rs), which
// keeps a per-stop-position sorted list for the same reason: a single
// order shared across positions would break under trip overtaking.
func (tt *Timetable) EarliestTrip(r timetable.Route, p timetable.Stop, tMin timetable.Time) timetable.Trip {
	pos := tt.IndexOf(r, p)
	if pos < 0 {
		return timetable.NoTrip
	}
	ids := tt.tripsByPos[r][pos]
	i := sort.Search(len(ids), func(i int) bool {
		return tt.trips[ids[i]].departures[pos] >= tMin
	})
	if i == len(ids) {
		return timetable.NoTrip
	}
	return ids[i]
}

// Departure returns trip t's departure time at stop p.
func (tt *Timetable) Departure(t timetable.Trip, p timetable.Stop) timetable.Time {
	rec := tt.trips[t]
	pos := tt.IndexOf(rec.route, p)
	if pos < 0 {
		return timetable.Infinity
	}
	return rec.departures[pos]
}

// Arrival returns trip t's arrival time at stop p.
func (tt *Timetable) Arrival(t timetable.Trip, p timetable.Stop) timetable.Time {
	rec := tt.trips[t]
	pos := tt.IndexOf(rec.route, p)
	if pos < 0 {
		return timetable.Infinity
	}
	return rec.arrivals[pos]
}

// FootpathsFrom returns every walking arc leaving p.
func (tt *Timetable) FootpathsFrom(p timetable.Stop) []timetable.Footpath {
	return tt.footpaths[p]
}

// LookupStop resolves an external stop identifier registered via
// Builder.AddStop, or timetable.NoStop if unknown.
func (tt *Timetable) LookupStop(externalID string) timetable.Stop {
	if s, ok := tt.stopExternal[externalID]; ok {
		return s
	}
	return timetable.NoStop
}

// StopName returns the external identifier p was registered under, or
// "" if p is out of range or was added with an empty externalID. It is
// the inverse of LookupStop, provided for callers formatting output
// rather than for anything the raptor core touches.
func (tt *Timetable) StopName(p timetable.Stop) string {
	if int(p) < 0 || int(p) >= len(tt.stopNames) {
		return ""
	}
	return tt.stopNames[p]
}
