package memtable

import (
	"sort"
	"strconv"
	"strings"

	"github.com/routeweave/raptor/timetable"
)

// Builder assembles a Timetable one declaration at a time. Errors are
// deferred: each Add method that can fail records the first error it
// hits and becomes a no-op thereafter, so a Builder can be threaded
// through a chain of calls and checked once at Build().
type Builder struct {
	err error

	nextStop timetable.Stop
	external map[string]timetable.Stop
	names    []string

	routeStops []([]timetable.Stop)
	routeTrips [][]timetable.Trip         // per route, trip ids in AddTrip call order
	patterns   map[string]timetable.Route // stop-sequence signature -> the Route it was first declared as

	trips []tripRecord

	footpaths map[timetable.Stop][]timetable.Footpath
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{
		external:  make(map[string]timetable.Stop),
		footpaths: make(map[timetable.Stop][]timetable.Footpath),
		patterns:  make(map[string]timetable.Route),
	}
}

// AddStop allocates a new Stop. externalID, if non-empty, becomes the
// identifier LookupStop resolves back to this Stop; passing the same
// externalID twice allocates two distinct Stops (Builder does not
// dedup stops by name — callers that want that must dedup themselves).
func (b *Builder) AddStop(externalID string) timetable.Stop {
	s := b.nextStop
	b.nextStop++
	if externalID != "" {
		b.external[externalID] = s
	}
	b.names = append(b.names, externalID)
	return s
}

// AddRoute declares a route as an ordered stop sequence shared by
// whatever trips are later attached with AddTrip. Route is a pattern in
// the GTFS sense: an equivalence class of trips keyed by their exact
// ordered stop sequence. Calling AddRoute twice with the same sequence
// returns the same Route rather than allocating a second one — trips
// added afterward under either call attach to the one underlying
// pattern, matching original_source/src/gtfs.rs's
// pattern_signatures: HashMap<Vec<StopIdx>, PatternIdx> dedup.
func (b *Builder) AddRoute(stops ...timetable.Stop) timetable.Route {
	if b.err != nil {
		return timetable.NoRoute
	}
	if len(stops) < 2 {
		b.err = ErrEmptyRoute
		return timetable.NoRoute
	}
	key := patternKey(stops)
	if r, ok := b.patterns[key]; ok {
		return r
	}
	cp := make([]timetable.Stop, len(stops))
	copy(cp, stops)
	r := timetable.Route(len(b.routeStops))
	b.routeStops = append(b.routeStops, cp)
	b.routeTrips = append(b.routeTrips, nil)
	b.patterns[key] = r
	return r
}

// patternKey encodes a stop sequence into a string suitable as a map
// key, so identical sequences dedup to the same Route regardless of the
// underlying Stop handle values. Stop is int32, so a comma-joined
// decimal encoding is unambiguous: no valid Stop's decimal form can
// contain a comma.
func patternKey(stops []timetable.Stop) string {
	var sb strings.Builder
	for i, s := range stops {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(int(s)))
	}
	return sb.String()
}

// AddTrip attaches one trip to route r, with one departure and one
// arrival time per stop on the route, in route order. Both slices must
// be weakly increasing and each arrival must not precede its own
// departure, so EarliestTrip's binary search over departures stays
// valid.
func (b *Builder) AddTrip(r timetable.Route, departures, arrivals []timetable.Time) timetable.Trip {
	if b.err != nil {
		return timetable.NoTrip
	}
	if int(r) < 0 || int(r) >= len(b.routeStops) {
		b.err = ErrUnknownRoute
		return timetable.NoTrip
	}
	n := len(b.routeStops[r])
	if len(departures) != n || len(arrivals) != n {
		b.err = ErrStopCountMismatch
		return timetable.NoTrip
	}
	for i := 0; i < n; i++ {
		if arrivals[i] > departures[i] {
			b.err = ErrUnorderedTrip
			return timetable.NoTrip
		}
		if i > 0 && departures[i-1] > arrivals[i] {
			b.err = ErrUnorderedTrip
			return timetable.NoTrip
		}
	}

	dep := make([]timetable.Time, n)
	arr := make([]timetable.Time, n)
	copy(dep, departures)
	copy(arr, arrivals)

	t := timetable.Trip(len(b.trips))
	b.trips = append(b.trips, tripRecord{route: r, departures: dep, arrivals: arr})
	b.routeTrips[r] = append(b.routeTrips[r], t)
	return t
}

// AddFootpath declares a directed walking arc from `from` to `to`
// taking duration. Add both directions explicitly for a symmetric
// transfer; the Builder never infers a reverse arc.
func (b *Builder) AddFootpath(from, to timetable.Stop, duration timetable.Time) {
	if b.err != nil {
		return
	}
	b.footpaths[from] = append(b.footpaths[from], timetable.Footpath{To: to, Duration: duration})
}

// Build finalizes the declared stops, routes, trips, and footpaths into
// a queryable Timetable, or returns the first error any Add call hit.
func (b *Builder) Build() (*Timetable, error) {
	if b.err != nil {
		return nil, b.err
	}

	tt := &Timetable{
		stopExternal:  b.external,
		stopNames:     b.names,
		routeStops:    b.routeStops,
		routePos:      make([]map[timetable.Stop]int, len(b.routeStops)),
		routesThrough: make(map[timetable.Stop][]timetable.Route),
		tripsByPos:    make([][][]timetable.Trip, len(b.routeStops)),
		footpaths:     b.footpaths,
	}

	for r, stops := range b.routeStops {
		pos := make(map[timetable.Stop]int, len(stops))
		for i, s := range stops {
			pos[s] = i
			tt.routesThrough[s] = append(tt.routesThrough[s], timetable.Route(r))
		}
		tt.routePos[r] = pos
	}

	tt.trips = b.trips

	for r, ids := range b.routeTrips {
		tt.tripsByPos[r] = tripsSortedByPos(ids, tt.trips, len(b.routeStops[r]))
	}

	return tt, nil
}

// tripsSortedByPos returns, for each of a route's n stop positions, an
// independently sorted copy of ids ordered by departure at that position.
// A single order shared across positions is only sound if trips on the
// route never overtake each other; sorting per position (matching
// original_source/src/gtfs.rs's departures_by_stop) keeps EarliestTrip's
// binary search valid even when they do.
func tripsSortedByPos(ids []timetable.Trip, trips []tripRecord, n int) [][]timetable.Trip {
	byPos := make([][]timetable.Trip, n)
	for pos := 0; pos < n; pos++ {
		sorted := make([]timetable.Trip, len(ids))
		copy(sorted, ids)
		sort.SliceStable(sorted, func(i, j int) bool {
			return trips[sorted[i]].departures[pos] < trips[sorted[j]].departures[pos]
		})
		byPos[pos] = sorted
	}
	return byPos
}
