package raptor

import "github.com/routeweave/raptor/timetable"

// Leg is one boarded ride: the Route ridden and the Stop it was boarded
// at. A leg's alighting stop is implicit — the next leg's Board stop, or
// the query's destination for the journey's final leg.
type Leg struct {
	Route timetable.Route
	Board timetable.Stop
}

// Journey is one point on the Pareto frontier Query returns: the ordered
// legs ridden, in boarding order, and the resulting arrival time at the
// destination. A nil Plan means the destination was reached without
// boarding anything — only possible when origin equals destination.
type Journey struct {
	Plan    []Leg
	Arrival timetable.Time
}
