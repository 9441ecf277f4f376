package raptor

import "github.com/routeweave/raptor/timetable"

// Query runs RAPTOR from origin to destination, departing at departTime,
// for at most kMax rounds (trips), and returns one Journey per round
// that improved the destination's earliest-arrival label — the Pareto
// frontier of (arrival time, transfers), in increasing-transfers order.
//
// Query performs no I/O and holds no state beyond the call: tt is read
// many times but never written to, and nothing survives past the
// returned slice. A negative kMax is treated as a zero-round query
// (an empty result, or the trivial origin==destination journey) rather
// than an error, since spec.md §7 assigns only the origin/destination
// unknown checks to the core's error surface.
func Query(tt timetable.Timetable, kMax int, departTime timetable.Time, origin, destination timetable.Stop, opts ...Option) ([]Journey, error) {
	if tt == nil {
		return nil, ErrNilTimetable
	}
	if origin == timetable.NoStop {
		return nil, ErrOriginUnknown
	}
	if destination == timetable.NoStop {
		return nil, ErrDestinationUnknown
	}
	if kMax < 0 {
		kMax = 0
	}

	cfg := defaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	ls := newLabelStore(kMax, destination)
	ls.init(origin, departTime)

	if origin == destination {
		if kMax == 0 {
			return []Journey{{Arrival: departTime}}, nil
		}
	} else if kMax == 0 {
		return nil, nil
	}

	journeys := make([]Journey, 0, kMax)
	prevMarked := map[timetable.Stop]struct{}{origin: {}}

	for k := 1; k <= kMax; k++ {
		roundMarked := make(map[timetable.Stop]struct{})

		queue := buildRouteQueue(tt, prevMarked)
		for route, boardAt := range queue {
			scanRoute(tt, ls, k, route, boardAt, roundMarked)
		}

		relaxFootpaths(tt, ls, k, roundMarked, prevMarked, cfg.assumeFootpathsClosed)

		destPrev := ls.get(k-1, destination)
		destCur := ls.get(k, destination)
		if destCur < destPrev || (k == 1 && destCur.Reachable()) {
			if j, ok := reconstruct(ls, k, destination); ok {
				journeys = append(journeys, j)
			}
		}

		if len(roundMarked) == 0 {
			break
		}
		prevMarked = roundMarked
	}

	return journeys, nil
}
