package raptor

import "github.com/routeweave/raptor/timetable"

// scanRoute implements spec.md §4.3: walk route r from boardAt to its
// last stop, riding whatever trip is currently boarded and relaxing the
// arrival at every subsequent stop, while opportunistically switching
// to an earlier trip whenever the previous round's label at the current
// stop would have caught one.
//
// The trip-switch test always consults τ_{k-1}, never τ_k: an
// improvement to a stop's label earlier in *this* round's scan must not
// let the scan retroactively board an earlier trip there (spec.md §4.3).
func scanRoute(tt timetable.Timetable, ls *labelStore, k int, route timetable.Route, boardAt timetable.Stop, marked map[timetable.Stop]struct{}) {
	stops := tt.StopsOnRoute(route)
	start := tt.IndexOf(route, boardAt)
	if start < 0 {
		return
	}

	currentTrip := timetable.NoTrip
	hopOnStop := timetable.NoStop

	for i := start; i < len(stops); i++ {
		p := stops[i]

		if currentTrip != timetable.NoTrip {
			tArrive := tt.Arrival(currentTrip, p)
			if tArrive < ls.bestOf(ls.destination) && tArrive < ls.bestOf(p) {
				ls.relaxTransit(k, p, tArrive, route, currentTrip, hopOnStop, marked)
			}
		}

		prevLabel := ls.get(k-1, p)
		canBoard := currentTrip == timetable.NoTrip || prevLabel <= tt.Departure(currentTrip, p)
		if canBoard {
			if cand := tt.EarliestTrip(route, p, prevLabel); cand != timetable.NoTrip && cand != currentTrip {
				currentTrip = cand
				hopOnStop = p
			}
		}
	}
}
