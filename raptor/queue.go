package raptor

import "github.com/routeweave/raptor/timetable"

// buildRouteQueue implements spec.md §4.2: for every stop marked in the
// previous round, for every route through it, keep the earliest position
// on that route among all marked stops. Scanning the route from that
// single earliest position covers every marked stop on it.
func buildRouteQueue(tt timetable.Timetable, marked map[timetable.Stop]struct{}) map[timetable.Route]timetable.Stop {
	queue := make(map[timetable.Route]timetable.Stop, len(marked))
	for p := range marked {
		for _, r := range tt.RoutesThrough(p) {
			boardAt, seen := queue[r]
			if !seen || tt.IndexOf(r, p) < tt.IndexOf(r, boardAt) {
				queue[r] = p
			}
		}
	}
	return queue
}
