package raptor

import "github.com/routeweave/raptor/timetable"

// relaxFootpaths implements spec.md §4.4: walk every footpath out of a
// stop marked so far this round (by the route-scan stage) or marked in
// the previous round, relaxing the arrival at the far end.
//
// When assumeClosed is true (the default, matching the usual precondition
// that a Timetable's footpath set is already transitively closed), one
// pass over that frontier is enough. When false, newly-improved stops
// seed another pass, iterating to a fixpoint within the round, since a
// single hop may not reach everything a chain of footpaths would.
func relaxFootpaths(tt timetable.Timetable, ls *labelStore, k int, roundMarked map[timetable.Stop]struct{}, prevMarked map[timetable.Stop]struct{}, assumeClosed bool) {
	frontier := make(map[timetable.Stop]struct{}, len(roundMarked)+len(prevMarked))
	for p := range roundMarked {
		frontier[p] = struct{}{}
	}
	for p := range prevMarked {
		frontier[p] = struct{}{}
	}

	for len(frontier) > 0 {
		next := make(map[timetable.Stop]struct{})
		for p := range frontier {
			base := ls.get(k, p)
			if !base.Reachable() {
				continue
			}
			for _, fp := range tt.FootpathsFrom(p) {
				tArrive := base.Add(fp.Duration)
				if ls.relaxFootpath(k, fp.To, tArrive, p, roundMarked) {
					next[fp.To] = struct{}{}
				}
			}
		}
		if assumeClosed {
			return
		}
		frontier = next
	}
}
