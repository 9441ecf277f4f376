package raptor

import "github.com/routeweave/raptor/timetable"

// reconstruct implements spec.md §4.6: walk parent pointers backward
// from (k, destination) until an origin marker is hit, collecting one
// Leg per transit parent crossed and following footpath parents within
// the same round without emitting a leg for them.
func reconstruct(ls *labelStore, k int, destination timetable.Stop) (Journey, bool) {
	arrival := ls.get(k, destination)
	if !arrival.Reachable() {
		return Journey{}, false
	}

	var legs []Leg
	curK, curStop := k, destination

	for {
		pr, foundK, ok := ls.parentAt(curK, curStop)
		if !ok {
			return Journey{}, false
		}
		switch pr.kind {
		case parentOrigin:
			for i, j := 0, len(legs)-1; i < j; i, j = i+1, j-1 {
				legs[i], legs[j] = legs[j], legs[i]
			}
			return Journey{Plan: legs, Arrival: arrival}, true
		case parentFootpath:
			curStop = pr.from
			curK = foundK
		case parentTransit:
			legs = append(legs, Leg{Route: pr.route, Board: pr.from})
			curStop = pr.from
			curK = foundK - 1
		default:
			return Journey{}, false
		}
	}
}
