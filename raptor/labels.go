package raptor

import "github.com/routeweave/raptor/timetable"

// parentKind distinguishes how a stop's label at a given round was
// produced, for journey reconstruction.
type parentKind uint8

const (
	parentNone parentKind = iota
	parentOrigin
	parentTransit
	parentFootpath
)

// parentRecord is the provenance of one (round, stop) label improvement.
// For parentTransit, from is the boarding stop and the trip was caught
// using the *previous* round's label there (spec.md §4.6). For
// parentFootpath, from is the stop the walk originated at, within the
// same round.
type parentRecord struct {
	kind  parentKind
	route timetable.Route
	trip  timetable.Trip
	from  timetable.Stop
}

// labelStore holds every round's arrival labels and parent pointers for
// one Query call, plus the all-rounds best-so-far label τ* used for
// target and local pruning. Rounds that never touch a stop store nothing
// for it; reads fall back to the nearest earlier round that did (the
// "carry" stage of spec.md §4.1 is represented lazily rather than
// copied eagerly).
type labelStore struct {
	destination timetable.Stop

	labels  []map[timetable.Stop]timetable.Time
	parents []map[timetable.Stop]parentRecord
	best    map[timetable.Stop]timetable.Time
}

func newLabelStore(kMax int, destination timetable.Stop) *labelStore {
	ls := &labelStore{
		destination: destination,
		labels:      make([]map[timetable.Stop]timetable.Time, kMax+1),
		parents:     make([]map[timetable.Stop]parentRecord, kMax+1),
		best:        make(map[timetable.Stop]timetable.Time),
	}
	for k := range ls.labels {
		ls.labels[k] = make(map[timetable.Stop]timetable.Time)
		ls.parents[k] = make(map[timetable.Stop]parentRecord)
	}
	return ls
}

// init seeds round 0 with the origin's departure time (spec.md §4.1).
func (ls *labelStore) init(origin timetable.Stop, depart timetable.Time) {
	ls.labels[0][origin] = depart
	ls.parents[0][origin] = parentRecord{kind: parentOrigin}
	ls.best[origin] = depart
}

// get returns τ_k(p): the explicit label at round k if one was recorded,
// otherwise the nearest earlier round's label (the lazy carry).
func (ls *labelStore) get(k int, p timetable.Stop) timetable.Time {
	for ; k >= 0; k-- {
		if t, ok := ls.labels[k][p]; ok {
			return t
		}
	}
	return timetable.Infinity
}

// bestOf returns τ*(p), the best label recorded for p across every
// round so far.
func (ls *labelStore) bestOf(p timetable.Stop) timetable.Time {
	if t, ok := ls.best[p]; ok {
		return t
	}
	return timetable.Infinity
}

// parentAt returns the parent record governing p's label as of round k,
// following the same lazy-carry fallback as get, plus the round it was
// actually recorded at (needed by reconstruction to know which round to
// continue from after crossing a transit leg).
func (ls *labelStore) parentAt(k int, p timetable.Stop) (parentRecord, int, bool) {
	for ; k >= 0; k-- {
		if pr, ok := ls.parents[k][p]; ok {
			return pr, k, true
		}
	}
	return parentRecord{}, -1, false
}

// relaxTransit implements spec.md §4.1's relax_transit: if t_arrive
// improves both τ_k(p) and the target bound τ*(destination), record the
// improvement and mark p. Returns whether it did.
func (ls *labelStore) relaxTransit(k int, p timetable.Stop, tArrive timetable.Time, route timetable.Route, trip timetable.Trip, boardStop timetable.Stop, marked map[timetable.Stop]struct{}) bool {
	if tArrive >= ls.get(k, p) || tArrive >= ls.bestOf(ls.destination) {
		return false
	}
	ls.labels[k][p] = tArrive
	if tArrive < ls.bestOf(p) {
		ls.best[p] = tArrive
	}
	ls.parents[k][p] = parentRecord{kind: parentTransit, route: route, trip: trip, from: boardStop}
	marked[p] = struct{}{}
	return true
}

// relaxFootpath implements spec.md §4.1's relax_footpath: the same
// target/local-improvement test as relaxTransit, recording a footpath
// parent instead of a transit one.
func (ls *labelStore) relaxFootpath(k int, p timetable.Stop, tArrive timetable.Time, via timetable.Stop, marked map[timetable.Stop]struct{}) bool {
	if tArrive >= ls.get(k, p) || tArrive >= ls.bestOf(ls.destination) {
		return false
	}
	ls.labels[k][p] = tArrive
	if tArrive < ls.bestOf(p) {
		ls.best[p] = tArrive
	}
	ls.parents[k][p] = parentRecord{kind: parentFootpath, from: via}
	marked[p] = struct{}{}
	return true
}
