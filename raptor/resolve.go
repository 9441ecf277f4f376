package raptor

import "github.com/routeweave/raptor/timetable"

// ResolveStop translates a caller-facing external stop identifier (a
// GTFS stop_id, say) into a timetable.Stop via tt.LookupStop.
//
// Query itself takes already-resolved Stop handles and treats an
// invalid one (timetable.NoStop) as ErrOriginUnknown / ErrDestinationUnknown
// — the alternative resolution spec.md §7 allows for the "unknown
// identifier" failure mode. ResolveStop is the piece that lives outside
// the core: callers translating raw user input call it first and get
// timetable.ErrUnknownStop back for an identifier the Timetable has
// never heard of.
func ResolveStop(tt timetable.Timetable, externalID string) (timetable.Stop, error) {
	s := tt.LookupStop(externalID)
	if s == timetable.NoStop {
		return timetable.NoStop, timetable.ErrUnknownStop
	}
	return s, nil
}
