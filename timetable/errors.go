package timetable

import "errors"

// Sentinel errors returned by the convenience lookup helpers callers use
// to translate external stop identifiers before calling raptor.Query
// (raptor.ResolveStop). Timetable.LookupStop itself reports an unknown
// identifier as NoStop, not as an error. The raptor core itself only
// ever surfaces ErrOriginUnknown / ErrDestinationUnknown (spec.md §7).
var (
	// ErrUnknownStop indicates an external identifier does not resolve
	// to any Stop in the Timetable.
	ErrUnknownStop = errors.New("timetable: unknown stop")
)
