package raptor

import "errors"

// Sentinel errors Query returns. Besides ErrNilTimetable, which guards a
// missing collaborator, ErrOriginUnknown and ErrDestinationUnknown are
// the only two failure modes spec.md §7 assigns to the core itself;
// anything else (a malformed
// Timetable, a negative footpath duration) is a Timetable-implementation
// bug and is explicitly out of scope for the core to detect.
var (
	// ErrNilTimetable is returned when Query is called with a nil
	// Timetable.
	ErrNilTimetable = errors.New("raptor: timetable is nil")

	// ErrOriginUnknown is returned when the origin Stop is the NoStop
	// sentinel.
	ErrOriginUnknown = errors.New("raptor: origin stop is unknown")

	// ErrDestinationUnknown is returned when the destination Stop is the
	// NoStop sentinel.
	ErrDestinationUnknown = errors.New("raptor: destination stop is unknown")
)
