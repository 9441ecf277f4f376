package memtable

import "errors"

var (
	// ErrStopCountMismatch is returned by AddTrip when the number of
	// departure or arrival times does not match the route's stop count.
	ErrStopCountMismatch = errors.New("memtable: trip time count does not match route's stop count")

	// ErrUnknownRoute is returned by AddTrip when given a Route handle
	// this Builder never issued.
	ErrUnknownRoute = errors.New("memtable: unknown route")

	// ErrEmptyRoute is returned by AddRoute when called with fewer than
	// two stops; a route with fewer than two stops can never be boarded
	// and alighted from.
	ErrEmptyRoute = errors.New("memtable: route needs at least two stops")

	// ErrUnorderedTrip is returned by AddTrip when a trip's times are
	// not weakly increasing along the route: an arrival later than the
	// departure at the same stop, or a departure later than the arrival
	// at the next stop.
	ErrUnorderedTrip = errors.New("memtable: trip times are not monotonically increasing along the route")
)
