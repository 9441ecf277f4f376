package scenarios

import "errors"

var (
	// ErrUnknownStop is returned by Build when a route, footpath, or
	// query references a stop ID not declared in the fixture's Stops
	// list.
	ErrUnknownStop = errors.New("scenarios: unknown stop id")

	// ErrUnknownFixture is returned by Named when asked for a built-in
	// fixture name that does not exist.
	ErrUnknownFixture = errors.New("scenarios: unknown fixture name")
)
