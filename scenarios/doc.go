// Package scenarios holds small, named timetable fixtures used to
// exercise package raptor end to end, plus the YAML loader that turns a
// fixture into a memtable.Timetable and a ready-to-run query.
//
// A fixture is a YAML document describing stops, routes (with their
// trips), footpaths, and one query against them. The built-in fixtures
// under testdata/ mirror the network shapes commonly used to sanity
// check a RAPTOR implementation: a single direct route, a route pair
// requiring a transfer, a missed connection, a footpath-created
// transfer, and a transfers-vs-arrival-time tradeoff. cmd/raptorcli
// loads a fixture (built-in or user-supplied) by this same format.
package scenarios
