// Package timetable defines the opaque handles and the read-only query
// surface that the raptor package treats as an external collaborator.
//
// Nothing in this package computes a route. It exists purely to give the
// raptor core a stable, allocation-cheap vocabulary — Stop, Route, Trip,
// Time — and a single interface, Timetable, through which the core reads
// schedule data. Concrete Timetable implementations (an in-memory one
// lives in package memtable) own indexing, parsing, and storage; none of
// that is this package's concern.
//
// Stop, Route, and Trip are int32-based handles rather than strings so
// that label and parent stores in package raptor can use them directly
// as cheap map keys. A Timetable implementation is expected to hand out
// dense, zero-based handles (0..N) for whichever entity it indexes, but
// the core itself never assumes this — it only requires equality and,
// via IndexOf, a way to locate a Stop's position on a Route.
package timetable
