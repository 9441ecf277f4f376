// Package routeweave is the repository root for a RAPTOR (Round-bAsed
// Public Transit Optimized Router) journey planner — a pure, round-based
// earliest-arrival algorithm for public transit routing.
//
// What is routeweave?
//
//	A dependency-light journey planner that brings together:
//		• A round-based label store with lazy carry-forward reads
//		• Route-queue construction and route scanning with on-route
//		  trip downgrading
//		• Footpath relaxation, with an optional fixpoint fallback for
//		  timetables whose footpath set isn't transitively closed
//		• Journey reconstruction over the Pareto frontier of
//		  (arrival time, transfers)
//
// Why RAPTOR over Dijkstra?
//
//   - Round-bounded — K_max rounds means at most K_max transfers, by
//     construction, not by post-hoc filtering
//   - Pure and concurrency-safe — Query holds no state beyond the call
//     and never mutates its Timetable collaborator
//   - No preprocessing — no contraction hierarchies, no transfer
//     patterns; works directly against any Timetable implementation
//
// Under the hood, everything is organized under these subpackages:
//
//	raptor/        — the core: labels, route scanning, footpaths, reconstruction
//	timetable/     — opaque Stop/Route/Trip/Time handles and the Timetable interface
//	memtable/      — an in-memory Timetable implementation and builder
//	scenarios/     — loadable YAML fixtures for the algorithm's canonical scenarios
//	cmd/raptorcli/ — a demonstration CLI
//
// Quick example: a single trip serving A, B, C in order, queried A → C,
// yields one zero-transfer journey arriving at the trip's scheduled time.
// See raptor.Query and the built-in "single-route" scenario fixture for
// the full picture.
package routeweave
