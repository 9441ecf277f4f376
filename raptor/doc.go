// Package raptor implements the RAPTOR (Round-Based Public Transit
// Routing) algorithm of Delling, Pajor, and Werneck (ALENEX 2012).
//
// Given a departure time, an origin stop, a destination stop, and a
// round budget K_max, Query computes one journey per round that
// improved the destination's earliest-arrival label — the Pareto
// frontier of (arrival time, number of transfers).
//
// Overview:
//
//   - Round k's label τ_k(p) is the earliest arrival at stop p using at
//     most k trips. Round 0 seeds the origin with the departure time and
//     leaves every other stop unreachable.
//   - Each round has three stages, run in this order: carry the previous
//     round's labels forward, scan every route touched by a stop marked
//     in the previous round (boarding the earliest catchable trip and
//     downgrading to an earlier one as the scan proceeds down the
//     route), then relax footpaths from whatever was marked.
//   - A stop is "marked" in round k the moment its label strictly
//     improves during that round; marked stops seed the next round's
//     route queue. The algorithm stops early once a round marks nothing.
//   - Journeys are reconstructed by walking parent pointers backward
//     from the destination for every round that improved it.
//
// This package treats the schedule itself — trips, stop times,
// transfers — as an opaque collaborator (package timetable). It never
// parses a feed, indexes anything on disk, logs, or performs I/O; the
// only state it owns is the per-query label/parent/marking arrays,
// created fresh for each Query call and discarded on return.
//
// Complexity: O(K_max * (sum of route lengths touched + sum of
// footpath out-degrees touched)) time, O(|stops seen| * K_max) space.
// Both bounds are driven by however many distinct stops a given query
// actually reaches; a Timetable that returns dense, small route/footpath
// sets keeps both bounds small regardless of the overall network size.
//
// Concurrency: a single Query call is synchronous and single-threaded.
// The Timetable passed in must tolerate concurrent read access from
// multiple simultaneous Query calls, since the core itself performs no
// locking of its own — it treats the Timetable as pure and read-only.
package raptor
