package memtable_test

import (
	"testing"

	"github.com/routeweave/raptor/memtable"
	"github.com/routeweave/raptor/timetable"
)

func TestBuilder_SimpleRouteRoundTrip(t *testing.T) {
	b := memtable.NewBuilder()
	a := b.AddStop("A")
	c := b.AddStop("B")
	d := b.AddStop("C")
	r := b.AddRoute(a, c, d)
	trip := b.AddTrip(r, []timetable.Time{100, 130, 160}, []timetable.Time{100, 135, 165})

	tt, err := b.Build()
	if err != nil {
		t.Fatalf("Build: unexpected error %v", err)
	}

	if got := tt.IndexOf(r, c); got != 1 {
		t.Fatalf("IndexOf(r, B) = %d, want 1", got)
	}
	if got := tt.Departure(trip, a); got != 100 {
		t.Fatalf("Departure(trip, A) = %d, want 100", got)
	}
	if got := tt.Arrival(trip, d); got != 165 {
		t.Fatalf("Arrival(trip, C) = %d, want 165", got)
	}
	if got := tt.LookupStop("B"); got != c {
		t.Fatalf("LookupStop(B) = %v, want %v", got, c)
	}
	if got := tt.LookupStop("nope"); got != timetable.NoStop {
		t.Fatalf("LookupStop(nope) = %v, want NoStop", got)
	}
}

func TestBuilder_EarliestTripBinarySearch(t *testing.T) {
	b := memtable.NewBuilder()
	a := b.AddStop("A")
	c := b.AddStop("B")
	r := b.AddRoute(a, c)

	early := b.AddTrip(r, []timetable.Time{100, 110}, []timetable.Time{100, 110})
	mid := b.AddTrip(r, []timetable.Time{200, 210}, []timetable.Time{200, 210})
	late := b.AddTrip(r, []timetable.Time{300, 310}, []timetable.Time{300, 310})

	tt, err := b.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	cases := []struct {
		tMin timetable.Time
		want timetable.Trip
	}{
		{0, early},
		{100, early},
		{101, mid},
		{200, mid},
		{201, late},
		{301, timetable.NoTrip},
	}
	for _, tc := range cases {
		if got := tt.EarliestTrip(r, a, tc.tMin); got != tc.want {
			t.Fatalf("EarliestTrip(r, A, %d) = %v, want %v", tc.tMin, got, tc.want)
		}
	}
}

func TestBuilder_EarliestTripSurvivesOvertaking(t *testing.T) {
	b := memtable.NewBuilder()
	a := b.AddStop("A")
	c := b.AddStop("B")
	d := b.AddStop("C")
	r := b.AddRoute(a, c, d)

	// slow departs A first but arrives at C after fast, which departs A
	// second: their relative order flips between position 0 and position 2.
	slow := b.AddTrip(r, []timetable.Time{100, 400, 500}, []timetable.Time{100, 400, 500})
	fast := b.AddTrip(r, []timetable.Time{110, 120, 130}, []timetable.Time{110, 120, 130})

	tt, err := b.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	if got := tt.EarliestTrip(r, a, 0); got != slow {
		t.Fatalf("EarliestTrip(r, A, 0) = %v, want %v (departs A first)", got, slow)
	}
	if got := tt.EarliestTrip(r, d, 0); got != fast {
		t.Fatalf("EarliestTrip(r, C, 0) = %v, want %v (arrives C first, despite departing A second)", got, fast)
	}
	if got := tt.EarliestTrip(r, d, 131); got != slow {
		t.Fatalf("EarliestTrip(r, C, 131) = %v, want %v", got, slow)
	}
}

func TestBuilder_FootpathAndRoutesThrough(t *testing.T) {
	b := memtable.NewBuilder()
	a := b.AddStop("A")
	c := b.AddStop("B")
	b.AddFootpath(a, c, 60)
	r := b.AddRoute(a, c)
	b.AddTrip(r, []timetable.Time{0, 10}, []timetable.Time{0, 10})

	tt, err := b.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	fps := tt.FootpathsFrom(a)
	if len(fps) != 1 || fps[0].To != c || fps[0].Duration != 60 {
		t.Fatalf("FootpathsFrom(A) = %v, want one arc to B of duration 60", fps)
	}

	routes := tt.RoutesThrough(c)
	if len(routes) != 1 || routes[0] != r {
		t.Fatalf("RoutesThrough(B) = %v, want [%v]", routes, r)
	}
}

func TestBuilder_AddRouteDedupsByStopSequence(t *testing.T) {
	b := memtable.NewBuilder()
	a := b.AddStop("A")
	c := b.AddStop("B")
	d := b.AddStop("C")

	r1 := b.AddRoute(a, c, d)
	early := b.AddTrip(r1, []timetable.Time{100, 130, 160}, []timetable.Time{100, 135, 165})

	r2 := b.AddRoute(a, c, d) // identical sequence: same pattern as r1
	if r2 != r1 {
		t.Fatalf("AddRoute with a repeated sequence = %v, want the original Route %v", r2, r1)
	}
	late := b.AddTrip(r2, []timetable.Time{200, 230, 260}, []timetable.Time{200, 235, 265})

	tt, err := b.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	if got := tt.EarliestTrip(r1, a, 150); got != late {
		t.Fatalf("EarliestTrip(r1, A, 150) = %v, want %v (trip added via r2)", got, late)
	}
	if got := tt.EarliestTrip(r1, a, 0); got != early {
		t.Fatalf("EarliestTrip(r1, A, 0) = %v, want %v", got, early)
	}

	// A different stop sequence still gets its own Route.
	e := b.AddStop("D")
	r3 := b.AddRoute(a, c, e)
	if r3 == r1 {
		t.Fatalf("AddRoute with a different sequence reused Route %v", r1)
	}
}

func TestBuilder_ErrorsAreSticky(t *testing.T) {
	b := memtable.NewBuilder()
	a := b.AddStop("A")
	b.AddRoute(a) // fewer than two stops

	if _, err := b.Build(); err != memtable.ErrEmptyRoute {
		t.Fatalf("Build() error = %v, want ErrEmptyRoute", err)
	}

	// Once b.err is set, further calls are no-ops rather than panics.
	r := b.AddRoute(a, a)
	if r != timetable.NoRoute {
		t.Fatalf("AddRoute after error = %v, want NoRoute", r)
	}
}

func TestBuilder_RejectsUnorderedTrip(t *testing.T) {
	b := memtable.NewBuilder()
	a := b.AddStop("A")
	c := b.AddStop("B")
	r := b.AddRoute(a, c)
	b.AddTrip(r, []timetable.Time{100, 50}, []timetable.Time{100, 50})

	if _, err := b.Build(); err != memtable.ErrUnorderedTrip {
		t.Fatalf("Build() error = %v, want ErrUnorderedTrip", err)
	}
}
