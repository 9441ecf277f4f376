package scenarios

import (
	"fmt"

	"github.com/routeweave/raptor/memtable"
	"github.com/routeweave/raptor/timetable"
)

// Built is a Scenario turned into a queryable Timetable, with its query
// parameters already resolved to Stop handles.
type Built struct {
	Timetable   *memtable.Timetable
	KMax        int
	DepartTime  timetable.Time
	Origin      timetable.Stop
	Destination timetable.Stop
}

// Build turns s into a memtable.Timetable and resolves its query's
// origin/destination stop IDs, ready to pass to raptor.Query.
func (s *Scenario) Build() (*Built, error) {
	b := memtable.NewBuilder()

	ids := make(map[string]timetable.Stop, len(s.Stops))
	for _, id := range s.Stops {
		ids[id] = b.AddStop(id)
	}

	resolve := func(id string) (timetable.Stop, error) {
		stop, ok := ids[id]
		if !ok {
			return timetable.NoStop, fmt.Errorf("%w: %q", ErrUnknownStop, id)
		}
		return stop, nil
	}

	for _, rd := range s.Routes {
		stops := make([]timetable.Stop, len(rd.Stops))
		for i, id := range rd.Stops {
			stop, err := resolve(id)
			if err != nil {
				return nil, err
			}
			stops[i] = stop
		}
		route := b.AddRoute(stops...)
		for _, td := range rd.Trips {
			b.AddTrip(route, toTimes(td.Departures), toTimes(td.Arrivals))
		}
	}

	for _, fp := range s.Footpaths {
		from, err := resolve(fp.From)
		if err != nil {
			return nil, err
		}
		to, err := resolve(fp.To)
		if err != nil {
			return nil, err
		}
		b.AddFootpath(from, to, timetable.Time(fp.Duration))
	}

	tt, err := b.Build()
	if err != nil {
		return nil, err
	}

	origin, err := resolve(s.Query.Origin)
	if err != nil {
		return nil, err
	}
	destination, err := resolve(s.Query.Destination)
	if err != nil {
		return nil, err
	}

	return &Built{
		Timetable:   tt,
		KMax:        s.Query.KMax,
		DepartTime:  timetable.Time(s.Query.DepartTime),
		Origin:      origin,
		Destination: destination,
	}, nil
}

func toTimes(vs []int64) []timetable.Time {
	out := make([]timetable.Time, len(vs))
	for i, v := range vs {
		out[i] = timetable.Time(v)
	}
	return out
}
