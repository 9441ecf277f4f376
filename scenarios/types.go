package scenarios

// TripSpec is one trip on a route: one departure and one arrival time
// per stop on the route, in route order, seconds since midnight.
type TripSpec struct {
	Departures []int64 `yaml:"departures"`
	Arrivals   []int64 `yaml:"arrivals"`
}

// RouteSpec is a route as an ordered list of stop IDs plus the trips
// that run it.
type RouteSpec struct {
	ID    string     `yaml:"id" validate:"required"`
	Stops []string   `yaml:"stops" validate:"min=2,dive,required"`
	Trips []TripSpec `yaml:"trips" validate:"dive"`
}

// FootpathSpec is a directed walking arc between two stop IDs.
type FootpathSpec struct {
	From     string `yaml:"from"`
	To       string `yaml:"to"`
	Duration int64  `yaml:"duration"`
}

// QuerySpec is the raptor.Query call this fixture exercises.
type QuerySpec struct {
	KMax        int    `yaml:"k_max" validate:"gte=0"`
	DepartTime  int64  `yaml:"depart_time" validate:"gte=0"`
	Origin      string `yaml:"origin" validate:"required"`
	Destination string `yaml:"destination" validate:"required"`
}

// Scenario is one fixture: a small timetable plus the query to run
// against it.
type Scenario struct {
	Name      string         `yaml:"name" validate:"required"`
	Stops     []string       `yaml:"stops" validate:"min=1,dive,required"`
	Routes    []RouteSpec    `yaml:"routes" validate:"dive"`
	Footpaths []FootpathSpec `yaml:"footpaths" validate:"dive"`
	Query     QuerySpec      `yaml:"query" validate:"required"`
}
