// Command raptorcli runs a RAPTOR journey query against a scenario
// fixture and prints the resulting Pareto-optimal journeys.
//
// Usage:
//
//	raptorcli -scenario single-route
//	raptorcli -file my_scenario.yaml
//	raptorcli -list
//
// A scenario is either one of the built-in fixtures shipped in package
// scenarios (see -list for the full set) or a user-supplied YAML file in
// the same format (the scenarios.Scenario type documents the schema).
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/routeweave/raptor/raptor"
	"github.com/routeweave/raptor/scenarios"
)

func main() {
	var (
		scenarioName = flag.String("scenario", "", "name of a built-in scenario fixture (see -list)")
		filePath     = flag.String("file", "", "path to a scenario YAML file")
		list         = flag.Bool("list", false, "print the names of the built-in scenario fixtures and exit")
	)
	flag.Parse()

	if *list {
		for _, name := range scenarios.Names() {
			fmt.Println(name)
		}
		return
	}

	s, err := loadScenario(*scenarioName, *filePath)
	if err != nil {
		log.Fatalf("raptorcli: %v", err)
	}

	built, err := s.Build()
	if err != nil {
		log.Fatalf("raptorcli: build scenario: %v", err)
	}

	journeys, err := raptor.Query(built.Timetable, built.KMax, built.DepartTime, built.Origin, built.Destination)
	if err != nil {
		log.Fatalf("raptorcli: query: %v", err)
	}

	printJourneys(built, journeys)
}

func loadScenario(scenarioName, filePath string) (*scenarios.Scenario, error) {
	switch {
	case scenarioName != "" && filePath != "":
		return nil, fmt.Errorf("specify only one of -scenario or -file")
	case scenarioName != "":
		return scenarios.Named(scenarioName)
	case filePath != "":
		f, err := os.Open(filePath)
		if err != nil {
			return nil, fmt.Errorf("open %s: %w", filePath, err)
		}
		defer f.Close()
		return scenarios.Load(f)
	default:
		return nil, fmt.Errorf("one of -scenario or -file is required (or pass -list)")
	}
}

func printJourneys(built *scenarios.Built, journeys []raptor.Journey) {
	if len(journeys) == 0 {
		fmt.Println("no journey found")
		return
	}
	for i, j := range journeys {
		transfers := len(j.Plan) - 1
		if transfers < 0 {
			transfers = 0
		}
		fmt.Printf("journey %d: %d transfer(s), arrival %d\n", i, transfers, j.Arrival)
		for _, leg := range j.Plan {
			name := built.Timetable.StopName(leg.Board)
			if name == "" {
				name = fmt.Sprintf("stop#%d", leg.Board)
			}
			fmt.Printf("  board route %d at %s\n", leg.Route, name)
		}
	}
}
