package scenarios_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/routeweave/raptor/raptor"
	"github.com/routeweave/raptor/scenarios"
)

func TestNamed_AllFixturesLoadAndBuild(t *testing.T) {
	for _, name := range scenarios.Names() {
		name := name
		t.Run(name, func(t *testing.T) {
			s, err := scenarios.Named(name)
			require.NoError(t, err, "Named(%q)", name)
			_, err = s.Build()
			require.NoError(t, err, "Build(%q)", name)
		})
	}
}

func TestNamed_UnknownFixture(t *testing.T) {
	_, err := scenarios.Named("does-not-exist")
	require.ErrorIs(t, err, scenarios.ErrUnknownFixture)
}

func TestBuiltIn_SingleRouteMatchesSpec(t *testing.T) {
	s, err := scenarios.Named("single-route")
	require.NoError(t, err)
	built, err := s.Build()
	require.NoError(t, err)

	journeys, err := raptor.Query(built.Timetable, built.KMax, built.DepartTime, built.Origin, built.Destination)
	require.NoError(t, err)
	require.Len(t, journeys, 1)
	require.Equal(t, built.DepartTime+1200, journeys[0].Arrival)
}

func TestBuiltIn_MissedConnectionYieldsNoJourney(t *testing.T) {
	s, err := scenarios.Named("missed-connection")
	require.NoError(t, err)
	built, err := s.Build()
	require.NoError(t, err)

	journeys, err := raptor.Query(built.Timetable, built.KMax, built.DepartTime, built.Origin, built.Destination)
	require.NoError(t, err)
	require.Empty(t, journeys)
}

func TestBuiltIn_FootpathTransferMissedVariant(t *testing.T) {
	s, err := scenarios.Named("footpath-transfer-missed")
	require.NoError(t, err)
	built, err := s.Build()
	require.NoError(t, err)

	journeys, err := raptor.Query(built.Timetable, built.KMax, built.DepartTime, built.Origin, built.Destination)
	require.NoError(t, err)
	require.Empty(t, journeys, "footpath is too slow to make the connection")
}
