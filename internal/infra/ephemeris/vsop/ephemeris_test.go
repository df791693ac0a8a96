package vsop

import (
	"context"
	"math"
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yanqian/jyotish/internal/domain/chart"
	"github.com/yanqian/jyotish/pkg/logger"
)

func TestLahiriAyanamsa(t *testing.T) {
	atEpoch, err := ayanamsa(chart.Lahiri, lahiriEpoch)
	require.NoError(t, err)
	require.InDelta(t, lahiriValue, atEpoch, 1e-9)

	atJ2000, err := ayanamsa(chart.Lahiri, j2000)
	require.NoError(t, err)
	require.InDelta(t, 23.857, atJ2000, 0.002)

	// Roughly 50.3 arcseconds per year.
	later, err := ayanamsa(chart.Lahiri, j2000+365.25)
	require.NoError(t, err)
	require.InDelta(t, 50.29/3600, later-atJ2000, 0.0005)

	_, err = ayanamsa(chart.SiderealMode("fagan_bradley"), j2000)
	require.Error(t, err)
}

func TestDeltaT(t *testing.T) {
	require.InDelta(t, 63.86, deltaT(2000), 0.01)
	require.InDelta(t, 56.9, deltaT(1990), 0.5)
	require.InDelta(t, 29.07, deltaT(1950), 0.01)
	require.Greater(t, terrestrial(j2000), j2000)
}

func TestAscendantFromRAMC(t *testing.T) {
	// On the equator with Aries culminating, Cancer 0 rises.
	require.InDelta(t, 90.0, ascendantFromRAMC(0, 23.44, 0), 1e-9)
	require.InDelta(t, 180.0, ascendantFromRAMC(90, 23.44, 0), 1e-9)
	require.InDelta(t, 0.0, math.Mod(ascendantFromRAMC(270, 23.44, 0), 360), 1e-9)

	// London with RAMC 0 has roughly 26.6 degrees of Cancer rising.
	require.InDelta(t, 116.6, ascendantFromRAMC(0, 23.44, 51.5), 0.1)
}

func TestAscendantValidation(t *testing.T) {
	e := &Ephemeris{}

	asc, err := e.Ascendant(2448118.5+1.0/24, 28.6139, 77.209, chart.WholeSign)
	require.NoError(t, err)
	require.GreaterOrEqual(t, asc, 0.0)
	require.Less(t, asc, 360.0)

	_, err = e.Ascendant(2448118.5, 28.6, 77.2, chart.HouseSystem('P'))
	require.Error(t, err)
	_, err = e.Ascendant(2448118.5, 91, 77.2, chart.WholeSign)
	require.Error(t, err)
	_, err = e.Ascendant(math.NaN(), 28.6, 77.2, chart.WholeSign)
	require.Error(t, err)
	_, err = e.Ascendant(1e9, 28.6, 77.2, chart.WholeSign)
	require.Error(t, err)
}

func TestMoonAndNodeWithoutPlanetData(t *testing.T) {
	e := &Ephemeris{}

	// Meeus, Astronomical Algorithms, example 47.a (1992 April 12, 0h TD).
	moon, err := e.tropical(chart.Moon, 2448724.5)
	require.NoError(t, err)
	require.InDelta(t, 133.162655, moon, 1e-4)

	node, err := e.tropical(chart.MeanNode, 2448724.5)
	require.NoError(t, err)
	require.InDelta(t, 274.4007, node, 0.01)

	rahu, err := e.Longitude(j2000, chart.MeanNode, chart.Lahiri)
	require.NoError(t, err)
	require.InDelta(t, 125.0446-23.857, rahu, 0.01)

	_, err = e.Longitude(j2000, chart.Sun, chart.Lahiri)
	require.ErrorIs(t, err, errNotLoaded)
	_, err = e.Longitude(j2000, chart.Mars, chart.Lahiri)
	require.ErrorIs(t, err, errNotLoaded)
	_, err = e.Longitude(j2000, chart.Body(42), chart.Lahiri)
	require.Error(t, err)
}

func TestPlanetsWithVSOP87Data(t *testing.T) {
	dir := os.Getenv("VSOP87")
	if dir == "" {
		t.Skip("VSOP87 not set")
	}
	e, err := New(dir)
	require.NoError(t, err)

	// Meeus example 25.b: apparent Sun 199.907347 on 1992 October 13, 0h TD.
	sun, err := e.tropical(chart.Sun, 2448908.5)
	require.NoError(t, err)
	require.InDelta(t, 199.9073, sun, 0.01)

	// Meeus example 33.a: apparent Venus 313.08102 on 1992 December 20, 0h TD.
	venus, err := e.tropical(chart.Venus, 2448976.5)
	require.NoError(t, err)
	require.InDelta(t, 313.081, venus, 0.02)

	for _, body := range chart.TrackedBodies {
		lon, err := e.Longitude(2448118.5+1.0/24, body, chart.Lahiri)
		require.NoError(t, err, body.String())
		require.GreaterOrEqual(t, lon, 0.0)
		require.Less(t, lon, 360.0)
	}
}

func TestMeanElementPositions(t *testing.T) {
	e := NewMeanElements()
	require.Equal(t, SourceMeanElements, e.Source())

	sun, err := e.tropical(chart.Sun, 2448908.5)
	require.NoError(t, err)
	require.InDelta(t, 199.9073, sun, 0.01)

	venus, err := e.tropical(chart.Venus, 2448976.5)
	require.NoError(t, err)
	require.InDelta(t, 313.081, venus, 0.05)

	for _, body := range chart.TrackedBodies {
		lon, err := e.Longitude(2448118.5+1.0/24, body, chart.Lahiri)
		require.NoError(t, err, body.String())
		require.GreaterOrEqual(t, lon, 0.0)
		require.Less(t, lon, 360.0)
	}
}

func TestNewFallsBackToMeanElements(t *testing.T) {
	t.Setenv("VSOP87", "")
	e, err := New("")
	require.NoError(t, err)
	require.Equal(t, SourceMeanElements, e.Source())

	_, err = New(t.TempDir())
	require.Error(t, err)
}

func TestNewDelhiChartWithoutDataFiles(t *testing.T) {
	t.Setenv("VSOP87", "")
	ephem, err := New("")
	require.NoError(t, err)

	svc := chart.NewService(
		chart.Config{},
		fixedGeocoder{loc: chart.Location{Latitude: 28.6139, Longitude: 77.209}},
		fixedZones{name: "Asia/Kolkata"},
		ephem,
		logger.Discard(),
	)
	got, err := svc.Calculate(context.Background(), chart.Request{
		DateOfBirth:  "15/08/1990",
		TimeOfBirth:  "06:30",
		PlaceOfBirth: "New Delhi",
		StateOfBirth: "Delhi",
	})
	require.NoError(t, err)
	require.Equal(t, "Asia/Kolkata", got.Metadata.Timezone)
	require.Contains(t, chart.Signs[:], got.Ascendant)
	require.Len(t, got.PlanetaryPlacements, len(chart.TrackedBodies))

	for i, p := range got.PlanetaryPlacements {
		require.Equal(t, chart.TrackedBodies[i].String(), p.Planet)
		require.Contains(t, chart.Signs[:], p.D1Sign, p.Planet)
		require.Contains(t, chart.Signs[:], p.D9Sign, p.Planet)
		require.Contains(t, chart.Nakshatras[:], p.Nakshatra, p.Planet)
		require.GreaterOrEqual(t, p.Degree, 0.0, p.Planet)
		require.Less(t, p.Degree, 30.0, p.Planet)
	}

	// Sidereal Sun in late Cancer, a couple of days before entering Leo.
	sun := got.PlanetaryPlacements[0]
	require.Equal(t, "Cancer", sun.D1Sign)
	require.Equal(t, "Ashlesha", sun.Nakshatra)
	require.Greater(t, sun.Degree, 27.0)
}

type fixedGeocoder struct {
	loc chart.Location
}

func (g fixedGeocoder) Geocode(context.Context, string, string) (chart.Location, bool, error) {
	return g.loc, true, nil
}

type fixedZones struct {
	name string
}

func (z fixedZones) Timezone(float64, float64) (string, bool) {
	return z.name, true
}
