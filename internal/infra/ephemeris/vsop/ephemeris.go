package vsop

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/soniakeys/meeus/v3/moonposition"
	pe "github.com/soniakeys/meeus/v3/planetelements"
	pp "github.com/soniakeys/meeus/v3/planetposition"
	"github.com/soniakeys/unit"

	"github.com/yanqian/jyotish/internal/domain/chart"
)

// Supported span of Julian Days, roughly years -3000 to 3000.
const (
	minJD = 625673.5
	maxJD = 2816787.5
)

var errNotLoaded = errors.New("planet theory not loaded")

var vsopBodies = map[chart.Body]int{
	chart.Mercury: pp.Mercury,
	chart.Venus:   pp.Venus,
	chart.Mars:    pp.Mars,
	chart.Jupiter: pp.Jupiter,
	chart.Saturn:  pp.Saturn,
}

var meanBodies = map[chart.Body]int{
	chart.Mercury: pe.Mercury,
	chart.Venus:   pe.Venus,
	chart.Mars:    pe.Mars,
	chart.Jupiter: pe.Jupiter,
	chart.Saturn:  pe.Saturn,
}

// Planet backends reported by Source.
const (
	SourceVSOP87       = "vsop87"
	SourceMeanElements = "mean_elements"
)

// Ephemeris evaluates geocentric positions from VSOP87 or mean orbital
// elements (planets) and ELP-2000/82 (Moon). Series are loaded once; every
// method is safe for concurrent use.
type Ephemeris struct {
	source  string
	earth   heliocentric
	planets map[chart.Body]heliocentric
}

// New loads the VSOP87B files from dir, or from $VSOP87 when dir is empty.
// Without either it falls back to mean orbital elements, which need no data
// files.
func New(dir string) (*Ephemeris, error) {
	dir = strings.TrimSpace(dir)
	if dir == "" {
		dir = os.Getenv("VSOP87")
	}
	if dir == "" {
		return NewMeanElements(), nil
	}
	earth, err := pp.LoadPlanetPath(pp.Earth, dir)
	if err != nil {
		return nil, fmt.Errorf("load vsop87 earth: %w", err)
	}
	planets := make(map[chart.Body]heliocentric, len(vsopBodies))
	for body, ibody := range vsopBodies {
		p, err := pp.LoadPlanetPath(ibody, dir)
		if err != nil {
			return nil, fmt.Errorf("load vsop87 %s: %w", body, err)
		}
		planets[body] = p
	}
	return &Ephemeris{source: SourceVSOP87, earth: earth, planets: planets}, nil
}

// NewMeanElements builds an evaluator whose planets follow unperturbed orbits
// from the mean elements of date.
func NewMeanElements() *Ephemeris {
	planets := make(map[chart.Body]heliocentric, len(meanBodies))
	for body, ipl := range meanBodies {
		planets[body] = meanOrbit{planet: ipl}
	}
	return &Ephemeris{source: SourceMeanElements, earth: meanEarth{}, planets: planets}
}

// Source names the planet backend in use.
func (e *Ephemeris) Source() string {
	return e.source
}

// Ayanamsa returns the sidereal offset in degrees for the mode.
func (e *Ephemeris) Ayanamsa(jdUT float64, mode chart.SiderealMode) (float64, error) {
	if err := checkJD(jdUT); err != nil {
		return 0, err
	}
	return ayanamsa(mode, terrestrial(jdUT))
}

// Ascendant returns the tropical ecliptic longitude rising at the place.
func (e *Ephemeris) Ascendant(jdUT, lat, lon float64, houses chart.HouseSystem) (float64, error) {
	if err := checkJD(jdUT); err != nil {
		return 0, err
	}
	if houses != chart.WholeSign {
		return 0, fmt.Errorf("unsupported house system %q", rune(houses))
	}
	if math.IsNaN(lat) || math.IsNaN(lon) || math.Abs(lat) > 90 || math.Abs(lon) > 180 {
		return 0, fmt.Errorf("invalid geographic position lat=%v lon=%v", lat, lon)
	}
	return ascendant(jdUT, terrestrial(jdUT), lat, lon), nil
}

// Longitude returns the sidereal ecliptic longitude of body in degrees.
func (e *Ephemeris) Longitude(jdUT float64, body chart.Body, mode chart.SiderealMode) (float64, error) {
	if err := checkJD(jdUT); err != nil {
		return 0, err
	}
	jde := terrestrial(jdUT)
	ayan, err := ayanamsa(mode, jde)
	if err != nil {
		return 0, err
	}
	tropical, err := e.tropical(body, jde)
	if err != nil {
		return 0, err
	}
	return chart.NormalizeDegrees(tropical - ayan), nil
}

// tropical returns the geocentric longitude referred to the mean equinox of date.
func (e *Ephemeris) tropical(body chart.Body, jde float64) (float64, error) {
	switch body {
	case chart.Moon:
		lambda, _, _ := moonposition.Position(jde)
		return chart.NormalizeDegrees(lambda.Deg()), nil
	case chart.MeanNode:
		return chart.NormalizeDegrees(moonposition.Node(jde).Deg()), nil
	case chart.Sun:
		if e.earth == nil {
			return 0, errNotLoaded
		}
		l, _, r := e.earth.Position(jde)
		// Heliocentric Earth reversed, less annual aberration.
		return chart.NormalizeDegrees(l.Deg() + 180 - 20.4898/3600/r), nil
	}
	if _, ok := vsopBodies[body]; !ok {
		return 0, fmt.Errorf("unsupported body %s", body)
	}
	planet := e.planets[body]
	if planet == nil || e.earth == nil {
		return 0, fmt.Errorf("%s: %w", body, errNotLoaded)
	}
	return geocentric(planet, e.earth, jde), nil
}

// geocentric converts heliocentric positions to a geocentric longitude,
// iterating once for light-time.
func geocentric(planet, earth heliocentric, jde float64) float64 {
	l0, b0, r0 := earth.Position(jde)
	ex, ey, ez := rectangular(l0, b0, r0)

	var (
		tau float64
		lon float64
	)
	for i := 0; i < 2; i++ {
		l, b, r := planet.Position(jde - tau)
		x, y, z := rectangular(l, b, r)
		dx, dy, dz := x-ex, y-ey, z-ez
		tau = lightTimeDays * math.Sqrt(dx*dx+dy*dy+dz*dz)
		lon = math.Atan2(dy, dx) * 180 / math.Pi
	}
	return chart.NormalizeDegrees(lon)
}

// Days for light to travel one astronomical unit.
const lightTimeDays = 0.0057755183

func rectangular(l, b unit.Angle, r float64) (x, y, z float64) {
	sl, cl := math.Sincos(l.Rad())
	sb, cb := math.Sincos(b.Rad())
	return r * cb * cl, r * cb * sl, r * sb
}

func checkJD(jd float64) error {
	if math.IsNaN(jd) || math.IsInf(jd, 0) {
		return fmt.Errorf("julian day %v is not finite", jd)
	}
	if jd < minJD || jd > maxJD {
		return fmt.Errorf("julian day %.5f outside supported range [%.1f, %.1f]", jd, minJD, maxJD)
	}
	return nil
}

var _ chart.Ephemeris = (*Ephemeris)(nil)
