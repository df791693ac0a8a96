package vsop

import (
	"math"

	"github.com/soniakeys/meeus/v3/base"
	"github.com/soniakeys/meeus/v3/kepler"
	pe "github.com/soniakeys/meeus/v3/planetelements"
	"github.com/soniakeys/meeus/v3/solar"
	"github.com/soniakeys/unit"
)

// heliocentric yields ecliptic coordinates referred to the mean equinox of
// date. *planetposition.V87Planet satisfies it.
type heliocentric interface {
	Position(jde float64) (l, b unit.Angle, r float64)
}

// meanOrbit is an unperturbed Keplerian orbit built from the mean elements of
// date. Inner planets stay within a few arcminutes of VSOP87; Jupiter and
// Saturn drift by up to about a degree near the great inequality maxima.
type meanOrbit struct {
	planet int
}

func (o meanOrbit) Position(jde float64) (unit.Angle, unit.Angle, float64) {
	var el pe.Elements
	pe.Mean(o.planet, jde, &el)

	E := kepler.Kepler3(el.Ecc, el.Lon-el.Peri)
	nu := kepler.True(E, el.Ecc)
	r := kepler.Radius(E, el.Ecc, el.Axis)

	su, cu := math.Sincos((nu + el.Peri - el.Node).Rad())
	si, ci := math.Sincos(el.Inc.Rad())
	l := el.Node + unit.Angle(math.Atan2(ci*su, cu))
	b := unit.Angle(math.Asin(si * su))
	return l.Mod1(), b, r
}

// meanEarth reverses the low precision solar theory. The mean element table
// carries no node for the Earth, so planetelements.Mean cannot serve it.
type meanEarth struct{}

func (meanEarth) Position(jde float64) (unit.Angle, unit.Angle, float64) {
	T := base.J2000Century(jde)
	s, _ := solar.True(T)
	return (s + math.Pi).Mod1(), 0, solar.Radius(T)
}
