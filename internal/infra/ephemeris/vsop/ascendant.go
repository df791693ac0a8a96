package vsop

import (
	"math"

	"github.com/soniakeys/meeus/v3/nutation"

	"github.com/yanqian/jyotish/internal/domain/chart"
)

const rad = math.Pi / 180

// ascendant returns the tropical longitude of the eastern horizon.
func ascendant(jdUT, jde, lat, lon float64) float64 {
	dpsi, deps := nutation.Nutation(jde)
	eps := nutation.MeanObliquity(jde) + deps
	gast := meanSidereal(jdUT) + dpsi.Deg()*math.Cos(eps.Rad())
	ramc := chart.NormalizeDegrees(gast + lon)
	return ascendantFromRAMC(ramc, eps.Deg(), lat)
}

// meanSidereal is Greenwich mean sidereal time in degrees (IAU 1982).
func meanSidereal(jdUT float64) float64 {
	t := (jdUT - j2000) / daysPerCentury
	theta := 280.46061837 + 360.98564736629*(jdUT-j2000) + 0.000387933*t*t - t*t*t/38710000
	return chart.NormalizeDegrees(theta)
}

func ascendantFromRAMC(ramc, obliquity, lat float64) float64 {
	sr, cr := math.Sincos(ramc * rad)
	se, ce := math.Sincos(obliquity * rad)
	asc := math.Atan2(cr, -(sr*ce + math.Tan(lat*rad)*se))
	return chart.NormalizeDegrees(asc / rad)
}
