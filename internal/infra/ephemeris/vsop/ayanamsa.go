package vsop

import (
	"fmt"

	"github.com/yanqian/jyotish/internal/domain/chart"
)

const (
	j2000          = 2451545.0
	daysPerCentury = 36525.0

	// Lahiri reference epoch (1956-09-22 0h TT) and its ayanamsa in degrees.
	lahiriEpoch = 2435553.5
	lahiriValue = 23.245524743
)

func ayanamsa(mode chart.SiderealMode, jde float64) (float64, error) {
	switch mode {
	case chart.Lahiri:
		return lahiriValue + (precession(jde)-precession(lahiriEpoch))/3600, nil
	default:
		return 0, fmt.Errorf("unsupported sidereal mode %q", mode)
	}
}

// precession is the IAU 2006 general precession in longitude since J2000, in arcseconds.
func precession(jde float64) float64 {
	t := (jde - j2000) / daysPerCentury
	return t * (5028.796195 + t*(1.1054348+t*0.00007964))
}
