package tzfinder

import (
	"fmt"
	"math"

	"github.com/ringsaturn/tzf"

	"github.com/yanqian/jyotish/internal/domain/chart"
)

// Finder answers timezone lookups from the boundary data bundled with tzf.
// Lookups are read-only and safe for concurrent use.
type Finder struct {
	finder tzf.F
}

// New loads the default boundary data set.
func New() (*Finder, error) {
	f, err := tzf.NewDefaultFinder()
	if err != nil {
		return nil, fmt.Errorf("load timezone boundaries: %w", err)
	}
	return &Finder{finder: f}, nil
}

// Timezone returns the IANA zone containing the point, or false when the point
// is outside every boundary or not a valid coordinate.
func (f *Finder) Timezone(lat, lon float64) (string, bool) {
	if math.IsNaN(lat) || math.IsNaN(lon) || lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		return "", false
	}
	name := f.finder.GetTimezoneName(lon, lat)
	if name == "" {
		return "", false
	}
	return name, true
}

var _ chart.TimezoneResolver = (*Finder)(nil)
