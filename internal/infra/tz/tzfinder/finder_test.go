package tzfinder

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTimezoneLookup(t *testing.T) {
	finder, err := New()
	require.NoError(t, err)

	cases := []struct {
		lat, lon float64
		want     string
	}{
		{28.6139, 77.2090, "Asia/Kolkata"},
		{19.0760, 72.8777, "Asia/Kolkata"},
		{27.7172, 85.3240, "Asia/Kathmandu"},
		{51.5074, -0.1278, "Europe/London"},
	}
	for _, tc := range cases {
		name, ok := finder.Timezone(tc.lat, tc.lon)
		require.True(t, ok, "%v,%v", tc.lat, tc.lon)
		require.Equal(t, tc.want, name)
	}
}

func TestTimezoneRejectsInvalidCoordinates(t *testing.T) {
	finder, err := New()
	require.NoError(t, err)

	_, ok := finder.Timezone(95, 10)
	require.False(t, ok)
	_, ok = finder.Timezone(math.NaN(), 10)
	require.False(t, ok)
}
