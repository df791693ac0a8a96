package chart

import (
	"math"
	"strconv"
)

const (
	signSpan      = 30.0
	nakshatraSpan = 40.0 / 3.0
	navamshaSpan  = 10.0 / 3.0
)

// Signs are the twelve rashis starting at Aries.
var Signs = [12]string{
	"Aries", "Taurus", "Gemini", "Cancer", "Leo", "Virgo",
	"Libra", "Scorpio", "Sagittarius", "Capricorn", "Aquarius", "Pisces",
}

// Nakshatras are the twenty-seven lunar mansions starting at Ashwini.
var Nakshatras = [27]string{
	"Ashwini", "Bharani", "Krittika", "Rohini", "Mrigashira", "Ardra",
	"Punarvasu", "Pushya", "Ashlesha", "Magha", "Purva Phalguni", "Uttara Phalguni",
	"Hasta", "Chitra", "Swati", "Vishakha", "Anuradha", "Jyeshtha",
	"Mula", "Purva Ashadha", "Uttara Ashadha", "Shravana", "Dhanishta", "Shatabhisha",
	"Purva Bhadrapada", "Uttara Bhadrapada", "Revati",
}

// NormalizeDegrees folds any angle into [0,360).
func NormalizeDegrees(lon float64) float64 {
	lon = math.Mod(lon, 360)
	if lon < 0 {
		lon += 360
	}
	if lon >= 360 {
		lon = 0
	}
	return lon
}

func spanIndex(lon, span float64, count int) int {
	idx := int(math.Floor(NormalizeDegrees(lon)/span)) % count
	if idx < 0 {
		idx += count
	}
	return idx
}

// SignOf returns the D1 sign containing the sidereal longitude.
func SignOf(lon float64) string {
	return Signs[spanIndex(lon, signSpan, len(Signs))]
}

// DegreeInSign returns the offset inside the sign rounded to two decimals.
// Rounding works on the exact binary value, so 14.995 (stored just below)
// gives 14.99 and exact ties go to even. Values that would round to 30.00
// are reported as 29.99.
func DegreeInSign(lon float64) float64 {
	deg := math.Mod(NormalizeDegrees(lon), signSpan)
	rounded, err := strconv.ParseFloat(strconv.FormatFloat(deg, 'f', 2, 64), 64)
	if err != nil {
		rounded = deg
	}
	if rounded >= signSpan {
		rounded = signSpan - 0.01
	}
	return rounded
}

// NakshatraOf returns the 13°20′ mansion containing the longitude.
func NakshatraOf(lon float64) string {
	return Nakshatras[spanIndex(lon, nakshatraSpan, len(Nakshatras))]
}

// NavamshaOf returns the D9 sign for the longitude.
func NavamshaOf(lon float64) string {
	return Signs[spanIndex(lon, navamshaSpan, len(Signs))]
}

// Place derives the placement of a body at the given sidereal longitude.
func Place(body Body, lon float64) Placement {
	return Placement{
		Planet:    body.String(),
		D1Sign:    SignOf(lon),
		Degree:    DegreeInSign(lon),
		D9Sign:    NavamshaOf(lon),
		Nakshatra: NakshatraOf(lon),
	}
}
