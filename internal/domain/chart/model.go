package chart

import "time"

// Request captures the birth details accepted by the chart service.
type Request struct {
	Name         string `json:"name"`
	DateOfBirth  string `json:"dateOfBirth"`
	TimeOfBirth  string `json:"timeOfBirth"`
	PlaceOfBirth string `json:"placeOfBirth" binding:"required"`
	StateOfBirth string `json:"stateOfBirth" binding:"required"`
}

// Chart is serialized back to API consumers.
type Chart struct {
	Name                string      `json:"name,omitempty"`
	Ascendant           string      `json:"ascendant"`
	PlanetaryPlacements []Placement `json:"planetary_placements"`
	Metadata            Metadata    `json:"metadata"`
}

// Placement describes where a single body sits in the D1 and D9 charts.
type Placement struct {
	Planet    string  `json:"planet"`
	D1Sign    string  `json:"d1_sign"`
	Degree    float64 `json:"degree"`
	D9Sign    string  `json:"d9_sign"`
	Nakshatra string  `json:"nakshatra"`
}

// Metadata reports the resolved inputs the chart was computed from.
type Metadata struct {
	Timezone  string  `json:"timezone"`
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lon"`
}

// Location is a geocoded point in degrees, east and north positive.
type Location struct {
	Latitude  float64
	Longitude float64
}

// Body identifies a point the ephemeris can evaluate.
type Body int

const (
	Sun Body = iota
	Moon
	Mars
	Mercury
	Jupiter
	Venus
	Saturn
	MeanNode
)

var bodyNames = map[Body]string{
	Sun:      "Sun",
	Moon:     "Moon",
	Mars:     "Mars",
	Mercury:  "Mercury",
	Jupiter:  "Jupiter",
	Venus:    "Venus",
	Saturn:   "Saturn",
	MeanNode: "Rahu",
}

// String returns the Vedic name of the body.
func (b Body) String() string {
	if name, ok := bodyNames[b]; ok {
		return name
	}
	return "Unknown"
}

// TrackedBodies lists the bodies reported in every chart, in response order.
var TrackedBodies = []Body{Sun, Moon, Mars, Mercury, Jupiter, Venus, Saturn, MeanNode}

// SiderealMode selects an ayanamsa definition.
type SiderealMode string

// Lahiri is the Chitrapaksha ayanamsa used by the Indian national ephemeris.
const Lahiri SiderealMode = "lahiri"

// HouseSystem is the single-letter house system code used for the ascendant.
type HouseSystem byte

// WholeSign is the 'W' house system.
const WholeSign HouseSystem = 'W'

// Config wires runtime settings for the chart domain.
type Config struct {
	DefaultTimezone string
	Ayanamsa        SiderealMode
	HouseSystem     HouseSystem
	GeocodeTimeout  time.Duration
}
