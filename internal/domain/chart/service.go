package chart

import (
	"context"
	"log/slog"
	"strings"
	"time"

	apperrors "github.com/yanqian/jyotish/pkg/errors"
)

// Error codes surfaced by the chart service.
const (
	CodeInvalidInput     = "invalid_input"
	CodeLocationNotFound = "location_not_found"
	CodeGeocode          = "geocode_error"
	CodeTimezone         = "timezone_error"
	CodeEphemeris        = "ephemeris_error"
)

// User facing messages for client errors.
const (
	MsgInvalidDateTime  = "Invalid date or time format. Use DD/MM/YYYY and HH:MM"
	MsgLocationNotFound = "Location not found"
)

// Service exposes chart calculation capabilities.
type Service interface {
	Calculate(ctx context.Context, req Request) (Chart, error)
}

// Geocoder resolves a place and state to coordinates.
type Geocoder interface {
	Geocode(ctx context.Context, place, state string) (Location, bool, error)
}

// TimezoneResolver maps coordinates to an IANA zone name.
type TimezoneResolver interface {
	Timezone(lat, lon float64) (string, bool)
}

// Ephemeris evaluates sidereal positions. The sidereal mode travels with each
// call so implementations keep no process-wide frame setting.
type Ephemeris interface {
	Ayanamsa(jdUT float64, mode SiderealMode) (float64, error)
	Ascendant(jdUT, lat, lon float64, houses HouseSystem) (float64, error)
	Longitude(jdUT float64, body Body, mode SiderealMode) (float64, error)
}

type service struct {
	cfg       Config
	geocoder  Geocoder
	zones     TimezoneResolver
	ephemeris Ephemeris
	logger    *slog.Logger
}

// NewService wires up the chart domain.
func NewService(cfg Config, geocoder Geocoder, zones TimezoneResolver, ephemeris Ephemeris, logger *slog.Logger) Service {
	if strings.TrimSpace(cfg.DefaultTimezone) == "" {
		cfg.DefaultTimezone = "Asia/Kolkata"
	}
	if cfg.Ayanamsa == "" {
		cfg.Ayanamsa = Lahiri
	}
	if cfg.HouseSystem == 0 {
		cfg.HouseSystem = WholeSign
	}
	return &service{
		cfg:       cfg,
		geocoder:  geocoder,
		zones:     zones,
		ephemeris: ephemeris,
		logger:    logger.With("component", "chart.service"),
	}
}

func (s *service) Calculate(ctx context.Context, req Request) (Chart, error) {
	wall, err := ParseBirthTime(req.DateOfBirth, req.TimeOfBirth)
	if err != nil {
		return Chart{}, apperrors.Wrap(CodeInvalidInput, MsgInvalidDateTime, err)
	}

	loc, err := s.locate(ctx, req.PlaceOfBirth, req.StateOfBirth)
	if err != nil {
		return Chart{}, err
	}

	zoneName := s.resolveZone(loc)
	zone, err := time.LoadLocation(zoneName)
	if err != nil {
		return Chart{}, apperrors.Wrap(CodeTimezone, "unknown time zone "+zoneName, err)
	}
	instant := LocalizeUTC(wall, zone)
	jd := JulianDayUT(instant)
	s.logger.Debug("birth instant resolved", "timezone", zoneName, "utc", instant.Format(time.RFC3339), "jd_ut", jd)

	ayanamsa, err := s.ephemeris.Ayanamsa(jd, s.cfg.Ayanamsa)
	if err != nil {
		return Chart{}, apperrors.Wrap(CodeEphemeris, "ayanamsa calculation failed", err)
	}
	tropicalAsc, err := s.ephemeris.Ascendant(jd, loc.Latitude, loc.Longitude, s.cfg.HouseSystem)
	if err != nil {
		return Chart{}, apperrors.Wrap(CodeEphemeris, "ascendant calculation failed", err)
	}
	ascendant := NormalizeDegrees(tropicalAsc - ayanamsa)

	placements := make([]Placement, 0, len(TrackedBodies))
	for _, body := range TrackedBodies {
		lon, err := s.ephemeris.Longitude(jd, body, s.cfg.Ayanamsa)
		if err != nil {
			return Chart{}, apperrors.Wrap(CodeEphemeris, body.String()+" position failed", err)
		}
		placements = append(placements, Place(body, lon))
	}

	return Chart{
		Name:                strings.TrimSpace(req.Name),
		Ascendant:           SignOf(ascendant),
		PlanetaryPlacements: placements,
		Metadata: Metadata{
			Timezone:  zoneName,
			Latitude:  loc.Latitude,
			Longitude: loc.Longitude,
		},
	}, nil
}

func (s *service) locate(ctx context.Context, place, state string) (Location, error) {
	if s.cfg.GeocodeTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.GeocodeTimeout)
		defer cancel()
	}
	loc, found, err := s.geocoder.Geocode(ctx, place, state)
	if err != nil {
		return Location{}, apperrors.Wrap(CodeGeocode, "geocoding failed", err)
	}
	if !found {
		return Location{}, apperrors.Wrap(CodeLocationNotFound, MsgLocationNotFound, nil)
	}
	s.logger.Debug("location resolved", "place", place, "state", state, "lat", loc.Latitude, "lon", loc.Longitude)
	return loc, nil
}

func (s *service) resolveZone(loc Location) string {
	if name, ok := s.zones.Timezone(loc.Latitude, loc.Longitude); ok && strings.TrimSpace(name) != "" {
		return name
	}
	s.logger.Warn("timezone lookup failed, using default", "lat", loc.Latitude, "lon", loc.Longitude, "timezone", s.cfg.DefaultTimezone)
	return s.cfg.DefaultTimezone
}
