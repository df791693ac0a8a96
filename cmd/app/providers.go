package main

import (
	"log/slog"
	"strings"

	"github.com/yanqian/jyotish/internal/domain/chart"
	"github.com/yanqian/jyotish/internal/infra/config"
	"github.com/yanqian/jyotish/internal/infra/ephemeris/vsop"
	"github.com/yanqian/jyotish/internal/infra/geo/nominatim"
	"github.com/yanqian/jyotish/internal/infra/tz/tzfinder"
)

func provideChartConfig(cfg *config.Config) chart.Config {
	houses := chart.WholeSign
	if hs := strings.TrimSpace(cfg.Ephemeris.HouseSystem); hs != "" {
		houses = chart.HouseSystem(hs[0])
	}
	return chart.Config{
		DefaultTimezone: cfg.Timezone.Default,
		Ayanamsa:        chart.SiderealMode(strings.ToLower(cfg.Ephemeris.Ayanamsa)),
		HouseSystem:     houses,
		GeocodeTimeout:  cfg.Geocoder.Timeout,
	}
}

func provideGeocoder(cfg *config.Config) *nominatim.Client {
	return nominatim.NewClient(nominatim.Options{
		BaseURL:   cfg.Geocoder.BaseURL,
		UserAgent: cfg.Geocoder.UserAgent,
		Country:   cfg.Geocoder.Country,
		Timeout:   cfg.Geocoder.Timeout,
	})
}

func provideTimezoneFinder(logger *slog.Logger) (*tzfinder.Finder, error) {
	finder, err := tzfinder.New()
	if err != nil {
		return nil, err
	}
	logger.Info("timezone boundaries loaded")
	return finder, nil
}

func provideEphemeris(cfg *config.Config, logger *slog.Logger) (*vsop.Ephemeris, error) {
	ephem, err := vsop.New(cfg.Ephemeris.DataDir)
	if err != nil {
		return nil, err
	}
	logger.Info("ephemeris loaded", "source", ephem.Source(), "data_dir", cfg.Ephemeris.DataDir)
	return ephem, nil
}
