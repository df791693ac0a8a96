//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"

	"github.com/yanqian/jyotish/internal/bootstrap"
	"github.com/yanqian/jyotish/internal/domain/chart"
	"github.com/yanqian/jyotish/internal/infra/config"
	"github.com/yanqian/jyotish/internal/infra/ephemeris/vsop"
	"github.com/yanqian/jyotish/internal/infra/geo/nominatim"
	"github.com/yanqian/jyotish/internal/infra/tz/tzfinder"
	httpiface "github.com/yanqian/jyotish/internal/interface/http"
	"github.com/yanqian/jyotish/pkg/logger"
)

func initializeApp() (*bootstrap.App, error) {
	wire.Build(
		config.Load,
		logger.New,
		provideChartConfig,
		provideGeocoder,
		provideTimezoneFinder,
		provideEphemeris,
		chart.NewService,
		wire.Bind(new(chart.Geocoder), new(*nominatim.Client)),
		wire.Bind(new(chart.TimezoneResolver), new(*tzfinder.Finder)),
		wire.Bind(new(chart.Ephemeris), new(*vsop.Ephemeris)),
		httpiface.NewHandler,
		httpiface.NewRouter,
		bootstrap.NewApp,
	)
	return nil, nil
}
