//go:build wireinject
// +build wireinject

package di

import (
	wire "github.com/google/wire"

	"fpt/internal"
	"fpt/internal/controllers"
	"fpt/internal/geo"
	"fpt/internal/parser"
	"fpt/internal/providers"
	"fpt/internal/scrape"
	"fpt/internal/services"
	"fpt/internal/store"
	"fpt/internal/structures"
	"fpt/internal/trend"
)

func InitApp(cfg *structures.CliFlags) (*internal.App, error) {

	wire.Build(
		providers.NewConfigProvider,
		providers.NewLogProvider,
		providers.NewCacheProvider,
		providers.NewMetricsProvider,

		geo.NewResolver,
		geo.NewCalculator,

		scrape.NewZstdCompressor,
		scrape.NewBlockArchive,
		scrape.NewChromeFetcher,

		parser.NewParser,

		store.NewStore,
		store.NewRowBuilder,

		services.NewTrendService,
		trend.NewScheduler,

		controllers.NewApiController,
		controllers.NewHealthController,
		internal.InitRoutes,
		internal.NewApp,
	)

	return nil, nil
}
