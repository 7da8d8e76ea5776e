//go:build wireinject
// +build wireinject

package di

import (
	wire "github.com/google/wire"
	"moodtracker/internal"
	"moodtracker/internal/controllers"
	"moodtracker/internal/providers"
	"moodtracker/internal/services"
	"moodtracker/internal/storage"
	"moodtracker/internal/structures"
)

var coreSet = wire.NewSet(
	providers.NewConfigProvider,
	providers.NewManagedLogProvider,
	providers.NewMetricsProvider,

	storage.NewBackendProvider,
	storage.NewInstrumentedStore,
	storage.NewCompressorProvider,
	storage.NewScheduler,
	services.NewMoodService,
	internal.NewCore,
)

func InitCore(cfg *structures.CliFlags) (*internal.Core, func(), error) {

	wire.Build(coreSet)

	return nil, nil, nil
}

func InitApp(cfg *structures.CliFlags) (*internal.App, func(), error) {

	wire.Build(
		coreSet,
		providers.NewResponseCacheProvider,

		controllers.NewApiController,
		controllers.NewHealthController,
		internal.InitRoutes,
		internal.NewApp,
	)

	return nil, nil, nil
}
