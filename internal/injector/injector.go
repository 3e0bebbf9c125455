//go:build wireinject
// +build wireinject

// The build tag makes sure the stub is not built in the final build.

package injector

import (
	"github.com/google/wire"

	"github.com/draftline/draftline/internal/core/config"
	"github.com/draftline/draftline/internal/core/drawing"
	"github.com/draftline/draftline/internal/core/observability/log"
	"github.com/draftline/draftline/internal/core/spatial"
	"github.com/draftline/draftline/internal/core/systems"
)

func ProvideLogger() *log.Logger {
	wire.Build(log.Provide)
	return nil
}

func provideSpace(cfg *config.Config) *spatial.Space {
	return spatial.NewSpace(cfg.SpaceOptions())
}

// ProvideWorld assembles a ready-to-run world from configuration.
func ProvideWorld(cfg *config.Config) *systems.World {
	wire.Build(
		drawing.NewStore,
		provideSpace,
		systems.NewWorld,
	)
	return nil
}
