//go:build wireinject
// +build wireinject

// The build tag makes sure the stub is not built in the final build.

package injector

import (
	"github.com/google/wire"

	"github.com/zeusync/cubenet/internal/core/cube"
	"github.com/zeusync/cubenet/internal/core/observability/log"
)

func InitializeApp(path LevelPath, cfg cube.Config, logger *log.Logger) (*App, error) {
	wire.Build(ProviderSet)
	return nil, nil
}

// InitializeDefaultApp uses the process logger and the default engine
// config.
func InitializeDefaultApp(path LevelPath) (*App, error) {
	wire.Build(ProviderSet, log.Provide, cube.DefaultConfig)
	return nil, nil
}
