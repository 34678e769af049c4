package injector

import (
	"github.com/google/wire"

	"github.com/zeusync/cubenet/internal/core/agent"
	"github.com/zeusync/cubenet/internal/core/cube"
	"github.com/zeusync/cubenet/internal/core/events/bus"
	"github.com/zeusync/cubenet/internal/core/level"
	"github.com/zeusync/cubenet/internal/core/observability/log"
	"github.com/zeusync/cubenet/internal/core/observability/metrics"
)

// LevelPath is the level file an App is built from.
type LevelPath string

// App is everything a walk needs, built once per level file.
type App struct {
	Logger   *log.Logger
	Level    *level.Level
	Surfaces *cube.Holder
	Agents   *agent.Controller
	Metrics  metrics.Collector
	Events   bus.EventBus
}

func ProvideLevel(path LevelPath) (*level.Level, error) {
	return level.Load(string(path))
}

// ProvideSurface builds the surface. Engine events are logged at debug
// level, counted in collector and published on events.
func ProvideSurface(
	l *level.Level,
	cfg cube.Config,
	logger *log.Logger,
	collector metrics.Collector,
	events bus.EventBus,
) (*cube.Surface, error) {
	logger.Info("level loaded",
		log.String("name", l.Name),
		log.Uint64("fingerprint", l.Fingerprint()),
		log.Int("max_hops", cfg.MaxHops),
	)
	return l.Build(
		cube.WithConfig(cfg),
		cube.WithTracer(cube.MultiTracer(
			cube.LogTracer(logger),
			metrics.Tracer(collector),
			bus.Tracer(events, l.Name, func(err error) {
				logger.Warn("trace handler failed", log.Error(err))
			}),
		)),
	)
}

func ProvideController(h *cube.Holder, logger *log.Logger) *agent.Controller {
	return agent.NewController(h, logger)
}

var ProviderSet = wire.NewSet(
	ProvideLevel,
	metrics.NewCollector,
	bus.New,
	ProvideSurface,
	cube.NewHolder,
	ProvideController,
	wire.Struct(new(App), "*"),
)
