// Command cubewalk loads a cube level and a walk script, walks the scripted
// agents across the level's surface and logs where each one ends up.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/zeusync/cubenet/internal/core/cube"
	"github.com/zeusync/cubenet/internal/core/events/bus"
	"github.com/zeusync/cubenet/internal/core/observability/log"
	"github.com/zeusync/cubenet/internal/injector"
)

type options struct {
	levelPath   string
	scriptPath  string
	logLevel    string
	concurrency int
	hops        bool
}

func main() {
	var opts options
	flag.StringVar(&opts.levelPath, "level", "level.yaml", "level file (YAML or JSON)")
	flag.StringVar(&opts.scriptPath, "script", "walk.yaml", "walk script")
	flag.StringVar(&opts.logLevel, "log-level", "info", "debug, info, warn or error")
	flag.IntVar(&opts.concurrency, "concurrency", 0, "agents walked at once; overrides the script, 0 keeps it")
	flag.BoolVar(&opts.hops, "hops", false, "log every seam crossing at info level")
	flag.Parse()

	level, err := log.ParseLevel(opts.logLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	logger := log.New(level)
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	failed, err := run(ctx, opts, logger)
	if err != nil {
		logger.Error("cubewalk failed", log.Error(err))
		os.Exit(1)
	}
	if failed > 0 {
		os.Exit(1)
	}
}

// run returns the number of agents whose walk failed.
func run(ctx context.Context, opts options, logger *log.Logger) (int, error) {
	script, err := LoadScript(opts.scriptPath)
	if err != nil {
		return 0, err
	}
	app, err := injector.InitializeApp(injector.LevelPath(opts.levelPath), script.Config(cube.DefaultConfig()), logger)
	if err != nil {
		return 0, err
	}
	if opts.hops {
		sub, err := app.Events.Subscribe(cube.EventHop.String(), func(e bus.Event) error {
			if te, ok := bus.TraceEventOf(e); ok {
				logger.Info("seam crossed",
					log.String("level", e.Source()),
					log.Stringer("transition", te.Transition),
					log.Stringer("at", te.To),
				)
			}
			return nil
		})
		if err != nil {
			return 0, err
		}
		defer func() { _ = app.Events.Unsubscribe(sub) }()
	}

	plans, err := script.Spawn(app.Agents)
	if err != nil {
		return 0, err
	}

	limit := script.Concurrency
	if opts.concurrency > 0 {
		limit = opts.concurrency
	}

	failed := 0
	for i, r := range app.Agents.WalkAll(ctx, plans, limit) {
		fields := []log.Field{
			log.String("agent", script.Agents[i].Name),
			log.Stringer("position", r.Agent.Position),
			log.Int("moves", r.Agent.Moves),
		}
		if r.Err != nil {
			failed++
			logger.Warn("walk stopped", append(fields, log.Error(r.Err))...)
			continue
		}
		logger.Info("walk finished", fields...)
	}

	for _, f := range app.Metrics.Export() {
		logger.Info("metric", log.Stringer("name", f), log.Float64("value", f.Value))
	}
	return failed, nil
}
