package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/andrescamacho/nationsim-go/internal/adapters/metrics"
	"github.com/andrescamacho/nationsim-go/internal/application/common"
	"github.com/andrescamacho/nationsim-go/internal/application/mediator"
	nationCmd "github.com/andrescamacho/nationsim-go/internal/application/nation/commands"
	nationQuery "github.com/andrescamacho/nationsim-go/internal/application/nation/queries"
	"github.com/andrescamacho/nationsim-go/internal/application/scheduler"
	"github.com/andrescamacho/nationsim-go/internal/application/session"
	"github.com/andrescamacho/nationsim-go/internal/infrastructure/config"
	"github.com/andrescamacho/nationsim-go/internal/infrastructure/logging"
	"github.com/andrescamacho/nationsim-go/internal/infrastructure/scenario"
)

// loadConfig reads the config file and environment, then applies the global flags
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		if configPath != "" {
			return nil, err
		}
		cfg = config.LoadConfigOrDefault("")
	}

	flags := cmd.Flags()
	if flags.Changed("scenario") {
		cfg.Simulation.ScenarioPath = scenarioPath
	}
	if flags.Changed("seed") {
		cfg.Simulation.Seed = seed
	}
	if verbose {
		cfg.Logging.Level = "debug"
	}
	return cfg, nil
}

// app is one wired simulation: world, session, scheduler and mediator
type app struct {
	cfg       *config.Config
	logger    *slog.Logger
	scenario  *scenario.Scenario
	session   *session.Session
	scheduler *scheduler.Scheduler
	mediator  mediator.Mediator

	// Set when metrics are enabled
	registry *prometheus.Registry

	closers []io.Closer
}

// newApp wires a simulation from the loaded config. override, when set, may
// adjust the config before anything is built.
func newApp(cmd *cobra.Command, override func(cfg *config.Config)) (*app, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	if override != nil {
		override(cfg)
	}
	if err := config.ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	logger, logCloser, err := logging.NewLogger(cfg.Logging)
	if err != nil {
		return nil, err
	}
	a := &app{cfg: cfg, logger: logger, closers: []io.Closer{logCloser}}

	sc, err := scenario.LoadOrDefault(cfg.Simulation.ScenarioPath)
	if err != nil {
		a.Close()
		return nil, err
	}
	w, err := sc.Build(cfg.Simulation.Seed)
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("failed to build scenario %q: %w", sc.Name, err)
	}
	a.scenario = sc
	a.session = session.New(w, sc.Name)
	a.scheduler = scheduler.New(a.session, scheduler.Options{
		Interval:    cfg.Simulation.DayInterval,
		StartPaused: cfg.Simulation.StartPaused,
		Logger:      logger,
	})

	a.mediator = mediator.NewMediator()
	a.mediator.Use(common.LoggingMiddleware())

	if cfg.Metrics.Enabled {
		a.registry = metrics.NewRegistry()
		commandMetrics := metrics.NewCommandMetricsCollector()
		nationMetrics := metrics.NewNationMetricsCollector()
		if err := commandMetrics.Register(a.registry); err != nil {
			a.Close()
			return nil, err
		}
		if err := nationMetrics.Register(a.registry); err != nil {
			a.Close()
			return nil, err
		}
		a.mediator.Use(metrics.PrometheusMiddleware(commandMetrics))
		a.scheduler.AddObserver("metrics", nationMetrics.Observer(sc.Name))
	}

	if err := registerHandlers(a.mediator, a.session, a.scheduler); err != nil {
		a.Close()
		return nil, err
	}

	logger.Debug("simulation ready", "scenario", sc.Name, "nations", len(sc.Nations), "seed", cfg.Simulation.Seed)
	return a, nil
}

func registerHandlers(m mediator.Mediator, s *session.Session, sched *scheduler.Scheduler) error {
	registrations := []func() error{
		func() error {
			return mediator.RegisterHandler[*nationCmd.StartFocusCommand](m, nationCmd.NewStartFocusHandler(s))
		},
		func() error {
			return mediator.RegisterHandler[*nationCmd.QueueConstructionCommand](m, nationCmd.NewQueueConstructionHandler(s))
		},
		func() error {
			return mediator.RegisterHandler[*nationCmd.AddProductionLineCommand](m, nationCmd.NewAddProductionLineHandler(s))
		},
		func() error {
			return mediator.RegisterHandler[*nationCmd.ResizeProductionLineCommand](m, nationCmd.NewResizeProductionLineHandler(s))
		},
		func() error {
			return mediator.RegisterHandler[*nationCmd.SelectNationCommand](m, nationCmd.NewSelectNationHandler(s))
		},
		func() error {
			return mediator.RegisterHandler[*nationCmd.AdvanceDaysCommand](m, nationCmd.NewAdvanceDaysHandler(sched))
		},
		func() error {
			return mediator.RegisterHandler[*nationQuery.GetNationQuery](m, nationQuery.NewGetNationHandler(s))
		},
		func() error {
			return mediator.RegisterHandler[*nationQuery.ListNationsQuery](m, nationQuery.NewListNationsHandler(s))
		},
	}

	for _, register := range registrations {
		if err := register(); err != nil {
			return fmt.Errorf("failed to register handler: %w", err)
		}
	}
	return nil
}

// context returns ctx carrying the app logger for handlers and middleware
func (a *app) context(ctx context.Context) context.Context {
	return common.WithLogger(ctx, a.logger)
}

func (a *app) listNations(ctx context.Context) (*nationQuery.ListNationsResponse, error) {
	resp, err := a.mediator.Send(a.context(ctx), &nationQuery.ListNationsQuery{})
	if err != nil {
		return nil, err
	}
	return resp.(*nationQuery.ListNationsResponse), nil
}

func (a *app) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		_ = a.closers[i].Close()
	}
	a.closers = nil
}
