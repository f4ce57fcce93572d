package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	slackapi "github.com/slack-go/slack"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/diegoclair/session-planner-bot/internal/config"
	"github.com/diegoclair/session-planner-bot/internal/database"
	"github.com/diegoclair/session-planner-bot/internal/domain/contract"
	"github.com/diegoclair/session-planner-bot/internal/domain/entity"
	"github.com/diegoclair/session-planner-bot/internal/domain/occurrence"
	"github.com/diegoclair/session-planner-bot/internal/domain/service"
	"github.com/diegoclair/session-planner-bot/internal/handlers"
	"github.com/diegoclair/session-planner-bot/internal/metrics"
	"github.com/diegoclair/session-planner-bot/internal/pinger"
	"github.com/diegoclair/session-planner-bot/internal/slack"
	"github.com/diegoclair/session-planner-bot/migrator/sqlite"
)

type App struct {
	cfg      config.Config
	log      *zap.Logger
	clock    occurrence.Clock
	db       *database.DB
	api      *slackapi.Client
	registry *prometheus.Registry
}

func New(cfg config.Config, log *zap.Logger) (*App, error) {
	loc, err := occurrence.ReferenceLocation()
	if err != nil {
		return nil, fmt.Errorf("failed to load reference timezone: %w", err)
	}

	db, err := database.New(cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	log.Info("running migrations", zap.String("path", cfg.DatabasePath))
	if err := sqlite.Migrate(db.DB()); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics.MustRegister(registry)

	return &App{
		cfg:      cfg,
		log:      log,
		clock:    occurrence.NewClock(loc),
		db:       db,
		api:      slackapi.New(cfg.SlackBotToken, slackapi.OptionAppLevelToken(cfg.SlackAppToken)),
		registry: registry,
	}, nil
}

// Run blocks until a signal arrives or one of the tasks fails. A signal is a
// clean shutdown; any other task error is returned so the process exits non-zero.
func (a *App) Run(ctx context.Context) error {
	defer a.db.Close()

	sigCtx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(sigCtx)

	instance := service.NewInstance(service.Deps{
		Clock:       a.clock,
		Chat:        slack.NewClient(a.api),
		DataManager: database.NewInstance(a.db),
		Pinger:      pinger.New(),
		Runner:      g,
		Logger:      a.log,
		ChannelID:   entity.ChannelID(a.cfg.SlackChannelID),
		SelfPingURL: a.cfg.SelfPingURL,
	})

	var slash *handlers.SlackHandler
	if a.cfg.SlackSigningSecret != "" {
		slash = handlers.New(instance.Planner, a.cfg.SlackSigningSecret, a.log)
	} else {
		a.log.Info("slash commands disabled, no signing secret")
	}

	server := handlers.NewServer(a.cfg.Port, handlers.NewRouter(slash, a.registry), a.log)
	gateway := slack.NewGateway(a.api, entity.Identity(a.cfg.SlackOwnerID), a.log)

	a.log.Info("starting session planner", zap.String("channel", a.cfg.SlackChannelID), zap.String("port", a.cfg.Port))

	g.Go(func() error { return server.Run(ctx) })
	serveEvents(ctx, g, gateway, instance.Dispatcher)

	err := g.Wait()
	if sigCtx.Err() != nil && errors.Is(err, context.Canceled) {
		a.log.Info("shutdown signal received")
		return nil
	}

	return err
}

type eventDispatcher interface {
	Dispatch(ctx context.Context, event entity.Event) error
}

// serveEvents runs the gateway and hands each event to d, one at a time,
// until either of them fails or ctx is done.
func serveEvents(ctx context.Context, g *errgroup.Group, gateway contract.Gateway, d eventDispatcher) {
	events := make(chan entity.Event)

	g.Go(func() error { return gateway.Run(ctx, events) })
	g.Go(func() error {
		for {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case evt := <-events:
				if err := d.Dispatch(ctx, evt); err != nil {
					return fmt.Errorf("failed to handle %s: %w", evt.Type, err)
				}
			}
		}
	})
}
