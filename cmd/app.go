package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.opentelemetry.io/otel/trace"

	"club-ads/internal/adapter/cache"
	"club-ads/internal/adapter/events"
	httpadapter "club-ads/internal/adapter/http"
	"club-ads/internal/adapter/memory"
	"club-ads/internal/adapter/payment"
	"club-ads/internal/adapter/postgres"
	redisadapter "club-ads/internal/adapter/redis"
	"club-ads/internal/adapter/usecase"
	"club-ads/internal/config"
	"club-ads/internal/core/port"
	"club-ads/internal/db"
	"club-ads/internal/metrics"
	"club-ads/internal/telemetry"
)

const eventBufferSize = 4096

// app holds the wired engine. close releases every resource it opened.
type app struct {
	cfg      config.Config
	logger   *slog.Logger
	registry *prometheus.Registry
	metrics  *metrics.Metrics
	sink     *events.AsyncSink
	sweeper  *usecase.Sweeper

	delivery  port.AdDelivery
	lifecycle port.CampaignLifecycle
	inventory port.Inventory
	auth      *httpadapter.Authenticator

	closers []func()
}

type stores struct {
	zones     port.ZoneRepository
	campaigns port.CampaignRepository
	creatives port.CreativeRepository
	payments  port.PaymentEventRepository
}

func newApp(ctx context.Context, cfg config.Config, logger *slog.Logger) (a *app, err error) {
	a = &app{cfg: cfg, logger: logger}
	defer func() {
		if err != nil {
			a.close()
		}
	}()

	tp, shutdownTracer, err := telemetry.InitTracer(ctx, cfg.Tracing, cfg.Env)
	if err != nil {
		return nil, fmt.Errorf("init tracer: %w", err)
	}
	a.closers = append(a.closers, func() {
		if err := shutdownTracer(context.Background()); err != nil {
			logger.Warn("tracer shutdown", slog.Any("error", err))
		}
	})
	tracer := tp.Tracer("club-ads")

	a.registry = prometheus.NewRegistry()
	a.registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	a.metrics = metrics.New(a.registry)

	s, err := a.openStores(ctx)
	if err != nil {
		return nil, err
	}
	s = s.traced(tracer)
	zones := cache.NewZoneRegistry(s.zones, cfg.Cache, logger)

	var (
		sink   port.EventSink = events.NewLogSink(logger)
		unique port.UniqueViewTracker
	)
	if cfg.Redis.Enabled {
		client, err := redisadapter.NewClient(ctx, cfg.Redis, logger)
		if err != nil {
			return nil, fmt.Errorf("redis: %w", err)
		}
		a.closers = append(a.closers, func() { _ = client.Close() })
		sink = redisadapter.NewEventSink(client, cfg.Redis.EventsKey)
		unique = redisadapter.NewUniqueViews(client, cfg.Redis.UniqueTTL)
	} else {
		unique = memory.NewUniqueViews()
	}
	a.sink = events.NewAsyncSink(sink, eventBufferSize, logger, a.metrics)

	var gateway port.PaymentGateway = payment.NewSandbox("")
	if cfg.Payment.BaseURL != "" {
		gateway = payment.NewClient(cfg.Payment)
	} else {
		logger.Warn("payment gateway not configured, using sandbox")
	}

	selector := usecase.NewSelector(zones, s.campaigns, s.creatives)
	meter := usecase.NewMeter(s.campaigns, unique, a.sink, logger, a.metrics)
	lifecycle := usecase.NewLifecycle(s.campaigns, zones, s.payments, gateway, a.sink,
		usecase.LifecycleConfig{
			MaxPaymentAttempts: cfg.Engine.MaxPaymentAttempts,
			Currency:           cfg.Payment.Currency,
		}, logger, a.metrics)
	delivery := usecase.NewDelivery(selector, meter, lifecycle, cfg.Engine.ServeTimeout, logger, a.metrics)
	inventory := usecase.NewInventory(zones, s.campaigns, s.creatives, logger)

	a.delivery = port.NewAdDeliveryWrapper(delivery, tracer, "AdDelivery.")
	a.lifecycle = port.NewCampaignLifecycleWrapper(lifecycle, tracer, "CampaignLifecycle.")
	a.inventory = port.NewInventoryWrapper(inventory, tracer, "Inventory.")
	a.sweeper = usecase.NewSweeper(a.lifecycle, cfg.Engine.SweepInterval, logger)
	a.auth = httpadapter.NewAuthenticator(cfg.Auth.JWTSecret)
	return a, nil
}

func (a *app) openStores(ctx context.Context) (stores, error) {
	if a.cfg.Engine.InMemory() {
		a.logger.Warn("using in-memory store, data is lost on exit")
		return memoryStores(), nil
	}

	pool, err := db.NewPostgresPool(ctx, a.cfg.Psql)
	if err != nil {
		return stores{}, fmt.Errorf("database connection: %w", err)
	}
	a.closers = append(a.closers, pool.Close)
	return postgresStores(pool), nil
}

func memoryStores() stores {
	m := memory.NewStore()
	return stores{zones: m, campaigns: m, creatives: m, payments: m}
}

func postgresStores(pool *pgxpool.Pool) stores {
	return stores{
		zones:     postgres.NewZoneRepository(pool),
		campaigns: postgres.NewCampaignRepository(pool),
		creatives: postgres.NewCreativeRepository(pool),
		payments:  postgres.NewPaymentEventRepository(pool),
	}
}

// traced wraps every repository in spans, whichever backend serves it.
func (s stores) traced(tracer trace.Tracer) stores {
	return stores{
		zones:     port.NewZoneRepositoryWrapper(s.zones, tracer, "ZoneRepository."),
		campaigns: port.NewCampaignRepositoryWrapper(s.campaigns, tracer, "CampaignRepository."),
		creatives: port.NewCreativeRepositoryWrapper(s.creatives, tracer, "CreativeRepository."),
		payments:  port.NewPaymentEventRepositoryWrapper(s.payments, tracer, "PaymentEventRepository."),
	}
}

func (a *app) handler() *httpadapter.Handler {
	return httpadapter.NewHandler(httpadapter.Deps{
		Delivery:      a.delivery,
		Lifecycle:     a.lifecycle,
		Inventory:     a.inventory,
		Auth:          a.auth,
		WebhookSecret: a.cfg.Auth.WebhookSecret,
		Metrics:       a.metrics,
		Gatherer:      a.registry,
		Logger:        a.logger,
	})
}

func (a *app) close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
	a.closers = nil
}
