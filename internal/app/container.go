package app

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/dig"

	"artmarket-partner-console/internal/apperr"
	"artmarket-partner-console/internal/config"
	"artmarket-partner-console/internal/domain"
	partnergw "artmarket-partner-console/internal/gateway/partner"
	"artmarket-partner-console/internal/http/handlers"
	"artmarket-partner-console/internal/http/middleware"
	"artmarket-partner-console/internal/http/middleware/ratelimit"
	"artmarket-partner-console/internal/http/pprofserver"
	"artmarket-partner-console/internal/http/router"
	"artmarket-partner-console/internal/logx"
	"artmarket-partner-console/internal/repository"
	"artmarket-partner-console/internal/service/archive"
	"artmarket-partner-console/internal/service/deliveries"
	"artmarket-partner-console/internal/service/history"
	"artmarket-partner-console/internal/service/requests"
	"artmarket-partner-console/internal/service/session"
	"artmarket-partner-console/internal/transport/kafka"
)

type dbConnectFunc func(context.Context, logx.Logger, string, int, time.Duration) (*pgxpool.Pool, error)

// ContainerBuilder is a dig container builder.
type ContainerBuilder struct {
	dbConnect dbConnectFunc
	logFatalf func(string, ...interface{})
}

// NewContainerBuilder returns a new dig container builder
func NewContainerBuilder() *ContainerBuilder {
	return &ContainerBuilder{
		dbConnect: connectDbWithRetry,
		logFatalf: log.Fatalf,
	}
}

// WithDBConnect sets the database connection function
func (b *ContainerBuilder) WithDBConnect(fn dbConnectFunc) *ContainerBuilder {
	if fn != nil {
		b.dbConnect = fn
	}
	return b
}

// WithLogFatalf sets the log.Fatalf function
func (b *ContainerBuilder) WithLogFatalf(fn func(string, ...interface{})) *ContainerBuilder {
	if fn != nil {
		b.logFatalf = fn
	}
	return b
}

// MustBuild builds and returns the console container
func (b *ContainerBuilder) MustBuild(ctx context.Context) *dig.Container {
	container, err := b.build(ctx)
	if err != nil {
		b.logFatalf("failed to build container: %v", err)
	}
	return container
}

// MustBuildWorker builds and returns the history worker container
func (b *ContainerBuilder) MustBuildWorker(ctx context.Context) *dig.Container {
	container, err := b.buildWorker(ctx)
	if err != nil {
		b.logFatalf("failed to build worker container: %v", err)
	}
	return container
}

func (b *ContainerBuilder) build(ctx context.Context) (*dig.Container, error) {
	container := dig.New()

	if err := registerCore(container, ctx); err != nil {
		return nil, fmt.Errorf("core: %w", err)
	}
	if err := registerDb(container, b.dbConnect); err != nil {
		return nil, fmt.Errorf("DB: %w", err)
	}
	if err := registerDomainServices(container); err != nil {
		return nil, fmt.Errorf("service: %w", err)
	}
	if err := registerHTTP(container); err != nil {
		return nil, fmt.Errorf("http: %w", err)
	}
	return container, nil
}

func (b *ContainerBuilder) buildWorker(ctx context.Context) (*dig.Container, error) {
	container := dig.New()

	if err := registerCore(container, ctx); err != nil {
		return nil, fmt.Errorf("core: %w", err)
	}
	if err := registerDb(container, b.dbConnect); err != nil {
		return nil, fmt.Errorf("DB: %w", err)
	}
	if err := registerWorker(container); err != nil {
		return nil, fmt.Errorf("worker: %w", err)
	}
	return container, nil
}

// MustBuildContainer builds the console container
func MustBuildContainer(ctx context.Context) *dig.Container {
	return NewContainerBuilder().MustBuild(ctx)
}

// MustBuildWorkerContainer builds the history worker container
func MustBuildWorkerContainer(ctx context.Context) *dig.Container {
	return NewContainerBuilder().MustBuildWorker(ctx)
}

func provideAll(container *dig.Container, providers ...any) error {
	for _, provider := range providers {
		if err := container.Provide(provider); err != nil {
			return fmt.Errorf("provide %T: %w", provider, err)
		}
	}
	return nil
}

func registerCore(container *dig.Container, ctx context.Context) error {
	return provideAll(container,
		func() context.Context { return ctx },
		config.Load,
		NewLogger,
		provideMetrics,
	)
}

func registerDb(container *dig.Container, dbConnect dbConnectFunc) error {
	providerDB := func(ctx context.Context, cfg *config.Config, logger logx.Logger) (*pgxpool.Pool, error) {
		return openDB(ctx, logger, dbConnect, cfg.DB.DSN())
	}
	return provideAll(container,
		providerDB,
		repository.NewHistoryRepo,
		repository.NewSessionRepo,
	)
}

type gatewayIn struct {
	dig.In

	Config   *config.Config
	Logger   logx.Logger
	Sessions *session.Manager
	Retries  prometheus.Counter `name:"gateway_retries_total"`
}

func newGateway(in gatewayIn) partnergw.Gateway {
	httpClient := &http.Client{Timeout: in.Config.Backend.Timeout}
	client := partnergw.NewClient(in.Config.Backend.BaseURL, httpClient, in.Sessions, in.Logger)
	return partnergw.NewRetryingGateway(client, in.Logger, in.Retries, partnergw.RetryConfig{
		MaxAttempts: in.Config.Gateway.MaxAttempts,
		BaseDelay:   in.Config.Gateway.BaseDelay,
		MaxDelay:    in.Config.Gateway.MaxDelay,
	})
}

func newSessionManager(ctx context.Context, cfg *config.Config, store *repository.SessionRepo, logger logx.Logger) (*session.Manager, error) {
	m := session.NewManager(store, logger)
	bootstrap := domain.Session{
		Token:  cfg.Partner.Token,
		Role:   domain.RoleDeliveryPartner,
		UserID: cfg.Partner.ID,
		Name:   cfg.Partner.Name,
	}
	if err := m.Restore(ctx, bootstrap); err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}
	return m, nil
}

type feedIn struct {
	dig.In

	Gateway   partnergw.Gateway
	Logger    logx.Logger
	Fallbacks prometheus.Counter `name:"feed_fallbacks_total"`
}

func newFeed(in feedIn) *deliveries.Feed {
	return deliveries.NewFeed(in.Gateway, in.Logger, in.Fallbacks)
}

func newPublisher(cfg *config.Config, logger logx.Logger) (*kafka.Publisher, error) {
	if !cfg.Kafka.Enabled() {
		return nil, nil
	}
	return kafka.NewPublisher(logger, cfg.Kafka.Brokers, cfg.Kafka.Topic)
}

// newRecorder publishes transitions when Kafka is configured, so the history
// worker writes them; otherwise the console writes history itself.
func newRecorder(pub *kafka.Publisher, repo *repository.HistoryRepo) deliveries.Recorder {
	if pub != nil {
		return pub
	}
	return repo
}

func newBoard(
	cfg *config.Config,
	feed *deliveries.Feed,
	gw partnergw.Gateway,
	recorder deliveries.Recorder,
	transitions *prometheus.CounterVec,
	logger logx.Logger,
) *deliveries.Board {
	return deliveries.NewBoard(feed, gw, recorder, deliveries.CountTransitions(transitions), logger,
		deliveries.BoardConfig{RemovalDelay: cfg.Delivery.RemovalDelay})
}

func registerDomainServices(container *dig.Container) error {
	return provideAll(container,
		newSessionManager,
		newGateway,
		newFeed,
		newPublisher,
		newRecorder,
		newBoard,
		func(gw partnergw.Gateway, sessions *session.Manager, logger logx.Logger) *requests.Board {
			return requests.NewBoard(gw, sessions, logger)
		},
		func(repo *repository.HistoryRepo, logger logx.Logger) *history.Service {
			return history.NewService(repo, logger)
		},
	)
}

func newRateLimiter(cfg *config.Config) ratelimit.Limiter {
	rl := cfg.RateLimit
	if !rl.Enabled {
		return ratelimit.NopLimiter{}
	}
	return ratelimit.NewThrottle(ratelimit.RealClock{}, ratelimit.Config{
		Rate:    rl.Rate,
		Burst:   rl.Burst,
		TTL:     rl.TTL,
		MaxKeys: rl.MaxKeys,
	})
}

type rateLimitIn struct {
	dig.In

	Logger   logx.Logger
	Counter  prometheus.Counter `name:"rate_limit_exceeded_total"`
	Limiter  ratelimit.Limiter
	Sessions *session.Manager
}

func newRateLimitMiddleware(in rateLimitIn) *ratelimit.Middleware {
	return ratelimit.New(in.Logger, in.Counter, in.Limiter, ratelimit.ByPartner(in.Sessions.Current))
}

type routerIn struct {
	dig.In

	Logger     logx.Logger
	Sessions   *session.Manager
	Throttle   *ratelimit.Middleware
	Base       *handlers.Handlers
	Session    *handlers.SessionHandler
	Deliveries *handlers.DeliveriesHandler
	Requests   *handlers.RequestsHandler
	History    *handlers.HistoryHandler
}

func newRouter(in routerIn) http.Handler {
	return router.New(router.Routes{
		Logger:     in.Logger,
		Base:       in.Base,
		Session:    in.Session,
		Deliveries: in.Deliveries,
		Requests:   in.Requests,
		History:    in.History,
		Auth:       middleware.RequireSession(in.Logger, in.Sessions.Current),
		Throttle:   in.Throttle.Handler(),
	})
}

type pprofOut struct {
	dig.Out

	Server *http.Server `name:"pprof_server"`
}

func registerHTTP(container *dig.Container) error {
	serverProvider := func(cfg *config.Config, mux http.Handler) *http.Server {
		return &http.Server{
			Addr:              fmt.Sprintf(":%d", cfg.Port),
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
			ReadTimeout:       15 * time.Second,
			WriteTimeout:      20 * time.Second,
			IdleTimeout:       60 * time.Second,
		}
	}
	return provideAll(container,
		handlers.New,
		func(logger logx.Logger, m *session.Manager) *handlers.SessionHandler {
			return handlers.NewSessionHandler(logger, m)
		},
		func(logger logx.Logger, b *deliveries.Board) *handlers.DeliveriesHandler {
			return handlers.NewDeliveriesHandler(logger, b)
		},
		func(logger logx.Logger, b *requests.Board) *handlers.RequestsHandler {
			return handlers.NewRequestsHandler(logger, b)
		},
		func(logger logx.Logger, s *history.Service) *handlers.HistoryHandler {
			return handlers.NewHistoryHandler(logger, s)
		},
		newRateLimiter,
		newRateLimitMiddleware,
		newRouter,
		serverProvider,
		func(cfg *config.Config) pprofOut {
			return pprofOut{Server: pprofserver.New(cfg.Pprof)}
		},
	)
}

// archiveHandler feeds consumed transitions to the processor. Events that
// can never be processed are skipped instead of blocking the partition.
func archiveHandler(p *archive.Processor) kafka.HandleFunc {
	return func(ctx context.Context, t domain.Transition) error {
		err := p.Handle(ctx, t)
		if errors.Is(err, apperr.ErrInvalid) {
			return kafka.Permanent(err)
		}
		return err
	}
}

type consumerIn struct {
	dig.In

	Config    *config.Config
	Logger    logx.Logger
	Processor *archive.Processor
}

func newHistoryConsumer(in consumerIn) (*kafka.Consumer, error) {
	k := in.Config.Kafka
	return kafka.NewConsumer(in.Logger, k.Brokers, k.GroupID, k.Topic, archiveHandler(in.Processor))
}

type processorIn struct {
	dig.In

	Repo     *repository.HistoryRepo
	Logger   logx.Logger
	Recorded prometheus.Counter `name:"history_recorded_total"`
}

func newArchiveProcessor(in processorIn) *archive.Processor {
	return archive.NewProcessor(in.Repo, in.Logger, in.Recorded)
}

func registerWorker(container *dig.Container) error {
	return provideAll(container, newArchiveProcessor, newHistoryConsumer)
}
