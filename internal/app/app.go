package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/pressly/goose/v3"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stpnv0/rahi/internal/auth"
	"github.com/stpnv0/rahi/internal/cache"
	"github.com/stpnv0/rahi/internal/config"
	"github.com/stpnv0/rahi/internal/handler"
	"github.com/stpnv0/rahi/internal/middleware"
	"github.com/stpnv0/rahi/internal/mq"
	"github.com/stpnv0/rahi/internal/notification"
	"github.com/stpnv0/rahi/internal/obs"
	"github.com/stpnv0/rahi/internal/repository"
	"github.com/stpnv0/rahi/internal/repository/memory"
	"github.com/stpnv0/rahi/internal/router"
	"github.com/stpnv0/rahi/internal/scheduler"
	"github.com/stpnv0/rahi/internal/service"
	"github.com/stpnv0/rahi/internal/service/ports"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
	"golang.org/x/sync/errgroup"
)

const (
	appName = "rahi"
	// все статусы бронирований, уведомления строятся по каждому
	bookingKeys = "booking.*"
)

var Version = "dev"

type repos struct {
	bookings      ports.BookingRepo
	users         ports.UserRepo
	workers       ports.WorkerRepo
	wallet        ports.WalletRepo
	notifications ports.NotificationRepo
	categories    ports.CategoryRepo
}

type App struct {
	cfg        *config.Config
	log        logger.Logger
	db         *dbpg.DB
	redis      *redis.Client
	httpServer *http.Server
	scheduler  *scheduler.Scheduler
	consumer   *mq.Consumer
	hub        *notification.Hub
	closers    []io.Closer
	shutdownTr func(context.Context) error
}

func New(cfg *config.Config) (*App, error) {
	app := &App{cfg: cfg}

	log, err := logger.InitLogger(
		cfg.Logger.LogEngine(),
		appName,
		cfg.Gin.Mode,
		logger.WithLevel(cfg.Logger.LogLevel()),
	)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	app.log = log

	app.shutdownTr, err = obs.InitTracer(context.Background(), obs.TracerOptions{
		Endpoint:    cfg.Tracing.Endpoint,
		ServiceName: appName,
		Version:     Version,
		Env:         cfg.Gin.Mode,
		SampleRatio: cfg.Tracing.SampleRatio,
	})
	if err != nil {
		return nil, fmt.Errorf("init tracer: %w", err)
	}

	r, err := app.initStorage()
	if err != nil {
		return nil, fmt.Errorf("init storage: %w", err)
	}

	if err = app.initRedis(); err != nil {
		return nil, fmt.Errorf("init redis: %w", err)
	}

	if err = app.initServices(r); err != nil {
		app.close()
		return nil, fmt.Errorf("init services: %w", err)
	}

	return app, nil
}

func (a *App) initStorage() (*repos, error) {
	if a.cfg.Storage.Driver == "memory" {
		store := memory.New()
		a.log.Warn("using in-memory storage, data is lost on restart")
		return &repos{
			bookings:      store.Bookings(),
			users:         store.Users(),
			workers:       store.Workers(),
			wallet:        store.Wallet(),
			notifications: store.Notifications(),
			categories:    store.Categories(),
		}, nil
	}

	if err := a.runMigrations(); err != nil {
		return nil, fmt.Errorf("migrations: %w", err)
	}
	if err := a.initDB(); err != nil {
		return nil, fmt.Errorf("init db: %w", err)
	}

	return &repos{
		bookings:      repository.NewBookingRepo(a.db),
		users:         repository.NewUserRepo(a.db),
		workers:       repository.NewWorkerRepo(a.db),
		wallet:        repository.NewWalletRepo(a.db),
		notifications: repository.NewNotificationRepo(a.db),
		categories:    repository.NewCategoryRepo(a.db),
	}, nil
}

func (a *App) initDB() error {
	db, err := dbpg.New(
		a.cfg.Postgres.DSN(),
		nil,
		&dbpg.Options{
			MaxOpenConns: a.cfg.Postgres.MaxOpenConns,
			MaxIdleConns: a.cfg.Postgres.MaxIdleConns,
		},
	)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}

	if err := db.Master.PingContext(context.Background()); err != nil {
		return fmt.Errorf("pinging database: %w", err)
	}
	db.Master.SetConnMaxLifetime(a.cfg.Postgres.ConnMaxLifetime)

	a.db = db
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connected",
		logger.String("host", a.cfg.Postgres.Host),
		logger.Int("port", a.cfg.Postgres.Port),
		logger.String("database", a.cfg.Postgres.Database),
	)

	return nil
}

func (a *App) initRedis() error {
	if a.cfg.Redis.Addr == "" {
		a.log.Warn("redis not configured, idempotency keys and OTP attempts are kept in memory")
		return nil
	}

	client, err := cache.NewClient(context.Background(), cache.Options{
		Addr:     a.cfg.Redis.Addr,
		Password: a.cfg.Redis.Password,
		DB:       a.cfg.Redis.DB,
		PoolSize: a.cfg.Redis.PoolSize,
	})
	if err != nil {
		return err
	}
	a.redis = client
	a.closers = append(a.closers, client)

	a.log.Info("redis connected", logger.String("addr", a.cfg.Redis.Addr))
	return nil
}

func (a *App) initServices(r *repos) error {
	loc, err := a.cfg.Wallet.Location()
	if err != nil {
		return err
	}

	var (
		limiter     ports.OTPAttemptLimiter
		idempotency middleware.IdempotencyStore
	)
	if a.redis != nil {
		limiter = cache.NewOTPLimiter(a.redis, a.cfg.Booking.OTPMaxAttempts, a.cfg.Booking.OTPWindow)
		idempotency = cache.NewIdempotencyStore(a.redis, a.cfg.Idempotency.TTL)
	} else {
		limiter = cache.NewMemoryOTPLimiter(a.cfg.Booking.OTPMaxAttempts, a.cfg.Booking.OTPWindow)
		idempotency = cache.NewMemoryIdempotencyStore(a.cfg.Idempotency.TTL)
	}

	tg, err := notification.NewTelegramNotifier(a.cfg.Telegram.BotToken, a.log)
	if err != nil {
		return fmt.Errorf("init notifier: %w", err)
	}
	a.hub = notification.NewHub(a.log)

	userService := service.NewUserService(r.users)
	categoryService := service.NewCategoryService(r.categories)
	walletService := service.NewWalletService(r.wallet, r.workers, a.cfg.Wallet.Minimum(), loc, a.log)
	workerService := service.NewWorkerService(r.workers, r.users, r.bookings, a.log)
	notificationService := service.NewNotificationService(
		r.notifications, r.users, r.categories, r.bookings, a.log,
		a.hub, tg,
	)

	publisher, err := a.initBroker(notificationService)
	if err != nil {
		return fmt.Errorf("init broker: %w", err)
	}

	bookingService := service.NewBookingService(
		r.bookings, r.workers, r.categories,
		walletService, publisher, limiter,
		service.BookingOptions{
			CommissionRate: decimal.NewFromFloat(a.cfg.Booking.CommissionRate),
			OTPDigits:      a.cfg.Booking.OTPDigits,
			CandidatePool:  a.cfg.Booking.CandidatePool,
			MatchBatch:     a.cfg.Booking.MatchBatch,
		},
		a.log,
	)

	a.scheduler = scheduler.New(
		bookingService,
		a.cfg.Scheduler.Interval,
		a.log,
	)

	issuer, err := auth.NewIssuer(a.cfg.Auth.JWTSecret, a.cfg.Auth.TokenTTL)
	if err != nil {
		return fmt.Errorf("init auth: %w", err)
	}

	h := handler.NewHandler(handler.Services{
		Users:         userService,
		Bookings:      bookingService,
		Workers:       workerService,
		Wallet:        walletService,
		Notifications: notificationService,
		Categories:    categoryService,
		Tokens:        issuer,
	}, a.hub)

	r2 := router.InitRouter(a.cfg.Gin.Mode, h, router.Middlewares{
		Common: []ginext.HandlerFunc{
			middleware.RequestID(),
			middleware.Metrics(),
			middleware.RequestLogger(a.log),
			middleware.Recovery(a.log),
		},
		Auth:        middleware.Auth(issuer),
		Idempotency: middleware.Idempotency(idempotency, a.log),
		Timeout:     middleware.Timeout(a.cfg.Server.RequestTimeout),
	})

	a.httpServer = &http.Server{
		Addr:         a.cfg.Server.Addr,
		Handler:      r2,
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
		IdleTimeout:  a.cfg.Server.IdleTimeout,
	}

	return nil
}

// initBroker publishes booking events to RabbitMQ and consumes them back into
// the notification service. Without a broker URL delivery stays in process.
func (a *App) initBroker(events mq.EventHandler) (ports.EventPublisher, error) {
	if a.cfg.RabbitMQ.URL == "" {
		local := mq.NewLocalPublisher(events, a.log)
		a.closers = append(a.closers, local)
		a.log.Warn("rabbitmq not configured, booking events are delivered in process")
		return local, nil
	}

	publisher, err := mq.NewPublisher(a.cfg.RabbitMQ.URL, a.cfg.RabbitMQ.Exchange)
	if err != nil {
		return nil, err
	}
	a.closers = append(a.closers, publisher)

	consumer, err := mq.NewConsumer(
		a.cfg.RabbitMQ.URL,
		a.cfg.RabbitMQ.Exchange,
		a.cfg.RabbitMQ.Queue,
		[]string{bookingKeys},
		events,
		a.log,
	)
	if err != nil {
		return nil, err
	}
	a.consumer = consumer
	a.closers = append(a.closers, consumer)

	a.log.Info("rabbitmq connected",
		logger.String("exchange", a.cfg.RabbitMQ.Exchange),
		logger.String("queue", a.cfg.RabbitMQ.Queue),
	)
	return publisher, nil
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		a.scheduler.Start(gctx)
		return nil
	})

	if a.consumer != nil {
		g.Go(func() error {
			if err := a.consumer.Run(gctx); err != nil && gctx.Err() == nil {
				return fmt.Errorf("consumer: %w", err)
			}
			return nil
		})
	}

	g.Go(func() error {
		a.log.LogAttrs(gctx, logger.InfoLevel, "HTTP server starting",
			logger.String("addr", a.httpServer.Addr),
			logger.String("storage", a.cfg.Storage.Driver),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutdown signal received")
		return a.shutdown()
	})

	return g.Wait()
}

func (a *App) shutdown() error {
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutting down...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		a.cfg.Server.WriteTimeout,
	)
	defer cancel()

	a.hub.Close()
	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "HTTP server stopped")

	a.close()

	if err := a.shutdownTr(shutdownCtx); err != nil {
		a.log.Warn("tracer shutdown", logger.String("error", err.Error()))
	}

	a.log.LogAttrs(context.Background(), logger.InfoLevel, "app stopped")

	return nil
}

// close releases broker, cache and database connections in reverse order of opening.
func (a *App) close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i].Close(); err != nil {
			a.log.Warn("close resource", logger.String("error", err.Error()))
		}
	}
	a.closers = nil

	if a.db != nil {
		if err := a.db.Master.Close(); err != nil {
			a.log.Warn("close db", logger.String("error", err.Error()))
			return
		}
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connection closed")
	}
}

func (a *App) runMigrations() error {
	db, err := sql.Open("postgres", a.cfg.Postgres.DSN())
	if err != nil {
		return fmt.Errorf("open db for migrations: %w", err)
	}
	defer db.Close()

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}
	if err := goose.Up(db, a.cfg.Postgres.MigrationsDir); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	a.log.Info("migrations applied successfully")
	return nil
}
