package app

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/ajit-max/event/internal/auth"
	"github.com/ajit-max/event/internal/cache"
	"github.com/ajit-max/event/internal/config"
	"github.com/ajit-max/event/internal/handler"
	"github.com/ajit-max/event/internal/middleware"
	"github.com/ajit-max/event/internal/notification"
	"github.com/ajit-max/event/internal/repository"
	"github.com/ajit-max/event/internal/router"
	"github.com/ajit-max/event/internal/scheduler"
	"github.com/ajit-max/event/internal/service"
	"github.com/ajit-max/event/internal/service/ports"
	"github.com/pressly/goose/v3"
	"github.com/redis/go-redis/v9"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/logger"
)

const migrationsDir = "migrations"

type App struct {
	cfg         *config.Config
	log         logger.Logger
	db          *dbpg.DB
	redis       *redis.Client
	publisher   *notification.RabbitPublisher
	rateLimiter *middleware.RateLimiter
	httpServer  *http.Server
	scheduler   *scheduler.Scheduler
}

func New(cfg *config.Config) (*App, error) {
	app := &App{cfg: cfg}

	log, err := logger.InitLogger(
		cfg.Logger.LogEngine(),
		"ElevateEvents",
		cfg.Gin.Mode,
		logger.WithLevel(cfg.Logger.LogLevel()),
	)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	app.log = log

	if err = app.runMigrations(); err != nil {
		return nil, fmt.Errorf("migrations: %w", err)
	}

	if err = app.initDB(); err != nil {
		return nil, fmt.Errorf("init db: %w", err)
	}

	if err = app.initServices(); err != nil {
		app.closeResources()
		return nil, fmt.Errorf("init services: %w", err)
	}

	return app, nil
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
	db.Master.SetConnMaxLifetime(a.cfg.Postgres.ConnMaxLifetime)

	if err := db.Master.PingContext(context.Background()); err != nil {
		return fmt.Errorf("pinging database: %w", err)
	}

	a.db = db
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connected",
		logger.String("host", a.cfg.Postgres.Host),
		logger.Int("port", a.cfg.Postgres.Port),
		logger.String("database", a.cfg.Postgres.Database),
	)

	return nil
}

// initCache возвращает nil, если Redis не настроен или недоступен.
func (a *App) initCache() ports.EventCache {
	if a.cfg.Redis.Addr == "" {
		a.log.Info("redis not configured, event list cache disabled")
		return nil
	}

	client, err := cache.Connect(context.Background(), a.cfg.Redis.Addr, a.cfg.Redis.Password, a.cfg.Redis.DB)
	if err != nil {
		a.log.Warn("redis unavailable, event list cache disabled",
			logger.String("addr", a.cfg.Redis.Addr),
			logger.String("error", err.Error()),
		)
		return nil
	}

	a.redis = client
	a.log.Info("redis connected", logger.String("addr", a.cfg.Redis.Addr))
	return cache.NewEventCache(client, a.cfg.Redis.TTL, a.log)
}

func (a *App) initNotifier() (ports.EventNotifier, error) {
	tg, err := notification.NewTelegramNotifier(a.cfg.Telegram.BotToken, a.cfg.Telegram.AdminChatID, a.log)
	if err != nil {
		return nil, fmt.Errorf("init telegram notifier: %w", err)
	}
	notifiers := notification.Multi{tg}

	if a.cfg.RabbitMQ.URL != "" {
		pub, err := notification.NewRabbitPublisher(a.cfg.RabbitMQ.URL, a.cfg.RabbitMQ.Queue, a.log)
		if err != nil {
			return nil, fmt.Errorf("init rabbitmq publisher: %w", err)
		}
		a.publisher = pub
		notifiers = append(notifiers, pub)
	}

	return notifiers, nil
}

func (a *App) initServices() error {
	userRepo := repository.NewUserRepo(a.db)
	eventRepo := repository.NewEventRepo(a.db)
	bookingRepo := repository.NewBookingRepo(a.db)

	eventCache := a.initCache()

	n, err := a.initNotifier()
	if err != nil {
		return err
	}

	hasher := auth.NewPasswordHasher(a.cfg.Auth.BcryptCost)
	tokens := auth.NewTokenService(a.cfg.Auth.JWTSecret, a.cfg.Auth.TokenTTL)

	userService := service.NewUserService(userRepo, hasher)
	authService := service.NewAuthService(userService, tokens)
	eventService := service.NewEventService(eventRepo, eventCache, n, a.log)
	bookingService := service.NewBookingService(bookingRepo, eventRepo, eventCache, n, a.cfg.Booking.TTL, a.log)

	a.scheduler = scheduler.New(
		bookingService,
		a.cfg.Scheduler.Interval,
		a.log,
	)

	a.rateLimiter = middleware.NewRateLimiter(a.cfg.RateLimit.AuthRPS, a.cfg.RateLimit.AuthBurst)

	h := handler.NewHandler(authService, eventService, bookingService, userService)
	r := router.InitRouter(
		a.cfg.Gin.Mode,
		h,
		router.Guards{
			Authenticate: middleware.Authenticate(authService),
			RequireAdmin: middleware.RequireAdmin(),
			AuthLimit:    a.rateLimiter.Limit(),
		},
		middleware.RequestID(),
		middleware.RequestLogger(a.log),
		middleware.Recovery(a.log),
	)

	a.httpServer = &http.Server{
		Addr:         a.cfg.Server.Addr,
		Handler:      r,
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
		IdleTimeout:  a.cfg.Server.IdleTimeout,
	}

	return nil
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go a.scheduler.Start(ctx)

	errCh := make(chan error, 1)
	go func() {
		a.log.LogAttrs(ctx, logger.InfoLevel, "HTTP server starting",
			logger.String("addr", a.httpServer.Addr),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutdown signal received")
	case err := <-errCh:
		a.closeResources()
		return err
	}

	return a.shutdown()
}

func (a *App) shutdown() error {
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutting down...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		a.cfg.Server.WriteTimeout,
	)
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "HTTP server stopped")

	if err := a.closeResources(); err != nil {
		return err
	}

	a.log.LogAttrs(context.Background(), logger.InfoLevel, "app stopped")

	return nil
}

// closeResources закрывает всё, что успело открыться. Ошибки брокера и кэша
// только логируются, ошибка БД возвращается.
func (a *App) closeResources() error {
	if a.rateLimiter != nil {
		a.rateLimiter.Stop()
	}

	if a.publisher != nil {
		if err := a.publisher.Close(); err != nil {
			a.log.Warn("close rabbitmq publisher", logger.String("error", err.Error()))
		}
	}

	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			a.log.Warn("close redis", logger.String("error", err.Error()))
		}
	}

	if a.db != nil {
		if err := a.db.Master.Close(); err != nil {
			return fmt.Errorf("close db: %w", err)
		}
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connection closed")
	}

	return nil
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

	if err := goose.Up(db, migrationsDir); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	a.log.Info("migrations applied successfully")
	return nil
}
