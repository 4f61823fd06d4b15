package app

import (
	"context"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/comitanigiacomo/kanso-steps/internal/adapters/cache"
	"github.com/comitanigiacomo/kanso-steps/internal/adapters/repository"
	"github.com/comitanigiacomo/kanso-steps/internal/config"
	"github.com/comitanigiacomo/kanso-steps/internal/core/domain"
	"github.com/comitanigiacomo/kanso-steps/internal/core/quotes"
	"github.com/comitanigiacomo/kanso-steps/internal/core/services"
	"github.com/comitanigiacomo/kanso-steps/internal/core/workers"
	"github.com/comitanigiacomo/kanso-steps/internal/metrics"
)

// App holds the wired components shared by the server and the CLI.
type App struct {
	Config   *config.Config
	DB       *sqlx.DB
	Redis    *redis.Client
	Metrics  *metrics.Manager
	Registry *prometheus.Registry

	Dashboard *services.DashboardService
	Notifier  *workers.NotificationWorker
	Tokens    *services.TokenService
	Auth      *services.AuthService
}

func New(ctx context.Context, cfg *config.Config) (*App, error) {
	a := &App{Config: cfg, Registry: prometheus.NewRegistry()}
	a.Registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	a.Metrics = metrics.NewManager("kanso", "steps", a.Registry)

	stepRepo, settingsRepo, err := a.openStorage(ctx)
	if err != nil {
		return nil, err
	}

	if cfg.RedisEnabled() {
		rdb, err := cache.NewRedisClient(ctx, cache.RedisParams{
			Host:     cfg.RedisHost,
			Port:     cfg.RedisPort,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err != nil {
			logrus.Warnf("[CACHE] redis disabled: %v", err)
		} else {
			a.Redis = rdb
			stepRepo = repository.NewCachedStepRepository(stepRepo, rdb, cfg.Location)
		}
	}

	a.Notifier = workers.NewNotificationWorker(quotes.Default(), cfg.NotificationTTL, a.Metrics)

	a.Dashboard = services.NewDashboardService(stepRepo, settingsRepo, a.Notifier, services.DashboardOptions{
		Location: cfg.Location,
		Defaults: domain.Settings{DailyGoal: cfg.DailyGoal, Window: cfg.DefaultWindow},
		Metrics:  a.Metrics,
	})

	if cfg.AuthEnabled() {
		a.Tokens = services.NewTokenService(cfg.JWTSecret, cfg.JWTIssuer, cfg.TokenTTL)
		a.Auth = services.NewAuthService(domain.NewOwner(cfg.OwnerPasswordHash), a.Tokens)
		if cfg.OwnerPasswordHash == "" {
			logrus.Warnln("[AUTH] JWT_SECRET is set but OWNER_PASSWORD_HASH is empty, login will always fail")
		}
	}

	return a, nil
}

func (a *App) openStorage(ctx context.Context) (domain.StepRepository, domain.SettingsRepository, error) {
	if a.Config.Storage != config.StoragePostgres {
		logrus.Infoln("using in-memory storage")
		return repository.NewInMemoryStepRepository(), repository.NewInMemorySettingsRepository(), nil
	}

	logrus.Infoln("connecting to database...")

	db, err := sqlx.ConnectContext(ctx, "pgx", a.Config.PostgresDSN())
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := repository.Migrate(ctx, db); err != nil {
		db.Close()
		return nil, nil, err
	}

	logrus.Infoln("database connected successfully")
	a.DB = db
	return repository.NewPostgresStepRepository(db, a.Config.Location), repository.NewPostgresSettingsRepository(db), nil
}

func (a *App) Close() {
	if a.Redis != nil {
		if err := a.Redis.Close(); err != nil {
			logrus.Warnf("closing redis: %v", err)
		}
	}
	if a.DB != nil {
		if err := a.DB.Close(); err != nil {
			logrus.Warnf("closing database: %v", err)
		}
	}
}
