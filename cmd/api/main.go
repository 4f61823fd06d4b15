package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/sirupsen/logrus"

	adapterHTTP "github.com/comitanigiacomo/kanso-steps/internal/adapters/handler/http"
	"github.com/comitanigiacomo/kanso-steps/internal/app"
	"github.com/comitanigiacomo/kanso-steps/internal/config"
	"github.com/comitanigiacomo/kanso-steps/internal/logging"
)

// @title        Kanso Steps API
// @version      1.0
// @description  Daily step log with windowed statistics, streaks and chart series.
// @BasePath     /api/v1
func main() {
	startTime := time.Now()

	cfg, err := config.Load(".env")
	if err != nil {
		logrus.Fatalf("Critical: invalid configuration: %v", err)
	}

	logging.Setup(logging.SetupParams{
		LogFileName:   cfg.LogFile,
		LogToStdout:   cfg.LogToStdout,
		LogLevel:      cfg.LogLevel,
		LogFormatJSON: cfg.LogJSON,
		Environment:   cfg.Env,
		SentryDSN:     cfg.SentryDSN,
	})
	defer sentry.Flush(2 * time.Second)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a, err := app.New(ctx, cfg)
	if err != nil {
		logrus.Fatalf("Critical: %v", err)
	}
	defer a.Close()

	a.Notifier.Start(ctx)

	if err := a.Dashboard.Init(ctx, cfg.SeedDemoData); err != nil {
		logrus.Fatalf("Critical: failed to build dashboard: %v", err)
	}

	deps := adapterHTTP.RouterDependencies{
		DashboardHandler:    adapterHTTP.NewDashboardHandler(a.Dashboard),
		EntryHandler:        adapterHTTP.NewEntryHandler(a.Dashboard),
		NotificationHandler: adapterHTTP.NewNotificationHandler(a.Notifier),
		DB:                  a.DB,
		Redis:               a.Redis,
		RateLimitPerMinute:  cfg.RateLimitPerMinute,
		Metrics:             a.Metrics,
		Gatherer:            a.Registry,
		StartTime:           startTime,
	}
	if a.Tokens != nil {
		deps.TokenService = a.Tokens
		deps.AuthHandler = adapterHTTP.NewAuthHandler(a.Auth)
	} else {
		logrus.Warnln("JWT_SECRET not set, write endpoints are not protected")
	}

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      adapterHTTP.NewRouter(deps),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		logrus.Infof("Kanso Steps running on http://localhost:%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.Fatalf("Critical server error: %v", err)
		}
	}()

	<-ctx.Done()
	stop()

	logrus.Infoln("Stop signal received. Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logrus.Errorf("Forced shutdown error: %v", err)
		os.Exit(1)
	}

	logrus.Infoln("Server stopped gracefully.")
}
