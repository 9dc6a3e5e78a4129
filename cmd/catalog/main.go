package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/catalogops/catalog-sync/cmd/catalog/config"
	"github.com/catalogops/catalog-sync/internal/autoupdate"
	"github.com/catalogops/catalog-sync/internal/editor"
	"github.com/catalogops/catalog-sync/internal/handler"
	"github.com/catalogops/catalog-sync/internal/platform/rabbitmq"
	"github.com/catalogops/catalog-sync/internal/platform/storage"
	"github.com/catalogops/catalog-sync/internal/recent"
	"github.com/catalogops/catalog-sync/internal/remote"
	"github.com/catalogops/catalog-sync/pkg/v1/commander"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	_ "github.com/lib/pq"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog"
)

const (
	// UserAgent is user agent header value used when calling the storefront API.
	UserAgent = "catalog-sync/0.0.1"

	shutdownTimeout = 10 * time.Second
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())

	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()

	// local .env is optional, env variables win
	_ = godotenv.Load()

	var cfg config.Config
	if err := env.Parse(&cfg); err != nil {
		logger.Fatal().
			Err(err).
			Msg("can't parse env variables")
	}

	amqpConnection, err := amqp.Dial(cfg.RabbitMQ.URL)
	if err != nil {
		logger.Fatal().
			Err(err).
			Msg("can't open RabbitMQ connection")
	}

	conn, err := rabbitmq.NewRabbitMQ(amqpConnection, cfg.RabbitMQ.Exchange)
	if err != nil {
		logger.Fatal().
			Err(err).
			Msg("can't open RabbitMQ connection")
	}

	pgDB, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		logger.Fatal().
			Err(err).
			Msg("can't open Postgres connection")
	}

	store := storage.NewPostgres(pgDB)
	touched := recent.NewCache(cfg.RecentlyTouchedTTL)

	woo := remote.NewClient(
		&http.Client{Timeout: cfg.HTTPTimeout},
		cfg.WooCommerce.BaseURL,
		cfg.WooCommerce.ConsumerKey,
		cfg.WooCommerce.ConsumerSecret,
		UserAgent,
	)

	ed := editor.NewEditor(
		store,
		store,
		woo,
		touched,
		&logger,
		editor.WithNoticeTTL(cfg.AutofixNoticeTTL),
	)

	updater := autoupdate.NewUpdater(
		store,
		cfg.BatchSize,
		autoupdate.WithPurgeAfter(cfg.PurgeAfter),
	)

	han := handler.NewRMQHandler(conn, updater, &logger)

	// start consuming and handling commands
	err = han.Start(ctx, cfg.RabbitMQ.Queue)
	if err != nil {
		logger.Fatal().
			Err(err).
			Msg("can't start consuming")
	}

	cmd := commander.NewCatalogCommander(
		commander.NewRabbitMQSender(conn, cfg.RabbitMQ.RoutingKey),
	)

	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	handler.NewProductAPI(store, ed, cmd, touched, cfg.RestoreWindow, &logger).Register(e)

	go func() {
		if err := e.Start(cfg.ListenAddr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error().
				Err(err).
				Msg("http server stopped")
			cancel()
		}
	}()

	logger.Info().Msg("catalog sync up and running")

	// handle graceful shutdown and context cancellation
	termChan := make(chan os.Signal, 1)
	signal.Notify(termChan, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-termChan:
		cancel()
	case <-ctx.Done():
	}

	logger.Info().Msg("graceful shutdown start")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error().
			Err(err).
			Msg("can't stop http server")
	}

	// wait for consumer to finish
	<-conn.Done()

	touched.Stop()

	// close connections
	wg := sync.WaitGroup{}
	wg.Add(2)

	go func() {
		defer wg.Done()
		if err := pgDB.Close(); err != nil {
			logger.Fatal().
				Err(err).
				Msg("can't close Postgres connection")
		}
	}()

	go func() {
		defer wg.Done()
		if err := amqpConnection.Close(); err != nil {
			logger.Fatal().
				Err(err).
				Msg("can't close RabbitMQ connection")
		}
	}()

	wg.Wait()

	logger.Info().Msg("graceful shutdown successful")
}
