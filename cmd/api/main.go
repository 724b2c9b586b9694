package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/credibank/credit-system/docs"
	"github.com/credibank/credit-system/internal/api"
	"github.com/credibank/credit-system/internal/infrastructure/db/mongo"
	"github.com/credibank/credit-system/internal/infrastructure/db/redis"
	"github.com/credibank/credit-system/internal/pkg/config"
	"github.com/credibank/credit-system/pkg/logger"
)

// @title        Credit Management API
// @version      1.0
// @description  REST backend for customer registration and credit applications.
// @BasePath     /
func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client, db, err := mongo.Connect(ctx, cfg.Mongo.URI, cfg.Mongo.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to mongodb")
	}
	defer func() {
		_ = client.Disconnect(context.Background())
	}()

	if err := mongo.NewCustomerRepository(db).EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to create customer indexes")
	}
	if err := mongo.NewCreditRepository(db).EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to create credit indexes")
	}

	// The credit lookup cache is optional; the service degrades to
	// repository-only reads when Redis is unreachable.
	rdb, err := redis.Connect(ctx, cfg.Redis.Addr, cfg.Redis.DB)
	if err != nil {
		log.Warn().Err(err).Msg("redis unavailable, running without credit lookup cache")
		rdb = nil
	} else {
		defer func() {
			_ = rdb.Close()
		}()
	}

	e := api.NewRouter(db, rdb, cfg.Redis.CacheTTL, log)

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("credit system started")

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
	log.Info().Msg("credit system stopped")
}
