package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/lmittmann/tint"

	"deal-engine/config"
	httpLayer "deal-engine/http"
	"deal-engine/repository"
	"deal-engine/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger := newLogger(cfg.LogLevel)

	var cache repository.CacheRepository
	if cfg.Redis.Enabled {
		redisCache := repository.NewRedisCache(cfg.Redis.Addr, cfg.Redis.TTL)
		defer redisCache.Close()
		cache = redisCache
		logger.Info("using redis result cache", slog.String("addr", cfg.Redis.Addr))
	} else {
		cache = repository.NewMockCache()
	}

	analysisRepo := repository.NewAnalysisRepositoryMemory()
	analysisService := service.NewAnalysisService(analysisRepo, cache, logger)

	validate := validator.New()

	mortgageHandler := httpLayer.NewMortgageHandler(analysisService, validate, logger)
	dealHandler := httpLayer.NewDealHandler(analysisService, validate, logger)
	rentalHandler := httpLayer.NewRentalHandler(analysisService, validate, logger)

	rateLimiter := httpLayer.NewRateLimiter(
		cfg.RateLimit.Capacity,
		cfg.RateLimit.Window,
		cfg.RateLimit.SweepInterval,
		cfg.RateLimit.IdleEviction,
	)
	defer rateLimiter.Stop()

	router := httpLayer.NewRouter(mortgageHandler, dealHandler, rentalHandler, rateLimiter)

	server := &http.Server{
		Addr:         cfg.ListenAddress,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("deal analysis API listening", slog.String("addr", cfg.ListenAddress))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		logger.Error("server failed", slog.Any("error", err))
		return
	case <-quit:
		logger.Info("shutting down")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Error("shutdown failed", slog.Any("error", err))
	}

	logger.Info("server exited")
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}

	return slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      lvl,
		TimeFormat: time.Kitchen,
	}))
}
