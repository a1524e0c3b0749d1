package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cloud-ru/rentbuy-go/internal/cache"
	"github.com/cloud-ru/rentbuy-go/internal/httpapi"
	"github.com/cloud-ru/rentbuy-go/internal/tools"
	"github.com/cloud-ru/rentbuy-go/internal/tracing"
)

func newServeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP and websocket projection service",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return a.serve(ctx)
		},
	}
	return cmd
}

func (a *app) serve(ctx context.Context) error {
	tracer, shutdownTracing, err := tracing.InitTracing(ctx, a.cfg.OTELServiceName, a.cfg.OTELEndpoint, a.logger)
	if err != nil {
		return err
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(shutdownCtx); err != nil {
			a.logger.Warn("tracing shutdown failed", zap.Error(err))
		}
	}()

	resultCache, closeCache := a.newCache(ctx)
	defer closeCache()

	handlers := tools.Handlers(tools.Deps{
		Config: a.cfg,
		Tracer: tracer,
		Cache:  resultCache,
		Logger: a.logger,
	})

	limiter := httpapi.NewRateLimiter(a.cfg.RateLimitPerMinute, time.Minute)
	defer limiter.Stop()

	server := httpapi.NewServer(handlers, limiter, a.logger)
	return httpapi.Run(ctx, fmt.Sprintf(":%d", a.cfg.Port), server.Routes(), a.logger, server.CloseLive)
}

// newCache выбирает Redis, если он задан и доступен, иначе кэш в памяти
func (a *app) newCache(ctx context.Context) (cache.Cache, func()) {
	if a.cfg.RedisAddr == "" {
		a.logger.Info("result cache: in-memory",
			zap.Duration("ttl", a.cfg.CacheTTL), zap.Int("max_entries", a.cfg.CacheMaxEntries))
		return a.memoryCache(), func() {}
	}

	rc := cache.NewRedisCache(a.cfg.RedisAddr, a.cfg.CacheTTL)
	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := rc.Ping(pingCtx); err != nil {
		a.logger.Warn("redis unavailable, falling back to in-memory cache",
			zap.String("addr", a.cfg.RedisAddr), zap.Error(err))
		_ = rc.Close()
		return a.memoryCache(), func() {}
	}

	a.logger.Info("result cache: redis", zap.String("addr", a.cfg.RedisAddr), zap.Duration("ttl", a.cfg.CacheTTL))
	return rc, func() { _ = rc.Close() }
}

func (a *app) memoryCache() *cache.MemoryCache {
	return cache.NewMemoryCache(a.cfg.CacheTTL, a.cfg.CacheMaxEntries)
}
