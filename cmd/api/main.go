package main

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/fixera/marketplace-api/internal/audit"
	"github.com/fixera/marketplace-api/internal/cache"
	"github.com/fixera/marketplace-api/internal/config"
	dbpkg "github.com/fixera/marketplace-api/internal/db"
	"github.com/fixera/marketplace-api/internal/infra/repository"
	"github.com/fixera/marketplace-api/internal/logging"
	"github.com/fixera/marketplace-api/internal/metrics"
	"github.com/fixera/marketplace-api/internal/middleware"
	"github.com/fixera/marketplace-api/internal/routes"
)

func main() {

	// missing .env is fine, env vars may come from the environment
	_ = godotenv.Load()

	cfg := config.Load()
	logger := logging.New(cfg)

	metrics.Register()

	var (
		store     routes.Store
		auditSink audit.Sink
	)

	switch cfg.StorageDriver {
	case "memory":
		// demo mode: fixture vendors, no database required
		mem := repository.NewMarketplaceMemoryRepository()
		if err := repository.SeedFixtures(context.Background(), mem); err != nil {
			logger.Fatal().Err(err).Msg("failed to seed demo fixtures")
		}
		store = mem
		auditSink = audit.NewLogSink(logger)
		logger.Info().Msg("running on in-memory store with demo fixtures")
	default:
		db := dbpkg.NewDB(cfg)
		store = repository.NewMarketplaceGormRepository(db)
		auditSink = audit.NewGormSink(db)
	}

	var vendorCache *cache.VendorCache
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		ttl := time.Duration(cfg.VendorCacheTTL) * time.Second
		vendorCache = cache.NewVendorCache(rdb, ttl, logger)
		logger.Info().Str("addr", cfg.RedisAddr).Msg("vendor listing cache enabled")
	}

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())
	r.Use(metrics.GinMiddleware())

	routes.RegisterRoutes(r, store, auditSink, vendorCache, cfg, logger)

	logger.Info().Str("addr", cfg.Addr()).Msg("server running")
	if err := r.Run(cfg.Addr()); err != nil {
		logger.Fatal().Err(err).Msg("failed to start server")
	}
}
