package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"standcast-backend/internal/common/config"
	"standcast-backend/internal/common/logger"
	"standcast-backend/internal/common/middleware"
	galleryhttp "standcast-backend/internal/features/gallery/delivery/http"
	galleryredis "standcast-backend/internal/features/gallery/repository/redis"
	galleryservice "standcast-backend/internal/features/gallery/service"
	statscache "standcast-backend/internal/features/stats/cache"
	statshttp "standcast-backend/internal/features/stats/delivery/http"
	statsservice "standcast-backend/internal/features/stats/service"
	"standcast-backend/internal/platform/basescan"
	"standcast-backend/internal/platform/neynar"
	redisplatform "standcast-backend/internal/platform/redis"
)

// @title           Standcast API
// @version         1.0
// @description     Derives a six-stat character sheet from Farcaster social and on-chain activity, and serves the public stand gallery.

// @host      localhost:8080
// @BasePath  /api/v1

// @tag.name stats
// @tag.description Stand stats derivation

// @tag.name gallery
// @tag.description Saved stands and the public gallery

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config load: %v\n", err)
		os.Exit(1)
	}

	logger.Init("standcast-backend", cfg.Debug)
	logger.Info().Bool("debug", cfg.Debug).Msg("Starting Standcast Backend")

	policy, err := cfg.GradingPolicy()
	if err != nil {
		logger.Fatal().Err(err).Msg("Invalid grading thresholds")
	}

	neynarClient := neynar.NewClient(cfg.Neynar.BaseURL, cfg.Neynar.APIKey)
	chainClient := basescan.NewClient(cfg.Chain.ScanAPIURL, cfg.Chain.RPCURL, cfg.ChainTimeout())

	var resultCache statscache.Cache = statscache.NewMemory(cfg.CacheTTL(), cfg.Cache.MaxEntries)
	var galleryHandler *galleryhttp.GalleryHandler

	if cfg.Redis.Enabled {
		rdb, err := redisplatform.New(cfg.Redis.Host, cfg.Redis.Port, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			logger.Fatal().Err(err).Msg("Failed to connect to Redis")
		}
		defer rdb.Close()

		resultCache = statscache.NewRedis(rdb, cfg.CacheTTL())
		galleryHandler = galleryhttp.NewGalleryHandler(
			galleryservice.NewGalleryService(galleryredis.NewStandRepository(rdb)))
		logger.Info().Msg("Redis cache and gallery initialized")
	} else {
		logger.Warn().Msg("Redis disabled: using in-memory stats cache, gallery routes not registered")
	}

	statsSvc := statsservice.NewStatsService(
		neynarClient, chainClient, resultCache, policy,
		cfg.Neynar.SampleLimit, cfg.ChainTimeout())
	statsHandler := statshttp.NewStatsHandler(statsSvc)

	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(gin.Recovery())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Content-Type", "Accept"}
	router.Use(cors.New(corsConfig))

	v1 := router.Group("/api/v1")
	statsHandler.RegisterRoutes(v1)
	if galleryHandler != nil {
		galleryHandler.RegisterRoutes(v1)
	}
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info().Int("port", cfg.Server.Port).Msg("Starting HTTP server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("Server forced to shutdown")
	}
	logger.Info().Msg("Server exited")
}
