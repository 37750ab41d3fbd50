package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/gracemeadow/meadowlane-backend/api/routes"
	"github.com/gracemeadow/meadowlane-backend/internal/albums"
	"github.com/gracemeadow/meadowlane-backend/internal/carousels"
	"github.com/gracemeadow/meadowlane-backend/internal/curation"
	"github.com/gracemeadow/meadowlane-backend/internal/items"
	"github.com/gracemeadow/meadowlane-backend/internal/playlists"
	"github.com/gracemeadow/meadowlane-backend/internal/products"
	"github.com/gracemeadow/meadowlane-backend/internal/recipes"
	"github.com/gracemeadow/meadowlane-backend/pkg/config"
	"github.com/gracemeadow/meadowlane-backend/pkg/db"
	"github.com/gracemeadow/meadowlane-backend/pkg/logger"
	"github.com/gracemeadow/meadowlane-backend/pkg/metrics"
	"github.com/gracemeadow/meadowlane-backend/pkg/migrate"
	"github.com/gracemeadow/meadowlane-backend/pkg/redis"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing database", err)
		}
	}()

	if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run dev migrations", err)
		os.Exit(1)
	}

	redisClient, err := redis.New(context.Background(), cfg.Redis, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap redis", err)
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing redis", err)
		}
	}()

	registry := prometheus.NewRegistry()
	carouselMetrics := metrics.NewCarouselMetrics(registry)
	renderCache := carousels.NewRenderCache(redisClient, cfg.Carousels.RenderCacheTTL, carouselMetrics, logg)

	carouselRepo := carousels.NewRepository(dbClient.DB())
	itemRepo := items.NewRepository(dbClient.DB())

	carouselService, err := carousels.NewService(carouselRepo, renderCache)
	if err != nil {
		logg.Error(context.Background(), "failed to create carousel service", err)
		os.Exit(1)
	}

	itemService, err := items.NewService(items.ServiceParams{
		ItemRepo:     itemRepo,
		CarouselRepo: carouselRepo,
		Cache:        renderCache,
		Metrics:      carouselMetrics,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create item service", err)
		os.Exit(1)
	}

	curationService, err := curation.NewService(curation.ServiceParams{
		CarouselRepo: carouselRepo,
		ItemRepo:     itemRepo,
		Tx:           dbClient,
		Cache:        renderCache,
		Metrics:      carouselMetrics,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create curation service", err)
		os.Exit(1)
	}

	recipeService, err := recipes.NewService(recipes.NewRepository(dbClient.DB()))
	if err != nil {
		logg.Error(context.Background(), "failed to create recipe service", err)
		os.Exit(1)
	}
	albumService, err := albums.NewService(albums.NewRepository(dbClient.DB()))
	if err != nil {
		logg.Error(context.Background(), "failed to create album service", err)
		os.Exit(1)
	}
	productService, err := products.NewService(products.NewRepository(dbClient.DB()))
	if err != nil {
		logg.Error(context.Background(), "failed to create product service", err)
		os.Exit(1)
	}
	playlistService, err := playlists.NewService(playlists.NewRepository(dbClient.DB()))
	if err != nil {
		logg.Error(context.Background(), "failed to create playlist service", err)
		os.Exit(1)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(cfg, logg, dbClient, redisClient, registry, routes.Services{
			Carousels: carouselService,
			Items:     itemService,
			Curation:  curationService,
			Recipes:   recipeService,
			Albums:    albumService,
			Products:  productService,
			Playlists: playlistService,
		}),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}
