// package main provides a command line interface for starting the event site
// REST API.
package main

import (
	"context"
	"database/sql"
	"flag"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/gorilla/handlers"
	_ "github.com/lib/pq"

	"github.com/frankokule97/brabant-events/config"
	"github.com/frankokule97/brabant-events/favorites"
	"github.com/frankokule97/brabant-events/log"
	"github.com/frankokule97/brabant-events/pg"
	"github.com/frankokule97/brabant-events/prom"
	"github.com/frankokule97/brabant-events/rest"
	"github.com/frankokule97/brabant-events/service"
	"github.com/frankokule97/brabant-events/ticketmaster"
)

func main() {
	var (
		configPath = flag.String("config", "", "path to the YAML configuration file")
		listen     = flag.String("listen", "", "HTTP listen address, overrides the config file")
	)
	flag.Parse()

	ctx := context.Background()

	cfg, err := config.Load(*configPath)
	if err != nil {
		panic(err)
	}
	if *listen != "" {
		cfg.Listen = *listen
	}

	var logger *zap.Logger
	if cfg.Environment == "production" {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		panic(err)
	}

	if cfg.Provider.APIKey == "" {
		logger.Fatal("missing provider api key, set TICKETMASTER_API_KEY or provider.api_key")
	}

	var cache *pg.EventCache
	if cfg.DB != "" {
		db, err := sql.Open("postgres", cfg.DB)
		if err != nil {
			logger.Fatal("open postgres failed", zap.Error(err))
		}
		db.SetMaxOpenConns(5)

		cache = &pg.EventCache{DB: db}
		if err = cache.Init(ctx); err != nil {
			logger.Fatal("init event cache failed", zap.Error(err))
		}
	} else {
		logger.Info("no database configured, provider fetch cache disabled")
	}

	svc := &service.Service{
		Provider: &ticketmaster.Client{
			HTTP:    http.DefaultClient,
			APIKey:  cfg.Provider.APIKey,
			BaseURL: cfg.Provider.BaseURL,
		},
		Cache:     cache,
		CacheTTL:  cfg.CacheTTL(),
		Favorites: favorites.NewMemStore(),
		Search: service.SearchDefaults{
			CountryCode: cfg.Provider.CountryCode,
			GeoPoint:    cfg.Provider.GeoPoint,
			Radius:      cfg.Provider.Radius,
			Unit:        cfg.Provider.Unit,
			PageSize:    cfg.Provider.PageSize,
		},
		Time:         service.SystemTime{},
		RetryBackoff: time.Second,
	}

	var handler http.Handler
	handler = rest.New(svc)
	handler = log.WrapHandler(handler, logger)
	handler = handlers.CORS(
		handlers.AllowedHeaders([]string{"Content-Type", "X-Device-ID"}),
		handlers.AllowedMethods([]string{"GET", "POST", "OPTIONS", "HEAD"}),
		handlers.AllowedOrigins(cfg.CORSOrigins),
	)(handler)
	http.Handle("/", handler)

	http.Handle("/metrics", prom.Handler())

	logger.Info("listening", zap.String("addr", cfg.Listen))
	if err := http.ListenAndServe(cfg.Listen, nil); err != nil {
		logger.Fatal("http server failed", zap.Error(err))
	}
}
