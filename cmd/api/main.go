package main

import (
	"database/sql"
	"net/http"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"

	catalogapi "github.com/devyra-group-admin/devyraengine-digilocale/internal/adapters/catalog"
	server "github.com/devyra-group-admin/devyraengine-digilocale/internal/adapters/http_server"
	"github.com/devyra-group-admin/devyraengine-digilocale/internal/adapters/memmap"
	"github.com/devyra-group-admin/devyraengine-digilocale/internal/adapters/observability"
	redisad "github.com/devyra-group-admin/devyraengine-digilocale/internal/adapters/redis"
	"github.com/devyra-group-admin/devyraengine-digilocale/internal/app"
	"github.com/devyra-group-admin/devyraengine-digilocale/internal/domain"
	"github.com/devyra-group-admin/devyraengine-digilocale/internal/shared"
	mysqlrepo "github.com/devyra-group-admin/devyraengine-digilocale/internal/storage/mysql"
)

func main() {
	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv)

	observability.Serve()

	// catalog source: MySQL when configured, else the remote catalog API,
	// else bundled data only. Every path falls back to the bundled lists.
	var src domain.CatalogSource
	switch {
	case cfg.MySQLDSN != "":
		db, err := sql.Open("mysql", cfg.MySQLDSN)
		if err != nil {
			log.Fatal().Err(err).Msg("sql.Open failed")
		}
		if err := db.Ping(); err != nil {
			log.Fatal().Err(err).Msg("db.Ping failed")
		}
		log.Info().Msg("database connection ok")
		src = mysqlrepo.New(db)
	case cfg.CatalogBase != "":
		client, err := catalogapi.New(cfg.CatalogBase, cfg.CatalogKey, 5)
		if err != nil {
			log.Fatal().Err(err).Msg("catalog client init failed")
		}
		src = client
	default:
		log.Info().Msg("no catalog source configured; bundled catalog only")
	}

	catalog := app.NewCatalogService(src)
	cache := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	q := app.NewQueryService(catalog, cache, cfg.CacheTTL)

	// http
	srv := server.New()
	reg := observability.InitRegistry()
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountHandlers(&server.Handlers{
		Q:               q,
		Engine:          memmap.New(),
		MapReadyPoll:    cfg.MapReadyPoll,
		MapReadyTimeout: cfg.MapReadyTimeout,
	})
	srv.MountStatic(cfg.StaticDir)

	log.Info().Str("addr", cfg.HTTPAddr).Msg("API listening")
	httpSrv := &http.Server{Addr: cfg.HTTPAddr, Handler: srv.Mux()}

	if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("http server failed")
	}
}
