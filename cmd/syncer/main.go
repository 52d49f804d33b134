package main

import (
	"context"
	"database/sql"
	"errors"
	"sync"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"

	catalogapi "github.com/devyra-group-admin/devyraengine-digilocale/internal/adapters/catalog"
	"github.com/devyra-group-admin/devyraengine-digilocale/internal/adapters/observability"
	"github.com/devyra-group-admin/devyraengine-digilocale/internal/shared"
	mysqlrepo "github.com/devyra-group-admin/devyraengine-digilocale/internal/storage/mysql"
)

// syncer pulls the remote catalog into MySQL so the API can serve it without
// touching the remote on every request.
func main() {
	ctx := context.Background()
	cfg := shared.Load()

	log.Logger = observability.NewLogger(cfg.AppEnv)

	if cfg.CatalogBase == "" {
		log.Fatal().Msg("CATALOG_BASE_URL is required")
	}
	if cfg.MySQLDSN == "" {
		log.Fatal().Msg("MYSQL_DSN is required")
	}

	log.Info().
		Str("base", cfg.CatalogBase).
		Int("workers", cfg.SyncWorkers).
		Msg("catalog syncer starting")

	db, err := sql.Open("mysql", cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("sql.Open failed")
	}
	if err := db.Ping(); err != nil {
		log.Fatal().Err(err).Msg("db.Ping failed")
	}
	log.Info().Msg("db ping ok")

	repo := mysqlrepo.New(db)

	client, err := catalogapi.New(cfg.CatalogBase, cfg.CatalogKey, 5)
	if err != nil {
		log.Fatal().Err(err).Msg("catalog client init failed")
	}

	businesses, err := client.FetchBusinesses(ctx)
	if err != nil {
		if errors.Is(err, catalogapi.ErrNotFound) {
			log.Warn().Msg("remote has no business catalog")
		} else {
			log.Fatal().Err(err).Msg("fetch businesses failed")
		}
	}
	accommodations, err := client.FetchAccommodations(ctx)
	if err != nil {
		if errors.Is(err, catalogapi.ErrNotFound) {
			log.Warn().Msg("remote has no accommodation catalog")
		} else {
			log.Fatal().Err(err).Msg("fetch accommodations failed")
		}
	}

	sem := semaphore.NewWeighted(int64(cfg.SyncWorkers))
	var wg sync.WaitGroup

	for _, e := range businesses {
		e := e
		if err := sem.Acquire(ctx, 1); err != nil {
			log.Fatal().Err(err).Msg("semaphore acquire failed")
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer sem.Release(1)
			if err := repo.UpsertBusiness(ctx, e); err != nil {
				log.Warn().Int64("id", e.ID).Err(err).Msg("upsert business failed")
				_ = repo.LogMiss(ctx, e.ID, 0, "upsert business")
				return
			}
			log.Info().Int64("id", e.ID).Str("name", e.Name).Msg("business synced")
		}()
	}

	for _, a := range accommodations {
		a := a
		if err := sem.Acquire(ctx, 1); err != nil {
			log.Fatal().Err(err).Msg("semaphore acquire failed")
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer sem.Release(1)
			if err := repo.UpsertAccommodation(ctx, a); err != nil {
				log.Warn().Int64("id", a.ID).Err(err).Msg("upsert accommodation failed")
				_ = repo.LogMiss(ctx, a.ID, 0, "upsert accommodation")
				return
			}
			log.Info().Int64("id", a.ID).Str("name", a.Name).Msg("accommodation synced")
		}()
	}

	wg.Wait()
	log.Info().
		Int("businesses", len(businesses)).
		Int("accommodations", len(accommodations)).
		Msg("catalog sync completed")
}
