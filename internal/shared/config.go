package shared

import (
	"os"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"
)

type Config struct {
	AppEnv      string
	HTTPAddr    string
	MetricsAddr string
	StaticDir   string

	CatalogBase string
	CatalogKey  string

	MySQLDSN  string
	RedisAddr string
	RedisDB   int
	RedisPass string
	CacheTTL  time.Duration

	MapReadyPoll    time.Duration
	MapReadyTimeout time.Duration

	SyncWorkers int
}

func Load() Config {
	atoi := func(k string, def int) int {
		if v := os.Getenv(k); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				return n
			}
		}
		return def
	}
	c := Config{
		AppEnv:          env("APP_ENV", "prod"),
		HTTPAddr:        env("HTTP_ADDR", ":8080"),
		MetricsAddr:     env("METRICS_ADDR", ""),
		StaticDir:       env("STATIC_DIR", "./client/dist"),
		CatalogBase:     env("CATALOG_BASE_URL", ""),
		CatalogKey:      env("CATALOG_API_KEY", ""),
		MySQLDSN:        env("MYSQL_DSN", ""),
		RedisAddr:       env("REDIS_ADDR", "localhost:6379"),
		RedisPass:       env("REDIS_PASSWORD", ""),
		RedisDB:         atoi("REDIS_DB", 0),
		CacheTTL:        time.Duration(atoi("CACHE_TTL_SECONDS", 300)) * time.Second,
		MapReadyPoll:    time.Duration(atoi("MAP_READY_POLL_MS", 100)) * time.Millisecond,
		MapReadyTimeout: time.Duration(atoi("MAP_READY_TIMEOUT_MS", 10000)) * time.Millisecond,
		SyncWorkers:     atoi("SYNC_WORKERS", 8),
	}
	if c.CatalogBase == "" && c.MySQLDSN == "" {
		log.Warn().Msg("no CATALOG_BASE_URL or MYSQL_DSN configured; serving bundled catalog only")
	}
	return c
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
