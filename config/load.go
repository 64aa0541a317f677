package config

import (
	"log/slog"
	"os"
	"strconv"
	"time"
)

func Load() App {
	cfg := App{
		Port:             getenv("APP_PORT", "8080"),
		DatabaseURL:      must("DATABASE_URL"),
		Env:              getenv("APP_ENV", "dev"),
		DBMaxConns:       int32(getint("DB_MAX_CONNS", 10)),
		DBAcquireTimeout: getdur("DB_ACQUIRE_TIMEOUT", 5*time.Second),
		DBQueryTimeout:   getdur("DB_QUERY_TIMEOUT", 10*time.Second),
	}
	if cfg.DBMaxConns < 1 {
		cfg.DBMaxConns = 1
	}
	return cfg
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getint(k string, def int) int {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		slog.Warn("bad integer env, using default", "key", k, "value", v)
		return def
	}
	return n
}

func getdur(k string, def time.Duration) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		slog.Warn("bad duration env, using default", "key", k, "value", v)
		return def
	}
	return d
}

func must(k string) string {
	v := os.Getenv(k)
	if v == "" {
		slog.Error("required env missing", "key", k)
		panic("missing env " + k)
	}
	return v
}
