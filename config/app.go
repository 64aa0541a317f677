package config

import "time"

type App struct {
	Port        string `env:"APP_PORT" default:"8080"`
	DatabaseURL string `env:"DATABASE_URL,required"`
	Env         string `env:"APP_ENV" default:"dev"`

	// Connection pool / statement bounds.
	DBMaxConns       int32         `env:"DB_MAX_CONNS" default:"10"`
	DBAcquireTimeout time.Duration `env:"DB_ACQUIRE_TIMEOUT" default:"5s"`
	DBQueryTimeout   time.Duration `env:"DB_QUERY_TIMEOUT" default:"10s"`
}
