// Package config loads application configuration.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const envFile = "config/.env"

var keys = []string{
	"logging.level",
	"server.host",
	"server.port",
	"server.shutdown_timeout",
	"http.request_timeout",
	"source.backend",
	"source.table",
	"postgres.host",
	"postgres.port",
	"postgres.user",
	"postgres.password",
	"postgres.db_name",
	"postgres.ssl_mode",
	"postgres.query_timeout",
	"postgres.max_conns",
	"postgres.min_conns",
	"postgrest.url",
	"postgrest.key",
	"postgrest.timeout",
}

// NewConfig loads configuration from environment using viper with typed defaults and validation.
func NewConfig() (*Config, error) {
	loadEnvFile(envFile)

	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)
	for _, k := range keys {
		_ = v.BindEnv(k)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// loadEnvFile exports values from an optional dotenv file without overriding
// variables already present in the process environment.
func loadEnvFile(path string) {
	envMap, err := godotenv.Read(path)
	if err != nil {
		return
	}
	for k, val := range envMap {
		if _, exists := os.LookupEnv(k); !exists {
			_ = os.Setenv(k, val)
		}
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logging.level", "info")

	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.shutdown_timeout", 5*time.Second)

	v.SetDefault("http.request_timeout", 5*time.Second)

	v.SetDefault("source.backend", BackendPostgREST)
	v.SetDefault("source.table", "employees")

	v.SetDefault("postgres.host", "localhost")
	v.SetDefault("postgres.port", 5432)
	v.SetDefault("postgres.user", "postgres")
	v.SetDefault("postgres.password", "postgres")
	v.SetDefault("postgres.db_name", "postgres")
	v.SetDefault("postgres.ssl_mode", "disable")
	v.SetDefault("postgres.query_timeout", 3*time.Second)
	v.SetDefault("postgres.max_conns", 4)
	v.SetDefault("postgres.min_conns", 1)

	v.SetDefault("postgrest.timeout", 5*time.Second)
}
