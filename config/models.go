package config

import (
	"errors"
	"fmt"
	"regexp"
	"time"
)

// Record source backends.
const (
	BackendPostgres  = "postgres"
	BackendPostgREST = "postgrest"
)

var identRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Config holds application configuration.
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	HTTP      HTTPConfig      `mapstructure:"http"`
	Logging   LoggingConfig   `mapstructure:"logging"`
	Source    SourceConfig    `mapstructure:"source"`
	Postgres  PostgresConfig  `mapstructure:"postgres"`
	PostgREST PostgRESTConfig `mapstructure:"postgrest"`
}

// Validate ensures required fields are present for the selected backend.
func (c Config) Validate() error {
	if c.Server.Port == 0 {
		return errors.New("server.port is required")
	}
	if !identRe.MatchString(c.Source.Table) {
		return fmt.Errorf("source.table %q is not a valid identifier", c.Source.Table)
	}

	switch c.Source.Backend {
	case BackendPostgres:
		if c.Postgres.User == "" || c.Postgres.DBName == "" {
			return errors.New("postgres credentials are required")
		}
		if c.Postgres.Host == "" {
			return errors.New("postgres.host is required")
		}
	case BackendPostgREST:
		if c.PostgREST.URL == "" || c.PostgREST.Key == "" {
			return errors.New("postgrest.url and postgrest.key are required")
		}
	default:
		return fmt.Errorf("unknown source.backend: %s", c.Source.Backend)
	}
	return nil
}

// ServerAddr returns host:port for HTTP server binding.
func (c Config) ServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// ServerConfig contains HTTP server options.
type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// HTTPConfig contains transport settings.
type HTTPConfig struct {
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
}

// LoggingConfig contains logger preferences.
type LoggingConfig struct {
	Level string `mapstructure:"level"`
}

// SourceConfig selects where employee records come from.
type SourceConfig struct {
	Backend string `mapstructure:"backend"`
	Table   string `mapstructure:"table"`
}

// PostgresConfig describes database connection parameters.
type PostgresConfig struct {
	Host         string        `mapstructure:"host"`
	Port         int           `mapstructure:"port"`
	User         string        `mapstructure:"user"`
	Password     string        `mapstructure:"password"`
	DBName       string        `mapstructure:"db_name"`
	SSLMode      string        `mapstructure:"ssl_mode"`
	QueryTimeout time.Duration `mapstructure:"query_timeout"`
	MaxConns     int32         `mapstructure:"max_conns"`
	MinConns     int32         `mapstructure:"min_conns"`
}

// DSN returns a Postgres connection string.
func (p PostgresConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		p.Host, p.Port, p.User, p.Password, p.DBName, p.SSLMode,
	)
}

// PostgRESTConfig holds the hosted REST endpoint credentials (Supabase style).
type PostgRESTConfig struct {
	URL     string        `mapstructure:"url"`
	Key     string        `mapstructure:"key"`
	Timeout time.Duration `mapstructure:"timeout"`
}
