// Package config assembles the API server configuration from an optional YAML
// file and the environment. Environment variables always win over the file.
package config

import (
	"errors"
	"fmt"
	"net/netip"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"nc-news/internal/infra/db"
	env "nc-news/pkg/config"
)

// DefaultSQLiteDSN is used when DB_DRIVER=sqlite3 and no DATABASE_URL is given.
const DefaultSQLiteDSN = "file:nc_news.db?cache=shared"

// ServerConfig is the complete runtime configuration of cmd/api.
type ServerConfig struct {
	HTTP struct {
		Addr              string        `yaml:"addr"`
		ReadHeaderTimeout time.Duration `yaml:"read_header_timeout"`
		ShutdownTimeout   time.Duration `yaml:"shutdown_timeout"`
	} `yaml:"http"`

	Database struct {
		Driver          string        `yaml:"driver"`
		URL             string        `yaml:"url"`
		MaxOpenConns    int           `yaml:"max_open_conns"`
		MaxIdleConns    int           `yaml:"max_idle_conns"`
		ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime"`
		ConnMaxIdleTime time.Duration `yaml:"conn_max_idle_time"`
		PingTimeout     time.Duration `yaml:"ping_timeout"`
	} `yaml:"database"`

	Cache struct {
		// TopicTTL of zero disables the topic cache.
		TopicTTL time.Duration `yaml:"topic_ttl"`
	} `yaml:"cache"`

	RateLimit struct {
		Enabled bool    `yaml:"enabled"`
		RPS     float64 `yaml:"rps"`
		Burst   int     `yaml:"burst"`
		// TrustedProxies are the peers (IPs or CIDRs) whose X-Forwarded-For and
		// X-Real-IP headers identify the client. Empty means RemoteAddr only.
		TrustedProxies []string `yaml:"trusted_proxies"`
	} `yaml:"rate_limit"`

	CORS struct {
		AllowedOrigins []string `yaml:"allowed_origins"`
	} `yaml:"cors"`

	LogLevel string `yaml:"log_level"`
	Version  string `yaml:"version"`
}

// Default returns the configuration used when neither file nor environment set a value.
func Default() *ServerConfig {
	var c ServerConfig
	c.HTTP.Addr = ":9090"
	c.HTTP.ReadHeaderTimeout = 5 * time.Second
	c.HTTP.ShutdownTimeout = 10 * time.Second

	pool := db.DefaultConnectionConfig()
	c.Database.Driver = db.DriverPostgres
	c.Database.MaxOpenConns = pool.MaxOpenConns
	c.Database.MaxIdleConns = pool.MaxIdleConns
	c.Database.ConnMaxLifetime = pool.ConnMaxLifetime
	c.Database.ConnMaxIdleTime = pool.ConnMaxIdleTime
	c.Database.PingTimeout = 5 * time.Second

	c.Cache.TopicTTL = time.Minute

	c.RateLimit.Enabled = true
	c.RateLimit.RPS = 10
	c.RateLimit.Burst = 20

	c.LogLevel = "info"
	c.Version = "dev"
	return &c
}

// LoadServerConfig returns Default overlaid with the YAML file at path (skipped
// when path is empty) and then with environment variables. The result is validated.
// The path parameter is expected to come from a trusted source (CONFIG_FILE or a flag).
func LoadServerConfig(path string) (*ServerConfig, error) {
	cfg := Default()

	if path != "" {
		// #nosec G304 -- path is provided by the operator, not by request input
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	cfg.applyEnv()

	if cfg.Database.Driver == db.DriverSQLite && cfg.Database.URL == "" {
		cfg.Database.URL = DefaultSQLiteDSN
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

func (c *ServerConfig) applyEnv() {
	c.HTTP.Addr = env.GetEnvString("HTTP_ADDR", c.HTTP.Addr)
	c.HTTP.ShutdownTimeout = env.GetEnvDuration("SHUTDOWN_TIMEOUT", c.HTTP.ShutdownTimeout)

	c.Database.Driver = env.GetEnvString("DB_DRIVER", c.Database.Driver)
	c.Database.URL = env.GetEnvString("DATABASE_URL", c.Database.URL)
	pool := db.ApplyEnv(c.pool())
	c.Database.MaxOpenConns = pool.MaxOpenConns
	c.Database.MaxIdleConns = pool.MaxIdleConns
	c.Database.ConnMaxLifetime = pool.ConnMaxLifetime
	c.Database.ConnMaxIdleTime = pool.ConnMaxIdleTime

	c.Cache.TopicTTL = env.GetEnvDuration("TOPIC_CACHE_TTL", c.Cache.TopicTTL)

	c.RateLimit.Enabled = env.GetEnvBool("RATELIMIT_ENABLED", c.RateLimit.Enabled)
	c.RateLimit.RPS = env.GetEnvFloat("RATELIMIT_RPS", c.RateLimit.RPS)
	c.RateLimit.Burst = env.GetEnvInt("RATELIMIT_BURST", c.RateLimit.Burst)
	c.RateLimit.TrustedProxies = env.GetEnvStringList("TRUSTED_PROXIES", c.RateLimit.TrustedProxies)

	c.CORS.AllowedOrigins = env.GetEnvStringList("CORS_ALLOWED_ORIGINS", c.CORS.AllowedOrigins)

	c.LogLevel = env.GetEnvString("LOG_LEVEL", c.LogLevel)
	c.Version = env.GetEnvString("VERSION", c.Version)
}

// Validate checks the values that cannot be defaulted silently.
func (c *ServerConfig) Validate() error {
	var errs []error
	if c.HTTP.Addr == "" {
		errs = append(errs, errors.New("http addr is required"))
	}
	if err := env.ValidatePositiveDuration(c.HTTP.ShutdownTimeout); err != nil {
		errs = append(errs, fmt.Errorf("shutdown_timeout: %w", err))
	}
	if err := env.ValidateOneOf(c.Database.Driver, db.DriverPostgres, db.DriverSQLite); err != nil {
		errs = append(errs, fmt.Errorf("database driver: %w", err))
	}
	if c.Database.URL == "" {
		errs = append(errs, errors.New("DATABASE_URL is required"))
	}
	if err := env.ValidatePositiveInt(c.Database.MaxOpenConns); err != nil {
		errs = append(errs, fmt.Errorf("max_open_conns: %w", err))
	}
	if err := env.ValidateNonNegativeDuration(c.Cache.TopicTTL); err != nil {
		errs = append(errs, fmt.Errorf("topic_ttl: %w", err))
	}
	if c.RateLimit.Enabled {
		if err := env.ValidatePositiveFloat(c.RateLimit.RPS); err != nil {
			errs = append(errs, fmt.Errorf("rate_limit rps: %w", err))
		}
		if err := env.ValidatePositiveInt(c.RateLimit.Burst); err != nil {
			errs = append(errs, fmt.Errorf("rate_limit burst: %w", err))
		}
	}
	if _, err := env.ParsePrefixes(c.RateLimit.TrustedProxies); err != nil {
		errs = append(errs, fmt.Errorf("trusted_proxies: %w", err))
	}
	return errors.Join(errs...)
}

func (c *ServerConfig) pool() db.ConnectionConfig {
	return db.ConnectionConfig{
		MaxOpenConns:    c.Database.MaxOpenConns,
		MaxIdleConns:    c.Database.MaxIdleConns,
		ConnMaxLifetime: c.Database.ConnMaxLifetime,
		ConnMaxIdleTime: c.Database.ConnMaxIdleTime,
	}
}

// TrustedProxies returns the parsed trusted proxy prefixes. Entries that fail
// to parse are dropped; Validate reports them.
func (c *ServerConfig) TrustedProxies() []netip.Prefix {
	prefixes, err := env.ParsePrefixes(c.RateLimit.TrustedProxies)
	if err != nil {
		return nil
	}
	return prefixes
}

// DBOptions returns the pool options for db.NewPool.
func (c *ServerConfig) DBOptions() db.Options {
	return db.Options{
		Driver:      c.Database.Driver,
		DSN:         c.Database.URL,
		Conn:        c.pool(),
		PingTimeout: c.Database.PingTimeout,
	}
}
