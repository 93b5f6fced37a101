package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	EnvPrefix      = "PROPERTY_PLAN"
	configName     = "property-plan"
	configFileType = "yaml"
)

// Config holds the settings shared by the CLI and the HTTP server.
type Config struct {
	Server struct {
		Addr            string        `mapstructure:"addr"`
		ReadTimeout     time.Duration `mapstructure:"read_timeout"`
		WriteTimeout    time.Duration `mapstructure:"write_timeout"`
		IdleTimeout     time.Duration `mapstructure:"idle_timeout"`
		ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	} `mapstructure:"server"`
	RateLimit struct {
		Capacity int           `mapstructure:"capacity"`
		Window   time.Duration `mapstructure:"window"`
	} `mapstructure:"rate_limit"`
	Cache struct {
		Backend   string        `mapstructure:"backend"` // "memory", "redis"
		RedisAddr string        `mapstructure:"redis_addr"`
		TTL       time.Duration `mapstructure:"ttl"`
	} `mapstructure:"cache"`
	Storage struct {
		Backend     string `mapstructure:"backend"` // "memory", "sqlite", "postgres"
		SQLitePath  string `mapstructure:"sqlite_path"`
		PostgresDSN string `mapstructure:"postgres_dsn"`
	} `mapstructure:"storage"`
	Chart struct {
		Path      string `mapstructure:"path"`
		DarkTheme bool   `mapstructure:"dark_theme"`
	} `mapstructure:"chart"`
	Report struct {
		Currency string `mapstructure:"currency"`
	} `mapstructure:"report"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.read_timeout", 15*time.Second)
	v.SetDefault("server.write_timeout", 15*time.Second)
	v.SetDefault("server.idle_timeout", 60*time.Second)
	v.SetDefault("server.shutdown_timeout", 10*time.Second)

	v.SetDefault("rate_limit.capacity", 5)
	v.SetDefault("rate_limit.window", time.Minute)

	v.SetDefault("cache.backend", "memory")
	v.SetDefault("cache.redis_addr", "localhost:6379")
	v.SetDefault("cache.ttl", 24*time.Hour)

	v.SetDefault("storage.backend", "memory")
	v.SetDefault("storage.sqlite_path", "property-plan.db")
	v.SetDefault("storage.postgres_dsn", "")

	v.SetDefault("chart.path", "RealEstate.png")
	v.SetDefault("chart.dark_theme", true)

	v.SetDefault("report.currency", "€")
}

// Load reads defaults, then the config file, then PROPERTY_PLAN_* variables.
// An empty path looks for property-plan.yaml in the working directory; a missing
// file there is not an error.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(configName)
		v.SetConfigType(configFileType)
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("config: read: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the backend names and the values the server cannot run without.
func (c *Config) Validate() error {
	switch c.Cache.Backend {
	case "memory", "redis":
	default:
		return fmt.Errorf("config: unknown cache backend %q", c.Cache.Backend)
	}

	switch c.Storage.Backend {
	case "memory", "sqlite":
	case "postgres":
		if c.Storage.PostgresDSN == "" {
			return errors.New("config: storage.postgres_dsn is required for the postgres backend")
		}
	default:
		return fmt.Errorf("config: unknown storage backend %q", c.Storage.Backend)
	}

	if c.RateLimit.Capacity <= 0 || c.RateLimit.Window <= 0 {
		return errors.New("config: rate_limit.capacity and rate_limit.window must be positive")
	}
	return nil
}
