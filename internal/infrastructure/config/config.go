package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	StoreDriverDynamoDB = "dynamodb"
	StoreDriverPostgres = "postgres"

	SessionDriverMemory = "memory"
	SessionDriverRedis  = "redis"
)

// Config is assembled from environment variables. A .env file is loaded by
// the entrypoint before Load runs.
type Config struct {
	Port             int
	StoreDriver      string
	PostgresDSN      string
	SessionDriver    string
	RedisURL         string
	SessionTTL       time.Duration
	ReferenceDataTTL time.Duration
	Log              LogConfig
}

type LogConfig struct {
	File       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

func Load() (Config, error) {
	cfg := Config{
		StoreDriver:   strings.ToLower(getenvDefault("STORE_DRIVER", StoreDriverDynamoDB)),
		PostgresDSN:   os.Getenv("POSTGRES_DSN"),
		SessionDriver: strings.ToLower(getenvDefault("SESSION_DRIVER", SessionDriverMemory)),
		RedisURL:      getenvDefault("REDIS_URL", "redis://localhost:6379/0"),
		Log: LogConfig{
			File: os.Getenv("LOG_FILE"),
		},
	}

	var err error
	if cfg.Port, err = getenvInt("PORT", 8080); err != nil {
		return Config{}, err
	}
	if cfg.SessionTTL, err = getenvDuration("SESSION_TTL", 2*time.Hour); err != nil {
		return Config{}, err
	}
	if cfg.ReferenceDataTTL, err = getenvDuration("REFERENCE_DATA_TTL", 5*time.Minute); err != nil {
		return Config{}, err
	}
	if cfg.Log.MaxSizeMB, err = getenvInt("LOG_MAX_SIZE_MB", 100); err != nil {
		return Config{}, err
	}
	if cfg.Log.MaxBackups, err = getenvInt("LOG_MAX_BACKUPS", 5); err != nil {
		return Config{}, err
	}
	if cfg.Log.MaxAgeDays, err = getenvInt("LOG_MAX_AGE_DAYS", 30); err != nil {
		return Config{}, err
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch c.StoreDriver {
	case StoreDriverDynamoDB:
	case StoreDriverPostgres:
		if c.PostgresDSN == "" {
			return fmt.Errorf("POSTGRES_DSN is required when STORE_DRIVER=%s", StoreDriverPostgres)
		}
	default:
		return fmt.Errorf("unsupported STORE_DRIVER %q", c.StoreDriver)
	}

	switch c.SessionDriver {
	case SessionDriverMemory, SessionDriverRedis:
	default:
		return fmt.Errorf("unsupported SESSION_DRIVER %q", c.SessionDriver)
	}

	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid PORT %d", c.Port)
	}
	return nil
}

func (c Config) Addr() string {
	return ":" + strconv.Itoa(c.Port)
}

func getenvDefault(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) (int, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

// getenvDuration accepts Go durations ("90s", "2h") or a bare number of seconds.
func getenvDuration(key string, def time.Duration) (time.Duration, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	if n, err := strconv.Atoi(v); err == nil {
		return time.Duration(n) * time.Second, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}
