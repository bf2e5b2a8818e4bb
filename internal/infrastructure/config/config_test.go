package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"PORT", "STORE_DRIVER", "POSTGRES_DSN", "SESSION_DRIVER", "REDIS_URL", "SESSION_TTL", "REFERENCE_DATA_TTL", "LOG_FILE"} {
		t.Setenv(k, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != 8080 || cfg.Addr() != ":8080" {
		t.Fatalf("unexpected port: %d", cfg.Port)
	}
	if cfg.StoreDriver != StoreDriverDynamoDB || cfg.SessionDriver != SessionDriverMemory {
		t.Fatalf("unexpected drivers: %+v", cfg)
	}
	if cfg.SessionTTL != 2*time.Hour || cfg.ReferenceDataTTL != 5*time.Minute {
		t.Fatalf("unexpected ttls: %+v", cfg)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("STORE_DRIVER", "Postgres")
	t.Setenv("POSTGRES_DSN", "host=localhost user=app dbname=quotes")
	t.Setenv("SESSION_DRIVER", "redis")
	t.Setenv("SESSION_TTL", "900")
	t.Setenv("REFERENCE_DATA_TTL", "30s")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != 9090 || cfg.StoreDriver != StoreDriverPostgres || cfg.SessionDriver != SessionDriverRedis {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if cfg.SessionTTL != 15*time.Minute || cfg.ReferenceDataTTL != 30*time.Second {
		t.Fatalf("unexpected ttls: %+v", cfg)
	}
}

func TestLoad_Invalid(t *testing.T) {
	cases := []struct {
		name string
		env  map[string]string
	}{
		{name: "bad port", env: map[string]string{"PORT": "http"}},
		{name: "port out of range", env: map[string]string{"PORT": "70000"}},
		{name: "unknown store", env: map[string]string{"STORE_DRIVER": "mongo"}},
		{name: "postgres without dsn", env: map[string]string{"STORE_DRIVER": "postgres", "POSTGRES_DSN": ""}},
		{name: "unknown session driver", env: map[string]string{"SESSION_DRIVER": "file"}},
		{name: "bad ttl", env: map[string]string{"SESSION_TTL": "soon"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			for _, k := range []string{"PORT", "STORE_DRIVER", "POSTGRES_DSN", "SESSION_DRIVER", "SESSION_TTL"} {
				t.Setenv(k, "")
			}
			for k, v := range tc.env {
				t.Setenv(k, v)
			}
			if _, err := Load(); err == nil {
				t.Fatalf("expected error")
			}
		})
	}
}
