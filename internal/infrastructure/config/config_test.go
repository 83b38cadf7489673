package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"PORT", "STORAGE_DRIVER", "RECONCILE_INTERVAL", "RECONCILE_WARMUP", "RECONCILE_ENABLED"} {
		t.Setenv(k, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != "8080" {
		t.Fatalf("expected default port 8080, got %q", cfg.Port)
	}
	if cfg.StorageDriver != StorageDynamoDB {
		t.Fatalf("expected dynamodb driver, got %q", cfg.StorageDriver)
	}
	if cfg.Reconcile.Interval != 5*time.Minute || cfg.Reconcile.Warmup != 10*time.Second || !cfg.Reconcile.Enabled {
		t.Fatalf("unexpected reconcile defaults: %+v", cfg.Reconcile)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "SQLite")
	t.Setenv("RECONCILE_INTERVAL", "30s")
	t.Setenv("RECONCILE_WARMUP", "0s")
	t.Setenv("RECONCILE_ENABLED", "false")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.StorageDriver != StorageSQLite {
		t.Fatalf("expected sqlite driver, got %q", cfg.StorageDriver)
	}
	if cfg.Reconcile.Interval != 30*time.Second || cfg.Reconcile.Warmup != 0 || cfg.Reconcile.Enabled {
		t.Fatalf("unexpected reconcile config: %+v", cfg.Reconcile)
	}
}

func TestLoad_Invalid(t *testing.T) {
	cases := map[string]map[string]string{
		"unknown driver":  {"STORAGE_DRIVER": "postgres"},
		"bad interval":    {"RECONCILE_INTERVAL": "soon"},
		"zero interval":   {"RECONCILE_INTERVAL": "0s"},
		"negative warmup": {"RECONCILE_WARMUP": "-1s"},
		"bad enabled":     {"RECONCILE_ENABLED": "maybe"},
	}
	for name, env := range cases {
		t.Run(name, func(t *testing.T) {
			for k, v := range env {
				t.Setenv(k, v)
			}
			if _, err := Load(); err == nil {
				t.Fatalf("expected error")
			}
		})
	}
}
