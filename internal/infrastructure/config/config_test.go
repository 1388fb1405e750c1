package config

import (
	"context"
	"testing"
	"time"

	"github.com/sethvargo/go-envconfig"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := load(context.Background(), envconfig.MapLookuper(map[string]string{}))
	if err != nil {
		t.Fatalf("load returned error: %v", err)
	}

	if cfg.Mongo.URI != "mongodb://localhost:27017" {
		t.Errorf("unexpected mongo uri %q", cfg.Mongo.URI)
	}
	if cfg.Mongo.Database != "food-planner" {
		t.Errorf("unexpected database %q", cfg.Mongo.Database)
	}
	if cfg.Mongo.Timeout != 10*time.Second {
		t.Errorf("unexpected timeout %v", cfg.Mongo.Timeout)
	}
	if cfg.Redis.Addr != "" {
		t.Errorf("redis must be disabled by default, got %q", cfg.Redis.Addr)
	}
	if cfg.Seed.LockTTL != time.Minute {
		t.Errorf("unexpected lock ttl %v", cfg.Seed.LockTTL)
	}
	if cfg.Status.Addr != ":8080" {
		t.Errorf("unexpected status addr %q", cfg.Status.Addr)
	}
	if cfg.LogLevel != "info" || cfg.LogPretty {
		t.Errorf("unexpected log settings: %q pretty=%v", cfg.LogLevel, cfg.LogPretty)
	}
	if cfg.IsProduction() {
		t.Error("default env must not be production")
	}
}

func TestLoad_Overrides(t *testing.T) {
	cfg, err := load(context.Background(), envconfig.MapLookuper(map[string]string{
		"ENV":              "production",
		"MONGO_URI":        "mongodb://mongo:27017",
		"MONGO_DB":         "food-planner-test",
		"MONGO_TIMEOUT":    "3s",
		"REDIS_ADDR":       "redis:6379",
		"REDIS_DB":         "2",
		"SEED_LOCK_TTL":    "2m",
		"METRICS_TEXTFILE": "/var/lib/node_exporter/seed.prom",
		"LOG_PRETTY":       "true",
	}))
	if err != nil {
		t.Fatalf("load returned error: %v", err)
	}

	if cfg.Mongo.Database != "food-planner-test" || cfg.Mongo.Timeout != 3*time.Second {
		t.Errorf("unexpected mongo config: %+v", cfg.Mongo)
	}
	if cfg.Redis.Addr != "redis:6379" || cfg.Redis.DB != 2 {
		t.Errorf("unexpected redis config: %+v", cfg.Redis)
	}
	if cfg.Seed.LockTTL != 2*time.Minute {
		t.Errorf("unexpected lock ttl %v", cfg.Seed.LockTTL)
	}
	if cfg.Metrics.Textfile != "/var/lib/node_exporter/seed.prom" {
		t.Errorf("unexpected textfile %q", cfg.Metrics.Textfile)
	}
	if !cfg.LogPretty || !cfg.IsProduction() {
		t.Errorf("expected pretty logs in production, got %+v", cfg)
	}
}

func TestLoad_InvalidDuration(t *testing.T) {
	_, err := load(context.Background(), envconfig.MapLookuper(map[string]string{
		"MONGO_TIMEOUT": "soon",
	}))
	if err == nil {
		t.Fatal("expected error for malformed duration")
	}
}
