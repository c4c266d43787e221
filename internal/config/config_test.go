package config

import (
	"strings"
	"testing"
	"time"
)

func validConfig() Config {
	return Config{
		MongoURI:    "mongodb://localhost:27017",
		DBName:      "omufusion",
		RedisURI:    "redis://localhost:6379",
		JWTSecret:   "secret",
		Environment: "development",
	}
}

func TestValidateReportsAllMissingFields(t *testing.T) {
	cfg := Config{Environment: "development"}
	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error for empty config")
	}
	for _, field := range []string{"MONGO_URI", "DB_NAME", "REDIS_URI", "JWT_SECRET"} {
		if !strings.Contains(err.Error(), field) {
			t.Fatalf("expected %s in error, got %v", field, err)
		}
	}
}

func TestValidateAcceptsCompleteConfig(t *testing.T) {
	if err := validConfig().Validate(); err != nil {
		t.Fatalf("expected valid config, got %v", err)
	}
}

func TestValidateRejectsUnknownEnvironment(t *testing.T) {
	cfg := validConfig()
	cfg.Environment = "staging"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for unknown environment")
	}
}

func TestGetDurationEnvFallsBackOnGarbage(t *testing.T) {
	t.Setenv("TEST_TTL", "not-a-number")
	if got := getDurationEnv("TEST_TTL", 5, time.Minute); got != 5*time.Minute {
		t.Fatalf("expected fallback 5m, got %v", got)
	}
}

func TestSplitListTrimsAndDropsEmpty(t *testing.T) {
	got := splitList(" http://a.example , ,http://b.example")
	if len(got) != 2 || got[0] != "http://a.example" || got[1] != "http://b.example" {
		t.Fatalf("unexpected result: %v", got)
	}
}
