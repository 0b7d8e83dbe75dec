package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("HTTP_ADDR", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("SHUTDOWN_TIMEOUT", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if cfg.HTTPAddr != ":8080" || cfg.LogLevel != "info" || cfg.ShutdownTimeout != 10*time.Second {
		t.Fatalf("unexpected defaults %+v", cfg)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("HTTP_ADDR", " 127.0.0.1:9090 ")
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("SHUTDOWN_TIMEOUT", "3s")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if cfg.HTTPAddr != "127.0.0.1:9090" || cfg.LogLevel != "debug" || cfg.ShutdownTimeout != 3*time.Second {
		t.Fatalf("unexpected config %+v", cfg)
	}
}

func TestLoadRejectsInvalidShutdownTimeout(t *testing.T) {
	for _, raw := range []string{"soon", "-1s", "0s"} {
		t.Setenv("SHUTDOWN_TIMEOUT", raw)
		if _, err := Load(); err == nil {
			t.Fatalf("expected error for SHUTDOWN_TIMEOUT=%q", raw)
		}
	}
}
