package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const defaultHTTPAddr = ":8080"
const defaultLogLevel = "info"
const defaultShutdownTimeout = 10 * time.Second

type Config struct {
	HTTPAddr        string
	LogLevel        string
	ShutdownTimeout time.Duration
}

// Load reads the server environment. A .env file in the working directory is
// applied first when present; real environment variables win over it.
func Load() (Config, error) {
	_ = godotenv.Load()

	httpAddr := strings.TrimSpace(os.Getenv("HTTP_ADDR"))
	if httpAddr == "" {
		httpAddr = defaultHTTPAddr
	}

	logLevel := strings.ToLower(strings.TrimSpace(os.Getenv("LOG_LEVEL")))
	if logLevel == "" {
		logLevel = defaultLogLevel
	}

	shutdownTimeout := defaultShutdownTimeout
	if raw := strings.TrimSpace(os.Getenv("SHUTDOWN_TIMEOUT")); raw != "" {
		parsed, err := time.ParseDuration(raw)
		if err != nil {
			return Config{}, fmt.Errorf("parse SHUTDOWN_TIMEOUT: %w", err)
		}
		if parsed <= 0 {
			return Config{}, fmt.Errorf("SHUTDOWN_TIMEOUT must be positive")
		}
		shutdownTimeout = parsed
	}

	return Config{
		HTTPAddr:        httpAddr,
		LogLevel:        logLevel,
		ShutdownTimeout: shutdownTimeout,
	}, nil
}
