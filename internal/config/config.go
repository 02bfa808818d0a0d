// Package config provides application configuration through environment variables.
package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/allisson/go-env"
	validation "github.com/jellydator/validation"
	"github.com/joho/godotenv"

	enigmaDTO "github.com/allisson/enigma/internal/enigma/dto"
	customValidation "github.com/allisson/enigma/internal/validation"
)

// Config holds all application configuration.
type Config struct {
	// LogLevel is the logging level (e.g., "debug", "info", "warn", "error").
	LogLevel string

	// MetricsEnabled starts the metrics server next to interactive sessions.
	MetricsEnabled bool
	// MetricsNamespace prefixes every metric name.
	MetricsNamespace string
	// MetricsHost is the address the metrics server binds to.
	MetricsHost string
	// MetricsPort is the port number for the metrics server.
	MetricsPort int
	// MetricsShutdownTimeout bounds the graceful shutdown of the metrics server.
	MetricsShutdownTimeout time.Duration

	// RateLimitEnabled indicates whether the metrics server rate limits clients per IP.
	RateLimitEnabled bool
	// RateLimitRequestsPerSec is the number of requests allowed per second per client IP.
	RateLimitRequestsPerSec float64
	// RateLimitBurst is the burst size for metrics server rate limiting.
	RateLimitBurst int

	// EnigmaRotors is the default rotor order, left to right (e.g., "I II III").
	EnigmaRotors string
	// EnigmaRingSettings is the default ring setting per rotor (e.g., "AAA" or "01 01 01").
	EnigmaRingSettings string
	// EnigmaPositions is the default starting position per rotor.
	EnigmaPositions string
	// EnigmaPlugboard is the default list of plugboard pairs (e.g., "AV BS"), empty for none.
	EnigmaPlugboard string
	// EnigmaReflector is the default reflector (e.g., "B").
	EnigmaReflector string
}

// Load loads configuration from environment variables and .env file.
func Load() *Config {
	// Try to load .env file recursively
	loadDotEnv()

	return &Config{
		// Logging
		LogLevel: env.GetString("LOG_LEVEL", "info"),

		// Metrics
		MetricsEnabled:         env.GetBool("METRICS_ENABLED", false),
		MetricsNamespace:       env.GetString("METRICS_NAMESPACE", "enigma"),
		MetricsHost:            env.GetString("METRICS_HOST", "127.0.0.1"),
		MetricsPort:            env.GetInt("METRICS_PORT", 8081),
		MetricsShutdownTimeout: env.GetDuration("METRICS_SHUTDOWN_TIMEOUT_SECONDS", 5, time.Second),

		// Rate Limiting
		RateLimitEnabled:        env.GetBool("RATE_LIMIT_ENABLED", true),
		RateLimitRequestsPerSec: env.GetFloat64("RATE_LIMIT_REQUESTS_PER_SEC", 10.0),
		RateLimitBurst:          env.GetInt("RATE_LIMIT_BURST", 20),

		// Default machine settings
		EnigmaRotors:       env.GetString("ENIGMA_ROTORS", "I II III"),
		EnigmaRingSettings: env.GetString("ENIGMA_RING_SETTINGS", "AAA"),
		EnigmaPositions:    env.GetString("ENIGMA_POSITIONS", "AAA"),
		EnigmaPlugboard:    env.GetString("ENIGMA_PLUGBOARD", ""),
		EnigmaReflector:    env.GetString("ENIGMA_REFLECTOR", "B"),
	}
}

// Validate checks the values that cannot be fixed up later. Machine settings are checked
// when they are converted with DefaultSettingsRequest().ToDomain().
func (c *Config) Validate() error {
	err := validation.ValidateStruct(c,
		validation.Field(&c.LogLevel,
			validation.Required,
			validation.In("debug", "info", "warn", "error"),
		),
		validation.Field(&c.MetricsNamespace,
			validation.When(c.MetricsEnabled, validation.Required, customValidation.NoWhitespace),
		),
		validation.Field(&c.MetricsPort,
			validation.When(c.MetricsEnabled, validation.Required, validation.Min(1), validation.Max(65535)),
		),
		validation.Field(&c.MetricsShutdownTimeout,
			validation.Min(time.Duration(0)),
		),
		validation.Field(&c.RateLimitRequestsPerSec,
			validation.When(c.RateLimitEnabled, validation.Required, validation.Min(0.0)),
		),
		validation.Field(&c.RateLimitBurst,
			validation.When(c.RateLimitEnabled, validation.Required, validation.Min(1)),
		),
	)
	return customValidation.WrapValidationError(err)
}

// DefaultSettingsRequest returns the configured default machine settings in textual form.
func (c *Config) DefaultSettingsRequest() enigmaDTO.SettingsRequest {
	return enigmaDTO.SettingsRequest{
		Rotors:       c.EnigmaRotors,
		RingSettings: c.EnigmaRingSettings,
		Positions:    c.EnigmaPositions,
		Plugboard:    c.EnigmaPlugboard,
		Reflector:    c.EnigmaReflector,
	}
}

// GetGinMode returns the appropriate Gin mode based on log level.
func (c *Config) GetGinMode() string {
	if c.LogLevel == "debug" {
		return "debug"
	}
	return "release"
}

// loadDotEnv searches for a .env file recursively from the current directory
// up to the root directory and loads it if found.
func loadDotEnv() {
	cwd, err := os.Getwd()
	if err != nil {
		return
	}

	dir := cwd
	for {
		envPath := filepath.Join(dir, ".env")
		if _, err := os.Stat(envPath); err == nil {
			_ = godotenv.Load(envPath)
			return
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
}
