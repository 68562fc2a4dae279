package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration
type Config struct {
	Environment string `yaml:"environment"`

	// Logging
	LogLevel string `yaml:"log_level"`

	// Ephemeris configuration
	EphemerisBackend string `yaml:"ephemeris_backend"`
	VSOP87Path       string `yaml:"vsop87_path"`

	// Calculation
	SampleWorkers int `yaml:"sample_workers"` // 0 keeps the domain default

	// Chart cache
	ChartCacheSize       int `yaml:"chart_cache_size"`
	ChartCacheTTLSeconds int `yaml:"chart_cache_ttl_seconds"`

	// Observability
	ServiceName     string  `yaml:"service_name"`
	OTLPEndpoint    string  `yaml:"otlp_endpoint"`
	TraceSampleRate float64 `yaml:"trace_sample_rate"`

	// Feature flags
	EnableMetrics bool `yaml:"enable_metrics"`
	EnableTracing bool `yaml:"enable_tracing"`

	// ConfigFile is the YAML overlay that was applied, if any
	ConfigFile string `yaml:"-"`
}

// DefaultConfig returns the configuration used when nothing is set
func DefaultConfig() *Config {
	return &Config{
		Environment:          "development",
		LogLevel:             "info",
		EphemerisBackend:     "vsop87",
		ChartCacheSize:       1024,
		ChartCacheTTLSeconds: 3600,
		ServiceName:          "bodygraph",
		TraceSampleRate:      1.0,
		EnableMetrics:        false,
		EnableTracing:        false,
	}
}

// LoadConfig loads configuration from defaults, then the YAML file named
// by CONFIG_FILE, then environment variables.
func LoadConfig() (*Config, error) {
	cfg := DefaultConfig()

	if path := getEnv("CONFIG_FILE", ""); path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Load is an alias for LoadConfig
func Load() (*Config, error) {
	return LoadConfig()
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	c.ConfigFile = path
	return nil
}

func (c *Config) applyEnv() {
	c.Environment = getEnv("ENVIRONMENT", c.Environment)
	c.LogLevel = getEnv("LOG_LEVEL", c.LogLevel)

	c.EphemerisBackend = getEnv("EPHEMERIS_BACKEND", c.EphemerisBackend)
	// VSOP87 is where the series loader looks on its own
	c.VSOP87Path = getEnv("VSOP87_PATH", getEnv("VSOP87", c.VSOP87Path))

	c.SampleWorkers = getEnvInt("SAMPLE_WORKERS", c.SampleWorkers)

	c.ChartCacheSize = getEnvInt("CHART_CACHE_SIZE", c.ChartCacheSize)
	c.ChartCacheTTLSeconds = getEnvInt("CHART_CACHE_TTL_SECONDS", c.ChartCacheTTLSeconds)

	c.ServiceName = getEnv("SERVICE_NAME", c.ServiceName)
	c.OTLPEndpoint = getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", c.OTLPEndpoint)
	c.TraceSampleRate = getEnvFloat("TRACE_SAMPLE_RATE", c.TraceSampleRate)

	c.EnableMetrics = getEnvBool("ENABLE_METRICS", c.EnableMetrics)
	c.EnableTracing = getEnvBool("ENABLE_TRACING", c.EnableTracing)
}

// Validate checks the configuration for values the container cannot use
func (c *Config) Validate() error {
	var errs []error

	switch c.EphemerisBackend {
	case "analytic":
		if c.IsProduction() {
			errs = append(errs, errors.New("the analytic ephemeris backend is not precise enough for production"))
		}
	case "vsop87":
		if c.VSOP87Path == "" {
			errs = append(errs, errors.New("VSOP87_PATH or VSOP87 is required for the vsop87 backend"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown ephemeris backend %q", c.EphemerisBackend))
	}

	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("unknown log level %q", c.LogLevel))
	}

	if c.SampleWorkers < 0 {
		errs = append(errs, errors.New("SAMPLE_WORKERS cannot be negative"))
	}
	if c.ChartCacheSize < 0 {
		errs = append(errs, errors.New("CHART_CACHE_SIZE cannot be negative"))
	}
	if c.TraceSampleRate < 0 || c.TraceSampleRate > 1 {
		errs = append(errs, errors.New("TRACE_SAMPLE_RATE must be within [0, 1]"))
	}

	return errors.Join(errs...)
}

// CacheEnabled reports whether the chart cache is on
func (c *Config) CacheEnabled() bool {
	return c.ChartCacheSize > 0
}

// IsDevelopment checks if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction checks if running in production mode
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// getEnv gets an environment variable with a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvBool gets a boolean environment variable with a default value
func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value == "true" || value == "1" || value == "yes"
}

// getEnvInt gets an integer environment variable with a default value
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

// getEnvFloat gets a float environment variable with a default value
func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}
