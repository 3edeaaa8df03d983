package config

import (
	"os"
	"strconv"
	"time"

	"showcase/internal"
	"showcase/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Database  DatabaseConfig
	Server    ServerConfig
	Progress  ProgressConfig
	Upload    UploadConfig
	Chart     ChartConfig
	Text      TextConfig
	Activity  ActivityConfig
	Profiling ProfilingConfig
	Logging   LoggingConfig
}

// DatabaseConfig holds database connection settings. An empty URL keeps
// the activity log in memory.
type DatabaseConfig struct {
	URL string
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port    string
	GinMode string
}

// ProgressConfig drives the home page progress demo
type ProgressConfig struct {
	Steps      int
	Interval   time.Duration
	MaxStreams int64
}

// UploadConfig bounds file uploads
type UploadConfig struct {
	MaxBytes    int64
	PreviewRows int
}

// ChartConfig describes the synthetic series
type ChartConfig struct {
	Points int
	Start  time.Time
	Seed   uint64 // 0 seeds from the clock
}

// TextConfig holds text analysis settings
type TextConfig struct {
	TopWords int
}

// ActivityConfig sizes the in-memory activity log
type ActivityConfig struct {
	Capacity int
}

// ProfilingConfig holds performance profiling settings
type ProfilingConfig struct {
	Port    string
	Enabled bool
}

// LoggingConfig sets the verbosity of the leveled logger
type LoggingConfig struct {
	Level internal.LogLevel
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	chartConfig, err := loadChartConfig()
	if err != nil {
		return nil, errors.Wrap(err, "failed to load chart configuration")
	}

	logLevel := internal.LogLevelInfo
	if value := os.Getenv("LOG_LEVEL"); value != "" {
		logLevel, err = internal.ParseLogLevel(value)
		if err != nil {
			return nil, errors.ConfigInvalid("LOG_LEVEL must be one of ERROR, WARN, INFO, DEBUG")
		}
	}

	config := &Config{
		Database: DatabaseConfig{
			URL: getEnvOrDefault("DATABASE_URL", ""),
		},
		Server: ServerConfig{
			Port:    getEnvOrDefault("PORT", "8080"),
			GinMode: getEnvOrDefault("GIN_MODE", "debug"),
		},
		Progress: ProgressConfig{
			Steps:      getEnvIntOrDefault("PROGRESS_STEPS", 100),
			Interval:   getEnvDurationOrDefault("PROGRESS_INTERVAL", 10*time.Millisecond),
			MaxStreams: int64(getEnvIntOrDefault("PROGRESS_MAX_STREAMS", 8)),
		},
		Upload: UploadConfig{
			MaxBytes:    int64(getEnvIntOrDefault("UPLOAD_MAX_BYTES", 10<<20)),
			PreviewRows: getEnvIntOrDefault("PREVIEW_ROWS", 5),
		},
		Chart: *chartConfig,
		Text: TextConfig{
			TopWords: getEnvIntOrDefault("TOP_WORDS", 10),
		},
		Activity: ActivityConfig{
			Capacity: getEnvIntOrDefault("ACTIVITY_CAPACITY", 200),
		},
		Profiling: ProfilingConfig{
			Port:    getEnvOrDefault("PPROF_PORT", "6060"),
			Enabled: getEnvBoolOrDefault("PPROF_ENABLED", false),
		},
		Logging: LoggingConfig{
			Level: logLevel,
		},
	}

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}

	return config, nil
}

// Default returns the configuration Load produces with an empty environment
func Default() *Config {
	return &Config{
		Server:    ServerConfig{Port: "8080", GinMode: "debug"},
		Progress:  ProgressConfig{Steps: 100, Interval: 10 * time.Millisecond, MaxStreams: 8},
		Upload:    UploadConfig{MaxBytes: 10 << 20, PreviewRows: 5},
		Chart:     ChartConfig{Points: 30, Start: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
		Text:      TextConfig{TopWords: 10},
		Activity:  ActivityConfig{Capacity: 200},
		Profiling: ProfilingConfig{Port: "6060"},
		Logging:   LoggingConfig{Level: internal.LogLevelInfo},
	}
}

func loadChartConfig() (*ChartConfig, error) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	if value := os.Getenv("CHART_START"); value != "" {
		parsed, err := time.Parse("2006-01-02", value)
		if err != nil {
			return nil, errors.ConfigInvalid("CHART_START must be a YYYY-MM-DD date")
		}
		start = parsed
	}

	var seed uint64
	if value := os.Getenv("CHART_SEED"); value != "" {
		parsed, err := strconv.ParseUint(value, 10, 64)
		if err != nil {
			return nil, errors.ConfigInvalid("CHART_SEED must be an unsigned integer")
		}
		seed = parsed
	}

	return &ChartConfig{
		Points: getEnvIntOrDefault("CHART_POINTS", 30),
		Start:  start,
		Seed:   seed,
	}, nil
}

func validateConfig(config *Config) error {
	if config.Server.Port == "" {
		return errors.ConfigInvalid("server port is required")
	}
	if config.Progress.Steps <= 0 {
		return errors.ConfigInvalid("PROGRESS_STEPS must be positive")
	}
	if config.Progress.Interval < 0 {
		return errors.ConfigInvalid("PROGRESS_INTERVAL cannot be negative")
	}
	if config.Progress.MaxStreams <= 0 {
		return errors.ConfigInvalid("PROGRESS_MAX_STREAMS must be positive")
	}
	if config.Upload.MaxBytes <= 0 {
		return errors.ConfigInvalid("UPLOAD_MAX_BYTES must be positive")
	}
	if config.Upload.PreviewRows <= 0 {
		return errors.ConfigInvalid("PREVIEW_ROWS must be positive")
	}
	if config.Chart.Points <= 0 {
		return errors.ConfigInvalid("CHART_POINTS must be positive")
	}
	if config.Text.TopWords <= 0 {
		return errors.ConfigInvalid("TOP_WORDS must be positive")
	}
	if config.Activity.Capacity <= 0 {
		return errors.ConfigInvalid("ACTIVITY_CAPACITY must be positive")
	}
	return nil
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
