// pkg/config/config.go
package config

import (
	"fmt"
	"strings"
	"time"
)

// Config is the root configuration structure for the routing kernel.
type Config struct {
	App     AppConfig     `koanf:"app"`
	Log     LogConfig     `koanf:"log"`
	Metrics MetricsConfig `koanf:"metrics"`
	Tracing TracingConfig `koanf:"tracing"`
	Cache   CacheConfig   `koanf:"cache"`
	Kernel  KernelConfig  `koanf:"kernel"`
}

// AppConfig holds general application settings.
type AppConfig struct {
	Name        string `koanf:"name"`
	Version     string `koanf:"version"`
	Environment string `koanf:"environment"` // development, staging, production
	Debug       bool   `koanf:"debug"`
}

// LogConfig configures structured logging.
type LogConfig struct {
	Level      string `koanf:"level"`       // debug, info, warn, error
	Format     string `koanf:"format"`      // json, text
	Output     string `koanf:"output"`      // stdout, stderr, file
	FilePath   string `koanf:"file_path"`
	MaxSize    int    `koanf:"max_size"`    // MB
	MaxBackups int    `koanf:"max_backups"` // rotated file count
	MaxAge     int    `koanf:"max_age"`     // days
	Compress   bool   `koanf:"compress"`
}

// MetricsConfig configures Prometheus metrics.
type MetricsConfig struct {
	Enabled   bool   `koanf:"enabled"`
	Port      int    `koanf:"port"`
	Path      string `koanf:"path"`
	Namespace string `koanf:"namespace"`
	Subsystem string `koanf:"subsystem"`
}

// TracingConfig configures OpenTelemetry tracing.
type TracingConfig struct {
	Enabled     bool    `koanf:"enabled"`
	Endpoint    string  `koanf:"endpoint"`
	ServiceName string  `koanf:"service_name"`
	SampleRate  float64 `koanf:"sample_rate"`
}

// CacheConfig configures the route-solve result cache.
type CacheConfig struct {
	Enabled    bool          `koanf:"enabled"`
	Driver     string        `koanf:"driver"` // redis, memory
	Host       string        `koanf:"host"`
	Port       int           `koanf:"port"`
	Password   string        `koanf:"password"`
	DB         int           `koanf:"db"`
	DefaultTTL time.Duration `koanf:"default_ttl"`
	MaxEntries int           `koanf:"max_entries"` // for the in-memory driver
}

// Address returns the host:port of the cache backend.
func (c CacheConfig) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// KernelConfig holds the routing-kernel settings loaded from configuration:
// a default algorithm and scenario, default weights, and Pareto, worker and
// timeout parameters. Only Validate reads them; the engine package does not:
// it takes its algorithm and weights from each call, uses a fixed Pareto
// grid step count, sizes its Pareto worker pool from GOMAXPROCS, and sets no
// per-solve timeout. The engine's scenario presets are lowest_cost, fastest,
// greenest and most_reliable.
type KernelConfig struct {
	DefaultAlgorithm string `koanf:"default_algorithm"` // astar, dijkstra, bidirectional, hybrid
	DefaultScenario  string `koanf:"default_scenario"`  // not checked by Validate

	// Default scalarization weights.
	WeightDistance    float64 `koanf:"weight_distance"`
	WeightTime        float64 `koanf:"weight_time"`
	WeightCost        float64 `koanf:"weight_cost"`
	WeightCarbon      float64 `koanf:"weight_carbon"`
	WeightReliability float64 `koanf:"weight_reliability"`

	// ParetoSteps is a resolution for the weight-vector simplex grid of a
	// Pareto enumeration; Validate requires at least 1.
	ParetoSteps int `koanf:"pareto_steps"`

	// MaxWorkers is a worker-pool size for fanning out independent solves;
	// Validate requires at least 1.
	MaxWorkers int `koanf:"max_workers"`

	// SolveTimeout is a time limit for a single path-solve call.
	SolveTimeout time.Duration `koanf:"solve_timeout"`
}

// Validate checks the configuration for consistency.
func (c *Config) Validate() error {
	var errs []string

	if c.App.Name == "" {
		errs = append(errs, "app.name is required")
	}

	if c.Log.Level == "" {
		c.Log.Level = "info"
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[strings.ToLower(c.Log.Level)] {
		errs = append(errs, fmt.Sprintf("log.level must be one of: debug, info, warn, error, got %s", c.Log.Level))
	}

	validAlgorithms := map[string]bool{"astar": true, "dijkstra": true, "bidirectional": true, "hybrid": true}
	if c.Kernel.DefaultAlgorithm != "" && !validAlgorithms[c.Kernel.DefaultAlgorithm] {
		errs = append(errs, fmt.Sprintf("kernel.default_algorithm must be one of: astar, dijkstra, bidirectional, hybrid, got %s", c.Kernel.DefaultAlgorithm))
	}

	if c.Kernel.ParetoSteps < 1 {
		errs = append(errs, "kernel.pareto_steps must be at least 1")
	}

	if c.Kernel.MaxWorkers < 1 {
		errs = append(errs, "kernel.max_workers must be at least 1")
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errs, "; "))
	}

	return nil
}

// IsDevelopment reports whether the app is running in a development environment.
func (c *Config) IsDevelopment() bool {
	return c.App.Environment == "development" || c.App.Environment == "dev"
}

// IsProduction reports whether the app is running in a production environment.
func (c *Config) IsProduction() bool {
	return c.App.Environment == "production" || c.App.Environment == "prod"
}
