// Package config loads and validates the service configuration from files
// and environment variables, with hot reloading in development.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"jyotish-backend/internal/domain/dosha"
)

// Duration wraps time.Duration so YAML can carry "10s" / "24h" syntax.
type Duration time.Duration

// UnmarshalYAML parses a Go duration string.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", raw, err)
	}
	*d = Duration(parsed)
	return nil
}

// MarshalYAML renders the duration string form.
func (d Duration) MarshalYAML() (interface{}, error) {
	return time.Duration(d).String(), nil
}

// Std returns the standard library representation.
func (d Duration) Std() time.Duration { return time.Duration(d) }

// Environment is the deployment environment.
type Environment string

const (
	Development Environment = "development"
	Staging     Environment = "staging"
	Production  Environment = "production"
)

// getEnvironment resolves the deployment environment, defaulting to
// development.
func getEnvironment() Environment {
	switch strings.ToLower(os.Getenv("ENVIRONMENT")) {
	case "production", "prod":
		return Production
	case "staging":
		return Staging
	default:
		return Development
	}
}

// Config is the full service configuration.
type Config struct {
	Environment Environment `yaml:"environment"`
	Server      Server      `yaml:"server"`
	Analysis    Analysis    `yaml:"analysis"`
	Ephemeris   Ephemeris   `yaml:"ephemeris"`
	Storage     Storage     `yaml:"storage"`
	Logging     Logging     `yaml:"logging"`
	Features    Features    `yaml:"features"`

	// LoadedFrom records which sources contributed, for startup logging.
	LoadedFrom []string `yaml:"-"`
}

// Server holds the HTTP listener settings.
type Server struct {
	Host            string   `yaml:"host"`
	Port            int      `yaml:"port"`
	ReadTimeout     Duration `yaml:"readTimeout"`
	WriteTimeout    Duration `yaml:"writeTimeout"`
	IdleTimeout     Duration `yaml:"idleTimeout"`
	RequestTimeout  Duration `yaml:"requestTimeout"`
	ShutdownTimeout Duration `yaml:"shutdownTimeout"`
}

// Analysis tunes the pattern-detection engines. The severity thresholds are
// configuration, not per-detector constants.
type Analysis struct {
	Thresholds dosha.Thresholds `yaml:"thresholds"`
}

// Ephemeris selects and tunes the planetary-position provider.
type Ephemeris struct {
	// Provider is "approximate" (built-in) or "remote".
	Provider       string   `yaml:"provider"`
	RemoteURL      string   `yaml:"remoteUrl"`
	RequestTimeout Duration `yaml:"requestTimeout"`
	Breaker        Breaker  `yaml:"breaker"`
}

// Breaker tunes the circuit breaker guarding the remote provider.
type Breaker struct {
	MaxRequests      uint32   `yaml:"maxRequests"`
	Interval         Duration `yaml:"interval"`
	OpenDuration     Duration `yaml:"openDuration"`
	FailureThreshold uint32   `yaml:"failureThreshold"`
}

// Storage tunes the in-memory chart store.
type Storage struct {
	ChartTTL        Duration `yaml:"chartTtl"`
	CleanupInterval Duration `yaml:"cleanupInterval"`
	MaxCharts       int      `yaml:"maxCharts"`
}

// Logging holds the zap logger settings.
type Logging struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Features contains feature flags.
type Features struct {
	EnableMetrics   bool `yaml:"enableMetrics"`
	EnableHotReload bool `yaml:"enableHotReload"`
}

// Validate rejects configurations the service cannot safely run with.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be 1-65535, got %d", c.Server.Port)
	}
	th := c.Analysis.Thresholds
	if !(0 < th.Mild && th.Mild < th.Moderate && th.Moderate < th.Severe && th.Severe <= 10) {
		return fmt.Errorf("analysis.thresholds must satisfy 0 < mild < moderate < severe <= 10, got %+v", th)
	}
	switch c.Ephemeris.Provider {
	case "approximate":
	case "remote":
		if c.Ephemeris.RemoteURL == "" {
			return fmt.Errorf("ephemeris.remoteUrl required when provider is remote")
		}
	default:
		return fmt.Errorf("ephemeris.provider must be approximate or remote, got %q", c.Ephemeris.Provider)
	}
	if c.Storage.ChartTTL <= 0 {
		return fmt.Errorf("storage.chartTtl must be positive, got %v", c.Storage.ChartTTL.Std())
	}
	if c.Storage.CleanupInterval <= 0 {
		return fmt.Errorf("storage.cleanupInterval must be positive, got %v", c.Storage.CleanupInterval.Std())
	}
	return nil
}

// IsDevelopment reports whether hot reload and other development affordances
// should be active.
func (c *Config) IsDevelopment() bool {
	return c.Environment == Development
}
