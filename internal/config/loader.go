package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"jyotish-backend/internal/domain/dosha"
)

// Loader loads configuration from a layered hierarchy of sources. Priority,
// lowest to highest: built-in defaults, base.yaml, <environment>.yaml,
// local.yaml (development only), environment variables.
type Loader struct {
	basePath    string
	environment Environment
	sources     []string
}

// NewLoader creates a loader rooted at basePath ("config" when empty).
func NewLoader(basePath string, env Environment) *Loader {
	if basePath == "" {
		basePath = "config"
	}
	return &Loader{basePath: basePath, environment: env}
}

// Load resolves the full configuration and validates it.
func (l *Loader) Load() (*Config, error) {
	cfg := l.defaultConfig()
	l.sources = l.sources[:0] // Load may run again on hot reload
	l.sources = append(l.sources, "defaults")

	if err := l.loadFile("base", cfg); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("load base config: %w", err)
	}

	envFile := strings.ToLower(string(l.environment))
	if err := l.loadFile(envFile, cfg); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("load %s config: %w", envFile, err)
	}

	if l.environment == Development {
		if err := l.loadFile("local", cfg); err != nil && !os.IsNotExist(err) {
			fmt.Fprintf(os.Stderr, "warning: failed to load local config: %v\n", err)
		}
	}

	l.loadEnvironmentVariables(cfg)
	l.sources = append(l.sources, "environment")

	cfg.LoadedFrom = l.sources

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

// loadFile overlays one YAML file onto cfg. Missing files are not an error;
// the hierarchy tolerates absent layers.
func (l *Loader) loadFile(name string, cfg *Config) error {
	path := filepath.Join(l.basePath, name+".yaml")
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	if err := yaml.NewDecoder(file).Decode(cfg); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	l.sources = append(l.sources, path)
	return nil
}

// loadEnvironmentVariables overlays environment variables, the highest
// priority source.
func (l *Loader) loadEnvironmentVariables(cfg *Config) {
	if val := os.Getenv("SERVER_HOST"); val != "" {
		cfg.Server.Host = val
	}
	if val := os.Getenv("SERVER_PORT"); val != "" {
		if port, err := strconv.Atoi(val); err == nil && port > 0 {
			cfg.Server.Port = port
		}
	}
	if val := os.Getenv("EPHEMERIS_PROVIDER"); val != "" {
		cfg.Ephemeris.Provider = val
	}
	if val := os.Getenv("EPHEMERIS_REMOTE_URL"); val != "" {
		cfg.Ephemeris.RemoteURL = val
	}
	if val := os.Getenv("LOG_LEVEL"); val != "" {
		cfg.Logging.Level = val
	}
	if val := os.Getenv("ENABLE_METRICS"); val != "" {
		cfg.Features.EnableMetrics = parseBool(val)
	}
	if val := os.Getenv("ENABLE_HOT_RELOAD"); val != "" {
		cfg.Features.EnableHotReload = parseBool(val)
	}
	if val := os.Getenv("DOSHA_THRESHOLD_MILD"); val != "" {
		if f, err := strconv.ParseFloat(val, 64); err == nil {
			cfg.Analysis.Thresholds.Mild = f
		}
	}
	if val := os.Getenv("DOSHA_THRESHOLD_MODERATE"); val != "" {
		if f, err := strconv.ParseFloat(val, 64); err == nil {
			cfg.Analysis.Thresholds.Moderate = f
		}
	}
	if val := os.Getenv("DOSHA_THRESHOLD_SEVERE"); val != "" {
		if f, err := strconv.ParseFloat(val, 64); err == nil {
			cfg.Analysis.Thresholds.Severe = f
		}
	}
}

// defaultConfig returns the built-in defaults so the service runs without
// any configuration files at all.
func (l *Loader) defaultConfig() *Config {
	return &Config{
		Environment: l.environment,
		Server: Server{
			Host:            "0.0.0.0",
			Port:            8080,
			ReadTimeout:     Duration(15 * time.Second),
			WriteTimeout:    Duration(15 * time.Second),
			IdleTimeout:     Duration(60 * time.Second),
			RequestTimeout:  Duration(10 * time.Second),
			ShutdownTimeout: Duration(10 * time.Second),
		},
		Analysis: Analysis{
			Thresholds: dosha.DefaultThresholds(),
		},
		Ephemeris: Ephemeris{
			Provider:       "approximate",
			RequestTimeout: Duration(5 * time.Second),
			Breaker: Breaker{
				MaxRequests:      3,
				Interval:         Duration(60 * time.Second),
				OpenDuration:     Duration(30 * time.Second),
				FailureThreshold: 5,
			},
		},
		Storage: Storage{
			ChartTTL:        Duration(24 * time.Hour),
			CleanupInterval: Duration(10 * time.Minute),
			MaxCharts:       10000,
		},
		Logging: Logging{
			Level:  "info",
			Format: "json",
		},
		Features: Features{
			EnableMetrics:   true,
			EnableHotReload: l.environment == Development,
		},
	}
}

func parseBool(s string) bool {
	val, _ := strconv.ParseBool(s)
	return val
}

// Load loads configuration for the environment named by ENVIRONMENT, rooted
// at CONFIG_DIR (or ./config).
func Load() (*Config, error) {
	return NewLoader(os.Getenv("CONFIG_DIR"), getEnvironment()).Load()
}
