// Package config provides configuration loading and management for the mock BFF server.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"gopkg.in/yaml.v3"

	"github.com/stacklok/model-registry-bff/internal/mocks"
	"github.com/stacklok/model-registry-bff/internal/models"
	"github.com/stacklok/model-registry-bff/internal/telemetry"
)

// EnvPrefix is the prefix of every environment variable read through viper
const EnvPrefix = "MRBFF"

// DefaultRegistryName is used when the configuration lists no registry
const DefaultRegistryName = "model-registry"

// registryNamePattern matches DNS-1123 labels, the naming rule of model
// registry services.
var registryNamePattern = regexp.MustCompile(`^[a-z0-9]([-a-z0-9]*[a-z0-9])?$`)

// Option defines the interface for configuration options
type Option func(*loaderConfig) error

// loaderConfig defines the configuration for loading a configuration
type loaderConfig struct {
	path string
}

// WithConfigPath loads configuration from a YAML file
func WithConfigPath(path string) Option {
	return func(cfg *loaderConfig) error {
		if path == "" {
			return fmt.Errorf("path is required")
		}

		// Resolve symlinks to prevent symlink attacks.
		// Note that this calls filepath.Clean internally.
		realPath, err := filepath.EvalSymlinks(path)
		if err != nil {
			return fmt.Errorf("failed to evaluate symlinks: %w", err)
		}

		if !filepath.IsAbs(realPath) {
			if !filepath.IsLocal(realPath) {
				return fmt.Errorf("path is not local or contains invalid traversal: %s", path)
			}
		}

		cfg.path = realPath
		return nil
	}
}

// Config represents the root configuration structure
type Config struct {
	// Registries are the model registries listed by the BFF.
	// Defaults to a single registry named "model-registry".
	Registries []models.ModelRegistry `yaml:"registries,omitempty"`

	// Fixtures selects the registry content that is served
	Fixtures *FixturesConfig `yaml:"fixtures,omitempty"`

	// Telemetry configures OpenTelemetry traces and metrics
	Telemetry *telemetry.Config `yaml:"telemetry,omitempty"`
}

// FixturesConfig defines where fixture data comes from
type FixturesConfig struct {
	// Path is a YAML fixture file, relative to the config file unless
	// absolute. The built-in fixture set is used when empty.
	Path string `yaml:"path,omitempty"`

	// Watch reloads the fixture file when it changes on disk
	Watch bool `yaml:"watch,omitempty"`
}

// WatchFixtures reports whether a fixture file is configured for reloading
func (c *Config) WatchFixtures() bool {
	return c.Fixtures != nil && c.Fixtures.Path != "" && c.Fixtures.Watch
}

// LoadConfig loads and parses configuration from a YAML file. Without a
// path the default configuration is returned.
func LoadConfig(opts ...Option) (*Config, error) {
	loaderCfg := &loaderConfig{}
	for _, opt := range opts {
		if err := opt(loaderCfg); err != nil {
			return nil, err
		}
	}

	var config Config
	if loaderCfg.path != "" {
		data, err := os.ReadFile(loaderCfg.path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		if err := yaml.Unmarshal(data, &config); err != nil {
			return nil, fmt.Errorf("failed to parse YAML config: %w", err)
		}

		// Relative fixture paths are relative to the config file.
		if config.Fixtures != nil && config.Fixtures.Path != "" && !filepath.IsAbs(config.Fixtures.Path) {
			config.Fixtures.Path = filepath.Join(filepath.Dir(loaderCfg.path), config.Fixtures.Path)
		}
	}

	if err := config.validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// GetRegistries returns the configured registries, or the default one
func (c *Config) GetRegistries() []models.ModelRegistry {
	if len(c.Registries) == 0 {
		return []models.ModelRegistry{{
			Name:        DefaultRegistryName,
			DisplayName: "Model Registry",
			Description: "Mock model registry",
		}}
	}
	return c.Registries
}

// LoadFixtures returns the fixture set selected by the configuration
func (c *Config) LoadFixtures() (*mocks.FixtureSet, error) {
	if c.Fixtures == nil || c.Fixtures.Path == "" {
		return mocks.DefaultFixtureSet(), nil
	}
	return mocks.LoadFixtures(c.Fixtures.Path)
}

// validate performs validation on the configuration
func (c *Config) validate() error {
	if c == nil {
		return fmt.Errorf("config cannot be nil")
	}

	registryNames := make(map[string]bool)
	for i, reg := range c.Registries {
		if reg.Name == "" {
			return fmt.Errorf("registries[%d]: name is required", i)
		}
		if !registryNamePattern.MatchString(reg.Name) {
			return fmt.Errorf("registries[%d]: name '%s' must be a lowercase DNS label", i, reg.Name)
		}
		if registryNames[reg.Name] {
			return fmt.Errorf("registries[%d]: duplicate registry name '%s'", i, reg.Name)
		}
		registryNames[reg.Name] = true
	}

	if c.Fixtures != nil && c.Fixtures.Watch && c.Fixtures.Path == "" {
		return fmt.Errorf("fixtures: watch requires a path")
	}

	if err := c.Telemetry.Validate(); err != nil {
		return fmt.Errorf("telemetry: %w", err)
	}

	return nil
}
