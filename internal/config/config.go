package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"workshoplist/internal/eventbus"
)

// FileName is the per-directory configuration file
const FileName = ".workshoplist.toml"

// Default page setup
const (
	DefaultPerPage     = 8
	DefaultPrevious    = "Previous"
	DefaultNext        = "Next"
	DefaultContainer   = "workshoplist"
	DefaultAnimationMS = 400
	DefaultLogFile     = "workshoplist.log"
)

// Config represents the application configuration
type Config struct {
	Version      int    `toml:"version"`
	Catalog      string `toml:"catalog"`        // workshop catalog file or posts directory
	PerPage      int    `toml:"per_page"`
	Previous     string `toml:"previous_label"`
	Next         string `toml:"next_label"`
	Container    string `toml:"container"`
	AnimationMS  int    `toml:"animation_ms"`
	FilterOnType bool   `toml:"filter_on_type"` // run a filter pass on every keystroke
	LogFile      string `toml:"log_file"`
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
}

// configService is the concrete implementation
type configService struct {
	bus      eventbus.EventBus
	filePath string
}

// NewConfigService creates a config service rooted at the user config directory
func NewConfigService() ConfigService {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}

	return &configService{
		filePath: filepath.Join(configDir, "workshoplist", "config.toml"),
	}
}

// NewConfigServiceWithBus creates a config service with event bus support
func NewConfigServiceWithBus(bus eventbus.EventBus) ConfigService {
	cs := NewConfigService().(*configService)
	cs.bus = bus
	return cs
}

// Load loads the configuration from the user config file, falling back to
// defaults when the file does not exist
func (cs *configService) Load() (*Config, error) {
	if _, err := os.Stat(cs.filePath); errors.Is(err, os.ErrNotExist) {
		return DefaultConfig(), nil
	}

	cfg, err := cs.LoadFromPath(cs.filePath)
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save saves the configuration to the user config file
func (cs *configService) Save(config *Config) error {
	return cs.SaveToPath(config, cs.filePath)
}

// LoadFromPath loads configuration from a specific path. Keys missing from
// the file keep their default values.
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("config file not found: %s", path)
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	// Relative catalog paths are resolved against the config file location
	if cfg.Catalog != "" && !filepath.IsAbs(cfg.Catalog) {
		cfg.Catalog = filepath.Join(filepath.Dir(path), cfg.Catalog)
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{Path: path})
	}

	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	if err := enc.Encode(config); err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate checks values that would break pagination or animation
func (c *Config) Validate() error {
	if c.PerPage <= 0 {
		return fmt.Errorf("per_page must be positive, got %d", c.PerPage)
	}
	if c.AnimationMS < 0 {
		return fmt.Errorf("animation_ms must not be negative, got %d", c.AnimationMS)
	}
	return nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version:     1,
		PerPage:     DefaultPerPage,
		Previous:    DefaultPrevious,
		Next:        DefaultNext,
		Container:   DefaultContainer,
		AnimationMS: DefaultAnimationMS,
		LogFile:     DefaultLogFile,
	}
}

// Resolve picks the configuration for a run: an explicit path wins, then
// FileName in dir, then the user config file, then defaults
func Resolve(svc ConfigService, explicit, dir string) (*Config, error) {
	if explicit != "" {
		return svc.LoadFromPath(explicit)
	}

	local := filepath.Join(dir, FileName)
	if _, err := os.Stat(local); err == nil {
		return svc.LoadFromPath(local)
	}

	return svc.Load()
}
