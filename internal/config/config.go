// Package config provides configuration loading for shoplist.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/Makepad-fr/shoplist/internal/catalog"
	"github.com/Makepad-fr/shoplist/internal/celebrate"
)

// Config represents the complete shoplist configuration
type Config struct {
	Shops       []catalog.Entry   `yaml:"shops"`
	Categories  []catalog.Entry   `yaml:"categories"`
	Celebration CelebrationConfig `yaml:"celebration"`
	// LenientLookup resolves unknown shop/category ids to an empty name
	// instead of rejecting the add.
	LenientLookup bool     `yaml:"lenient_lookup"`
	UI            UIConfig `yaml:"ui"`
}

// CelebrationConfig configures the completion notifier
type CelebrationConfig struct {
	// Delay is how long the celebration lasts (default: 5s)
	Delay time.Duration `yaml:"delay"`
	// CelebrateEmpty counts an empty list as complete
	CelebrateEmpty bool `yaml:"celebrate_empty"`
}

// UIConfig configures presentation
type UIConfig struct {
	// Theme is one of classic, neon, mono
	Theme string `yaml:"theme"`
	// Language is one of en, tr
	Language string `yaml:"language"`
}

var (
	themes    = map[string]bool{"classic": true, "neon": true, "mono": true}
	languages = map[string]bool{"en": true, "tr": true}
)

// DefaultConfig returns a Config with the built-in reference tables
func DefaultConfig() *Config {
	return &Config{
		Shops:      append([]catalog.Entry(nil), catalog.DefaultShops...),
		Categories: append([]catalog.Entry(nil), catalog.DefaultCategories...),
		Celebration: CelebrationConfig{
			Delay: celebrate.DefaultDelay,
		},
		UI: UIConfig{
			Theme:    "classic",
			Language: "en",
		},
	}
}

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	if _, err := c.Catalog(); err != nil {
		return err
	}
	if c.Celebration.Delay <= 0 {
		return fmt.Errorf("celebration.delay must be positive, got %s", c.Celebration.Delay)
	}
	if !themes[c.UI.Theme] {
		return fmt.Errorf("ui.theme: unknown theme %q", c.UI.Theme)
	}
	if !languages[c.UI.Language] {
		return fmt.Errorf("ui.language: unknown language %q", c.UI.Language)
	}
	return nil
}

// Catalog builds the immutable reference tables
func (c *Config) Catalog() (catalog.Catalog, error) {
	return catalog.New(c.Shops, c.Categories)
}

// LoadFromFile loads configuration from a YAML file on top of the defaults
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := &Config{}
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// SaveToFile saves configuration to a YAML file
func (c *Config) SaveToFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Merge overlays the set values of other onto c. Reference tables are
// replaced as a whole, never merged entry by entry.
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}

	if len(other.Shops) > 0 {
		c.Shops = append([]catalog.Entry(nil), other.Shops...)
	}
	if len(other.Categories) > 0 {
		c.Categories = append([]catalog.Entry(nil), other.Categories...)
	}

	if other.Celebration.Delay != 0 {
		c.Celebration.Delay = other.Celebration.Delay
	}
	if other.Celebration.CelebrateEmpty {
		c.Celebration.CelebrateEmpty = true
	}
	if other.LenientLookup {
		c.LenientLookup = true
	}

	if other.UI.Theme != "" {
		c.UI.Theme = other.UI.Theme
	}
	if other.UI.Language != "" {
		c.UI.Language = other.UI.Language
	}
}
