package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the user-editable overlay configuration.
type Config struct {
	Animation string        `yaml:"animation"`
	Window    WindowConfig  `yaml:"window"`
	Search    SearchConfig  `yaml:"search"`
	Sound     SoundConfig   `yaml:"sound"`
	History   HistoryConfig `yaml:"history"`
}

type WindowConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
}

type SearchConfig struct {
	// Command is the argv of the search process. The query is appended as the last argument.
	Command []string      `yaml:"command"`
	TopK    int           `yaml:"topK"`
	Timeout time.Duration `yaml:"timeout"`
}

type SoundConfig struct {
	// Warp is an optional wav/mp3/flac file played on every search.
	Warp string `yaml:"warp"`
}

type HistoryConfig struct {
	Limit int `yaml:"limit"`
}

// Default returns the configuration used when no file is present.
// Animation is left empty so the factory falls back with a warning.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Width:  WindowWidth,
			Height: WindowHeight,
		},
		Search: SearchConfig{
			Command: []string{"semantic-search"},
			TopK:    5,
			Timeout: 10 * time.Second,
		},
		History: HistoryConfig{Limit: 20},
	}
}

// Load reads a YAML configuration file. Fields missing from the file keep
// their default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	cfg.Validate()
	return cfg, nil
}

// LoadOrDefault is Load, falling back to Default when the file is missing or broken.
func LoadOrDefault(path string) *Config {
	cfg, err := Load(path)
	if err != nil {
		log.Printf("[Config] Warning: %v (using defaults)", err)
		return Default()
	}
	log.Printf("[Config] Loaded %s", path)
	return cfg
}

// Validate replaces out-of-range values with defaults.
func (c *Config) Validate() {
	def := Default()
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		log.Printf("[Config] Warning: invalid window size %dx%d", c.Window.Width, c.Window.Height)
		c.Window.Width, c.Window.Height = def.Window.Width, def.Window.Height
	}
	if len(c.Search.Command) == 0 {
		c.Search.Command = def.Search.Command
	}
	if c.Search.TopK <= 0 {
		log.Printf("[Config] Warning: invalid search.topK %d", c.Search.TopK)
		c.Search.TopK = def.Search.TopK
	}
	if c.Search.Timeout <= 0 {
		c.Search.Timeout = def.Search.Timeout
	}
	if c.History.Limit <= 0 {
		c.History.Limit = def.History.Limit
	}
}
