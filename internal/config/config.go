package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds all viewer configuration
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Auth    AuthConfig    `yaml:"auth"`
	Grid    GridConfig    `yaml:"grid"`
	Render  RenderConfig  `yaml:"render"`
	Logging LoggingConfig `yaml:"logging"`
}

// ServerConfig holds server-specific settings
type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
	// MaxShapeRadius caps the radius/extent a client may request in a
	// grid_shape message.
	MaxShapeRadius int `yaml:"max_shape_radius"`
}

// AuthConfig holds token authentication settings. With Enabled false
// the server accepts every connection.
type AuthConfig struct {
	Enabled bool   `yaml:"enabled"`
	Secret  string `yaml:"secret"`
	Issuer  string `yaml:"issuer"`
}

// GridConfig describes the grid the server exposes
type GridConfig struct {
	Shape       string  `yaml:"shape"` // hexagon, ring, spiral, rectangle, parallelogram, triangle
	Radius      int     `yaml:"radius"`
	Width       int     `yaml:"width"`
	Height      int     `yaml:"height"`
	Orientation string  `yaml:"orientation"` // pointy or flat
	Size        float64 `yaml:"size"`        // hex radius in pixels
	OriginX     float64 `yaml:"origin_x"`
	OriginY     float64 `yaml:"origin_y"`
}

// RenderConfig holds image output settings
type RenderConfig struct {
	Palette     string `yaml:"palette"` // flat, distance, terrain
	Background  string `yaml:"background"`
	Stroke      string `yaml:"stroke"`
	Labels      bool   `yaml:"labels"`
	Supersample int    `yaml:"supersample"`
	Seed        int64  `yaml:"seed"`
}

// LoggingConfig holds log output settings
type LoggingConfig struct {
	Level      string `yaml:"level"`  // debug, info, warn, error
	Format     string `yaml:"format"` // console or json
	File       string `yaml:"file"`   // optional rolling file sink
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	applyDefaults(&cfg)
	return &cfg, nil
}

// Default returns the configuration used when no config file exists.
func Default() *Config {
	var cfg Config
	applyDefaults(&cfg)
	return &cfg
}

// applyDefaults fills in zero-valued fields
func applyDefaults(cfg *Config) {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Server.MaxShapeRadius == 0 {
		cfg.Server.MaxShapeRadius = 64
	}
	if cfg.Grid.Shape == "" {
		cfg.Grid.Shape = "hexagon"
	}
	if cfg.Grid.Radius == 0 {
		cfg.Grid.Radius = 5
	}
	if cfg.Grid.Width == 0 {
		cfg.Grid.Width = 10
	}
	if cfg.Grid.Height == 0 {
		cfg.Grid.Height = 8
	}
	if cfg.Grid.Orientation == "" {
		cfg.Grid.Orientation = "pointy"
	}
	if cfg.Grid.Size == 0 {
		cfg.Grid.Size = 24
	}
	if cfg.Render.Palette == "" {
		cfg.Render.Palette = "flat"
	}
	if cfg.Render.Supersample == 0 {
		cfg.Render.Supersample = 2
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "console"
	}
	if cfg.Logging.MaxSizeMB == 0 {
		cfg.Logging.MaxSizeMB = 100
	}
	if cfg.Logging.MaxBackups == 0 {
		cfg.Logging.MaxBackups = 3
	}
	if cfg.Logging.MaxAgeDays == 0 {
		cfg.Logging.MaxAgeDays = 28
	}
}
