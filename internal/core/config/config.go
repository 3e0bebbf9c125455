// Package config holds the tunable knobs of the engine, loadable from YAML.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/draftline/draftline/internal/core/spatial"
)

// Config tunes the engine. Zero values fall back to the defaults from
// Default, so a partial YAML file only has to name what it changes.
type Config struct {
	// World sizes the spatial index.
	World WorldConfig `yaml:"world"`
	// Tolerances drive the approximation algorithms.
	Tolerances ToleranceConfig `yaml:"tolerances"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`
}

type WorldConfig struct {
	// Radius is the half-extent of the initial square world bound.
	Radius float64 `yaml:"radius"`
	// MaxDepth caps quadtree subdivision.
	MaxDepth int `yaml:"max_depth"`
	// NodeCapacity is how many records a quadtree node holds before
	// splitting.
	NodeCapacity int `yaml:"node_capacity"`
}

type ToleranceConfig struct {
	// Approximation bounds how far a polyline may deviate from the arc it
	// approximates.
	Approximation float64 `yaml:"approximation"`
	// Simplification is the Ramer-Douglas-Peucker threshold.
	Simplification float64 `yaml:"simplification"`
}

// Default returns the configuration the engine runs with when no file is
// given.
func Default() *Config {
	return &Config{
		World: WorldConfig{
			Radius:       spatial.DefaultWorldRadius,
			MaxDepth:     spatial.DefaultMaxDepth,
			NodeCapacity: spatial.DefaultNodeCapacity,
		},
		Tolerances: ToleranceConfig{
			Approximation:  0.1,
			Simplification: 0.5,
		},
		LogLevel: "info",
	}
}

// Load reads YAML config from r, filling unset fields from Default.
func Load(r io.Reader) (*Config, error) {
	c := Default()
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadFile reads YAML config from a file path.
func LoadFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer func() { _ = f.Close() }()
	return Load(f)
}

// Validate rejects values the engine can't run with.
func (c *Config) Validate() error {
	if c.World.Radius <= 0 {
		return fmt.Errorf("world radius must be positive, got %g", c.World.Radius)
	}
	if c.World.MaxDepth <= 0 {
		return fmt.Errorf("quadtree max depth must be positive, got %d", c.World.MaxDepth)
	}
	if c.World.NodeCapacity <= 0 {
		return fmt.Errorf("quadtree node capacity must be positive, got %d", c.World.NodeCapacity)
	}
	if c.Tolerances.Approximation <= 0 {
		return fmt.Errorf("approximation tolerance must be positive, got %g", c.Tolerances.Approximation)
	}
	if c.Tolerances.Simplification < 0 {
		return fmt.Errorf("simplification tolerance must not be negative, got %g", c.Tolerances.Simplification)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.LogLevel)
	}
	return nil
}

// SpaceOptions translates the world section into spatial index options.
func (c *Config) SpaceOptions() spatial.Options {
	return spatial.Options{
		WorldRadius:  c.World.Radius,
		MaxDepth:     c.World.MaxDepth,
		NodeCapacity: c.World.NodeCapacity,
	}
}
