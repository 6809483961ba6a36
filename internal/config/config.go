// Package config provides the YAML configuration of the lvtda command line
// tool. Every field can be overridden by the matching command flag.
package config

import (
	"fmt"
	"math"
	"os"

	"github.com/katalvlaran/lvtda/tdaerr"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig indicates a configuration value outside its domain.
var ErrInvalidConfig = tdaerr.Kind(tdaerr.ErrInvalidParameter, "config: invalid configuration")

// Config holds all settings for the CLI.
type Config struct {
	Debug        bool              `yaml:"debug"`
	Workers      int               `yaml:"workers"`
	MaxSimplices int               `yaml:"max_simplices"`
	Input        InputConfig       `yaml:"input"`
	DBSCAN       DBSCANConfig      `yaml:"dbscan"`
	Persistence  PersistenceConfig `yaml:"persistence"`
	Mapper       MapperConfig      `yaml:"mapper"`
}

// InputConfig describes how point files are parsed.
type InputConfig struct {
	// Format is "csv", "json" or "" to infer from the file extension.
	Format    string `yaml:"format"`
	Header    bool   `yaml:"header"`
	Delimiter string `yaml:"delimiter"`
}

// DBSCANConfig holds clustering parameters.
type DBSCANConfig struct {
	Epsilon   float64 `yaml:"epsilon"`
	MinPoints int     `yaml:"min_points"`
}

// PersistenceConfig holds persistent homology parameters.
type PersistenceConfig struct {
	MaxDim int `yaml:"max_dim"`
	// MaxDist is the Rips threshold; unset means +Inf (YAML ".inf" also works).
	MaxDist         *float64 `yaml:"max_dist"`
	Representatives bool     `yaml:"representatives"`
}

// MaxDistOrDefault returns MaxDist, or +Inf when unset.
func (p *PersistenceConfig) MaxDistOrDefault() float64 {
	if p.MaxDist != nil {
		return *p.MaxDist
	}

	return math.Inf(1)
}

// MapperConfig holds Mapper parameters.
type MapperConfig struct {
	Resolution int     `yaml:"resolution"`
	Overlap    float64 `yaml:"overlap"`
	MinPoints  int     `yaml:"min_points"`
	// Lens is "x<k>" for coordinate k (e.g. "x0"), "pca" or "eccentricity".
	Lens string `yaml:"lens"`
	// NeighborFactor scales the median nearest-neighbor distance per interval.
	NeighborFactor float64 `yaml:"neighbor_factor"`
	// Epsilon, when positive, fixes the per-interval DBSCAN radius instead.
	Epsilon float64 `yaml:"epsilon"`
}

// Load reads and parses the config file at path. Keys absent from the file
// keep their defaults; keys present, zeros included, are taken as written.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Default returns a Config with every default applied.
func Default() *Config {
	var cfg Config
	ApplyDefaults(&cfg)

	return &cfg
}

// Validate checks value domains that defaults cannot repair.
func (c *Config) Validate() error {
	switch c.Input.Format {
	case "", "csv", "json":
	default:
		return fmt.Errorf("input.format %q: %w", c.Input.Format, ErrInvalidConfig)
	}
	if len([]rune(c.Input.Delimiter)) != 1 {
		return fmt.Errorf("input.delimiter %q must be one character: %w", c.Input.Delimiter, ErrInvalidConfig)
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers %d: %w", c.Workers, ErrInvalidConfig)
	}
	if c.MaxSimplices < 1 {
		return fmt.Errorf("max_simplices %d: %w", c.MaxSimplices, ErrInvalidConfig)
	}
	if c.Persistence.MaxDist != nil && (*c.Persistence.MaxDist < 0 || math.IsNaN(*c.Persistence.MaxDist)) {
		return fmt.Errorf("persistence.max_dist %g: %w", *c.Persistence.MaxDist, ErrInvalidConfig)
	}
	if c.DBSCAN.Epsilon < 0 || math.IsNaN(c.DBSCAN.Epsilon) {
		return fmt.Errorf("dbscan.epsilon %g: %w", c.DBSCAN.Epsilon, ErrInvalidConfig)
	}
	if c.DBSCAN.MinPoints < 1 {
		return fmt.Errorf("dbscan.min_points %d: %w", c.DBSCAN.MinPoints, ErrInvalidConfig)
	}
	if c.Persistence.MaxDim < 0 {
		return fmt.Errorf("persistence.max_dim %d: %w", c.Persistence.MaxDim, ErrInvalidConfig)
	}
	if c.Mapper.Resolution < 1 {
		return fmt.Errorf("mapper.resolution %d: %w", c.Mapper.Resolution, ErrInvalidConfig)
	}
	if !(c.Mapper.Overlap > 0 && c.Mapper.Overlap < 1) {
		return fmt.Errorf("mapper.overlap %g: %w", c.Mapper.Overlap, ErrInvalidConfig)
	}
	if c.Mapper.MinPoints < 1 {
		return fmt.Errorf("mapper.min_points %d: %w", c.Mapper.MinPoints, ErrInvalidConfig)
	}
	if !(c.Mapper.NeighborFactor > 0) || math.IsInf(c.Mapper.NeighborFactor, 0) {
		return fmt.Errorf("mapper.neighbor_factor %g: %w", c.Mapper.NeighborFactor, ErrInvalidConfig)
	}
	if c.Mapper.Epsilon < 0 || math.IsNaN(c.Mapper.Epsilon) {
		return fmt.Errorf("mapper.epsilon %g: %w", c.Mapper.Epsilon, ErrInvalidConfig)
	}
	if _, err := ParseLens(c.Mapper.Lens); err != nil {
		return err
	}

	return nil
}

// LensSpec is a parsed mapper.lens value.
type LensSpec struct {
	Kind       string // "coordinate", "pca" or "eccentricity"
	Coordinate int
}

// ParseLens parses "x<k>", "pca" or "eccentricity".
func ParseLens(s string) (LensSpec, error) {
	switch s {
	case "pca", "eccentricity":
		return LensSpec{Kind: s}, nil
	}
	var k int
	if n, err := fmt.Sscanf(s, "x%d", &k); err == nil && n == 1 && k >= 0 && fmt.Sprintf("x%d", k) == s {
		return LensSpec{Kind: "coordinate", Coordinate: k}, nil
	}

	return LensSpec{}, fmt.Errorf("mapper.lens %q: %w", s, ErrInvalidConfig)
}
