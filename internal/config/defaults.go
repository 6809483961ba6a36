package config

import (
	"runtime"

	"github.com/katalvlaran/lvtda/mapper"
	"github.com/katalvlaran/lvtda/rips"
)

// ApplyDefaults sets default values for any zero values in cfg. Load does
// not call it: an explicit zero in a file is kept.
func ApplyDefaults(cfg *Config) {
	if cfg.Workers == 0 {
		cfg.Workers = runtime.GOMAXPROCS(0)
	}
	if cfg.MaxSimplices == 0 {
		cfg.MaxSimplices = rips.DefaultMaxSimplices
	}
	if cfg.Input.Delimiter == "" {
		cfg.Input.Delimiter = ","
	}
	if cfg.DBSCAN.Epsilon == 0 {
		cfg.DBSCAN.Epsilon = 0.5
	}
	if cfg.DBSCAN.MinPoints == 0 {
		cfg.DBSCAN.MinPoints = 5
	}
	if cfg.Persistence.MaxDim == 0 {
		cfg.Persistence.MaxDim = 1
	}
	if cfg.Mapper.Resolution == 0 {
		cfg.Mapper.Resolution = 10
	}
	if cfg.Mapper.Overlap == 0 {
		cfg.Mapper.Overlap = 0.3
	}
	if cfg.Mapper.MinPoints == 0 {
		cfg.Mapper.MinPoints = 1
	}
	if cfg.Mapper.Lens == "" {
		cfg.Mapper.Lens = "x0"
	}
	if cfg.Mapper.NeighborFactor == 0 {
		cfg.Mapper.NeighborFactor = mapper.DefaultNeighborFactor
	}
}
