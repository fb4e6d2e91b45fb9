// Package config loads the settings shared by the voxel
// and axis commands.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"runtime"

	"github.com/pkg/errors"
	"github.com/unixpickle/model3d/model3d"
	"github.com/unixpickle/voxelaxis/axis"
	"github.com/unixpickle/voxelaxis/voxels"
)

const maxFileSize = 1 << 20

// Config holds pipeline settings. Fields missing from a
// config file keep their defaults.
type Config struct {
	// Dim is the world-space size of one voxel.
	Dim float64 `json:"dim"`

	// Threshold is the smallest raw density that is loaded
	// as an occupied cell.
	Threshold float64 `json:"threshold"`

	Origin [3]float64 `json:"origin"`

	// Sampling is "corner" or "center".
	Sampling string `json:"sampling"`

	Iterations int `json:"iterations"`

	// Workers is the number of snapping goroutines, or 0 to
	// use every CPU.
	Workers int `json:"workers"`

	// BoundedIndex enables bounding-sphere pruning of edges
	// during snapping.
	BoundedIndex bool `json:"bounded_index"`

	HideInside   bool `json:"hide_inside"`
	FixDiagonals bool `json:"fix_diagonals"`
}

// Default gets the default configuration.
func Default() *Config {
	return &Config{
		Dim:          1,
		Threshold:    voxels.DefaultThreshold,
		Sampling:     "corner",
		Iterations:   1,
		HideInside:   true,
		FixDiagonals: true,
	}
}

// Load reads a JSON config file on top of the defaults and
// validates it.
func Load(path string) (*Config, error) {
	path = filepath.Clean(path)
	if ext := filepath.Ext(path); ext != ".json" {
		return nil, errors.Errorf("load config: expected .json file, got %q", ext)
	}
	info, err := os.Stat(path)
	if err != nil {
		return nil, errors.Wrap(err, "load config")
	}
	if info.Size() > maxFileSize {
		return nil, errors.Errorf("load config: file too large (%d bytes)", info.Size())
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "load config")
	}
	cfg := Default()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrap(err, "load config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "load config")
	}
	return cfg, nil
}

// Validate checks that every setting is usable.
func (c *Config) Validate() error {
	if !(c.Dim > 0) {
		return errors.Errorf("dim must be positive, got %v", c.Dim)
	}
	if c.Threshold < 0 {
		return errors.Errorf("threshold must not be negative, got %v", c.Threshold)
	}
	if _, err := c.SampleMode(); err != nil {
		return err
	}
	if c.Iterations < 1 {
		return errors.Errorf("iterations must be at least 1, got %d", c.Iterations)
	}
	if c.Workers < 0 {
		return errors.Errorf("workers must not be negative, got %d", c.Workers)
	}
	return nil
}

// SampleMode parses Sampling.
func (c *Config) SampleMode() (voxels.SampleMode, error) {
	switch c.Sampling {
	case "", "corner":
		return voxels.CornerSampling, nil
	case "center":
		return voxels.CenterSampling, nil
	}
	return 0, errors.Errorf("unknown sampling mode %q", c.Sampling)
}

// LoadOptions gets the options for loading a grid.
func (c *Config) LoadOptions() voxels.LoadOptions {
	return voxels.LoadOptions{
		Dim:       c.Dim,
		Threshold: c.Threshold,
		Origin:    model3d.Coord3D{X: c.Origin[0], Y: c.Origin[1], Z: c.Origin[2]},
	}
}

// RefineOptions gets the options for refining a skeleton.
// The config should be valid.
func (c *Config) RefineOptions() axis.RefineOptions {
	mode, _ := c.SampleMode()
	workers := c.Workers
	if workers == 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	opts := axis.RefineOptions{
		Iterations: c.Iterations,
		Snapper:    axis.Snapper{Workers: workers},
		Rasterizer: voxels.Rasterizer{Sampling: mode},
	}
	if c.BoundedIndex {
		opts.Snapper.NewIndex = axis.NewBoundedIndex
	}
	return opts
}
