// seehuhn.de/go/sensorgrid - sensor grids for daylighting analysis
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package config loads grid generation settings from JSON files.
package config

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"seehuhn.de/go/sensorgrid"
)

// Config holds the settings of the sensorgrid command.
// Fields which are nil take their default value.
type Config struct {
	GridSize         *float64 `json:"grid_size,omitempty"`
	Height           *float64 `json:"height,omitempty"`
	Workers          *int     `json:"workers,omitempty"`
	MaxLatticePoints *int     `json:"max_lattice_points,omitempty"`
	Debug            *bool    `json:"debug,omitempty"`
}

// maxFileSize limits the size of configuration files.
const maxFileSize = 1 << 20

// Load reads a Config from a JSON file.  Fields omitted from the file keep
// their default values, so partial configs are fine.
func Load(path string) (*Config, error) {
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".json" {
		return nil, fmt.Errorf("config file must have .json extension, got %q", ext)
	}

	fileInfo, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	if fileInfo.Size() > maxFileSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d)", fileInfo.Size(), maxFileSize)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := &Config{}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Validate checks the values of all fields which are set.
func (c *Config) Validate() error {
	if c.GridSize != nil && (!(*c.GridSize > 0) || math.IsInf(*c.GridSize, 0)) {
		return fmt.Errorf("grid_size must be positive, got %g", *c.GridSize)
	}
	if c.Height != nil && (math.IsNaN(*c.Height) || math.IsInf(*c.Height, 0)) {
		return fmt.Errorf("height must be finite, got %g", *c.Height)
	}
	if c.Workers != nil && *c.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d", *c.Workers)
	}
	if c.MaxLatticePoints != nil && *c.MaxLatticePoints < 1 {
		return fmt.Errorf("max_lattice_points must be at least 1, got %d", *c.MaxLatticePoints)
	}
	return nil
}

func (c *Config) GetGridSize() float64 {
	if c.GridSize == nil {
		return sensorgrid.DefaultGridSize
	}
	return *c.GridSize
}

func (c *Config) GetHeight() float64 {
	if c.Height == nil {
		return sensorgrid.DefaultHeight
	}
	return *c.Height
}

func (c *Config) GetWorkers() int {
	if c.Workers == nil {
		return 1
	}
	return *c.Workers
}

func (c *Config) GetMaxLatticePoints() int {
	if c.MaxLatticePoints == nil {
		return sensorgrid.DefaultMaxLatticePoints
	}
	return *c.MaxLatticePoints
}

func (c *Config) GetDebug() bool {
	return c.Debug != nil && *c.Debug
}

// GridSpec returns the lattice settings.
func (c *Config) GridSpec() sensorgrid.GridSpec {
	return sensorgrid.GridSpec{GridSize: c.GetGridSize(), Height: c.GetHeight()}
}

// Generator returns a generator using the configured settings.
func (c *Config) Generator() *sensorgrid.Generator {
	g := sensorgrid.NewGenerator(c.GridSpec())
	g.Workers = c.GetWorkers()
	g.MaxLatticePoints = c.GetMaxLatticePoints()
	return g
}
