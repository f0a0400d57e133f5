/*
 * config.go, part of fc-transport.
 *
 * Copyright 2024 The fc-transport Authors
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package fct

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Config holds the parameters of a simulation.
type Config struct {
	// Grid parameters
	Cells     int     `toml:"cells" yaml:"cells"`           // unit: 1
	CellWidth float64 `toml:"cell_width" yaml:"cell_width"` // unit: m

	// Time parameters
	Steps      int     `toml:"steps" yaml:"steps"`             // unit: 1
	CourantMax float64 `toml:"courant_max" yaml:"courant_max"` // unit: 1

	// Initial pulse. Cells in [PulseStart, PulseEnd) get PulseDensity and
	// InitialVelocity, the rest are at rest and empty.
	InitialVelocity float64 `toml:"initial_velocity" yaml:"initial_velocity"` // unit: m s-1
	PulseStart      int     `toml:"pulse_start" yaml:"pulse_start"`           // unit: cell index
	PulseEnd        int     `toml:"pulse_end" yaml:"pulse_end"`               // unit: cell index
	PulseDensity    float64 `toml:"pulse_density" yaml:"pulse_density"`       // unit: kg m-3
}

// DefaultConfig returns the default parameters: a 1 km grid with a
// 100 m wide pulse moving at 10 m/s for 250 steps.
func DefaultConfig() *Config {
	return &Config{
		Cells:           1000,
		CellWidth:       1,
		Steps:           250,
		CourantMax:      0.4,
		InitialVelocity: 10,
		PulseStart:      50,
		PulseEnd:        150,
		PulseDensity:    25,
	}
}

// ParseConfig reads the configuration file whose path is given. The values
// in the file overwrite the defaults. Files ending in .yaml or .yml are read
// as YAML, everything else as TOML.
func ParseConfig(path string) (*Config, error) {
	conf := DefaultConfig()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		if err := yaml.Unmarshal(b, conf); err != nil {
			return nil, fmt.Errorf("ParseConfig: %s: %w", path, err)
		}
	default:
		if _, err := toml.DecodeFile(path, conf); err != nil {
			return nil, fmt.Errorf("ParseConfig: %s: %w", path, err)
		}
	}
	if err := conf.Validate(); err != nil {
		return nil, err
	}
	return conf, nil
}

// Validate returns an error if the configuration can't be simulated.
func (C *Config) Validate() error {
	switch {
	case C.Cells < 3:
		return fmt.Errorf("invalid config: at least 3 cells needed, got %d", C.Cells)
	case C.CellWidth <= 0:
		return fmt.Errorf("invalid config: cell width must be positive, got %g", C.CellWidth)
	case C.Steps < 0:
		return fmt.Errorf("invalid config: negative number of steps %d", C.Steps)
	case C.CourantMax <= 0:
		return fmt.Errorf("invalid config: Courant number must be positive, got %g", C.CourantMax)
	case C.InitialVelocity <= 0:
		return fmt.Errorf("invalid config: initial velocity must be positive, got %g", C.InitialVelocity)
	case C.PulseStart < 0 || C.PulseEnd > C.Cells || C.PulseStart > C.PulseEnd:
		return fmt.Errorf("invalid config: pulse [%d, %d) outside of the %d cell grid", C.PulseStart, C.PulseEnd, C.Cells)
	}
	return nil
}
