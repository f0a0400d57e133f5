/*
 * simulation.go, part of fc-transport.
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

	"gonum.org/v1/gonum/floats"
)

// Simulation is a 1D gas on a uniform grid. Density and momentum are
// transported with FluxCorrected, and the velocity is recovered from them
// after each step.
type Simulation struct {
	Grid     []float64 // cell centers [m]
	Density  []float64 // [kg m-3]
	Momentum []float64 // [kg m-2 s-1]
	Velocity []float64 // [m s-1]
	Time     float64   // [s]

	conf        *Config
	dt          float64
	densityNext []float64
	momentNext  []float64
}

// NewSimulation sets up the grid and initial conditions given in conf.
// If conf is nil, DefaultConfig is used.
func NewSimulation(conf *Config) (*Simulation, error) {
	if conf == nil {
		conf = DefaultConfig()
	}
	if err := conf.Validate(); err != nil {
		return nil, err
	}
	n := conf.Cells
	S := &Simulation{
		Grid:        make([]float64, n),
		Density:     make([]float64, n),
		Momentum:    make([]float64, n),
		Velocity:    make([]float64, n),
		conf:        conf,
		dt:          conf.CourantMax * conf.CellWidth / conf.InitialVelocity,
		densityNext: make([]float64, n),
		momentNext:  make([]float64, n),
	}
	for i := range S.Grid {
		S.Grid[i] = float64(i) * conf.CellWidth
	}
	for i := conf.PulseStart; i < conf.PulseEnd; i++ {
		S.Velocity[i] = conf.InitialVelocity
		S.Density[i] = conf.PulseDensity
	}
	floats.MulTo(S.Momentum, S.Density, S.Velocity)
	return S, nil
}

// Dt returns the time step [s].
func (S *Simulation) Dt() float64 {
	return S.dt
}

// Step advances the simulation by one time step.
func (S *Simulation) Step() error {
	w := S.conf.CellWidth
	if err := FluxCorrected(S.Density, S.Velocity, S.dt, w, S.densityNext); err != nil {
		return fmt.Errorf("Step: density: %w", err)
	}
	if err := FluxCorrected(S.Momentum, S.Velocity, S.dt, w, S.momentNext); err != nil {
		return fmt.Errorf("Step: momentum: %w", err)
	}
	copy(S.Density, S.densityNext)
	copy(S.Momentum, S.momentNext)
	for i, d := range S.Density {
		if d > 0 {
			S.Velocity[i] = S.Momentum[i] / d
		} else {
			S.Velocity[i] = 0
		}
	}
	S.Time += S.dt
	return nil
}

// Mass returns the total mass per unit area on the grid [kg m-2].
func (S *Simulation) Mass() float64 {
	return floats.Sum(S.Density) * S.conf.CellWidth
}

// Run writes the current state to w, then performs the configured number
// of steps, writing a snapshot after each one.
func (S *Simulation) Run(w SnapshotWriter) error {
	if err := w.WNext(S.Time, S.Grid, S.Velocity, S.Density); err != nil {
		return fmt.Errorf("Run: initial snapshot: %w", err)
	}
	for i := 0; i < S.conf.Steps; i++ {
		if err := S.Step(); err != nil {
			return fmt.Errorf("Run: step %d: %w", i+1, err)
		}
		if err := w.WNext(S.Time, S.Grid, S.Velocity, S.Density); err != nil {
			return fmt.Errorf("Run: snapshot %d: %w", i+1, err)
		}
	}
	return nil
}
