/*
 * transport.go, part of fc-transport.
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
	"math"
)

// number of ghost cells past the right boundary
const ghostCells = 3

// FluxCorrected transports the quantity u with the cell-centered velocity v
// over one time step dt, on a grid with cells of width dx, and puts the result
// in dst. It follows Boris, J. P., & Book, D. L. (1976). Solution of continuity
// equations by the method of flux-corrected transport. Controlled Fusion, 85-129.
// Both boundaries are fixed. dst can be the same slice as u.
func FluxCorrected(u, v []float64, dt, dx float64, dst []float64) error {
	n := len(u)
	if n < 3 {
		return fmt.Errorf("FluxCorrected: at least 3 cells needed, got %d", n)
	}
	if len(v) != n || len(dst) != n {
		return fmt.Errorf("FluxCorrected: mismatched lengths u:%d v:%d dst:%d", n, len(v), len(dst))
	}
	if dx <= 0 {
		return fmt.Errorf("FluxCorrected: cell width must be positive, got %g", dx)
	}

	//nondimensional transport coefficients at the cell interfaces.
	eps := make([]float64, n+1)
	eps[0] = v[0] * dt / dx
	eps[n] = v[n-1] * dt / dx
	for i := 1; i < n; i++ {
		eps[i] = 0.5 * (v[i] + v[i-1]) * dt / dx
	}

	//diffusion and antidiffusion coefficients.
	nu := make([]float64, n+1)
	mu := make([]float64, n+1)
	for i, e := range eps {
		e2 := e * e
		nu[i] = (1 + 2*e2) / 6
		mu[i] = (1 - e2) / 6
	}

	//transported and diffused values (eq. 14). The first and last cells
	//are fixed, and the ghost cells copy the last one.
	ut := make([]float64, n+ghostCells)
	ut[0] = u[0]
	for i := n - 1; i < len(ut); i++ {
		ut[i] = u[n-1]
	}
	for i := 1; i <= n-2; i++ {
		ut[i] = u[i] -
			0.5*(eps[i+1]*(u[i+1]+u[i])-eps[i]*(u[i]+u[i-1])) +
			(nu[i+1]*(u[i+1]-u[i]) - nu[i]*(u[i]-u[i-1]))
	}

	//raw antidiffusive fluxes (eq. 18).
	phi := make([]float64, n+1)
	for i := 1; i < n; i++ {
		phi[i] = mu[i] * (ut[i] - ut[i-1])
	}

	//corrected fluxes (eq. 20). The two leftmost ones always end up being zero.
	pt := make([]float64, n+1)
	pt[0] = limitFlux(phi[0], math.Min(ut[1]-ut[0], 0), 1)
	pt[1] = limitFlux(phi[1], math.Min(ut[2]-ut[1], 0), 1)
	for i := 1; i < n; i++ {
		s := 1.0
		if ut[i+1] < ut[i] {
			s = -1.0
		}
		bound := math.Min(s*(ut[i+2]-ut[i+1]), s*(ut[i]-ut[i-1]))
		pt[i+1] = limitFlux(phi[i+1], bound, s)
	}

	//indicated antidiffusion (eq. 19).
	for i := 0; i < n; i++ {
		dst[i] = ut[i] - pt[i+1] + pt[i]
	}
	return nil
}

// limitFlux returns s*max(0, min(|phi|, bound)).
func limitFlux(phi, bound, s float64) float64 {
	return s * math.Max(0, math.Min(math.Abs(phi), bound))
}
