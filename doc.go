/*
 * doc.go, part of fc-transport.
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

/*Package fct is the main package of fc-transport. It provides a one-dimensional
flux-corrected transport solver, a small gas simulation built on it, and the
interfaces shared by the snapshot, animate and compare packages.



	**fc-transport Capabilities**


    Transports a quantity on a uniform 1D grid with the flux-corrected
	method of Boris and Book (1976): a transport and diffusion stage
	followed by a limited antidiffusion stage, so no new extrema appear.

    Advects a density/momentum pulse and writes one snapshot per time step
	(see the snapshot package for the file format).

    Reads snapshot files as a lazy sequence of per-time-step frames, and
	writes them back, optionally compressed with zstd or gzip (package snapshot).

    Renders the frames as density vs. position line plots and assembles them
	into an animated GIF (package animate, uses gonum/plot).

    Compares two snapshot logs within a tolerance (package compare).


Simulation parameters can be read from TOML or YAML files (see Config).*/
package fct
