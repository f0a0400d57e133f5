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

/*Package snapshot reads and writes the snapshot files produced by the
simulation, and groups their rows into per-time-step frames.

******************** File format   ***************************************************

A snapshot file is plain text (or plain text compressed with zstd, extension .zst,
or gzip, extension .gz). It has no header.

Each line holds one record: 4 numbers separated by commas, in this order:

	time, x, v, rho

the simulation time [s], the position of the cell center [m], the velocity [m s-1] and
the density [kg m-3]. Whitespace around each number is ignored. Hexadecimal floats
(0x1p-2) are rejected. The writer in this package
uses the C "%e" format for all 4 numbers.

The rows for one time step are written contiguously. A new time step starts with the
first row whose time has not been seen before in the file.

***************************************************************************************************

Grouping compares times for exact equality of the parsed float64, so "2.0" and
"2.00" belong to the same frame, but "0.30000000000000004" and "0.3" don't.
This is a known limitation: producers that accumulate rounding noise in the
time column should use WithTolerance.*/
package snapshot
