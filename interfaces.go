/*
 * interfaces.go, part of fc-transport.
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

// SnapshotWriter receives the state of the simulation once per time step.
// snapshot.Writer implements it.
type SnapshotWriter interface {
	//WNext writes one snapshot. grid, velocity and density have one
	//element per cell.
	WNext(time float64, grid, velocity, density []float64) error
}

//Errors

// Error is the interface for errors that all packages in this module implement. The Decorate method allows to add
// the name of each function the error goes through, without changing its type or wrapping it.
type Error interface {
	Error() string
	Decorate(string) []string //If passed an empty string, it just returns the current decoration.
}

// StreamError is the interface for errors in snapshot streams.
type StreamError interface {
	Error
	Critical() bool
	FileName() string
	Format() string
}

// LastFrameError is returned when a stream ends normally. It only exists
// so it can be told apart from other StreamErrors in a type switch.
type LastFrameError interface {
	StreamError
	NormalLastFrameTermination() //does nothing
}
