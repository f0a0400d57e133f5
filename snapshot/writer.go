/*
 * writer.go, part of fc-transport.
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

package snapshot

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// Writer writes snapshots, one line per grid cell. It implements
// fct.SnapshotWriter.
type Writer struct {
	f         *os.File //nil if the Writer doesn't own the destination
	h         io.WriteCloser
	b         *bufio.Writer
	filename  string
	writeable bool
	frames    int
}

// NewWriter creates the file name and returns a Writer for it. Files ending
// in .zst or .gz are compressed.
func NewWriter(name string) (*Writer, error) {
	f, err := os.Create(name)
	if err != nil {
		return nil, err
	}
	h, err := compressor(name, f)
	if err != nil {
		f.Close()
		return nil, &Error{"Can't start compression: " + err.Error(), name, 0, []string{"NewWriter"}, true}
	}
	return &Writer{f: f, h: h, b: bufio.NewWriter(h), filename: name, writeable: true}, nil
}

// NewStreamWriter returns a Writer that writes uncompressed text to w.
// Closing the Writer flushes it, but does not close w.
func NewStreamWriter(w io.Writer) *Writer {
	h := nopWriteCloser{w}
	return &Writer{h: h, b: bufio.NewWriter(h), writeable: true}
}

// WNext writes one snapshot: a line "time,x,v,rho" for each cell.
func (W *Writer) WNext(time float64, grid, velocity, density []float64) error {
	if !W.writeable {
		return &Error{StreamUnIniWrite, W.filename, 0, []string{"WNext"}, true}
	}
	if len(grid) != len(velocity) || len(grid) != len(density) {
		return &Error{fmt.Sprintf("%s: %d, %d, %d", MismatchedArrays, len(grid), len(velocity), len(density)), W.filename, 0, []string{"WNext"}, true}
	}
	for i, x := range grid {
		if _, err := fmt.Fprintf(W.b, "%e,%e,%e,%e\n", time, x, velocity[i], density[i]); err != nil {
			return &Error{err.Error(), W.filename, 0, []string{"WNext"}, true}
		}
	}
	W.frames++
	return nil
}

// Frames returns the number of snapshots written so far.
func (W *Writer) Frames() int {
	return W.frames
}

// Close flushes all pending data and closes the file. It is safe to
// call it more than once.
func (W *Writer) Close() error {
	if W == nil || !W.writeable {
		return nil
	}
	W.writeable = false
	err := W.b.Flush()
	if err2 := W.h.Close(); err == nil {
		err = err2
	}
	if W.f != nil {
		if err2 := W.f.Close(); err == nil {
			err = err2
		}
	}
	if err != nil {
		return &Error{"Can't close: " + err.Error(), W.filename, 0, []string{"Close"}, true}
	}
	return nil
}
