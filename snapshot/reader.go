/*
 * reader.go, part of fc-transport.
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
	"io"
	"iter"
	"math"
	"os"
	"slices"
	"sort"

	fct "github.com/raymenzel/fc-transport"
)

// Reader groups the records of a snapshot stream into frames, one per
// time step. It reads the stream once, front to back, keeping only the
// frame being built in memory.
type Reader struct {
	src      io.ReadCloser //closes the file too, if there is one
	h        *bufio.Reader
	filename string
	line     int

	tol     float64
	current float64
	seen    map[float64]struct{}
	sorted  []float64 //seen times in order, only kept if tol > 0

	x   []float64
	rho []float64

	readable bool
	ended    bool
}

// Option changes the behavior of a Reader.
type Option func(*Reader)

// WithTolerance makes the Reader consider a time value as already seen
// if it is within eps of a time seen before. The default, 0, requires
// exact equality.
func WithTolerance(eps float64) Option {
	return func(R *Reader) {
		R.tol = math.Abs(eps)
	}
}

// New opens a snapshot file for reading. Files ending in .zst or .gz are
// decompressed on the fly. The file stays open until the last frame is
// read, an error occurs, or Close is called.
func New(name string, opts ...Option) (*Reader, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	src, err := Decompress(name, f)
	if err != nil {
		return nil, &Error{"Can't start decompression: " + err.Error(), name, 0, []string{"New"}, true}
	}
	return newReader(src, name, opts), nil
}

// NewStreamReader returns a Reader for an uncompressed stream. Closing
// the Reader does not close r.
func NewStreamReader(r io.Reader, opts ...Option) *Reader {
	return newReader(io.NopCloser(r), "", opts)
}

func newReader(src io.ReadCloser, name string, opts []Option) *Reader {
	R := &Reader{
		src:      src,
		h:        bufio.NewReader(src),
		filename: name,
		seen:     make(map[float64]struct{}),
		x:        make([]float64, 0),
		rho:      make([]float64, 0),
		readable: true,
	}
	for _, o := range opts {
		o(R)
	}
	R.addSeen(R.current)
	return R
}

// Readable returns true if Next can be called on the Reader.
func (R *Reader) Readable() bool {
	return R.readable
}

// Next returns the next frame. When the stream is over, it returns an
// error that implements fct.LastFrameError. Any other error is critical:
// the Reader is closed and can't be used anymore.
//
// The last frame is always returned, even if it is empty (which only
// happens for an empty stream: a single empty frame at time 0).
func (R *Reader) Next() (*Frame, error) {
	if !R.readable {
		if R.ended {
			return nil, newLastFrameError(R.filename, "Next")
		}
		return nil, &Error{StreamUnIniRead, R.filename, 0, []string{"Next"}, true}
	}
	for {
		str, err := R.h.ReadString('\n')
		if err != nil && err != io.EOF {
			R.Close()
			return nil, &Error{err.Error(), R.filename, R.line + 1, []string{"Next"}, true}
		}
		if str == "" && err == io.EOF {
			return R.finish(), nil
		}
		R.line++
		rec, perr := ParseRecord(str)
		if perr != nil {
			R.Close()
			return nil, &Error{WrongFormat + ": " + perr.Error(), R.filename, R.line, []string{"Next"}, true}
		}
		if !R.isSeen(rec.Time) {
			f := R.seal()
			R.x = append(R.x, rec.X)
			R.rho = append(R.rho, rec.Rho)
			R.current = rec.Time
			R.addSeen(rec.Time)
			//if this was the last line, the next call gets EOF right away.
			return f, nil
		}
		R.x = append(R.x, rec.X)
		R.rho = append(R.rho, rec.Rho)
		if err == io.EOF {
			return R.finish(), nil
		}
	}
}

// Frames returns the remaining frames as a sequence. The Reader is
// closed when the sequence ends, whether it was exhausted, an error
// was yielded, or the caller stopped early.
func (R *Reader) Frames() iter.Seq2[*Frame, error] {
	return func(yield func(*Frame, error) bool) {
		defer R.Close()
		for {
			f, err := R.Next()
			if err != nil {
				if _, ok := err.(fct.LastFrameError); ok {
					return
				}
				yield(nil, errDecorate(err, "Frames"))
				return
			}
			if !yield(f, nil) {
				return
			}
		}
	}
}

// Close releases the file. It is safe to call it more than once.
func (R *Reader) Close() {
	if !R.readable {
		return
	}
	R.src.Close()
	R.readable = false
}

// Line returns the number of lines read so far.
func (R *Reader) Line() int {
	return R.line
}

//seal returns the frame being accumulated and starts a new, empty one.
func (R *Reader) seal() *Frame {
	f := &Frame{X: R.x, Rho: R.rho, Time: R.current}
	R.x = make([]float64, 0, len(f.X))
	R.rho = make([]float64, 0, len(f.Rho))
	return f
}

//finish seals the last frame and closes the Reader.
func (R *Reader) finish() *Frame {
	f := R.seal()
	R.ended = true
	R.Close()
	return f
}

func (R *Reader) isSeen(t float64) bool {
	if _, ok := R.seen[t]; ok || R.tol == 0 {
		return ok
	}
	i := sort.SearchFloat64s(R.sorted, t)
	if i < len(R.sorted) && math.Abs(R.sorted[i]-t) <= R.tol {
		return true
	}
	return i > 0 && math.Abs(R.sorted[i-1]-t) <= R.tol
}

func (R *Reader) addSeen(t float64) {
	R.seen[t] = struct{}{}
	if R.tol == 0 || math.IsNaN(t) {
		return
	}
	i := sort.SearchFloat64s(R.sorted, t)
	R.sorted = slices.Insert(R.sorted, i, t)
}
