/*
 * reader_test.go, part of fc-transport.
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
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	fct "github.com/raymenzel/fc-transport"
	"gonum.org/v1/gonum/floats"
)

//readAll collects all the frames of a stream.
func readAll(Te *testing.T, input string, opts ...Option) []*Frame {
	Te.Helper()
	var frames []*Frame
	for f, err := range NewStreamReader(strings.NewReader(input), opts...).Frames() {
		if err != nil {
			Te.Fatal(err)
		}
		frames = append(frames, f)
	}
	return frames
}

func checkFrame(Te *testing.T, f *Frame, x, rho []float64, time float64) {
	Te.Helper()
	if f.Time != time || !floats.Equal(f.X, x) || !floats.Equal(f.Rho, rho) {
		Te.Errorf("got frame (%v, %v, %v), expected (%v, %v, %v)", f.X, f.Rho, f.Time, x, rho, time)
	}
	if f.Len() != len(f.Rho) {
		Te.Errorf("frame with %d positions and %d densities", len(f.X), len(f.Rho))
	}
}

func TestGrouping(Te *testing.T) {
	fmt.Println("Snapshot grouping test!")
	frames := readAll(Te, "0.0,10,0,5\n0.0,20,0,6\n0.1,10,0,7\n")
	if len(frames) != 2 {
		Te.Fatalf("got %d frames, expected 2", len(frames))
	}
	checkFrame(Te, frames[0], []float64{10, 20}, []float64{5, 6}, 0.0)
	checkFrame(Te, frames[1], []float64{10}, []float64{7}, 0.1)
}

func TestEmptyAndSingle(Te *testing.T) {
	frames := readAll(Te, "")
	if len(frames) != 1 {
		Te.Fatalf("empty input gave %d frames, expected 1", len(frames))
	}
	checkFrame(Te, frames[0], []float64{}, []float64{}, 0)

	//no trailing newline on purpose
	frames = readAll(Te, " 3.5 , 1, 2 ,4")
	if len(frames) != 2 {
		Te.Fatalf("single row gave %d frames, expected 2", len(frames))
	}
	checkFrame(Te, frames[0], []float64{}, []float64{}, 0)
	checkFrame(Te, frames[1], []float64{1}, []float64{4}, 3.5)
}

func TestSameValueDifferentText(Te *testing.T) {
	frames := readAll(Te, "2.0,1,0,1\n2.00,2,0,2\n2e0,3,0,3\n")
	if len(frames) != 2 {
		Te.Fatalf("got %d frames, expected 2", len(frames))
	}
	checkFrame(Te, frames[1], []float64{1, 2, 3}, []float64{1, 2, 3}, 2)
}

func TestExactEquality(Te *testing.T) {
	input := "0.3,1,0,1\n0.30000000000000004,2,0,2\n"
	frames := readAll(Te, input)
	if len(frames) != 3 {
		Te.Fatalf("got %d frames, expected 3 (no tolerance)", len(frames))
	}
	frames = readAll(Te, input, WithTolerance(1e-9))
	if len(frames) != 2 {
		Te.Fatalf("got %d frames, expected 2 with tolerance", len(frames))
	}
	checkFrame(Te, frames[1], []float64{1, 2}, []float64{1, 2}, 0.3)
}

//A time that was seen before goes into the current frame, not into a new one.
func TestSeenTimeReappears(Te *testing.T) {
	frames := readAll(Te, "1,1,0,1\n2,2,0,2\n1,3,0,3\n0,4,0,4\n")
	if len(frames) != 3 {
		Te.Fatalf("got %d frames, expected 3", len(frames))
	}
	checkFrame(Te, frames[0], []float64{}, []float64{}, 0)
	checkFrame(Te, frames[1], []float64{1}, []float64{1}, 1)
	checkFrame(Te, frames[2], []float64{2, 3, 4}, []float64{2, 3, 4}, 2)
}

func TestColumnsAndIdempotence(Te *testing.T) {
	var b strings.Builder
	var xs, rhos []float64
	times := []float64{0.5, 0.5, 1, 1, 1, 1.5, 2, 2}
	distinct := 5 //0 (synthetic), 0.5, 1, 1.5, 2
	for i, t := range times {
		x, rho := float64(10*i), float64(i)+0.25
		xs = append(xs, x)
		rhos = append(rhos, rho)
		fmt.Fprintf(&b, "%g, %g, 0, %g\n", t, x, rho)
	}
	first := readAll(Te, b.String())
	second := readAll(Te, b.String())
	if len(first) != distinct || len(second) != distinct {
		Te.Fatalf("got %d and %d frames, expected %d", len(first), len(second), distinct)
	}
	var gotx, gotrho []float64
	for i, f := range first {
		checkFrame(Te, second[i], f.X, f.Rho, f.Time)
		gotx = append(gotx, f.X...)
		gotrho = append(gotrho, f.Rho...)
	}
	if !floats.Equal(gotx, xs) || !floats.Equal(gotrho, rhos) {
		Te.Errorf("columns not reproduced: %v %v", gotx, gotrho)
	}
}

func TestMalformed(Te *testing.T) {
	cases := map[string]string{
		"non numeric":    "0,1,0,1\n1.0,x,0,5\n",
		"too few fields": "0,1,0\n",
		"too many":       "0,1,0,1,1\n",
		"blank line":     "0,1,0,1\n\n0,2,0,2\n",
		"hex time":       "0x1p-2,1,0,1\n",
		"signed hex rho": "0,1,0,-0X10\n",
	}
	for name, input := range cases {
		R := NewStreamReader(strings.NewReader(input))
		var err error
		for _, e := range R.Frames() {
			if e != nil {
				err = e
				break
			}
		}
		var serr *Error
		if !errors.As(err, &serr) {
			Te.Errorf("%s: expected a *Error, got %v", name, err)
			continue
		}
		if !serr.Critical() || serr.Line() == 0 {
			Te.Errorf("%s: bad error %v (line %d)", name, serr, serr.Line())
		}
		if R.Readable() {
			Te.Errorf("%s: reader still open after an error", name)
		}
	}
}

func TestNextAfterEnd(Te *testing.T) {
	R := NewStreamReader(strings.NewReader("0,1,0,1\n"))
	if _, err := R.Next(); err != nil {
		Te.Fatal(err)
	}
	_, err := R.Next()
	if _, ok := err.(fct.LastFrameError); !ok {
		Te.Fatalf("expected a LastFrameError, got %v", err)
	}
	if R.Readable() {
		Te.Error("reader still open after the last frame")
	}

	R = NewStreamReader(strings.NewReader("0,1,0,1\n"))
	R.Close()
	_, err = R.Next()
	if serr, ok := err.(fct.StreamError); !ok || !serr.Critical() {
		Te.Errorf("expected a critical error reading a closed stream, got %v", err)
	}
}

func TestEarlyBreakCloses(Te *testing.T) {
	name := filepath.Join(Te.TempDir(), "snap.csv")
	if err := os.WriteFile(name, []byte("0,1,0,1\n1,1,0,1\n2,1,0,1\n"), 0o644); err != nil {
		Te.Fatal(err)
	}
	R, err := New(name)
	if err != nil {
		Te.Fatal(err)
	}
	for f, err := range R.Frames() {
		if err != nil {
			Te.Fatal(err)
		}
		if f.Time == 1 {
			break
		}
	}
	if R.Readable() {
		Te.Error("file still open after leaving the loop")
	}
	if R.Line() != 3 {
		Te.Errorf("read %d lines, expected 3", R.Line())
	}
}

func TestMissingFile(Te *testing.T) {
	if _, err := New(filepath.Join(Te.TempDir(), "nope.csv")); !errors.Is(err, os.ErrNotExist) {
		Te.Errorf("expected a not-exist error, got %v", err)
	}
}
