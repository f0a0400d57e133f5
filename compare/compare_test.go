/*
 * compare_test.go, part of fc-transport.
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

package compare

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/raymenzel/fc-transport/snapshot"
)

const logA = `0.000000e+00,0.000000e+00,0.000000e+00,0.000000e+00
0.000000e+00,1.000000e+00,1.000000e+01,2.500000e+01
4.000000e-02,0.000000e+00,0.000000e+00,0.000000e+00
`

func TestLogsEqual(Te *testing.T) {
	n, err := Logs(strings.NewReader(logA), strings.NewReader(logA), DefaultTolerance)
	if err != nil {
		Te.Fatal(err)
	}
	if n != 3 {
		Te.Errorf("compared %d lines, expected 3", n)
	}
}

func TestLogsWithinTolerance(Te *testing.T) {
	b := strings.Replace(logA, "2.500000e+01", "2.500000001e+01", 1)
	if _, err := Logs(strings.NewReader(logA), strings.NewReader(b), DefaultTolerance); err != nil {
		Te.Error(err)
	}
}

func TestLogsMismatch(Te *testing.T) {
	b := strings.Replace(logA, "2.500000e+01", "2.510000e+01", 1)
	_, err := Logs(strings.NewReader(logA), strings.NewReader(b), DefaultTolerance)
	var merr *MismatchError
	if !errors.As(err, &merr) {
		Te.Fatalf("expected a *MismatchError, got %v", err)
	}
	if merr.Line != 2 || merr.Field != 3 || merr.A != 25 {
		Te.Errorf("unexpected mismatch %+v", merr)
	}
}

func TestLogsLengths(Te *testing.T) {
	short := strings.SplitAfter(logA, "\n")[0]
	if _, err := Logs(strings.NewReader(logA), strings.NewReader(short), DefaultTolerance); err == nil {
		Te.Error("expected an error for logs of different length")
	}
	if _, err := Logs(strings.NewReader(short), strings.NewReader(logA), DefaultTolerance); err == nil {
		Te.Error("expected an error for logs of different length")
	}
}

func TestLogsMalformed(Te *testing.T) {
	bad := "0,0,0\n"
	if _, err := Logs(strings.NewReader(bad), strings.NewReader(bad), DefaultTolerance); err == nil {
		Te.Error("expected an error for a line with 3 fields")
	}
	bad = "0,x,0,0\n"
	if _, err := Logs(strings.NewReader(bad), strings.NewReader(bad), DefaultTolerance); err == nil {
		Te.Error("expected an error for a non-numeric field")
	}
}

//Logs written by snapshot.Writer, one of them compressed.
func TestFiles(Te *testing.T) {
	dir := Te.TempDir()
	names := []string{filepath.Join(dir, "a.csv"), filepath.Join(dir, "b.csv.zst")}
	for _, name := range names {
		W, err := snapshot.NewWriter(name)
		if err != nil {
			Te.Fatal(err)
		}
		for _, t := range []float64{0, 0.04} {
			if err := W.WNext(t, []float64{0, 1, 2}, []float64{0, 10, 0}, []float64{0, 25, 0}); err != nil {
				Te.Fatal(err)
			}
		}
		if err := W.Close(); err != nil {
			Te.Fatal(err)
		}
	}
	n, err := Files(names[0], names[1], DefaultTolerance)
	if err != nil {
		Te.Fatal(err)
	}
	if n != 6 {
		Te.Errorf("compared %d lines, expected 6", n)
	}
	if _, err := Files(names[0], filepath.Join(dir, "missing.csv"), DefaultTolerance); err == nil {
		Te.Error("expected an error for a missing log")
	}
}
