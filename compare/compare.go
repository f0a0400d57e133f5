/*
 * compare.go, part of fc-transport.
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

// Package compare checks that two snapshot logs hold the same numbers,
// line by line, within an absolute tolerance.
package compare

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/pkg/errors"
	"go-hep.org/x/hep/csvutil"
	"gonum.org/v1/gonum/floats"

	"github.com/raymenzel/fc-transport/snapshot"
)

// DefaultTolerance is the largest absolute difference accepted between two fields.
const DefaultTolerance = 1e-5

// MismatchError reports the first pair of fields that differ by more than
// the tolerance.
type MismatchError struct {
	Line  int // 1-based
	Field int // 0-based: time, x, v, rho
	A, B  float64
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("compare: floating point difference (%e != %e) on line %d, field %d", e.A, e.B, e.Line, e.Field)
}

func table(r io.Reader) *csvutil.Table {
	tbl := &csvutil.Table{
		Reader: csv.NewReader(bufio.NewReader(r)),
	}
	tbl.Reader.Comma = ','
	tbl.Reader.FieldsPerRecord = snapshot.NFields
	tbl.Reader.TrimLeadingSpace = true
	return tbl
}

func rowsErr(rows *csvutil.Rows, which string) error {
	if err := rows.Err(); err != nil && err != io.EOF {
		return errors.Wrapf(err, "compare: error while processing rows of log %s", which)
	}
	return nil
}

// Logs compares the logs read from a and b. It returns the number of lines
// compared, and an error if a line is malformed, the logs have a different
// number of lines, or two fields differ by more than tol (*MismatchError).
func Logs(a, b io.Reader, tol float64) (int, error) {
	ta, tb := table(a), table(b)
	defer ta.Close()
	defer tb.Close()

	ra, err := ta.ReadRows(0, -1)
	if err != nil {
		return 0, errors.Wrap(err, "compare: could not read rows of log a")
	}
	defer ra.Close()
	rb, err := tb.ReadRows(0, -1)
	if err != nil {
		return 0, errors.Wrap(err, "compare: could not read rows of log b")
	}
	defer rb.Close()

	va := make([]float64, snapshot.NFields)
	vb := make([]float64, snapshot.NFields)
	line := 0
	for {
		na, nb := ra.Next(), rb.Next()
		if !na || !nb {
			if err := rowsErr(ra, "a"); err != nil {
				return line, err
			}
			if err := rowsErr(rb, "b"); err != nil {
				return line, err
			}
			if na != nb {
				return line, errors.Errorf("compare: the logs have different numbers of lines (stopped after %d)", line)
			}
			return line, nil
		}
		line++
		if err := ra.Scan(&va[0], &va[1], &va[2], &va[3]); err != nil {
			return line, errors.Wrapf(err, "compare: could not scan line %d of log a", line)
		}
		if err := rb.Scan(&vb[0], &vb[1], &vb[2], &vb[3]); err != nil {
			return line, errors.Wrapf(err, "compare: could not scan line %d of log b", line)
		}
		if floats.Distance(va, vb, math.Inf(1)) <= tol {
			continue
		}
		for i := range va {
			if math.Abs(va[i]-vb[i]) > tol {
				return line, &MismatchError{Line: line, Field: i, A: va[i], B: vb[i]}
			}
		}
	}
}

// Files compares the logs in the files a and b, which can be compressed
// as snapshot files can.
func Files(a, b string, tol float64) (int, error) {
	fa, err := open(a)
	if err != nil {
		return 0, err
	}
	defer fa.Close()
	fb, err := open(b)
	if err != nil {
		return 0, err
	}
	defer fb.Close()
	return Logs(fa, fb, tol)
}

func open(name string) (io.ReadCloser, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, errors.Wrapf(err, "compare: could not open log %s", name)
	}
	return snapshot.Decompress(name, f)
}
