/*
 * record.go, part of fc-transport.
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
	"fmt"
	"strconv"
	"strings"
)

// NFields is the number of fields in each line of a snapshot file.
const NFields = 4

// Record is one line of a snapshot file.
type Record struct {
	Time float64
	X    float64
	V    float64 //not used for plotting
	Rho  float64
}

// ParseRecord parses one line of a snapshot file. The line may still
// contain its trailing newline.
func ParseRecord(line string) (Record, error) {
	var r Record
	fields := strings.Split(line, ",")
	if len(fields) != NFields {
		return r, fmt.Errorf("Ill formated snapshot line: %d fields, expected %d: %q", len(fields), NFields, strings.TrimSpace(line))
	}
	dest := [NFields]*float64{&r.Time, &r.X, &r.V, &r.Rho}
	for i, v := range fields {
		v = strings.TrimSpace(v)
		if isHex(v) {
			return r, fmt.Errorf("Can't parse field %d (%q): hexadecimal numbers are not allowed", i, v)
		}
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return r, fmt.Errorf("Can't parse field %d (%q): %w", i, v, err)
		}
		*dest[i] = f
	}
	return r, nil
}

//isHex reports whether v has a 0x prefix, after an optional sign.
//ParseFloat would take it as a hexadecimal float.
func isHex(v string) bool {
	v = strings.TrimLeft(v, "+-")
	return len(v) > 1 && v[0] == '0' && (v[1] == 'x' || v[1] == 'X')
}

// Frame contains the positions and densities of all the records that
// share one time value.
type Frame struct {
	X    []float64
	Rho  []float64
	Time float64
}

// Len returns the number of points in the frame.
func (F *Frame) Len() int {
	return len(F.X)
}

// XY returns the position and density of the ith point,
// so a Frame can be given directly to gonum/plot plotters.
func (F *Frame) XY(i int) (float64, float64) {
	return F.X[i], F.Rho[i]
}
