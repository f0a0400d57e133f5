/*
 * errors.go, part of fc-transport.
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

	fct "github.com/raymenzel/fc-transport"
)

//errDecorate adds the caller's name to err if it implements fct.Error,
//and returns it.
func errDecorate(err error, caller string) error {
	if err2, ok := err.(fct.Error); ok {
		err2.Decorate(caller)
	}
	return err
}

//Error is the general structure for snapshot stream errors. It fullfills fct.Error and fct.StreamError
type Error struct {
	message  string
	filename string //the file that has problems, or empty string if none.
	line     int    //1-based line number, 0 if the error is not about a line.
	deco     []string
	critical bool
}

func (err *Error) Error() string {
	if err.line > 0 {
		return fmt.Sprintf("snapshot file %s line %d error: %s", err.filename, err.line, err.message)
	}
	return fmt.Sprintf("snapshot file %s error: %s", err.filename, err.message)
}

//Decorate Adds new information to the error
func (err *Error) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

//Filename returns the file to which the failing stream was associated
func (err *Error) FileName() string { return err.filename }

//Line returns the line where the error was found, or 0.
func (err *Error) Line() int { return err.line }

//Format returns the format of the file (always "snapshot") associated to the error
func (err *Error) Format() string { return "snapshot" }

//Critical returns true if the error is critical, false otherwise
func (err *Error) Critical() bool { return err.critical }

const (
	StreamUnIniRead  = "Snapshot stream uninitialized to read"
	StreamUnIniWrite = "Snapshot stream uninitialized to write"
	WrongFormat      = "Wrong format in the snapshot line"
	MismatchedArrays = "Grid, velocity and density have different lengths"
)

//lastFrameError implements fct.LastFrameError
type lastFrameError struct {
	deco     []string
	fileName string
}

//NormalLastFrameTermination does nothing
func (E *lastFrameError) NormalLastFrameTermination() {}

func (E *lastFrameError) FileName() string { return E.fileName }

func (E *lastFrameError) Error() string { return "EOF" }

func (E *lastFrameError) Critical() bool { return false }

func (E *lastFrameError) Format() string { return "snapshot" }

func (E *lastFrameError) Decorate(deco string) []string {
	if deco != "" {
		E.deco = append(E.deco, deco)
	}
	return E.deco
}

func newLastFrameError(filename string, caller string) *lastFrameError {
	e := new(lastFrameError)
	e.fileName = filename
	e.deco = []string{caller}
	return e
}
