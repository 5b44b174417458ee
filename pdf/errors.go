// seehuhn.de/go/prepress - composing print-ready PDF files
// Copyright (C) 2025  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package pdf

import (
	"fmt"
	"math"
)

// StateError indicates that an operation was used outside of the context
// where it is valid, for example showing text outside a text object or
// modifying a document after it has been finalized.
type StateError struct {
	Op  string
	Msg string
}

func (err *StateError) Error() string {
	return err.Op + ": " + err.Msg
}

// StateErrorf returns a new StateError for the given operation.
func StateErrorf(op string, format string, args ...any) error {
	return &StateError{Op: op, Msg: fmt.Sprintf(format, args...)}
}

// GeometryError indicates degenerate dimensions, for example a zero or
// negative width where a positive value is required.
type GeometryError struct {
	Op  string
	Msg string
}

func (err *GeometryError) Error() string {
	return err.Op + ": invalid geometry: " + err.Msg
}

// CheckPositive returns a GeometryError unless x is strictly positive.
// NaN values are rejected.
func CheckPositive(op, name string, x float64) error {
	if x > 0 && !math.IsInf(x, 1) {
		return nil
	}
	return &GeometryError{Op: op, Msg: fmt.Sprintf("%s must be positive, got %g", name, x)}
}

// ResourceError indicates that a font, image or other resource could not be
// loaded or used.
type ResourceError struct {
	Op   string
	Path string // optional
	Err  error
}

func (err *ResourceError) Error() string {
	msg := err.Op
	if err.Path != "" {
		msg += " " + err.Path
	}
	if err.Err != nil {
		msg += ": " + err.Err.Error()
	}
	return msg
}

func (err *ResourceError) Unwrap() error {
	return err.Err
}

// IOError indicates a failure of the underlying storage.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (err *IOError) Error() string {
	msg := err.Op
	if err.Path != "" {
		msg += " " + err.Path
	}
	return msg + ": " + err.Err.Error()
}

func (err *IOError) Unwrap() error {
	return err.Err
}
