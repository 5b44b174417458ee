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

package annotation

// Flags is the set of annotation flags.
//
// See section 12.5.3 of ISO 32000-2:2020.
type Flags uint16

const (
	// FlagHidden hides the annotation on screen and in print.
	FlagHidden Flags = 1 << 1

	// FlagPrint prints the annotation when the page is printed.
	FlagPrint Flags = 1 << 2

	// FlagNoZoom keeps the appearance size fixed under magnification.
	FlagNoZoom Flags = 1 << 3

	// FlagNoRotate keeps the appearance upright when the page is rotated.
	FlagNoRotate Flags = 1 << 4

	// FlagReadOnly prevents interaction with the user.
	FlagReadOnly Flags = 1 << 6

	// FlagLocked prevents deleting the annotation or changing its
	// properties.
	FlagLocked Flags = 1 << 7
)
