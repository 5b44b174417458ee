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

package content

import (
	"maps"
	"slices"

	"seehuhn.de/go/prepress/pdf"
)

// Resources records the named resources a content stream refers to.
type Resources struct {
	Font    map[pdf.Name]bool
	XObject map[pdf.Name]bool
}

// AddFont records the use of a font resource.
func (r *Resources) AddFont(name pdf.Name) {
	if r.Font == nil {
		r.Font = make(map[pdf.Name]bool)
	}
	r.Font[name] = true
}

// AddXObject records the use of an XObject resource.
func (r *Resources) AddXObject(name pdf.Name) {
	if r.XObject == nil {
		r.XObject = make(map[pdf.Name]bool)
	}
	r.XObject[name] = true
}

// Merge adds all resources from other to r.
func (r *Resources) Merge(other *Resources) {
	if other == nil {
		return
	}
	for name := range other.Font {
		r.AddFont(name)
	}
	for name := range other.XObject {
		r.AddXObject(name)
	}
}

// FontNames returns the font resource names in sorted order.
func (r *Resources) FontNames() []pdf.Name {
	return slices.Sorted(maps.Keys(r.Font))
}

// XObjectNames returns the XObject resource names in sorted order.
func (r *Resources) XObjectNames() []pdf.Name {
	return slices.Sorted(maps.Keys(r.XObject))
}
