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

package color

import (
	"bytes"
	"errors"
	"fmt"

	"seehuhn.de/go/icc"

	"seehuhn.de/go/prepress/pdf"
)

// OutputIntent describes the printing condition a document is prepared
// for.  The intent is written to the /OutputIntents array of the catalog.
//
// See section 14.11.5 of ISO 32000-2:2020.
type OutputIntent struct {
	// Subtype is the output intent subtype.  The default is /GTS_PDFX.
	Subtype pdf.Name

	// Identifier names the printing condition, for example "FOGRA39".
	Identifier string

	// Info (optional) is a human-readable description of the condition.
	Info string

	// N is the number of components of the profile's color space.
	N int

	profile []byte
}

// NewOutputIntent returns an output intent using the given ICC profile as
// the destination profile.
func NewOutputIntent(profile []byte, identifier string) (*OutputIntent, error) {
	if len(profile) == 0 {
		return nil, &pdf.ResourceError{Op: "output intent", Err: errors.New("missing profile")}
	}
	profile = bytes.Clone(profile)

	// icc.Decode clears some header fields while checking the profile ID
	p, err := icc.Decode(bytes.Clone(profile))
	if err != nil {
		return nil, &pdf.ResourceError{Op: "output intent", Err: err}
	}

	switch p.ColorSpace {
	case icc.GraySpace, icc.RGBSpace, icc.CMYKSpace:
		// pass
	default:
		return nil, &pdf.ResourceError{
			Op:  "output intent",
			Err: fmt.Errorf("unsupported color space %v", p.ColorSpace),
		}
	}

	return &OutputIntent{
		Subtype:    "GTS_PDFX",
		Identifier: identifier,
		N:          p.ColorSpace.NumComponents(),
		profile:    profile,
	}, nil
}

// Embed writes the output intent dictionary to w, as the object ref.
// The profile stream is written as a separate object.
func (oi *OutputIntent) Embed(w *pdf.Writer, ref pdf.Reference, compress bool) error {
	subtype := oi.Subtype
	if subtype == "" {
		subtype = "GTS_PDFX"
	}

	profileRef := w.Alloc()
	dict := pdf.Dict{
		"Type":                      pdf.Name("OutputIntent"),
		"S":                         subtype,
		"OutputConditionIdentifier": pdf.TextString(oi.Identifier),
		"DestOutputProfile":         profileRef,
	}
	if oi.Info != "" {
		dict["Info"] = pdf.TextString(oi.Info)
	}

	stm, err := pdf.FlateStream(pdf.Dict{"N": pdf.Integer(oi.N)}, oi.profile, compress)
	if err != nil {
		return err
	}

	err = w.Put(ref, dict)
	if err != nil {
		return err
	}
	return w.Put(profileRef, stm)
}
