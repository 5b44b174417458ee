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

// Package metadata implements the document information dictionary and
// XMP metadata streams.
package metadata

import (
	"bytes"
	"time"

	"golang.org/x/text/language"
	"seehuhn.de/go/xmp"

	"seehuhn.de/go/prepress/pdf"
)

// Producer is the value of the /Producer entry in the document
// information dictionary.
const Producer = "seehuhn.de/go/prepress"

// PDF 2.0 sections: 14.3.3

// Info holds the document-level metadata.
type Info struct {
	Title    string
	Author   string
	Subject  string
	Keywords string

	// Creator is the name of the application which created the
	// original content.
	Creator string

	// CreationDate is the time the document was created.
	// If this is zero, no date is recorded.
	CreationDate time.Time
}

// IsZero reports whether no metadata is set.
func (info *Info) IsZero() bool {
	return info == nil || *info == Info{}
}

// AsDict returns the document information dictionary.
func (info *Info) AsDict() pdf.Dict {
	dict := pdf.Dict{
		"Producer": pdf.TextString(Producer),
	}
	if info == nil {
		return dict
	}
	setText := func(key pdf.Name, val string) {
		if val != "" {
			dict[key] = pdf.TextString(val)
		}
	}
	setText("Title", info.Title)
	setText("Author", info.Author)
	setText("Subject", info.Subject)
	setText("Keywords", info.Keywords)
	setText("Creator", info.Creator)
	if !info.CreationDate.IsZero() {
		dict["CreationDate"] = pdf.Date(info.CreationDate)
		dict["ModDate"] = pdf.Date(info.CreationDate)
	}
	return dict
}

// Packet returns an XMP packet holding the Dublin Core version of the
// metadata.
func (info *Info) Packet() (*xmp.Packet, error) {
	dc := &xmp.DublinCore{}
	if info.Title != "" {
		dc.Title.Set(language.Und, info.Title)
	}
	if info.Author != "" {
		dc.Creator.Append(xmp.NewProperName(info.Author))
	}
	if info.Subject != "" {
		dc.Description.Set(language.Und, info.Subject)
	}

	packet := xmp.NewPacket()
	if err := packet.Set(dc); err != nil {
		return nil, err
	}
	return packet, nil
}

// PDF 2.0 sections: 14.3.2

// Stream represents an XMP metadata stream.
type Stream struct {
	Data *xmp.Packet
}

// Embed writes the metadata stream to w, using the given reference.
// Metadata is normally stored uncompressed, so that it can be found by
// tools which do not understand PDF.
func (s *Stream) Embed(w *pdf.Writer, ref pdf.Reference, compress bool) error {
	buf := &bytes.Buffer{}
	err := s.Data.Write(buf, &xmp.PacketOptions{Pretty: true})
	if err != nil {
		return err
	}

	dict := pdf.Dict{
		"Type":    pdf.Name("Metadata"),
		"Subtype": pdf.Name("XML"),
	}
	stm, err := pdf.FlateStream(dict, buf.Bytes(), compress)
	if err != nil {
		return err
	}
	return w.Put(ref, stm)
}
