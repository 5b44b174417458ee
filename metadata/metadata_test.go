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

package metadata

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"seehuhn.de/go/xmp"

	"seehuhn.de/go/prepress/pdf"
)

func TestInfoDict(t *testing.T) {
	info := &Info{
		Title:        "Sheet 1",
		Author:       "Print Shop",
		CreationDate: time.Date(2025, 3, 1, 12, 30, 0, 0, time.UTC),
	}
	want := pdf.Dict{
		"Title":        pdf.String("Sheet 1"),
		"Author":       pdf.String("Print Shop"),
		"Producer":     pdf.String(Producer),
		"CreationDate": pdf.String("D:20250301123000+00'00"),
		"ModDate":      pdf.String("D:20250301123000+00'00"),
	}
	if d := cmp.Diff(want, info.AsDict()); d != "" {
		t.Errorf("info dict (-want +got):\n%s", d)
	}

	var empty *Info
	if !empty.IsZero() || !(&Info{}).IsZero() || info.IsZero() {
		t.Error("IsZero is wrong")
	}
}

func TestRoundTrip(t *testing.T) {
	info := &Info{Title: "Test Document", Author: "Test Author"}
	packet, err := info.Packet()
	if err != nil {
		t.Fatal(err)
	}

	buf := &bytes.Buffer{}
	w, err := pdf.NewWriter(buf, pdf.V1_7)
	if err != nil {
		t.Fatal(err)
	}
	s := &Stream{Data: packet}
	if err := s.Embed(w, w.Alloc(), false); err != nil {
		t.Fatal(err)
	}

	out := buf.String()
	if !strings.Contains(out, "/Subtype /XML") || !strings.Contains(out, "/Type /Metadata") {
		t.Fatalf("missing metadata stream dictionary:\n%s", out)
	}
	start := strings.Index(out, "stream\n") + len("stream\n")
	end := strings.LastIndex(out, "\nendstream")
	extracted, err := xmp.Read(strings.NewReader(out[start:end]))
	if err != nil {
		t.Fatal(err)
	}

	var originalDC, extractedDC xmp.DublinCore
	packet.Get(&originalDC)
	extracted.Get(&extractedDC)
	if d := cmp.Diff(originalDC, extractedDC); d != "" {
		t.Errorf("round trip failed (-want +got):\n%s", d)
	}
}
