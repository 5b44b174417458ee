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
	"errors"
	"fmt"
	"io"
)

// Version represent the version of PDF standard used in a file.
type Version int

// PDF versions supported by this library.
const (
	_ Version = iota
	V1_4
	V1_5
	V1_6
	V1_7
	V2_0
)

func (ver Version) String() string {
	switch ver {
	case V1_4:
		return "1.4"
	case V1_5:
		return "1.5"
	case V1_6:
		return "1.6"
	case V1_7:
		return "1.7"
	case V2_0:
		return "2.0"
	}
	return fmt.Sprintf("Version(%d)", int(ver))
}

// Writer represents a PDF file open for writing.  Objects are written as
// soon as [Writer.Put] is called; the cross-reference table and trailer are
// written by [Writer.Close].
//
// A Writer is not safe for concurrent use.
type Writer struct {
	w       *posWriter
	xref    map[Reference]int64
	nextRef Reference
	closed  bool
}

// NewWriter prepares a PDF file for writing.
func NewWriter(w io.Writer, ver Version) (*Writer, error) {
	if ver < V1_4 || ver > V2_0 {
		return nil, fmt.Errorf("unsupported PDF version %s", ver)
	}
	pdf := &Writer{
		w:       &posWriter{w: w},
		xref:    make(map[Reference]int64),
		nextRef: 1,
	}

	_, err := fmt.Fprintf(pdf.w, "%%PDF-%s\n%%\x80\x80\x80\x80\n", ver)
	if err != nil {
		return nil, err
	}
	return pdf, nil
}

// Alloc allocates an object number for an indirect object.
func (pdf *Writer) Alloc() Reference {
	ref := pdf.nextRef
	pdf.nextRef++
	return ref
}

// Put writes an object to the PDF file, as an indirect object.
// Each allocated reference can be written at most once.
func (pdf *Writer) Put(ref Reference, obj Object) error {
	if pdf.closed {
		return errors.New("write after close")
	}
	if ref == 0 || ref >= pdf.nextRef {
		return fmt.Errorf("reference %s was not allocated", ref)
	}
	if _, seen := pdf.xref[ref]; seen {
		return fmt.Errorf("object %s already written", ref)
	}

	pdf.xref[ref] = pdf.w.pos
	_, err := fmt.Fprintf(pdf.w, "%d 0 obj\n", ref.Number())
	if err != nil {
		return err
	}
	err = writeObject(pdf.w, obj)
	if err != nil {
		return err
	}
	_, err = io.WriteString(pdf.w, "\nendobj\n")
	return err
}

// NumObjects returns the number of objects allocated so far, including
// the free object number 0.
func (pdf *Writer) NumObjects() int {
	return int(pdf.nextRef)
}

// Close writes the cross-reference table and the trailer.  The trailer must
// contain a /Root entry; the /Size entry is filled in automatically.
// Allocated references which were never written are marked as free.
func (pdf *Writer) Close(trailer Dict) error {
	if pdf.closed {
		return errors.New("writer already closed")
	}
	if _, ok := trailer["Root"].(Reference); !ok {
		return errors.New("missing /Root in trailer")
	}

	xRefPos := pdf.w.pos
	_, err := fmt.Fprintf(pdf.w, "xref\n0 %d\n", pdf.nextRef)
	if err != nil {
		return err
	}
	for i := Reference(0); i < pdf.nextRef; i++ {
		pos, ok := pdf.xref[i]
		if ok {
			_, err = fmt.Fprintf(pdf.w, "%010d 00000 n\r\n", pos)
		} else {
			_, err = io.WriteString(pdf.w, "0000000000 65535 f\r\n")
		}
		if err != nil {
			return err
		}
	}

	dict := make(Dict, len(trailer)+1)
	for key, val := range trailer {
		dict[key] = val
	}
	dict["Size"] = Integer(pdf.nextRef)

	_, err = io.WriteString(pdf.w, "trailer\n")
	if err != nil {
		return err
	}
	err = dict.PDF(pdf.w)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(pdf.w, "\nstartxref\n%d\n%%%%EOF\n", xRefPos)
	if err != nil {
		return err
	}

	pdf.closed = true
	return nil
}

type posWriter struct {
	w   io.Writer
	pos int64
}

func (w *posWriter) Write(p []byte) (int, error) {
	n, err := w.w.Write(p)
	w.pos += int64(n)
	return n, err
}
