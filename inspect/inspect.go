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

// Package inspect reads PDF files back, for checking the output of this
// library.  All parsing is done by third-party readers.
package inspect

import (
	"fmt"
	"strings"

	lpdf "github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"

	"seehuhn.de/go/prepress/pdf"
)

// PageCount returns the number of pages in a PDF file.
func PageCount(path string) (int, error) {
	n, err := api.PageCountFile(path)
	if err != nil {
		return 0, &pdf.ResourceError{Op: "page count", Path: path, Err: err}
	}
	return n, nil
}

// Validate checks the structure of a PDF file.
func Validate(path string) error {
	ctx, err := api.ReadContextFile(path)
	if err != nil {
		return &pdf.ResourceError{Op: "validate", Path: path, Err: err}
	}
	if err := api.ValidateContext(ctx); err != nil {
		return &pdf.ResourceError{Op: "validate", Path: path, Err: err}
	}
	return nil
}

// Text returns the text of all pages of a PDF file.
// Pages are separated by newline characters.
func Text(path string) (string, error) {
	return PageText(path, 1, -1)
}

// PageText returns the text of the pages first to last of a PDF file.
// Page numbers start at 1.  If last is negative, the text up to the end of
// the document is returned.
func PageText(path string, first, last int) (string, error) {
	f, r, err := lpdf.Open(path)
	if err != nil {
		return "", &pdf.ResourceError{Op: "read text", Path: path, Err: err}
	}
	defer f.Close()

	n := r.NumPage()
	if last < 0 {
		last = n
	}
	if first < 1 || last > n || first > last {
		return "", &pdf.ResourceError{
			Op:   "read text",
			Path: path,
			Err:  fmt.Errorf("invalid page range %d-%d for %d pages", first, last, n),
		}
	}

	fonts := make(map[string]*lpdf.Font)
	var parts []string
	for i := first; i <= last; i++ {
		p := r.Page(i)
		if p.V.IsNull() {
			continue
		}
		for _, name := range p.Fonts() {
			if _, ok := fonts[name]; !ok {
				font := p.Font(name)
				fonts[name] = &font
			}
		}
		text, err := p.GetPlainText(fonts)
		if err != nil {
			return "", &pdf.ResourceError{
				Op:   "read text",
				Path: path,
				Err:  fmt.Errorf("page %d: %w", i, err),
			}
		}
		parts = append(parts, text)
	}
	return strings.Join(parts, "\n"), nil
}
