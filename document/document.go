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

// Package document assembles pages, resources and metadata into a PDF file.
//
// A [Document] moves through three states: it is created by [New], pages
// and resources are added and edited, and finally [Document.Finalize]
// serializes the document.  After finalization the document can be written
// any number of times, but it can no longer be changed.
//
// A Document is not safe for concurrent use.  Distinct documents can be
// built in parallel.
package document

import (
	"log/slog"
	"time"

	"seehuhn.de/go/prepress/graphics/color"
	"seehuhn.de/go/prepress/metadata"
	"seehuhn.de/go/prepress/pdf"
)

// Options controls how a document is written.
// A nil value selects the defaults.
type Options struct {
	// Version is the PDF version written in the file header.
	// The default is PDF 1.7.
	Version pdf.Version

	Title   string
	Author  string
	Subject string

	// Creator names the application which produced the content.
	Creator string

	// CreationDate is recorded in the document information dictionary
	// and in the XMP metadata.  If this is zero, no date is recorded and
	// the output only depends on the document contents.
	CreationDate time.Time

	// OutputIntent (optional) describes the intended printing condition.
	OutputIntent *color.OutputIntent

	// Compress enables /FlateDecode compression of content streams and
	// font programs.
	Compress bool

	// Logger receives debug messages about the serialization.
	// If this is nil, nothing is logged.
	Logger *slog.Logger
}

var defaultOptions = Options{
	Version:  pdf.V1_7,
	Compress: true,
}

func (opt *Options) info() *metadata.Info {
	return &metadata.Info{
		Title:        opt.Title,
		Author:       opt.Author,
		Subject:      opt.Subject,
		Creator:      opt.Creator,
		CreationDate: opt.CreationDate,
	}
}

// Document is a PDF document under construction.
type Document struct {
	opt Options
	log *slog.Logger

	pages []*Page
	pool  *pool

	policy *policy

	finalized bool
	data      []byte
}

// New creates a new, empty document.
func New(opt *Options) *Document {
	o := defaultOptions
	if opt != nil {
		o = *opt
	}
	if o.Version == 0 {
		o.Version = defaultOptions.Version
	}

	logger := o.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Document{
		opt:  o,
		log:  logger,
		pool: newPool(),
	}
}

// checkOpen returns a StateError if the document has been finalized.
func (doc *Document) checkOpen(op string) error {
	if doc.finalized {
		return pdf.StateErrorf(op, "document is finalized")
	}
	return nil
}

// AddPage appends a new, empty page to the document.
func (doc *Document) AddPage(mediaBox pdf.Rectangle) (*Page, error) {
	if err := doc.checkOpen("AddPage"); err != nil {
		return nil, err
	}
	if err := pdf.CheckPositive("AddPage", "page width", mediaBox.Dx()); err != nil {
		return nil, err
	}
	if err := pdf.CheckPositive("AddPage", "page height", mediaBox.Dy()); err != nil {
		return nil, err
	}

	p := &Page{
		MediaBox: mediaBox,
		doc:      doc,
	}
	doc.pages = append(doc.pages, p)
	return p, nil
}

// Pages returns the pages of the document, in order.
func (doc *Document) Pages() []*Page {
	return doc.pages
}

// NumPages returns the number of pages in the document.
func (doc *Document) NumPages() int {
	return len(doc.pages)
}

// IsFinalized reports whether the document has been serialized.
func (doc *Document) IsFinalized() bool {
	return doc.finalized
}
