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

package document

import (
	"errors"

	"seehuhn.de/go/prepress/annotation"
	"seehuhn.de/go/prepress/graphics/content"
	"seehuhn.de/go/prepress/graphics/content/builder"
	"seehuhn.de/go/prepress/pdf"
)

var errNilResource = errors.New("missing resource")

// Page is a page of a [Document].
type Page struct {
	// MediaBox is the visible area of the page, in default user space
	// units.
	MediaBox pdf.Rectangle

	// Content is the list of content stream operators of the page.
	Content content.Stream

	// Resources lists the named resources used by Content.
	Resources content.Resources

	// Annotations are drawn on top of the page content.
	Annotations []annotation.Annotation

	doc *Document
}

// Document returns the document which owns the page.
func (p *Page) Document() *Document {
	return p.doc
}

// Edit runs one edit session on the page.  The function fn draws using the
// given builder.  If fn returns nil and the session leaves no text object
// or saved graphics state open, the operators are appended to the page
// content.  Otherwise the page is left unchanged and the error is returned.
func (p *Page) Edit(fn func(b *builder.Builder) error) error {
	if err := p.doc.checkOpen("Edit"); err != nil {
		return err
	}

	b := builder.New(p.doc.pool)
	err := fn(b)
	if err != nil {
		return err
	}
	stm, err := b.Harvest()
	if err != nil {
		return err
	}

	p.Content = append(p.Content, stm...)
	p.Resources.Merge(b.Resources)
	return nil
}

// AddAnnotation adds an annotation to the page.
func (p *Page) AddAnnotation(a annotation.Annotation) error {
	if err := p.doc.checkOpen("AddAnnotation"); err != nil {
		return err
	}
	if a == nil {
		return &pdf.ResourceError{Op: "AddAnnotation", Err: errNilResource}
	}
	p.Annotations = append(p.Annotations, a)
	return nil
}
