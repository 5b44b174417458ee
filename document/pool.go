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
	"crypto/sha256"
	"fmt"

	"seehuhn.de/go/prepress/font"
	"seehuhn.de/go/prepress/graphics/image"
	"seehuhn.de/go/prepress/pdf"
)

// pool holds the fonts and images shared by all pages of a document.
// Resources with identical content are stored only once.
type pool struct {
	fonts     map[pdf.Name]font.Font
	fontNames map[[32]byte]pdf.Name
	fontOrder []pdf.Name

	images     map[pdf.Name]*image.Image
	imageNames map[[32]byte]pdf.Name
	imageOrder []pdf.Name
}

func newPool() *pool {
	return &pool{
		fonts:      make(map[pdf.Name]font.Font),
		fontNames:  make(map[[32]byte]pdf.Name),
		images:     make(map[pdf.Name]*image.Image),
		imageNames: make(map[[32]byte]pdf.Name),
	}
}

// Font implements the [builder.FontSource] interface.
func (p *pool) Font(name pdf.Name) (font.Font, bool) {
	f, ok := p.fonts[name]
	return f, ok
}

type summer interface {
	Sum() [32]byte
}

func fontKey(f font.Font) [32]byte {
	if s, ok := f.(summer); ok {
		return s.Sum()
	}
	return sha256.Sum256([]byte(fmt.Sprintf("%T\x00%s", f, f.PostScriptName())))
}

func (p *pool) addFont(f font.Font) pdf.Name {
	key := fontKey(f)
	if name, ok := p.fontNames[key]; ok {
		return name
	}
	name := pdf.Name(fmt.Sprintf("F%d", len(p.fontOrder)+1))
	p.fonts[name] = f
	p.fontNames[key] = name
	p.fontOrder = append(p.fontOrder, name)
	return name
}

func (p *pool) addImage(img *image.Image) pdf.Name {
	key := img.Sum()
	if name, ok := p.imageNames[key]; ok {
		return name
	}
	name := pdf.Name(fmt.Sprintf("Im%d", len(p.imageOrder)+1))
	p.images[name] = img
	p.imageNames[key] = name
	p.imageOrder = append(p.imageOrder, name)
	return name
}

// poolMark records the size of a pool, see [pool.rollback].
type poolMark struct {
	fonts, images int
}

func (p *pool) mark() poolMark {
	return poolMark{fonts: len(p.fontOrder), images: len(p.imageOrder)}
}

// rollback removes all fonts and images added after m was taken.
func (p *pool) rollback(m poolMark) {
	for _, name := range p.fontOrder[m.fonts:] {
		delete(p.fontNames, fontKey(p.fonts[name]))
		delete(p.fonts, name)
	}
	p.fontOrder = p.fontOrder[:m.fonts]

	for _, name := range p.imageOrder[m.images:] {
		delete(p.imageNames, p.images[name].Sum())
		delete(p.images, name)
	}
	p.imageOrder = p.imageOrder[:m.images]
}

// withRollback runs fn.  If fn fails, fonts and images which fn added to
// the document are removed again.
func (doc *Document) withRollback(fn func() error) error {
	m := doc.pool.mark()
	err := fn()
	if err != nil {
		doc.pool.rollback(m)
	}
	return err
}

// AddFont adds a font to the document and returns its resource name.
// Adding the same font twice returns the same name.
func (doc *Document) AddFont(f font.Font) (pdf.Name, error) {
	if err := doc.checkOpen("AddFont"); err != nil {
		return "", err
	}
	if f == nil {
		return "", &pdf.ResourceError{Op: "AddFont", Err: errNilResource}
	}
	return doc.pool.addFont(f), nil
}

// AddImage adds an image to the document and returns its resource name.
// Images with identical content share a single image XObject.
func (doc *Document) AddImage(img *image.Image) (pdf.Name, error) {
	if err := doc.checkOpen("AddImage"); err != nil {
		return "", err
	}
	if img == nil {
		return "", &pdf.ResourceError{Op: "AddImage", Err: errNilResource}
	}
	if err := img.Check(); err != nil {
		return "", err
	}
	return doc.pool.addImage(img), nil
}
