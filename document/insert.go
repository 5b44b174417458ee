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
	"fmt"
	"math"

	"seehuhn.de/go/prepress/font"
	"seehuhn.de/go/prepress/graphics/color"
	"seehuhn.de/go/prepress/graphics/content/builder"
	"seehuhn.de/go/prepress/graphics/image"
	"seehuhn.de/go/prepress/pdf"
)

// Size determines the size of an image placed on a page.
// The implementations are [DPI] and [Box].
type Size interface {
	imageSize(px, py int) (w, h float64, err error)
}

// DPI scales an image to the given resolution in pixels per inch.
type DPI float64

func (d DPI) imageSize(px, py int) (float64, float64, error) {
	dpi := float64(d)
	if err := pdf.CheckPositive("InsertImage", "resolution", dpi); err != nil {
		return 0, 0, err
	}
	return float64(px) * 72 / dpi, float64(py) * 72 / dpi, nil
}

// Box scales an image to the given width and height in PDF units.
// If one of the dimensions is zero, it is computed from the other so that
// the aspect ratio of the image is preserved.  If both are zero, the image
// is drawn at one unit per pixel.
type Box struct {
	Width, Height float64
}

func (b Box) imageSize(px, py int) (float64, float64, error) {
	w, h := b.Width, b.Height
	if w < 0 || h < 0 || math.IsNaN(w) || math.IsNaN(h) {
		return 0, 0, &pdf.GeometryError{
			Op:  "InsertImage",
			Msg: fmt.Sprintf("invalid box %gx%g", w, h),
		}
	}
	switch {
	case w == 0 && h == 0:
		w, h = float64(px), float64(py)
	case w == 0:
		w = h * float64(px) / float64(py)
	case h == 0:
		h = w * float64(py) / float64(px)
	}
	return w, h, nil
}

// InsertImage draws an image with lower left corner (x, y).
// The image is only added to the document if drawing succeeds.
func (p *Page) InsertImage(img *image.Image, x, y float64, size Size) error {
	if img == nil {
		return &pdf.ResourceError{Op: "InsertImage", Err: errNilResource}
	}
	if size == nil {
		size = Box{}
	}
	w, h, err := size.imageSize(img.Width, img.Height)
	if err != nil {
		return err
	}
	return p.doc.withRollback(func() error {
		name, err := p.doc.AddImage(img)
		if err != nil {
			return err
		}
		return p.Edit(func(b *builder.Builder) error {
			b.DrawImage(name, x, y, w, h)
			return nil
		})
	})
}

// TextBox is the area used to position a line of text.
// Text is centred horizontally inside the box, Y is the baseline.
type TextBox struct {
	X, Y          float64
	Width, Height float64
}

// InsertText draws a line of text, centred horizontally in box.
func (p *Page) InsertText(s string, box TextBox, f font.Font, size float64, c color.Color) error {
	if f == nil {
		return &pdf.ResourceError{Op: "InsertText", Err: errNilResource}
	}
	tw, _ := font.MeasureText(f, s, size)
	shiftX := (box.Width - tw) / 2
	return p.InsertTextAt(s, box.X+shiftX, box.Y, f, size, c)
}

// InsertTextAt draws a line of text with the start of the baseline at (x, y).
func (p *Page) InsertTextAt(s string, x, y float64, f font.Font, size float64, c color.Color) error {
	return p.doc.withRollback(func() error {
		name, err := p.doc.AddFont(f)
		if err != nil {
			return err
		}
		return p.Edit(func(b *builder.Builder) error {
			b.SetFillColor(c)
			b.TextBegin()
			b.TextSetFont(name, size)
			b.TextMoveOffset(x, y)
			b.TextShow(s)
			b.TextEnd()
			return nil
		})
	})
}

// InsertTextRotated draws a line of text, turned by a quarter turn
// counter-clockwise about the centre of the text.
func (p *Page) InsertTextRotated(s string, box TextBox, f font.Font, size float64, c color.Color) error {
	if f == nil {
		return &pdf.ResourceError{Op: "InsertTextRotated", Err: errNilResource}
	}
	tw, th := font.MeasureText(f, s, size)
	shiftX := (box.Width - tw) / 2
	shiftY := th / 2
	cx := box.X + shiftX + tw/2
	cy := box.Y + shiftY + th/2

	return p.doc.withRollback(func() error {
		name, err := p.doc.AddFont(f)
		if err != nil {
			return err
		}
		return p.Edit(func(b *builder.Builder) error {
			b.SetFillColor(c)
			b.TextBegin()
			b.TextSetFont(name, size)
			b.TextSetMatrix(math.Pi/2, cx, cy)
			b.TextShow(s)
			b.TextEnd()
			return nil
		})
	})
}
