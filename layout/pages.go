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

package layout

import (
	"errors"
	"fmt"

	"seehuhn.de/go/prepress/document"
	"seehuhn.de/go/prepress/font"
	"seehuhn.de/go/prepress/graphics/color"
	"seehuhn.de/go/prepress/graphics/content/builder"
	"seehuhn.de/go/prepress/pdf"
	"seehuhn.de/go/prepress/text"
)

// TextConfig controls how [CreateText] breaks text into lines and pages.
// Zero fields are replaced by the values from [DefaultTextConfig].
type TextConfig struct {
	PageSize pdf.Rectangle
	FontSize float64

	// Leading is the distance between consecutive baselines.
	Leading float64

	// ChunkWidth is the maximum number of characters per line.
	ChunkWidth int

	// StartX and StartY give the start of the first baseline on each page.
	StartX, StartY float64

	// BottomMargin is the lowest allowed baseline position.
	BottomMargin float64

	Color color.Color
}

// DefaultTextConfig returns the default layout: US Letter pages, 12pt text
// with 40pt leading, 44 characters per line.
func DefaultTextConfig() TextConfig {
	return TextConfig{
		PageSize:     document.Letter,
		FontSize:     12,
		Leading:      40,
		ChunkWidth:   44,
		StartX:       40,
		StartY:       780,
		BottomMargin: 40,
		Color:        color.Black,
	}
}

func (cfg TextConfig) withDefaults() TextConfig {
	def := DefaultTextConfig()
	if cfg.PageSize.IsZero() {
		cfg.PageSize = def.PageSize
	}
	if cfg.FontSize == 0 {
		cfg.FontSize = def.FontSize
	}
	if cfg.Leading == 0 {
		cfg.Leading = def.Leading
	}
	if cfg.ChunkWidth == 0 {
		cfg.ChunkWidth = def.ChunkWidth
	}
	if cfg.StartX == 0 && cfg.StartY == 0 {
		cfg.StartX, cfg.StartY = def.StartX, def.StartY
	}
	if cfg.BottomMargin == 0 {
		cfg.BottomMargin = def.BottomMargin
	}
	if cfg.Color == nil {
		cfg.Color = def.Color
	}
	return cfg
}

// checkText verifies that the pages for the given chunks can be drawn.
// This is done before any page is added, so that a failed call leaves the
// document unchanged.
func checkText(f font.Font, chunks []string, cfg TextConfig) error {
	if f == nil {
		return &pdf.ResourceError{Op: "CreateText", Err: errors.New("missing font")}
	}
	if err := pdf.CheckPositive("CreateText", "page width", cfg.PageSize.Dx()); err != nil {
		return err
	}
	if err := pdf.CheckPositive("CreateText", "page height", cfg.PageSize.Dy()); err != nil {
		return err
	}
	if err := pdf.CheckPositive("CreateText", "font size", cfg.FontSize); err != nil {
		return err
	}
	if err := color.Check(cfg.Color); err != nil {
		return err
	}
	for _, chunk := range chunks {
		if _, err := f.Encode(chunk); err != nil {
			return err
		}
	}
	return nil
}

// CreateText adds pages holding the given text to the document.
//
// The text is split at newline characters, and each line is cut into chunks
// of at most cfg.ChunkWidth characters.  Each chunk is shown on a line of
// its own.  When the next baseline would fall below the bottom margin, a new
// page is started.  The new pages are returned in order.
func CreateText(doc *document.Document, f font.Font, s string, cfg TextConfig) ([]*document.Page, error) {
	cfg = cfg.withDefaults()
	if err := pdf.CheckPositive("CreateText", "leading", cfg.Leading); err != nil {
		return nil, err
	}
	if cfg.StartY < cfg.BottomMargin {
		return nil, &pdf.GeometryError{
			Op:  "CreateText",
			Msg: fmt.Sprintf("start %g lies below the bottom margin %g", cfg.StartY, cfg.BottomMargin),
		}
	}

	chunks, err := text.Wrap(s, cfg.ChunkWidth)
	if err != nil {
		return nil, err
	}
	if err := checkText(f, chunks, cfg); err != nil {
		return nil, err
	}
	name, err := doc.AddFont(f)
	if err != nil {
		return nil, err
	}

	// break the chunks into pages
	var pageChunks [][]string
	var body []string
	y := cfg.StartY
	for _, chunk := range chunks {
		if y < cfg.BottomMargin {
			pageChunks = append(pageChunks, body)
			body = nil
			y = cfg.StartY
		}
		body = append(body, chunk)
		y -= cfg.Leading
	}
	pageChunks = append(pageChunks, body)

	var pages []*document.Page
	for _, body := range pageChunks {
		page, err := doc.AddPage(cfg.PageSize)
		if err != nil {
			return nil, err
		}
		err = page.Edit(func(b *builder.Builder) error {
			b.SetFillColor(cfg.Color)
			b.TextBegin()
			b.TextSetFont(name, cfg.FontSize)
			b.TextMoveOffset(cfg.StartX, cfg.StartY)
			for _, chunk := range body {
				b.TextShow(chunk)
				b.TextMoveOffset(0, -cfg.Leading)
			}
			b.TextEnd()
			return nil
		})
		if err != nil {
			return nil, err
		}
		pages = append(pages, page)
	}
	return pages, nil
}
