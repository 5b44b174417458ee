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


// Prepress composes a print sheet from a text file or an image.
//
// The content is placed on pages of the selected paper size and surrounded
// by registration marks, a color bar and a line of print information.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"time"

	"golang.org/x/term"

	"seehuhn.de/go/prepress/document"
	"seehuhn.de/go/prepress/font"
	"seehuhn.de/go/prepress/graphics/color"
	"seehuhn.de/go/prepress/graphics/image"
	"seehuhn.de/go/prepress/internal/buildinfo"
	"seehuhn.de/go/prepress/internal/profile"
	"seehuhn.de/go/prepress/layout"
	"seehuhn.de/go/prepress/pdf"
)

var (
	outFile    = flag.String("o", "out.pdf", "output file name")
	force      = flag.Bool("f", false, "overwrite output file if it exists")
	isImage    = flag.Bool("image", false, "treat the input as an image instead of text")
	paperName  = flag.String("paper", "letter", "paper size (A3, A4, A5, letter, legal)")
	fontFile   = flag.String("font", "", "TrueType font for the body text (default Helvetica)")
	fontSize   = flag.Float64("size", 12, "font size for the body text")
	border     = flag.Float64("border", 20, "distance of the print marks from the page edge")
	title      = flag.String("title", "", "title for the print information line")
	firstSer   = flag.String("first", "", "first serial number")
	lastSer    = flag.String("last", "", "last serial number")
	process    = flag.Bool("process", false, "use process colors in the color bar")
	guides     = flag.Bool("guides", false, "draw layout guide lines")
	ownerPW    = flag.String("owner", "", "owner password")
	userPW     = flag.String("user", "", "user password")
	askPW      = flag.Bool("ask-password", false, "read the user password from the terminal")
	allowPrint = flag.Bool("allow-print", false, "allow printing of a protected file")
	iccFile    = flag.String("icc", "", "ICC profile describing the printing condition")
	iccID      = flag.String("icc-id", "", "identifier of the printing condition")
	verbose    = flag.Bool("v", false, "log progress to stderr")
	version    = flag.Bool("version", false, "print version information and exit")
	cpuprofile = flag.String("cpuprofile", "", "write cpu profile to `file`")
	memprofile = flag.String("memprofile", "", "write memory profile to `file`")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "prepress \u2014 compose a print sheet from text or an image\n")
		fmt.Fprintf(os.Stderr, "%s\n\n", buildinfo.Short("prepress"))
		fmt.Fprintf(os.Stderr, "Usage:\n")
		fmt.Fprintf(os.Stderr, "  prepress [options] <input>\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  prepress -title Flyer -first 0001 -last 0500 flyer.txt\n")
		fmt.Fprintf(os.Stderr, "  prepress -image -paper A4 -process -o photo.pdf photo.jpg\n")
	}
	flag.Parse()

	if *version {
		fmt.Println(buildinfo.Short("prepress"))
		return
	}
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(1)
	}

	if err := run(flag.Arg(0)); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(input string) error {
	logger := slog.New(slog.DiscardHandler)
	if *verbose {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	stop, err := profile.Start(*cpuprofile, *memprofile, logger)
	if err != nil {
		return err
	}
	defer stop()

	if !*force {
		if _, err := os.Stat(*outFile); err == nil {
			return fmt.Errorf("%s: file exists (use -f to overwrite)", *outFile)
		}
	}

	paper, err := paperSize(*paperName)
	if err != nil {
		return err
	}

	opt := &document.Options{
		Title:        *title,
		Creator:      "prepress",
		CreationDate: time.Now(),
		Compress:     true,
		Logger:       logger,
	}
	if *iccFile != "" {
		profileData, err := os.ReadFile(*iccFile)
		if err != nil {
			return err
		}
		opt.OutputIntent, err = color.NewOutputIntent(profileData, *iccID)
		if err != nil {
			return err
		}
	}
	doc := document.New(opt)

	var pages []*document.Page
	if *isImage {
		pages, err = imagePages(doc, input, paper)
	} else {
		pages, err = textPages(doc, input, paper)
	}
	if err != nil {
		return err
	}
	logger.Debug("content placed", "pages", len(pages))

	for _, p := range pages {
		if err := addMarks(p); err != nil {
			return err
		}
	}

	if err := protect(doc); err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()
	return doc.Save(ctx, *outFile)
}

func paperSize(name string) (pdf.Rectangle, error) {
	switch strings.ToLower(name) {
	case "a3":
		return document.A3, nil
	case "a4":
		return document.A4, nil
	case "a5":
		return document.A5, nil
	case "letter":
		return document.Letter, nil
	case "legal":
		return document.Legal, nil
	}
	return pdf.Rectangle{}, fmt.Errorf("unknown paper size %q", name)
}

func textPages(doc *document.Document, fname string, paper pdf.Rectangle) ([]*document.Page, error) {
	data, err := os.ReadFile(fname)
	if err != nil {
		return nil, err
	}

	var f font.Font = font.Helvetica
	if *fontFile != "" {
		f, err = font.LoadTrueType(*fontFile)
		if err != nil {
			return nil, err
		}
	}

	cfg := layout.DefaultTextConfig()
	cfg.PageSize = paper
	cfg.FontSize = *fontSize
	cfg.Leading = 1.2 * *fontSize
	cfg.StartX = 3 * *border
	cfg.StartY = paper.URy - 3 * *border - *fontSize
	cfg.BottomMargin = 3 * *border

	return layout.CreateText(doc, f, string(data), cfg)
}

func imagePages(doc *document.Document, fname string, paper pdf.Rectangle) ([]*document.Page, error) {
	img, err := image.Load(fname)
	if err != nil {
		return nil, err
	}

	p, err := doc.AddPage(paper)
	if err != nil {
		return nil, err
	}

	margin := 3 * *border
	availW := paper.Dx() - 2*margin
	availH := paper.Dy() - 2*margin
	if availW <= 0 || availH <= 0 {
		return nil, errors.New("border too large for the paper size")
	}
	w := availW
	h := w * float64(img.Height) / float64(img.Width)
	if h > availH {
		h = availH
		w = h * float64(img.Width) / float64(img.Height)
	}
	x := paper.LLx + (paper.Dx()-w)/2
	y := paper.LLy + (paper.Dy()-h)/2
	err = p.InsertImage(img, x, y, document.Box{Width: w, Height: h})
	if err != nil {
		return nil, err
	}
	return []*document.Page{p}, nil
}

func addMarks(p *document.Page) error {
	b := *border
	if err := layout.DrawPrintFocus(p, b); err != nil {
		return err
	}
	if err := layout.DrawPrintColor(p, b, &layout.ColorBarOptions{Process: *process}); err != nil {
		return err
	}
	if err := layout.DrawPrintText(p, b, optional(*title), optional(*firstSer), optional(*lastSer)); err != nil {
		return err
	}
	if *guides {
		return layout.DrawLayoutLevel3(p, b)
	}
	return nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func protect(doc *document.Document) error {
	user := *userPW
	if *askPW {
		fd := int(os.Stdin.Fd())
		if !term.IsTerminal(fd) {
			return errors.New("-ask-password needs a terminal")
		}
		fmt.Fprint(os.Stderr, "user password: ")
		pw, err := term.ReadPassword(fd)
		fmt.Fprintln(os.Stderr)
		if err != nil {
			return err
		}
		user = string(pw)
	}
	if user == "" && *ownerPW == "" {
		return nil
	}

	perm := document.Permissions{Print: *allowPrint}
	return doc.Protect(*ownerPW, user, perm)
}
