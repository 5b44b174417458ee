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

// Package image provides decoded raster images for placing on a page.
package image

import (
	"crypto/sha256"
	"encoding/binary"
	"fmt"

	"seehuhn.de/go/prepress/graphics/color"
	"seehuhn.de/go/prepress/pdf"
)

// Strategy selects how the pixel data is stored in the PDF file.
type Strategy int

// These are the supported embedding strategies.
const (
	// Compressed stores the pixels losslessly, using /FlateDecode.
	Compressed Strategy = iota

	// Lossless stores the uncompressed pixels.
	Lossless

	// DCT stores JPEG data as is, using /DCTDecode.
	// This is only available for images created from JPEG files.
	DCT
)

func (s Strategy) String() string {
	switch s {
	case Compressed:
		return "compressed"
	case Lossless:
		return "lossless"
	case DCT:
		return "DCT"
	}
	return fmt.Sprintf("Strategy(%d)", int(s))
}

// Image is a decoded raster image.
//
// Pixel rows are stored from top to bottom, each row packed to
// whole bytes.
type Image struct {
	Width            int
	Height           int
	BitsPerComponent int
	ColorSpace       pdf.Name // one of the device color space families
	Pix              []byte

	// Alpha (optional) holds an 8-bit soft mask, one byte per pixel.
	Alpha []byte

	Strategy Strategy

	dct []byte
}

// New returns an image with the given pixel data, using 8 bits per
// component.
func New(width, height int, cs pdf.Name, pix []byte) (*Image, error) {
	img := &Image{
		Width:            width,
		Height:           height,
		BitsPerComponent: 8,
		ColorSpace:       cs,
		Pix:              pix,
	}
	err := img.Check()
	if err != nil {
		return nil, err
	}
	return img, nil
}

// Channels returns the number of color components per pixel.
func (img *Image) Channels() int {
	switch img.ColorSpace {
	case color.FamilyDeviceGray:
		return 1
	case color.FamilyDeviceRGB:
		return 3
	case color.FamilyDeviceCMYK:
		return 4
	}
	return 0
}

// Check verifies that the image dimensions are positive and that the pixel
// buffer has the expected size.
func (img *Image) Check() error {
	if img.Width <= 0 || img.Height <= 0 {
		return &pdf.GeometryError{
			Op:  "image",
			Msg: fmt.Sprintf("invalid size %dx%d", img.Width, img.Height),
		}
	}
	n := img.Channels()
	if n == 0 {
		return &pdf.ResourceError{
			Op:  "image",
			Err: fmt.Errorf("unsupported color space %q", img.ColorSpace),
		}
	}
	switch img.BitsPerComponent {
	case 1, 2, 4, 8, 16:
		// pass
	default:
		return &pdf.ResourceError{
			Op:  "image",
			Err: fmt.Errorf("invalid bits per component %d", img.BitsPerComponent),
		}
	}

	if img.Strategy == DCT {
		if len(img.dct) == 0 {
			return &pdf.ResourceError{Op: "image", Err: fmt.Errorf("no JPEG data")}
		}
		return nil
	}

	rowBytes := (img.Width*n*img.BitsPerComponent + 7) / 8
	if len(img.Pix) != rowBytes*img.Height {
		return &pdf.ResourceError{
			Op: "image",
			Err: fmt.Errorf("pixel buffer has %d bytes, expected %d",
				len(img.Pix), rowBytes*img.Height),
		}
	}
	if img.Alpha != nil && len(img.Alpha) != img.Width*img.Height {
		return &pdf.ResourceError{
			Op:  "image",
			Err: fmt.Errorf("alpha channel has %d bytes, expected %d", len(img.Alpha), img.Width*img.Height),
		}
	}
	return nil
}

// Sum returns a SHA-256 hash of the image content and its embedding
// strategy.  Images with the same sum produce identical PDF objects.
func (img *Image) Sum() [32]byte {
	h := sha256.New()
	var hdr [4 * 8]byte
	binary.BigEndian.PutUint64(hdr[0:], uint64(img.Width))
	binary.BigEndian.PutUint64(hdr[8:], uint64(img.Height))
	binary.BigEndian.PutUint64(hdr[16:], uint64(img.BitsPerComponent))
	binary.BigEndian.PutUint64(hdr[24:], uint64(img.Strategy))
	h.Write(hdr[:])
	h.Write([]byte(img.ColorSpace))
	h.Write([]byte{0})
	if img.Strategy == DCT {
		h.Write(img.dct)
	} else {
		h.Write(img.Pix)
	}
	if img.Alpha != nil {
		h.Write([]byte{1})
		h.Write(img.Alpha)
	}

	var res [32]byte
	copy(res[:], h.Sum(nil))
	return res
}

// Embed writes the image as an image XObject to w, as the object ref.
// If the image has an alpha channel, a soft mask is written as a
// separate object.
func (img *Image) Embed(w *pdf.Writer, ref pdf.Reference) error {
	err := img.Check()
	if err != nil {
		return err
	}

	dict := pdf.Dict{
		"Type":             pdf.Name("XObject"),
		"Subtype":          pdf.Name("Image"),
		"Width":            pdf.Integer(img.Width),
		"Height":           pdf.Integer(img.Height),
		"ColorSpace":       img.ColorSpace,
		"BitsPerComponent": pdf.Integer(img.BitsPerComponent),
	}

	var maskRef pdf.Reference
	if img.Alpha != nil {
		maskRef = w.Alloc()
		dict["SMask"] = maskRef
	}

	var stm *pdf.Stream
	switch img.Strategy {
	case DCT:
		dict["Filter"] = pdf.Name("DCTDecode")
		stm = &pdf.Stream{Dict: dict, Data: img.dct}
	default:
		stm, err = pdf.FlateStream(dict, img.Pix, img.Strategy == Compressed)
		if err != nil {
			return err
		}
	}
	err = w.Put(ref, stm)
	if err != nil {
		return err
	}

	if maskRef != 0 {
		maskDict := pdf.Dict{
			"Type":             pdf.Name("XObject"),
			"Subtype":          pdf.Name("Image"),
			"Width":            pdf.Integer(img.Width),
			"Height":           pdf.Integer(img.Height),
			"ColorSpace":       color.FamilyDeviceGray,
			"BitsPerComponent": pdf.Integer(8),
		}
		mask, err := pdf.FlateStream(maskDict, img.Alpha, img.Strategy != Lossless)
		if err != nil {
			return err
		}
		err = w.Put(maskRef, mask)
		if err != nil {
			return err
		}
	}
	return nil
}
