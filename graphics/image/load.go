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

package image

import (
	"bytes"
	"image"
	stdcolor "image/color"
	_ "image/gif" // register GIF decoder
	"image/jpeg"
	_ "image/png" // register PNG decoder
	"os"

	_ "golang.org/x/image/bmp"  // register BMP decoder
	_ "golang.org/x/image/tiff" // register TIFF decoder

	"seehuhn.de/go/prepress/graphics/color"
	"seehuhn.de/go/prepress/pdf"
)

// Load reads an image file.  Supported formats are PNG, JPEG, GIF, BMP and
// TIFF.  JPEG files in the Gray or YCbCr color models are kept in
// compressed form and embedded using the [DCT] strategy.
func Load(path string) (*Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &pdf.ResourceError{Op: "load image", Path: path, Err: err}
	}
	img, err := Decode(data)
	if err != nil {
		return nil, &pdf.ResourceError{Op: "load image", Path: path, Err: err}
	}
	return img, nil
}

// Decode decodes an image held in memory.
func Decode(data []byte) (*Image, error) {
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	if format == "jpeg" {
		switch cfg.ColorModel {
		case stdcolor.GrayModel, stdcolor.YCbCrModel:
			return FromJPEG(data)
		}
	}

	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	return FromImage(src), nil
}

// FromJPEG returns an image which embeds the given JPEG data unchanged.
func FromJPEG(data []byte) (*Image, error) {
	cfg, err := jpeg.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, &pdf.ResourceError{Op: "load image", Err: err}
	}
	cs := color.FamilyDeviceRGB
	if cfg.ColorModel == stdcolor.GrayModel {
		cs = color.FamilyDeviceGray
	}
	img := &Image{
		Width:            cfg.Width,
		Height:           cfg.Height,
		BitsPerComponent: 8,
		ColorSpace:       cs,
		Strategy:         DCT,
		dct:              data,
	}
	err = img.Check()
	if err != nil {
		return nil, err
	}
	return img, nil
}

// FromImage converts a decoded Go image to an 8-bit image.
// Gray and CMYK images keep their color model, all other images are
// converted to RGB.  Non-opaque images get an alpha channel.
func FromImage(src image.Image) *Image {
	b := src.Bounds()
	width, height := b.Dx(), b.Dy()
	res := &Image{
		Width:            width,
		Height:           height,
		BitsPerComponent: 8,
		Strategy:         Compressed,
	}

	switch src := src.(type) {
	case *image.Gray:
		res.ColorSpace = color.FamilyDeviceGray
		res.Pix = make([]byte, 0, width*height)
		for y := b.Min.Y; y < b.Max.Y; y++ {
			i := src.PixOffset(b.Min.X, y)
			res.Pix = append(res.Pix, src.Pix[i:i+width]...)
		}
		return res
	case *image.CMYK:
		res.ColorSpace = color.FamilyDeviceCMYK
		res.Pix = make([]byte, 0, 4*width*height)
		for y := b.Min.Y; y < b.Max.Y; y++ {
			i := src.PixOffset(b.Min.X, y)
			res.Pix = append(res.Pix, src.Pix[i:i+4*width]...)
		}
		return res
	}

	res.ColorSpace = color.FamilyDeviceRGB
	res.Pix = make([]byte, 0, 3*width*height)
	alpha := make([]byte, 0, width*height)
	opaque := true
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := stdcolor.NRGBAModel.Convert(src.At(x, y)).(stdcolor.NRGBA)
			res.Pix = append(res.Pix, c.R, c.G, c.B)
			alpha = append(alpha, c.A)
			if c.A != 0xFF {
				opaque = false
			}
		}
	}
	if !opaque {
		res.Alpha = alpha
	}
	return res
}
