// seehuhn.de/go/pdfview - a simple PDF viewer
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
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

package render

import (
	"image"
	"image/color"
	"image/draw"
)

// Frame is a read-only 32-bit RGBA bitmap, ready for display.
//
// A Frame is never modified after it has been created, so it can be
// handed to the display code and kept in caches without copying.
type Frame struct {
	pix    []uint8
	stride int
	rect   image.Rectangle
}

// Freeze converts img into a Frame.
//
// The pixel data is copied, and the origin of the result is (0, 0).
// Images with a color model other than premultiplied 8-bit RGBA are
// converted on the way.
func Freeze(img image.Image) *Frame {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	f := &Frame{
		pix:    make([]uint8, 4*w*h),
		stride: 4 * w,
		rect:   image.Rect(0, 0, w, h),
	}

	if src, ok := img.(*image.RGBA); ok {
		for y := 0; y < h; y++ {
			i := src.PixOffset(b.Min.X, b.Min.Y+y)
			copy(f.pix[y*f.stride:(y+1)*f.stride], src.Pix[i:i+4*w])
		}
		return f
	}

	dst := &image.RGBA{Pix: f.pix, Stride: f.stride, Rect: f.rect}
	draw.Draw(dst, f.rect, img, b.Min, draw.Src)
	return f
}

// Width returns the width of the frame in pixels.
func (f *Frame) Width() int { return f.rect.Dx() }

// Height returns the height of the frame in pixels.
func (f *Frame) Height() int { return f.rect.Dy() }

// ColorModel implements the image.Image interface.
func (f *Frame) ColorModel() color.Model { return color.RGBAModel }

// Bounds implements the image.Image interface.
func (f *Frame) Bounds() image.Rectangle { return f.rect }

// At implements the image.Image interface.
func (f *Frame) At(x, y int) color.Color { return f.RGBAAt(x, y) }

// RGBAAt returns the color of the pixel at (x, y).
// Pixels outside the frame are transparent black.
func (f *Frame) RGBAAt(x, y int) color.RGBA {
	if !(image.Point{x, y}.In(f.rect)) {
		return color.RGBA{}
	}
	i := y*f.stride + 4*x
	s := f.pix[i : i+4 : i+4]
	return color.RGBA{R: s[0], G: s[1], B: s[2], A: s[3]}
}

// Opaque reports whether every pixel of the frame is fully opaque.
func (f *Frame) Opaque() bool {
	for i := 3; i < len(f.pix); i += 4 {
		if f.pix[i] != 0xff {
			return false
		}
	}
	return true
}

// RGBA returns a copy of the frame as a mutable image.
func (f *Frame) RGBA() *image.RGBA {
	pix := make([]uint8, len(f.pix))
	copy(pix, f.pix)
	return &image.RGBA{Pix: pix, Stride: f.stride, Rect: f.rect}
}
