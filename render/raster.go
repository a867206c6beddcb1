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
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"

	xdraw "golang.org/x/image/draw"
	"seehuhn.de/go/geom/rect"
)

// DefaultDPI is the resolution used to render pages before they are
// scaled to their display size.
const DefaultDPI = 600

// Options control the rasterization of a page.
type Options struct {
	// DPI is the resolution of the intermediate rendering.
	// If this is zero, DefaultDPI is used.
	DPI float64

	// Background is painted below the page.
	// If this is nil, the page is placed on opaque white.
	Background color.Color
}

var defaultOptions = &Options{
	DPI:        DefaultDPI,
	Background: color.White,
}

// CheckZoom returns ErrZoom if zoom is not a positive, finite number.
func CheckZoom(zoom float64) error {
	if !(zoom > 0) || math.IsInf(zoom, 0) {
		return fmt.Errorf("%w: %g", ErrZoom, zoom)
	}
	return nil
}

// MaxPixels is the largest number of pixels in a display bitmap.
// At four bytes per pixel this corresponds to 1 GiB of memory.
const MaxPixels = 1 << 28

// CheckDPI returns ErrDPI if dpi is not a positive, finite number.
func CheckDPI(dpi float64) error {
	if !(dpi > 0) || math.IsInf(dpi, 0) {
		return fmt.Errorf("%w: %g dpi", ErrDPI, dpi)
	}
	return nil
}

// TargetSize returns the pixel dimensions of a page with the given size
// (in PDF points), displayed at the given zoom factor.
// One point maps to one pixel at zoom 1.
// Each dimension is at least one pixel.
//
// If zoom is invalid, or if the bitmap would have more than MaxPixels
// pixels, an error wrapping ErrZoom is returned.
func TargetSize(page rect.Rect, zoom float64) (width, height int, err error) {
	if err := CheckZoom(zoom); err != nil {
		return 0, 0, err
	}
	w := max(math.Round(math.Abs(page.Dx())*zoom), 1)
	h := max(math.Round(math.Abs(page.Dy())*zoom), 1)
	if !(w*h <= MaxPixels) {
		return 0, 0, fmt.Errorf("%w: %g gives a %.0fx%.0f bitmap", ErrZoom, zoom, w, h)
	}
	return int(w), int(h), nil
}

// Resize scales src to width×height pixels using bicubic interpolation,
// composited over an opaque background.
func Resize(src image.Image, width, height int, background color.Color) *image.RGBA {
	if background == nil {
		background = color.White
	}
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(dst, dst.Rect, image.NewUniform(background), image.Point{}, draw.Src)
	xdraw.CatmullRom.Scale(dst, dst.Rect, src, src.Bounds(), xdraw.Over, nil)
	return dst
}

// Rasterize renders page pageNo of doc for display at the given zoom
// factor.
//
// The page is rendered at opt.DPI with annotations and smooth text, then
// scaled to its display size on top of the background.
func Rasterize(doc Document, pageNo int, zoom float64, opt *Options) (*Frame, error) {
	if opt == nil {
		opt = defaultOptions
	}
	dpi := opt.DPI
	if dpi == 0 {
		dpi = DefaultDPI
	}
	if err := CheckDPI(dpi); err != nil {
		return nil, err
	}

	if err := CheckZoom(zoom); err != nil {
		return nil, err
	}
	if err := CheckPage(pageNo, doc.NumPages()); err != nil {
		return nil, err
	}

	size, err := doc.PageSize(pageNo)
	if err != nil {
		return nil, fmt.Errorf("page %d: %w", pageNo+1, err)
	}
	width, height, err := TargetSize(size, zoom)
	if err != nil {
		return nil, err
	}

	img, err := doc.RenderPage(pageNo, dpi, Annotations|SmoothText)
	if err != nil {
		return nil, fmt.Errorf("page %d: %w", pageNo+1, err)
	}

	return Freeze(Resize(img, width, height, opt.Background)), nil
}
