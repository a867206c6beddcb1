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

// Package render connects the viewer to an external PDF rendering engine
// and turns rendered pages into display bitmaps.
//
// Pages are always rendered at a fixed, high resolution first and are then
// scaled down to the requested size.  This keeps the output sharp at every
// zoom level, at the cost of some extra rendering work.
package render

import (
	"errors"
	"fmt"
	"image"

	"seehuhn.de/go/geom/rect"
)

// Engine opens documents.  The only implementation outside of tests is
// in the subpackage fitz.
type Engine interface {
	Open(path string) (Document, error)
}

// Document is an open document, owned by whoever called Engine.Open.
//
// Page numbers are 0-based.  Close releases all resources held by the
// document; calling Close more than once must be harmless.
type Document interface {
	NumPages() int

	// PageSize returns the visible area of a page, in PDF points.
	PageSize(pageNo int) (rect.Rect, error)

	// RenderPage rasterizes a page at the given resolution.  The
	// returned image may have any color model, and may be (partially)
	// transparent.
	RenderPage(pageNo int, dpi float64, flags Flags) (image.Image, error)

	Close() error
}

// Flags control how a page is rasterized.
type Flags uint8

// These are the valid flags.
const (
	// Annotations requests that annotation appearance streams are drawn.
	Annotations Flags = 1 << iota

	// SmoothText requests anti-aliased text.
	SmoothText
)

func (f Flags) String() string {
	switch f {
	case 0:
		return "none"
	case Annotations:
		return "annotations"
	case SmoothText:
		return "smooth-text"
	case Annotations | SmoothText:
		return "annotations|smooth-text"
	default:
		return fmt.Sprintf("Flags(%d)", uint8(f))
	}
}

var (
	// ErrZoom is returned when a zoom factor is not a positive, finite
	// number, or when it would give an oversized bitmap.
	ErrZoom = errors.New("invalid zoom factor")

	// ErrDPI is returned when a rendering resolution is not a positive,
	// finite number.
	ErrDPI = errors.New("invalid resolution")
)

// PageError is returned when a page number is outside the document.
// PageNo is 0-based, but the error message uses 1-based page numbers.
type PageError struct {
	PageNo   int
	NumPages int
}

func (err *PageError) Error() string {
	if err.NumPages <= 0 {
		return fmt.Sprintf("page %d not found, the document has no pages", err.PageNo+1)
	}
	return fmt.Sprintf("page %d not in 1...%d", err.PageNo+1, err.NumPages)
}

// CheckPage returns a *PageError if pageNo is not a valid page number for
// a document with numPages pages.
func CheckPage(pageNo, numPages int) error {
	if pageNo < 0 || pageNo >= numPages {
		return &PageError{PageNo: pageNo, NumPages: numPages}
	}
	return nil
}
