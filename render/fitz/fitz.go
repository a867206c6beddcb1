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

// Package fitz implements a rendering engine based on MuPDF.
//
// MuPDF always draws annotation appearance streams and always uses
// anti-aliasing for text, so the render.Flags are honoured without
// further configuration.
package fitz

import (
	"encoding/xml"
	"errors"
	"fmt"
	"image"
	"strings"

	"github.com/gen2brain/go-fitz"
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/pdfview/render"
)

var errClosed = errors.New("document is closed")

// Engine opens PDF files using MuPDF.
type Engine struct{}

// Open implements the render.Engine interface.
func (Engine) Open(path string) (render.Document, error) {
	d, err := fitz.New(path)
	if err != nil {
		return nil, err
	}
	return &Document{d: d}, nil
}

// Document is a PDF file opened by MuPDF.
type Document struct {
	d     *fitz.Document
	sizes map[int]rect.Rect
}

// NumPages implements the render.Document interface.
func (doc *Document) NumPages() int {
	if doc.d == nil {
		return 0
	}
	return doc.d.NumPage()
}

// PageSize implements the render.Document interface.
//
// MuPDF only reports integer page bounds, so the exact size is read from
// the SVG rendering of the page instead.  Sizes are cached per page.
func (doc *Document) PageSize(pageNo int) (rect.Rect, error) {
	if doc.d == nil {
		return rect.Rect{}, errClosed
	}
	if err := render.CheckPage(pageNo, doc.d.NumPage()); err != nil {
		return rect.Rect{}, err
	}
	if size, ok := doc.sizes[pageNo]; ok {
		return size, nil
	}

	svg, err := doc.d.SVG(pageNo)
	if err != nil {
		return rect.Rect{}, err
	}
	size, err := svgSize(svg)
	if err != nil {
		return rect.Rect{}, fmt.Errorf("page %d: %w", pageNo+1, err)
	}
	if doc.sizes == nil {
		doc.sizes = make(map[int]rect.Rect)
	}
	doc.sizes[pageNo] = size
	return size, nil
}

// svgSize extracts the page size from the viewBox of the root element of
// an SVG file written by MuPDF.
func svgSize(svg string) (rect.Rect, error) {
	dec := xml.NewDecoder(strings.NewReader(svg))
	for {
		tok, err := dec.Token()
		if err != nil {
			return rect.Rect{}, fmt.Errorf("no svg element: %w", err)
		}
		start, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}
		if start.Name.Local != "svg" {
			return rect.Rect{}, fmt.Errorf("unexpected root element %q", start.Name.Local)
		}
		for _, attr := range start.Attr {
			if attr.Name.Local != "viewBox" {
				continue
			}
			var x0, y0, w, h float64
			_, err := fmt.Sscan(attr.Value, &x0, &y0, &w, &h)
			if err != nil || !(w > 0) || !(h > 0) {
				return rect.Rect{}, fmt.Errorf("malformed viewBox %q", attr.Value)
			}
			return rect.Rect{LLx: x0, LLy: y0, URx: x0 + w, URy: y0 + h}, nil
		}
		return rect.Rect{}, errors.New("svg element has no viewBox")
	}
}

// RenderPage implements the render.Document interface.
func (doc *Document) RenderPage(pageNo int, dpi float64, _ render.Flags) (image.Image, error) {
	if doc.d == nil {
		return nil, errClosed
	}
	if err := render.CheckPage(pageNo, doc.d.NumPage()); err != nil {
		return nil, err
	}
	img, err := doc.d.ImageDPI(pageNo, dpi)
	if err != nil {
		return nil, fmt.Errorf("rendering at %g dpi: %w", dpi, err)
	}
	return img, nil
}

// Metadata returns the entries of the document information dictionary,
// for example "title" and "author".
func (doc *Document) Metadata() map[string]string {
	if doc.d == nil {
		return nil
	}
	return doc.d.Metadata()
}

// Title returns the document title, or the empty string if the document
// has no title.
func (doc *Document) Title() string {
	return doc.Metadata()["title"]
}

// Close implements the render.Document interface.
// Calling Close more than once is a no-op.
func (doc *Document) Close() error {
	if doc.d == nil {
		return nil
	}
	d := doc.d
	doc.d = nil
	doc.sizes = nil
	return d.Close()
}
