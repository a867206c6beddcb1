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

// Package rendertest provides an in-memory rendering engine for use in
// unit tests.
package rendertest

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/pdfview/render"
)

// ErrNotFound is returned by Engine.Open for unknown paths.
var ErrNotFound = errors.New("no such document")

// Engine serves synthetic documents.
//
// Every call to Open creates a new Document, which is also recorded in
// Opened so that tests can inspect it after the code under test has
// dropped it.
type Engine struct {
	// Docs maps paths to the page sizes of the document at that path.
	Docs map[string][]rect.Rect

	// Titles maps paths to document titles.
	Titles map[string]string

	// FailRender lists page numbers where rendering fails.
	FailRender map[int]bool

	Opened []*Document
}

// NewEngine returns an engine which knows a single document.
func NewEngine(path string, pages ...rect.Rect) *Engine {
	return &Engine{
		Docs: map[string][]rect.Rect{path: pages},
	}
}

// Pages returns n copies of the given page size.
func Pages(n int, size rect.Rect) []rect.Rect {
	res := make([]rect.Rect, n)
	for i := range res {
		res[i] = size
	}
	return res
}

// Open implements the render.Engine interface.
func (e *Engine) Open(path string) (render.Document, error) {
	pages, ok := e.Docs[path]
	if !ok {
		return nil, fmt.Errorf("%s: %w", path, ErrNotFound)
	}
	doc := &Document{
		Path:       path,
		DocTitle:   e.Titles[path],
		pages:      pages,
		failRender: e.FailRender,
	}
	e.Opened = append(e.Opened, doc)
	return doc, nil
}

// Live returns the number of documents which have been opened but not
// closed.
func (e *Engine) Live() int {
	n := 0
	for _, doc := range e.Opened {
		if doc.Closed == 0 {
			n++
		}
	}
	return n
}

// Document is a synthetic document.  Page i is painted in the solid
// color PageColor(i).
type Document struct {
	Path     string
	DocTitle string

	// Renders counts the calls to RenderPage, per page.
	Renders map[int]int

	// Closed counts the calls to Close.
	Closed int

	// LastFlags is the flags argument of the most recent RenderPage call.
	LastFlags render.Flags

	pages      []rect.Rect
	failRender map[int]bool
}

// NumPages implements the render.Document interface.
func (d *Document) NumPages() int {
	return len(d.pages)
}

// PageSize implements the render.Document interface.
func (d *Document) PageSize(pageNo int) (rect.Rect, error) {
	if err := render.CheckPage(pageNo, len(d.pages)); err != nil {
		return rect.Rect{}, err
	}
	return d.pages[pageNo], nil
}

// RenderPage implements the render.Document interface.
//
// The image is transparent except for a solid square in the middle of
// the page, so that callers can check how the background is filled in.
func (d *Document) RenderPage(pageNo int, dpi float64, flags render.Flags) (image.Image, error) {
	if d.Closed > 0 {
		return nil, errors.New("document is closed")
	}
	if err := render.CheckPage(pageNo, len(d.pages)); err != nil {
		return nil, err
	}
	if d.failRender[pageNo] {
		return nil, fmt.Errorf("synthetic failure on page %d", pageNo)
	}
	if d.Renders == nil {
		d.Renders = make(map[int]int)
	}
	d.Renders[pageNo]++
	d.LastFlags = flags

	size := d.pages[pageNo]
	w := int(math.Round(size.Dx() * dpi / 72))
	h := int(math.Round(size.Dy() * dpi / 72))
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	inner := image.Rect(w/4, h/4, w-w/4, h-h/4)
	draw.Draw(img, inner, image.NewUniform(PageColor(pageNo)), image.Point{}, draw.Src)
	return img, nil
}

// Title returns the document title.
func (d *Document) Title() string {
	return d.DocTitle
}

// Close implements the render.Document interface.
func (d *Document) Close() error {
	d.Closed++
	return nil
}

// PageColor returns the color used to paint page pageNo.
func PageColor(pageNo int) color.NRGBA {
	return color.NRGBA{R: uint8(40 * pageNo), G: 0x80, B: 0xff - uint8(40*pageNo), A: 0xff}
}
