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

// Package viewer holds the state of a document window: the open document,
// the rendered pages, the current page and the zoom factor.
//
// A Viewer is not safe for concurrent use.  All methods are meant to be
// called from the UI event loop.
//
// After every change, the Viewer computes a new State and passes it to all
// subscribers.  The display code should only ever read from the State.
package viewer

import (
	"errors"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"seehuhn.de/go/pdfview/render"
)

// ErrNoDocument is returned by operations which need an open document.
var ErrNoDocument = errors.New("no document loaded")

// Options configure a Viewer.
type Options struct {
	// DPI is the resolution used for the intermediate rendering of pages.
	// If this is zero, render.DefaultDPI is used.
	DPI float64

	// Eager causes Open to render all pages.  Otherwise pages are rendered
	// when they are first displayed.
	Eager bool

	// RefreshStale causes pages which were rendered at a different zoom
	// factor to be rendered again when they are displayed.  If this is
	// false, only the current page is re-rendered when the zoom changes.
	RefreshStale bool

	// ZoomStep is the factor used by ZoomIn and ZoomOut.
	// If this is zero, 1.25 is used.
	ZoomStep float64

	// MinZoom and MaxZoom limit the zoom factors reachable by ZoomIn and
	// ZoomOut.  Zero means no limit.
	MinZoom, MaxZoom float64

	// Language selects the number format of the labels.
	// If this is the zero value, English is used.
	Language language.Tag

	// Logger receives diagnostic messages.  If this is nil, nothing is
	// logged.
	Logger *slog.Logger
}

// Viewer is the state of a document window.
type Viewer struct {
	engine render.Engine
	opt    Options
	raster *render.Options
	log    *slog.Logger
	p      *message.Printer

	doc      *handle
	path     string
	docTitle string
	pages    []entry
	index    int
	zoom     float64

	subs []func(State)
}

// entry is one slot of the page cache.
// A nil frame means that the page has not been rendered yet.
type entry struct {
	frame *render.Frame
	zoom  float64
}

// handle owns an open document.
// Release can be called any number of times.
type handle struct {
	doc render.Document
}

func (h *handle) release() error {
	if h == nil || h.doc == nil {
		return nil
	}
	doc := h.doc
	h.doc = nil
	return doc.Close()
}

// New creates a Viewer which uses the given engine to open documents.
func New(engine render.Engine, opt *Options) *Viewer {
	v := &Viewer{
		engine: engine,
		zoom:   1,
	}
	if opt != nil {
		v.opt = *opt
	}
	if v.opt.ZoomStep == 0 {
		v.opt.ZoomStep = 1.25
	}
	if v.opt.Language == language.Und {
		v.opt.Language = language.English
	}
	v.log = v.opt.Logger
	if v.log == nil {
		v.log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	v.p = message.NewPrinter(v.opt.Language)
	v.raster = &render.Options{DPI: v.opt.DPI}
	return v
}

// Subscribe registers fn to be called with the new State after every
// change.  The function is also called once, immediately, with the
// current state.
func (v *Viewer) Subscribe(fn func(State)) {
	v.subs = append(v.subs, fn)
	fn(v.State())
}

func (v *Viewer) publish() {
	s := v.State()
	for _, fn := range v.subs {
		fn(s)
	}
}

// Open loads the document at path, replacing the current document.
//
// The new document is fully opened before the old one is released.  If
// anything goes wrong, the new document is released and the viewer keeps
// showing the previous document.
func (v *Viewer) Open(path string) error {
	start := time.Now()
	v.log.Info("opening document", "path", path)

	doc, err := v.engine.Open(path)
	if err != nil {
		v.log.Error("open failed", "path", path, "err", err)
		return err
	}
	h := &handle{doc: doc}

	n := doc.NumPages()
	pages := make([]entry, n)
	for i := range pages {
		if i > 0 && !v.opt.Eager {
			break
		}
		frame, err := v.rasterize(doc, i)
		if err != nil {
			v.log.Error("open failed", "path", path, "page", i+1, "err", err)
			if err2 := h.release(); err2 != nil {
				v.log.Warn("close failed", "path", path, "err", err2)
			}
			return err
		}
		pages[i] = entry{frame: frame, zoom: v.zoom}
	}

	if err := v.doc.release(); err != nil {
		v.log.Warn("close failed", "path", v.path, "err", err)
	}
	v.doc = h
	v.path = path
	v.docTitle = ""
	if t, ok := doc.(interface{ Title() string }); ok {
		v.docTitle = t.Title()
	}
	v.pages = pages
	v.index = 0

	v.log.Info("document opened",
		"path", path,
		"pages", n,
		"eager", v.opt.Eager,
		"elapsed", time.Since(start))
	v.publish()
	return nil
}

// Close releases the current document.
// Calling Close without a document is a no-op.
func (v *Viewer) Close() error {
	if v.doc == nil {
		return nil
	}
	err := v.doc.release()
	if err != nil {
		v.log.Warn("close failed", "path", v.path, "err", err)
	}
	v.doc = nil
	v.path = ""
	v.docTitle = ""
	v.pages = nil
	v.index = 0
	v.publish()
	return err
}

// Loaded reports whether a document is open.
func (v *Viewer) Loaded() bool {
	return v.doc != nil
}

// Path returns the file name of the current document.
func (v *Viewer) Path() string {
	return v.path
}

// NumCached returns the number of slots in the page cache.
// While a document is open, this equals the number of pages.
func (v *Viewer) NumCached() int {
	return len(v.pages)
}

// Cached returns the bitmap of page pageNo and the zoom factor it was
// rendered at.  If the page has not been rendered, the frame is nil.
func (v *Viewer) Cached(pageNo int) (*render.Frame, float64) {
	if pageNo < 0 || pageNo >= len(v.pages) {
		return nil, 0
	}
	e := v.pages[pageNo]
	return e.frame, e.zoom
}

func (v *Viewer) rasterize(doc render.Document, pageNo int) (*render.Frame, error) {
	start := time.Now()
	frame, err := render.Rasterize(doc, pageNo, v.zoom, v.raster)
	if err != nil {
		return nil, err
	}
	v.log.Debug("page rendered",
		"page", pageNo+1,
		"zoom", v.zoom,
		"width", frame.Width(),
		"height", frame.Height(),
		"elapsed", time.Since(start))
	return frame, nil
}

// ensure makes sure that page pageNo is in the cache.
func (v *Viewer) ensure(pageNo int) error {
	e := &v.pages[pageNo]
	if e.frame != nil && (!v.opt.RefreshStale || e.zoom == v.zoom) {
		return nil
	}
	frame, err := v.rasterize(v.doc.doc, pageNo)
	if err != nil {
		return err
	}
	*e = entry{frame: frame, zoom: v.zoom}
	return nil
}

// Title returns the window title.  While a document is open, this shows
// the file name, followed by the title stored in the document, if any.
func (v *Viewer) Title() string {
	if v.doc == nil {
		return AppName
	}
	title := AppName + " - " + filepath.Base(v.path)
	if docTitle := strings.TrimSpace(v.docTitle); docTitle != "" {
		title += " (" + docTitle + ")"
	}
	return title
}

// AppName is the name of the application, as shown in window titles.
const AppName = "PDF Viewer"
