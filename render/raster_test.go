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

package render_test

import (
	"errors"
	"image"
	"image/color"
	"math"
	"testing"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/pdfview/render"
	"seehuhn.de/go/pdfview/render/rendertest"
)

func near(a, b color.RGBA) bool {
	d := func(x, y uint8) bool {
		if x > y {
			x, y = y, x
		}
		return y-x <= 2
	}
	return d(a.R, b.R) && d(a.G, b.G) && d(a.B, b.B) && d(a.A, b.A)
}

func TestTargetSize(t *testing.T) {
	page := rect.Rect{URx: 612, URy: 792}
	for _, zoom := range []float64{0.1, 0.3, 0.8, 1, 1.25, 1.5625, 2, 3.7} {
		w, h, err := render.TargetSize(page, zoom)
		if err != nil {
			t.Fatal(err)
		}
		wantW := int(math.Round(612 * zoom))
		wantH := int(math.Round(792 * zoom))
		if w != wantW || h != wantH {
			t.Errorf("zoom %g: got %dx%d, want %dx%d", zoom, w, h, wantW, wantH)
		}
	}
}

func TestTargetSizeOffsetBox(t *testing.T) {
	page := rect.Rect{LLx: 10, LLy: 20, URx: 110, URy: 70}
	w, h, err := render.TargetSize(page, 2)
	if err != nil {
		t.Fatal(err)
	}
	if w != 200 || h != 100 {
		t.Errorf("got %dx%d, want 200x100", w, h)
	}
}

func TestTargetSizeMinimum(t *testing.T) {
	w, h, err := render.TargetSize(rect.Rect{URx: 1, URy: 1}, 0.01)
	if err != nil {
		t.Fatal(err)
	}
	if w != 1 || h != 1 {
		t.Errorf("got %dx%d, want 1x1", w, h)
	}
}

func TestTargetSizeLimit(t *testing.T) {
	page := rect.Rect{URx: 40, URy: 30}
	for _, zoom := range []float64{1e8, 1e300, math.MaxFloat64, 0, math.NaN()} {
		w, h, err := render.TargetSize(page, zoom)
		if !errors.Is(err, render.ErrZoom) {
			t.Errorf("zoom %g: got %dx%d, %v, want ErrZoom", zoom, w, h, err)
		}
	}

	// 16384 * 16384 = MaxPixels
	square := rect.Rect{URx: 1024, URy: 1024}
	if _, _, err := render.TargetSize(square, 16); err != nil {
		t.Errorf("MaxPixels rejected: %v", err)
	}
	if _, _, err := render.TargetSize(square, 16.001); !errors.Is(err, render.ErrZoom) {
		t.Errorf("more than MaxPixels: got %v", err)
	}

	// a very thin page must not overflow in the other dimension
	line := rect.Rect{URx: 1e-300, URy: 100}
	if _, _, err := render.TargetSize(line, 1e300); !errors.Is(err, render.ErrZoom) {
		t.Errorf("thin page: got %v", err)
	}
}

func TestCheckZoom(t *testing.T) {
	for _, zoom := range []float64{0, -1, math.NaN(), math.Inf(1), math.Inf(-1)} {
		err := render.CheckZoom(zoom)
		if !errors.Is(err, render.ErrZoom) {
			t.Errorf("zoom %g: got %v, want ErrZoom", zoom, err)
		}
	}
	for _, zoom := range []float64{1e-3, 0.8, 1, 64} {
		if err := render.CheckZoom(zoom); err != nil {
			t.Errorf("zoom %g: unexpected error %v", zoom, err)
		}
	}
}

func TestRasterize(t *testing.T) {
	page := rect.Rect{URx: 100, URy: 60}
	e := rendertest.NewEngine("a.pdf", page, page)
	doc, err := e.Open("a.pdf")
	if err != nil {
		t.Fatal(err)
	}
	defer doc.Close()

	opt := &render.Options{DPI: 144}
	for _, zoom := range []float64{0.5, 1, 1.25} {
		frame, err := render.Rasterize(doc, 1, zoom, opt)
		if err != nil {
			t.Fatal(err)
		}
		wantW, wantH, err := render.TargetSize(page, zoom)
		if err != nil {
			t.Fatal(err)
		}
		if frame.Width() != wantW || frame.Height() != wantH {
			t.Errorf("zoom %g: got %dx%d, want %dx%d",
				zoom, frame.Width(), frame.Height(), wantW, wantH)
		}
		if !frame.Opaque() {
			t.Errorf("zoom %g: frame is not opaque", zoom)
		}

		white := color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
		if c := frame.RGBAAt(0, 0); !near(c, white) {
			t.Errorf("zoom %g: corner is %v, want white", zoom, c)
		}
		pc := rendertest.PageColor(1)
		want := color.RGBA{R: pc.R, G: pc.G, B: pc.B, A: 0xff}
		if c := frame.RGBAAt(wantW/2, wantH/2); !near(c, want) {
			t.Errorf("zoom %g: center is %v, want %v", zoom, c, want)
		}
	}

	d := e.Opened[0]
	if d.LastFlags != render.Annotations|render.SmoothText {
		t.Errorf("rendered with flags %s", d.LastFlags)
	}
	if d.Renders[1] != 3 || d.Renders[0] != 0 {
		t.Errorf("unexpected render counts %v", d.Renders)
	}
}

func TestRasterizeDefaultDPI(t *testing.T) {
	e := rendertest.NewEngine("a.pdf", rect.Rect{URx: 12, URy: 6})
	doc, err := e.Open("a.pdf")
	if err != nil {
		t.Fatal(err)
	}
	frame, err := render.Rasterize(doc, 0, 1, nil)
	if err != nil {
		t.Fatal(err)
	}
	if frame.Width() != 12 || frame.Height() != 6 {
		t.Errorf("got %dx%d, want 12x6", frame.Width(), frame.Height())
	}
}

func TestRasterizeErrors(t *testing.T) {
	e := rendertest.NewEngine("a.pdf", rendertest.Pages(3, rect.Rect{URx: 10, URy: 10})...)
	e.FailRender = map[int]bool{2: true}
	doc, err := e.Open("a.pdf")
	if err != nil {
		t.Fatal(err)
	}
	opt := &render.Options{DPI: 72}

	_, err = render.Rasterize(doc, 3, 1, opt)
	var pageErr *render.PageError
	if !errors.As(err, &pageErr) || pageErr.PageNo != 3 || pageErr.NumPages != 3 {
		t.Errorf("page 3: got %v", err)
	}

	_, err = render.Rasterize(doc, 0, 0, opt)
	if !errors.Is(err, render.ErrZoom) {
		t.Errorf("zoom 0: got %v", err)
	}

	for _, zoom := range []float64{1e8, 1e300} {
		_, err = render.Rasterize(doc, 0, zoom, opt)
		if !errors.Is(err, render.ErrZoom) {
			t.Errorf("zoom %g: got %v", zoom, err)
		}
	}

	for _, dpi := range []float64{-72, math.NaN(), math.Inf(1)} {
		_, err = render.Rasterize(doc, 0, 1, &render.Options{DPI: dpi})
		if !errors.Is(err, render.ErrDPI) {
			t.Errorf("dpi %g: got %v", dpi, err)
		}
	}

	_, err = render.Rasterize(doc, 2, 1, opt)
	if err == nil {
		t.Error("render failure not reported")
	}

	if n := e.Opened[0].Renders[0]; n != 0 {
		t.Errorf("page 0 rendered %d times, want 0", n)
	}
}

func TestPageError(t *testing.T) {
	cases := []struct {
		pageNo, numPages int
		want             string
	}{
		{4, 3, "page 5 not in 1...3"},
		{-1, 3, "page 0 not in 1...3"},
		{0, 0, "page 1 not found, the document has no pages"},
	}
	for _, c := range cases {
		err := render.CheckPage(c.pageNo, c.numPages)
		if err == nil {
			t.Errorf("page %d of %d accepted", c.pageNo, c.numPages)
			continue
		}
		if got := err.Error(); got != c.want {
			t.Errorf("got %q, want %q", got, c.want)
		}
	}
}

func TestResizeBackground(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 40, 40))
	grey := color.RGBA{R: 0x40, G: 0x40, B: 0x40, A: 0xff}
	dst := render.Resize(src, 10, 10, grey)
	for _, p := range []image.Point{{0, 0}, {5, 5}, {9, 9}} {
		if c := dst.RGBAAt(p.X, p.Y); c != grey {
			t.Errorf("pixel %v: got %v, want %v", p, c, grey)
		}
	}
}
