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

package fitz

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/pdfview/render"
)

// writeTestPDF writes a PDF file with one page per entry of sizes.
// Each page shows a filled black rectangle.
func writeTestPDF(t *testing.T, title string, sizes ...rect.Rect) string {
	t.Helper()

	buf := &bytes.Buffer{}
	var offsets []int
	obj := func(body string) {
		offsets = append(offsets, buf.Len())
		fmt.Fprintf(buf, "%d 0 obj\n%s\nendobj\n", len(offsets), body)
	}

	buf.WriteString("%PDF-1.7\n")
	obj("<< /Type /Catalog /Pages 2 0 R >>")
	kids := &bytes.Buffer{}
	for i := range sizes {
		fmt.Fprintf(kids, " %d 0 R", 4+2*i)
	}
	obj(fmt.Sprintf("<< /Type /Pages /Kids [%s ] /Count %d >>", kids, len(sizes)))
	obj(fmt.Sprintf("<< /Title (%s) >>", title))
	for i, box := range sizes {
		obj(fmt.Sprintf("<< /Type /Page /Parent 2 0 R /MediaBox [%g %g %g %g] /Contents %d 0 R >>",
			box.LLx, box.LLy, box.URx, box.URy, 5+2*i))
		content := "0 g 10 10 20 20 re f"
		obj(fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", len(content), content))
	}

	xref := buf.Len()
	fmt.Fprintf(buf, "xref\n0 %d\n0000000000 65535 f \n", len(offsets)+1)
	for _, o := range offsets {
		fmt.Fprintf(buf, "%010d 00000 n \n", o)
	}
	fmt.Fprintf(buf, "trailer\n<< /Size %d /Root 1 0 R /Info 3 0 R >>\nstartxref\n%d\n%%%%EOF\n",
		len(offsets)+1, xref)

	fname := filepath.Join(t.TempDir(), "test.pdf")
	if err := os.WriteFile(fname, buf.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}
	return fname
}

func TestDocument(t *testing.T) {
	letter := rect.Rect{URx: 612, URy: 792}
	a5 := rect.Rect{URx: 420, URy: 595}
	fname := writeTestPDF(t, "Test Document", letter, a5)

	doc, err := Engine{}.Open(fname)
	if err != nil {
		t.Fatal(err)
	}
	defer doc.Close()

	if n := doc.NumPages(); n != 2 {
		t.Fatalf("got %d pages, want 2", n)
	}

	for i, want := range []rect.Rect{letter, a5} {
		got, err := doc.PageSize(i)
		if err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("page %d size (-want +got):\n%s", i, diff)
		}
	}

	img, err := doc.RenderPage(1, 144, render.Annotations|render.SmoothText)
	if err != nil {
		t.Fatal(err)
	}
	b := img.Bounds()
	if b.Dx() != 840 || b.Dy() != 1190 {
		t.Errorf("rendered size %dx%d, want 840x1190", b.Dx(), b.Dy())
	}

	if title := doc.(*Document).Title(); title != "Test Document" {
		t.Errorf("title %q, want %q", title, "Test Document")
	}
}

func TestFractionalPageSize(t *testing.T) {
	a4 := rect.Rect{URx: 595.276, URy: 841.89}
	fname := writeTestPDF(t, "A4", a4)
	doc, err := Engine{}.Open(fname)
	if err != nil {
		t.Fatal(err)
	}
	defer doc.Close()

	got, err := doc.PageSize(0)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(got.Dx()-a4.Dx()) > 1e-3 || math.Abs(got.Dy()-a4.Dy()) > 1e-3 {
		t.Errorf("page size %gx%g, want %gx%g", got.Dx(), got.Dy(), a4.Dx(), a4.Dy())
	}

	frame, err := render.Rasterize(doc, 0, 1, &render.Options{DPI: 72})
	if err != nil {
		t.Fatal(err)
	}
	if frame.Width() != 595 || frame.Height() != 842 {
		t.Errorf("frame %dx%d, want 595x842", frame.Width(), frame.Height())
	}
}

func TestSVGSize(t *testing.T) {
	svg := `<?xml version="1.0" encoding="UTF-8" standalone="no"?>
<svg xmlns="http://www.w3.org/2000/svg" xmlns:xlink="http://www.w3.org/1999/xlink" version="1.1" width="595.276" height="841.89" viewBox="0 0 595.276 841.89">
</svg>
`
	got, err := svgSize(svg)
	if err != nil {
		t.Fatal(err)
	}
	want := rect.Rect{URx: 595.276, URy: 841.89}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("size (-want +got):\n%s", diff)
	}

	for _, bad := range []string{
		"",
		`<html></html>`,
		`<svg width="10" height="10"></svg>`,
		`<svg viewBox="0 0 10"></svg>`,
		`<svg viewBox="0 0 -10 10"></svg>`,
	} {
		if _, err := svgSize(bad); err == nil {
			t.Errorf("%q: no error", bad)
		}
	}
}

func TestPageRange(t *testing.T) {
	fname := writeTestPDF(t, "x", rect.Rect{URx: 100, URy: 100})
	doc, err := Engine{}.Open(fname)
	if err != nil {
		t.Fatal(err)
	}
	defer doc.Close()

	var pageErr *render.PageError
	if _, err := doc.PageSize(1); !errors.As(err, &pageErr) {
		t.Errorf("PageSize(1): got %v", err)
	}
	if _, err := doc.RenderPage(-1, 72, 0); !errors.As(err, &pageErr) {
		t.Errorf("RenderPage(-1): got %v", err)
	}
}

func TestCloseTwice(t *testing.T) {
	fname := writeTestPDF(t, "x", rect.Rect{URx: 100, URy: 100})
	doc, err := Engine{}.Open(fname)
	if err != nil {
		t.Fatal(err)
	}
	if err := doc.Close(); err != nil {
		t.Fatal(err)
	}
	if err := doc.Close(); err != nil {
		t.Errorf("second Close: %v", err)
	}
	if n := doc.NumPages(); n != 0 {
		t.Errorf("closed document has %d pages", n)
	}
	if _, err := doc.RenderPage(0, 72, 0); err == nil {
		t.Error("closed document could be rendered")
	}
}

func TestOpenMissing(t *testing.T) {
	_, err := Engine{}.Open(filepath.Join(t.TempDir(), "missing.pdf"))
	if err == nil {
		t.Error("missing file opened without error")
	}
}
