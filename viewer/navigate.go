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

package viewer

import (
	"math"

	"seehuhn.de/go/pdfview/pagedialog"
	"seehuhn.de/go/pdfview/render"
)

// PageIndex returns the 0-based index of the current page.
func (v *Viewer) PageIndex() int {
	return v.index
}

// SetPageIndex makes page i the current page.  Out of range values are
// clamped to the first or last page.
//
// If the page needs to be rendered and rendering fails, the current page
// is not changed and the error is returned.
func (v *Viewer) SetPageIndex(i int) error {
	n := len(v.pages)
	switch {
	case n == 0 || i < 0:
		i = 0
	case i >= n:
		i = n - 1
	}

	if n > 0 {
		if err := v.ensure(i); err != nil {
			v.log.Error("render failed", "page", i+1, "err", err)
			return err
		}
	}
	v.index = i
	v.publish()
	return nil
}

// Next moves to the following page.
// On the last page, this is a no-op.
func (v *Viewer) Next() error {
	return v.SetPageIndex(v.index + 1)
}

// Previous moves to the preceding page.
// On the first page, this is a no-op.
func (v *Viewer) Previous() error {
	return v.SetPageIndex(v.index - 1)
}

// GoToPage makes the page with 1-based number pageNo the current page.
// If pageNo is out of range, a *pagedialog.RangeError is returned and the
// current page is not changed.
func (v *Viewer) GoToPage(pageNo int) error {
	if v.doc == nil {
		return ErrNoDocument
	}
	if err := pagedialog.Check(pageNo, len(v.pages)); err != nil {
		return err
	}
	return v.SetPageIndex(pageNo - 1)
}

// Zoom returns the current zoom factor.
func (v *Viewer) Zoom() float64 {
	return v.zoom
}

// SetZoom changes the zoom factor and renders the current page at the new
// size.  Other cached pages are left alone, unless the RefreshStale option
// is set, in which case they are rendered again when they are displayed.
//
// The factor must be positive and finite, and the page bitmap must not
// exceed render.MaxPixels.  If rendering fails, the old zoom factor is
// kept.
func (v *Viewer) SetZoom(zoom float64) error {
	if err := render.CheckZoom(zoom); err != nil {
		return err
	}

	if v.doc != nil && len(v.pages) > 0 {
		old := v.zoom
		v.zoom = zoom
		frame, err := v.rasterize(v.doc.doc, v.index)
		if err != nil {
			v.zoom = old
			v.log.Error("render failed", "page", v.index+1, "zoom", zoom, "err", err)
			return err
		}
		v.pages[v.index] = entry{frame: frame, zoom: zoom}
	}
	v.zoom = zoom
	v.publish()
	return nil
}

// ZoomIn enlarges the page by one zoom step.
func (v *Viewer) ZoomIn() error {
	return v.SetZoom(v.clampZoom(v.zoom * v.opt.ZoomStep))
}

// ZoomOut shrinks the page by one zoom step.
func (v *Viewer) ZoomOut() error {
	return v.SetZoom(v.clampZoom(v.zoom / v.opt.ZoomStep))
}

// ResetZoom sets the zoom factor back to 1.
func (v *Viewer) ResetZoom() error {
	return v.SetZoom(1)
}

func (v *Viewer) clampZoom(zoom float64) float64 {
	if v.opt.MinZoom > 0 {
		zoom = math.Max(zoom, v.opt.MinZoom)
	}
	if v.opt.MaxZoom > 0 {
		zoom = math.Min(zoom, v.opt.MaxZoom)
	}
	return zoom
}
