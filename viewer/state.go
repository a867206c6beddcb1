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

	"seehuhn.de/go/pdfview/render"
)

// State is everything the display needs to know about a Viewer.
type State struct {
	Title  string
	Status string

	// DocTitle is the title stored in the document, if any.
	DocTitle string

	Path      string
	PageIndex int
	PageCount int
	Zoom      float64

	// PageLabel is the 1-based number of the current page,
	// TotalLabel the number of pages, and ZoomLabel the zoom factor
	// as a percentage.
	PageLabel  string
	TotalLabel string
	ZoomLabel  string

	// Image is the current page.  This is nil if no document is loaded,
	// or if the document has no pages.
	Image *render.Frame
}

// State returns the current state of the viewer.
func (v *Viewer) State() State {
	s := State{
		Title:      v.Title(),
		Status:     "Ready",
		DocTitle:   v.docTitle,
		Path:       v.path,
		PageIndex:  v.index,
		PageCount:  len(v.pages),
		Zoom:       v.zoom,
		PageLabel:  v.p.Sprintf("%d", v.index+1),
		TotalLabel: v.p.Sprintf("%d", len(v.pages)),
		ZoomLabel:  v.p.Sprintf("%d%%", int(math.Round(v.zoom*100))),
	}
	if v.doc != nil {
		s.Status = "File loaded: " + v.path
	}
	if v.index < len(v.pages) {
		s.Image = v.pages[v.index].frame
	}
	return s
}
