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

// Package ui implements the desktop window of the viewer, using fyne.
//
// The window only forwards user actions to a viewer.Viewer and displays
// the states published by the viewer.
package ui

import (
	"errors"
	"io"
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"seehuhn.de/go/pdfview/viewer"
)

// Window is the main window of the viewer.
type Window struct {
	win     fyne.Window
	v       *viewer.Viewer
	log     *slog.Logger
	version string

	page   *canvas.Image
	scroll *container.Scroll

	pageLabel  *widget.Label
	totalLabel *widget.Label
	zoomLabel  *widget.Label
	status     *widget.Label
}

// New creates the main window for v.  The version string is shown in the
// about box.
func New(a fyne.App, v *viewer.Viewer, log *slog.Logger, version string) *Window {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	w := &Window{
		win:     a.NewWindow(viewer.AppName),
		v:       v,
		log:     log,
		version: version,

		pageLabel:  widget.NewLabel(""),
		totalLabel: widget.NewLabel(""),
		zoomLabel:  widget.NewLabel(""),
		status:     widget.NewLabel(""),
	}

	w.page = canvas.NewImageFromImage(nil)
	w.page.FillMode = canvas.ImageFillContain
	w.scroll = container.NewScroll(container.NewCenter(w.page))

	toolbar := widget.NewToolbar(
		widget.NewToolbarAction(theme.FolderOpenIcon(), w.showOpenDialog),
		widget.NewToolbarSeparator(),
		widget.NewToolbarAction(theme.NavigateBackIcon(), w.previous),
		widget.NewToolbarAction(theme.NavigateNextIcon(), w.next),
		widget.NewToolbarSeparator(),
		widget.NewToolbarAction(theme.ZoomOutIcon(), w.zoomOut),
		widget.NewToolbarAction(theme.ZoomFitIcon(), w.zoomReset),
		widget.NewToolbarAction(theme.ZoomInIcon(), w.zoomIn),
	)
	info := container.NewHBox(
		widget.NewLabel("Page"), w.pageLabel,
		widget.NewLabel("of"), w.totalLabel,
		widget.NewButton("Go to…", w.showGoToPage),
		layout.NewSpacer(),
		widget.NewLabel("Zoom"), w.zoomLabel,
	)
	top := container.NewVBox(toolbar, info)
	w.win.SetContent(container.NewBorder(top, w.status, nil, nil, w.scroll))
	w.win.SetMainMenu(w.mainMenu())
	w.win.Resize(fyne.NewSize(1000, 800))

	w.win.Canvas().SetOnTypedKey(w.typedKey)
	w.win.Canvas().SetOnTypedRune(w.typedRune)
	w.win.SetOnClosed(func() {
		if err := w.v.Close(); err != nil {
			w.log.Warn("closing document failed", "err", err)
		}
	})

	v.Subscribe(w.update)
	return w
}

func (w *Window) mainMenu() *fyne.MainMenu {
	exit := fyne.NewMenuItem("Exit", w.win.Close)
	exit.IsQuit = true
	file := fyne.NewMenu("File",
		fyne.NewMenuItem("Open…", w.showOpenDialog),
		fyne.NewMenuItem("Save", func() { w.notImplemented("Saving") }),
		fyne.NewMenuItem("Save As…", func() { w.notImplemented("Save As") }),
		fyne.NewMenuItemSeparator(),
		exit,
	)
	edit := fyne.NewMenu("Edit",
		fyne.NewMenuItem("Add Text Annotation", func() { w.notImplemented("Text annotation") }),
	)
	view := fyne.NewMenu("View",
		fyne.NewMenuItem("Previous Page", w.previous),
		fyne.NewMenuItem("Next Page", w.next),
		fyne.NewMenuItem("Go to Page…", w.showGoToPage),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Zoom In", w.zoomIn),
		fyne.NewMenuItem("Zoom Out", w.zoomOut),
		fyne.NewMenuItem("Reset Zoom", w.zoomReset),
	)
	help := fyne.NewMenu("Help",
		fyne.NewMenuItem("About", func() {
			dialog.ShowInformation("About", w.version, w.win)
		}),
	)
	return fyne.NewMainMenu(file, edit, view, help)
}

// ShowAndRun displays the window and runs the event loop until the
// window is closed.
func (w *Window) ShowAndRun() {
	w.win.ShowAndRun()
}

// update shows a new viewer state.
func (w *Window) update(s viewer.State) {
	w.win.SetTitle(s.Title)
	w.pageLabel.SetText(s.PageLabel)
	w.totalLabel.SetText(s.TotalLabel)
	w.zoomLabel.SetText(s.ZoomLabel)
	w.status.SetText(s.Status)

	if s.Image == nil {
		w.page.Image = nil
		w.page.SetMinSize(fyne.NewSize(0, 0))
	} else {
		w.page.Image = s.Image
		w.page.SetMinSize(fyne.NewSize(float32(s.Image.Width()), float32(s.Image.Height())))
	}
	w.page.Refresh()
}

func (w *Window) showOpenDialog() {
	d := dialog.NewFileOpen(func(r fyne.URIReadCloser, err error) {
		if err != nil {
			w.showError(err)
			return
		}
		if r == nil {
			return
		}
		path := r.URI().Path()
		r.Close()
		w.Open(path)
	}, w.win)
	d.SetFilter(storage.NewExtensionFileFilter([]string{".pdf"}))
	d.Show()
}

// Open loads a file into the viewer.  Errors are reported in a dialog.
func (w *Window) Open(path string) {
	err := w.v.Open(path)
	if err != nil {
		w.showError(errors.New("Error opening file: " + err.Error()))
		return
	}
	w.scroll.ScrollToTop()
}

func (w *Window) showError(err error) {
	w.log.Error("action failed", "err", err)
	dialog.ShowError(err, w.win)
}

// report shows errors from navigation and zoom actions.
func (w *Window) report(err error) {
	if err != nil && !errors.Is(err, viewer.ErrNoDocument) {
		w.showError(err)
	}
}

func (w *Window) notImplemented(feature string) {
	dialog.ShowInformation("Information",
		feature+" functionality is not implemented in this simplified version.", w.win)
}

func (w *Window) previous()  { w.report(w.v.Previous()) }
func (w *Window) next()      { w.report(w.v.Next()) }
func (w *Window) zoomIn()    { w.report(w.v.ZoomIn()) }
func (w *Window) zoomOut()   { w.report(w.v.ZoomOut()) }
func (w *Window) zoomReset() { w.report(w.v.ResetZoom()) }

func (w *Window) typedKey(ev *fyne.KeyEvent) {
	switch ev.Name {
	case fyne.KeyLeft, fyne.KeyPageUp:
		w.previous()
	case fyne.KeyRight, fyne.KeyPageDown:
		w.next()
	case fyne.KeyHome:
		w.report(w.v.SetPageIndex(0))
	case fyne.KeyEnd:
		w.report(w.v.SetPageIndex(w.v.NumCached() - 1))
	}
}

func (w *Window) typedRune(r rune) {
	switch r {
	case '+', '=':
		w.zoomIn()
	case '-':
		w.zoomOut()
	case '0':
		w.zoomReset()
	}
}
