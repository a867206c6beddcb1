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

package ui

import (
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"seehuhn.de/go/pdfview/pagedialog"
)

// pageInput is the modal "go to page" dialog.
type pageInput struct {
	d   *pagedialog.Dialog
	dlg dialog.Dialog

	entry   *widget.Entry
	warning *widget.Label
	ok      *widget.Button
	cancel  *widget.Button
}

func (w *Window) showGoToPage() {
	if !w.v.Loaded() {
		return
	}
	p := w.newPageInput()
	p.dlg.Show()
	w.win.Canvas().Focus(p.entry)
}

func (w *Window) newPageInput() *pageInput {
	p := &pageInput{
		d:       pagedialog.New(w.v.NumCached()),
		entry:   widget.NewEntry(),
		warning: widget.NewLabel(""),
	}
	p.warning.Importance = widget.WarningImportance

	p.ok = widget.NewButton("OK", func() {
		if err := p.d.Submit(p.entry.Text); err != nil {
			p.warning.SetText(p.d.Warning())
			return
		}
		p.dlg.Hide()
		pageNo, _ := p.d.PageNumber()
		w.report(w.v.GoToPage(pageNo))
	})
	p.ok.Importance = widget.HighImportance
	p.cancel = widget.NewButton("Cancel", func() {
		p.d.Cancel()
		p.dlg.Hide()
	})
	p.entry.OnSubmitted = func(string) { p.ok.OnTapped() }

	content := container.NewVBox(
		widget.NewLabel(p.d.Prompt()),
		p.entry,
		p.warning,
		container.NewHBox(layout.NewSpacer(), p.ok, p.cancel),
	)
	p.dlg = dialog.NewCustomWithoutButtons(p.d.Title(), content, w.win)
	p.dlg.SetOnClosed(func() {
		if p.d.State() == pagedialog.Open {
			p.d.Cancel()
		}
	})
	return p
}
