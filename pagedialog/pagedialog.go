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

// Package pagedialog implements the logic of the "go to page" dialog.
//
// A Dialog starts in state Open.  Valid input moves it to Confirmed,
// cancelling moves it to Cancelled.  Invalid input leaves the dialog
// open and sets a warning message.
package pagedialog

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// State is the state of a Dialog.
type State int

// These are the possible states of a Dialog.
const (
	Open State = iota
	Confirmed
	Cancelled
)

func (s State) String() string {
	switch s {
	case Open:
		return "open"
	case Confirmed:
		return "confirmed"
	case Cancelled:
		return "cancelled"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// ErrClosed is returned when input is submitted to a dialog which is no
// longer open.
var ErrClosed = errors.New("dialog is closed")

// RangeError reports a page number which is not a number in the range
// 1, ..., Max.
type RangeError struct {
	Input string
	Max   int
}

func (err *RangeError) Error() string {
	return fmt.Sprintf("Please enter a valid page number between 1 and %d.", err.Max)
}

// Check returns a *RangeError if pageNo is not a valid 1-based page number
// for a document with maxPage pages.
func Check(pageNo, maxPage int) error {
	if pageNo < 1 || pageNo > maxPage {
		return &RangeError{Input: strconv.Itoa(pageNo), Max: maxPage}
	}
	return nil
}

// Dialog asks for a 1-based page number.
type Dialog struct {
	maxPage int
	state   State
	pageNo  int
	warning string
}

// New returns a dialog for a document with maxPage pages.
func New(maxPage int) *Dialog {
	return &Dialog{maxPage: maxPage}
}

// Title returns the window title of the dialog.
func (d *Dialog) Title() string {
	return "Go to Page"
}

// Prompt returns the text shown above the input field.
func (d *Dialog) Prompt() string {
	return fmt.Sprintf("Enter page number (1-%d):", d.maxPage)
}

// Submit validates the user input.
//
// If the input is a valid page number, the dialog moves to state
// Confirmed.  Otherwise the dialog stays open, the warning is set and a
// *RangeError is returned.
func (d *Dialog) Submit(input string) error {
	if d.state != Open {
		return ErrClosed
	}

	pageNo, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil || pageNo < 1 || pageNo > d.maxPage {
		rangeErr := &RangeError{Input: input, Max: d.maxPage}
		d.warning = rangeErr.Error()
		return rangeErr
	}

	d.state = Confirmed
	d.pageNo = pageNo
	d.warning = ""
	return nil
}

// Cancel closes the dialog without a result.
func (d *Dialog) Cancel() error {
	if d.state != Open {
		return ErrClosed
	}
	d.state = Cancelled
	d.warning = ""
	return nil
}

// State returns the current state of the dialog.
func (d *Dialog) State() State {
	return d.state
}

// PageNumber returns the confirmed, 1-based page number.
// The second return value is false unless the dialog is Confirmed.
func (d *Dialog) PageNumber() (int, bool) {
	return d.pageNo, d.state == Confirmed
}

// Warning returns the message for the most recent invalid input,
// or the empty string.
func (d *Dialog) Warning() string {
	return d.warning
}
