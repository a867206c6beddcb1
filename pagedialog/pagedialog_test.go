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

package pagedialog

import (
	"errors"
	"testing"
)

func TestConfirm(t *testing.T) {
	for _, in := range []string{"1", "7", " 12 ", "12"} {
		d := New(12)
		if err := d.Submit(in); err != nil {
			t.Errorf("%q: %v", in, err)
			continue
		}
		if d.State() != Confirmed {
			t.Errorf("%q: state %s", in, d.State())
		}
		if _, ok := d.PageNumber(); !ok {
			t.Errorf("%q: no page number", in)
		}
	}

	d := New(12)
	d.Submit("7")
	if pageNo, _ := d.PageNumber(); pageNo != 7 {
		t.Errorf("got page %d, want 7", pageNo)
	}
}

func TestInvalidStaysOpen(t *testing.T) {
	d := New(5)
	for _, in := range []string{"", "0", "6", "-1", "two", "2.5", "99999999999999999999"} {
		err := d.Submit(in)
		var rangeErr *RangeError
		if !errors.As(err, &rangeErr) {
			t.Errorf("%q: got %v, want RangeError", in, err)
		}
		if d.State() != Open {
			t.Errorf("%q: state %s, want open", in, d.State())
		}
		if _, ok := d.PageNumber(); ok {
			t.Errorf("%q: page number reported", in)
		}
	}

	want := "Please enter a valid page number between 1 and 5."
	if w := d.Warning(); w != want {
		t.Errorf("warning %q, want %q", w, want)
	}

	// a later valid input still works and clears the warning
	if err := d.Submit("5"); err != nil {
		t.Fatal(err)
	}
	if d.Warning() != "" {
		t.Error("warning not cleared")
	}
}

func TestCancel(t *testing.T) {
	d := New(3)
	d.Submit("9")
	if err := d.Cancel(); err != nil {
		t.Fatal(err)
	}
	if d.State() != Cancelled {
		t.Errorf("state %s, want cancelled", d.State())
	}
	if _, ok := d.PageNumber(); ok {
		t.Error("cancelled dialog has a page number")
	}

	if err := d.Submit("1"); !errors.Is(err, ErrClosed) {
		t.Errorf("Submit after Cancel: got %v", err)
	}
	if err := d.Cancel(); !errors.Is(err, ErrClosed) {
		t.Errorf("second Cancel: got %v", err)
	}
}

func TestPrompt(t *testing.T) {
	d := New(42)
	if p := d.Prompt(); p != "Enter page number (1-42):" {
		t.Errorf("prompt %q", p)
	}
}

func TestCheck(t *testing.T) {
	if err := Check(3, 3); err != nil {
		t.Error(err)
	}
	for _, pageNo := range []int{0, 4} {
		if Check(pageNo, 3) == nil {
			t.Errorf("page %d accepted", pageNo)
		}
	}
}
