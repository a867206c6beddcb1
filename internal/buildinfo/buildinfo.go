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

// Package buildinfo describes the version of the running program.
package buildinfo

import (
	"runtime/debug"
)

// Info identifies a build of a program.
type Info struct {
	Program  string
	Module   string
	Version  string
	Revision string
	Dirty    bool
}

// Read returns the build information for the named program.
func Read(program string) Info {
	info := Info{Program: program}
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return info
	}
	info.Module = bi.Main.Path
	if v := bi.Main.Version; v != "(devel)" {
		info.Version = v
	}
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			info.Revision = s.Value
		case "vcs.modified":
			info.Dirty = s.Value == "true"
		}
	}
	return info
}

// String returns a one-line description like "pdfview (seehuhn.de/go/pdfview v0.1.0)".
// Without a release version, the shortened VCS revision is shown instead.
func (info Info) String() string {
	v := info.Version
	if v == "" {
		v = info.Revision
		if len(v) > 8 {
			v = v[:8]
		}
		if v != "" && info.Dirty {
			v += "+dirty"
		}
	}
	if info.Module == "" || v == "" {
		return info.Program
	}
	return info.Program + " (" + info.Module + " " + v + ")"
}
