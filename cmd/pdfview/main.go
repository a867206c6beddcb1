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

// Pdfview is a simple desktop viewer for PDF files.
//
// Usage:
//
//	pdfview [options] [file.pdf]
//
// Settings can also be given as environment variables (PDFVIEW_DPI,
// PDFVIEW_EAGER, ...), either directly or in a ".env" file in the current
// directory.  Command line options take precedence.
package main

import (
	"flag"
	"fmt"
	"os"

	"fyne.io/fyne/v2/app"

	"seehuhn.de/go/pdfview/internal/applog"
	"seehuhn.de/go/pdfview/internal/buildinfo"
	"seehuhn.de/go/pdfview/internal/config"
	"seehuhn.de/go/pdfview/render/fitz"
	"seehuhn.de/go/pdfview/ui"
	"seehuhn.de/go/pdfview/viewer"
)

func main() {
	if err := config.LoadDotEnv(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
	cfg, err := config.FromEnv(os.Getenv)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
	cfg.RegisterFlags(flag.CommandLine)
	flag.Parse()

	version := buildinfo.Read("pdfview").String()
	if cfg.ShowVersion {
		fmt.Println(version)
		return
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
	if flag.NArg() > 1 {
		fmt.Fprintln(os.Stderr, "error: too many arguments")
		flag.Usage()
		os.Exit(1)
	}

	log := applog.New(os.Stderr, cfg.LogLevel)
	log.Debug("starting", "version", version)

	v := viewer.New(fitz.Engine{}, &viewer.Options{
		DPI:          cfg.DPI,
		Eager:        cfg.Eager,
		RefreshStale: cfg.RefreshStale,
		MinZoom:      cfg.MinZoom,
		MaxZoom:      cfg.MaxZoom,
		Language:     cfg.Language,
		Logger:       applog.WithComponent(log, "viewer"),
	})

	a := app.NewWithID("de.seehuhn.pdfview")
	w := ui.New(a, v, applog.WithComponent(log, "ui"), version)
	if flag.NArg() == 1 {
		w.Open(flag.Arg(0))
	}
	w.ShowAndRun()
}
