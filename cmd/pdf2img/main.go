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

// Pdf2img renders pages of a PDF file to PNG images, using the same
// rendering pipeline as the viewer.
//
// Usage:
//
//	pdf2img [options] input.pdf output.png
//
// With -all, every page is rendered and the output name must contain a
// "%d" verb, which is replaced by the page number.
package main

import (
	"errors"
	"flag"
	"fmt"
	"image/png"
	"os"
	"strings"

	"golang.org/x/term"

	"seehuhn.de/go/pdfview/internal/buildinfo"
	"seehuhn.de/go/pdfview/internal/config"
	"seehuhn.de/go/pdfview/internal/profile"
	"seehuhn.de/go/pdfview/render"
	"seehuhn.de/go/pdfview/render/fitz"
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

	flag.Float64Var(&cfg.DPI, "dpi", cfg.DPI, "resolution for rendering before scaling")
	zoom := flag.Float64("zoom", 1, "zoom factor (1 = one pixel per point)")
	pageNum := flag.Int("page", 1, "page number to render (1-based)")
	all := flag.Bool("all", false, "render all pages")
	cpuprofile := flag.String("cpuprofile", "", "write cpu profile to `file`")
	memprofile := flag.String("memprofile", "", "write memory profile to `file`")
	version := flag.Bool("version", false, "print version information and exit")
	flag.Parse()

	if *version {
		fmt.Println(buildinfo.Read("pdf2img"))
		return
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
	if flag.NArg() != 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] input.pdf output.png\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(1)
	}

	prof, err := profile.Start(*cpuprofile, *memprofile)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}

	job := &job{
		in:       flag.Arg(0),
		out:      flag.Arg(1),
		zoom:     *zoom,
		opt:      &render.Options{DPI: cfg.DPI},
		progress: term.IsTerminal(int(os.Stderr.Fd())),
	}
	if !*all {
		job.pages = []int{*pageNum - 1}
	}
	err = job.run(fitz.Engine{})

	if err2 := prof.Stop(); err2 != nil {
		fmt.Fprintln(os.Stderr, "error:", err2)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// job describes a batch of pages to render.
type job struct {
	in, out string
	zoom    float64
	opt     *render.Options

	// pages lists the 0-based pages to render.  If this is nil, all
	// pages are rendered.
	pages []int

	progress bool
}

func (j *job) run(e render.Engine) error {
	if err := render.CheckZoom(j.zoom); err != nil {
		return err
	}
	if j.opt != nil && j.opt.DPI != 0 {
		if err := render.CheckDPI(j.opt.DPI); err != nil {
			return err
		}
	}

	doc, err := e.Open(j.in)
	if err != nil {
		return err
	}
	defer doc.Close()

	pages := j.pages
	if pages == nil {
		if !strings.Contains(j.out, "%d") {
			return errors.New("output name must contain %d when rendering all pages")
		}
		pages = make([]int, doc.NumPages())
		for i := range pages {
			pages[i] = i
		}
	}

	for k, pageNo := range pages {
		if j.progress {
			fmt.Fprintf(os.Stderr, "\rpage %d/%d", k+1, len(pages))
		}
		frame, err := render.Rasterize(doc, pageNo, j.zoom, j.opt)
		if err != nil {
			return err
		}
		if err := writePNG(j.outName(pageNo), frame); err != nil {
			return err
		}
	}
	if j.progress {
		fmt.Fprintln(os.Stderr)
	}
	return nil
}

func (j *job) outName(pageNo int) string {
	if strings.Contains(j.out, "%d") {
		return fmt.Sprintf(j.out, pageNo+1)
	}
	return j.out
}

func writePNG(fname string, frame *render.Frame) error {
	out, err := os.Create(fname)
	if err != nil {
		return err
	}
	err = png.Encode(out, frame)
	if err2 := out.Close(); err == nil {
		err = err2
	}
	return err
}
