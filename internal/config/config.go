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

// Package config collects the settings of the pdfview programs.
//
// Settings are read from environment variables (optionally stored in a
// ".env" file) and can be overridden by command line flags.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log/slog"
	"math"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"golang.org/x/text/language"
)

// These are the environment variables read by FromEnv.
const (
	EnvDPI          = "PDFVIEW_DPI"
	EnvEager        = "PDFVIEW_EAGER"
	EnvRefreshStale = "PDFVIEW_REFRESH_STALE"
	EnvMinZoom      = "PDFVIEW_MIN_ZOOM"
	EnvMaxZoom      = "PDFVIEW_MAX_ZOOM"
	EnvLogLevel     = "PDFVIEW_LOG_LEVEL"
	EnvLang         = "PDFVIEW_LANG"
)

// Config holds the settings of the viewer.
type Config struct {
	// DPI is the resolution used to render pages before scaling.
	DPI float64

	// Eager selects rendering all pages when a document is opened.
	Eager bool

	// RefreshStale selects re-rendering pages which were rendered at an
	// old zoom factor.
	RefreshStale bool

	// MinZoom and MaxZoom bound the zoom factor for the zoom buttons.
	MinZoom, MaxZoom float64

	LogLevel slog.Level
	Language language.Tag

	ShowVersion bool
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		DPI:      600,
		MinZoom:  0.1,
		MaxZoom:  8,
		LogLevel: slog.LevelInfo,
		Language: language.English,
	}
}

// LoadDotEnv reads environment variables from the given files, or from
// ".env" if no files are given.  Missing files are ignored.  Variables
// which are already set are not changed.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, fname := range files {
		err := godotenv.Load(fname)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%s: %w", fname, err)
		}
	}
	return nil
}

// FromEnv returns the default settings, modified by the environment
// variables present in getenv.
func FromEnv(getenv func(string) string) (*Config, error) {
	c := Default()

	var errs []error
	setFloat := func(key string, p *float64) {
		s := getenv(key)
		if s == "" {
			return
		}
		x, err := strconv.ParseFloat(s, 64)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", key, err))
			return
		}
		*p = x
	}
	setBool := func(key string, p *bool) {
		s := getenv(key)
		if s == "" {
			return
		}
		x, err := strconv.ParseBool(s)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", key, err))
			return
		}
		*p = x
	}

	setFloat(EnvDPI, &c.DPI)
	setBool(EnvEager, &c.Eager)
	setBool(EnvRefreshStale, &c.RefreshStale)
	setFloat(EnvMinZoom, &c.MinZoom)
	setFloat(EnvMaxZoom, &c.MaxZoom)
	if s := getenv(EnvLogLevel); s != "" {
		if err := c.LogLevel.UnmarshalText([]byte(s)); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", EnvLogLevel, err))
		}
	}
	if s := getenv(EnvLang); s != "" {
		// values like "de_DE.UTF-8" are common in the environment
		s, _, _ = strings.Cut(s, ".")
		tag, err := language.Parse(strings.ReplaceAll(s, "_", "-"))
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", EnvLang, err))
		} else {
			c.Language = tag
		}
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return c, nil
}

// RegisterFlags adds command line flags for all settings.  The
// current values are used as the flag defaults.
func (c *Config) RegisterFlags(flags *flag.FlagSet) {
	flags.Float64Var(&c.DPI, "dpi", c.DPI, "resolution for rendering pages before scaling")
	flags.BoolVar(&c.Eager, "eager", c.Eager, "render all pages when a file is opened")
	flags.BoolVar(&c.RefreshStale, "refresh-stale", c.RefreshStale,
		"re-render pages shown at an outdated zoom factor")
	flags.Float64Var(&c.MinZoom, "min-zoom", c.MinZoom, "smallest zoom factor for zoom out")
	flags.Float64Var(&c.MaxZoom, "max-zoom", c.MaxZoom, "largest zoom factor for zoom in")
	flags.TextVar(&c.LogLevel, "log-level", c.LogLevel, "log level (debug, info, warn, error)")
	flags.TextVar(&c.Language, "lang", c.Language, "language for number formatting")
	flags.BoolVar(&c.ShowVersion, "version", false, "print version information and exit")
}

// Validate checks the settings for consistency.
func (c *Config) Validate() error {
	if !(c.DPI > 0) || math.IsInf(c.DPI, 0) {
		return fmt.Errorf("invalid DPI %g", c.DPI)
	}
	if c.MinZoom < 0 || c.MaxZoom < 0 {
		return fmt.Errorf("invalid zoom limits %g, %g", c.MinZoom, c.MaxZoom)
	}
	if c.MinZoom > 0 && c.MaxZoom > 0 && c.MinZoom > c.MaxZoom {
		return fmt.Errorf("minimum zoom %g exceeds maximum zoom %g", c.MinZoom, c.MaxZoom)
	}
	return nil
}
