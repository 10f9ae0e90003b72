// Package config loads chart definitions from TOML files.
package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/midbel/econcharts/curve"
	"github.com/midbel/econcharts/dataset"
	"github.com/midbel/econcharts/sdcurve"
)

// Config describes one chart: where its curves come from, how to draw them
// and where to write the result.
type Config struct {
	Output   string          `toml:"output"`
	LogLevel string          `toml:"log_level"`
	Data     string          `toml:"data"`
	Sheet    string          `toml:"sheet"`
	Chart    sdcurve.Options `toml:"chart"`
	Curves   []CurveDef      `toml:"curves"`

	// directory of the file the config was loaded from
	dir string
}

// CurveDef is a curve given inline in a config file.
type CurveDef struct {
	Name   string       `toml:"name"`
	Color  string       `toml:"color"`
	Points [][2]float64 `toml:"points"`
}

func (d CurveDef) Curve() (curve.Curve, error) {
	c := make(curve.Curve, len(d.Points))
	for i, p := range d.Points {
		c[i] = curve.NewPoint(p[0], p[1])
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func Defaults() Config {
	return Config{
		Output:   "out.svg",
		LogLevel: "info",
		Chart:    sdcurve.DefaultOptions(),
	}
}

func (c *Config) Validate() error {
	var errs []string

	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Sprintf("log_level must be one of debug, info, warn, error (got %q)", c.LogLevel))
	}
	if c.Output == "" {
		errs = append(errs, "output must not be empty")
	}
	if c.Data != "" && len(c.Curves) > 0 {
		errs = append(errs, "data and curves are mutually exclusive")
	}
	if lo, hi := c.Chart.MinPrice, c.Chart.MaxPrice; lo != nil && hi != nil && *lo >= *hi {
		errs = append(errs, fmt.Sprintf("chart.min_price (%g) must be lower than chart.max_price (%g)", *lo, *hi))
	}
	if c.Chart.Width < 0 || c.Chart.Height < 0 {
		errs = append(errs, "chart.width and chart.height must not be negative")
	}
	for i, d := range c.Curves {
		if _, err := d.Curve(); err != nil {
			errs = append(errs, fmt.Sprintf("curves[%d]: %s", i, err))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(errs, "\n  - "))
	}
	return nil
}

// Resolve returns the curves of the chart, either the inline ones or the ones of
// the data file. Names and colors given with inline curves are merged into the
// chart options when those do not already set them. No curves at all means
// the default ones.
func (c *Config) Resolve() ([]curve.Curve, sdcurve.Options, error) {
	opts := c.Chart
	if c.Data != "" {
		file := c.Data
		if !filepath.IsAbs(file) && c.dir != "" {
			file = filepath.Join(c.dir, file)
		}
		set, err := dataset.Load(file, c.Sheet)
		if err != nil {
			return nil, opts, err
		}
		if len(opts.Names) == 0 && hasNames(set.Names) {
			opts.Names = set.Names
		}
		return set.Curves, opts, nil
	}
	var (
		list   []curve.Curve
		names  []string
		colors []string
	)
	for i, d := range c.Curves {
		cv, err := d.Curve()
		if err != nil {
			return nil, opts, fmt.Errorf("curves[%d]: %w", i, err)
		}
		list = append(list, cv)
		names = append(names, d.Name)
		colors = append(colors, d.Color)
	}
	if len(opts.Names) == 0 && hasNames(names) {
		opts.Names = names
	}
	if len(opts.LinesColor) == 0 && hasNames(colors) {
		opts.LinesColor = colors
	}
	return list, opts, nil
}

func hasNames(list []string) bool {
	if len(list) == 0 {
		return false
	}
	for _, str := range list {
		if str == "" {
			return false
		}
	}
	return true
}
