package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const sample = `
output = "market.svg"

[chart]
main = "Market for apples"
generic = false
max_price = 7.0

[[curves]]
name = "S"
color = "red"
points = [[1.0, 1.0], [9.0, 9.0]]

[[curves]]
name = "D"
color = "blue"
points = [[7.0, 2.0], [2.0, 7.0]]
`

func TestLoad(t *testing.T) {
	file := filepath.Join(t.TempDir(), "chart.toml")
	if err := os.WriteFile(file, []byte(sample), 0o644); err != nil {
		t.Fatalf("write config: %s", err)
	}
	t.Setenv("SDCURVE_WIDTH", "1024")

	cfg, err := Load(file)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected validation error: %s", err)
	}
	if cfg.Output != "market.svg" {
		t.Errorf("unexpected output %q", cfg.Output)
	}
	if cfg.Chart.Main != "Market for apples" || cfg.Chart.Generic {
		t.Errorf("chart options not decoded: %+v", cfg.Chart)
	}
	if !cfg.Chart.Equilibrium || !cfg.Chart.CurveNames {
		t.Errorf("defaults not kept: %+v", cfg.Chart)
	}
	if cfg.Chart.MaxPrice == nil || *cfg.Chart.MaxPrice != 7 {
		t.Errorf("max price not decoded")
	}
	if cfg.Chart.Width != 1024 {
		t.Errorf("width override not applied: %g", cfg.Chart.Width)
	}

	curves, opts, err := cfg.Resolve()
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if len(curves) != 2 {
		t.Fatalf("expected 2 curves, got %d", len(curves))
	}
	if strings.Join(opts.Names, ",") != "S,D" || strings.Join(opts.LinesColor, ",") != "red,blue" {
		t.Fatalf("names and colors not merged: %v %v", opts.Names, opts.LinesColor)
	}
}

func TestResolveData(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "curves.csv"), []byte("supply,,demand,\n1,1,7,2\n9,9,2,7\n"), 0o644); err != nil {
		t.Fatalf("write data: %s", err)
	}
	file := filepath.Join(dir, "chart.toml")
	if err := os.WriteFile(file, []byte(`data = "curves.csv"`), 0o644); err != nil {
		t.Fatalf("write config: %s", err)
	}
	cfg, err := Load(file)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	curves, opts, err := cfg.Resolve()
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if len(curves) != 2 {
		t.Fatalf("expected 2 curves, got %d", len(curves))
	}
	if strings.Join(opts.Names, ",") != "supply,demand" {
		t.Fatalf("names from header not used: %v", opts.Names)
	}
}

func TestValidate(t *testing.T) {
	data := []struct {
		Name  string
		Input string
		Want  string
	}{
		{
			Name:  "log-level",
			Input: `log_level = "loud"`,
			Want:  "log_level",
		},
		{
			Name: "bounds",
			Input: `[chart]
min_price = 8.0
max_price = 2.0`,
			Want: "min_price",
		},
		{
			Name: "short-curve",
			Input: `[[curves]]
points = [[1.0, 1.0]]`,
			Want: "curves[0]",
		},
		{
			Name: "exclusive",
			Input: `data = "file.csv"
[[curves]]
points = [[1.0, 1.0], [2.0, 2.0]]`,
			Want: "mutually exclusive",
		},
		{
			Name: "negative-size",
			Input: `[chart]
width = -1.0`,
			Want: "chart.width",
		},
	}
	for _, d := range data {
		t.Run(d.Name, func(t *testing.T) {
			cfg, err := Decode(d.Input)
			if err != nil {
				t.Fatalf("unexpected decode error: %s", err)
			}
			err = cfg.Validate()
			if err == nil || !strings.Contains(err.Error(), d.Want) {
				t.Fatalf("expected error mentioning %q, got %v", d.Want, err)
			}
		})
	}
}

func TestDefaults(t *testing.T) {
	cfg := Defaults()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults should be valid: %s", err)
	}
	curves, _, err := cfg.Resolve()
	if err != nil || len(curves) != 0 {
		t.Fatalf("defaults should resolve to no curves: %v, %d", err, len(curves))
	}
}
