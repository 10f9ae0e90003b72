package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeSample(t *testing.T) string {
	t.Helper()
	file := filepath.Join(t.TempDir(), "market.csv")
	if err := os.WriteFile(file, []byte("S,,D,\n1,1,7,2\n9,9,2,7\n"), 0o644); err != nil {
		t.Fatalf("write sample: %s", err)
	}
	return file
}

func TestIntersectCommand(t *testing.T) {
	var (
		buf bytes.Buffer
		cmd = intersectCommand()
	)
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{writeSample(t)})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	want := "pair 1: quantity=4.50 price=4.50"
	if got := strings.TrimSpace(buf.String()); got != want {
		t.Fatalf("output mismatched! want %q, got %q", want, got)
	}
}

func TestDrawCommand(t *testing.T) {
	var (
		buf bytes.Buffer
		cmd = drawCommand()
	)
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"--main", "Apples", "--max-price", "6", writeSample(t)})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if out := buf.String(); !strings.Contains(out, "svg") || !strings.Contains(out, "Apples") {
		t.Fatalf("unexpected output: %s", out)
	}
}

func TestDrawCommandInvalidBounds(t *testing.T) {
	cmd := drawCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--max-price", "2", "--min-price", "5"})
	if err := cmd.Execute(); err == nil {
		t.Fatalf("expected error with min price above max price")
	}
}

func TestRenderCommand(t *testing.T) {
	var (
		dir  = t.TempDir()
		file = filepath.Join(dir, "chart.toml")
	)
	conf := `output = "chart.svg"
log_level = "error"

[chart]
main = "Default market"
`
	if err := os.WriteFile(file, []byte(conf), 0o644); err != nil {
		t.Fatalf("write config: %s", err)
	}
	cmd := renderCommand()
	cmd.SetArgs([]string{file})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	out, err := os.ReadFile(filepath.Join(dir, "chart.svg"))
	if err != nil {
		t.Fatalf("chart not written: %s", err)
	}
	if !strings.Contains(string(out), "Default market") {
		t.Fatalf("title not found in chart")
	}
}
