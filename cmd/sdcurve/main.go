// Command sdcurve draws supply and demand diagrams as SVG.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/midbel/econcharts/sdcurve"
)

var (
	logLevel string
	logJSON  bool
)

func main() {
	root := &cobra.Command{
		Use:   "sdcurve",
		Short: "Draw supply and demand diagrams",
		Long: `sdcurve draws supply and demand curves, their equilibria and
price controls as SVG documents.`,
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level: debug, info, warn, error")
	root.PersistentFlags().BoolVar(&logJSON, "log-json", false, "write logs as JSON")

	root.AddCommand(drawCommand())
	root.AddCommand(renderCommand())
	root.AddCommand(intersectCommand())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{
		Level: lvl,
	}
	if logJSON {
		return slog.New(slog.NewJSONHandler(os.Stderr, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, opts))
}

// writeChart renders ch to file, or to stdout when file is empty or "-".
func writeChart(ch sdcurve.Chart, file string, stdout io.Writer) error {
	if file == "" || file == "-" {
		return ch.Render(stdout)
	}
	w, err := os.Create(file)
	if err != nil {
		return err
	}
	if err := ch.Render(w); err != nil {
		w.Close()
		return fmt.Errorf("%s: %w", file, err)
	}
	return w.Close()
}
