package main

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/midbel/econcharts/config"
	"github.com/midbel/econcharts/sdcurve"
)

func renderCommand() *cobra.Command {
	var jobs int
	cmd := &cobra.Command{
		Use:   "render config.toml...",
		Short: "Render the charts described by TOML files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(logLevel)
			grp, ctx := errgroup.WithContext(cmd.Context())
			if jobs > 0 {
				grp.SetLimit(jobs)
			}
			for _, file := range args {
				grp.Go(func() error {
					return renderFile(ctx, file, logger)
				})
			}
			return grp.Wait()
		},
	}
	cmd.Flags().IntVarP(&jobs, "jobs", "j", 0, "number of charts rendered at once (default: all)")
	return cmd
}

func renderFile(ctx context.Context, file string, logger *slog.Logger) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	logger = logger.With(slog.String("config", file))

	cfg, err := config.Load(file)
	if err != nil {
		logger.Error("failed to load config", slog.String("error", err.Error()))
		return err
	}
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", slog.String("error", err.Error()))
		return err
	}
	logger = newLogger(cfg.LogLevel).With(slog.String("config", file))

	curves, opts, err := cfg.Resolve()
	if err != nil {
		logger.Error("failed to load curves", slog.String("error", err.Error()))
		return err
	}
	opts.Logger = logger

	ch, err := sdcurve.Build(curves, opts)
	if err != nil {
		logger.Error("failed to build chart", slog.String("error", err.Error()))
		return err
	}
	output := cfg.Output
	if output != "-" && !filepath.IsAbs(output) {
		output = filepath.Join(filepath.Dir(file), output)
	}
	if err := writeChart(ch, output, os.Stdout); err != nil {
		logger.Error("failed to write chart", slog.String("output", output), slog.String("error", err.Error()))
		return err
	}
	logger.Info("chart written",
		slog.String("output", output),
		slog.Int("layers", len(ch.Layers)),
		slog.Int("equilibria", len(ch.Equilibria)),
	)
	return nil
}
