package main

import (
	"log/slog"
	"slices"

	"github.com/spf13/cobra"

	"github.com/midbel/econcharts/curve"
	"github.com/midbel/econcharts/dataset"
	"github.com/midbel/econcharts/sdcurve"
)

func drawCommand() *cobra.Command {
	var (
		opts     = sdcurve.DefaultOptions()
		output   string
		sheet    string
		maxPrice float64
		minPrice float64
	)
	cmd := &cobra.Command{
		Use:   "draw [data.csv|data.xlsx]",
		Short: "Draw the curves of a data file, or the default ones",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(logLevel)
			if cmd.Flags().Changed("max-price") {
				opts.MaxPrice = sdcurve.Price(maxPrice)
			}
			if cmd.Flags().Changed("min-price") {
				opts.MinPrice = sdcurve.Price(minPrice)
			}
			opts.Logger = logger

			var curves []curve.Curve
			if len(args) > 0 {
				set, err := dataset.Load(args[0], sheet)
				if err != nil {
					logger.Error("failed to load curves", slog.String("file", args[0]), slog.String("error", err.Error()))
					return err
				}
				curves = set.Curves
				if len(opts.Names) == 0 && len(set.Names) == len(curves) && !slices.Contains(set.Names, "") {
					opts.Names = set.Names
				}
				logger.Debug("curves loaded", slog.String("file", args[0]), slog.Int("count", len(curves)))
			}
			ch, err := sdcurve.Build(curves, opts)
			if err != nil {
				logger.Error("failed to build chart", slog.String("error", err.Error()))
				return err
			}
			if err := writeChart(ch, output, cmd.OutOrStdout()); err != nil {
				logger.Error("failed to write chart", slog.String("output", output), slog.String("error", err.Error()))
				return err
			}
			if output != "" && output != "-" {
				logger.Info("chart written", slog.String("output", output), slog.Int("layers", len(ch.Layers)))
			}
			return nil
		},
	}

	fs := cmd.Flags()
	fs.StringVarP(&output, "output", "o", "", "output file (default: stdout)")
	fs.StringVar(&sheet, "sheet", "", "sheet to read from spreadsheets (default: first one)")
	fs.Float64Var(&opts.XMax, "xmax", opts.XMax, "x bound of the default curves")
	fs.Float64Var(&opts.YMax, "ymax", opts.YMax, "y bound of the default curves")
	fs.Float64Var(&maxPrice, "max-price", 0, "price ceiling")
	fs.Float64Var(&minPrice, "min-price", 0, "price floor")
	fs.BoolVar(&opts.Generic, "generic", opts.Generic, "label equilibria with Q1, P1... instead of values")
	fs.BoolVar(&opts.Equilibrium, "equilibrium", opts.Equilibrium, "compute and draw equilibria")
	fs.BoolVar(&opts.CurveNames, "curve-names", opts.CurveNames, "label curves")
	fs.StringSliceVar(&opts.Names, "names", nil, "curve labels, one per curve")
	fs.StringSliceVar(&opts.LinesColor, "colors", nil, "curve colors, one per curve")
	fs.StringVar(&opts.Palette, "palette", opts.Palette, "palette of default colors: category10, tableau10")
	fs.StringVar(&opts.Shape, "shape", opts.Shape, "equilibrium marker: circle, square, diamond")
	fs.StringVar(&opts.Main, "main", "", "chart title")
	fs.StringVar(&opts.Sub, "sub", "", "chart subtitle")
	fs.StringVar(&opts.XLab, "xlab", opts.XLab, "x axis title")
	fs.StringVar(&opts.YLab, "ylab", opts.YLab, "y axis title")
	fs.StringVar(&opts.BgColor, "bg", opts.BgColor, "background color")
	fs.Float64Var(&opts.Width, "width", opts.Width, "chart width")
	fs.Float64Var(&opts.Height, "height", opts.Height, "chart height")
	fs.BoolVarP(&opts.Verbose, "verbose", "v", false, "log computed equilibria")
	return cmd
}
