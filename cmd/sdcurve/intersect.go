package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/midbel/econcharts/dataset"
	"github.com/midbel/econcharts/sdcurve"
)

func intersectCommand() *cobra.Command {
	var sheet string
	cmd := &cobra.Command{
		Use:   "intersect data.csv|data.xlsx",
		Short: "Print the equilibrium of each pair of supply and demand curves",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(logLevel)
			set, err := dataset.Load(args[0], sheet)
			if err != nil {
				logger.Error("failed to load curves", slog.String("file", args[0]), slog.String("error", err.Error()))
				return err
			}
			points, err := sdcurve.Equilibria(set.Curves)
			if err != nil {
				logger.Error("failed to compute equilibria", slog.String("error", err.Error()))
				return err
			}
			w := cmd.OutOrStdout()
			for i, p := range points {
				fmt.Fprintf(w, "pair %d: quantity=%.2f price=%.2f\n", i+1, p.X, p.Y)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&sheet, "sheet", "", "sheet to read from spreadsheets (default: first one)")
	return cmd
}
