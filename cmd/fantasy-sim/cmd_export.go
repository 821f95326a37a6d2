package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/hoopstats/fantasy-sim/internal/report"
)

func (a *app) exportCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export stored ratings and values to CSV",
	}
	cmd.AddCommand(a.exportEloCommand(), a.exportValuesCommand())
	return cmd
}

func (a *app) exportEloCommand() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "elo",
		Short: "Export player Elo ratings",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.openStore()
			if err != nil {
				return err
			}
			rows, err := store.RatedPlayers()
			if err != nil {
				return err
			}
			if len(rows) == 0 {
				return fmt.Errorf("no elo ratings stored, run the elo command first")
			}

			if out == "" {
				out = filepath.Join(a.cfg.OutputDir, "elo_ratings.csv")
			}
			f, err := createOutput(out)
			if err != nil {
				return err
			}
			defer f.Close()

			if err := report.ExportElo(f, rows); err != nil {
				return err
			}
			a.log.WithField("path", out).WithField("rows", len(rows)).Info("Elo ratings exported")
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "output file path")
	return cmd
}

func (a *app) exportValuesCommand() *cobra.Command {
	var (
		out    string
		season int
	)

	cmd := &cobra.Command{
		Use:   "values",
		Short: "Export player season values",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.openStore()
			if err != nil {
				return err
			}
			if season == 0 {
				season = a.cfg.ValueCalculationSeason
			}
			rows, err := store.SeasonValues(season)
			if err != nil {
				return err
			}
			if len(rows) == 0 {
				return fmt.Errorf("no values stored for season %d, run the value command first", season)
			}

			if out == "" {
				out = filepath.Join(a.cfg.OutputDir, fmt.Sprintf("player_values_%d.csv", season))
			}
			f, err := createOutput(out)
			if err != nil {
				return err
			}
			defer f.Close()

			if err := report.ExportValues(f, rows); err != nil {
				return err
			}
			a.log.WithField("path", out).WithField("rows", len(rows)).Info("Season values exported")
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "output file path")
	cmd.Flags().IntVar(&season, "season", 0, "season to export")
	return cmd
}

func createOutput(path string) (*os.File, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create output file: %w", err)
	}
	return f, nil
}
