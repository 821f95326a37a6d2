package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/hoopstats/fantasy-sim/internal/storage"
	"github.com/hoopstats/fantasy-sim/internal/value"
)

func (a *app) valueCommand() *cobra.Command {
	var benchmarkSeason, calculationSeason int

	cmd := &cobra.Command{
		Use:   "value",
		Short: "Calculate and store normalized 9-category player values",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.openStore()
			if err != nil {
				return err
			}

			if benchmarkSeason == 0 {
				benchmarkSeason = a.cfg.ValueBenchmarkSeason
			}
			if calculationSeason == 0 {
				calculationSeason = a.cfg.ValueCalculationSeason
			}
			a.log.WithFields(logrus.Fields{
				"benchmark_season":   benchmarkSeason,
				"calculation_season": calculationSeason,
			}).Info("Calculating player season values")

			benchmark, err := store.SeasonAggregates(benchmarkSeason, a.cfg.ValueMinGames)
			if err != nil {
				return err
			}
			calculation, err := store.SeasonAggregates(calculationSeason, a.cfg.ValueMinGames)
			if err != nil {
				return err
			}

			scores, err := value.Calculate(benchmark, calculation, a.cfg.ValueConfig())
			if err != nil {
				return err
			}

			rows := make([]storage.PlayerSeasonValue, 0, len(scores))
			for _, s := range scores {
				rows = append(rows, storage.PlayerSeasonValue{
					PlayerRowID:    s.PlayerRowID,
					Season:         calculationSeason,
					PointsScore:    s.Points,
					ReboundsScore:  s.Rebounds,
					AssistsScore:   s.Assists,
					StealsScore:    s.Steals,
					BlocksScore:    s.Blocks,
					ThreesScore:    s.Threes,
					TurnoversScore: s.Turnovers,
					FGPctScore:     s.FGPct,
					FTPctScore:     s.FTPct,
					TotalScore:     s.Total,
					PlayLikelihood: s.PlayLikelihood,
				})
			}
			if err := store.UpsertSeasonValues(rows); err != nil {
				return err
			}
			a.log.WithField("players", len(rows)).Info("Season values saved")
			return nil
		},
	}

	cmd.Flags().IntVar(&benchmarkSeason, "benchmark-season", 0, "season the benchmarks come from")
	cmd.Flags().IntVar(&calculationSeason, "season", 0, "season the values are calculated for")
	return cmd
}
