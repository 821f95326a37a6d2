package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/hoopstats/fantasy-sim/internal/availability"
	"github.com/hoopstats/fantasy-sim/internal/report"
	"github.com/hoopstats/fantasy-sim/internal/stats"
)

func (a *app) availabilityCommand() *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "availability",
		Short: "Estimate and store every player's play probability",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.openStore()
			if err != nil {
				return err
			}

			players, err := store.Players()
			if err != nil {
				return err
			}
			ids := make([]string, 0, len(players))
			names := make(map[string]string, len(players))
			for _, p := range players {
				ids = append(ids, p.RefID)
				names[p.RefID] = p.Name
			}

			weights := a.cfg.YearWeights
			histories, err := store.Histories(ids, stats.Seasons(weights))
			if err != nil {
				return err
			}

			probs := availability.Estimate(histories, weights, a.cfg.AvailabilityConfig())
			a.log.WithField("players", len(probs)).Info("Availability estimated")

			if !dryRun {
				if err := store.SaveAvailability(probs); err != nil {
					return err
				}
				a.log.Info("Availability saved")
			}

			report.WriteAvailability(os.Stdout, probs, names)
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "print the estimates without storing them")
	return cmd
}
