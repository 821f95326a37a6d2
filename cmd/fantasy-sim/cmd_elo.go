package main

import (
	"github.com/spf13/cobra"

	"github.com/hoopstats/fantasy-sim/internal/elo"
	"github.com/hoopstats/fantasy-sim/internal/stats"
	"github.com/hoopstats/fantasy-sim/internal/storage"
)

func (a *app) eloCommand() *cobra.Command {
	var simulations int

	cmd := &cobra.Command{
		Use:   "elo",
		Short: "Update player Elo ratings by simulating drafted seasons",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.openStore()
			if err != nil {
				return err
			}

			records, err := store.Players()
			if err != nil {
				return err
			}
			games, err := store.AllGameLogs()
			if err != nil {
				return err
			}
			players := make([]elo.Player, 0, len(records))
			for _, p := range records {
				players = append(players, elo.Player{ID: p.ID, Games: games[p.ID]})
			}

			stored, err := store.EloRatings()
			if err != nil {
				return err
			}
			existing := make(map[uint]elo.RatingSet, len(stored))
			for id, r := range stored {
				existing[id] = toRatingSet(r)
			}

			cfg := a.cfg.EloConfig()
			if simulations > 0 {
				cfg.Simulations = simulations
			}

			sim := elo.NewSimulator(cfg, a.newRand(), a.log)
			ratings := sim.Run(players, existing)

			rows := make([]storage.EloRating, 0, len(ratings))
			for id, set := range ratings {
				rows = append(rows, toEloRow(id, set))
			}
			if err := store.SaveEloRatings(rows, cfg.Simulations); err != nil {
				return err
			}
			a.log.WithField("players", len(rows)).Info("Elo ratings saved")
			return nil
		},
	}

	cmd.Flags().IntVar(&simulations, "simulations", 0, "override the configured simulation count")
	return cmd
}

func toRatingSet(r storage.EloRating) elo.RatingSet {
	return elo.RatingSet{
		Overall: r.Overall,
		Categories: map[stats.Category]float64{
			stats.Points:       r.Points,
			stats.Rebounds:     r.Rebounds,
			stats.Assists:      r.Assists,
			stats.Steals:       r.Steals,
			stats.Blocks:       r.Blocks,
			stats.ThreesMade:   r.ThreesMade,
			stats.Turnovers:    r.Turnovers,
			stats.FieldGoalPct: r.FGPct,
			stats.FreeThrowPct: r.FTPct,
		},
	}
}

func toEloRow(playerRowID uint, set elo.RatingSet) storage.EloRating {
	return storage.EloRating{
		PlayerRowID: playerRowID,
		Overall:     set.Overall,
		Points:      set.Categories[stats.Points],
		Rebounds:    set.Categories[stats.Rebounds],
		Assists:     set.Categories[stats.Assists],
		Steals:      set.Categories[stats.Steals],
		Blocks:      set.Categories[stats.Blocks],
		ThreesMade:  set.Categories[stats.ThreesMade],
		Turnovers:   set.Categories[stats.Turnovers],
		FGPct:       set.Categories[stats.FieldGoalPct],
		FTPct:       set.Categories[stats.FreeThrowPct],
	}
}
