// Package availability estimates the probability that a player appears in a
// future game, blending their recent seasons' play rate with a league-wide
// Bayesian prior so thin histories regress toward the norm.
package availability

import (
	"github.com/hoopstats/fantasy-sim/internal/stats"
)

// Config holds the Bayesian prior for play-rate smoothing.
type Config struct {
	// PriorPlayRate is the league-average probability of playing a game.
	PriorPlayRate float64
	// PriorGames is the prior's strength expressed in equivalent games.
	PriorGames float64
}

// Estimate computes a smoothed play probability for every player in
// histories. Each weighted season contributes its games-played and
// total-games counts scaled by the season weight; the weight-normalized
// "virtual season" is then shrunk toward the prior. Players with no games in
// any weighted season receive the prior rate directly.
func Estimate(histories map[string][]stats.Game, weights []stats.YearWeight, cfg Config) map[string]float64 {
	weightBySeason := make(map[int]float64, len(weights))
	for _, yw := range weights {
		weightBySeason[yw.Season] = yw.Weight
	}

	priorPlayed := cfg.PriorPlayRate * cfg.PriorGames

	probs := make(map[string]float64, len(histories))
	for playerID, games := range histories {
		var weightedPlayed, weightedTotal, weightSum float64

		type seasonTally struct{ played, total float64 }
		tallies := make(map[int]*seasonTally)
		for _, g := range games {
			w, ok := weightBySeason[g.Season]
			if !ok || w <= 0 {
				continue
			}
			t := tallies[g.Season]
			if t == nil {
				t = &seasonTally{}
				tallies[g.Season] = t
			}
			t.total++
			if g.Played {
				t.played++
			}
		}
		for season, t := range tallies {
			w := weightBySeason[season]
			weightedPlayed += t.played * w
			weightedTotal += t.total * w
			weightSum += w
		}

		if weightSum <= 0 {
			probs[playerID] = cfg.PriorPlayRate
			continue
		}

		virtualPlayed := weightedPlayed / weightSum
		virtualTotal := weightedTotal / weightSum
		prob := (virtualPlayed + priorPlayed) / (virtualTotal + cfg.PriorGames)
		probs[playerID] = clamp01(prob)
	}
	return probs
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
