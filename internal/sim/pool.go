package sim

import (
	"math/rand"
	"sort"

	"github.com/hoopstats/fantasy-sim/internal/stats"
)

// Pool is a fixed-size resampled population of games for one player. Entries
// are either real played games or zero-stat DNP placeholders.
type Pool []stats.Game

// dnpGame is the synthetic entry substituted when a player is sampled as
// unavailable or has no usable history.
var dnpGame = stats.Game{}

// BuildPools draws cfg.PoolSize game samples for every player in histories.
// Real games are drawn with replacement from the player's played games in
// the weighted seasons, using the season weight as the sampling
// distribution. When absence injection is enabled, each draw first checks
// the player's availability estimate and emits a DNP game on failure. An
// empty pool always yields DNP games, so every player gets exactly
// cfg.PoolSize samples regardless of data availability.
func BuildPools(rng *rand.Rand, histories map[string][]stats.Game, avail map[string]float64, cfg Config) map[string]Pool {
	pools := make(map[string]Pool, len(histories))
	for playerID, games := range histories {
		pools[playerID] = samplePlayerPool(rng, games, avail[playerID], cfg)
	}
	return pools
}

// samplePlayerPool produces the cfg.PoolSize samples for a single player.
func samplePlayerPool(rng *rand.Rand, games []stats.Game, availability float64, cfg Config) Pool {
	population, cumWeights, totalWeight := weightedPopulation(games, cfg.YearWeights)

	pool := make(Pool, 0, cfg.PoolSize)
	for i := 0; i < cfg.PoolSize; i++ {
		if len(population) == 0 {
			pool = append(pool, dnpGame)
			continue
		}
		if cfg.InjectAbsences && rng.Float64() > availability {
			pool = append(pool, dnpGame)
			continue
		}
		x := rng.Float64() * totalWeight
		idx := sort.SearchFloat64s(cumWeights, x)
		if idx >= len(population) {
			idx = len(population) - 1
		}
		pool = append(pool, population[idx])
	}
	return pool
}

// weightedPopulation filters a history down to played games in the weighted
// seasons and builds the cumulative weight table used for sampling.
func weightedPopulation(games []stats.Game, weights []stats.YearWeight) ([]stats.Game, []float64, float64) {
	weightBySeason := make(map[int]float64, len(weights))
	for _, yw := range weights {
		weightBySeason[yw.Season] = yw.Weight
	}

	population := make([]stats.Game, 0, len(games))
	cumWeights := make([]float64, 0, len(games))
	total := 0.0
	for _, g := range games {
		w, ok := weightBySeason[g.Season]
		if !ok || w <= 0 || !g.Played {
			continue
		}
		total += w
		population = append(population, g)
		cumWeights = append(cumWeights, total)
	}
	return population, cumWeights, total
}
