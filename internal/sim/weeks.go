package sim

import (
	"math/rand"

	"github.com/hoopstats/fantasy-sim/internal/stats"
)

// PlayerWeeks maps a player ID to that player's simulated week aggregates.
// Every series has the same length, which keeps team aggregation
// index-aligned across players.
type PlayerWeeks map[string][]stats.Line

// SimulateWeeks rolls cfg.Weeks fantasy-weeks for every player pool. Each
// week draws 3 or 4 games (50/50) without replacement from the player's
// pool and sums them. Players with an empty or missing pool get all-zero
// weeks of the same length. This is the expensive precomputation step; its
// output is reused by the baseline simulation and every trade hypothesis.
func SimulateWeeks(rng *rand.Rand, pools map[string]Pool, cfg Config) PlayerWeeks {
	weeks := make(PlayerWeeks, len(pools))
	for playerID, pool := range pools {
		weeks[playerID] = simulatePlayerWeeks(rng, pool, cfg.Weeks)
	}
	return weeks
}

// simulatePlayerWeeks produces one player's full week series.
func simulatePlayerWeeks(rng *rand.Rand, pool Pool, numWeeks int) []stats.Line {
	series := make([]stats.Line, numWeeks)
	if len(pool) == 0 {
		return series
	}
	for k := 0; k < numWeeks; k++ {
		gamesThisWeek := 3
		if rng.Float64() >= 0.5 {
			gamesThisWeek = 4
		}
		if gamesThisWeek > len(pool) {
			gamesThisWeek = len(pool)
		}
		var week stats.Line
		for _, idx := range sampleIndices(rng, gamesThisWeek, len(pool)) {
			week.Add(pool[idx].Line)
		}
		series[k] = week
	}
	return series
}

// sampleIndices picks n distinct indices in [0, size). n is tiny relative to
// the pool, so rejection sampling beats a full permutation.
func sampleIndices(rng *rand.Rand, n, size int) []int {
	picked := make([]int, 0, n)
	for len(picked) < n {
		idx := rng.Intn(size)
		duplicate := false
		for _, p := range picked {
			if p == idx {
				duplicate = true
				break
			}
		}
		if !duplicate {
			picked = append(picked, idx)
		}
	}
	return picked
}
