// Package sim implements the Monte-Carlo matchup engine: it resamples each
// player's historical games into a fixed pool, pre-aggregates the pool into
// simulated fantasy-weeks, composes team weeks from roster membership, and
// compares teams category by category to estimate weekly win probabilities.
package sim

import "github.com/hoopstats/fantasy-sim/internal/stats"

// Config carries the immutable parameters for one simulation run. Every
// component receives it explicitly so runs with different settings can
// coexist in the same process.
type Config struct {
	// Weeks is the number of simulated fantasy-weeks per player and team.
	Weeks int
	// PoolSize is the number of game samples drawn per player.
	PoolSize int
	// YearWeights is the recency-weighted season schedule used for both
	// availability estimation and weighted game sampling.
	YearWeights []stats.YearWeight
	// RosterSize is the active player count every roster view must have.
	RosterSize int
	// InjectAbsences substitutes zero-stat DNP games according to each
	// player's availability estimate. Disable it for healthy projections.
	InjectAbsences bool
}

// DefaultConfig returns the standard league run parameters.
func DefaultConfig() Config {
	return Config{
		Weeks:    5000,
		PoolSize: 10000,
		YearWeights: []stats.YearWeight{
			{Season: 2026, Weight: 1.2},
			{Season: 2025, Weight: 0.2},
			{Season: 2024, Weight: 0.1},
		},
		RosterSize:     13,
		InjectAbsences: true,
	}
}

// GameHistoryProvider supplies historical game logs for simulation input,
// decoupling the engine from any particular storage layer.
type GameHistoryProvider interface {
	// Histories returns each requested player's games restricted to the
	// given seasons, keyed by player ID. Players with no recorded games may
	// be absent from the result.
	Histories(playerIDs []string, seasons []int) (map[string][]stats.Game, error)
}
