package sim

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hoopstats/fantasy-sim/internal/stats"
)

func testConfig() Config {
	return Config{
		Weeks:    200,
		PoolSize: 1000,
		YearWeights: []stats.YearWeight{
			{Season: 2026, Weight: 1.2},
			{Season: 2025, Weight: 0.2},
		},
		RosterSize:     13,
		InjectAbsences: true,
	}
}

func playedGame(season int, points float64) stats.Game {
	return stats.Game{Season: season, Played: true, Line: stats.Line{Points: points}}
}

func TestBuildPoolsExactSize(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	cfg := testConfig()

	histories := map[string][]stats.Game{
		"regular": {playedGame(2026, 20), playedGame(2025, 15)},
		"rookie":  nil,
		"dnpOnly": {{Season: 2026, Played: false}},
	}
	avail := map[string]float64{"regular": 0.9}

	pools := BuildPools(rng, histories, avail, cfg)
	require.Len(t, pools, 3)
	for id, pool := range pools {
		assert.Len(t, pool, cfg.PoolSize, "pool size for %s", id)
	}
}

func TestBuildPoolsEmptyHistoryIsAllDNP(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	pools := BuildPools(rng, map[string][]stats.Game{"rookie": nil}, nil, testConfig())

	for _, g := range pools["rookie"] {
		assert.False(t, g.Played)
		assert.Zero(t, g.Line)
	}
}

func TestBuildPoolsInjectionOffDrawsOnlyRealGames(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	cfg := testConfig()
	cfg.InjectAbsences = false

	histories := map[string][]stats.Game{
		"p": {playedGame(2026, 20), {Season: 2026, Played: false}},
	}
	// Zero availability must not matter when injection is off.
	pools := BuildPools(rng, histories, map[string]float64{"p": 0}, cfg)

	for _, g := range pools["p"] {
		assert.True(t, g.Played)
		assert.Equal(t, 20.0, g.Line.Points)
	}
}

func TestBuildPoolsInjectsAbsences(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	cfg := testConfig()

	histories := map[string][]stats.Game{
		"p": {playedGame(2026, 20)},
	}
	pools := BuildPools(rng, histories, map[string]float64{"p": 0.5}, cfg)

	dnp := 0
	for _, g := range pools["p"] {
		if !g.Played {
			dnp++
		}
	}
	// Availability 0.5 over 1000 draws should leave a substantial DNP share.
	assert.Greater(t, dnp, cfg.PoolSize/4)
	assert.Less(t, dnp, cfg.PoolSize*3/4)
}

func TestBuildPoolsRespectsSeasonWeights(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	cfg := testConfig()
	cfg.InjectAbsences = false
	cfg.PoolSize = 10000

	histories := map[string][]stats.Game{
		"p": {playedGame(2026, 1), playedGame(2025, 2)},
	}
	pools := BuildPools(rng, histories, nil, cfg)

	recent := 0
	for _, g := range pools["p"] {
		if g.Line.Points == 1 {
			recent++
		}
	}
	// Weight ratio 1.2:0.2 puts the recent game near 6/7 of draws.
	share := float64(recent) / float64(cfg.PoolSize)
	assert.InDelta(t, 1.2/1.4, share, 0.02)
}

func TestBuildPoolsExcludesUnweightedSeasons(t *testing.T) {
	rng := rand.New(rand.NewSource(6))
	cfg := testConfig()
	cfg.InjectAbsences = false

	histories := map[string][]stats.Game{
		"p": {playedGame(2020, 99), playedGame(2026, 1)},
	}
	pools := BuildPools(rng, histories, nil, cfg)
	for _, g := range pools["p"] {
		assert.NotEqual(t, 99.0, g.Line.Points)
	}
}
