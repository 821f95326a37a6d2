package sim

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hoopstats/fantasy-sim/internal/stats"
)

func TestSimulateWeeksSeriesLength(t *testing.T) {
	rng := rand.New(rand.NewSource(10))
	cfg := testConfig()

	pools := map[string]Pool{
		"p":     make(Pool, 50),
		"empty": {},
	}
	for i := range pools["p"] {
		pools["p"][i] = playedGame(2026, 10)
	}

	weeks := SimulateWeeks(rng, pools, cfg)
	require.Len(t, weeks, 2)
	assert.Len(t, weeks["p"], cfg.Weeks)
	assert.Len(t, weeks["empty"], cfg.Weeks)
}

func TestSimulateWeeksEmptyPoolIsAllZero(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	weeks := SimulateWeeks(rng, map[string]Pool{"empty": {}}, testConfig())
	for _, w := range weeks["empty"] {
		assert.Zero(t, w)
	}
}

func TestSimulateWeeksSumsThreeOrFourGames(t *testing.T) {
	rng := rand.New(rand.NewSource(12))
	cfg := testConfig()

	// Identical games make the weekly total reveal the draw count.
	pool := make(Pool, 100)
	for i := range pool {
		pool[i] = playedGame(2026, 10)
	}

	weeks := SimulateWeeks(rng, map[string]Pool{"p": pool}, cfg)

	threes, fours := 0, 0
	for _, w := range weeks["p"] {
		switch w.Points {
		case 30:
			threes++
		case 40:
			fours++
		default:
			t.Fatalf("week totals %v games, want 3 or 4", w.Points/10)
		}
	}
	// The 50/50 split should not be wildly lopsided over 200 weeks.
	assert.Greater(t, threes, cfg.Weeks/5)
	assert.Greater(t, fours, cfg.Weeks/5)
}

func TestSimulateWeeksClampsToPoolSize(t *testing.T) {
	rng := rand.New(rand.NewSource(13))
	cfg := testConfig()

	// Two-game pool cannot supply 3 distinct draws; the week uses both once.
	pool := Pool{playedGame(2026, 10), playedGame(2026, 20)}
	weeks := SimulateWeeks(rng, map[string]Pool{"p": pool}, cfg)
	for _, w := range weeks["p"] {
		assert.Equal(t, 30.0, w.Points)
	}
}

func TestComposeTeamWeeks(t *testing.T) {
	weeks := PlayerWeeks{
		"a": {{Points: 10}, {Points: 20}},
		"b": {{Points: 1}, {Points: 2}},
	}

	team := ComposeTeamWeeks([]string{"a", "b", "missing"}, weeks, 2)
	require.Len(t, team, 2)
	assert.Equal(t, 11.0, team[0].Points)
	assert.Equal(t, 22.0, team[1].Points)
}

func TestComposeTeamWeeksDeterministic(t *testing.T) {
	weeks := PlayerWeeks{
		"a": {{Points: 5, Rebounds: 3}},
		"b": {{Points: 7, Turnovers: 2}},
	}
	first := ComposeTeamWeeks([]string{"a", "b"}, weeks, 1)
	second := ComposeTeamWeeks([]string{"b", "a"}, weeks, 1)
	assert.Equal(t, first, second)
}

func TestStatsLineRates(t *testing.T) {
	l := stats.Line{FieldGoalsMade: 5, FieldGoalAttempts: 10}
	assert.Equal(t, 0.5, l.FieldGoalRate())
	assert.Equal(t, 0.0, l.FreeThrowRate())
	assert.Equal(t, 0.0, stats.Line{}.FieldGoalRate())
}
