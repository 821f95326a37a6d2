package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Cohort players A and B share identical shooting impact so the Z-scored
// percentage categories of a matching player collapse to exactly zero.
func benchmarkSeason() []Aggregate {
	return []Aggregate{
		{
			PlayerRowID: 1, GamesPlayed: 82,
			AvgPoints: 30, AvgRebounds: 10, AvgAssists: 10, AvgSteals: 2,
			AvgBlocks: 2, AvgThrees: 3, AvgTurnovers: 2,
			TotalFGM: 820, TotalFGA: 1640, TotalFTM: 413.2, TotalFTA: 500,
		},
		{
			PlayerRowID: 2, GamesPlayed: 82,
			AvgPoints: 20, AvgRebounds: 8, AvgAssists: 6, AvgSteals: 1,
			AvgBlocks: 1, AvgThrees: 2, AvgTurnovers: 3,
			TotalFGM: 512.8, TotalFGA: 1000, TotalFTM: 332.2, TotalFTA: 400,
		},
		{
			PlayerRowID: 3, GamesPlayed: 41,
			AvgPoints: 5, AvgRebounds: 2, AvgAssists: 1, AvgSteals: 0.5,
			AvgBlocks: 0.2, AvgThrees: 0.5, AvgTurnovers: 1,
			TotalFGM: 80, TotalFGA: 200, TotalFTM: 40, TotalFTA: 60,
		},
	}
}

func testValueConfig() Config {
	cfg := DefaultConfig()
	cfg.TopN = 2
	return cfg
}

func TestCalculateScoresAgainstCohortAverages(t *testing.T) {
	// Matches the top-two cohort average in every counting category and its
	// exact shooting impact, so each ratio score lands on the 100 mark.
	calc := []Aggregate{{
		PlayerRowID: 9, GamesPlayed: 41,
		AvgPoints: 25, AvgRebounds: 9, AvgAssists: 8, AvgSteals: 1.5,
		AvgBlocks: 1.5, AvgThrees: 2.5, AvgTurnovers: 2.5,
		TotalFGM: 410, TotalFGA: 820, TotalFTM: 166.1, TotalFTA: 200,
	}}

	scores, err := Calculate(benchmarkSeason(), calc, testValueConfig())
	require.NoError(t, err)
	require.Len(t, scores, 1)

	s := scores[0]
	assert.Equal(t, uint(9), s.PlayerRowID)
	assert.InDelta(t, 100, s.Points, 1e-6)
	assert.InDelta(t, 100, s.Rebounds, 1e-6)
	assert.InDelta(t, 100, s.Assists, 1e-6)
	assert.InDelta(t, 100, s.Steals, 1e-6)
	assert.InDelta(t, 100, s.Blocks, 1e-6)
	assert.InDelta(t, 100, s.Threes, 1e-6)
	assert.InDelta(t, -100, s.Turnovers, 1e-6)
	assert.InDelta(t, 0, s.FGPct, 1e-6)
	assert.InDelta(t, 0, s.FTPct, 1e-6)
	assert.InDelta(t, 500, s.Total, 1e-5)
	assert.InDelta(t, 0.5, s.PlayLikelihood, 1e-12)
}

func TestCalculateExcludesWeakPlayersFromCohort(t *testing.T) {
	// With TopN 2 the weak third player must not drag the benchmarks down:
	// a 25-point scorer sits exactly on the cohort average, not above it.
	calc := []Aggregate{{
		PlayerRowID: 9, GamesPlayed: 82,
		AvgPoints: 25, AvgRebounds: 9, AvgAssists: 8, AvgSteals: 1.5,
		AvgBlocks: 1.5, AvgThrees: 2.5, AvgTurnovers: 2.5,
		TotalFGM: 820, TotalFGA: 1640, TotalFTM: 413.2, TotalFTA: 500,
	}}

	cfg := testValueConfig()
	scores, err := Calculate(benchmarkSeason(), calc, cfg)
	require.NoError(t, err)
	require.Len(t, scores, 1)
	assert.InDelta(t, 100, scores[0].Points, 1e-6)

	// Widening the cohort to all three pulls the average down and the same
	// player scores above 100.
	cfg.TopN = 3
	scores, err = Calculate(benchmarkSeason(), calc, cfg)
	require.NoError(t, err)
	assert.Greater(t, scores[0].Points, 130.0)
}

func TestCalculateRanksByTotalDescending(t *testing.T) {
	calc := []Aggregate{
		{
			PlayerRowID: 9, GamesPlayed: 60,
			AvgPoints: 5, AvgRebounds: 2, AvgAssists: 2, AvgSteals: 0.5,
			AvgBlocks: 0.5, AvgThrees: 0.5, AvgTurnovers: 2,
			TotalFGM: 100, TotalFGA: 250, TotalFTM: 50, TotalFTA: 70,
		},
		{
			PlayerRowID: 10, GamesPlayed: 70,
			AvgPoints: 28, AvgRebounds: 9, AvgAssists: 7, AvgSteals: 1.8,
			AvgBlocks: 1.2, AvgThrees: 2.8, AvgTurnovers: 2.1,
			TotalFGM: 700, TotalFGA: 1400, TotalFTM: 350, TotalFTA: 420,
		},
	}

	scores, err := Calculate(benchmarkSeason(), calc, testValueConfig())
	require.NoError(t, err)
	require.Len(t, scores, 2)
	assert.Equal(t, uint(10), scores[0].PlayerRowID)
	assert.Greater(t, scores[0].Total, scores[1].Total)
	assert.Negative(t, scores[0].Turnovers)
	assert.Negative(t, scores[1].Turnovers)
}

func TestCalculateZeroAttemptsScoreNoImpact(t *testing.T) {
	calc := []Aggregate{{
		PlayerRowID: 9, GamesPlayed: 50,
		AvgPoints: 10, AvgRebounds: 5, AvgAssists: 3, AvgSteals: 1,
		AvgBlocks: 1, AvgThrees: 1, AvgTurnovers: 1,
	}}

	scores, err := Calculate(benchmarkSeason(), calc, testValueConfig())
	require.NoError(t, err)
	require.Len(t, scores, 1)

	// No attempts means zero impact, which Z-scores below the cohort mean.
	assert.Negative(t, scores[0].FGPct)
	assert.Negative(t, scores[0].FTPct)
}

func TestCalculateEmptyInputs(t *testing.T) {
	_, err := Calculate(nil, benchmarkSeason(), testValueConfig())
	assert.ErrorContains(t, err, "benchmark")

	_, err = Calculate(benchmarkSeason(), nil, testValueConfig())
	assert.ErrorContains(t, err, "calculation")
}
