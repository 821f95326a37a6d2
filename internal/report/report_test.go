package report

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hoopstats/fantasy-sim/internal/roster"
	"github.com/hoopstats/fantasy-sim/internal/sim"
	"github.com/hoopstats/fantasy-sim/internal/storage"
	"github.com/hoopstats/fantasy-sim/internal/trade"
)

func testBaseline() *sim.Baseline {
	b := &sim.Baseline{
		Teams:    []string{"Alpha", "Beta"},
		WinProbs: make(map[sim.MatchupKey]sim.WinProbability),
		Averages: make(map[string]map[roster.Scenario]sim.TeamAverages),
	}
	for _, scenario := range roster.Scenarios {
		probs := sim.WinProbability{Overall: 0.75, Points: 1, Turnovers: 0.5}
		b.WinProbs[sim.MatchupKey{Team1: "Alpha", Team2: "Beta", Scenario: scenario}] = probs
		b.WinProbs[sim.MatchupKey{Team1: "Beta", Team2: "Alpha", Scenario: scenario}] = probs.Complement()
	}
	for _, team := range b.Teams {
		b.Averages[team] = map[roster.Scenario]sim.TeamAverages{
			roster.ScenarioFullStrength: {FieldGoalPct: 0.48, FreeThrowPct: 0.8},
			roster.ScenarioCurrent:      {FieldGoalPct: 0.45, FreeThrowPct: 0.78},
		}
	}
	return b
}

func TestWriteWinProbs(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteWinProbs(&buf, testBaseline()))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)

	// Header plus both directions of one pairing under both scenarios.
	require.Len(t, records, 5)
	assert.Equal(t, []string{
		"team_1", "team_2", "FullStrength", "Win%_Overall",
		"Win%_Points", "Win%_Rebounds", "Win%_Assists", "Win%_Steals",
		"Win%_Turnovers", "Win%_Blocks", "Win%_3_Pointers",
		"Win%_FG_Pct", "Win%_FT_Pct",
	}, records[0])

	first := records[1]
	assert.Equal(t, []string{"Alpha", "Beta", "true"}, first[:3])
	assert.Equal(t, "0.7500", first[3])
	assert.Equal(t, "1.0000", first[4])

	reverse := records[2]
	assert.Equal(t, []string{"Beta", "Alpha", "true"}, reverse[:3])
	assert.Equal(t, "0.2500", reverse[3])

	assert.Equal(t, "false", records[3][2])
}

func TestWriteAverages(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteAverages(&buf, testBaseline()))

	out := buf.String()
	assert.Contains(t, out, "--- Average Weekly Stats ---")
	assert.Contains(t, out, "team,FullStrength,PTS,REB,AST,STL,BLK,3PM,TO,FGM,FGA,FG_Pct,FTM,FTA,FT_Pct")
	assert.Contains(t, out, "Alpha,true")
	assert.Contains(t, out, "Beta,false")
	assert.Contains(t, out, "0.4800")
}

func tradeProposal() trade.Proposal {
	result := trade.ScenarioResult{
		Team1GainSum: 0.1,
		Team2GainSum: -0.02,
		Team1Deltas:  map[string]float64{"Opp": 0.1},
		Team1New:     map[string]float64{"Opp": 0.6},
		Team2Deltas:  map[string]float64{"Opp": -0.02},
		Team2New:     map[string]float64{"Opp": 0.9},
	}
	return trade.Proposal{
		Team1Gives:   []string{"p1"},
		Team2Gives:   []string{"q1"},
		CombinedGain: 0.16,
		Scenarios: map[roster.Scenario]trade.ScenarioResult{
			roster.ScenarioFullStrength: result,
			roster.ScenarioCurrent:      result,
		},
	}
}

func TestWriteTradeReport(t *testing.T) {
	var buf bytes.Buffer
	WriteTradeReport(&buf, TradeReport{
		Team1:     "One",
		Team2:     "Two",
		Proposals: []trade.Proposal{tradeProposal()},
		Names:     map[string]string{"p1": "Alice", "q1": "Bob"},
	})

	out := buf.String()
	assert.Contains(t, out, "TRADE #1: One gets [Bob] <--> Two gets [Alice]")
	assert.Contains(t, out, "Combined Metric: 0.1600")
	assert.Contains(t, out, "OVERALL (Avg)")
	assert.Contains(t, out, "vs Opp")
	// Base is reconstructed from new minus delta.
	assert.Contains(t, out, "0.500  0.600 +0.100")
	// Two sections, one per team.
	assert.Equal(t, 2, strings.Count(out, "OVERALL (Avg)"))
}

func TestWriteTradeReportFreeAgent(t *testing.T) {
	p := tradeProposal()
	p.FreeAgent = true
	p.Team2Gives = []string{"fa1"}

	var buf bytes.Buffer
	WriteTradeReport(&buf, TradeReport{
		Team1:     "One",
		Team2:     "Free Agency",
		Proposals: []trade.Proposal{p},
		Names:     map[string]string{"p1": "Alice"},
	})

	out := buf.String()
	assert.Contains(t, out, "PICKUP #1: One gets [fa1] from free agency, waives [Alice]")
	// Only team 1's table is rendered.
	assert.Equal(t, 1, strings.Count(out, "OVERALL (Avg)"))
}

func TestWriteTradeReportEmpty(t *testing.T) {
	var buf bytes.Buffer
	WriteTradeReport(&buf, TradeReport{Team1: "One", Team2: "Two"})
	assert.Equal(t, "No trades found matching criteria.\n", buf.String())
}

func TestWriteAvailability(t *testing.T) {
	var buf bytes.Buffer
	WriteAvailability(&buf,
		map[string]float64{"1": 0.5, "2": 0.9, "3": 0.5},
		map[string]string{"1": "Alice", "2": "Bob"},
	)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 5)
	assert.Contains(t, lines[2], "Bob")
	assert.Contains(t, lines[2], "0.9000")
	// Ties rank by player ID.
	assert.Contains(t, lines[3], "Alice")
	assert.Contains(t, lines[4], "Unknown")
}

func TestExportElo(t *testing.T) {
	rows := []storage.RatedPlayer{
		{
			Name:  "Alice",
			RefID: "101",
			EloRating: storage.EloRating{
				Overall: 1600.5, Points: 1550, Rebounds: 1500, Assists: 1500,
				Steals: 1500, Blocks: 1500, ThreesMade: 1500, Turnovers: 1500,
				FGPct: 1500, FTPct: 1500, Dropped: true,
			},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, ExportElo(&buf, rows))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "name", records[0][0])
	assert.Equal(t, []string{"Alice", "101", "1600.50", "1550.00"}, records[1][:4])
	assert.Equal(t, "true", records[1][12])
}

func TestExportValues(t *testing.T) {
	rows := []storage.SeasonValueRow{
		{
			Name:  "Alice",
			RefID: "101",
			PlayerSeasonValue: storage.PlayerSeasonValue{
				Season:         2026,
				PointsScore:    120.5,
				TotalScore:     480.25,
				PlayLikelihood: 0.75,
			},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, ExportValues(&buf, rows))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, []string{"Alice", "101", "2026", "120.5000"}, records[1][:4])
	assert.Equal(t, "480.2500", records[1][12])
	assert.Equal(t, "0.7500", records[1][13])
}
