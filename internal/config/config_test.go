package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hoopstats/fantasy-sim/internal/stats"
	"github.com/hoopstats/fantasy-sim/internal/trade"
)

func TestParseYearWeights(t *testing.T) {
	weights, err := ParseYearWeights("2026:1.2, 2025:0.2,2024:0.1")
	require.NoError(t, err)
	assert.Equal(t, []stats.YearWeight{
		{Season: 2026, Weight: 1.2},
		{Season: 2025, Weight: 0.2},
		{Season: 2024, Weight: 0.1},
	}, weights)
}

func TestParseYearWeightsRejectsMalformedInput(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{"empty", ""},
		{"blank", "   "},
		{"missing weight", "2026"},
		{"bad season", "soon:1.2"},
		{"bad weight", "2026:heavy"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseYearWeights(tc.raw)
			assert.Error(t, err)
		})
	}
}

func TestIsDevelopment(t *testing.T) {
	assert.True(t, (&Config{Env: "development"}).IsDevelopment())
	assert.False(t, (&Config{Env: "production"}).IsDevelopment())
}

func TestTradeConfigConversion(t *testing.T) {
	c := &Config{
		TradeSize:       3,
		TradeTolerance:  0.2,
		TradeMaxResults: 5,
		TradeWorkers:    4,
	}

	tc := c.TradeConfig()
	assert.Equal(t, 3, tc.ExchangeSize)
	assert.Equal(t, 0.2, tc.Team2LossTolerance)
	assert.Equal(t, trade.PolicyTolerance, tc.Policy)
	assert.Equal(t, 5, tc.MaxResults)
	assert.Equal(t, 4, tc.Workers)
}

func TestSimConfigConversion(t *testing.T) {
	c := &Config{
		SimWeeks:       100,
		PoolSize:       500,
		RosterSize:     13,
		InjectAbsences: true,
		YearWeights:    []stats.YearWeight{{Season: 2026, Weight: 1.2}},
	}

	sc := c.SimConfig()
	assert.Equal(t, 100, sc.Weeks)
	assert.Equal(t, 500, sc.PoolSize)
	assert.Equal(t, 13, sc.RosterSize)
	assert.True(t, sc.InjectAbsences)
	assert.Equal(t, c.YearWeights, sc.YearWeights)
}
