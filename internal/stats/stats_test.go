package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLineAdd(t *testing.T) {
	var total Line
	total.Add(Line{Points: 20, Rebounds: 5, FieldGoalsMade: 8, FieldGoalAttempts: 15})
	total.Add(Line{Points: 10, Turnovers: 3, FieldGoalsMade: 4, FieldGoalAttempts: 10})

	assert.Equal(t, 30.0, total.Points)
	assert.Equal(t, 5.0, total.Rebounds)
	assert.Equal(t, 3.0, total.Turnovers)
	assert.Equal(t, 12.0, total.FieldGoalsMade)
	assert.Equal(t, 25.0, total.FieldGoalAttempts)
}

func TestLineScale(t *testing.T) {
	l := Line{Points: 30, Assists: 9}
	scaled := l.Scale(3)
	assert.Equal(t, 10.0, scaled.Points)
	assert.Equal(t, 3.0, scaled.Assists)
	assert.Zero(t, l.Scale(0))
}

func TestLineValue(t *testing.T) {
	l := Line{
		Points: 25, Rebounds: 10, Assists: 7, Steals: 2, Blocks: 1,
		ThreesMade: 3, Turnovers: 4,
		FieldGoalsMade: 9, FieldGoalAttempts: 18,
		FreeThrowsMade: 4, FreeThrowAttempts: 5,
	}

	assert.Equal(t, 25.0, l.Value(Points))
	assert.Equal(t, 4.0, l.Value(Turnovers))
	assert.Equal(t, 0.5, l.Value(FieldGoalPct))
	assert.Equal(t, 0.8, l.Value(FreeThrowPct))
	assert.Equal(t, 0.0, l.Value(Category("nope")))
}

func TestCategories(t *testing.T) {
	assert.Len(t, Categories, 9)
	assert.Equal(t, Points, Categories[0])
	assert.Equal(t, FreeThrowPct, Categories[8])
}

func TestSeasons(t *testing.T) {
	weights := []YearWeight{{Season: 2026, Weight: 1.2}, {Season: 2025, Weight: 0.2}}
	assert.Equal(t, []int{2026, 2025}, Seasons(weights))
	assert.Empty(t, Seasons(nil))
}
