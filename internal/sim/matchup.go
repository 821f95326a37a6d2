package sim

import "github.com/hoopstats/fantasy-sim/internal/stats"

// WinProbability holds one side's Monte-Carlo win estimates for a matchup:
// each of the nine categories plus the overall weekly result, all in [0,1].
type WinProbability struct {
	Points       float64
	Rebounds     float64
	Assists      float64
	Steals       float64
	Blocks       float64
	ThreesMade   float64
	Turnovers    float64
	FieldGoalPct float64
	FreeThrowPct float64
	Overall      float64
}

// Complement returns the opposing side's probabilities. Ties are scored
// symmetrically at 0.5, so every value inverts as 1-p, including overall.
func (w WinProbability) Complement() WinProbability {
	return WinProbability{
		Points:       1 - w.Points,
		Rebounds:     1 - w.Rebounds,
		Assists:      1 - w.Assists,
		Steals:       1 - w.Steals,
		Blocks:       1 - w.Blocks,
		ThreesMade:   1 - w.ThreesMade,
		Turnovers:    1 - w.Turnovers,
		FieldGoalPct: 1 - w.FieldGoalPct,
		FreeThrowPct: 1 - w.FreeThrowPct,
		Overall:      1 - w.Overall,
	}
}

// ForCategory returns the probability for one scored category.
func (w WinProbability) ForCategory(c stats.Category) float64 {
	switch c {
	case stats.Points:
		return w.Points
	case stats.Rebounds:
		return w.Rebounds
	case stats.Assists:
		return w.Assists
	case stats.Steals:
		return w.Steals
	case stats.Blocks:
		return w.Blocks
	case stats.ThreesMade:
		return w.ThreesMade
	case stats.Turnovers:
		return w.Turnovers
	case stats.FieldGoalPct:
		return w.FieldGoalPct
	case stats.FreeThrowPct:
		return w.FreeThrowPct
	}
	return 0
}

// CompareWeeks scores two equal-length week series for team 1. Each week is
// decided category by category: the six counting categories go to the higher
// total, turnovers to the lower, and the percentages to the better
// made/attempted ratio (zero attempts rates as 0, no qualifier). Category
// ties award 0.5. A week with more than 4.5 category points is an overall
// win, exactly 4.5 an overall tie. Results are averaged over all weeks.
func CompareWeeks(t1, t2 []stats.Line) WinProbability {
	numWeeks := len(t1)
	if numWeeks == 0 || len(t2) != numWeeks {
		return WinProbability{}
	}

	var total WinProbability
	for k := 0; k < numWeeks; k++ {
		w1 := t1[k]
		w2 := t2[k]

		pts := higherWins(w1.Points, w2.Points)
		reb := higherWins(w1.Rebounds, w2.Rebounds)
		ast := higherWins(w1.Assists, w2.Assists)
		stl := higherWins(w1.Steals, w2.Steals)
		blk := higherWins(w1.Blocks, w2.Blocks)
		tpm := higherWins(w1.ThreesMade, w2.ThreesMade)
		to := higherWins(w2.Turnovers, w1.Turnovers)
		fg := higherWins(w1.FieldGoalRate(), w2.FieldGoalRate())
		ft := higherWins(w1.FreeThrowRate(), w2.FreeThrowRate())

		weekScore := pts + reb + ast + stl + blk + tpm + to + fg + ft
		overall := 0.0
		if weekScore > 4.5 {
			overall = 1.0
		} else if weekScore == 4.5 {
			overall = 0.5
		}

		total.Points += pts
		total.Rebounds += reb
		total.Assists += ast
		total.Steals += stl
		total.Blocks += blk
		total.ThreesMade += tpm
		total.Turnovers += to
		total.FieldGoalPct += fg
		total.FreeThrowPct += ft
		total.Overall += overall
	}

	n := float64(numWeeks)
	return WinProbability{
		Points:       total.Points / n,
		Rebounds:     total.Rebounds / n,
		Assists:      total.Assists / n,
		Steals:       total.Steals / n,
		Blocks:       total.Blocks / n,
		ThreesMade:   total.ThreesMade / n,
		Turnovers:    total.Turnovers / n,
		FieldGoalPct: total.FieldGoalPct / n,
		FreeThrowPct: total.FreeThrowPct / n,
		Overall:      total.Overall / n,
	}
}

func higherWins(a, b float64) float64 {
	switch {
	case a > b:
		return 1.0
	case a < b:
		return 0.0
	default:
		return 0.5
	}
}
