package stats

// Category identifies one of the nine scored fantasy categories.
type Category string

const (
	Points       Category = "pts"
	Rebounds     Category = "reb"
	Assists      Category = "ast"
	Steals       Category = "stl"
	Blocks       Category = "blk"
	ThreesMade   Category = "tpm"
	Turnovers    Category = "to"
	FieldGoalPct Category = "fg%"
	FreeThrowPct Category = "ft%"
)

// Categories lists all nine scored categories in report order.
var Categories = []Category{
	Points, Rebounds, Assists, Steals, Blocks,
	ThreesMade, Turnovers, FieldGoalPct, FreeThrowPct,
}

// Line is one box-score stat line, or a sum of several. The percentage
// categories are derived from the made/attempted pairs, never stored.
type Line struct {
	Points            float64
	Rebounds          float64
	Assists           float64
	Steals            float64
	Blocks            float64
	ThreesMade        float64
	Turnovers         float64
	FieldGoalsMade    float64
	FieldGoalAttempts float64
	FreeThrowsMade    float64
	FreeThrowAttempts float64
}

// Add accumulates another line into l field by field.
func (l *Line) Add(o Line) {
	l.Points += o.Points
	l.Rebounds += o.Rebounds
	l.Assists += o.Assists
	l.Steals += o.Steals
	l.Blocks += o.Blocks
	l.ThreesMade += o.ThreesMade
	l.Turnovers += o.Turnovers
	l.FieldGoalsMade += o.FieldGoalsMade
	l.FieldGoalAttempts += o.FieldGoalAttempts
	l.FreeThrowsMade += o.FreeThrowsMade
	l.FreeThrowAttempts += o.FreeThrowAttempts
}

// Scale divides every field by n, for per-week averaging.
func (l Line) Scale(n float64) Line {
	if n == 0 {
		return Line{}
	}
	return Line{
		Points:            l.Points / n,
		Rebounds:          l.Rebounds / n,
		Assists:           l.Assists / n,
		Steals:            l.Steals / n,
		Blocks:            l.Blocks / n,
		ThreesMade:        l.ThreesMade / n,
		Turnovers:         l.Turnovers / n,
		FieldGoalsMade:    l.FieldGoalsMade / n,
		FieldGoalAttempts: l.FieldGoalAttempts / n,
		FreeThrowsMade:    l.FreeThrowsMade / n,
		FreeThrowAttempts: l.FreeThrowAttempts / n,
	}
}

// FieldGoalRate returns made/attempted, with zero attempts scoring 0.
func (l Line) FieldGoalRate() float64 {
	if l.FieldGoalAttempts <= 0 {
		return 0
	}
	return l.FieldGoalsMade / l.FieldGoalAttempts
}

// FreeThrowRate returns made/attempted, with zero attempts scoring 0.
func (l Line) FreeThrowRate() float64 {
	if l.FreeThrowAttempts <= 0 {
		return 0
	}
	return l.FreeThrowsMade / l.FreeThrowAttempts
}

// Value returns the scored quantity for one category. Counting stats
// come straight off the line, the percentages from the rate helpers.
func (l Line) Value(c Category) float64 {
	switch c {
	case Points:
		return l.Points
	case Rebounds:
		return l.Rebounds
	case Assists:
		return l.Assists
	case Steals:
		return l.Steals
	case Blocks:
		return l.Blocks
	case ThreesMade:
		return l.ThreesMade
	case Turnovers:
		return l.Turnovers
	case FieldGoalPct:
		return l.FieldGoalRate()
	case FreeThrowPct:
		return l.FreeThrowRate()
	}
	return 0
}

// Game is one historical box-score entry for a player. Played is false for
// DNP entries, which carry an all-zero line.
type Game struct {
	Season int
	Played bool
	Line   Line
}

// YearWeight assigns a recency weight to one season. Weights are relative
// and are not required to sum to 1.
type YearWeight struct {
	Season int
	Weight float64
}

// Seasons returns the season years covered by the weight schedule.
func Seasons(weights []YearWeight) []int {
	seasons := make([]int, 0, len(weights))
	for _, yw := range weights {
		seasons = append(seasons, yw.Season)
	}
	return seasons
}
