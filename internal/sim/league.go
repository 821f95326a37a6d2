package sim

import (
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/hoopstats/fantasy-sim/internal/roster"
	"github.com/hoopstats/fantasy-sim/internal/stats"
)

// MatchupKey addresses one directed team pairing under one roster scenario.
type MatchupKey struct {
	Team1    string
	Team2    string
	Scenario roster.Scenario
}

// TeamAverages is the descriptive per-week stat report for one team and
// scenario. Percentages are total makes over total attempts across all
// simulated weeks, not averages of weekly ratios.
type TeamAverages struct {
	PerWeek      stats.Line
	FieldGoalPct float64
	FreeThrowPct float64
}

// Baseline is the full league simulation output: every team's week series
// per scenario (reused by the trade search), the pairwise win-probability
// table, and the average-stats report.
type Baseline struct {
	Teams     []string
	TeamWeeks map[string]map[roster.Scenario][]stats.Line
	WinProbs  map[MatchupKey]WinProbability
	Averages  map[string]map[roster.Scenario]TeamAverages
}

// League runs the baseline head-to-head simulation over a set of rosters.
type League struct {
	cfg   Config
	log   *logrus.Entry
	names map[string]string
}

// NewLeague builds a baseline runner. names maps player IDs to display
// names and is only used for diagnostics.
func NewLeague(cfg Config, log *logrus.Entry, names map[string]string) *League {
	return &League{cfg: cfg, log: log, names: names}
}

// Run validates every roster view, composes all team week series from the
// precomputed player weeks, compares every unordered team pair under both
// scenarios, and derives the reverse direction as the per-category
// complement. A roster whose active count is wrong aborts the run before
// any matchup is simulated.
func (l *League) Run(rosters roster.Rosters, weeks PlayerWeeks) (*Baseline, error) {
	teams := rosters.TeamNames()
	baseline := &Baseline{
		Teams:     teams,
		TeamWeeks: make(map[string]map[roster.Scenario][]stats.Line, len(teams)),
		WinProbs:  make(map[MatchupKey]WinProbability),
		Averages:  make(map[string]map[roster.Scenario]TeamAverages, len(teams)),
	}

	for _, team := range teams {
		baseline.TeamWeeks[team] = make(map[roster.Scenario][]stats.Line, len(roster.Scenarios))
		baseline.Averages[team] = make(map[roster.Scenario]TeamAverages, len(roster.Scenarios))
		for _, scenario := range roster.Scenarios {
			active := roster.Filter(rosters[team], scenario)
			if err := l.CheckRosterSize(team, scenario, active); err != nil {
				return nil, err
			}
			series := ComposeTeamWeeks(active, weeks, l.cfg.Weeks)
			baseline.TeamWeeks[team][scenario] = series
			baseline.Averages[team][scenario] = ComputeAverages(series)
		}
		l.log.WithField("team", team).Debug("Composed team week series")
	}

	for i := 0; i < len(teams); i++ {
		for j := i + 1; j < len(teams); j++ {
			for _, scenario := range roster.Scenarios {
				probs := CompareWeeks(
					baseline.TeamWeeks[teams[i]][scenario],
					baseline.TeamWeeks[teams[j]][scenario],
				)
				baseline.WinProbs[MatchupKey{teams[i], teams[j], scenario}] = probs
				baseline.WinProbs[MatchupKey{teams[j], teams[i], scenario}] = probs.Complement()
			}
		}
	}

	l.log.WithFields(logrus.Fields{
		"teams":    len(teams),
		"matchups": len(baseline.WinProbs),
	}).Info("Baseline league simulation complete")
	return baseline, nil
}

// CheckRosterSize enforces the fixed active roster size invariant for one
// scenario view. The returned error carries the full roster dump.
func (l *League) CheckRosterSize(team string, scenario roster.Scenario, active []string) error {
	if len(active) == l.cfg.RosterSize {
		return nil
	}
	players := make([]string, 0, len(active))
	for _, id := range active {
		name := l.names[id]
		if name == "" {
			name = "Unknown"
		}
		players = append(players, name+" ("+id+")")
	}
	sort.Strings(players)
	return &RosterSizeError{
		Team:     team,
		Scenario: scenario,
		Expected: l.cfg.RosterSize,
		Actual:   len(active),
		Players:  players,
	}
}

// ComputeAverages reduces a week series to the per-week stat report.
func ComputeAverages(weeks []stats.Line) TeamAverages {
	if len(weeks) == 0 {
		return TeamAverages{}
	}
	var totals stats.Line
	for _, w := range weeks {
		totals.Add(w)
	}
	return TeamAverages{
		PerWeek:      totals.Scale(float64(len(weeks))),
		FieldGoalPct: totals.FieldGoalRate(),
		FreeThrowPct: totals.FreeThrowRate(),
	}
}
