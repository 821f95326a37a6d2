package trade

import (
	"github.com/hoopstats/fantasy-sim/internal/roster"
	"github.com/hoopstats/fantasy-sim/internal/sim"
)

// evaluation holds the per-search precomputed context shared by all
// workers: baseline rosters, statuses, uninvolved opponents, and the
// baseline overall win probabilities the deltas are measured against.
type evaluation struct {
	f         *Finder
	team1     string
	team2     string
	freeAgent bool
	statuses  map[string]roster.Status
	// baseActive is each involved team's scenario-filtered baseline roster.
	baseActive map[roster.Scenario]map[string][]string
	// others are the uninvolved teams the gain sums run over.
	others []string
	// baseOverall maps scenario -> team -> opponent -> baseline overall.
	baseOverall map[roster.Scenario]map[string]map[string]float64
}

func (f *Finder) newEvaluation(team1, team2 string, freeAgent bool) *evaluation {
	eval := &evaluation{
		f:           f,
		team1:       team1,
		team2:       team2,
		freeAgent:   freeAgent,
		statuses:    f.rosters.Statuses(),
		baseActive:  make(map[roster.Scenario]map[string][]string),
		baseOverall: make(map[roster.Scenario]map[string]map[string]float64),
	}

	involved := map[string]bool{team1: true}
	teams := []string{team1}
	if !freeAgent {
		involved[team2] = true
		teams = append(teams, team2)
	}
	for _, team := range f.baseline.Teams {
		if !involved[team] {
			eval.others = append(eval.others, team)
		}
	}

	for _, scenario := range roster.Scenarios {
		eval.baseActive[scenario] = make(map[string][]string, len(teams))
		eval.baseOverall[scenario] = make(map[string]map[string]float64, len(teams))
		for _, team := range teams {
			eval.baseActive[scenario][team] = roster.Filter(f.rosters[team], scenario)
			byOpponent := make(map[string]float64, len(eval.others))
			for _, other := range eval.others {
				key := sim.MatchupKey{Team1: team, Team2: other, Scenario: scenario}
				byOpponent[other] = f.baseline.WinProbs[key].Overall
			}
			eval.baseOverall[scenario][team] = byOpponent
		}
	}
	return eval
}

// evaluate scores one hypothesis. It returns the proposal and whether it
// met the acceptance criteria; a non-nil error is fatal for the search.
func (e *evaluation) evaluate(cand candidate) (Proposal, bool, error) {
	if !e.freeAgent {
		// Unequal designation counts crossing the trade would change one
		// side's active roster size under some scenario.
		d1, i1 := statusCounts(cand.t1Out, e.statuses)
		d2, i2 := statusCounts(cand.t2Out, e.statuses)
		if d1 != d2 || i1 != i2 {
			return Proposal{}, false, nil
		}
	}

	results := make(map[roster.Scenario]ScenarioResult, len(roster.Scenarios))
	combinedGain := 0.0

	for _, scenario := range roster.Scenarios {
		t1New := applyTrade(e.baseActive[scenario][e.team1], cand.t1Out, cand.t2Out, e.statuses, scenario)
		if err := e.checkSize(e.team1, scenario, t1New); err != nil {
			return Proposal{}, false, err
		}
		t1Weeks := sim.ComposeTeamWeeks(t1New, e.f.weeks, e.f.simCfg.Weeks)

		result := ScenarioResult{
			Team1Deltas: make(map[string]float64, len(e.others)),
			Team2Deltas: make(map[string]float64, len(e.others)),
			Team1New:    make(map[string]float64, len(e.others)),
			Team2New:    make(map[string]float64, len(e.others)),
		}

		if !e.freeAgent {
			t2New := applyTrade(e.baseActive[scenario][e.team2], cand.t2Out, cand.t1Out, e.statuses, scenario)
			if err := e.checkSize(e.team2, scenario, t2New); err != nil {
				return Proposal{}, false, err
			}
			t2Series := sim.ComposeTeamWeeks(t2New, e.f.weeks, e.f.simCfg.Weeks)
			result.HeadToHead = sim.CompareWeeks(t1Weeks, t2Series)

			for _, other := range e.others {
				otherWeeks := e.f.baseline.TeamWeeks[other][scenario]

				new1 := sim.CompareWeeks(t1Weeks, otherWeeks).Overall
				d1 := new1 - e.baseOverall[scenario][e.team1][other]
				result.Team1New[other] = new1
				result.Team1Deltas[other] = d1
				result.Team1GainSum += d1

				new2 := sim.CompareWeeks(t2Series, otherWeeks).Overall
				d2 := new2 - e.baseOverall[scenario][e.team2][other]
				result.Team2New[other] = new2
				result.Team2Deltas[other] = d2
				result.Team2GainSum += d2
			}
		} else {
			for _, other := range e.others {
				otherWeeks := e.f.baseline.TeamWeeks[other][scenario]
				new1 := sim.CompareWeeks(t1Weeks, otherWeeks).Overall
				d1 := new1 - e.baseOverall[scenario][e.team1][other]
				result.Team1New[other] = new1
				result.Team1Deltas[other] = d1
				result.Team1GainSum += d1
			}
		}

		if !e.accept(result) {
			return Proposal{}, false, nil
		}

		results[scenario] = result
		combinedGain += result.Team1GainSum
		if !e.freeAgent {
			combinedGain += result.Team2GainSum
		}
	}

	return Proposal{
		Team1Gives:   cand.t1Out,
		Team2Gives:   cand.t2Out,
		FreeAgent:    e.freeAgent,
		CombinedGain: combinedGain,
		Scenarios:    results,
	}, true, nil
}

// accept applies the configured acceptance policy to one scenario result.
func (e *evaluation) accept(r ScenarioResult) bool {
	if r.Team1GainSum <= 0 {
		return false
	}
	if e.freeAgent {
		return true
	}
	switch e.f.cfg.Policy {
	case PolicyWinWin:
		return r.Team2GainSum > 0
	default:
		return r.Team2GainSum >= -e.f.cfg.Team2LossTolerance
	}
}

// checkSize re-validates the fixed roster size for a hypothetical roster.
// A mismatch means asymmetric designations slipped through and is fatal.
func (e *evaluation) checkSize(team string, scenario roster.Scenario, active []string) error {
	if len(active) == e.f.simCfg.RosterSize {
		return nil
	}
	return &sim.RosterSizeError{
		Team:     team,
		Scenario: scenario,
		Expected: e.f.simCfg.RosterSize,
		Actual:   len(active),
		Players:  append([]string(nil), active...),
	}
}

// applyTrade removes the outgoing players from an active roster and adds
// the incoming ones whose designation passes the scenario filter. Incoming
// players outside the roster map default to active.
func applyTrade(active, out, in []string, statuses map[string]roster.Status, scenario roster.Scenario) []string {
	next := make([]string, 0, len(active)+len(in))
	for _, id := range active {
		if !containsID(out, id) {
			next = append(next, id)
		}
	}
	for _, id := range in {
		if roster.Active(statuses[id], scenario) {
			next = append(next, id)
		}
	}
	return next
}

func containsID(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
