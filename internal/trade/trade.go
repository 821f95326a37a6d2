// Package trade enumerates N-for-N player swaps between two rosters,
// re-simulates the hypothetical teams against the rest of the league using
// the precomputed player week series, and ranks the swaps that improve one
// or both sides' aggregate win probability.
package trade

import (
	"github.com/hoopstats/fantasy-sim/internal/roster"
	"github.com/hoopstats/fantasy-sim/internal/sim"
)

// Policy selects the acceptance rule for a candidate trade.
type Policy string

const (
	// PolicyTolerance accepts trades where team 1 strictly gains in every
	// scenario and team 2's summed loss stays within the tolerance.
	PolicyTolerance Policy = "tolerance"
	// PolicyWinWin additionally requires team 2's summed gain to be strictly
	// positive in every scenario.
	PolicyWinWin Policy = "win-win"
)

// Config carries the search parameters.
type Config struct {
	// ExchangeSize is N in an N-for-N trade.
	ExchangeSize int
	// Team2LossTolerance bounds how much summed win probability team 2 may
	// give up per scenario under PolicyTolerance.
	Team2LossTolerance float64
	// AllowInjured permits INJ-status players to be traded.
	AllowInjured bool
	// Policy picks the acceptance rule. Empty means PolicyTolerance.
	Policy Policy
	// RequiredPlayers restricts team 1's side to combinations containing
	// every listed player.
	RequiredPlayers []string
	// MaxResults caps the ranked proposals returned.
	MaxResults int
	// Workers sets the evaluation parallelism; <=0 uses all CPUs.
	Workers int
}

// DefaultConfig returns the standard 2-for-2 search parameters.
func DefaultConfig() Config {
	return Config{
		ExchangeSize:       2,
		Team2LossTolerance: 0.05,
		AllowInjured:       false,
		Policy:             PolicyTolerance,
		MaxResults:         15,
	}
}

// ScenarioResult is one scenario's outcome for an accepted trade: each
// team's summed win-probability change across the uninvolved opponents,
// the per-opponent breakdown, and the two hypothetical teams' direct
// matchup.
type ScenarioResult struct {
	Team1GainSum float64
	Team2GainSum float64
	Team1Deltas  map[string]float64
	Team2Deltas  map[string]float64
	Team1New     map[string]float64
	Team2New     map[string]float64
	HeadToHead   sim.WinProbability
}

// Proposal is one accepted trade, ranked by CombinedGain (both teams' gain
// sums across both scenarios). Proposals are ephemeral search output.
type Proposal struct {
	Team1Gives   []string
	Team2Gives   []string
	FreeAgent    bool
	CombinedGain float64
	Scenarios    map[roster.Scenario]ScenarioResult
}

// candidate is one hypothesis: the players leaving each side.
type candidate struct {
	t1Out []string
	t2Out []string
}

// tradablePlayers filters a roster to the players a team may send out.
// DROP-listed players are never tradable; injured players only when allowed.
func tradablePlayers(entries []roster.Entry, allowInjured bool) []string {
	ids := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.Status == roster.StatusDropped {
			continue
		}
		if e.Status == roster.StatusInjured && !allowInjured {
			continue
		}
		ids = append(ids, e.PlayerID)
	}
	return ids
}

// combinations yields every size-n subset of ids in lexical index order.
func combinations(ids []string, n int, yield func([]string) bool) {
	if n <= 0 || n > len(ids) {
		return
	}
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	for {
		combo := make([]string, n)
		for i, j := range idx {
			combo[i] = ids[j]
		}
		if !yield(combo) {
			return
		}
		// advance the index vector
		i := n - 1
		for i >= 0 && idx[i] == len(ids)-n+i {
			i--
		}
		if i < 0 {
			return
		}
		idx[i]++
		for j := i + 1; j < n; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
}

// countCombinations returns C(n, k) without overflow concerns for the small
// roster sizes involved.
func countCombinations(n, k int) int {
	if k < 0 || k > n {
		return 0
	}
	result := 1
	for i := 0; i < k; i++ {
		result = result * (n - i) / (i + 1)
	}
	return result
}

// containsAll reports whether combo includes every required player.
func containsAll(combo, required []string) bool {
	for _, want := range required {
		found := false
		for _, id := range combo {
			if id == want {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// statusCounts tallies how many of the given players carry each designation.
func statusCounts(ids []string, statuses map[string]roster.Status) (dropped, injured int) {
	for _, id := range ids {
		switch statuses[id] {
		case roster.StatusDropped:
			dropped++
		case roster.StatusInjured:
			injured++
		}
	}
	return dropped, injured
}
