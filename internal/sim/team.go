package sim

import "github.com/hoopstats/fantasy-sim/internal/stats"

// ComposeTeamWeeks sums every active player's simulated week at each index,
// producing the team's week series. The result is fully determined by the
// roster list and the precomputed player weeks, so hypothetical rosters are
// cheap to evaluate. Players missing from weeks contribute nothing.
func ComposeTeamWeeks(playerIDs []string, weeks PlayerWeeks, numWeeks int) []stats.Line {
	team := make([]stats.Line, numWeeks)
	for _, playerID := range playerIDs {
		series, ok := weeks[playerID]
		if !ok {
			continue
		}
		for k := 0; k < numWeeks && k < len(series); k++ {
			team[k].Add(series[k])
		}
	}
	return team
}
