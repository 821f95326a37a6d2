package roster

import "sort"

// Status is a player's roster designation. Anything other than the
// recognized values is treated as active.
type Status string

const (
	StatusActive  Status = ""
	StatusInjured Status = "INJ"
	StatusDropped Status = "DROP"
)

// Scenario selects which roster designations count as active for a
// simulation pass.
type Scenario string

const (
	// ScenarioFullStrength keeps injured players and excludes drop-listed ones.
	ScenarioFullStrength Scenario = "FullStrength"
	// ScenarioCurrent excludes injured players and keeps drop-listed ones.
	ScenarioCurrent Scenario = "Current"
)

// Scenarios lists both roster views in the order reports use.
var Scenarios = []Scenario{ScenarioFullStrength, ScenarioCurrent}

// Entry is one roster slot: a player and their designation.
type Entry struct {
	PlayerID string
	Status   Status
}

// Rosters maps a team name to its ordered roster entries.
type Rosters map[string][]Entry

// Active reports whether a designation counts as active under the scenario.
func Active(s Status, scenario Scenario) bool {
	if scenario == ScenarioFullStrength {
		return s != StatusDropped
	}
	return s != StatusInjured
}

// Filter returns the player IDs active under the given scenario, preserving
// roster order.
func Filter(entries []Entry, scenario Scenario) []string {
	active := make([]string, 0, len(entries))
	for _, e := range entries {
		if Active(e.Status, scenario) {
			active = append(active, e.PlayerID)
		}
	}
	return active
}

// TeamNames returns all team names in sorted order.
func (r Rosters) TeamNames() []string {
	names := make([]string, 0, len(r))
	for name := range r {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// PlayerIDs returns the deduplicated set of player IDs across every roster.
func (r Rosters) PlayerIDs() []string {
	seen := make(map[string]struct{})
	ids := make([]string, 0)
	for _, entries := range r {
		for _, e := range entries {
			if _, ok := seen[e.PlayerID]; ok {
				continue
			}
			seen[e.PlayerID] = struct{}{}
			ids = append(ids, e.PlayerID)
		}
	}
	sort.Strings(ids)
	return ids
}

// Statuses flattens every roster into a player ID to designation map.
func (r Rosters) Statuses() map[string]Status {
	statuses := make(map[string]Status)
	for _, entries := range r {
		for _, e := range entries {
			statuses[e.PlayerID] = e.Status
		}
	}
	return statuses
}
