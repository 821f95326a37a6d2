package sim

import (
	"fmt"
	"strings"

	"github.com/hoopstats/fantasy-sim/internal/roster"
)

// RosterSizeError reports a roster whose active player count does not match
// the configured league roster size under some scenario. It is a fatal
// configuration error: the run must stop before any simulation work, and
// the full offending roster is carried for diagnostics.
type RosterSizeError struct {
	Team     string
	Scenario roster.Scenario
	Expected int
	Actual   int
	// Players holds "Name (id)" display lines for the active roster.
	Players []string
}

func (e *RosterSizeError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "team %q has %d active players under %s, expected %d",
		e.Team, e.Actual, e.Scenario, e.Expected)
	if len(e.Players) > 0 {
		b.WriteString("; roster: ")
		b.WriteString(strings.Join(e.Players, ", "))
	}
	return b.String()
}
