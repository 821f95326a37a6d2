package trade

import (
	"context"
	"fmt"
	"runtime"
	"sort"
	"sync"
	"sync/atomic"

	"github.com/sirupsen/logrus"

	"github.com/hoopstats/fantasy-sim/internal/roster"
	"github.com/hoopstats/fantasy-sim/internal/sim"
	"github.com/hoopstats/fantasy-sim/internal/stats"
)

// progressInterval controls how often the finder logs search progress.
const progressInterval = 5000

// Finder searches the trade space against a precomputed league baseline.
// The baseline and the player week series are treated as read-only, so
// hypotheses are evaluated concurrently.
type Finder struct {
	simCfg   sim.Config
	cfg      Config
	log      *logrus.Entry
	rosters  roster.Rosters
	weeks    sim.PlayerWeeks
	baseline *sim.Baseline
	// onDemand fills in week series for players outside the league rosters,
	// used by the free-agent search. May be nil.
	onDemand func(playerID string) ([]stats.Line, error)
}

// NewFinder builds a trade searcher over an existing baseline.
func NewFinder(simCfg sim.Config, cfg Config, log *logrus.Entry, rosters roster.Rosters, weeks sim.PlayerWeeks, baseline *sim.Baseline) *Finder {
	if cfg.Policy == "" {
		cfg.Policy = PolicyTolerance
	}
	return &Finder{
		simCfg:   simCfg,
		cfg:      cfg,
		log:      log,
		rosters:  rosters,
		weeks:    weeks,
		baseline: baseline,
	}
}

// WithOnDemandWeeks installs a generator for week series the finder does
// not already hold, enabling free-agent searches over players with no
// precomputed simulation data.
func (f *Finder) WithOnDemandWeeks(gen func(playerID string) ([]stats.Line, error)) *Finder {
	f.onDemand = gen
	return f
}

// Search enumerates every N-for-N exchange between the two teams' tradable
// players, evaluates each hypothesis under both scenarios, and returns the
// accepted trades ranked by combined gain.
func (f *Finder) Search(ctx context.Context, team1, team2 string) ([]Proposal, error) {
	if team1 == team2 {
		return nil, fmt.Errorf("trade teams must differ, got %q twice", team1)
	}
	for _, team := range []string{team1, team2} {
		if _, ok := f.rosters[team]; !ok {
			return nil, fmt.Errorf("unknown team %q", team)
		}
	}

	t1Tradable := tradablePlayers(f.rosters[team1], f.cfg.AllowInjured)
	t2Tradable := tradablePlayers(f.rosters[team2], f.cfg.AllowInjured)
	if err := f.checkTradable(team1, t1Tradable); err != nil {
		return nil, err
	}
	if err := f.checkTradable(team2, t2Tradable); err != nil {
		return nil, err
	}

	total := countCombinations(len(t1Tradable), f.cfg.ExchangeSize) *
		countCombinations(len(t2Tradable), f.cfg.ExchangeSize)
	f.log.WithFields(logrus.Fields{
		"team1":      team1,
		"team2":      team2,
		"hypotheses": total,
		"exchange":   f.cfg.ExchangeSize,
	}).Info("Starting trade search")

	eval := f.newEvaluation(team1, team2, false)
	return f.run(ctx, eval, func(yield func(candidate) bool) {
		combinations(t1Tradable, f.cfg.ExchangeSize, func(t1Out []string) bool {
			if !containsAll(t1Out, f.cfg.RequiredPlayers) {
				return true
			}
			keep := true
			combinations(t2Tradable, f.cfg.ExchangeSize, func(t2Out []string) bool {
				keep = yield(candidate{t1Out: t1Out, t2Out: t2Out})
				return keep
			})
			return keep
		})
	})
}

// SearchFreeAgents evaluates sending N of team 1's players to waivers in
// exchange for N players from an external ranked pool. The pool side has no
// roster designations, so only fully active players are tradable from team
// 1, and team 2 acceptance criteria do not apply. Pool players missing
// simulation data have it generated on demand before the search starts.
func (f *Finder) SearchFreeAgents(ctx context.Context, team1 string, pool []string) ([]Proposal, error) {
	if _, ok := f.rosters[team1]; !ok {
		return nil, fmt.Errorf("unknown team %q", team1)
	}
	if len(pool) == 0 {
		return nil, fmt.Errorf("free-agent pool is empty")
	}

	// Only fully active players keep both scenario roster sizes intact when
	// swapped for an always-active free agent.
	statuses := f.rosters.Statuses()
	t1Tradable := tradablePlayers(f.rosters[team1], false)
	active := t1Tradable[:0]
	for _, id := range t1Tradable {
		if statuses[id] == roster.StatusActive {
			active = append(active, id)
		}
	}
	t1Tradable = active
	if err := f.checkTradable(team1, t1Tradable); err != nil {
		return nil, err
	}

	if err := f.ensureWeeks(pool); err != nil {
		return nil, err
	}

	f.log.WithFields(logrus.Fields{
		"team1":    team1,
		"pool":     len(pool),
		"exchange": f.cfg.ExchangeSize,
	}).Info("Starting free-agent trade search")

	eval := f.newEvaluation(team1, "", true)
	return f.run(ctx, eval, func(yield func(candidate) bool) {
		combinations(t1Tradable, f.cfg.ExchangeSize, func(t1Out []string) bool {
			if !containsAll(t1Out, f.cfg.RequiredPlayers) {
				return true
			}
			keep := true
			combinations(pool, f.cfg.ExchangeSize, func(in []string) bool {
				keep = yield(candidate{t1Out: t1Out, t2Out: in})
				return keep
			})
			return keep
		})
	})
}

// run drives the producer/worker pipeline over the candidate stream.
func (f *Finder) run(ctx context.Context, eval *evaluation, produce func(yield func(candidate) bool)) ([]Proposal, error) {
	workers := f.cfg.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	jobs := make(chan candidate, workers*2)
	results := make(chan Proposal, workers)
	errCh := make(chan error, 1)

	go func() {
		defer close(jobs)
		produce(func(c candidate) bool {
			select {
			case jobs <- c:
				return true
			case <-ctx.Done():
				return false
			}
		})
	}()

	var checked int64
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for cand := range jobs {
				n := atomic.AddInt64(&checked, 1)
				if n%progressInterval == 0 {
					f.log.WithField("checked", n).Debug("Trade search progress")
				}
				proposal, accepted, err := eval.evaluate(cand)
				if err != nil {
					select {
					case errCh <- err:
					default:
					}
					cancel()
					return
				}
				if accepted {
					select {
					case results <- proposal:
					case <-ctx.Done():
						return
					}
				}
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	accepted := make([]Proposal, 0)
	for p := range results {
		accepted = append(accepted, p)
	}
	select {
	case err := <-errCh:
		return nil, err
	default:
	}

	sort.Slice(accepted, func(i, j int) bool {
		return accepted[i].CombinedGain > accepted[j].CombinedGain
	})
	if f.cfg.MaxResults > 0 && len(accepted) > f.cfg.MaxResults {
		accepted = accepted[:f.cfg.MaxResults]
	}
	f.log.WithFields(logrus.Fields{
		"checked":  atomic.LoadInt64(&checked),
		"accepted": len(accepted),
	}).Info("Trade search complete")
	return accepted, nil
}

func (f *Finder) checkTradable(team string, tradable []string) error {
	if len(tradable) >= f.cfg.ExchangeSize {
		return nil
	}
	return fmt.Errorf("team %q has only %d tradable players, need %d for a %d-for-%d trade",
		team, len(tradable), f.cfg.ExchangeSize, f.cfg.ExchangeSize, f.cfg.ExchangeSize)
}

// ensureWeeks generates week series for any pool player the finder does not
// already hold data for. Runs before the search so the map stays read-only
// while workers are active.
func (f *Finder) ensureWeeks(ids []string) error {
	for _, id := range ids {
		if _, ok := f.weeks[id]; ok {
			continue
		}
		if f.onDemand == nil {
			return fmt.Errorf("no simulation data for player %q and no on-demand generator configured", id)
		}
		series, err := f.onDemand(id)
		if err != nil {
			return fmt.Errorf("failed to generate weeks for player %q: %w", id, err)
		}
		f.weeks[id] = series
	}
	return nil
}
