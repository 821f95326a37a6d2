package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/hoopstats/fantasy-sim/internal/availability"
	"github.com/hoopstats/fantasy-sim/internal/roster"
	"github.com/hoopstats/fantasy-sim/internal/sim"
	"github.com/hoopstats/fantasy-sim/internal/stats"
)

// simData is the shared output of the baseline pipeline: everything the
// h2h report and the trade search run on.
type simData struct {
	rosters  roster.Rosters
	names    map[string]string
	avail    map[string]float64
	weeks    sim.PlayerWeeks
	baseline *sim.Baseline
}

func (a *app) newRand() *rand.Rand {
	seed := a.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	a.log.WithField("seed", seed).Debug("Seeding RNG")
	return rand.New(rand.NewSource(seed))
}

func (a *app) loadRosters() (roster.Rosters, error) {
	store, err := a.openStore()
	if err != nil {
		return nil, err
	}
	nameIndex, err := store.NameIndex()
	if err != nil {
		return nil, err
	}
	f, err := os.Open(a.rosterPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open roster file: %w", err)
	}
	defer f.Close()
	rosters, err := roster.LoadCSV(f, nameIndex, a.log)
	if err != nil {
		return nil, fmt.Errorf("failed to load rosters from %s: %w", a.rosterPath, err)
	}
	return rosters, nil
}

// buildBaseline runs the full pipeline: rosters, availability, pools,
// player weeks, and the baseline league simulation.
func (a *app) buildBaseline(rng *rand.Rand) (*simData, error) {
	store, err := a.openStore()
	if err != nil {
		return nil, err
	}

	rosters, err := a.loadRosters()
	if err != nil {
		return nil, err
	}
	names, err := store.DisplayNames()
	if err != nil {
		return nil, err
	}

	simCfg := a.cfg.SimConfig()
	playerIDs := rosters.PlayerIDs()
	a.log.WithFields(logrus.Fields{
		"teams":   len(rosters),
		"players": len(playerIDs),
	}).Info("Rosters loaded")

	histories, err := store.Histories(playerIDs, stats.Seasons(simCfg.YearWeights))
	if err != nil {
		return nil, err
	}

	avail := availability.Estimate(histories, simCfg.YearWeights, a.cfg.AvailabilityConfig())

	a.log.WithFields(logrus.Fields{
		"pool_size": simCfg.PoolSize,
		"weeks":     simCfg.Weeks,
	}).Info("Sampling game pools and pre-simulating player weeks")
	pools := sim.BuildPools(rng, histories, avail, simCfg)
	weeks := sim.SimulateWeeks(rng, pools, simCfg)

	league := sim.NewLeague(simCfg, a.log, names)
	baseline, err := league.Run(rosters, weeks)
	if err != nil {
		return nil, err
	}

	return &simData{
		rosters:  rosters,
		names:    names,
		avail:    avail,
		weeks:    weeks,
		baseline: baseline,
	}, nil
}

// playerWeekGenerator returns an on-demand week series builder for players
// outside the league rosters, used by the free-agent search.
func (a *app) playerWeekGenerator(rng *rand.Rand) func(playerID string) ([]stats.Line, error) {
	simCfg := a.cfg.SimConfig()
	return func(playerID string) ([]stats.Line, error) {
		store, err := a.openStore()
		if err != nil {
			return nil, err
		}
		histories, err := store.Histories([]string{playerID}, stats.Seasons(simCfg.YearWeights))
		if err != nil {
			return nil, err
		}
		avail := availability.Estimate(histories, simCfg.YearWeights, a.cfg.AvailabilityConfig())
		pools := sim.BuildPools(rng, histories, avail, simCfg)
		weeks := sim.SimulateWeeks(rng, pools, simCfg)
		series, ok := weeks[playerID]
		if !ok {
			return nil, fmt.Errorf("no week series generated for %s", playerID)
		}
		return series, nil
	}
}
