// Package elo rates players by simulating fantasy seasons. Each run
// drafts random teams from the full player pool, plays a round robin of
// weekly category matchups, and moves every participant's per-category
// and overall ratings by the usual logistic expected-score update. Over
// many runs the ratings converge toward each player's real contribution.
package elo

import (
	"math"
	"math/rand"

	"github.com/sirupsen/logrus"

	"github.com/hoopstats/fantasy-sim/internal/stats"
)

type Config struct {
	Simulations   int
	NumTeams      int
	TeamSize      int
	KFactor       float64
	InitialRating float64
}

func DefaultConfig() Config {
	return Config{
		Simulations: 10000,
		NumTeams:    10,
		TeamSize:    13,
		// Small K, the update count is huge.
		KFactor:       5,
		InitialRating: 1500,
	}
}

// Player is one draftable player with their full game history.
type Player struct {
	ID    uint
	Games []stats.Game
}

// RatingSet holds a player's overall rating and one rating per category.
type RatingSet struct {
	Overall    float64
	Categories map[stats.Category]float64
}

func newRatingSet(initial float64) RatingSet {
	set := RatingSet{Overall: initial, Categories: make(map[stats.Category]float64, len(stats.Categories))}
	for _, c := range stats.Categories {
		set.Categories[c] = initial
	}
	return set
}

type Simulator struct {
	cfg Config
	rng *rand.Rand
	log *logrus.Entry
}

func NewSimulator(cfg Config, rng *rand.Rand, log *logrus.Entry) *Simulator {
	return &Simulator{cfg: cfg, rng: rng, log: log}
}

// Run simulates cfg.Simulations seasons and returns the updated ratings.
// Existing ratings are carried forward; new players start at the initial
// rating. Players without games are skipped.
func (s *Simulator) Run(players []Player, existing map[uint]RatingSet) map[uint]RatingSet {
	pool := make([]Player, 0, len(players))
	for _, p := range players {
		if len(p.Games) > 0 {
			pool = append(pool, p)
		}
	}

	ratings := make(map[uint]RatingSet, len(pool))
	for _, p := range pool {
		if set, ok := existing[p.ID]; ok {
			copied := newRatingSet(s.cfg.InitialRating)
			copied.Overall = set.Overall
			for c, v := range set.Categories {
				copied.Categories[c] = v
			}
			ratings[p.ID] = copied
		} else {
			ratings[p.ID] = newRatingSet(s.cfg.InitialRating)
		}
	}

	rosterSlots := s.cfg.NumTeams * s.cfg.TeamSize
	if len(pool) < rosterSlots {
		s.log.WithFields(logrus.Fields{
			"players": len(pool),
			"slots":   rosterSlots,
		}).Warn("Fewer players than draft slots, teams will be short")
	}

	for i := 0; i < s.cfg.Simulations; i++ {
		teams := s.draft(pool)
		for a := 0; a < len(teams); a++ {
			for b := a + 1; b < len(teams); b++ {
				s.playMatchup(teams[a], teams[b], ratings)
			}
		}
		if (i+1)%500 == 0 {
			s.log.WithFields(logrus.Fields{
				"completed": i + 1,
				"total":     s.cfg.Simulations,
			}).Info("Rating simulation progress")
		}
	}
	return ratings
}

// draft fills NumTeams rosters of TeamSize by uniform random selection
// without replacement.
func (s *Simulator) draft(pool []Player) [][]Player {
	available := make([]Player, len(pool))
	copy(available, pool)

	teams := make([][]Player, s.cfg.NumTeams)
	for round := 0; round < s.cfg.TeamSize; round++ {
		for t := 0; t < s.cfg.NumTeams; t++ {
			if len(available) == 0 {
				return teams
			}
			idx := s.rng.Intn(len(available))
			teams[t] = append(teams[t], available[idx])
			available[idx] = available[len(available)-1]
			available = available[:len(available)-1]
		}
	}
	return teams
}

// weekLine draws 3 or 4 random games per player, with replacement, and
// sums them into one weekly team line.
func (s *Simulator) weekLine(team []Player) stats.Line {
	var week stats.Line
	for _, p := range team {
		numGames := 3 + s.rng.Intn(2)
		for g := 0; g < numGames; g++ {
			week.Add(p.Games[s.rng.Intn(len(p.Games))].Line)
		}
	}
	return week
}

func (s *Simulator) playMatchup(teamA, teamB []Player, ratings map[uint]RatingSet) {
	weekA := s.weekLine(teamA)
	weekB := s.weekLine(teamB)

	scoreA, scoreB := 0, 0
	for _, c := range stats.Categories {
		a, b := weekA.Value(c), weekB.Value(c)
		if c == stats.Turnovers {
			a, b = b, a
		}
		switch {
		case a > b:
			s.updateCategory(teamA, teamB, ratings, c)
			scoreA++
		case b > a:
			s.updateCategory(teamB, teamA, ratings, c)
			scoreB++
		}
	}

	switch {
	case scoreA > scoreB:
		s.updateOverall(teamA, teamB, ratings)
	case scoreB > scoreA:
		s.updateOverall(teamB, teamA, ratings)
	}
}

// expectedOutcome is the logistic win probability for the first rating.
func expectedOutcome(rating, opponent float64) float64 {
	return 1 / (1 + math.Pow(10, (opponent-rating)/400))
}

func (s *Simulator) updateCategory(winners, losers []Player, ratings map[uint]RatingSet, c stats.Category) {
	avgW := s.teamAverage(winners, ratings, func(set RatingSet) float64 { return set.Categories[c] })
	avgL := s.teamAverage(losers, ratings, func(set RatingSet) float64 { return set.Categories[c] })
	change := s.cfg.KFactor * (1 - expectedOutcome(avgW, avgL))
	for _, p := range winners {
		ratings[p.ID].Categories[c] += change
	}
	for _, p := range losers {
		ratings[p.ID].Categories[c] -= change
	}
}

func (s *Simulator) updateOverall(winners, losers []Player, ratings map[uint]RatingSet) {
	avgW := s.teamAverage(winners, ratings, func(set RatingSet) float64 { return set.Overall })
	avgL := s.teamAverage(losers, ratings, func(set RatingSet) float64 { return set.Overall })
	change := s.cfg.KFactor * (1 - expectedOutcome(avgW, avgL))
	for _, p := range winners {
		set := ratings[p.ID]
		set.Overall += change
		ratings[p.ID] = set
	}
	for _, p := range losers {
		set := ratings[p.ID]
		set.Overall -= change
		ratings[p.ID] = set
	}
}

func (s *Simulator) teamAverage(team []Player, ratings map[uint]RatingSet, get func(RatingSet) float64) float64 {
	sum := 0.0
	for _, p := range team {
		sum += get(ratings[p.ID])
	}
	return sum / float64(len(team))
}
