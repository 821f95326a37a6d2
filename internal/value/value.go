// Package value computes normalized 9-category fantasy value scores.
//
// Counting stats are scored as a percentage of a benchmark cohort's
// average. Percentage stats cannot be averaged the same way, so they are
// scored as "impact" (makes above what league-rate shooting would give on
// the same attempts), Z-scored against the cohort and rescaled to the
// variance of the points score so no category dominates the total.
package value

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Aggregate is one player's aggregated line for a season, produced by
// the storage layer.
type Aggregate struct {
	PlayerRowID  uint `gorm:"column:player_id"`
	GamesPlayed  int
	AvgPoints    float64
	AvgRebounds  float64
	AvgAssists   float64
	AvgSteals    float64
	AvgBlocks    float64
	AvgThrees    float64
	AvgTurnovers float64
	TotalFGM     float64
	TotalFGA     float64
	TotalFTM     float64
	TotalFTA     float64
}

// Score is the normalized value line for one player.
type Score struct {
	PlayerRowID    uint
	Points         float64
	Rebounds       float64
	Assists        float64
	Steals         float64
	Blocks         float64
	Threes         float64
	Turnovers      float64
	FGPct          float64
	FTPct          float64
	Total          float64
	PlayLikelihood float64
}

type Config struct {
	// FGBenchmark and FTBenchmark are the league shooting rates the
	// impact stats are measured against.
	FGBenchmark float64
	FTBenchmark float64
	// TopN is the size of the benchmark cohort.
	TopN int
	// SeasonGames scales games played into a play likelihood.
	SeasonGames float64
}

func DefaultConfig() Config {
	return Config{
		FGBenchmark: 0.48,
		FTBenchmark: 0.81,
		TopN:        200,
		SeasonGames: 82,
	}
}

// eps avoids division by zero without disturbing real benchmarks.
var eps = math.Nextafter(1, 2) - 1

type impacts struct {
	fg float64
	ft float64
}

type benchmarks struct {
	points    float64
	rebounds  float64
	assists   float64
	steals    float64
	blocks    float64
	threes    float64
	turnovers float64
}

// Calculate runs the two-pass calculation: the benchmark season fixes the
// cohort averages and variance targets, which then score the calculation
// season.
func Calculate(benchmark, calculation []Aggregate, cfg Config) ([]Score, error) {
	if len(benchmark) == 0 {
		return nil, fmt.Errorf("no benchmark season aggregates")
	}
	if len(calculation) == 0 {
		return nil, fmt.Errorf("no calculation season aggregates")
	}

	benchImpacts := impactStats(benchmark, cfg)

	// Provisional pass ranks the benchmark season with neutral variance
	// targets. The scores themselves are discarded.
	provisional := scoreAll(benchmark, benchImpacts, cohortBenchmarks(benchmark), 1, impacts{}, impacts{fg: 1, ft: 1}, cfg)
	sort.Slice(provisional, func(i, j int) bool {
		return provisional[i].Total > provisional[j].Total
	})
	topN := cfg.TopN
	if topN > len(provisional) {
		topN = len(provisional)
	}
	inCohort := make(map[uint]bool, topN)
	for _, s := range provisional[:topN] {
		inCohort[s.PlayerRowID] = true
	}

	var cohort []Aggregate
	for _, a := range benchmark {
		if inCohort[a.PlayerRowID] {
			cohort = append(cohort, a)
		}
	}
	if len(cohort) == 0 {
		return nil, fmt.Errorf("benchmark cohort is empty")
	}

	final := cohortBenchmarks(cohort)

	// The variance target is the spread of the cohort's points scores;
	// the Z-scored percentage categories are rescaled to it.
	ptsScores := make([]float64, len(cohort))
	for i, a := range cohort {
		ptsScores[i] = a.AvgPoints / final.points * 100
	}
	targetStdDev := stat.PopStdDev(ptsScores, nil)

	fgImpacts := make([]float64, len(cohort))
	ftImpacts := make([]float64, len(cohort))
	for i, a := range cohort {
		imp := benchImpacts[a.PlayerRowID]
		fgImpacts[i] = imp.fg
		ftImpacts[i] = imp.ft
	}
	impactMeans := impacts{
		fg: stat.Mean(fgImpacts, nil),
		ft: stat.Mean(ftImpacts, nil),
	}
	impactStdDevs := impacts{
		fg: stat.PopStdDev(fgImpacts, nil) + eps,
		ft: stat.PopStdDev(ftImpacts, nil) + eps,
	}

	calcImpacts := impactStats(calculation, cfg)
	scores := scoreAll(calculation, calcImpacts, final, targetStdDev, impactMeans, impactStdDevs, cfg)
	sort.Slice(scores, func(i, j int) bool {
		return scores[i].Total > scores[j].Total
	})
	return scores, nil
}

func impactStats(aggs []Aggregate, cfg Config) map[uint]impacts {
	out := make(map[uint]impacts, len(aggs))
	for _, a := range aggs {
		var imp impacts
		gp := float64(a.GamesPlayed)
		if a.TotalFGA > 0 {
			imp.fg = (a.TotalFGM - a.TotalFGA*cfg.FGBenchmark) / gp
		}
		if a.TotalFTA > 0 {
			imp.ft = (a.TotalFTM - a.TotalFTA*cfg.FTBenchmark) / gp
		}
		out[a.PlayerRowID] = imp
	}
	return out
}

func cohortBenchmarks(cohort []Aggregate) benchmarks {
	column := func(get func(Aggregate) float64) float64 {
		vals := make([]float64, len(cohort))
		for i, a := range cohort {
			vals[i] = get(a)
		}
		return stat.Mean(vals, nil) + eps
	}
	return benchmarks{
		points:    column(func(a Aggregate) float64 { return a.AvgPoints }),
		rebounds:  column(func(a Aggregate) float64 { return a.AvgRebounds }),
		assists:   column(func(a Aggregate) float64 { return a.AvgAssists }),
		steals:    column(func(a Aggregate) float64 { return a.AvgSteals }),
		blocks:    column(func(a Aggregate) float64 { return a.AvgBlocks }),
		threes:    column(func(a Aggregate) float64 { return a.AvgThrees }),
		turnovers: column(func(a Aggregate) float64 { return a.AvgTurnovers }),
	}
}

func scoreAll(aggs []Aggregate, imps map[uint]impacts, bench benchmarks, targetStdDev float64, impactMeans, impactStdDevs impacts, cfg Config) []Score {
	scores := make([]Score, 0, len(aggs))
	for _, a := range aggs {
		imp := imps[a.PlayerRowID]
		s := Score{
			PlayerRowID: a.PlayerRowID,
			Points:      a.AvgPoints / bench.points * 100,
			Rebounds:    a.AvgRebounds / bench.rebounds * 100,
			Assists:     a.AvgAssists / bench.assists * 100,
			Steals:      a.AvgSteals / bench.steals * 100,
			Blocks:      a.AvgBlocks / bench.blocks * 100,
			Threes:      a.AvgThrees / bench.threes * 100,
			// Turnovers hurt, so the score is negated.
			Turnovers:      a.AvgTurnovers / bench.turnovers * -100,
			FGPct:          (imp.fg - impactMeans.fg) / impactStdDevs.fg * targetStdDev,
			FTPct:          (imp.ft - impactMeans.ft) / impactStdDevs.ft * targetStdDev,
			PlayLikelihood: float64(a.GamesPlayed) / cfg.SeasonGames,
		}
		s.Total = s.Points + s.Rebounds + s.Assists + s.Steals + s.Blocks +
			s.Threes + s.Turnovers + s.FGPct + s.FTPct
		scores = append(scores, s)
	}
	return scores
}
