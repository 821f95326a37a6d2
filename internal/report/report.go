// Package report renders simulation output: the head-to-head win
// probability table, the average weekly stats table, ranked trade
// proposals, availability rankings, and the CSV exports.
package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/hoopstats/fantasy-sim/internal/roster"
	"github.com/hoopstats/fantasy-sim/internal/sim"
	"github.com/hoopstats/fantasy-sim/internal/storage"
	"github.com/hoopstats/fantasy-sim/internal/trade"
)

// WriteWinProbs writes the full pairwise win-probability table as CSV,
// both directions of every pairing under both scenarios.
func WriteWinProbs(w io.Writer, b *sim.Baseline) error {
	cw := csv.NewWriter(w)
	header := []string{
		"team_1", "team_2", "FullStrength", "Win%_Overall",
		"Win%_Points", "Win%_Rebounds", "Win%_Assists", "Win%_Steals",
		"Win%_Turnovers", "Win%_Blocks", "Win%_3_Pointers",
		"Win%_FG_Pct", "Win%_FT_Pct",
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	for i := 0; i < len(b.Teams); i++ {
		for j := i + 1; j < len(b.Teams); j++ {
			for _, scenario := range roster.Scenarios {
				for _, dir := range [][2]string{{b.Teams[i], b.Teams[j]}, {b.Teams[j], b.Teams[i]}} {
					probs := b.WinProbs[sim.MatchupKey{Team1: dir[0], Team2: dir[1], Scenario: scenario}]
					row := []string{
						dir[0], dir[1],
						strconv.FormatBool(scenario == roster.ScenarioFullStrength),
						f4(probs.Overall), f4(probs.Points), f4(probs.Rebounds),
						f4(probs.Assists), f4(probs.Steals), f4(probs.Turnovers),
						f4(probs.Blocks), f4(probs.ThreesMade),
						f4(probs.FieldGoalPct), f4(probs.FreeThrowPct),
					}
					if err := cw.Write(row); err != nil {
						return err
					}
				}
			}
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteAverages writes the per-team average weekly stat table as CSV.
func WriteAverages(w io.Writer, b *sim.Baseline) error {
	fmt.Fprintln(w, "--- Average Weekly Stats ---")
	cw := csv.NewWriter(w)
	header := []string{
		"team", "FullStrength", "PTS", "REB", "AST", "STL", "BLK",
		"3PM", "TO", "FGM", "FGA", "FG_Pct", "FTM", "FTA", "FT_Pct",
	}
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, team := range b.Teams {
		for _, scenario := range roster.Scenarios {
			avg := b.Averages[team][scenario]
			row := []string{
				team,
				strconv.FormatBool(scenario == roster.ScenarioFullStrength),
				f2(avg.PerWeek.Points), f2(avg.PerWeek.Rebounds),
				f2(avg.PerWeek.Assists), f2(avg.PerWeek.Steals),
				f2(avg.PerWeek.Blocks), f2(avg.PerWeek.ThreesMade),
				f2(avg.PerWeek.Turnovers),
				f2(avg.PerWeek.FieldGoalsMade), f2(avg.PerWeek.FieldGoalAttempts),
				f4(avg.FieldGoalPct),
				f2(avg.PerWeek.FreeThrowsMade), f2(avg.PerWeek.FreeThrowAttempts),
				f4(avg.FreeThrowPct),
			}
			if err := cw.Write(row); err != nil {
				return err
			}
		}
	}
	cw.Flush()
	return cw.Error()
}

// TradeReport bundles everything needed to render ranked proposals.
type TradeReport struct {
	Team1     string
	Team2     string
	Proposals []trade.Proposal
	Names     map[string]string
}

// WriteTradeReport renders each proposal with a per-team table showing the
// baseline, new, and delta overall win probability against every
// uninvolved opponent, under both scenarios.
func WriteTradeReport(w io.Writer, r TradeReport) {
	if len(r.Proposals) == 0 {
		fmt.Fprintln(w, "No trades found matching criteria.")
		return
	}

	fmt.Fprintln(w, "\n--- Top Trades (Sorted by Combined Gain) ---")
	for i, p := range r.Proposals {
		t1Names := strings.Join(r.displayNames(p.Team1Gives), ", ")
		t2Names := strings.Join(r.displayNames(p.Team2Gives), ", ")

		fmt.Fprintf(w, "\n%s\n", strings.Repeat("=", 85))
		if p.FreeAgent {
			fmt.Fprintf(w, "PICKUP #%d: %s gets [%s] from free agency, waives [%s]\n",
				i+1, r.Team1, t2Names, t1Names)
		} else {
			fmt.Fprintf(w, "TRADE #%d: %s gets [%s] <--> %s gets [%s]\n",
				i+1, r.Team1, t2Names, r.Team2, t1Names)
		}
		fmt.Fprintf(w, "Combined Metric: %.4f\n", p.CombinedGain)
		fmt.Fprintf(w, "%s\n", strings.Repeat("-", 85))

		writeTeamTable(w, r.Team1, p, true)
		if !p.FreeAgent {
			writeTeamTable(w, r.Team2, p, false)
		}
	}
}

func writeTeamTable(w io.Writer, team string, p trade.Proposal, isTeam1 bool) {
	curr := p.Scenarios[roster.ScenarioCurrent]
	full := p.Scenarios[roster.ScenarioFullStrength]

	pick := func(r trade.ScenarioResult) (map[string]float64, map[string]float64, float64) {
		if isTeam1 {
			return r.Team1Deltas, r.Team1New, r.Team1GainSum
		}
		return r.Team2Deltas, r.Team2New, r.Team2GainSum
	}
	deltasC, newC, sumC := pick(curr)
	deltasF, newF, sumF := pick(full)

	opponents := make([]string, 0, len(deltasC))
	for opp := range deltasC {
		opponents = append(opponents, opp)
	}
	sort.Strings(opponents)
	numOpp := float64(len(opponents))
	if numOpp == 0 {
		return
	}

	var baseSumC, baseSumF float64
	for _, opp := range opponents {
		baseSumC += newC[opp] - deltasC[opp]
		baseSumF += newF[opp] - deltasF[opp]
	}
	avgBaseC, avgBaseF := baseSumC/numOpp, baseSumF/numOpp
	avgDeltaC, avgDeltaF := sumC/numOpp, sumF/numOpp

	fmt.Fprintf(w, "%-18s | %20s | %20s\n", team, center("CURR", 20), center("FULL STRENGTH", 20))
	fmt.Fprintf(w, "%-18s | %6s %6s %6s | %6s %6s %6s\n", "Opponent", "Base", "New", "Diff", "Base", "New", "Diff")
	fmt.Fprintln(w, strings.Repeat("-", 68))
	fmt.Fprintf(w, "%-18s | %6.3f %6.3f %+6.3f | %6.3f %6.3f %+6.3f\n",
		"OVERALL (Avg)",
		avgBaseC, avgBaseC+avgDeltaC, avgDeltaC,
		avgBaseF, avgBaseF+avgDeltaF, avgDeltaF)
	fmt.Fprintln(w, strings.Repeat("-", 68))

	for _, opp := range opponents {
		dc, nc := deltasC[opp], newC[opp]
		df, nf := deltasF[opp], newF[opp]
		fmt.Fprintf(w, "vs %-15s | %6.3f %6.3f %+6.3f | %6.3f %6.3f %+6.3f\n",
			opp, nc-dc, nc, dc, nf-df, nf, df)
	}
	fmt.Fprintln(w)
}

func (r TradeReport) displayNames(ids []string) []string {
	names := make([]string, 0, len(ids))
	for _, id := range ids {
		if name, ok := r.Names[id]; ok && name != "" {
			names = append(names, name)
		} else {
			names = append(names, id)
		}
	}
	return names
}

// WriteAvailability writes the estimated play probabilities as a ranked
// table, most available first.
func WriteAvailability(w io.Writer, probs map[string]float64, names map[string]string) {
	type ranked struct {
		id   string
		prob float64
	}
	rows := make([]ranked, 0, len(probs))
	for id, p := range probs {
		rows = append(rows, ranked{id, p})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].prob != rows[j].prob {
			return rows[i].prob > rows[j].prob
		}
		return rows[i].id < rows[j].id
	})

	fmt.Fprintf(w, "%-4s %-28s %-12s %s\n", "#", "Player", "ID", "P(play)")
	fmt.Fprintln(w, strings.Repeat("-", 56))
	for i, row := range rows {
		name := names[row.id]
		if name == "" {
			name = "Unknown"
		}
		fmt.Fprintf(w, "%-4d %-28s %-12s %.4f\n", i+1, name, row.id, row.prob)
	}
}

// ExportElo writes every stored rating as CSV, best overall first.
func ExportElo(w io.Writer, rows []storage.RatedPlayer) error {
	cw := csv.NewWriter(w)
	header := []string{
		"name", "player_id", "overall", "pts_elo", "reb_elo", "ast_elo",
		"stl_elo", "blk_elo", "tpm_elo", "to_elo", "fg_pct_elo", "ft_pct_elo",
		"dropped",
	}
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, r := range rows {
		row := []string{
			r.Name, r.RefID,
			f2(r.Overall), f2(r.Points), f2(r.Rebounds), f2(r.Assists),
			f2(r.Steals), f2(r.Blocks), f2(r.ThreesMade), f2(r.Turnovers),
			f2(r.FGPct), f2(r.FTPct),
			strconv.FormatBool(r.Dropped),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ExportValues writes the stored season value lines as CSV, best first.
func ExportValues(w io.Writer, rows []storage.SeasonValueRow) error {
	cw := csv.NewWriter(w)
	header := []string{
		"name", "player_id", "season", "pts_score", "reb_score", "ast_score",
		"stl_score", "blk_score", "tpm_score", "to_score", "fg_pct_score",
		"ft_pct_score", "total_score", "play_likelihood",
	}
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, r := range rows {
		row := []string{
			r.Name, r.RefID, strconv.Itoa(r.Season),
			f4(r.PointsScore), f4(r.ReboundsScore), f4(r.AssistsScore),
			f4(r.StealsScore), f4(r.BlocksScore), f4(r.ThreesScore),
			f4(r.TurnoversScore), f4(r.FGPctScore), f4(r.FTPctScore),
			f4(r.TotalScore), f4(r.PlayLikelihood),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func f2(v float64) string { return strconv.FormatFloat(v, 'f', 2, 64) }
func f4(v float64) string { return strconv.FormatFloat(v, 'f', 4, 64) }

func center(s string, width int) string {
	if len(s) >= width {
		return s
	}
	left := (width - len(s)) / 2
	right := width - len(s) - left
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
}
