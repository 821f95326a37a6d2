package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hoopstats/fantasy-sim/internal/report"
	"github.com/hoopstats/fantasy-sim/internal/trade"
)

func (a *app) tradeCommand() *cobra.Command {
	var (
		team1      string
		team2      string
		num        int
		tolerance  float64
		injured    bool
		winWin     bool
		require    []string
		maxResults int
		workers    int
		faPoolPath string
	)

	cmd := &cobra.Command{
		Use:   "trade",
		Short: "Find optimal trades between two teams",
		Long: `Enumerates every N-for-N swap between the two teams, re-simulates both
hypothetical rosters against the rest of the league, and ranks the swaps
that improve team 1 while keeping team 2's loss within tolerance.

With --fa-pool the second team is replaced by a free-agent pool file
(one player ID per line) and only team 1's criteria apply.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			freeAgents := faPoolPath != ""
			if !freeAgents && team2 == "" {
				return fmt.Errorf("--team2 is required unless --fa-pool is given")
			}
			if !freeAgents && team1 == team2 {
				return fmt.Errorf("team 1 and team 2 must be different")
			}

			rng := a.newRand()
			data, err := a.buildBaseline(rng)
			if err != nil {
				return err
			}

			// Config supplies the defaults; explicitly set flags win.
			tradeCfg := a.cfg.TradeConfig()
			if cmd.Flags().Changed("num") {
				tradeCfg.ExchangeSize = num
			}
			if cmd.Flags().Changed("tolerance") {
				tradeCfg.Team2LossTolerance = tolerance
			}
			if cmd.Flags().Changed("max-results") {
				tradeCfg.MaxResults = maxResults
			}
			if cmd.Flags().Changed("workers") {
				tradeCfg.Workers = workers
			}
			tradeCfg.AllowInjured = injured
			tradeCfg.RequiredPlayers = a.resolveRequired(require, data)
			if winWin {
				tradeCfg.Policy = trade.PolicyWinWin
			}

			finder := trade.NewFinder(a.cfg.SimConfig(), tradeCfg, a.log, data.rosters, data.weeks, data.baseline)

			var proposals []trade.Proposal
			if freeAgents {
				pool, err := readPool(faPoolPath)
				if err != nil {
					return err
				}
				finder = finder.WithOnDemandWeeks(a.playerWeekGenerator(rng))
				proposals, err = finder.SearchFreeAgents(cmd.Context(), team1, pool)
				if err != nil {
					return err
				}
			} else {
				proposals, err = finder.Search(cmd.Context(), team1, team2)
				if err != nil {
					return err
				}
			}

			reportTeam2 := team2
			if freeAgents {
				reportTeam2 = "Free Agency"
			}
			report.WriteTradeReport(os.Stdout, report.TradeReport{
				Team1:     team1,
				Team2:     reportTeam2,
				Proposals: proposals,
				Names:     data.names,
			})
			return nil
		},
	}

	cmd.Flags().StringVar(&team1, "team1", "", "name of the improving team")
	cmd.Flags().StringVar(&team2, "team2", "", "name of the trade partner")
	cmd.Flags().IntVarP(&num, "num", "n", 2, "players traded per side")
	cmd.Flags().Float64VarP(&tolerance, "tolerance", "t", 0.05, "loss tolerance for team 2")
	cmd.Flags().BoolVar(&injured, "injured", false, "allow trading injured players")
	cmd.Flags().BoolVar(&winWin, "win-win", false, "require both teams to strictly gain")
	cmd.Flags().StringSliceVar(&require, "require", nil, "players team 1 must include in every trade")
	cmd.Flags().IntVar(&maxResults, "max-results", 15, "ranked proposals to report")
	cmd.Flags().IntVar(&workers, "workers", 0, "evaluation workers (0 uses all CPUs)")
	cmd.Flags().StringVar(&faPoolPath, "fa-pool", "", "file with free-agent player IDs, replaces team 2")
	_ = cmd.MarkFlagRequired("team1")

	return cmd
}

// resolveRequired maps --require values, which may be names or IDs, to
// player IDs. Unresolved values pass through so the finder rejects them
// with a useful error.
func (a *app) resolveRequired(values []string, data *simData) []string {
	if len(values) == 0 {
		return nil
	}
	byName := make(map[string]string, len(data.names))
	for id, name := range data.names {
		byName[name] = id
	}
	ids := make([]string, 0, len(values))
	for _, v := range values {
		if id, ok := byName[v]; ok {
			ids = append(ids, id)
			continue
		}
		ids = append(ids, v)
	}
	return ids
}

// readPool reads a free-agent pool file: one player ID per line, ranked
// best first. Blank lines and #-comments are skipped.
func readPool(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open free-agent pool: %w", err)
	}
	defer f.Close()

	var pool []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		pool = append(pool, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read free-agent pool: %w", err)
	}
	return pool, nil
}
