package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/hoopstats/fantasy-sim/internal/report"
)

func (a *app) h2hCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "h2h",
		Short: "Run the full league head-to-head analysis",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := a.buildBaseline(a.newRand())
			if err != nil {
				return err
			}
			if err := report.WriteWinProbs(os.Stdout, data.baseline); err != nil {
				return err
			}
			return report.WriteAverages(os.Stdout, data.baseline)
		},
	}
}
