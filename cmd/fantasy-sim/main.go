package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/hoopstats/fantasy-sim/internal/config"
	"github.com/hoopstats/fantasy-sim/internal/logger"
	"github.com/hoopstats/fantasy-sim/internal/storage"
)

// app carries the shared state every subcommand needs.
type app struct {
	cfg   *config.Config
	log   *logrus.Entry
	store *storage.Store

	// persistent flags
	seed       int64
	rosterPath string
}

func main() {
	// Missing .env is fine, the environment may be set directly.
	_ = godotenv.Load()

	a := &app{}

	root := &cobra.Command{
		Use:           "fantasy-sim",
		Short:         "Fantasy basketball simulation and trade analyzer",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			a.cfg = cfg
			logger.Init(cfg.LogLevel, cfg.IsDevelopment())
			a.log = logger.WithRun(cmd.Name())
			if a.rosterPath == "" {
				a.rosterPath = cfg.RosterCSV
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.store != nil {
				if err := a.store.Close(); err != nil {
					a.log.WithError(err).Warn("Failed to close database")
				}
			}
		},
	}

	root.PersistentFlags().Int64Var(&a.seed, "seed", 0, "RNG seed (0 uses the current time)")
	root.PersistentFlags().StringVar(&a.rosterPath, "rosters", "", "path to the league roster CSV")

	root.AddCommand(
		a.h2hCommand(),
		a.tradeCommand(),
		a.availabilityCommand(),
		a.eloCommand(),
		a.valueCommand(),
		a.exportCommand(),
		a.migrateCommand(),
	)

	if err := root.Execute(); err != nil {
		diagnose(err)
		os.Exit(1)
	}
}

// openStore connects lazily so commands that fail flag validation never
// touch the database.
func (a *app) openStore() (*storage.Store, error) {
	if a.store != nil {
		return a.store, nil
	}
	store, err := storage.Open(a.cfg.DatabaseURL, a.cfg.IsDevelopment())
	if err != nil {
		return nil, err
	}
	a.store = store
	return store, nil
}

// diagnose prints the failure, dumping full details for the errors that
// carry them.
func diagnose(err error) {
	log := logger.Get()
	log.WithError(err).Error("Command failed")
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
}
