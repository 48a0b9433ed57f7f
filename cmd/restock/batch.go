package main

import (
	"fmt"

	"github.com/Safa30/Lab-2-CSE366/internal/agent"
	"github.com/Safa30/Lab-2-CSE366/internal/config"
	"github.com/Safa30/Lab-2-CSE366/internal/db"
	"github.com/Safa30/Lab-2-CSE366/internal/logging"
	"github.com/Safa30/Lab-2-CSE366/internal/market"
	"github.com/Safa30/Lab-2-CSE366/internal/report"
	"github.com/Safa30/Lab-2-CSE366/internal/sim"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func batchCmd() *cobra.Command {
	var runs int
	var steps int
	var seed uint64
	var noArchive bool
	cmd := &cobra.Command{
		Use:          "batch",
		Short:        "Run repeated simulations and aggregate the outcomes",
		Long:         "Run repeated simulations with derived seeds, archive each run, and print aggregate statistics.",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if runs < 1 {
				return fmt.Errorf("%w: batch needs at least one run, got %d", config.ErrInvalid, runs)
			}
			storeDB, repoRoot, closeFn, err := openDB()
			if err != nil {
				return err
			}
			defer closeFn()
			cfg, err := loadConfig(repoRoot)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("steps") {
				cfg.Steps = steps
			}
			if cmd.Flags().Changed("seed") {
				cfg.Seed = seed
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			var store *db.Store
			if !noArchive {
				store = db.NewStore(storeDB)
			}

			// Replication i runs with batchSeed+i, so one logged seed
			// reproduces the whole batch.
			batchSeed := pickSeed(cfg.Seed)
			log.Info().Uint64("seed", batchSeed).Int("runs", runs).Int("steps", cfg.Steps).Msg("starting batch")

			results := make([]report.Data, 0, runs)
			for i := 0; i < runs; i++ {
				runID := uuid.NewString()
				runSeed := batchSeed + uint64(i)
				logger := logging.WithRun(runID)

				env := market.New(cfg.MarketParams(), newRNG(runSeed))
				ag := agent.New(cfg.AgentParams())
				memory := &sim.MemoryRecorder{}

				loop := sim.NewLoop(logger, env, ag, memory)
				if err := loop.Run(cmd.Context(), cfg.Steps); err != nil {
					return fmt.Errorf("replication %d: %w", i, err)
				}
				if store != nil {
					update := closingUpdate(db.StatusDone, env, ag)
					if err := store.ArchiveRun(cmd.Context(), runID, runSeed, memory.Records(), update); err != nil {
						return fmt.Errorf("archive replication %d: %w", i, err)
					}
				}
				results = append(results, report.FromRecords(runID, runSeed, memory.Records(), env.Price(), env.Stock()))
			}

			fmt.Print(report.BatchSummary(report.Aggregate(results)))
			return nil
		},
	}
	cmd.Flags().IntVar(&runs, "runs", 10, "number of replications")
	cmd.Flags().IntVar(&steps, "steps", 0, "steps per replication, overrides the config")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "base seed for the batch, 0 picks one")
	cmd.Flags().BoolVar(&noArchive, "no-archive", false, "skip writing the runs to the archive")
	return cmd
}
