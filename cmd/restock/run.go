package main

import (
	"fmt"

	"github.com/Safa30/Lab-2-CSE366/internal/agent"
	"github.com/Safa30/Lab-2-CSE366/internal/db"
	"github.com/Safa30/Lab-2-CSE366/internal/logging"
	"github.com/Safa30/Lab-2-CSE366/internal/market"
	"github.com/Safa30/Lab-2-CSE366/internal/report"
	"github.com/Safa30/Lab-2-CSE366/internal/sim"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

func runCmd() *cobra.Command {
	var steps int
	var seed uint64
	var table bool
	var chart bool
	var noArchive bool
	cmd := &cobra.Command{
		Use:          "run",
		Short:        "Run one simulation and archive the outcome",
		Long:         "Run one simulation with the configured market and agent, archive it, and print the run summary.",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
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

			runID := uuid.NewString()
			runSeed := pickSeed(cfg.Seed)
			logger := logging.WithRun(runID)
			logger.Info().Uint64("seed", runSeed).Int("steps", cfg.Steps).Msg("starting run")

			env := market.New(cfg.MarketParams(), newRNG(runSeed))
			ag := agent.New(cfg.AgentParams())

			memory := &sim.MemoryRecorder{}
			recorders := []sim.Recorder{memory}
			var store *db.Store
			if !noArchive {
				store = db.NewStore(storeDB)
				if err := store.CreateRun(cmd.Context(), runID, runSeed, cfg.Steps); err != nil {
					return err
				}
				recorders = append(recorders, store.Recorder(runID))
			}

			loop := sim.NewLoop(logger, env, ag, recorders...)
			runErr := loop.Run(cmd.Context(), cfg.Steps)
			if store != nil {
				status := db.StatusDone
				if runErr != nil {
					status = db.StatusFailed
				}
				if err := store.UpdateRun(cmd.Context(), runID, closingUpdate(status, env, ag)); err != nil {
					logger.Warn().Err(err).Msg("close archived run")
				}
			}
			if runErr != nil {
				return runErr
			}

			data := report.FromRecords(runID, runSeed, memory.Records(), env.Price(), env.Stock())
			fmt.Print(report.Summary(data))
			if table {
				fmt.Print(report.StepTable(memory.Records()))
			}
			if chart {
				return report.RenderChart(data)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&steps, "steps", 0, "number of simulation steps, overrides the config")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "random seed, 0 picks one")
	cmd.Flags().BoolVar(&table, "table", false, "print the per-step table")
	cmd.Flags().BoolVar(&chart, "chart", false, "open the terminal chart view after the run")
	cmd.Flags().BoolVar(&noArchive, "no-archive", false, "skip writing the run to the archive")
	return cmd
}
