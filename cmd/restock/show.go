package main

import (
	"fmt"

	"github.com/Safa30/Lab-2-CSE366/internal/db"
	"github.com/Safa30/Lab-2-CSE366/internal/report"
	"github.com/spf13/cobra"
)

func showCmd() *cobra.Command {
	var table bool
	var chart bool
	cmd := &cobra.Command{
		Use:          "show <run-id>",
		Short:        "Show an archived run",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			storeDB, _, closeFn, err := openDB()
			if err != nil {
				return err
			}
			defer closeFn()

			store := db.NewStore(storeDB)
			summary, err := store.GetRun(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			steps, err := store.RunSteps(cmd.Context(), summary.RunID)
			if err != nil {
				return err
			}

			data := report.FromArchive(summary, steps)
			fmt.Print(report.Summary(data))
			if table {
				fmt.Print(report.StepTable(steps))
			}
			if chart {
				return report.RenderChart(data)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&table, "table", false, "print the per-step table")
	cmd.Flags().BoolVar(&chart, "chart", false, "open the terminal chart view")
	return cmd
}
