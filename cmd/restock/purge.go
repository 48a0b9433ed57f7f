package main

import (
	"fmt"

	"github.com/Safa30/Lab-2-CSE366/internal/db"
	"github.com/spf13/cobra"
)

func purgeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "purge",
		Short: "Purge all archived runs and their step records",
		RunE: func(cmd *cobra.Command, args []string) error {
			storeDB, _, closeFn, err := openDB()
			if err != nil {
				return err
			}
			defer closeFn()

			if err := db.NewStore(storeDB).Purge(cmd.Context()); err != nil {
				return fmt.Errorf("purge failed: %w", err)
			}

			fmt.Println("Successfully purged all archived runs.")
			return nil
		},
	}
}
