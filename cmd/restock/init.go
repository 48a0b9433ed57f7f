// Package main provides the entry point for the restock CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/Safa30/Lab-2-CSE366/internal/config"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func initCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize a restock workspace",
		Long:  "Initialize a restock workspace by creating the .restock directory, the run archive, and a default config.yaml.",
		RunE: func(cmd *cobra.Command, args []string) error {
			repoRoot, err := os.Getwd()
			if err != nil {
				return err
			}

			restockDir := filepath.Join(repoRoot, ".restock")
			log.Info().Str("dir", restockDir).Msg("creating restock directory")
			if err := os.MkdirAll(restockDir, 0o755); err != nil {
				return fmt.Errorf("create restock dir: %w", err)
			}

			configPath := filepath.Join(restockDir, "config.yaml")
			if _, err := os.Stat(configPath); err == nil {
				log.Info().Msg("config.yaml already exists, skipping")
			} else {
				log.Info().Str("path", configPath).Msg("installing default config")
				data, err := yaml.Marshal(config.Default())
				if err != nil {
					return fmt.Errorf("marshal default config: %w", err)
				}
				if err := os.WriteFile(configPath, data, 0o644); err != nil {
					return fmt.Errorf("write default config: %w", err)
				}
			}

			log.Info().Msg("initializing run archive")
			_, _, closeFn, err := openDB()
			if err != nil {
				return fmt.Errorf("init run archive: %w", err)
			}
			closeFn()

			fmt.Println("restock initialized successfully")
			return nil
		},
	}
}
