package main

import (
	"fmt"
	"os"

	"github.com/Safa30/Lab-2-CSE366/internal/logging"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	debug   bool
	rootCmd = &cobra.Command{
		Use:   "restock",
		Short: "restock simulates a reordering agent in a noisy market",
	}
)

// Execute runs the root command.
func Execute() error {
	_ = godotenv.Load()
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", envOr("RESTOCK_CONFIG", defaultConfigPath), "config file path")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", envBool("RESTOCK_DEBUG"), "enable debug logging")
	if err := viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config")); err != nil {
		return fmt.Errorf("bind config flag: %w", err)
	}
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		logging.Init(debug)
	}
	rootCmd.AddCommand(initCmd())
	rootCmd.AddCommand(runCmd())
	rootCmd.AddCommand(batchCmd())
	rootCmd.AddCommand(showCmd())
	rootCmd.AddCommand(runsCmd())
	rootCmd.AddCommand(configCmd())
	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(purgeCmd())
	return rootCmd.Execute()
}

func initConfig() {
	path := cfgFile
	if path == "" {
		path = defaultConfigPath
	}
	viper.SetConfigFile(path)
	viper.SetConfigType("yaml")
}

func envOr(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}

func envBool(name string) bool {
	switch os.Getenv(name) {
	case "1", "true", "yes":
		return true
	}
	return false
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, err)
}
