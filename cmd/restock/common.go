package main

import (
	"database/sql"
	"errors"
	"fmt"
	"math/rand/v2"
	"os"
	"path/filepath"

	"github.com/Safa30/Lab-2-CSE366/internal/agent"
	"github.com/Safa30/Lab-2-CSE366/internal/config"
	"github.com/Safa30/Lab-2-CSE366/internal/db"
	"github.com/Safa30/Lab-2-CSE366/internal/market"
	"github.com/spf13/viper"
)

var defaultConfigPath = filepath.Join(".restock", "config.yaml")

func openDB() (*sql.DB, string, func(), error) {
	repoRoot, err := os.Getwd()
	if err != nil {
		return nil, "", func() {}, err
	}
	restockDir := filepath.Join(repoRoot, ".restock")
	if err := os.MkdirAll(restockDir, 0o755); err != nil {
		return nil, "", func() {}, err
	}
	dbPath := filepath.Join(restockDir, "restock.db")
	storeDB, err := db.Open(dbPath)
	if err != nil {
		return nil, "", func() {}, err
	}
	return storeDB, repoRoot, func() { _ = storeDB.Close() }, nil
}

// loadConfig reads the YAML config, checks it against the schema, and applies
// the semantic validation. A missing file means the built-in defaults.
func loadConfig(repoRoot string) (config.Config, error) {
	path := viper.GetString("config")
	if path == "" {
		path = defaultConfigPath
	}
	if !filepath.IsAbs(path) {
		path = filepath.Join(repoRoot, path)
	}
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return config.Default(), nil
	}
	viper.SetConfigFile(path)
	viper.SetConfigType("yaml")
	if err := viper.ReadInConfig(); err != nil {
		return config.Config{}, fmt.Errorf("read config: %w", err)
	}
	if err := config.ValidateSettings(viper.AllSettings()); err != nil {
		return config.Config{}, err
	}
	cfg := config.Default()
	if err := viper.Unmarshal(&cfg); err != nil {
		return config.Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// pickSeed returns a usable seed. Zero means choose one at random, so the
// drawn value is logged instead and the run stays replayable.
func pickSeed(seed uint64) uint64 {
	for seed == 0 {
		seed = rand.Uint64()
	}
	return seed
}

func newRNG(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}

func closingUpdate(status string, env *market.Environment, ag *agent.Agent) db.Update {
	return db.Update{
		Status:       status,
		TotalSpent:   ag.TotalSpent(),
		UnitsBought:  sumBuys(ag.BuyHistory()),
		FinalPrice:   env.Price(),
		FinalStock:   env.Stock(),
		AveragePrice: ag.AveragePrice(),
	}
}

func sumBuys(buys []int) int {
	total := 0
	for _, b := range buys {
		total += b
	}
	return total
}
