package main

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/Safa30/Lab-2-CSE366/internal/config"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

func TestLoadConfig_UsesYAML(t *testing.T) {
	repoRoot := t.TempDir()
	if err := writeTestFile(filepath.Join(repoRoot, defaultConfigPath), `steps: 40
seed: 11
market:
  initial_price: 500
agent:
  smoothing_factor: 0.25
retention:
  keep_last: 5
`); err != nil {
		t.Fatalf("write yaml config: %v", err)
	}

	viper.Reset()
	t.Cleanup(viper.Reset)
	viper.Set("config", defaultConfigPath)

	cfg, err := loadConfig(repoRoot)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Steps != 40 {
		t.Fatalf("steps = %d, want %d", cfg.Steps, 40)
	}
	if cfg.Seed != 11 {
		t.Fatalf("seed = %d, want %d", cfg.Seed, 11)
	}
	if cfg.Market.InitialPrice != 500 {
		t.Fatalf("market.initial_price = %v, want %v", cfg.Market.InitialPrice, 500)
	}
	if cfg.Agent.SmoothingFactor != 0.25 {
		t.Fatalf("agent.smoothing_factor = %v, want %v", cfg.Agent.SmoothingFactor, 0.25)
	}
	if cfg.Retention.KeepLast != 5 {
		t.Fatalf("retention.keep_last = %d, want %d", cfg.Retention.KeepLast, 5)
	}

	// Keys the file does not set keep their defaults.
	def := config.Default()
	if cfg.Market.PriceFloor != def.Market.PriceFloor {
		t.Fatalf("market.price_floor = %v, want default %v", cfg.Market.PriceFloor, def.Market.PriceFloor)
	}
	if cfg.Agent.BaseOrder != def.Agent.BaseOrder {
		t.Fatalf("agent.base_order = %d, want default %d", cfg.Agent.BaseOrder, def.Agent.BaseOrder)
	}
	if len(cfg.Market.Demand) != len(def.Market.Demand) {
		t.Fatalf("market.demand has %d bands, want default %d", len(cfg.Market.Demand), len(def.Market.Demand))
	}
}

func TestLoadConfig_MissingFileUsesDefaults(t *testing.T) {
	repoRoot := t.TempDir()

	viper.Reset()
	t.Cleanup(viper.Reset)
	viper.Set("config", defaultConfigPath)

	cfg, err := loadConfig(repoRoot)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if !reflect.DeepEqual(cfg, config.Default()) {
		t.Fatalf("config = %+v, want defaults", cfg)
	}
}

func TestLoadConfig_RejectsUnknownKey(t *testing.T) {
	repoRoot := t.TempDir()
	if err := writeTestFile(filepath.Join(repoRoot, defaultConfigPath), "stepss: 40\n"); err != nil {
		t.Fatalf("write yaml config: %v", err)
	}

	viper.Reset()
	t.Cleanup(viper.Reset)
	viper.Set("config", defaultConfigPath)

	if _, err := loadConfig(repoRoot); err == nil {
		t.Fatal("load config accepted an unknown key")
	}
}

func TestDefaultConfigYAML_IsLoadable(t *testing.T) {
	repoRoot := t.TempDir()
	data, err := yaml.Marshal(config.Default())
	if err != nil {
		t.Fatalf("marshal default config: %v", err)
	}
	if err := writeTestFile(filepath.Join(repoRoot, defaultConfigPath), string(data)); err != nil {
		t.Fatalf("write default config: %v", err)
	}

	viper.Reset()
	t.Cleanup(viper.Reset)
	viper.Set("config", defaultConfigPath)

	cfg, err := loadConfig(repoRoot)
	if err != nil {
		t.Fatalf("load default config: %v", err)
	}
	if !reflect.DeepEqual(cfg, config.Default()) {
		t.Fatalf("config = %+v, want defaults", cfg)
	}
}

func writeTestFile(path, content string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(content), 0o644)
}
