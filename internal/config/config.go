// Package config provides configuration loading and validation for restock.
package config

import (
	"errors"
	"fmt"

	"github.com/Safa30/Lab-2-CSE366/internal/agent"
	"github.com/Safa30/Lab-2-CSE366/internal/dist"
	"github.com/Safa30/Lab-2-CSE366/internal/market"
)

// ErrInvalid marks configuration rejected before a simulation starts.
var ErrInvalid = errors.New("invalid configuration")

// sumTolerance absorbs float rounding when checking that the demand table
// covers the whole unit interval.
const sumTolerance = 1e-9

// Config is the root configuration.
type Config struct {
	Steps     int             `yaml:"steps"     mapstructure:"steps"`
	Seed      uint64          `yaml:"seed"      mapstructure:"seed"`
	Market    MarketConfig    `yaml:"market"    mapstructure:"market"`
	Agent     AgentConfig     `yaml:"agent"     mapstructure:"agent"`
	Retention RetentionPolicy `yaml:"retention" mapstructure:"retention"`
}

// MarketConfig describes the environment dynamics.
type MarketConfig struct {
	InitialPrice float64      `yaml:"initial_price" mapstructure:"initial_price"`
	InitialStock float64      `yaml:"initial_stock" mapstructure:"initial_stock"`
	PriceFloor   float64      `yaml:"price_floor"   mapstructure:"price_floor"`
	NoiseSD      float64      `yaml:"noise_sd"      mapstructure:"noise_sd"`
	PriceCycle   []float64    `yaml:"price_cycle"   mapstructure:"price_cycle"`
	Demand       []DemandBand `yaml:"demand"        mapstructure:"demand"`
}

// DemandBand is one entry of the daily demand table. Entry order is
// meaningful: the sampler walks the table top to bottom.
type DemandBand struct {
	Units       int     `yaml:"units"       mapstructure:"units"`
	Probability float64 `yaml:"probability" mapstructure:"probability"`
}

// AgentConfig describes the reordering agent.
type AgentConfig struct {
	SmoothingFactor   float64 `yaml:"smoothing_factor"    mapstructure:"smoothing_factor"`
	DiscountThreshold float64 `yaml:"discount_threshold"  mapstructure:"discount_threshold"`
	LowStockThreshold float64 `yaml:"low_stock_threshold" mapstructure:"low_stock_threshold"`
	BaseOrder         int     `yaml:"base_order"          mapstructure:"base_order"`
	RestockQuantity   int     `yaml:"restock_quantity"    mapstructure:"restock_quantity"`
}

// RetentionPolicy defines how many archived runs to keep.
type RetentionPolicy struct {
	KeepLast int `yaml:"keep_last,omitempty" mapstructure:"keep_last"`
	KeepDays int `yaml:"keep_days,omitempty" mapstructure:"keep_days"`
}

// Default returns the stock scenario: a ten-day price cycle around 600 with
// sd-20 noise, 50 units on hand, and the reference reordering thresholds.
func Default() Config {
	return Config{
		Steps: 20,
		Seed:  0,
		Market: MarketConfig{
			InitialPrice: 600,
			InitialStock: 50,
			PriceFloor:   100,
			NoiseSD:      20,
			PriceCycle:   []float64{10, -80, 20, -60, 5, 50, -100, 30, -20, 0},
			Demand: []DemandBand{
				{Units: 3, Probability: 0.2},
				{Units: 5, Probability: 0.3},
				{Units: 7, Probability: 0.3},
				{Units: 10, Probability: 0.2},
			},
		},
		Agent: AgentConfig{
			SmoothingFactor:   0.1,
			DiscountThreshold: 0.2,
			LowStockThreshold: 10,
			BaseOrder:         15,
			RestockQuantity:   10,
		},
		Retention: RetentionPolicy{
			KeepLast: 50,
		},
	}
}

// Distribution converts the demand table, preserving entry order.
func (m MarketConfig) Distribution() dist.Distribution[int] {
	d := make(dist.Distribution[int], 0, len(m.Demand))
	for _, band := range m.Demand {
		d = append(d, dist.Entry[int]{Value: band.Units, Probability: band.Probability})
	}
	return d
}

// MarketParams converts the market section into environment parameters.
func (c Config) MarketParams() market.Params {
	return market.Params{
		InitialPrice: c.Market.InitialPrice,
		InitialStock: c.Market.InitialStock,
		PriceFloor:   c.Market.PriceFloor,
		NoiseSD:      c.Market.NoiseSD,
		PriceCycle:   c.Market.PriceCycle,
		Demand:       c.Market.Distribution(),
	}
}

// AgentParams converts the agent section. The running average starts at the
// market's initial price, so the first observation is judged against the
// price the run opened with.
func (c Config) AgentParams() agent.Config {
	return agent.Config{
		SmoothingFactor:     c.Agent.SmoothingFactor,
		InitialAveragePrice: c.Market.InitialPrice,
		DiscountThreshold:   c.Agent.DiscountThreshold,
		LowStockThreshold:   c.Agent.LowStockThreshold,
		BaseOrder:           c.Agent.BaseOrder,
		RestockQuantity:     c.Agent.RestockQuantity,
	}
}

// Validate rejects semantically broken configuration before any environment
// or archive is touched. All failures wrap ErrInvalid.
func (c Config) Validate() error {
	if c.Steps < 1 {
		return fmt.Errorf("%w: steps must be >= 1, got %d", ErrInvalid, c.Steps)
	}
	if c.Market.InitialPrice <= 0 {
		return fmt.Errorf("%w: market.initial_price must be > 0, got %v", ErrInvalid, c.Market.InitialPrice)
	}
	if c.Market.InitialStock < 0 {
		return fmt.Errorf("%w: market.initial_stock must be >= 0, got %v", ErrInvalid, c.Market.InitialStock)
	}
	if c.Market.PriceFloor < 0 {
		return fmt.Errorf("%w: market.price_floor must be >= 0, got %v", ErrInvalid, c.Market.PriceFloor)
	}
	if c.Market.NoiseSD < 0 {
		return fmt.Errorf("%w: market.noise_sd must be >= 0, got %v", ErrInvalid, c.Market.NoiseSD)
	}
	if len(c.Market.PriceCycle) == 0 {
		return fmt.Errorf("%w: market.price_cycle must not be empty", ErrInvalid)
	}
	if len(c.Market.Demand) == 0 {
		return fmt.Errorf("%w: market.demand must not be empty", ErrInvalid)
	}
	var total float64
	for i, band := range c.Market.Demand {
		if band.Units < 0 {
			return fmt.Errorf("%w: market.demand[%d].units must be >= 0, got %d", ErrInvalid, i, band.Units)
		}
		if band.Probability < 0 {
			return fmt.Errorf("%w: market.demand[%d].probability must be >= 0, got %v", ErrInvalid, i, band.Probability)
		}
		total += band.Probability
	}
	if total < 1-sumTolerance {
		return fmt.Errorf("%w: market.demand probabilities sum to %v, need at least 1", ErrInvalid, total)
	}
	if c.Agent.SmoothingFactor < 0 || c.Agent.SmoothingFactor > 1 {
		return fmt.Errorf("%w: agent.smoothing_factor must be in [0, 1], got %v", ErrInvalid, c.Agent.SmoothingFactor)
	}
	if c.Agent.DiscountThreshold < 0 || c.Agent.DiscountThreshold > 1 {
		return fmt.Errorf("%w: agent.discount_threshold must be in [0, 1], got %v", ErrInvalid, c.Agent.DiscountThreshold)
	}
	if c.Agent.LowStockThreshold < 0 {
		return fmt.Errorf("%w: agent.low_stock_threshold must be >= 0, got %v", ErrInvalid, c.Agent.LowStockThreshold)
	}
	if c.Agent.BaseOrder < 0 {
		return fmt.Errorf("%w: agent.base_order must be >= 0, got %d", ErrInvalid, c.Agent.BaseOrder)
	}
	if c.Agent.RestockQuantity < 0 {
		return fmt.Errorf("%w: agent.restock_quantity must be >= 0, got %d", ErrInvalid, c.Agent.RestockQuantity)
	}
	if c.Retention.KeepLast < 0 {
		return fmt.Errorf("%w: retention.keep_last must be >= 0, got %d", ErrInvalid, c.Retention.KeepLast)
	}
	if c.Retention.KeepDays < 0 {
		return fmt.Errorf("%w: retention.keep_days must be >= 0, got %d", ErrInvalid, c.Retention.KeepDays)
	}
	return nil
}
