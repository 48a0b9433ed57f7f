// Package agent implements the reordering agent: a running average of
// observed prices, two monitors watching for discounts and low stock, and an
// ordering policy that turns their verdicts into purchase quantities.
package agent

import (
	"slices"

	"github.com/Safa30/Lab-2-CSE366/internal/model"
)

// Config fixes the agent's decision parameters for one run.
type Config struct {
	// SmoothingFactor weights each new price observation in the running
	// average (exponential smoothing).
	SmoothingFactor float64
	// InitialAveragePrice seeds the running average before the first
	// observation.
	InitialAveragePrice float64
	DiscountThreshold   float64
	LowStockThreshold   float64
	BaseOrder           int
	RestockQuantity     int
}

// Agent owns the decision state: the smoothed average price, cumulative
// spend, and the append-only purchase history. It holds no reference to the
// environment; everything it knows arrives through percepts.
type Agent struct {
	alpha            float64
	priceMonitor     PriceMonitor
	inventoryMonitor InventoryMonitor
	policy           OrderingPolicy

	averagePrice float64
	totalSpent   float64
	buyHistory   []int
}

// New builds an agent with its running average seeded at the configured
// reference price.
func New(cfg Config) *Agent {
	return &Agent{
		alpha:            cfg.SmoothingFactor,
		priceMonitor:     PriceMonitor{DiscountThreshold: cfg.DiscountThreshold},
		inventoryMonitor: InventoryMonitor{LowStockThreshold: cfg.LowStockThreshold},
		policy:           OrderingPolicy{BaseOrder: cfg.BaseOrder, RestockQuantity: cfg.RestockQuantity},
		averagePrice:     cfg.InitialAveragePrice,
	}
}

// Decide runs the per-step protocol. The observed price folds into the
// running average before anything else, so the monitors consume the updated
// value. Both monitors are always evaluated even when the first one already
// settles the outcome, because recorders want every verdict. The policy then
// picks a quantity and the spend and purchase history are updated.
// Cannot fail on well-formed input.
func (a *Agent) Decide(p model.Percept) model.Decision {
	a.averagePrice += (p.Price - a.averagePrice) * a.alpha

	priceDiscount := a.priceMonitor.Evaluate(p, a.averagePrice)
	lowStock := a.inventoryMonitor.Evaluate(p)

	buy := a.policy.Decide(p, a.averagePrice, priceDiscount, lowStock)

	a.totalSpent += float64(buy) * p.Price
	a.buyHistory = append(a.buyHistory, buy)

	return model.Decision{
		Action:        model.Action{Buy: buy},
		PriceDiscount: priceDiscount,
		LowStock:      lowStock,
		AveragePrice:  a.averagePrice,
	}
}

// AveragePrice returns the current smoothed average price.
func (a *Agent) AveragePrice() float64 { return a.averagePrice }

// TotalSpent returns the cumulative spend across all decisions. It never
// decreases.
func (a *Agent) TotalSpent() float64 { return a.totalSpent }

// BuyHistory returns a copy of the per-step purchase quantities, one entry
// per completed decision.
func (a *Agent) BuyHistory() []int {
	return slices.Clone(a.buyHistory)
}
