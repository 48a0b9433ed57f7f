// Package market owns the simulated world the agent trades against: a
// product whose price follows a repeating seasonal cycle with gaussian noise
// and whose stock is drained by stochastic daily demand.
package market

import (
	"fmt"
	"slices"

	"github.com/Safa30/Lab-2-CSE366/internal/dist"
	"github.com/Safa30/Lab-2-CSE366/internal/model"
)

// Source supplies all randomness the environment consumes: uniform draws for
// daily demand, normal draws for price noise. *math/rand/v2.Rand satisfies
// it; a seeded instance makes every run replayable.
type Source interface {
	Float64() float64
	NormFloat64() float64
}

// Params fixes the environment's dynamics for one run.
type Params struct {
	InitialPrice float64
	InitialStock float64
	PriceFloor   float64
	NoiseSD      float64
	// PriceCycle is added to the price step by step, indexed by time modulo
	// its length. Must be non-empty; the config layer rejects empty cycles
	// before an environment is built.
	PriceCycle []float64
	// Demand is the daily unit-sales table. Must carry at least one unit of
	// probability mass; validated by the config layer.
	Demand dist.Distribution[int]
}

// Environment is the single owner of world state. Only Advance mutates it,
// and each Advance grows both histories by exactly one snapshot.
type Environment struct {
	params Params
	rng    Source

	time    int
	stock   float64
	price   float64
	initial model.Percept

	priceHistory []float64
	stockHistory []float64
}

// New seeds an environment at time zero with the configured starting stock
// and price, both already recorded as the first history entries.
func New(params Params, rng Source) *Environment {
	e := &Environment{
		params: params,
		rng:    rng,
		stock:  params.InitialStock,
		price:  params.InitialPrice,
	}
	e.initial = model.Percept{Price: e.price, Stock: e.stock}
	e.stockHistory = append(e.stockHistory, e.stock)
	e.priceHistory = append(e.priceHistory, e.price)
	return e
}

// InitialPercept returns the seeded starting observation. It never mutates
// state or history.
func (e *Environment) InitialPercept() model.Percept {
	return e.initial
}

// Advance applies the purchase action and moves the world one step: demand
// is drawn and drains stock (clamped at zero, unmet demand is lost), time
// ticks, and the price takes its cyclic delta plus noise (clamped at the
// floor). The draw order is fixed, demand first and noise second, so a
// seeded source replays identically.
func (e *Environment) Advance(a model.Action) (model.Percept, error) {
	demand, err := dist.Sample(e.rng, e.params.Demand)
	if err != nil {
		return model.Percept{}, fmt.Errorf("draw daily demand: %w", err)
	}

	e.stock = max(0, e.stock+float64(a.Buy)-float64(demand))
	e.time++
	e.price += e.params.PriceCycle[e.time%len(e.params.PriceCycle)] + e.rng.NormFloat64()*e.params.NoiseSD
	e.price = max(e.params.PriceFloor, e.price)

	e.stockHistory = append(e.stockHistory, e.stock)
	e.priceHistory = append(e.priceHistory, e.price)

	return model.Percept{Price: e.price, Stock: e.stock}, nil
}

// Time returns the number of completed steps.
func (e *Environment) Time() int { return e.time }

// Price returns the current unit price.
func (e *Environment) Price() float64 { return e.price }

// Stock returns the current stock level.
func (e *Environment) Stock() float64 { return e.stock }

// PriceHistory returns a copy of the price snapshots, starting with the
// initial price. Always one longer than the number of completed steps.
func (e *Environment) PriceHistory() []float64 {
	return slices.Clone(e.priceHistory)
}

// StockHistory returns a copy of the stock snapshots, starting with the
// initial stock.
func (e *Environment) StockHistory() []float64 {
	return slices.Clone(e.stockHistory)
}
