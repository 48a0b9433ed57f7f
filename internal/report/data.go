// Package report renders finished runs for the terminal: a styled summary,
// an optional per-step table, and the full-screen chart view.
package report

import (
	"github.com/Safa30/Lab-2-CSE366/internal/model"
)

// Data is everything the render layer needs about one finished run. The
// histories follow the simulation convention: price and stock carry one entry
// per step plus the closing state, purchases and averages one entry per step.
type Data struct {
	RunID          string
	Seed           uint64
	PriceHistory   []float64
	StockHistory   []float64
	BuyHistory     []int
	AverageHistory []float64
	TotalSpent     float64
}

// FromRecords assembles report data from per-step records and the closing
// market state. The total spend is the sum of the per-step spends, added in
// step order.
func FromRecords(runID string, seed uint64, records []model.StepRecord, finalPrice, finalStock float64) Data {
	d := Data{
		RunID:          runID,
		Seed:           seed,
		PriceHistory:   make([]float64, 0, len(records)+1),
		StockHistory:   make([]float64, 0, len(records)+1),
		BuyHistory:     make([]int, 0, len(records)),
		AverageHistory: make([]float64, 0, len(records)),
	}
	for _, rec := range records {
		d.PriceHistory = append(d.PriceHistory, rec.Price)
		d.StockHistory = append(d.StockHistory, rec.Stock)
		d.BuyHistory = append(d.BuyHistory, rec.Buy)
		d.AverageHistory = append(d.AverageHistory, rec.AveragePrice)
		d.TotalSpent += rec.Spent
	}
	d.PriceHistory = append(d.PriceHistory, finalPrice)
	d.StockHistory = append(d.StockHistory, finalStock)
	return d
}

// FromArchive assembles report data from an archived run.
func FromArchive(summary model.RunSummary, steps []model.StepRecord) Data {
	return FromRecords(summary.RunID, summary.Seed, steps, summary.FinalPrice, summary.FinalStock)
}

// Steps returns the number of completed steps.
func (d Data) Steps() int {
	return len(d.BuyHistory)
}

// UnitsBought returns the total quantity purchased across the run.
func (d Data) UnitsBought() int {
	var total int
	for _, buy := range d.BuyHistory {
		total += buy
	}
	return total
}

// FinalPrice returns the closing unit price.
func (d Data) FinalPrice() float64 {
	if len(d.PriceHistory) == 0 {
		return 0
	}
	return d.PriceHistory[len(d.PriceHistory)-1]
}

// FinalStock returns the closing stock level.
func (d Data) FinalStock() float64 {
	if len(d.StockHistory) == 0 {
		return 0
	}
	return d.StockHistory[len(d.StockHistory)-1]
}

// AveragePrice returns the running average after the last step.
func (d Data) AveragePrice() float64 {
	if len(d.AverageHistory) == 0 {
		return 0
	}
	return d.AverageHistory[len(d.AverageHistory)-1]
}
