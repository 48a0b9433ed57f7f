package agent

import "github.com/Safa30/Lab-2-CSE366/internal/model"

// PriceMonitor flags prices that have dropped meaningfully below the agent's
// running average. Stateless beyond its threshold.
type PriceMonitor struct {
	// DiscountThreshold is the fractional drop below the reference average
	// that counts as a discount, e.g. 0.2 for twenty percent.
	DiscountThreshold float64
}

// Evaluate reports whether the observed price sits more than the threshold
// fraction below the reference average. Pure function of its inputs.
func (m PriceMonitor) Evaluate(p model.Percept, referenceAverage float64) bool {
	return p.Price < (1-m.DiscountThreshold)*referenceAverage
}

// InventoryMonitor flags stock levels below a fixed threshold. Stateless.
type InventoryMonitor struct {
	LowStockThreshold float64
}

// Evaluate reports whether stock is strictly below the threshold; a stock
// level exactly at the threshold is not low.
func (m InventoryMonitor) Evaluate(p model.Percept) bool {
	return p.Stock < m.LowStockThreshold
}
