package agent

import (
	"math"

	"github.com/Safa30/Lab-2-CSE366/internal/model"
)

// OrderingPolicy turns monitor verdicts into a purchase quantity.
type OrderingPolicy struct {
	// BaseOrder is the order size a bare discount triggers before scaling.
	BaseOrder int
	// RestockQuantity is the fixed order size a low-stock signal triggers.
	RestockQuantity int
}

// Decide applies the precedence rules, first match wins:
//
//  1. Discount without a stock emergency: scale BaseOrder up by the discount
//     ratio (reference - price) / reference, rounded down.
//  2. Low stock: order RestockQuantity, regardless of price.
//  3. Otherwise: order nothing.
//
// When both signals fire the restock branch wins: a discount during a stock
// emergency buys the fixed quantity, not the scaled one.
func (o OrderingPolicy) Decide(p model.Percept, referenceAverage float64, priceDiscount, lowStock bool) int {
	switch {
	case priceDiscount && !lowStock:
		ratio := (referenceAverage - p.Price) / referenceAverage
		return int(math.Floor(float64(o.BaseOrder) * (1 + ratio)))
	case lowStock:
		return o.RestockQuantity
	default:
		return 0
	}
}
