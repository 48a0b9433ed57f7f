package agent

import (
	"math"
	"testing"

	"github.com/Safa30/Lab-2-CSE366/internal/model"
)

func testConfig() Config {
	return Config{
		SmoothingFactor:     0.1,
		InitialAveragePrice: 600,
		DiscountThreshold:   0.2,
		LowStockThreshold:   10,
		BaseOrder:           15,
		RestockQuantity:     10,
	}
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

// The average must absorb the observed price before the discount monitor
// runs. With the stale average (600) the cutoff would be 480 and price 475
// would look like a discount; with the updated average (587.5) the cutoff is
// 470 and it does not.
func TestAgentUpdatesAverageBeforeMonitors(t *testing.T) {
	t.Parallel()

	a := New(testConfig())

	d := a.Decide(model.Percept{Price: 475, Stock: 50})

	if !almostEqual(d.AveragePrice, 587.5) {
		t.Fatalf("AveragePrice = %v, want 587.5", d.AveragePrice)
	}
	if d.PriceDiscount {
		t.Fatalf("PriceDiscount = true, want false (cutoff is below the observed price once the average is updated)")
	}
	if d.Buy != 0 {
		t.Fatalf("Buy = %d, want 0", d.Buy)
	}
}

func TestAgentDiscountDecision(t *testing.T) {
	t.Parallel()

	a := New(testConfig())

	// avg = 600 + 0.1*(450-600) = 585; cutoff 468 > 450, so discount.
	// ratio = (585-450)/585, buy = floor(15 * (1 + ratio)) = 18.
	d := a.Decide(model.Percept{Price: 450, Stock: 50})

	if !d.PriceDiscount {
		t.Fatal("PriceDiscount = false, want true")
	}
	if d.LowStock {
		t.Fatal("LowStock = true, want false")
	}
	if d.Buy != 18 {
		t.Fatalf("Buy = %d, want 18", d.Buy)
	}
	if !almostEqual(d.AveragePrice, 585) {
		t.Fatalf("AveragePrice = %v, want 585", d.AveragePrice)
	}
	if !almostEqual(a.TotalSpent(), 18*450) {
		t.Fatalf("TotalSpent = %v, want %v", a.TotalSpent(), 18*450)
	}
}

func TestAgentRestocksOnLowStock(t *testing.T) {
	t.Parallel()

	a := New(testConfig())

	// Price equals the seeded average, so no discount. Stock 5 < 10.
	d := a.Decide(model.Percept{Price: 600, Stock: 5})

	if d.PriceDiscount {
		t.Fatal("PriceDiscount = true, want false")
	}
	if !d.LowStock {
		t.Fatal("LowStock = false, want true")
	}
	if d.Buy != 10 {
		t.Fatalf("Buy = %d, want 10", d.Buy)
	}
	if !almostEqual(a.TotalSpent(), 10*600) {
		t.Fatalf("TotalSpent = %v, want %v", a.TotalSpent(), 10*600)
	}
}

func TestAgentAccumulatesSpendAndHistory(t *testing.T) {
	t.Parallel()

	a := New(testConfig())

	a.Decide(model.Percept{Price: 450, Stock: 50}) // buy 18, spend 8100
	a.Decide(model.Percept{Price: 600, Stock: 5})  // buy 10, spend 6000
	a.Decide(model.Percept{Price: 600, Stock: 50}) // buy 0

	if !almostEqual(a.TotalSpent(), 8100+6000) {
		t.Fatalf("TotalSpent = %v, want %v", a.TotalSpent(), 8100+6000)
	}

	hist := a.BuyHistory()
	want := []int{18, 10, 0}
	if len(hist) != len(want) {
		t.Fatalf("len(BuyHistory) = %d, want %d", len(hist), len(want))
	}
	for i := range want {
		if hist[i] != want[i] {
			t.Fatalf("BuyHistory[%d] = %d, want %d", i, hist[i], want[i])
		}
	}

	// The returned slice is a copy; writing through it must not corrupt the
	// agent's own record.
	hist[0] = 999
	if got := a.BuyHistory()[0]; got != 18 {
		t.Fatalf("BuyHistory[0] after external write = %d, want 18", got)
	}
}

func TestAgentZeroBuysStillRecorded(t *testing.T) {
	t.Parallel()

	a := New(testConfig())

	for i := 0; i < 4; i++ {
		a.Decide(model.Percept{Price: 600, Stock: 50})
	}

	if got := len(a.BuyHistory()); got != 4 {
		t.Fatalf("len(BuyHistory) = %d, want 4", got)
	}
	if got := a.TotalSpent(); got != 0 {
		t.Fatalf("TotalSpent = %v, want 0", got)
	}
}
