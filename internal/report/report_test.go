package report

import (
	"strings"
	"testing"

	"github.com/Safa30/Lab-2-CSE366/internal/model"
)

func sampleRecords() []model.StepRecord {
	return []model.StepRecord{
		{Step: 0, Price: 600, Stock: 50, Buy: 0, AveragePrice: 600},
		{Step: 1, Price: 450, Stock: 45, PriceDiscount: true, Buy: 18, AveragePrice: 585, Spent: 8100},
		{Step: 2, Price: 610, Stock: 8, LowStock: true, Buy: 10, AveragePrice: 587.5, Spent: 6100},
	}
}

func TestFromRecords(t *testing.T) {
	t.Parallel()

	d := FromRecords("run-a", 7, sampleRecords(), 598.5, 11)

	wantPrices := []float64{600, 450, 610, 598.5}
	if len(d.PriceHistory) != len(wantPrices) {
		t.Fatalf("len(PriceHistory) = %d, want %d", len(d.PriceHistory), len(wantPrices))
	}
	for i, p := range wantPrices {
		if d.PriceHistory[i] != p {
			t.Fatalf("PriceHistory[%d] = %v, want %v", i, d.PriceHistory[i], p)
		}
	}

	wantStocks := []float64{50, 45, 8, 11}
	for i, s := range wantStocks {
		if d.StockHistory[i] != s {
			t.Fatalf("StockHistory[%d] = %v, want %v", i, d.StockHistory[i], s)
		}
	}

	if d.Steps() != 3 {
		t.Fatalf("Steps = %d, want 3", d.Steps())
	}
	if d.UnitsBought() != 28 {
		t.Fatalf("UnitsBought = %d, want 28", d.UnitsBought())
	}
	if d.TotalSpent != 14200 {
		t.Fatalf("TotalSpent = %v, want 14200", d.TotalSpent)
	}
	if d.FinalPrice() != 598.5 {
		t.Fatalf("FinalPrice = %v, want 598.5", d.FinalPrice())
	}
	if d.FinalStock() != 11 {
		t.Fatalf("FinalStock = %v, want 11", d.FinalStock())
	}
	if d.AveragePrice() != 587.5 {
		t.Fatalf("AveragePrice = %v, want 587.5", d.AveragePrice())
	}
}

func TestFromArchiveMatchesFromRecords(t *testing.T) {
	t.Parallel()

	records := sampleRecords()
	summary := model.RunSummary{
		RunID:      "run-a",
		Seed:       7,
		Steps:      3,
		FinalPrice: 598.5,
		FinalStock: 11,
	}

	fromArchive := FromArchive(summary, records)
	fromRecords := FromRecords("run-a", 7, records, 598.5, 11)

	if fromArchive.TotalSpent != fromRecords.TotalSpent {
		t.Fatalf("TotalSpent differs: %v vs %v", fromArchive.TotalSpent, fromRecords.TotalSpent)
	}
	if len(fromArchive.PriceHistory) != len(fromRecords.PriceHistory) {
		t.Fatalf("PriceHistory length differs: %d vs %d", len(fromArchive.PriceHistory), len(fromRecords.PriceHistory))
	}
	if fromArchive.RunID != fromRecords.RunID || fromArchive.Seed != fromRecords.Seed {
		t.Fatalf("identity differs: %+v vs %+v", fromArchive, fromRecords)
	}
}

func TestFromRecordsEmpty(t *testing.T) {
	t.Parallel()

	d := FromRecords("run-a", 1, nil, 600, 50)

	if d.Steps() != 0 {
		t.Fatalf("Steps = %d, want 0", d.Steps())
	}
	if d.FinalPrice() != 600 {
		t.Fatalf("FinalPrice = %v, want 600", d.FinalPrice())
	}
	if d.AveragePrice() != 0 {
		t.Fatalf("AveragePrice = %v, want 0", d.AveragePrice())
	}
}

func TestSummaryContainsRunFacts(t *testing.T) {
	t.Parallel()

	d := FromRecords("run-a", 7, sampleRecords(), 598.5, 11)
	out := Summary(d)

	for _, want := range []string{
		"run-a",
		"Seed",
		"Total spent",
		"14200.00",
		"598.50",
		"28",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("Summary output missing %q:\n%s", want, out)
		}
	}
}

func TestStepTableFlagsAndMoney(t *testing.T) {
	t.Parallel()

	out := StepTable(sampleRecords())

	for _, want := range []string{
		"step",
		"450.00",
		"8100.00",
		"D",
		"L",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("StepTable output missing %q:\n%s", want, out)
		}
	}

	lines := strings.Count(out, "\n")
	// Header plus one line per record.
	if lines != 4 {
		t.Fatalf("StepTable rendered %d lines, want 4", lines)
	}
}
