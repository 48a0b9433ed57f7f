package report

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Metric summarizes one outcome measure across replications.
type Metric struct {
	Mean   float64
	StdDev float64
	Min    float64
	Max    float64
}

// BatchStats holds aggregated outcomes for a batch of runs.
type BatchStats struct {
	Runs        int
	Steps       int
	TotalSpent  Metric
	FinalPrice  Metric
	FinalStock  Metric
	UnitsBought Metric
}

// Aggregate computes batch statistics over finished runs.
func Aggregate(runs []Data) BatchStats {
	if len(runs) == 0 {
		return BatchStats{}
	}
	spent := make([]float64, len(runs))
	price := make([]float64, len(runs))
	stock := make([]float64, len(runs))
	units := make([]float64, len(runs))
	for i, d := range runs {
		spent[i] = d.TotalSpent
		price[i] = d.FinalPrice()
		stock[i] = d.FinalStock()
		units[i] = float64(d.UnitsBought())
	}
	return BatchStats{
		Runs:        len(runs),
		Steps:       runs[0].Steps(),
		TotalSpent:  metricOf(spent),
		FinalPrice:  metricOf(price),
		FinalStock:  metricOf(stock),
		UnitsBought: metricOf(units),
	}
}

func metricOf(xs []float64) Metric {
	m := Metric{
		Mean: stat.Mean(xs, nil),
		Min:  floats.Min(xs),
		Max:  floats.Max(xs),
	}
	// The sample standard deviation needs at least two replications.
	if len(xs) > 1 {
		m.StdDev = stat.StdDev(xs, nil)
	}
	return m
}

// BatchSummary renders batch statistics as a boxed table.
func BatchSummary(s BatchStats) string {
	rows := []string{tableHeadStyle.Render(fmt.Sprintf("%-14s %12s %12s %12s %12s",
		"metric", "mean", "stddev", "min", "max"))}
	row := func(label string, m Metric) {
		rows = append(rows, fmt.Sprintf("%-14s %12s %12s %12s %12s",
			label, money(m.Mean), money(m.StdDev), money(m.Min), money(m.Max)))
	}
	row("total spent", s.TotalSpent)
	row("final price", s.FinalPrice)
	row("final stock", s.FinalStock)
	row("units bought", s.UnitsBought)

	title := titleStyle.Render(fmt.Sprintf("batch summary (%d runs x %d steps)", s.Runs, s.Steps))
	return title + "\n" + boxStyle.Render(strings.Join(rows, "\n")) + "\n"
}
