package report

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/Safa30/Lab-2-CSE366/internal/model"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7C3AED"))

	boxStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#3B82F6")).
			Padding(0, 2)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6B7280")).
			Width(14)

	valueStyle = lipgloss.NewStyle().
			Bold(true)

	flagStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F59E0B"))

	tableHeadStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#3B82F6"))
)

// money renders a float as a fixed two-decimal amount.
func money(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(2)
}

// Summary renders the closing report for one run.
func Summary(d Data) string {
	var b strings.Builder

	row := func(label, value string) {
		b.WriteString(labelStyle.Render(label))
		b.WriteString(valueStyle.Render(value))
		b.WriteString("\n")
	}

	row("Run", d.RunID)
	row("Seed", fmt.Sprintf("%d", d.Seed))
	row("Steps", fmt.Sprintf("%d", d.Steps()))
	row("Final price", money(d.FinalPrice()))
	row("Final stock", fmt.Sprintf("%.0f", d.FinalStock()))
	row("Average price", money(d.AveragePrice()))
	row("Units bought", fmt.Sprintf("%d", d.UnitsBought()))
	row("Total spent", money(d.TotalSpent))

	return titleStyle.Render("restock run summary") + "\n" +
		boxStyle.Render(strings.TrimRight(b.String(), "\n")) + "\n"
}

// StepTable renders the per-step trace as an aligned table. Monitor verdicts
// show as short flags: D for a price discount, L for low stock.
func StepTable(records []model.StepRecord) string {
	var b strings.Builder

	b.WriteString(tableHeadStyle.Render(fmt.Sprintf("%4s  %10s  %10s  %8s  %5s  %4s  %12s",
		"step", "price", "average", "stock", "flags", "buy", "spent")))
	b.WriteString("\n")

	for _, rec := range records {
		flags := ""
		if rec.PriceDiscount {
			flags += "D"
		}
		if rec.LowStock {
			flags += "L"
		}
		line := fmt.Sprintf("%4d  %10s  %10s  %8.1f  %5s  %4d  %12s",
			rec.Step, money(rec.Price), money(rec.AveragePrice), rec.Stock, flags, rec.Buy, money(rec.Spent))
		if flags != "" {
			line = flagStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	return b.String()
}
