package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/Safa30/Lab-2-CSE366/internal/model"
)

// RunsTable renders archived run summaries, newest first.
func RunsTable(runs []model.RunSummary) string {
	rows := []string{tableHeadStyle.Render(fmt.Sprintf("%-36s  %-19s  %-7s  %5s  %12s  %6s",
		"run", "created", "status", "steps", "spent", "units"))}
	for _, r := range runs {
		created := r.CreatedAt
		if t, err := time.Parse(time.RFC3339Nano, r.CreatedAt); err == nil {
			created = t.Local().Format("2006-01-02 15:04:05")
		}
		line := fmt.Sprintf("%-36s  %-19s  %-7s  %5d  %12s  %6d",
			r.RunID, created, r.Status, r.Steps, money(r.TotalSpent), r.UnitsBought)
		if r.Status == "failed" {
			line = flagStyle.Render(line)
		}
		rows = append(rows, line)
	}
	return strings.Join(rows, "\n") + "\n"
}
