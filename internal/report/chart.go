package report

import (
	"fmt"
	"strconv"

	ui "github.com/gizak/termui/v3"
	"github.com/gizak/termui/v3/widgets"
)

// RenderChart opens the full-screen chart view for a run and blocks until a
// key is pressed. The top panel tracks the unit price against the agent's
// running average; the bottom panels show stock on hand and units ordered
// per step.
func RenderChart(d Data) error {
	if err := ui.Init(); err != nil {
		return fmt.Errorf("init terminal ui: %w", err)
	}
	defer ui.Close()

	width, height := ui.TerminalDimensions()
	split := height / 2

	price := widgets.NewPlot()
	price.Title = fmt.Sprintf(" price and running average (run %s) ", d.RunID)
	price.Data = [][]float64{d.PriceHistory, d.AverageHistory}
	price.LineColors = []ui.Color{ui.ColorCyan, ui.ColorYellow}
	price.AxesColor = ui.ColorWhite
	price.Marker = widgets.MarkerBraille
	price.SetRect(0, 0, width, split)

	stock := widgets.NewPlot()
	stock.Title = " stock on hand "
	stock.Data = [][]float64{d.StockHistory}
	stock.LineColors = []ui.Color{ui.ColorGreen}
	stock.AxesColor = ui.ColorWhite
	stock.Marker = widgets.MarkerBraille
	stock.SetRect(0, split, width/2, height-1)

	buys := widgets.NewBarChart()
	buys.Title = " units ordered per step "
	buys.BarWidth = 3
	buys.BarColors = []ui.Color{ui.ColorMagenta}
	buys.NumFormatter = func(n float64) string {
		return strconv.Itoa(int(n))
	}
	// BarChart cannot scale an all-zero series.
	maxBuy := 1.0
	buys.Data = make([]float64, 0, len(d.BuyHistory))
	buys.Labels = make([]string, 0, len(d.BuyHistory))
	for step, buy := range d.BuyHistory {
		if float64(buy) > maxBuy {
			maxBuy = float64(buy)
		}
		buys.Data = append(buys.Data, float64(buy))
		buys.Labels = append(buys.Labels, strconv.Itoa(step))
	}
	buys.MaxVal = maxBuy
	buys.SetRect(width/2, split, width, height-1)

	hint := widgets.NewParagraph()
	hint.Text = "press any key to close"
	hint.Border = false
	hint.SetRect(0, height-1, width, height)

	ui.Render(price, stock, buys, hint)

	for e := range ui.PollEvents() {
		if e.Type == ui.KeyboardEvent {
			break
		}
		if e.Type == ui.ResizeEvent {
			ui.Render(price, stock, buys, hint)
		}
	}
	return nil
}
