// internal/charts/charts.go
package charts

import (
	"bytes"
	"fmt"

	"github.com/wcharczuk/go-chart/v2"

	"democracy-score/internal/spending"
)

// SpendingByCategory рисует bar chart трат по категориям (PNG).
// Названия категорий подставляются по id; неизвестный id остаётся как есть
func SpendingByCategory(totals []spending.CategoryTotal, names map[string]string) ([]byte, error) {
	if len(totals) == 0 {
		return nil, fmt.Errorf("nothing to chart: empty spending ledger")
	}

	bars := make([]chart.Value, 0, len(totals))
	for _, t := range totals {
		label := t.CategoryID
		if name, ok := names[t.CategoryID]; ok {
			label = name
		}
		bars = append(bars, chart.Value{
			Value: float64(t.Total),
			Label: label,
		})
	}

	graph := chart.BarChart{
		Title:  "Spending by Category",
		Height: 512,
		Background: chart.Style{
			Padding: chart.Box{Top: 40},
		},
		BarWidth: 60,
		Bars:     bars,
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("render chart: %w", err)
	}
	return buf.Bytes(), nil
}
