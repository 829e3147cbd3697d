package renderer

import (
	"fmt"

	"github.com/foliosim/foliosim"
)

type historyView struct {
	Name string
	From string
	To   string
	Days []dayRow
}

type dayRow struct {
	Date        string
	Value       string
	Invested    string
	Gain        string
	Performance string
}

// RenderHistory renders the portfolio time series to a markdown string.
func RenderHistory(name string, series []foliosim.DayData, currency string) string {
	view := historyView{Name: name}
	if len(series) > 0 {
		view.From = series[0].Date.String()
		view.To = series[len(series)-1].Date.String()
	}
	for _, day := range series {
		view.Days = append(view.Days, dayRow{
			Date:        day.Date.String(),
			Value:       foliosim.M(day.Value, currency).String(),
			Invested:    foliosim.M(day.Invested, currency).String(),
			Gain:        foliosim.M(day.Value-day.Invested, currency).SignedString(),
			Performance: day.Performance.SignedString(),
		})
	}

	partials := map[string]string{
		"history_title": "history_title.md",
		"history_days":  "history_days.md",
	}
	return renderTemplate("history", "history.md", partials, view)
}

func formatShares(shares float64) string {
	return fmt.Sprintf("%.4f", shares)
}
