package renderer

import (
	"github.com/foliosim/foliosim"
)

// performanceView is the template-facing shape of a performance report, with
// all amounts pre-formatted in the portfolio currency.
type performanceView struct {
	Name        string
	Investments []investmentRow
	Summary     summaryView
}

type investmentRow struct {
	Asset       string
	Date        string
	Amount      string
	BuyIn       string
	Shares      string
	Value       string
	Performance string
}

type summaryView struct {
	TotalInvested string
	CurrentValue  string
	Performance   string
	TTWORValue    string
	TTWOR         string
}

// RenderPerformance renders a performance report to a markdown string.
func RenderPerformance(name string, r *foliosim.PerformanceReport, currency string) string {
	view := performanceView{
		Name: name,
		Summary: summaryView{
			TotalInvested: foliosim.M(r.Summary.TotalInvested, currency).String(),
			CurrentValue:  foliosim.M(r.Summary.CurrentValue, currency).String(),
			Performance:   r.Summary.Performance.SignedString(),
			TTWORValue:    foliosim.M(r.Summary.TTWORValue, currency).String(),
			TTWOR:         r.Summary.TTWOR.SignedString(),
		},
	}
	for _, ip := range r.Investments {
		row := investmentRow{
			Asset:       ip.AssetName,
			Date:        ip.Date.String(),
			Amount:      foliosim.M(ip.Amount, currency).String(),
			BuyIn:       foliosim.M(ip.BuyIn, currency).String(),
			Shares:      formatShares(ip.Shares),
			Value:       foliosim.M(ip.CurrentValue, currency).String(),
			Performance: ip.Performance.SignedString(),
		}
		if ip.BuyIn == 0 {
			// Unpriceable investments have no derived figures.
			row.BuyIn, row.Shares, row.Value, row.Performance = "-", "-", "-", "-"
		}
		view.Investments = append(view.Investments, row)
	}

	partials := map[string]string{
		"performance_title":       "performance_title.md",
		"performance_investments": "performance_investments.md",
		"performance_summary":     "performance_summary.md",
	}
	return renderTemplate("performance", "performance.md", partials, view)
}
