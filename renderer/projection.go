package renderer

import (
	"fmt"
	"math"

	"github.com/foliosim/foliosim"
)

type projectionView struct {
	Name   string
	Months []projectionRow
	// Plan is nil when projecting without withdrawals.
	Plan *sustainabilityView
}

type projectionRow struct {
	Date           string
	Value          string
	Invested       string
	Withdrawal     string
	TotalWithdrawn string
}

type sustainabilityView struct {
	YearsToTarget    string
	TargetValue      string
	SustainableYears string
}

// ProjectionRenderOptions holds configuration for rendering a projection
// report.
type ProjectionRenderOptions struct {
	// Yearly keeps only every twelfth month in the table, for long horizons.
	Yearly bool
	// WithPlan adds the withdrawal sustainability section.
	WithPlan bool
}

// RenderProjection renders a future projection to a markdown string.
func RenderProjection(name string, p *foliosim.Projection, currency string, opts ProjectionRenderOptions) string {
	view := projectionView{Name: name}
	for i, row := range p.Rows {
		if opts.Yearly && (i+1)%12 != 0 {
			continue
		}
		view.Months = append(view.Months, projectionRow{
			Date:           row.Date.String(),
			Value:          foliosim.M(row.Value, currency).String(),
			Invested:       foliosim.M(row.Invested, currency).String(),
			Withdrawal:     foliosim.M(row.Withdrawal, currency).String(),
			TotalWithdrawn: foliosim.M(row.TotalWithdrawn, currency).String(),
		})
	}
	if opts.WithPlan {
		s := p.Sustainability
		view.Plan = &sustainabilityView{
			YearsToTarget:    formatYears(s.YearsToTarget),
			TargetValue:      foliosim.M(s.TargetValue, currency).String(),
			SustainableYears: formatYears(s.SustainableYears),
		}
		if s.Infinite() {
			view.Plan.SustainableYears = "forever"
		}
	}

	partials := map[string]string{
		"projection_title":          "projection_title.md",
		"projection_months":         "projection_months.md",
		"projection_sustainability": "projection_sustainability.md",
	}
	if !opts.WithPlan {
		partials["projection_sustainability"] = ""
	}
	return renderTemplate("projection", "projection.md", partials, view)
}

func formatYears(years float64) string {
	if math.IsInf(years, 1) {
		return "never"
	}
	return fmt.Sprintf("%.1f years", years)
}
