package foliosim

import "github.com/foliosim/foliosim/date"

// InvestmentPerformance is the analyzed outcome of one investment.
type InvestmentPerformance struct {
	InvestmentID string
	AssetID      string
	AssetName    string
	Date         date.Date
	Amount       float64
	BuyIn        float64
	Shares       float64
	CurrentValue float64
	Performance  Percent
}

// PerformanceSummary aggregates the whole portfolio, including the TTWOR
// ("time travel without risk") counterfactual: the portfolio value had all
// capital been invested at each asset's earliest known price.
type PerformanceSummary struct {
	TotalInvested float64
	CurrentValue  float64
	Performance   Percent
	TTWORValue    float64
	TTWOR         Percent
}

// PerformanceReport is the output of Analyze.
type PerformanceReport struct {
	Investments []InvestmentPerformance
	Summary     PerformanceSummary
}

// resolveBuyIn is the analyzer's price fallback: exact price on the date,
// else the nearest earlier positive price, else the nearest later positive
// price. Note the search order differs from the valuation chain in
// buyInPrice; the two call sites grew their fallbacks independently and the
// divergence is kept until it is confirmed accidental.
func resolveBuyIn(prices *date.History[float64], on date.Date) float64 {
	if p, ok := prices.Get(on); ok && p > 0 {
		return p
	}
	var prev float64
	for d, p := range prices.Values() {
		if d.Before(on) && p > 0 {
			prev = p
		}
	}
	if prev > 0 {
		return prev
	}
	for d, p := range prices.Values() {
		if d.After(on) && p > 0 {
			return p
		}
	}
	return 0
}

// Analyze computes per-investment and portfolio-level performance against
// each asset's price series boundaries, plus the TTWOR baseline. TTWOR is a
// fixed counterfactual computed once, not a time series.
func Analyze(assets []*Asset) *PerformanceReport {
	report := &PerformanceReport{}

	for _, a := range assets {
		_, firstPrice := a.Prices.First()
		_, lastPrice := a.Prices.Latest()

		var investedInAsset float64
		for _, inv := range a.Investments {
			investedInAsset += inv.Amount

			ip := InvestmentPerformance{
				InvestmentID: inv.ID,
				AssetID:      a.ID,
				AssetName:    a.Name,
				Date:         inv.Date,
				Amount:       inv.Amount,
			}
			if buyIn := resolveBuyIn(&a.Prices, inv.Date); buyIn > 0 {
				ip.BuyIn = buyIn
				ip.Shares = inv.Amount / buyIn
				ip.CurrentValue = ip.Shares * lastPrice
				ip.Performance = Percent((ip.CurrentValue - inv.Amount) / inv.Amount * 100)
			}
			report.Investments = append(report.Investments, ip)
			report.Summary.CurrentValue += ip.CurrentValue
		}

		report.Summary.TotalInvested += investedInAsset
		if firstPrice > 0 {
			report.Summary.TTWORValue += investedInAsset / firstPrice * lastPrice
		}
	}

	if ti := report.Summary.TotalInvested; ti > 0 {
		report.Summary.Performance = Percent((report.Summary.CurrentValue - ti) / ti * 100)
		report.Summary.TTWOR = Percent((report.Summary.TTWORValue - ti) / ti * 100)
	}
	return report
}
