package foliosim

import "github.com/foliosim/foliosim/date"

// DayData is one row of the portfolio time series.
type DayData struct {
	Date date.Date
	// Value is the total worth of all assets on that day.
	Value float64
	// Invested is the capital contributed up to and including that day.
	Invested float64
	// WeightedPerformance averages the per-asset performance weighted by each
	// asset's current value.
	WeightedPerformance Percent
	// RatioPerformance is the plain (value-invested)/invested ratio.
	RatioPerformance Percent
	// Performance is the reported figure: the weighted average, overridden by
	// the plain ratio whenever both value and invested capital are positive.
	// The two formulas can disagree; both are kept so the override stays
	// observable.
	Performance Percent
	// Prices records the carried-forward price of every asset on that day,
	// keyed by asset id.
	Prices map[string]float64
}

// BuildDaySeries walks the date range day by day, from r.From up to but not
// including r.To, and aggregates all assets into one DayData row per day.
//
// A day with no exact quote for an asset reuses the last known price. Days on
// which any asset still has no known price at all are dropped: a row is only
// valid once every asset has been priced at least once.
func BuildDaySeries(assets []*Asset, r date.Range) []DayData {
	var series []DayData

	for day := r.From; day.Before(r.To); day = day.Add(1) {
		row := DayData{Date: day, Prices: make(map[string]float64, len(assets))}

		var weighted float64
		var weightSum float64
		for _, a := range assets {
			// Zero before the asset's first known price; such days are
			// dropped below.
			price, _ := a.Prices.ValueAsOf(day)
			row.Prices[a.ID] = price

			invested := a.InvestedUntil(day)
			row.Invested += invested

			v := ValueAt(a, day, price)
			row.Value += v.Value

			if invested > 0 {
				perf := (v.Value - invested) / invested * 100
				weighted += perf * v.Value
				weightSum += v.Value
			}
		}

		if weightSum > 0 {
			row.WeightedPerformance = Percent(weighted / weightSum)
		}
		if row.Invested > 0 {
			row.RatioPerformance = Percent((row.Value - row.Invested) / row.Invested * 100)
		}
		row.Performance = row.WeightedPerformance
		if row.Value > 0 && row.Invested > 0 {
			row.Performance = row.RatioPerformance
		}

		if !allPriced(row.Prices) {
			continue
		}
		series = append(series, row)
	}
	return series
}

// allPriced reports whether every asset has a known (non-zero) price.
func allPriced(prices map[string]float64) bool {
	for _, p := range prices {
		if p == 0 {
			return false
		}
	}
	return true
}
