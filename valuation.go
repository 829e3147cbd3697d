package foliosim

import (
	"math"

	"github.com/foliosim/foliosim/date"
)

// Valuation is the point-in-time value of a single asset's investment
// history.
type Valuation struct {
	// Value is the worth of all accumulated shares at the requested price.
	Value float64
	// Shares is the number of shares accumulated by the investments.
	Shares float64
	// AvgBuyIn is the arithmetic mean of the buy-in prices actually used.
	// It is NaN when no investment could be priced; callers must guard.
	AvgBuyIn float64
}

// buyInPrice resolves the price used to convert a cash investment into
// shares on a given date. The chain is: exact price on that date, else the
// nearest later positive price, else the nearest earlier positive price,
// else 0. Missing daily quotes (non-trading days, provider gaps) therefore
// never break valuation, at the cost of pricing against a neighboring day.
func buyInPrice(prices *date.History[float64], on date.Date) float64 {
	if p, ok := prices.Get(on); ok && p > 0 {
		return p
	}
	for d, p := range prices.Values() {
		if !d.Before(on) && p > 0 {
			return p
		}
	}
	var prev float64
	for d, p := range prices.Values() {
		if d.Before(on) && p > 0 {
			prev = p
		}
	}
	return prev
}

// ValueAt converts the asset's investment history into shares held and their
// value at an arbitrary date, priced at currentPrice. Only investments dated
// strictly before 'on' participate; investments whose buy-in price cannot be
// resolved to a positive value are skipped.
func ValueAt(a *Asset, on date.Date, currentPrice float64) Valuation {
	var shares float64
	var buyInSum float64
	var priced int

	for _, inv := range a.Investments {
		if !inv.Date.Before(on) {
			continue
		}
		buyIn := buyInPrice(&a.Prices, inv.Date)
		if buyIn <= 0 {
			continue
		}
		shares += inv.Amount / buyIn
		buyInSum += buyIn
		priced++
	}

	avg := math.NaN()
	if priced > 0 {
		avg = buyInSum / float64(priced)
	}
	return Valuation{
		Value:    shares * currentPrice,
		Shares:   shares,
		AvgBuyIn: avg,
	}
}
