package foliosim

import (
	"testing"

	"github.com/foliosim/foliosim/date"
)

func TestAnalyze(t *testing.T) {
	a := NewAsset("World ETF", "WLD")
	a.Prices.Append(date.New(2024, 1, 1), 100)
	a.Prices.Append(date.New(2024, 12, 31), 200)
	a.AddInvestments(a.NewInvestment(1000, date.New(2024, 1, 1)))

	r := Analyze([]*Asset{a})
	if len(r.Investments) != 1 {
		t.Fatalf("got %d analyzed investments, want 1", len(r.Investments))
	}
	inv := r.Investments[0]
	if !approx(inv.Shares, 10) {
		t.Errorf("shares %v, want 10", inv.Shares)
	}
	if !approx(inv.CurrentValue, 2000) {
		t.Errorf("current value %v, want 2000", inv.CurrentValue)
	}
	if !inv.Performance.Equal(100) {
		t.Errorf("performance %s, want 100%%", inv.Performance)
	}

	s := r.Summary
	if !approx(s.TotalInvested, 1000) || !approx(s.CurrentValue, 2000) {
		t.Errorf("summary invested/value %v/%v, want 1000/2000", s.TotalInvested, s.CurrentValue)
	}
	if !s.Performance.Equal(100) {
		t.Errorf("summary performance %s, want 100%%", s.Performance)
	}
	// All capital went in on day one here, so TTWOR matches the base case.
	if !approx(s.TTWORValue, 2000) || !s.TTWOR.Equal(100) {
		t.Errorf("ttwor %v (%s), want 2000 (100%%)", s.TTWORValue, s.TTWOR)
	}
}

func TestAnalyzeTTWORFlatPrices(t *testing.T) {
	a := NewAsset("Flat", "FLT")
	a.Prices.Append(date.New(2024, 1, 1), 80)
	a.Prices.Append(date.New(2024, 6, 1), 80)
	a.AddInvestments(
		a.NewInvestment(500, date.New(2024, 2, 1)),
		a.NewInvestment(500, date.New(2024, 4, 1)),
	)

	s := Analyze([]*Asset{a}).Summary
	if !s.TTWOR.Equal(0) {
		t.Errorf("ttwor %s, want 0%% when first and last prices are equal", s.TTWOR)
	}
	if !approx(s.TTWORValue, 1000) {
		t.Errorf("ttwor value %v, want the invested 1000", s.TTWORValue)
	}
}

func TestAnalyzeEmptyPortfolio(t *testing.T) {
	a := NewAsset("Empty", "EMP")
	a.Prices.Append(date.New(2024, 1, 1), 50)

	s := Analyze([]*Asset{a}).Summary
	if s.TotalInvested != 0 || s.CurrentValue != 0 {
		t.Errorf("invested/value %v/%v, want 0/0", s.TotalInvested, s.CurrentValue)
	}
	if s.Performance != 0 || s.TTWOR != 0 {
		t.Errorf("performance %s ttwor %s, want 0 (not NaN) for an empty portfolio", s.Performance, s.TTWOR)
	}
}

// The analyzer and the valuation resolve a missing quote in opposite
// directions: valuation prefers the next quote, the analyzer the previous
// one. Both sides of the asymmetry are pinned here.
func TestBuyInFallbackDirections(t *testing.T) {
	a := NewAsset("World ETF", "WLD")
	a.Prices.Append(date.New(2024, 1, 10), 100)
	a.Prices.Append(date.New(2024, 1, 20), 50)
	a.AddInvestments(a.NewInvestment(500, date.New(2024, 1, 15)))

	r := Analyze([]*Asset{a})
	if got := r.Investments[0].BuyIn; !approx(got, 100) {
		t.Errorf("analyzer buy-in %v, want the earlier quote 100", got)
	}
	v := ValueAt(a, date.New(2024, 2, 1), 50)
	if !approx(v.AvgBuyIn, 50) {
		t.Errorf("valuation buy-in %v, want the later quote 50", v.AvgBuyIn)
	}
}
