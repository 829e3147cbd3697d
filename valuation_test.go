package foliosim

import (
	"math"
	"testing"

	"github.com/foliosim/foliosim/date"
)

func approx(got, want float64) bool { return math.Abs(got-want) < 1e-6 }

func TestValueAtConservesAmount(t *testing.T) {
	a := NewAsset("World ETF", "WLD")
	a.Prices.Append(date.New(2024, 1, 10), 50)
	a.AddInvestments(a.NewInvestment(1000, date.New(2024, 1, 10)))

	v := ValueAt(a, date.New(2024, 2, 1), 50)
	if !approx(v.Value, 1000) {
		t.Errorf("value %v, want 1000", v.Value)
	}
	if !approx(v.Shares, 20) {
		t.Errorf("shares %v, want 20", v.Shares)
	}
	if !approx(v.AvgBuyIn, 50) {
		t.Errorf("avg buy-in %v, want 50", v.AvgBuyIn)
	}
}

func TestValueAtExcludesSameDay(t *testing.T) {
	a := NewAsset("World ETF", "WLD")
	a.Prices.Append(date.New(2024, 1, 10), 50)
	a.AddInvestments(a.NewInvestment(1000, date.New(2024, 1, 10)))

	v := ValueAt(a, date.New(2024, 1, 10), 50)
	if v.Shares != 0 {
		t.Errorf("same-day investment counted: shares %v, want 0", v.Shares)
	}
}

func TestBuyInFallsBackToLaterPrice(t *testing.T) {
	a := NewAsset("World ETF", "WLD")
	a.Prices.Append(date.New(2024, 1, 10), 100)
	a.Prices.Append(date.New(2024, 1, 20), 50)
	// No quote on the 15th: the next positive quote wins over the previous one.
	a.AddInvestments(a.NewInvestment(500, date.New(2024, 1, 15)))

	v := ValueAt(a, date.New(2024, 2, 1), 50)
	if !approx(v.Shares, 10) {
		t.Errorf("shares %v, want 10 (priced at the later quote of 50)", v.Shares)
	}
	if !approx(v.AvgBuyIn, 50) {
		t.Errorf("avg buy-in %v, want 50", v.AvgBuyIn)
	}
}

func TestBuyInFallsBackToEarlierPrice(t *testing.T) {
	a := NewAsset("World ETF", "WLD")
	a.Prices.Append(date.New(2024, 1, 10), 100)
	a.AddInvestments(a.NewInvestment(500, date.New(2024, 1, 25)))

	v := ValueAt(a, date.New(2024, 2, 1), 100)
	if !approx(v.Shares, 5) {
		t.Errorf("shares %v, want 5 (priced at the earlier quote of 100)", v.Shares)
	}
}

func TestBuyInSkipsZeroQuotes(t *testing.T) {
	a := NewAsset("World ETF", "WLD")
	a.Prices.Append(date.New(2024, 1, 15), 0)
	a.Prices.Append(date.New(2024, 1, 20), 40)
	a.AddInvestments(a.NewInvestment(400, date.New(2024, 1, 15)))

	v := ValueAt(a, date.New(2024, 2, 1), 40)
	if !approx(v.Shares, 10) {
		t.Errorf("shares %v, want 10 (zero quote on the exact day must be ignored)", v.Shares)
	}
}

func TestValueAtNoInvestments(t *testing.T) {
	a := NewAsset("World ETF", "WLD")
	a.Prices.Append(date.New(2024, 1, 10), 50)

	v := ValueAt(a, date.New(2024, 2, 1), 50)
	if v.Value != 0 || v.Shares != 0 {
		t.Errorf("empty asset valued at %v (%v shares), want 0", v.Value, v.Shares)
	}
	if !math.IsNaN(v.AvgBuyIn) {
		t.Errorf("avg buy-in %v, want NaN when nothing was priced", v.AvgBuyIn)
	}
}

func TestValueAtNoPrices(t *testing.T) {
	a := NewAsset("World ETF", "WLD")
	a.AddInvestments(a.NewInvestment(400, date.New(2024, 1, 15)))

	v := ValueAt(a, date.New(2024, 2, 1), 0)
	if v.Value != 0 || v.Shares != 0 {
		t.Errorf("unpriceable investment valued at %v (%v shares), want 0", v.Value, v.Shares)
	}
	if !math.IsNaN(v.AvgBuyIn) {
		t.Errorf("avg buy-in %v, want NaN", v.AvgBuyIn)
	}
}
