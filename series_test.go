package foliosim

import (
	"testing"

	"github.com/foliosim/foliosim/date"
)

func TestBuildDaySeriesCarriesPricesForward(t *testing.T) {
	a := NewAsset("World ETF", "WLD")
	a.Prices.Append(date.New(2024, 1, 1), 100)
	a.AddInvestments(a.NewInvestment(100, date.New(2024, 1, 1)))

	series := BuildDaySeries([]*Asset{a}, date.NewRange(date.New(2024, 1, 1), date.New(2024, 1, 5)))
	if len(series) != 4 {
		t.Fatalf("got %d rows, want 4 (the end date is excluded)", len(series))
	}
	for _, row := range series {
		if row.Prices[a.ID] != 100 {
			t.Errorf("%s: price %v, want the carried-forward 100", row.Date, row.Prices[a.ID])
		}
	}

	// Investments count from their own day, valuation from the day after.
	if series[0].Invested != 100 || series[0].Value != 0 {
		t.Errorf("day one: invested %v value %v, want 100 and 0", series[0].Invested, series[0].Value)
	}
	if series[1].Value != 100 {
		t.Errorf("day two: value %v, want 100", series[1].Value)
	}
}

func TestBuildDaySeriesDropsUnpricedDays(t *testing.T) {
	a := NewAsset("A", "A")
	a.Prices.Append(date.New(2024, 1, 1), 10)
	b := NewAsset("B", "B")
	b.Prices.Append(date.New(2024, 1, 3), 20)

	series := BuildDaySeries([]*Asset{a, b}, date.NewRange(date.New(2024, 1, 1), date.New(2024, 1, 6)))
	if len(series) != 3 {
		t.Fatalf("got %d rows, want 3 (days before every asset is priced are dropped)", len(series))
	}
	if series[0].Date != date.New(2024, 1, 3) {
		t.Errorf("first row on %s, want 2024-01-03", series[0].Date)
	}
}

func TestBuildDaySeriesInvestedMonotonic(t *testing.T) {
	a := NewAsset("World ETF", "WLD")
	a.Prices.Append(date.New(2024, 1, 1), 100)
	a.AddInvestments(GeneratePeriodic(PeriodicSettings{
		Start:      date.New(2024, 1, 1),
		DayOfMonth: 1,
		Interval:   1,
		Unit:       date.Monthly,
		Amount:     100,
	}, date.New(2024, 6, 1), a.ID)...)

	series := BuildDaySeries([]*Asset{a}, date.NewRange(date.New(2024, 1, 1), date.New(2024, 7, 1)))
	for i := 1; i < len(series); i++ {
		if series[i].Invested < series[i-1].Invested {
			t.Fatalf("invested decreased from %v to %v on %s",
				series[i-1].Invested, series[i].Invested, series[i].Date)
		}
	}
	if last := series[len(series)-1].Invested; last != 600 {
		t.Errorf("final invested %v, want 600", last)
	}
}

func TestBuildDaySeriesPerformanceOverride(t *testing.T) {
	up := NewAsset("Up", "UP")
	up.Prices.Append(date.New(2024, 1, 1), 50)
	up.Prices.Append(date.New(2024, 1, 10), 100)
	up.AddInvestments(up.NewInvestment(100, date.New(2024, 1, 1)))

	down := NewAsset("Down", "DN")
	down.Prices.Append(date.New(2024, 1, 1), 100)
	down.Prices.Append(date.New(2024, 1, 10), 50)
	down.AddInvestments(down.NewInvestment(100, date.New(2024, 1, 1)))

	series := BuildDaySeries([]*Asset{up, down}, date.NewRange(date.New(2024, 1, 10), date.New(2024, 1, 11)))
	if len(series) != 1 {
		t.Fatalf("got %d rows, want 1", len(series))
	}
	row := series[0]

	// Up doubled (+100% on a value of 200), Down halved (-50% on a value of
	// 50): the value-weighted average and the plain ratio disagree, and the
	// ratio is the reported figure.
	if !row.WeightedPerformance.Equal(70) {
		t.Errorf("weighted performance %s, want 70%%", row.WeightedPerformance)
	}
	if !row.RatioPerformance.Equal(25) {
		t.Errorf("ratio performance %s, want 25%%", row.RatioPerformance)
	}
	if row.Performance != row.RatioPerformance {
		t.Errorf("reported performance %s, want the ratio %s", row.Performance, row.RatioPerformance)
	}
}
