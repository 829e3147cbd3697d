package foliosim

import (
	"strings"
	"testing"

	"github.com/foliosim/foliosim/date"
)

func TestEncodeDecodePortfolio(t *testing.T) {
	p := NewPortfolio("retirement")
	p.Range = date.NewRange(date.New(2024, 1, 1), date.New(2024, 12, 31))

	a := NewAsset("World ETF", "WLD")
	a.Prices.Append(date.New(2024, 1, 2), 100)
	a.Prices.Append(date.New(2024, 1, 3), 101.5)
	a.AddInvestments(a.NewInvestment(1000, date.New(2024, 1, 2)))
	a.AddInvestments(GeneratePeriodic(PeriodicSettings{
		Start:      date.New(2024, 1, 2),
		DayOfMonth: 2,
		Interval:   1,
		Unit:       date.Monthly,
		Amount:     50,
	}, date.New(2024, 3, 2), a.ID)...)
	p.AddAsset(a)

	var buf strings.Builder
	if err := EncodePortfolio(&buf, p); err != nil {
		t.Fatalf("encode: %v", err)
	}

	got, err := DecodePortfolio(strings.NewReader(buf.String()))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	if got.Name != "retirement" {
		t.Errorf("name %q, want retirement", got.Name)
	}
	if got.Range != p.Range {
		t.Errorf("range %v, want %v", got.Range, p.Range)
	}
	if len(got.Assets) != 1 {
		t.Fatalf("got %d assets, want 1", len(got.Assets))
	}
	ga := got.Assets[0]
	if ga.ID != a.ID || ga.Name != a.Name || ga.Symbol != a.Symbol {
		t.Errorf("asset %q/%q/%q, want %q/%q/%q", ga.ID, ga.Name, ga.Symbol, a.ID, a.Name, a.Symbol)
	}
	if ga.Prices.Len() != 2 {
		t.Errorf("got %d prices, want 2", ga.Prices.Len())
	}
	if v, ok := ga.Prices.Get(date.New(2024, 1, 3)); !ok || v != 101.5 {
		t.Errorf("price on 2024-01-03 = %v (%v), want 101.5", v, ok)
	}
	if len(ga.Investments) != len(a.Investments) {
		t.Fatalf("got %d investments, want %d", len(ga.Investments), len(a.Investments))
	}
	for i, inv := range ga.Investments {
		want := a.Investments[i]
		if inv != want {
			t.Errorf("investment %d = %+v, want %+v", i, inv, want)
		}
	}
}

func TestDecodePortfolioRejectsUnknownRecord(t *testing.T) {
	_, err := DecodePortfolio(strings.NewReader(`{"record":"wire-transfer"}`))
	if err == nil {
		t.Fatal("want an error for an unknown record kind")
	}
}

func TestDecodePortfolioRejectsOrphanInvestment(t *testing.T) {
	line := `{"record":"investment","id":"i1","asset":"missing","kind":"single","amount":10,"on":"2024-01-02"}`
	_, err := DecodePortfolio(strings.NewReader(line))
	if err == nil {
		t.Fatal("want an error for an investment without its asset")
	}
}

func TestExportDaySeries(t *testing.T) {
	series := []DayData{
		{Date: date.New(2024, 1, 2), Value: 1000, Invested: 1000, Performance: 0},
		{Date: date.New(2024, 1, 3), Value: 1015, Invested: 1000, Performance: 1.5},
	}
	var buf strings.Builder
	if err := ExportDaySeries(&buf, series); err != nil {
		t.Fatalf("export: %v", err)
	}
	want := "date,value,invested,performance\n" +
		"2024-01-02,1000.00,1000.00,0.00\n" +
		"2024-01-03,1015.00,1000.00,1.50\n"
	if buf.String() != want {
		t.Errorf("csv output:\n%s\nwant:\n%s", buf.String(), want)
	}
}
