package yahoo

import (
	"encoding/json"
	"testing"

	"github.com/foliosim/foliosim/date"
)

const chartPayload = `{
  "chart": {
    "result": [
      {
        "meta": {
          "symbol": "VWCE.DE",
          "currency": "EUR",
          "longName": "Vanguard FTSE All-World",
          "regularMarketPrice": 118.42
        },
        "timestamp": [1704182400, 1704268800, 1704441600],
        "indicators": {
          "quote": [
            {"close": [117.1, null, 118.42]}
          ]
        }
      }
    ],
    "error": null
  }
}`

func TestQuoteFromChart(t *testing.T) {
	var content chartResponse
	if err := json.Unmarshal([]byte(chartPayload), &content); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	q, err := quoteFromChart("VWCE.DE", &content)
	if err != nil {
		t.Fatalf("quoteFromChart: %v", err)
	}

	if q.Symbol != "VWCE.DE" || q.Currency != "EUR" {
		t.Errorf("symbol/currency %q/%q, want VWCE.DE/EUR", q.Symbol, q.Currency)
	}
	if q.DisplayName != "Vanguard FTSE All-World" {
		t.Errorf("display name %q", q.DisplayName)
	}
	if q.LastPrice != 118.42 {
		t.Errorf("last price %v, want 118.42", q.LastPrice)
	}
	// The null close on 2024-01-03 is a gap, not a zero price.
	if q.Series.Len() != 2 {
		t.Fatalf("got %d prices, want 2", q.Series.Len())
	}
	if v, ok := q.Series.Get(date.New(2024, 1, 2)); !ok || v != 117.1 {
		t.Errorf("price on 2024-01-02 = %v (%v), want 117.1", v, ok)
	}
	if v, ok := q.Series.Get(date.New(2024, 1, 5)); !ok || v != 118.42 {
		t.Errorf("price on 2024-01-05 = %v (%v), want 118.42", v, ok)
	}
}

func TestQuoteFromChartError(t *testing.T) {
	payload := `{"chart":{"result":null,"error":{"code":"Not Found","description":"No data found, symbol may be delisted"}}}`
	var content chartResponse
	if err := json.Unmarshal([]byte(payload), &content); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if _, err := quoteFromChart("NOPE", &content); err == nil {
		t.Fatal("want an error for a chart error payload")
	}
}

func TestResultsFrom(t *testing.T) {
	payload := `{
	  "quotes": [
	    {"symbol": "AAPL", "shortname": "Apple Inc.", "longname": "Apple Inc.", "exchange": "NMS", "quoteType": "EQUITY"},
	    {"symbol": "", "shortname": "bogus"},
	    {"symbol": "VWCE.DE", "shortname": "Vanguard FTSE All-World", "exchange": "GER", "quoteType": "ETF"}
	  ]
	}`
	var jobj any
	if err := json.Unmarshal([]byte(payload), &jobj); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	results, err := resultsFrom(jobj)
	if err != nil {
		t.Fatalf("resultsFrom: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2 (entries without a symbol are dropped)", len(results))
	}
	if results[0].Symbol != "AAPL" || results[1].Type != "ETF" {
		t.Errorf("unexpected results: %+v", results)
	}
}
