// Package yahoo retrieves historical prices and quote metadata from the
// Yahoo Finance chart API. It is the simulator's price provider: the engine
// only consumes the resulting date-to-price series and tolerates an empty
// one.
package yahoo

import (
	"fmt"
	"net/url"
	"time"

	"github.com/shopspring/decimal"

	"github.com/foliosim/foliosim/date"
)

const chartURL = "https://query1.finance.yahoo.com/v8/finance/chart/"

// Quote is the outcome of one chart fetch.
type Quote struct {
	Symbol      string
	DisplayName string
	Currency    string
	LastPrice   float64
	// Series holds one closing price per sampled point, keyed by day.
	// It can be empty when the symbol has no data in the requested range.
	Series date.History[float64]
}

// chartResponse mirrors the part of the chart payload we consume. Prices are
// decoded as decimals: Yahoo emits them with full precision and float64
// round-tripping through the json package would not preserve it.
type chartResponse struct {
	Chart struct {
		Result []struct {
			Meta struct {
				Symbol             string          `json:"symbol"`
				Currency           string          `json:"currency"`
				LongName           string          `json:"longName"`
				ShortName          string          `json:"shortName"`
				RegularMarketPrice decimal.Decimal `json:"regularMarketPrice"`
			} `json:"meta"`
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Close []*decimal.Decimal `json:"close"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

// Fetch retrieves the price series for a symbol over a date range at the
// given sampling interval ("1d", "5d", "1wk", "1mo", or sub-day tokens).
// Responses are cached on disk for a day.
func Fetch(symbol string, r date.Range, interval string) (*Quote, error) {
	addr := fmt.Sprintf("%s%s?period1=%d&period2=%d&interval=%s",
		chartURL, url.PathEscape(symbol), unix(r.From), unix(r.To), url.QueryEscape(interval))

	var content chartResponse
	if err := jwget(newDailyCachingClient(), addr, &content); err != nil {
		return nil, fmt.Errorf("cannot fetch chart for %q: %w", symbol, err)
	}
	return quoteFromChart(symbol, &content)
}

// quoteFromChart converts a decoded chart payload into a Quote. Sub-day
// samples collapse onto their calendar day, the last sample winning.
func quoteFromChart(symbol string, content *chartResponse) (*Quote, error) {
	if e := content.Chart.Error; e != nil {
		return nil, fmt.Errorf("chart error for %q: %s: %s", symbol, e.Code, e.Description)
	}
	if len(content.Chart.Result) == 0 {
		return nil, fmt.Errorf("empty chart response for %q", symbol)
	}
	result := content.Chart.Result[0]

	q := &Quote{
		Symbol:      result.Meta.Symbol,
		DisplayName: result.Meta.LongName,
		Currency:    result.Meta.Currency,
		LastPrice:   result.Meta.RegularMarketPrice.InexactFloat64(),
	}
	if q.Symbol == "" {
		q.Symbol = symbol
	}
	if q.DisplayName == "" {
		q.DisplayName = result.Meta.ShortName
	}

	if len(result.Indicators.Quote) == 0 {
		return q, nil
	}
	closes := result.Indicators.Quote[0].Close
	for i, ts := range result.Timestamp {
		if i >= len(closes) || closes[i] == nil {
			// Null closes mark gaps (holidays, suspended trading).
			continue
		}
		day := date.New(time.Unix(ts, 0).UTC().Date())
		q.Series.Append(day, closes[i].InexactFloat64())
	}
	return q, nil
}

func unix(d date.Date) int64 {
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC).Unix()
}
