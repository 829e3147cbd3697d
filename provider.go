package foliosim

import "github.com/foliosim/foliosim/date"

// ProviderQuote holds the data returned by a price provider for a single
// symbol. The engine only requires Prices; an empty series means "no data",
// not an error.
type ProviderQuote struct {
	DisplayName string
	Currency    string
	LastPrice   float64
	Prices      date.History[float64]
}

// FetchFunc retrieves historical prices for a symbol over a date range at a
// given sampling interval. Implementations live outside the engine (the
// yahoo package provides one); the engine never performs network calls
// itself.
type FetchFunc func(symbol string, r date.Range, interval Interval) (*ProviderQuote, error)
