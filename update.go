package foliosim

import (
	"fmt"
	"log"
)

// This file contains functions to refresh asset price series from a provider.

// UpdatePrices fetches prices for every asset carrying a symbol and merges
// them into the asset's series. Assets without a symbol (manually priced)
// are left untouched. It returns the number of assets updated.
func UpdatePrices(p *Portfolio, fetch FetchFunc) (int, error) {
	interval := IntervalFor(p.Range, false)

	updated := 0
	for _, a := range p.Assets {
		if a.Symbol == "" {
			continue
		}
		n, err := updateAssetPrices(a, p, fetch, interval)
		if err != nil {
			return updated, err
		}
		if n == 0 {
			log.Printf("no new prices for %q (%s) between %s and %s", a.Name, a.Symbol, p.Range.From, p.Range.To)
			continue
		}
		updated++
	}
	return updated, nil
}

// updateAssetPrices fetches and merges prices for a single asset, returning
// the number of price points received.
func updateAssetPrices(a *Asset, p *Portfolio, fetch FetchFunc, interval Interval) (int, error) {
	quote, err := fetch(a.Symbol, p.Range, interval)
	if err != nil {
		return 0, fmt.Errorf("failed to get prices for %q (%s): %w", a.Name, a.Symbol, err)
	}

	n := 0
	for day, price := range quote.Prices.Values() {
		a.Prices.Append(day, price)
		n++
	}
	if quote.DisplayName != "" && a.Name == a.Symbol {
		// A symbol used as a placeholder name is upgraded to the provider's
		// display name.
		a.Name = quote.DisplayName
	}
	return n, nil
}
