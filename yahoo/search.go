package yahoo

import (
	"fmt"
	"net/url"

	"github.com/PaesslerAG/jsonpath"
)

const searchURL = "https://query1.finance.yahoo.com/v1/finance/search"

// SearchResult is a single instrument candidate returned by Search.
type SearchResult struct {
	Symbol    string
	ShortName string
	LongName  string
	Exchange  string
	Type      string
}

// Search looks up instruments matching a free-text query.
func Search(query string) ([]SearchResult, error) {
	addr := fmt.Sprintf("%s?q=%s&quotesCount=10&newsCount=0", searchURL, url.QueryEscape(query))

	var jobj any
	if err := jwget(newDailyCachingClient(), addr, &jobj); err != nil {
		return nil, fmt.Errorf("cannot search for %q: %w", query, err)
	}
	return resultsFrom(jobj)
}

// resultsFrom extracts the quotes list from the search payload. The payload
// mixes instrument types with different shapes, so fields are picked by path
// rather than decoded into one struct.
func resultsFrom(jobj any) ([]SearchResult, error) {
	jval, err := jsonpath.Get("$.quotes", jobj)
	if err != nil {
		return nil, fmt.Errorf("unexpected search payload: %w", err)
	}
	jlist, ok := jval.([]any)
	if !ok {
		return nil, fmt.Errorf("unexpected search payload: quotes is not a list")
	}

	var results []SearchResult
	for _, item := range jlist {
		jq, ok := item.(map[string]any)
		if !ok {
			continue
		}
		r := SearchResult{
			Symbol:    str(jq["symbol"]),
			ShortName: str(jq["shortname"]),
			LongName:  str(jq["longname"]),
			Exchange:  str(jq["exchange"]),
			Type:      str(jq["quoteType"]),
		}
		if r.Symbol == "" {
			continue
		}
		results = append(results, r)
	}
	return results, nil
}

func str(v any) string {
	s, _ := v.(string)
	return s
}
