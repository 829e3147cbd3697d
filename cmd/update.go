package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/foliosim/foliosim"
	"github.com/foliosim/foliosim/date"
	"github.com/foliosim/foliosim/yahoo"
	"github.com/google/subcommands"
)

type updateCmd struct{}

func (*updateCmd) Name() string { return "update" }
func (*updateCmd) Synopsis() string {
	return "update asset prices from the market data provider"
}
func (*updateCmd) Usage() string              { return "fsim update\n" }
func (c *updateCmd) SetFlags(f *flag.FlagSet) {}
func (c *updateCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 0 {
		fmt.Fprintln(os.Stderr, "no arguments expected")
		return subcommands.ExitUsageError
	}

	p, err := LoadPortfolio()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading portfolio: %v\n", err)
		return subcommands.ExitFailure
	}

	n, err := foliosim.UpdatePrices(p, fetchYahoo)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error updating prices: %v\n", err)
		return subcommands.ExitFailure
	}

	if err := StorePortfolio(p); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving portfolio: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("✅ Updated %d prices in portfolio %q.\n", n, p.Name)
	return subcommands.ExitSuccess
}

// fetchYahoo adapts the yahoo package to the engine's provider contract.
func fetchYahoo(symbol string, r date.Range, interval foliosim.Interval) (*foliosim.ProviderQuote, error) {
	q, err := yahoo.Fetch(symbol, r, string(interval))
	if err != nil {
		return nil, err
	}
	return &foliosim.ProviderQuote{
		DisplayName: q.DisplayName,
		Currency:    q.Currency,
		LastPrice:   q.LastPrice,
		Prices:      q.Series,
	}, nil
}
