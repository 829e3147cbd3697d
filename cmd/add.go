package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/foliosim/foliosim"
	"github.com/google/subcommands"
)

type addCmd struct {
	symbol string
	name   string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "add a new asset to the portfolio" }
func (*addCmd) Usage() string {
	return `add -s <symbol> [-name <name>]

  Adds a new asset to the portfolio:
  - s: The market symbol of the asset (e.g., "VWCE.DE"). Must be unique in
    the portfolio.
  - name: A display name. Defaults to the symbol until the first price
    update resolves the real name.
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.symbol, "s", "", "Asset market symbol (required)")
	f.StringVar(&c.name, "name", "", "Asset display name")
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.symbol == "" {
		fmt.Fprintln(os.Stderr, "Error: -s flag is required.")
		return subcommands.ExitUsageError
	}

	p, err := LoadPortfolio()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading portfolio: %v\n", err)
		return subcommands.ExitFailure
	}

	if p.AssetBySymbol(c.symbol) != nil {
		fmt.Fprintf(os.Stderr, "Error: symbol %q already exists in the portfolio.\n", c.symbol)
		return subcommands.ExitFailure
	}

	name := c.name
	if name == "" {
		name = c.symbol
	}
	a := foliosim.NewAsset(name, c.symbol)
	p.AddAsset(a)

	// Fetch an initial price history so the asset is usable right away.
	// A fetch failure is not fatal, 'update' can fill the history later.
	if n, err := foliosim.UpdatePrices(p, fetchYahoo); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not fetch prices for %q: %v\n", c.symbol, err)
	} else {
		fmt.Printf("Fetched %d prices.\n", n)
	}

	if err := StorePortfolio(p); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving portfolio: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("✅ Added asset %q to portfolio %q.\n", c.symbol, p.Name)
	return subcommands.ExitSuccess
}
