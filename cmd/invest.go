package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/foliosim/foliosim/date"
	"github.com/google/subcommands"
)

type investCmd struct {
	symbol string
	amount float64
	on     string
	remove string
}

func (*investCmd) Name() string     { return "invest" }
func (*investCmd) Synopsis() string { return "record a one-off investment into an asset" }
func (*investCmd) Usage() string {
	return `invest -s <symbol> -amount <amount> [-date <YYYY-MM-DD>]
invest -s <symbol> -remove <investment-id>

  Records a single capital contribution into an asset, or removes a
  previously recorded one by id.
`
}

func (c *investCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.symbol, "s", "", "Asset market symbol (required)")
	f.Float64Var(&c.amount, "amount", 0, "Amount invested")
	f.StringVar(&c.on, "date", "", "Investment date, defaults to today")
	f.StringVar(&c.remove, "remove", "", "Id of the investment to remove")
}

func (c *investCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.symbol == "" {
		fmt.Fprintln(os.Stderr, "Error: -s flag is required.")
		return subcommands.ExitUsageError
	}

	p, err := LoadPortfolio()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading portfolio: %v\n", err)
		return subcommands.ExitFailure
	}
	a := p.AssetBySymbol(c.symbol)
	if a == nil {
		fmt.Fprintf(os.Stderr, "Error: no asset with symbol %q, use 'add' first.\n", c.symbol)
		return subcommands.ExitFailure
	}

	if c.remove != "" {
		if !a.RemoveInvestment(c.remove) {
			fmt.Fprintf(os.Stderr, "Error: no investment with id %q in %q.\n", c.remove, c.symbol)
			return subcommands.ExitFailure
		}
		if err := StorePortfolio(p); err != nil {
			fmt.Fprintf(os.Stderr, "Error saving portfolio: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Printf("✅ Removed investment %s from %q.\n", c.remove, c.symbol)
		return subcommands.ExitSuccess
	}

	if c.amount <= 0 {
		fmt.Fprintln(os.Stderr, "Error: -amount must be positive.")
		return subcommands.ExitUsageError
	}
	on := date.Today()
	if c.on != "" {
		on, err = date.Parse(c.on)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing date %q: %v\n", c.on, err)
			return subcommands.ExitUsageError
		}
	}

	inv := a.NewInvestment(c.amount, on)
	a.AddInvestments(inv)

	if err := StorePortfolio(p); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving portfolio: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("✅ Invested %s %.2f into %q on %s (id %s).\n", *defaultCurrency, c.amount, c.symbol, on, inv.ID)
	return subcommands.ExitSuccess
}
