package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/foliosim/foliosim"
	"github.com/foliosim/foliosim/date"
	"github.com/google/subcommands"
)

type planCmd struct {
	symbol string
	amount float64
	start  string
	day    int
	every  int
	unit   string

	grow      string
	growValue float64
	growYears float64

	remove string
	dryRun bool
}

func (*planCmd) Name() string     { return "plan" }
func (*planCmd) Synopsis() string { return "create or remove a recurring savings plan" }
func (*planCmd) Usage() string {
	return `plan -s <symbol> -amount <amount> [-start <YYYY-MM-DD>] [-day <1-31>] [-every <n>] [-unit <period>] [-grow <kind> -grow-value <v> [-grow-years <y>]] [-n]
plan -s <symbol> -remove <group-id>

  Generates the installments of a recurring savings plan up to today and
  records them on the asset. All installments share a group id; editing a
  plan means removing its group and creating a new one.

  - day: anchor day of month for monthly-based units. A plan anchored on
    the 29th, 30th or 31st snaps to the 1st of the following month when the
    month is too short.
  - grow: "percentage" or "fixed" growth of the amount, applied every
    grow-years years (default 1).

  Example:
    fsim plan -s VWCE.DE -amount 500 -start 2022-01-15 -grow percentage -grow-value 10
`
}

func (c *planCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.symbol, "s", "", "Asset market symbol (required)")
	f.Float64Var(&c.amount, "amount", 0, "Amount of each installment")
	f.StringVar(&c.start, "start", "", "First installment date, defaults to today")
	f.IntVar(&c.day, "day", 0, "Anchor day of month, defaults to the start date's day")
	f.IntVar(&c.every, "every", 1, "Number of units between installments")
	f.StringVar(&c.unit, "unit", "monthly", "Recurrence unit: daily, weekly, monthly, quarterly or yearly")
	f.StringVar(&c.grow, "grow", "", "Dynamic growth kind: percentage or fixed")
	f.Float64Var(&c.growValue, "grow-value", 0, "Dynamic growth value")
	f.Float64Var(&c.growYears, "grow-years", 1, "Years between growth steps")
	f.StringVar(&c.remove, "remove", "", "Group id of the plan to remove")
	f.BoolVar(&c.dryRun, "n", false, "Preview the installments without recording them")
}

func (c *planCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
		n := a.RemovePeriodicGroup(c.remove)
		if n == 0 {
			fmt.Fprintf(os.Stderr, "Error: no plan with group id %q in %q.\n", c.remove, c.symbol)
			return subcommands.ExitFailure
		}
		if err := StorePortfolio(p); err != nil {
			fmt.Fprintf(os.Stderr, "Error saving portfolio: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Printf("✅ Removed %d installments of plan %s from %q.\n", n, c.remove, c.symbol)
		return subcommands.ExitSuccess
	}

	if c.amount <= 0 {
		fmt.Fprintln(os.Stderr, "Error: -amount must be positive.")
		return subcommands.ExitUsageError
	}
	unit, err := date.ParsePeriod(c.unit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	start := date.Today()
	if c.start != "" {
		start, err = date.Parse(c.start)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing start date %q: %v\n", c.start, err)
			return subcommands.ExitUsageError
		}
	}
	day := c.day
	if day == 0 {
		day = start.Day()
	}
	if day < 1 || day > 31 {
		fmt.Fprintln(os.Stderr, "Error: -day must be between 1 and 31.")
		return subcommands.ExitUsageError
	}

	settings := foliosim.PeriodicSettings{
		Start:      start,
		DayOfMonth: day,
		Interval:   c.every,
		Unit:       unit,
		Amount:     c.amount,
	}
	if c.grow != "" {
		kind, err := foliosim.ParseDynamicKind(c.grow)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
		settings.Dynamic = &foliosim.DynamicRule{Kind: kind, Value: c.growValue, YearInterval: c.growYears}
	}

	invs := foliosim.GeneratePeriodic(settings, date.Today(), a.ID)
	if len(invs) == 0 {
		fmt.Fprintln(os.Stderr, "Error: the plan produces no installment before today.")
		return subcommands.ExitFailure
	}

	if c.dryRun {
		for _, inv := range invs {
			fmt.Printf("%s  %s %.2f\n", inv.Date, *defaultCurrency, inv.Amount)
		}
		fmt.Printf("%d installments, nothing recorded.\n", len(invs))
		return subcommands.ExitSuccess
	}
	a.AddInvestments(invs...)

	if err := StorePortfolio(p); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving portfolio: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("✅ Recorded %d installments into %q (group %s).\n", len(invs), c.symbol, invs[0].PeriodicGroupID)
	return subcommands.ExitSuccess
}
