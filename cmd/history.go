package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/foliosim/foliosim"
	"github.com/foliosim/foliosim/date"
	"github.com/foliosim/foliosim/renderer"
	"github.com/google/subcommands"
)

type historyCmd struct {
	from string
	to   string
}

func (*historyCmd) Name() string     { return "history" }
func (*historyCmd) Synopsis() string { return "display the portfolio value day by day" }
func (*historyCmd) Usage() string {
	return `history [-from <YYYY-MM-DD>] [-to <YYYY-MM-DD>]

  Displays the invested capital, market value and performance of the whole
  portfolio for each priced day of the range. Days where any held asset has
  no price yet are skipped.
`
}

func (c *historyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.from, "from", "", "Start of the reporting range, defaults to the portfolio range")
	f.StringVar(&c.to, "to", "", "End of the reporting range, defaults to the portfolio range")
}

func (c *historyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	p, err := LoadPortfolio()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading portfolio: %v\n", err)
		return subcommands.ExitFailure
	}

	r := p.Range
	if c.from != "" {
		if r.From, err = date.Parse(c.from); err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing -from: %v\n", err)
			return subcommands.ExitUsageError
		}
	}
	if c.to != "" {
		if r.To, err = date.Parse(c.to); err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing -to: %v\n", err)
			return subcommands.ExitUsageError
		}
	}

	series := foliosim.BuildDaySeries(p.Assets, r)
	printMarkdown(renderer.RenderHistory(p.Name, series, *defaultCurrency))
	return subcommands.ExitSuccess
}
