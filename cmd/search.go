package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/foliosim/foliosim/yahoo"
	"github.com/google/subcommands"
)

type searchCmd struct{}

func (*searchCmd) Name() string     { return "search" }
func (*searchCmd) Synopsis() string { return "search tradable instruments by name or symbol" }
func (*searchCmd) Usage() string {
	return `search <query>

  Searches the market for instruments matching the query and prints their
  symbol, type, exchange and name. Use the symbol with 'add'.

  Example:
    fsim search vanguard all-world
`
}

func (c *searchCmd) SetFlags(f *flag.FlagSet) {}

func (c *searchCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: a search query is required.")
		return subcommands.ExitUsageError
	}

	results, err := yahoo.Search(strings.Join(f.Args(), " "))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error searching instruments: %v\n", err)
		return subcommands.ExitFailure
	}
	if len(results) == 0 {
		fmt.Println("No instruments found.")
		return subcommands.ExitSuccess
	}

	fmt.Printf("%-14s %-10s %-10s %s\n", "Symbol", "Type", "Exchange", "Name")
	for _, r := range results {
		name := r.LongName
		if name == "" {
			name = r.ShortName
		}
		fmt.Printf("%-14s %-10s %-10s %s\n", r.Symbol, r.Type, r.Exchange, name)
	}
	return subcommands.ExitSuccess
}
