package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/foliosim/foliosim"
	"github.com/foliosim/foliosim/renderer"
	"github.com/google/subcommands"
)

type performanceCmd struct{}

func (*performanceCmd) Name() string     { return "performance" }
func (*performanceCmd) Synopsis() string { return "analyze the performance of every investment" }
func (*performanceCmd) Usage() string {
	return `performance

  Analyzes each investment against current prices and prints a per-investment
  breakdown plus a portfolio summary including the time-travel-without-risk
  comparison (what a single day-one lump sum would be worth today).
`
}

func (c *performanceCmd) SetFlags(f *flag.FlagSet) {}

func (c *performanceCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	p, err := LoadPortfolio()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading portfolio: %v\n", err)
		return subcommands.ExitFailure
	}

	report := foliosim.Analyze(p.Assets)
	printMarkdown(renderer.RenderPerformance(p.Name, report, *defaultCurrency))
	return subcommands.ExitSuccess
}
