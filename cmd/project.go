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

type projectCmd struct {
	years  int
	rate   float64
	yearly bool

	withdrawal float64
	interval   string
	trigger    string
	start      string
	value      float64

	strategy    string
	targetYears float64
	growth      float64
}

func (*projectCmd) Name() string     { return "project" }
func (*projectCmd) Synopsis() string { return "project the portfolio value into the future" }
func (*projectCmd) Usage() string {
	return `project [-years <n>] [-rate <percent>] [-yearly]
        [-withdraw <amount> [-interval monthly|yearly] [-trigger date|value|auto]
         [-start <YYYY-MM-DD>] [-value <amount>]
         [-strategy maintain|deplete|grow] [-target-years <n>] [-growth <percent>]]

  Simulates the portfolio forward at a constant annual return. Active savings
  plans keep contributing at their observed cadence. With -withdraw, a
  withdrawal phase starts once the trigger fires and the report includes a
  sustainability analysis.

  Triggers:
  - date:  withdrawals start at -start (immediately when omitted).
  - value: withdrawals start once the portfolio reaches -value.
  - auto:  the start is back-solved from -strategy: maintain the capital,
    deplete it over -target-years, or keep it growing at -growth per year.

  Example:
    fsim project -years 30 -rate 5 -withdraw 1500 -trigger auto -strategy maintain
`
}

func (c *projectCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.years, "years", 10, "Projection horizon in years")
	f.Float64Var(&c.rate, "rate", 5, "Assumed annual return in percent")
	f.BoolVar(&c.yearly, "yearly", false, "Report one row per year instead of per month")
	f.Float64Var(&c.withdrawal, "withdraw", 0, "Withdrawal amount, enables the withdrawal phase")
	f.StringVar(&c.interval, "interval", "monthly", "Withdrawal cadence: monthly or yearly")
	f.StringVar(&c.trigger, "trigger", "date", "Withdrawal start trigger: date, value or auto")
	f.StringVar(&c.start, "start", "", "Withdrawal start date for the date trigger")
	f.Float64Var(&c.value, "value", 0, "Portfolio value starting withdrawals for the value trigger")
	f.StringVar(&c.strategy, "strategy", "maintain", "Auto-trigger strategy: maintain, deplete or grow")
	f.Float64Var(&c.targetYears, "target-years", 25, "Depletion horizon for the deplete strategy")
	f.Float64Var(&c.growth, "growth", 2, "Annual capital growth in percent for the grow strategy")
}

func (c *projectCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	p, err := LoadPortfolio()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading portfolio: %v\n", err)
		return subcommands.ExitFailure
	}

	plan, status := c.plan()
	if status != subcommands.ExitSuccess {
		return status
	}

	proj := foliosim.Project(p.Assets, c.years, c.rate, plan)
	opts := renderer.ProjectionRenderOptions{Yearly: c.yearly, WithPlan: plan != nil}
	printMarkdown(renderer.RenderProjection(p.Name, proj, *defaultCurrency, opts))
	return subcommands.ExitSuccess
}

// plan builds the withdrawal plan from the flags, or nil when no withdrawal
// was requested.
func (c *projectCmd) plan() (*foliosim.WithdrawalPlan, subcommands.ExitStatus) {
	if c.withdrawal <= 0 {
		return nil, subcommands.ExitSuccess
	}

	plan := &foliosim.WithdrawalPlan{Amount: c.withdrawal, Enabled: true}

	switch c.interval {
	case "monthly":
		plan.Interval = foliosim.MonthlyWithdrawal
	case "yearly":
		plan.Interval = foliosim.YearlyWithdrawal
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown withdrawal interval %q.\n", c.interval)
		return nil, subcommands.ExitUsageError
	}

	switch c.trigger {
	case "date":
		plan.Trigger = foliosim.TriggerDate
		if c.start != "" {
			on, err := date.Parse(c.start)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error parsing -start: %v\n", err)
				return nil, subcommands.ExitUsageError
			}
			plan.StartDate = on
		}
	case "value":
		if c.value <= 0 {
			fmt.Fprintln(os.Stderr, "Error: the value trigger requires a positive -value.")
			return nil, subcommands.ExitUsageError
		}
		plan.Trigger = foliosim.TriggerValue
		plan.StartValue = c.value
	case "auto":
		kind, err := foliosim.ParseStrategyKind(c.strategy)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return nil, subcommands.ExitUsageError
		}
		plan.Trigger = foliosim.TriggerAuto
		plan.Auto = foliosim.AutoStrategy{Kind: kind, TargetYears: c.targetYears, TargetGrowth: c.growth}
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown trigger %q.\n", c.trigger)
		return nil, subcommands.ExitUsageError
	}

	return plan, subcommands.ExitSuccess
}
