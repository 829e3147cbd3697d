package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/foliosim/foliosim"
	"github.com/google/subcommands"
)

type exportCmd struct {
	out   string
	years int
	rate  float64
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export a report as CSV" }
func (*exportCmd) Usage() string {
	return `export (history|projection) [-o <file>] [-years <n>] [-rate <percent>]

  Exports the day-by-day history or a future projection as CSV, to stdout or
  to the file given with -o. The -years and -rate flags only apply to the
  projection export.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.out, "o", "", "Output file, defaults to stdout")
	f.IntVar(&c.years, "years", 10, "Projection horizon in years")
	f.Float64Var(&c.rate, "rate", 5, "Assumed annual return in percent")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	kind := f.Arg(0)
	if kind != "history" && kind != "projection" {
		fmt.Fprintln(os.Stderr, "Error: expected 'history' or 'projection'.")
		return subcommands.ExitUsageError
	}

	p, err := LoadPortfolio()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading portfolio: %v\n", err)
		return subcommands.ExitFailure
	}

	var w io.Writer = os.Stdout
	if c.out != "" {
		file, err := os.Create(c.out)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating %q: %v\n", c.out, err)
			return subcommands.ExitFailure
		}
		defer file.Close()
		w = file
	}

	switch kind {
	case "history":
		err = foliosim.ExportDaySeries(w, foliosim.BuildDaySeries(p.Assets, p.Range))
	case "projection":
		proj := foliosim.Project(p.Assets, c.years, c.rate, nil)
		err = foliosim.ExportProjection(w, proj.Rows)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error exporting %s: %v\n", kind, err)
		return subcommands.ExitFailure
	}

	if c.out != "" {
		fmt.Printf("✅ Exported %s of portfolio %q to %s.\n", kind, p.Name, c.out)
	}
	return subcommands.ExitSuccess
}
