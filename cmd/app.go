// Package cmd implements the CLI application to manage simulated portfolios.
package cmd

import (
	"flag"
	"os"
	"path/filepath"

	"github.com/foliosim/foliosim"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&searchCmd{}, "market")
	c.Register(&updateCmd{}, "market")

	c.Register(&addCmd{}, "portfolio")
	c.Register(&investCmd{}, "portfolio")
	c.Register(&planCmd{}, "portfolio")

	c.Register(&historyCmd{}, "reports")
	c.Register(&performanceCmd{}, "reports")
	c.Register(&projectCmd{}, "reports")
	c.Register(&exportCmd{}, "reports")

	c.Register(&topicCmd{}, "help")
	c.Register(&assistCmd{}, "help")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var portfolioDir = flag.String("dir", defaultDir(), "Directory holding portfolio files (JSONL format)")
var portfolioName = flag.String("portfolio", "", "Name of the portfolio to work on")
var defaultCurrency = flag.String("currency", "EUR", "Currency used to format amounts, 3-letter code")

func defaultDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".fsim"
	}
	return filepath.Join(home, ".fsim")
}

// LoadPortfolio loads the portfolio selected by the -dir and -portfolio flags.
func LoadPortfolio() (*foliosim.Portfolio, error) {
	return foliosim.FindPortfolio(*portfolioDir, *portfolioName)
}

// StorePortfolio persists the portfolio back into the app directory.
func StorePortfolio(p *foliosim.Portfolio) error {
	return foliosim.SavePortfolio(*portfolioDir, p)
}
