package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/foliosim/foliosim/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	// Completion mode is detected from the environment; Complete exits the
	// process when invoked by the shell.
	completer().Complete("fsim")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "help")
	commander.Register(commander.FlagsCommand(), "help")
	commander.Register(commander.CommandsCommand(), "help")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

func completer() *complete.Command {
	sub := map[string]*complete.Command{}
	for _, name := range []string{
		"search", "add", "invest", "plan", "update",
		"history", "performance", "project", "export",
		"topic", "assist",
	} {
		sub[name] = &complete.Command{}
	}
	sub["export"].Args = predict.Set{"history", "projection"}
	return &complete.Command{
		Sub: sub,
		Flags: map[string]complete.Predictor{
			"dir":       predict.Dirs("*"),
			"portfolio": predict.Something,
			"currency":  predict.Set{"EUR", "USD", "GBP", "CHF"},
		},
	}
}
