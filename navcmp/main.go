package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/adikshith/fundcompare/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	// Shell completion must run before flag parsing: in completion mode the
	// process prints predictions and exits.
	completion := &complete.Command{
		Sub: map[string]*complete.Command{
			"compare": {
				Flags: map[string]complete.Predictor{
					"o":     predict.Files("*.xlsx"),
					"print": predict.Nothing,
				},
				Args: predict.Files("*.xlsx"),
			},
			"fetch":   {},
			"explain": {Args: predict.Files("*.xlsx")},
			"topic":   {Args: predict.Set{"readme", "comparison", "metrics"}},
		},
	}
	completion.Complete("navcmp")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	for _, c := range cmd.Commands {
		commander.Register(c, "")
	}

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
