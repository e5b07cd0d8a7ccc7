package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/adikshith/fundcompare/mfapi"
	"github.com/google/subcommands"
)

// fetchCmd holds the flags for the 'fetch' subcommand.
type fetchCmd struct{}

func (*fetchCmd) Name() string     { return "fetch" }
func (*fetchCmd) Synopsis() string { return "fetch one fund's NAV history and show its coverage" }
func (*fetchCmd) Usage() string {
	return `navcmp fetch <fund_api>

  Fetches a fund endpoint and prints the scheme name, the covered date range
  and the latest NAV. Handy to sanity-check an endpoint before a comparison.
`
}

func (*fetchCmd) SetFlags(_ *flag.FlagSet) {}

func (c *fetchCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "fetch wants exactly one argument: <fund_api>")
		return subcommands.ExitUsageError
	}

	fund, err := mfapi.Fetch(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error fetching fund: %v\n", err)
		return subcommands.ExitFailure
	}

	first, _ := fund.Series.First()
	latest, nav := fund.Series.Latest()
	fmt.Printf("Scheme:   %s\n", fund.Name)
	if fund.House != "" {
		fmt.Printf("House:    %s\n", fund.House)
	}
	if fund.Category != "" {
		fmt.Printf("Category: %s\n", fund.Category)
	}
	fmt.Printf("History:  %s to %s (%d trading days)\n", first, latest, fund.Series.Len())
	fmt.Printf("Latest:   %s on %s\n", nav, latest)
	return subcommands.ExitSuccess
}
