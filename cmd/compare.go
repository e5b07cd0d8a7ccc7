package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/adikshith/fundcompare"
	"github.com/adikshith/fundcompare/mfapi"
	"github.com/adikshith/fundcompare/renderer"
	"github.com/google/subcommands"
)

// compareCmd holds the flags for the 'compare' subcommand.
type compareCmd struct {
	output string
	print  bool
}

func (*compareCmd) Name() string     { return "compare" }
func (*compareCmd) Synopsis() string { return "replay your transactions against an alternative fund" }
func (*compareCmd) Usage() string {
	return `navcmp compare <transactions.xlsx> <held_fund_api> <alternative_fund_api> [-o <path>] [-print]

  Reads your transaction export, fetches both funds' NAV histories, replays
  your history against the alternative fund, and writes the comparison
  workbook.
`
}

func (c *compareCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", DefaultOutput, "Path for the output workbook")
	f.BoolVar(&c.print, "print", false, "Also render the summary in the terminal")
}

func (c *compareCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 3 {
		fmt.Fprintln(os.Stderr, "compare wants exactly three arguments: <transactions.xlsx> <held_fund_api> <alternative_fund_api>")
		return subcommands.ExitUsageError
	}

	comparison, status := runComparison(f.Arg(0), f.Arg(1), f.Arg(2))
	if status != subcommands.ExitSuccess {
		return status
	}

	for _, w := range comparison.Shortfalls {
		fmt.Fprintf(os.Stderr, "Warning: %s\n", w)
	}

	if err := fundcompare.WriteComparison(c.output, comparison); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing report: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Comparison written to %s\n", c.output)

	if c.print {
		printMarkdown(renderer.ComparisonMarkdown(comparison))
	}
	return subcommands.ExitSuccess
}

// runComparison is the shared pipeline of compare and explain: load the
// transactions, fetch both funds, replay. Errors are reported on stderr.
func runComparison(input, heldURL, altURL string) (*fundcompare.Comparison, subcommands.ExitStatus) {
	txs, err := fundcompare.ReadTransactions(input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading transactions: %v\n", err)
		return nil, subcommands.ExitFailure
	}

	held, err := mfapi.Fetch(heldURL)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error fetching held fund: %v\n", err)
		return nil, subcommands.ExitFailure
	}
	alternative, err := mfapi.Fetch(altURL)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error fetching alternative fund: %v\n", err)
		return nil, subcommands.ExitFailure
	}

	comparison, err := fundcompare.Compare(txs, held, alternative)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error comparing portfolios: %v\n", err)
		return nil, subcommands.ExitFailure
	}
	return comparison, subcommands.ExitSuccess
}
