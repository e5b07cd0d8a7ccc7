package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/adikshith/fundcompare/advisor"
	"github.com/adikshith/fundcompare/renderer"
	"github.com/google/subcommands"
	"google.golang.org/genai"
)

// explainCmd holds the flags for the 'explain' subcommand.
type explainCmd struct{}

func (*explainCmd) Name() string     { return "explain" }
func (*explainCmd) Synopsis() string { return "run a comparison and have Gemini read the numbers" }
func (*explainCmd) Usage() string {
	return `navcmp explain <transactions.xlsx> <held_fund_api> <alternative_fund_api>

  Runs the comparison and asks Gemini for a plain-language reading of the
  result. Requires a GEMINI_API_KEY in the environment. No workbook is
  written.
`
}

func (*explainCmd) SetFlags(_ *flag.FlagSet) {}

func (c *explainCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 3 {
		fmt.Fprintln(os.Stderr, "explain wants exactly three arguments: <transactions.xlsx> <held_fund_api> <alternative_fund_api>")
		return subcommands.ExitUsageError
	}

	comparison, status := runComparison(f.Arg(0), f.Arg(1), f.Arg(2))
	if status != subcommands.ExitSuccess {
		return status
	}
	md := renderer.ComparisonMarkdown(comparison)

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}
	reading, err := advisor.Explain(ctx, client, md)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error from the advisor:", err)
		return subcommands.ExitFailure
	}

	printMarkdown(md)
	printMarkdown(reading)
	return subcommands.ExitSuccess
}
