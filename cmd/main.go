// Package cmd implements the navcmp CLI.
package cmd

import "github.com/google/subcommands"

// Commands is the full command set; the main package registers them all.
// As a CLI application the process is short lived, so commands hold their
// flags as plain struct fields.
var Commands = []subcommands.Command{
	&compareCmd{},
	&fetchCmd{},
	&explainCmd{},
	&topicCmd{},
}

// DefaultOutput is the output workbook path when -o is not given.
const DefaultOutput = "portfolio_comparison.xlsx"
