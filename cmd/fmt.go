package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type fmtCmd struct{}

func (*fmtCmd) Name() string { return "fmt" }
func (*fmtCmd) Synopsis() string {
	return "validates and formats the inventory file into a canonical form"
}
func (*fmtCmd) Usage() string {
	return `ksm fmt

  Validates and formats the inventory file. This command reads all items,
  reports the first malformed line if any, and writes the file back in its
  canonical form: one item per line, no blank lines, "None" for missing
  quantity limits, and quotes only where a name needs them.

Usage Examples:
# Formats the default inventory file.
$ ksm fmt

`
}

func (*fmtCmd) SetFlags(f *flag.FlagSet) {}

func (*fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if _, err := os.Stat(*dataFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not find inventory file %q: %v\n", *dataFile, err)
		return subcommands.ExitFailure
	}
	inv, err := DecodeInventory()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := EncodeInventory(inv); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving formatted inventory: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Fprintf(os.Stderr, "✅ Successfully formatted %q (%d items).\n", *dataFile, inv.Len())
	return subcommands.ExitSuccess
}
