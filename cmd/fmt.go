package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/inventory"
	"github.com/google/subcommands"
)

type fmtCmd struct{}

func (*fmtCmd) Name() string { return "fmt" }
func (*fmtCmd) Synopsis() string {
	return "validates and formats the inventory file into a canonical form"
}
func (*fmtCmd) Usage() string {
	return `stk fmt

  Validates and formats the inventory file. The file is read tolerantly:
  entries whose value cannot be coerced to an integer are dropped with a
  warning, and the remaining entries are written back as a canonical
  pretty-printed JSON object.

Usage Examples:
# Rewrites the default inventory file.
$ stk fmt

`
}

func (p *fmtCmd) SetFlags(f *flag.FlagSet) {}

func (p *fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, skipped, err := inventory.LoadInventory(*inventoryFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not load inventory: %v\n", err)
		return subcommands.ExitFailure
	}
	for _, key := range skipped {
		fmt.Fprintf(os.Stderr, "Warning: dropping entry %q with invalid quantity\n", key)
	}

	if status := EncodeInventory(ledger); status != subcommands.ExitSuccess {
		return status
	}
	fmt.Printf("Formatted %q: %d items kept, %d dropped.\n", *inventoryFile, ledger.Len(), len(skipped))
	return subcommands.ExitSuccess
}
