package cmd

import (
	"context"
	"flag"

	"github.com/etnz/inventory/renderer"
	"github.com/google/subcommands"
)

type reportCmd struct {
	threshold int64
}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "display the inventory report" }
func (*reportCmd) Usage() string {
	return `stk report [-threshold <n>]

  Displays every item with its quantity, followed by the items below the
  low-stock threshold.

`
}

func (c *reportCmd) SetFlags(f *flag.FlagSet) {
	f.Int64Var(&c.threshold, "threshold", 5, "Low stock threshold")
}

func (c *reportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger := DecodeInventory()
	printMarkdown(renderer.InventoryMarkdown(ledger, c.threshold))
	return subcommands.ExitSuccess
}
