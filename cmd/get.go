package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type getCmd struct {
	item string
}

func (*getCmd) Name() string     { return "get" }
func (*getCmd) Synopsis() string { return "print the quantity in stock for an item" }
func (*getCmd) Usage() string {
	return `stk get -item <name>

  Prints the quantity in stock for an item. An item absent from the
  inventory has a quantity of 0.

`
}

func (c *getCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.item, "item", "", "Item name (required)")
}

func (c *getCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.item == "" {
		fmt.Fprintln(os.Stderr, "Error: -item flag is required.")
		return subcommands.ExitUsageError
	}

	ledger := DecodeInventory()
	fmt.Println(ledger.Quantity(c.item))
	return subcommands.ExitSuccess
}
