package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type addCmd struct {
	item string
	qty  int64
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "add stock for an item" }
func (*addCmd) Usage() string {
	return `stk add -item <name> -qty <n>

  Adds a quantity of an item to the inventory, creating the item if it does
  not exist yet, and saves the inventory file.

Usage Examples:
# Receive ten apples.
$ stk add -item apple -qty 10

`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.item, "item", "", "Item name (required)")
	f.Int64Var(&c.qty, "qty", 0, "Quantity to add")
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger := DecodeInventory()

	change, err := ledger.Add(c.item, c.qty)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	if status := EncodeInventory(ledger); status != subcommands.ExitSuccess {
		return status
	}
	fmt.Println(change)
	return subcommands.ExitSuccess
}
