package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/inventory"
	"github.com/google/subcommands"
)

type removeCmd struct {
	item string
	qty  int64
}

func (*removeCmd) Name() string     { return "remove" }
func (*removeCmd) Synopsis() string { return "remove stock for an item" }
func (*removeCmd) Usage() string {
	return `stk remove -item <name> -qty <n>

  Removes a quantity of an item from the inventory and saves the inventory
  file. When the remaining quantity would reach zero or below, the item is
  deleted entirely. Removing an unknown item is a warning, not an error.

Usage Examples:
# Ship three apples.
$ stk remove -item apple -qty 3

`
}

func (c *removeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.item, "item", "", "Item name (required)")
	f.Int64Var(&c.qty, "qty", 0, "Quantity to remove")
}

func (c *removeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger := DecodeInventory()

	change, err := ledger.Remove(c.item, c.qty)
	if errors.Is(err, inventory.ErrUnknownItem) {
		fmt.Fprintf(os.Stderr, "Warning: %v; inventory unchanged\n", err)
		return subcommands.ExitSuccess
	}
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
