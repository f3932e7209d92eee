package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
)

type lowCmd struct {
	threshold int64
}

func (*lowCmd) Name() string     { return "low" }
func (*lowCmd) Synopsis() string { return "list items whose stock is below a threshold" }
func (*lowCmd) Usage() string {
	return `stk low [-threshold <n>]

  Lists the items whose quantity is strictly below the threshold, one per
  line, in inventory order.

`
}

func (c *lowCmd) SetFlags(f *flag.FlagSet) {
	f.Int64Var(&c.threshold, "threshold", 5, "Low stock threshold")
}

func (c *lowCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger := DecodeInventory()
	for _, item := range ledger.Below(c.threshold) {
		fmt.Println(item)
	}
	return subcommands.ExitSuccess
}
