package cmd

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/etnz/inventory"
	"github.com/google/subcommands"
)

type demoCmd struct{}

func (*demoCmd) Name() string     { return "demo" }
func (*demoCmd) Synopsis() string { return "run a short demonstration of the inventory operations" }
func (*demoCmd) Usage() string {
	return `stk demo

  Loads the inventory file, performs a few sample mutations (including a
  rejected invalid one), prints a summary, and saves the file back.

`
}

func (c *demoCmd) SetFlags(f *flag.FlagSet) {}

func (c *demoCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	log.Println("Starting inventory demo")

	ledger := DecodeInventory()
	var journal inventory.Journal
	ledger.Journal = &journal

	ledger.Add("apple", 10)
	ledger.Add("banana", 2)
	// This invalid call is rejected by validation and leaves the ledger untouched.
	if _, err := ledger.Add("", 10); err != nil {
		log.Printf("rejected: %v", err)
	}
	ledger.Remove("apple", 3)
	if _, err := ledger.Remove("orange", 1); err != nil {
		log.Printf("warning: %v", err)
	}

	fmt.Printf("Apple stock: %d\n", ledger.Quantity("apple"))
	fmt.Printf("Low items: %v\n", ledger.Below(5))

	if status := EncodeInventory(ledger); status != subcommands.ExitSuccess {
		return status
	}
	fmt.Print(ledger.Report())

	for _, record := range journal {
		log.Println(record)
	}
	return subcommands.ExitSuccess
}
