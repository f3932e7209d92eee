package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/inventory"
	"github.com/google/subcommands"
)

type importCmd struct {
	file    string
	path    string
	replace bool
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "import item quantities from a JSON document" }
func (*importCmd) Usage() string {
	return `stk import -file <document.json> [-path <jsonpath>] [-replace]

  Imports item quantities from an arbitrary JSON document. The -path flag is
  a JSONPath expression selecting the object that maps item names to
  quantities; it defaults to the whole document. Imported quantities are
  added to the current stock unless -replace is set, in which case the
  inventory is replaced wholesale.

Usage Examples:
# Merge the stock object of a supplier export.
$ stk import -file delivery.json -path '$.stock'

`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "file", "", "JSON document to import from (required)")
	f.StringVar(&c.path, "path", "$", "JSONPath expression selecting the item-to-quantity object")
	f.BoolVar(&c.replace, "replace", false, "Replace the inventory instead of adding to it")
}

func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.file == "" {
		fmt.Fprintln(os.Stderr, "Error: -file flag is required.")
		return subcommands.ExitUsageError
	}

	doc, err := os.Open(c.file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening import document %q: %v\n", c.file, err)
		return subcommands.ExitFailure
	}
	defer doc.Close()

	imported, skipped, err := inventory.ImportInventory(doc, c.path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error importing %q: %v\n", c.file, err)
		return subcommands.ExitFailure
	}
	for _, key := range skipped {
		fmt.Fprintf(os.Stderr, "Warning: skipped entry %q with invalid quantity\n", key)
	}

	ledger := imported
	if !c.replace {
		ledger = DecodeInventory()
		for item, qty := range imported.Items() {
			if _, err := ledger.Add(item, qty); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: could not add %q: %v\n", item, err)
			}
		}
	}

	if status := EncodeInventory(ledger); status != subcommands.ExitSuccess {
		return status
	}
	fmt.Printf("Imported %d items (%d skipped) from %s\n", imported.Len(), len(skipped), c.file)
	return subcommands.ExitSuccess
}
