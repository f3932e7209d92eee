// Package cmd implements the CLI application to manage an inventory.
package cmd

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/inventory"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&addCmd{}, "stock")
	c.Register(&removeCmd{}, "stock")
	c.Register(&getCmd{}, "stock")

	c.Register(&lowCmd{}, "reports")
	c.Register(&reportCmd{}, "reports")

	c.Register(&fmtCmd{}, "file")
	c.Register(&importCmd{}, "file")

	c.Register(&demoCmd{}, "")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var inventoryFile = flag.String("inventory-file", inventory.DefaultFile, "Path to the inventory file (a JSON object of item name to quantity)")

// DecodeInventory loads the app inventory file, degrading to an empty ledger
// when the file is missing, unreadable or malformed.
func DecodeInventory() *inventory.Ledger {
	ledger, _, err := inventory.LoadInventory(*inventoryFile)
	if err != nil {
		log.Printf("warning, could not load inventory: %v; starting empty", err)
	}
	return ledger
}

// EncodeInventory saves the ledger into the app inventory file.
func EncodeInventory(ledger *inventory.Ledger) subcommands.ExitStatus {
	if err := inventory.SaveInventory(*inventoryFile, ledger); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving inventory file %q: %v\n", *inventoryFile, err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// printMarkdown renders markdown to the terminal, falling back to the raw
// markdown when rendering fails.
func printMarkdown(content string) {
	out, err := glamour.Render(content, "auto")
	if err != nil {
		fmt.Println(content)
		return
	}
	fmt.Print(out)
}
