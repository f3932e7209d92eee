package cmd

import (
	"context"
	"flag"
	"path/filepath"
	"testing"

	"github.com/etnz/inventory"
	"github.com/google/subcommands"
)

// useTempInventory points the app inventory file at a fresh temp location
// for the duration of the test.
func useTempInventory(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "inventory.json")
	old := *inventoryFile
	*inventoryFile = path
	t.Cleanup(func() { *inventoryFile = old })
	return path
}

func TestAddCmd(t *testing.T) {
	path := useTempInventory(t)

	add := &addCmd{item: "apple", qty: 10}
	if status := add.Execute(context.Background(), flag.NewFlagSet("add", flag.ContinueOnError)); status != subcommands.ExitSuccess {
		t.Fatalf("add.Execute() = %v, want ExitSuccess", status)
	}

	ledger, _, err := inventory.LoadInventory(path)
	if err != nil {
		t.Fatalf("could not load inventory back: %v", err)
	}
	if got := ledger.Quantity("apple"); got != 10 {
		t.Errorf("Quantity(%q) = %d, want 10", "apple", got)
	}
}

func TestAddCmd_EmptyItem(t *testing.T) {
	useTempInventory(t)

	add := &addCmd{item: "", qty: 10}
	if status := add.Execute(context.Background(), flag.NewFlagSet("add", flag.ContinueOnError)); status != subcommands.ExitUsageError {
		t.Errorf("add.Execute() with an empty item = %v, want ExitUsageError", status)
	}
}

func TestRemoveCmd_UnknownItemIsAWarning(t *testing.T) {
	useTempInventory(t)

	remove := &removeCmd{item: "orange", qty: 1}
	if status := remove.Execute(context.Background(), flag.NewFlagSet("remove", flag.ContinueOnError)); status != subcommands.ExitSuccess {
		t.Errorf("remove.Execute() on an unknown item = %v, want ExitSuccess", status)
	}
}

func TestAddThenRemoveCmd(t *testing.T) {
	path := useTempInventory(t)

	add := &addCmd{item: "apple", qty: 10}
	if status := add.Execute(context.Background(), flag.NewFlagSet("add", flag.ContinueOnError)); status != subcommands.ExitSuccess {
		t.Fatalf("add.Execute() = %v, want ExitSuccess", status)
	}
	remove := &removeCmd{item: "apple", qty: 3}
	if status := remove.Execute(context.Background(), flag.NewFlagSet("remove", flag.ContinueOnError)); status != subcommands.ExitSuccess {
		t.Fatalf("remove.Execute() = %v, want ExitSuccess", status)
	}

	ledger, _, err := inventory.LoadInventory(path)
	if err != nil {
		t.Fatalf("could not load inventory back: %v", err)
	}
	if got := ledger.Quantity("apple"); got != 7 {
		t.Errorf("Quantity(%q) = %d, want 7", "apple", got)
	}
}
