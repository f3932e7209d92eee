package renderer

import (
	"strings"
	"testing"

	"github.com/etnz/inventory"
)

func TestInventoryMarkdown(t *testing.T) {
	ledger := inventory.NewLedger()
	ledger.Add("apple", 7)
	ledger.Add("banana", 2)

	got := InventoryMarkdown(ledger, 5)

	for _, want := range []string{
		"# Inventory Report",
		"2 items in stock.",
		"## Stock",
		"apple",
		"banana",
		"## Low Stock (below 5)",
		"- banana",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("InventoryMarkdown() missing %q in:\n%s", want, got)
		}
	}
}

func TestInventoryMarkdown_NothingLow(t *testing.T) {
	ledger := inventory.NewLedger()
	ledger.Add("apple", 7)

	got := InventoryMarkdown(ledger, 5)
	if !strings.Contains(got, "No items below the threshold.") {
		t.Errorf("InventoryMarkdown() missing the empty low-stock message in:\n%s", got)
	}
}
