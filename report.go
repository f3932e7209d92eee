package inventory

import (
	"fmt"
	"strings"
)

// Report returns a human-readable enumeration of every item and its
// quantity, in ledger iteration order.
func (l *Ledger) Report() string {
	var b strings.Builder
	b.WriteString("Items Report\n")
	for item, qty := range l.Items() {
		fmt.Fprintf(&b, "%s -> %d\n", item, qty)
	}
	return b.String()
}
