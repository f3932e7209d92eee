package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/inventory"
	md "github.com/nao1215/markdown"
)

// InventoryMarkdown renders the ledger to a markdown report: a stock table in
// ledger iteration order, followed by the items below the low-stock
// threshold.
func InventoryMarkdown(l *inventory.Ledger, threshold int64) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Inventory Report")
	doc.PlainText(fmt.Sprintf("%d items in stock.", l.Len()))

	rows := make([][]string, 0, l.Len())
	for item, qty := range l.Items() {
		rows = append(rows, []string{item, fmt.Sprintf("%d", qty)})
	}
	doc.H2("Stock")
	doc.Table(md.TableSet{
		Header: []string{"Item", "Quantity"},
		Rows:   rows,
	})

	doc.H2(fmt.Sprintf("Low Stock (below %d)", threshold))
	if low := l.Below(threshold); len(low) == 0 {
		doc.PlainText("No items below the threshold.")
	} else {
		doc.BulletList(low...)
	}

	return doc.String()
}
